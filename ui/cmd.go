package ui

import (
	"clickchess/src/chesslib"
	"clickchess/src/logx"
	clic "clickchess/ui/cli"
	"clickchess/ui/gui"
	"clickchess/ui/gui/gbase"
	"clickchess/ui/gui/gbase/gconf"
	"clickchess/ui/gui/ghelper/gdialog"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

const logfile string = "clickchess.log"

func GetLogger(w io.Writer, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("dev"),
		c.Bool("console"),
	)
	l.InitLogger(w)
	return l
}

// builder with the --fen position, or no game yet
func newBuilder(c *cli.Command, logger logx.Logger) (*chesslib.GameBuilder, error) {
	gb := chesslib.NewBuilderBoard(logger)
	if fen := c.String("fen"); fen != "" {
		if err := gb.CreateFromFEN(fen); err != nil {
			return nil, err
		}
	}
	return gb, nil
}

func openLog(c *cli.Command) (*os.File, error) {
	file, err := os.OpenFile(c.String("log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("error open logfile: %w", err)
	}
	return file, nil
}

func RunGUI(c *cli.Command) error {
	file, err := openLog(c)
	if err != nil {
		return err
	}
	defer file.Close()
	logger := GetLogger(file, c)
	defer logger.Sync() //nolint:errcheck

	gb, err := newBuilder(c, logger)
	if err != nil {
		return err
	}
	g, err := gui.NewGUI(gb, c.String("config"), logger)
	if err != nil {
		logger.Errorf("error init GUI: %v", err)
		return fmt.Errorf("error init GUI: %w", err)
	}
	return g.Run()
}

func RunCLI(c *cli.Command) error {
	file, err := openLog(c)
	if err != nil {
		return err
	}
	defer file.Close()
	logger := GetLogger(file, c)
	defer logger.Sync() //nolint:errcheck

	gb, err := newBuilder(c, logger)
	if err != nil {
		return err
	}
	return clic.NewCLI(gb, os.Stdin, os.Stdout).Run()
}

func guiAction(ctx context.Context, c *cli.Command) error {
	err := RunGUI(c)
	if err == nil || errors.Is(err, gbase.ErrExit) {
		return nil
	}
	gdialog.ShowError("ClickChess", err.Error())
	return err
}

func RunClickChess() error {
	ff := &cli.StringFlag{
		Name:  "fen",
		Usage: "start position in FEN",
	}
	cfgf := &cli.StringFlag{
		Name:  "config",
		Usage: "path to GUI config",
		Value: gconf.DefaultFile,
	}
	logf := &cli.StringFlag{
		Name:  "log",
		Usage: "path to log file",
		Value: logfile,
	}
	df := &cli.BoolFlag{
		Name:    "dev",
		Aliases: []string{"d"},
		Usage:   "dev encode log",
	}
	lf := &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Usage:   "level log",
		Value:   "info",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console log",
	}
	return (&cli.Command{
		Name:  "clickchess",
		Usage: "click-to-move chess board",
		// root flags are inherited by the subcommands
		Flags: []cli.Flag{ff, cfgf, logf, df, lf, cf},
		Commands: []*cli.Command{
			{
				Name:  "cli",
				Usage: "play in the terminal",
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunCLI(c)
				},
			},
			{
				Name:   "gui",
				Usage:  "open the board window",
				Action: guiAction,
			},
		},
		Action: guiAction,
	}).Run(context.Background(), os.Args)
}
