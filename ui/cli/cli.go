package cli

import (
	"bufio"
	"clickchess/src/chesslib"
	"clickchess/src/chesslib/base"
	"clickchess/src/chesslib/interact"
	"clickchess/ui/svgboard"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const helpText = `Commands:
  e2        click a square (pick a piece, then its destination)
  !e5       toggle a mark on a square
  q r b n   choose the promotion piece
  x         cancel the promotion
  fen       print the position, "fen <FEN>" loads one
  svg FILE  save the board as an SVG image
  new       start a classic game
  flip      turn the board around
  help      this text
  quit      leave`

type CLIProcessing struct {
	builder *chesslib.GameBuilder
	draw    DrawFunc
	in      io.Reader
	out     io.Writer
	flipped bool
}

// NewCLI picks the ANSI board when out is a terminal.
func NewCLI(b *chesslib.GameBuilder, in io.Reader, out io.Writer) *CLIProcessing {
	draw := DrawPlain
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		EnableANSI()
		draw = DrawANSI
	}
	return &CLIProcessing{builder: b, draw: draw, in: in, out: out}
}

func (c *CLIProcessing) SetDraw(draw DrawFunc) {
	c.draw = draw
}

func (c *CLIProcessing) Run() error {
	if !c.builder.Created() {
		c.builder.CreateClassic()
	}

	scanner := bufio.NewScanner(c.in)
	c.redraw()
	fmt.Fprintln(c.out, "Type a square and press Enter, 'help' for commands.")
	c.prompt()
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			c.prompt()
			continue
		}
		if quit := c.exec(line); quit {
			return nil
		}
		c.prompt()
	}
	return scanner.Err()
}

// exec runs one command line, true means leave
func (c *CLIProcessing) exec(line string) bool {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "quit", "exit":
		fmt.Fprintln(c.out, "Quitting")
		return true
	case "help", "?":
		fmt.Fprintln(c.out, helpText)
	case "new":
		c.builder.CreateClassic()
		c.redraw()
	case "flip":
		c.flipped = !c.flipped
		c.redraw()
	case "fen":
		if arg == "" {
			fmt.Fprintf(c.out, "FEN: %s\n", c.builder.FEN())
			return false
		}
		if err := c.builder.CreateFromFEN(arg); err != nil {
			fmt.Fprintf(c.out, "Error: %v\n", err)
			return false
		}
		c.redraw()
	case "svg":
		if arg == "" {
			fmt.Fprintln(c.out, "Usage: svg FILE")
			return false
		}
		if err := c.saveSVG(arg); err != nil {
			fmt.Fprintf(c.out, "Error: %v\n", err)
			return false
		}
		fmt.Fprintf(c.out, "Saved %s\n", arg)
	case "x":
		c.report(c.builder.Promote(base.NoKind))
	case "q", "r", "b", "n":
		if c.builder.Phase() != interact.PhaseAwaitingPromotion {
			fmt.Fprintln(c.out, "No promotion pending")
			return false
		}
		c.report(c.builder.Promote(base.ConvertKindFromRune(rune(cmd[0]))))
	default:
		mark := strings.HasPrefix(cmd, "!")
		sq, err := base.ParseSquare(strings.ToLower(strings.TrimPrefix(cmd, "!")))
		if err != nil {
			fmt.Fprintf(c.out, "Unknown command %q, try 'help'\n", line)
			return false
		}
		if mark {
			c.report(c.builder.RightClick(sq))
		} else {
			c.report(c.builder.Click(sq))
		}
	}
	return false
}

func (c *CLIProcessing) report(r interact.Result, err error) {
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	if r.Err != nil {
		fmt.Fprintf(c.out, "Rejected: %v\n", r.Err)
	}
	switch {
	case r.Applied():
		fmt.Fprintf(c.out, "Played %s\n", r.Move.Request())
	case r.Has(interact.EffectPromotionPrompt):
		fmt.Fprintln(c.out, "Promote to q, r, b or n (x cancels)")
	case r.Has(interact.EffectCancelled):
		fmt.Fprintln(c.out, "Promotion cancelled")
	}
	c.redraw()
}

func (c *CLIProcessing) saveSVG(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("error create %s: %w", name, err)
	}
	svgboard.Render(f, c.builder.CurrentBoard(), c.builder.View(), c.flipped)
	return f.Close()
}

func (c *CLIProcessing) redraw() {
	c.draw(c.out, c.builder.CurrentBoard(), c.builder.View(), c.flipped)
	fmt.Fprintf(c.out, "FEN: %s\n", c.builder.FEN())
	fmt.Fprintf(c.out, "Turn: %s\n", c.builder.Turn())
}

func (c *CLIProcessing) prompt() {
	if c.builder.Phase() == interact.PhaseAwaitingPromotion {
		fmt.Fprint(c.out, "promote> ")
		return
	}
	fmt.Fprint(c.out, "> ")
}
