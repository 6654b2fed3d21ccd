//go:build js && wasm

package main

import (
	"clickchess/src/chesslib"
	"clickchess/src/logx"
	"clickchess/ui/gui"
	"clickchess/ui/gui/gbase/gconf"
	"clickchess/ui/gui/ghelper/gdialog"
)

// browser build: logs go to the JS console, config is fetched next to the page
func main() {
	logger := logx.NewLogx(logx.GetLoggerLevelByString("debug"), false, true)
	logger.InitLogger(nil)

	g, err := gui.NewGUI(chesslib.NewBuilderBoard(logger), gconf.DefaultFile, logger)
	if err != nil {
		logger.Errorf("error init GUI: %v", err)
		gdialog.ShowError("ClickChess", err.Error())
		return
	}
	if err := g.Run(); err != nil {
		logger.Errorf("GUI stopped: %v", err)
	}
}
