//go:build !js && !wasm

package gdialog

import (
	"os"
	"path/filepath"

	"github.com/sqweek/dialog"
)

type Result struct {
	Path string
	Name string
	Data []byte
}

// OpenFile blocks until the native file chooser is closed.
func OpenFile(title string) (Result, error) {
	path, err := dialog.File().Title(title).Filter("FEN position", "fen", "txt").Load()
	if err != nil {
		return Result{}, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Path: path,
		Name: filepath.Base(path),
		Data: b,
	}, nil
}

func ShowError(title, msg string) {
	dialog.Message("%s", msg).Title(title).Error()
}

func IsCancelled(err error) bool {
	return err == dialog.ErrCancelled
}
