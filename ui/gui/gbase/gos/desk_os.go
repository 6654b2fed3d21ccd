//go:build !js && !wasm

package gos

import (
	"errors"
	"io/fs"
	"os"
)

func Exists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}

func Open(name string) (ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, wrap(err)
	}
	return f, nil
}

func ReadFile(name string) ([]byte, error) {
	b, err := os.ReadFile(name)
	return b, wrap(err)
}

func WriteFile(name string, data []byte) error {
	return os.WriteFile(name, data, 0644)
}

func IsNotExist(err error) bool {
	return errors.Is(err, ErrNotExist)
}

func wrap(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return errors.Join(ErrNotExist, err)
	}
	return err
}
