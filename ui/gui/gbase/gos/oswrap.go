// Package gos hides file access differences between desktop builds and the
// browser, where files are fetched over HTTP and nothing can be written.
package gos

import (
	"errors"
	"io"
)

var (
	ErrNotExist    = errors.New("file does not exist")
	ErrUnsupported = errors.New("not supported on this platform")
)

type ReadCloser = io.ReadCloser
