//go:build js && wasm

package gos

import (
	"bytes"
	"errors"
	"io"
	"syscall/js"
)

type fetched struct {
	data []byte
	err  error
}

// fetch(path).then(r => r.arrayBuffer()), blocking until settled
func fetchBytes(path string) ([]byte, error) {
	fetch := js.Global().Get("fetch")
	if !fetch.Truthy() {
		return nil, errors.New("fetch() not supported")
	}

	ch := make(chan fetched, 1)
	onBuffer := js.FuncOf(func(this js.Value, args []js.Value) any {
		arr := js.Global().Get("Uint8Array").New(args[0])
		data := make([]byte, arr.Get("length").Int())
		js.CopyBytesToGo(data, arr)
		ch <- fetched{data: data}
		return nil
	})
	onFail := js.FuncOf(func(this js.Value, args []js.Value) any {
		ch <- fetched{err: errors.New("fetch() failed")}
		return nil
	})
	onResponse := js.FuncOf(func(this js.Value, args []js.Value) any {
		resp := args[0]
		if !resp.Get("ok").Bool() {
			ch <- fetched{err: ErrNotExist}
			return nil
		}
		resp.Call("arrayBuffer").Call("then", onBuffer, onFail)
		return nil
	})
	defer onBuffer.Release()
	defer onFail.Release()
	defer onResponse.Release()

	fetch.Invoke(path).Call("then", onResponse).Call("catch", onFail)
	r := <-ch
	return r.data, r.err
}

func Exists(name string) bool {
	_, err := fetchBytes(name)
	return err == nil
}

func Open(name string) (ReadCloser, error) {
	data, err := fetchBytes(name)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func ReadFile(name string) ([]byte, error) {
	return fetchBytes(name)
}

// the browser has no writable file system
func WriteFile(name string, data []byte) error {
	return ErrUnsupported
}

func IsNotExist(err error) bool {
	return errors.Is(err, ErrNotExist)
}
