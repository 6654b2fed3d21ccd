//go:build js && wasm

package gdialog

import (
	"errors"
	"syscall/js"
)

var errCancelled = errors.New("no file selected")

type Result struct {
	Path string // always empty in the browser
	Name string
	Data []byte
}

type picked struct {
	res Result
	err error
}

// OpenFile shows a hidden <input type="file"> and waits for its content.
func OpenFile(title string) (Result, error) {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return Result{}, errors.New("document not available")
	}
	body := doc.Get("body")
	if !body.Truthy() {
		return Result{}, errors.New("document.body not available")
	}

	ch := make(chan picked, 1)
	input := doc.Call("createElement", "input")
	input.Set("type", "file")
	input.Set("accept", ".fen,.txt")
	input.Set("title", title)

	var onload, onerror, onchange js.Func
	onload = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		reader := this
		arr := js.Global().Get("Uint8Array").New(reader.Get("result"))
		data := make([]byte, arr.Get("length").Int())
		js.CopyBytesToGo(data, arr)
		ch <- picked{res: Result{Name: reader.Get("fileName").String(), Data: data}}
		return nil
	})
	onerror = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		ch <- picked{err: errors.New("failed to read file")}
		return nil
	})
	onchange = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		files := input.Get("files")
		if files.Length() == 0 {
			ch <- picked{err: errCancelled}
			return nil
		}
		file := files.Index(0)
		reader := js.Global().Get("FileReader").New()
		reader.Set("fileName", file.Get("name"))
		reader.Set("onload", onload)
		reader.Set("onerror", onerror)
		reader.Call("readAsArrayBuffer", file)
		return nil
	})
	defer onload.Release()
	defer onerror.Release()
	defer onchange.Release()

	input.Set("onchange", onchange)
	body.Call("appendChild", input)
	input.Call("click")

	r := <-ch
	body.Call("removeChild", input)
	return r.res, r.err
}

func ShowError(title, msg string) {
	js.Global().Call("alert", title+"\n\n"+msg)
}

func IsCancelled(err error) bool {
	return errors.Is(err, errCancelled)
}
