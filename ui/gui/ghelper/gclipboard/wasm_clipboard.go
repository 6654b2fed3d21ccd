//go:build js && wasm

package gclipboard

import (
	"errors"
	"syscall/js"
)

type settled struct {
	err error
}

// await runs promise to completion
func await(promise js.Value) (js.Value, error) {
	ch := make(chan settled, 1)
	var value js.Value
	then := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) > 0 {
			value = args[0]
		}
		ch <- settled{}
		return nil
	})
	catch := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		msg := "clipboard request rejected"
		if len(args) > 0 {
			msg = args[0].String()
		}
		ch <- settled{err: errors.New(msg)}
		return nil
	})
	defer then.Release()
	defer catch.Release()

	promise.Call("then", then).Call("catch", catch)
	r := <-ch
	return value, r.err
}

func api() (js.Value, error) {
	nav := js.Global().Get("navigator")
	if !nav.Truthy() || !nav.Get("clipboard").Truthy() {
		return js.Undefined(), errors.New("navigator.clipboard not available")
	}
	return nav.Get("clipboard"), nil
}

func ReadAll() (string, error) {
	cb, err := api()
	if err != nil {
		return "", err
	}
	v, err := await(cb.Call("readText"))
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

func WriteAll(text string) error {
	cb, err := api()
	if err == nil {
		_, err = await(cb.Call("writeText", text))
		return err
	}

	// older browsers: hidden textarea and execCommand("copy")
	doc := js.Global().Get("document")
	if !doc.Truthy() || !doc.Get("body").Truthy() {
		return errors.New("clipboard write not available")
	}
	ta := doc.Call("createElement", "textarea")
	ta.Get("style").Set("position", "fixed")
	ta.Get("style").Set("left", "-10000px")
	ta.Set("value", text)
	doc.Get("body").Call("appendChild", ta)
	ta.Call("select")
	ok := doc.Call("execCommand", "copy").Bool()
	doc.Get("body").Call("removeChild", ta)
	if !ok {
		return errors.New("fallback copy failed")
	}
	return nil
}
