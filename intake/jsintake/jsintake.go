//go:build js && wasm

// Package jsintake connects browser drag and drop to an intake.Intake.
package jsintake

import (
	"errors"
	"syscall/js"

	"github.com/efejjota/c2dbridge/intake"
)

// File is a DOM File. ReadAll reads it with FileReader.readAsArrayBuffer
// and blocks until the reader finishes, so call it off the event loop
// (intake.ReadFile does).
type File struct {
	v js.Value
}

var _ intake.File = File{}

func (f File) Name() string { return f.v.Get("name").String() }

func (f File) ReadAll() ([]byte, error) {
	type result struct {
		data []byte
		err  error
	}
	done := make(chan result, 1)
	reader := js.Global().Get("FileReader").New()

	onLoad := js.FuncOf(func(this js.Value, args []js.Value) any {
		buf := js.Global().Get("Uint8Array").New(reader.Get("result"))
		data := make([]byte, buf.Get("length").Int())
		js.CopyBytesToGo(data, buf)
		done <- result{data: data}
		return nil
	})
	onError := js.FuncOf(func(this js.Value, args []js.Value) any {
		msg := "read failed"
		if e := reader.Get("error"); !e.IsNull() && !e.IsUndefined() {
			msg = e.Get("message").String()
		}
		done <- result{err: errors.New("jsintake: " + msg)}
		return nil
	})
	defer onLoad.Release()
	defer onError.Release()

	reader.Set("onload", onLoad)
	reader.Set("onerror", onError)
	reader.Call("readAsArrayBuffer", f.v)
	r := <-done
	return r.data, r.err
}

// Handle removes the listeners installed by Install.
type Handle struct {
	el    js.Value
	funcs map[string]js.Func
}

// Install adds dragenter, dragover and drop listeners to el. All three
// stop propagation and prevent the browser default; a drop hands its
// files to in.
func Install(el js.Value, in *intake.Intake) *Handle {
	h := &Handle{el: el, funcs: make(map[string]js.Func, 3)}
	swallow := func(ev js.Value) {
		ev.Call("stopPropagation")
		ev.Call("preventDefault")
	}
	h.funcs["dragenter"] = js.FuncOf(func(this js.Value, args []js.Value) any {
		swallow(args[0])
		return nil
	})
	h.funcs["dragover"] = js.FuncOf(func(this js.Value, args []js.Value) any {
		swallow(args[0])
		return nil
	})
	h.funcs["drop"] = js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := args[0]
		swallow(ev)
		list := ev.Get("dataTransfer").Get("files")
		files := make([]intake.File, list.Length())
		for i := range files {
			files[i] = File{v: list.Index(i)}
		}
		in.Drop(files)
		return nil
	})
	for name, fn := range h.funcs {
		el.Call("addEventListener", name, fn, false)
	}
	return h
}

// Remove uninstalls the listeners and releases their callbacks.
func (h *Handle) Remove() {
	for name, fn := range h.funcs {
		h.el.Call("removeEventListener", name, fn, false)
		fn.Release()
	}
	h.funcs = nil
}
