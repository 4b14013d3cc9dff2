//go:build js && wasm

package jssurface

import (
	"sync"
	"syscall/js"

	"github.com/efejjota/c2dbridge/canvas"
)

// AnimationFrames is a canvas.FrameScheduler backed by
// window.requestAnimationFrame. Requests made before the pending frame
// fires coalesce into it.
type AnimationFrames struct {
	mu      sync.Mutex
	pending bool
	onFrame func(secs float64)
	cb      js.Func
}

var _ canvas.FrameScheduler = (*AnimationFrames)(nil)

// NewAnimationFrames calls onFrame with the frame timestamp in seconds each
// time a requested frame fires.
func NewAnimationFrames(onFrame func(secs float64)) *AnimationFrames {
	a := &AnimationFrames{onFrame: onFrame}
	a.cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		a.mu.Lock()
		a.pending = false
		a.mu.Unlock()
		var ms float64
		if len(args) > 0 {
			ms = args[0].Float()
		}
		a.onFrame(ms / 1000)
		return nil
	})
	return a
}

func (a *AnimationFrames) RequestFrame() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.pending {
		return
	}
	a.pending = true
	js.Global().Call("requestAnimationFrame", a.cb)
}

// Release frees the JS callback. Pending frames will fail to fire.
func (a *AnimationFrames) Release() { a.cb.Release() }
