//go:build wasip1

package main

import (
	"time"
	"unsafe"

	"github.com/efejjota/c2dbridge/canvas"
	"github.com/efejjota/c2dbridge/guest"
	"github.com/efejjota/c2dbridge/internal/demo"
)

var (
	app = demo.NewScene(guest.Imports, uint64(time.Now().UnixNano()))

	// inbox holds the last buffer handed out by ptrkAlloc until the host
	// calls ptrkFileDropped.
	inbox []byte
)

//go:wasmexport draw
func draw(ctx uint32, t float64) {
	app.Draw(ctx, t)
}

//go:wasmexport dispatch_mouse_event
func dispatchMouseEvent(x, y float32, kind int32) {
	app.Mouse(x, y, kind)
}

//go:wasmexport dispatch_key_down
func dispatchKeyDown(code, uni, mods int32) int32 {
	if app.KeyDown(canvas.Key(code), rune(uni), canvas.KeyMods(mods)) {
		return 1
	}
	return 0
}

//go:wasmexport ptrk_alloc
func ptrkAlloc(size int32) uint32 {
	inbox = make([]byte, max(size, 1))
	return uint32(uintptr(unsafe.Pointer(&inbox[0])))
}

//go:wasmexport ptrk_file_dropped
func ptrkFileDropped(namePtr uint32, nameLen int32, dataPtr uint32, dataLen int32) {
	if len(inbox) == 0 || namePtr != uint32(uintptr(unsafe.Pointer(&inbox[0]))) {
		return
	}
	if nameLen < 0 || dataLen < 0 || int(nameLen)+int(dataLen) > len(inbox) {
		return
	}
	name := string(inbox[:nameLen])
	data := inbox[nameLen : nameLen+dataLen]
	inbox = nil
	app.FileDropped(name, data)
}
