//go:build wasip1

package guest

import (
	"runtime"
	"unsafe"
)

//go:wasmimport env ptrk_request_animation_frame
func ptrkRequestAnimationFrame()

//go:wasmimport env ptrk_canvas_setLinearGradient
func ptrkSetLinearGradient(ctx, pts, colors, pos uint32, n, isStroke int32)

//go:wasmimport env ptrk_canvas_setRadialGradient
func ptrkSetRadialGradient(ctx uint32, cx, cy, r float32, colors, pos uint32, n, isStroke int32)

//go:wasmimport env ptrk_canvas_setColor
func ptrkSetColor(ctx, c uint32, isStroke int32)

//go:wasmimport env ptrk_canvas_setStrokeWidth
func ptrkSetStrokeWidth(ctx uint32, w float32)

//go:wasmimport env ptrk_canvas_onSave
func ptrkSave(ctx uint32)

//go:wasmimport env ptrk_canvas_onRestore
func ptrkRestore(ctx uint32)

//go:wasmimport env ptrk_canvas_onConcat
func ptrkConcat(ctx uint32, a, b, c, d, e, f float32)

//go:wasmimport env ptrk_canvas_onClipPath
func ptrkClipPath(ctx, pts uint32, npts int32, verbs uint32, nverbs, fillType int32)

//go:wasmimport env ptrk_canvas_onDrawRect
func ptrkDrawRect(ctx uint32, l, t, r, b float32, isStroke int32)

//go:wasmimport env ptrk_canvas_onDrawPath
func ptrkDrawPath(ctx, pts uint32, npts int32, verbs uint32, nverbs, fillType, isStroke int32)

// Imports implements Calls with the host's wasm imports.
var Imports Calls = wasmCalls{}

type wasmCalls struct{}

// addr returns the linear-memory offset of the first element, or 0 for an
// empty slice.
func addr[T any](s []T) uint32 {
	if len(s) == 0 {
		return 0
	}
	return uint32(uintptr(unsafe.Pointer(&s[0])))
}

func flag(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

func (wasmCalls) RequestAnimationFrame() { ptrkRequestAnimationFrame() }

func (wasmCalls) SetLinearGradient(ctx uint32, pts [4]float32, colors []uint32, pos []float32, isStroke bool) {
	ptrkSetLinearGradient(ctx, addr(pts[:]), addr(colors), addr(pos), int32(len(colors)), flag(isStroke))
	runtime.KeepAlive(&pts)
	runtime.KeepAlive(colors)
	runtime.KeepAlive(pos)
}

func (wasmCalls) SetRadialGradient(ctx uint32, cx, cy, r float32, colors []uint32, pos []float32, isStroke bool) {
	ptrkSetRadialGradient(ctx, cx, cy, r, addr(colors), addr(pos), int32(len(colors)), flag(isStroke))
	runtime.KeepAlive(colors)
	runtime.KeepAlive(pos)
}

func (wasmCalls) SetColor(ctx uint32, c uint32, isStroke bool) { ptrkSetColor(ctx, c, flag(isStroke)) }
func (wasmCalls) SetStrokeWidth(ctx uint32, w float32)         { ptrkSetStrokeWidth(ctx, w) }
func (wasmCalls) Save(ctx uint32)                              { ptrkSave(ctx) }
func (wasmCalls) Restore(ctx uint32)                           { ptrkRestore(ctx) }

func (wasmCalls) Concat(ctx uint32, a, b, c, d, e, f float32) {
	ptrkConcat(ctx, a, b, c, d, e, f)
}

func (wasmCalls) ClipPath(ctx uint32, pts []float32, verbs []byte, fillType int32) {
	ptrkClipPath(ctx, addr(pts), int32(len(pts)/2), addr(verbs), int32(len(verbs)), fillType)
	runtime.KeepAlive(pts)
	runtime.KeepAlive(verbs)
}

func (wasmCalls) DrawRect(ctx uint32, l, t, r, b float32, isStroke bool) {
	ptrkDrawRect(ctx, l, t, r, b, flag(isStroke))
}

func (wasmCalls) DrawPath(ctx uint32, pts []float32, verbs []byte, fillType int32, isStroke bool) {
	ptrkDrawPath(ctx, addr(pts), int32(len(pts)/2), addr(verbs), int32(len(verbs)), fillType, flag(isStroke))
	runtime.KeepAlive(pts)
	runtime.KeepAlive(verbs)
}
