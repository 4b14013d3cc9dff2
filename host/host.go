package host

import (
	"context"
	"fmt"
	"math"
	"reflect"

	"github.com/efejjota/c2dbridge/canvas"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

// ModuleName is the import module guests use for the bridge functions.
const ModuleName = "env"

// Host exposes a canvas.Bridge to wasm guests as imported functions.
//
// Pointer arguments are offsets into the calling guest's memory and are
// bounds-checked before use. A failing call panics inside the host
// function, which wazero turns into an error returned from the guest
// export that made the call.
type Host struct {
	bridge *canvas.Bridge
}

// New returns a host over b.
func New(b *canvas.Bridge) *Host {
	return &Host{bridge: b}
}

// Bridge returns the bridge the host forwards to.
func (h *Host) Bridge() *canvas.Bridge { return h.bridge }

func (h *Host) check(op string, err error) {
	if err != nil {
		canvas.Logger().Error("bridge call failed", "op", op, "err", err)
		panic(fmt.Errorf("%s: %w", op, err))
	}
}

// memoryOf returns the memory m defines, or nil. wazero reports a missing
// memory as a typed nil inside api.Memory.
func memoryOf(m api.Module) Memory {
	mem := m.Memory()
	if mem == nil {
		return nil
	}
	if v := reflect.ValueOf(mem); v.Kind() == reflect.Pointer && v.IsNil() {
		return nil
	}
	return mem
}

// Instantiate registers the bridge functions as the "env" module of r.
func (h *Host) Instantiate(ctx context.Context, r wazero.Runtime) (api.Module, error) {
	b := r.NewHostModuleBuilder(ModuleName)
	export := func(name string, fn any) {
		b.NewFunctionBuilder().WithFunc(fn).Export(name)
	}

	export("ptrk_request_animation_frame", func(ctx context.Context) {
		h.check("requestAnimationFrame", h.RequestAnimationFrame())
	})
	export("ptrk_canvas_setLinearGradient", func(ctx context.Context, m api.Module, ctxID, ptsPtr, colorsPtr, posPtr uint32, n, isStroke int32) {
		h.check("setLinearGradient", h.SetLinearGradient(memoryOf(m), ctxID, ptsPtr, colorsPtr, posPtr, n, isStroke))
	})
	export("ptrk_canvas_setRadialGradient", func(ctx context.Context, m api.Module, ctxID uint32, cx, cy, radius float32, colorsPtr, posPtr uint32, n, isStroke int32) {
		h.check("setRadialGradient", h.SetRadialGradient(memoryOf(m), ctxID, cx, cy, radius, colorsPtr, posPtr, n, isStroke))
	})
	export("ptrk_canvas_setColor", func(ctx context.Context, ctxID, c32 uint32, isStroke int32) {
		h.check("setColor", h.bridge.SetColor(canvas.Handle(ctxID), canvas.Color32(c32), isStroke != 0))
	})
	export("ptrk_canvas_setStrokeWidth", func(ctx context.Context, ctxID uint32, width float32) {
		h.check("setStrokeWidth", h.bridge.SetStrokeWidth(canvas.Handle(ctxID), width))
	})
	export("ptrk_canvas_onSave", func(ctx context.Context, ctxID uint32) {
		h.check("save", h.bridge.Save(canvas.Handle(ctxID)))
	})
	export("ptrk_canvas_onRestore", func(ctx context.Context, ctxID uint32) {
		h.check("restore", h.bridge.Restore(canvas.Handle(ctxID)))
	})
	export("ptrk_canvas_onConcat", func(ctx context.Context, ctxID uint32, a, bb, c, d, e, f float32) {
		h.check("concat", h.bridge.Concat(canvas.Handle(ctxID), a, bb, c, d, e, f))
	})
	export("ptrk_canvas_onClipPath", func(ctx context.Context, m api.Module, ctxID, ptsPtr uint32, npts int32, vbsPtr uint32, nvbs, fillType int32) {
		h.check("clipPath", h.ClipPath(memoryOf(m), ctxID, ptsPtr, npts, vbsPtr, nvbs, fillType))
	})
	export("ptrk_canvas_onDrawRect", func(ctx context.Context, ctxID uint32, l, t, r, bottom float32, isStroke int32) {
		h.check("drawRect", h.bridge.DrawRect(canvas.Handle(ctxID), l, t, r, bottom, isStroke != 0))
	})
	export("ptrk_canvas_onDrawPath", func(ctx context.Context, m api.Module, ctxID, ptsPtr uint32, npts int32, vbsPtr uint32, nvbs, fillType, isStroke int32) {
		h.check("drawPath", h.DrawPath(memoryOf(m), ctxID, ptsPtr, npts, vbsPtr, nvbs, fillType, isStroke))
	})

	mod, err := b.Instantiate(ctx)
	if err != nil {
		return nil, fmt.Errorf("host: instantiate %q: %w", ModuleName, err)
	}
	return mod, nil
}

// RequestAnimationFrame forwards a guest's redraw request.
func (h *Host) RequestAnimationFrame() error {
	return h.bridge.RequestAnimationFrame()
}

// SetLinearGradient reads 4 endpoint floats and n colour/position pairs.
func (h *Host) SetLinearGradient(mem Memory, ctxID, ptsPtr, colorsPtr, posPtr uint32, n, isStroke int32) error {
	pts, err := Float32s(mem, ptsPtr, 4)
	if err != nil {
		return err
	}
	colors, pos, err := stops(mem, colorsPtr, posPtr, n)
	if err != nil {
		return err
	}
	return h.bridge.SetLinearGradient(canvas.Handle(ctxID), [4]float32(pts), colors, pos, isStroke != 0)
}

// SetRadialGradient reads n colour/position pairs.
func (h *Host) SetRadialGradient(mem Memory, ctxID uint32, cx, cy, radius float32, colorsPtr, posPtr uint32, n, isStroke int32) error {
	colors, pos, err := stops(mem, colorsPtr, posPtr, n)
	if err != nil {
		return err
	}
	return h.bridge.SetRadialGradient(canvas.Handle(ctxID), cx, cy, radius, colors, pos, isStroke != 0)
}

func stops(mem Memory, colorsPtr, posPtr uint32, n int32) ([]uint32, []float32, error) {
	colors, err := Uint32s(mem, colorsPtr, n)
	if err != nil {
		return nil, nil, fmt.Errorf("colors: %w", err)
	}
	pos, err := Float32s(mem, posPtr, n)
	if err != nil {
		return nil, nil, fmt.Errorf("positions: %w", err)
	}
	return colors, pos, nil
}

func pathArgs(mem Memory, ptsPtr uint32, npts int32, vbsPtr uint32, nvbs int32) ([]float32, []byte, error) {
	if npts < 0 {
		return nil, nil, fmt.Errorf("points: %w: %d", ErrNegativeCount, npts)
	}
	if npts > math.MaxInt32/2 {
		return nil, nil, fmt.Errorf("points: %w: %d points", ErrOutOfBounds, npts)
	}
	// npts counts points; each point is two floats.
	pts, err := Float32s(mem, ptsPtr, npts*2)
	if err != nil {
		return nil, nil, fmt.Errorf("points: %w", err)
	}
	verbs, err := Bytes(mem, vbsPtr, nvbs)
	if err != nil {
		return nil, nil, fmt.Errorf("verbs: %w", err)
	}
	return pts, verbs, nil
}

// ClipPath reads npts points and nvbs verbs and clips to the path.
func (h *Host) ClipPath(mem Memory, ctxID, ptsPtr uint32, npts int32, vbsPtr uint32, nvbs, fillType int32) error {
	pts, verbs, err := pathArgs(mem, ptsPtr, npts, vbsPtr, nvbs)
	if err != nil {
		return err
	}
	return h.bridge.ClipPath(canvas.Handle(ctxID), pts, verbs, canvas.FillRuleFromFlag(fillType))
}

// DrawPath reads npts points and nvbs verbs and fills or strokes the path.
func (h *Host) DrawPath(mem Memory, ctxID, ptsPtr uint32, npts int32, vbsPtr uint32, nvbs, fillType, isStroke int32) error {
	pts, verbs, err := pathArgs(mem, ptsPtr, npts, vbsPtr, nvbs)
	if err != nil {
		return err
	}
	return h.bridge.DrawPath(canvas.Handle(ctxID), pts, verbs, canvas.FillRuleFromFlag(fillType), isStroke != 0)
}
