package host

import (
	"context"
	"testing"

	"github.com/efejjota/c2dbridge/canvas"
	"github.com/efejjota/c2dbridge/canvas/canvastest"
	"github.com/efejjota/c2dbridge/internal/wasmtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

func newHost(t *testing.T) (*Host, canvas.Handle, *canvastest.Recorder, *canvas.FrameQueue) {
	t.Helper()
	reg := canvas.NewRegistry()
	rec := canvastest.New()
	h, err := reg.Register(rec)
	require.NoError(t, err)
	q := canvas.NewFrameQueue()
	return New(canvas.NewBridge(reg, canvas.WithScheduler(q))), h, rec, q
}

func TestHostDrawPath(t *testing.T) {
	hst, h, rec, _ := newHost(t)
	mem := make(sliceMemory, 64)
	mem.putF32(0, 10, 10, 50, 50)
	copy(mem[16:], []byte{0, 1, 4})

	require.NoError(t, hst.DrawPath(mem, uint32(h), 0, 2, 16, 3, 0, 0))
	assert.Equal(t, "fill nonzero moveTo(10,10); lineTo(50,50); closePath()", rec.Last())

	require.NoError(t, hst.DrawPath(mem, uint32(h), 0, 2, 16, 3, 2, 1))
	assert.Equal(t, "stroke evenodd moveTo(10,10); lineTo(50,50); closePath()", rec.Last())

	require.NoError(t, hst.ClipPath(mem, uint32(h), 0, 2, 16, 3, 1))
	assert.Equal(t, "clip evenodd moveTo(10,10); lineTo(50,50); closePath()", rec.Last())
}

func TestHostPathErrors(t *testing.T) {
	hst, h, rec, _ := newHost(t)
	mem := make(sliceMemory, 32)
	copy(mem[16:], []byte{0, 1, 4})

	// one point declared, two needed
	assert.ErrorIs(t, hst.DrawPath(mem, uint32(h), 0, 1, 16, 3, 0, 0), canvas.ErrCoordCount)
	// points run off the end of memory
	assert.ErrorIs(t, hst.DrawPath(mem, uint32(h), 24, 2, 16, 3, 0, 0), ErrOutOfBounds)
	assert.ErrorIs(t, hst.ClipPath(mem, uint32(h), 0, -1, 16, 3, 0), ErrNegativeCount)
	assert.ErrorIs(t, hst.ClipPath(mem, uint32(h), 0, 1<<30, 16, 3, 0), ErrOutOfBounds)
	assert.ErrorIs(t, hst.DrawPath(mem, uint32(h)+1, 0, 2, 16, 3, 0, 0), canvas.ErrUnknownHandle)
	assert.Empty(t, rec.Calls)
}

func TestHostGradients(t *testing.T) {
	hst, h, rec, _ := newHost(t)
	mem := make(sliceMemory, 64)
	mem.putF32(0, 0, 0, 100, 0)
	mem.putU32(16, 0xFFFF0000, 0xFF0000FF)
	mem.putF32(24, 0.75, 0.25)

	require.NoError(t, hst.SetLinearGradient(mem, uint32(h), 0, 16, 24, 2, 0))
	g := rec.FillStyle.(*canvas.Gradient)
	assert.Equal(t, 100.0, g.X1)
	assert.Equal(t, []canvas.Stop{
		{Pos: 0.75, Color: 0xFFFF0000},
		{Pos: 0.25, Color: 0xFF0000FF},
	}, g.Stops)

	require.NoError(t, hst.SetRadialGradient(mem, uint32(h), 5, 5, 9, 16, 24, 2, 1))
	g = rec.StrokeStyle.(*canvas.Gradient)
	assert.Equal(t, canvas.Radial, g.Kind)
	assert.Len(t, g.Stops, 2)

	assert.ErrorIs(t, hst.SetRadialGradient(mem, uint32(h), 0, 0, 1, 16, 60, 2, 0), ErrOutOfBounds)
	assert.ErrorIs(t, hst.SetLinearGradient(mem, uint32(h), 62, 16, 24, 2, 0), ErrOutOfBounds)
}

func TestHostModuleCalledFromGuest(t *testing.T) {
	ctx := context.Background()
	hst, h, rec, q := newHost(t)
	rt, err := NewRuntime(ctx, hst)
	require.NoError(t, err)
	t.Cleanup(func() { rt.Close(ctx) })

	i32, f32 := byte(wasmtest.I32), byte(wasmtest.F32)
	wasm := wasmtest.Forwarder(
		wasmtest.Import{Field: "ptrk_canvas_setColor", Params: []byte{i32, i32, i32}},
		wasmtest.Import{Field: "ptrk_canvas_setStrokeWidth", Params: []byte{i32, f32}},
		wasmtest.Import{Field: "ptrk_canvas_onSave", Params: []byte{i32}},
		wasmtest.Import{Field: "ptrk_canvas_onConcat", Params: []byte{i32, f32, f32, f32, f32, f32, f32}},
		wasmtest.Import{Field: "ptrk_canvas_onRestore", Params: []byte{i32}},
		wasmtest.Import{Field: "ptrk_canvas_onDrawRect", Params: []byte{i32, f32, f32, f32, f32, i32}},
		wasmtest.Import{Field: "ptrk_request_animation_frame"},
		wasmtest.Import{Field: "ptrk_canvas_onDrawPath", Params: []byte{i32, i32, i32, i32, i32, i32, i32}},
	)
	mod, err := rt.r.InstantiateWithConfig(ctx, wasm, wazero.NewModuleConfig().WithName("forwarder"))
	require.NoError(t, err)

	call := func(name string, params ...uint64) error {
		fn := mod.ExportedFunction(name)
		require.NotNil(t, fn, name)
		_, err := fn.Call(ctx, params...)
		return err
	}

	require.NoError(t, call("ptrk_canvas_setColor", uint64(h), 0xFF00FF00, 1))
	assert.Equal(t, "strokeStyle #00ff00ff", rec.Last())
	require.NoError(t, call("ptrk_canvas_setStrokeWidth", uint64(h), api.EncodeF32(0)))
	assert.Equal(t, "lineWidth 0", rec.Last())
	require.NoError(t, call("ptrk_canvas_onSave", uint64(h)))
	assert.Equal(t, "save", rec.Last())
	require.NoError(t, call("ptrk_canvas_onConcat", uint64(h),
		api.EncodeF32(2), api.EncodeF32(0), api.EncodeF32(0), api.EncodeF32(2), api.EncodeF32(5), api.EncodeF32(6)))
	assert.Equal(t, "transform 2 0 0 2 5 6", rec.Last())
	require.NoError(t, call("ptrk_canvas_onRestore", uint64(h)))
	assert.Equal(t, "restore", rec.Last())
	require.NoError(t, call("ptrk_canvas_onDrawRect", uint64(h),
		api.EncodeF32(1), api.EncodeF32(1), api.EncodeF32(4), api.EncodeF32(3), 1))
	assert.Equal(t, "strokeRect 1 1 3 2", rec.Last())

	require.NoError(t, call("ptrk_request_animation_frame"))
	assert.True(t, q.Pending())

	// the forwarding guest has no memory of its own
	err = call("ptrk_canvas_onDrawPath", uint64(h), 0, 1, 0, 0, 0, 0)
	assert.ErrorContains(t, err, ErrNoMemory.Error())
	err = call("ptrk_canvas_setColor", 0, 0, 0)
	assert.ErrorContains(t, err, canvas.ErrUnknownHandle.Error(), "unknown handle fails the call")
}

func TestMemoryOfModuleWithoutMemory(t *testing.T) {
	ctx := context.Background()
	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	mod, err := r.Instantiate(ctx, wasmtest.Module())
	require.NoError(t, err)
	assert.Nil(t, memoryOf(mod))

	mem := make(sliceMemory, 4)
	_, err = Float32s(memoryOf(mod), 0, 1)
	assert.ErrorIs(t, err, ErrNoMemory)
	_, err = Float32s(mem, 0, 1)
	assert.NoError(t, err)
}
