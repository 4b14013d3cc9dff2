package viewer

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efejjota/c2dbridge/canvas"
	"github.com/efejjota/c2dbridge/host"
	"github.com/efejjota/c2dbridge/intake"
	"github.com/efejjota/c2dbridge/internal/wasmtest"
	"github.com/efejjota/c2dbridge/surface/ggsurface"
)

func newViewer(t *testing.T) *Viewer {
	t.Helper()
	v, err := New(context.Background(), Options{
		Surface:    ggsurface.Name,
		Width:      8,
		Height:     8,
		Background: color.White,
	})
	require.NoError(t, err)
	t.Cleanup(func() { v.Close() })
	return v
}

func TestFrameWithoutGuest(t *testing.T) {
	v := newViewer(t)
	assert.ErrorIs(t, v.Frame(image.NewRGBA(image.Rect(0, 0, 8, 8))), ErrNoGuest)
	assert.NoError(t, v.Mouse(1, 1, host.MouseDown))
}

func TestLoadAndFrame(t *testing.T) {
	v := newViewer(t)
	require.NoError(t, v.Load("rect", wasmtest.RectGuest()))
	assert.True(t, v.Frames().Pending(), "load requests the first frame")

	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))
	require.NoError(t, v.Frame(dst))

	// Black fill over l=1 t=2 r=3 b=4 on white.
	assert.Equal(t, color.RGBA{0, 0, 0, 0xFF}, dst.RGBAAt(2, 3))
	assert.Equal(t, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}, dst.RGBAAt(6, 6))
}

func TestFailedLoadKeepsGuest(t *testing.T) {
	v := newViewer(t)
	require.NoError(t, v.Load("rect", wasmtest.RectGuest()))
	old := v.Guest()

	assert.Error(t, v.Load("junk", []byte("\x00asm junk")))
	assert.Same(t, old, v.Guest())
}

func TestHandleFile(t *testing.T) {
	v := newViewer(t)

	assert.ErrorIs(t, v.HandleFile(intake.Contents{Name: "a.txt", Data: []byte("x")}), ErrNoGuest)

	require.NoError(t, v.HandleFile(intake.Contents{Name: "g.wasm", Data: wasmtest.InteractiveGuest(), Type: WasmType}))
	assert.True(t, v.Frames().Pending())
	require.NotNil(t, v.Guest())

	require.NoError(t, v.HandleFile(intake.Contents{Name: "a.txt", Data: []byte("x"), Type: "text/plain"}))
	assert.True(t, v.Frames().Pending(), "the guest's file hook requests a frame")

	require.NoError(t, v.Mouse(1, 1, host.MouseDown))
	assert.True(t, v.Frames().Pending())
}

func TestHandleFileIgnoredByGuest(t *testing.T) {
	v := newViewer(t)
	require.NoError(t, v.Load("rect", wasmtest.RectGuest()))
	v.Frames().Pending()

	require.NoError(t, v.HandleFile(intake.Contents{Name: "a.txt", Data: []byte("x")}))
	assert.False(t, v.Frames().Pending())
}

func TestKeyForwarding(t *testing.T) {
	v := newViewer(t)

	handled, err := v.Key(canvas.KeyArrowLeft, 0, 0)
	require.NoError(t, err)
	assert.False(t, handled, "no guest")

	require.NoError(t, v.Load("rect", wasmtest.RectGuest()))
	v.Frames().Pending()
	handled, err = v.Key(canvas.KeyArrowLeft, 0, 0)
	require.NoError(t, err)
	assert.False(t, handled, "guest without a key handler")
	assert.False(t, v.Frames().Pending())

	require.NoError(t, v.Load("keys", wasmtest.InteractiveGuest()))
	v.Frames().Pending()
	handled, err = v.Key(canvas.KeyArrowRight, 0, canvas.ModControl)
	require.NoError(t, err)
	assert.True(t, handled)
	assert.True(t, v.Frames().Pending(), "the guest's key hook requests a frame")

	handled, err = v.Key(canvas.KeyNone, 'x', 0)
	require.NoError(t, err)
	assert.False(t, handled)
}

func TestIsWasm(t *testing.T) {
	assert.True(t, IsWasm(intake.Contents{Type: WasmType}))
	assert.True(t, IsWasm(intake.Contents{Data: wasmtest.Module()}))
	assert.False(t, IsWasm(intake.Contents{Data: []byte("text")}))
}

func TestUnknownSurface(t *testing.T) {
	_, err := New(context.Background(), Options{Surface: "nope", Width: 1, Height: 1})
	assert.Error(t, err)
}
