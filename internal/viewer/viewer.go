// Package viewer runs a wasm guest against a raster surface: it owns the
// wazero runtime, the handle registry and the frame queue, and turns
// frame requests, pointer events and dropped files into guest calls.
package viewer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"time"

	"golang.org/x/image/draw"

	"github.com/efejjota/c2dbridge/canvas"
	"github.com/efejjota/c2dbridge/host"
	"github.com/efejjota/c2dbridge/intake"
	"github.com/efejjota/c2dbridge/surface"
)

// WasmType is the MIME type of guest modules.
const WasmType = "application/wasm"

var wasmMagic = []byte{0x00, 'a', 's', 'm'}

// ErrNoGuest is returned when a call needs a loaded guest.
var ErrNoGuest = errors.New("viewer: no guest loaded")

// Options configures a Viewer.
type Options struct {
	Surface    string
	Width      int
	Height     int
	Background color.Color
	Logger     *slog.Logger
}

// Viewer is not safe for concurrent use; drive it from one goroutine.
type Viewer struct {
	ctx    context.Context
	log    *slog.Logger
	rt     *host.Runtime
	frames *canvas.FrameQueue
	raster surface.Raster
	handle canvas.Handle
	bg     color.Color

	guest *host.Guest
	loads int
	start time.Time
}

// New creates the surface and runtime. No guest is loaded yet.
func New(ctx context.Context, opts Options) (*Viewer, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	bg := opts.Background
	if bg == nil {
		bg = color.Transparent
	}

	raster, err := surface.New(opts.Surface, opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	reg := canvas.NewRegistry()
	h, err := reg.Register(raster)
	if err != nil {
		raster.Close()
		return nil, err
	}
	frames := canvas.NewFrameQueue()
	rt, err := host.NewRuntime(ctx, host.New(canvas.NewBridge(reg, canvas.WithScheduler(frames))))
	if err != nil {
		raster.Close()
		return nil, err
	}
	log.Info("viewer ready", "surface", opts.Surface, "width", opts.Width, "height", opts.Height, "handle", h)
	return &Viewer{
		ctx:    ctx,
		log:    log,
		rt:     rt,
		frames: frames,
		raster: raster,
		handle: h,
		bg:     bg,
		start:  time.Now(),
	}, nil
}

// Frames returns the queue guests request redraws on.
func (v *Viewer) Frames() *canvas.FrameQueue { return v.frames }

// Guest returns the loaded guest, or nil.
func (v *Viewer) Guest() *host.Guest { return v.guest }

// Load replaces the running guest with wasm and requests a frame. The
// previous guest keeps running if wasm fails to load.
func (v *Viewer) Load(name string, wasm []byte) error {
	v.loads++
	g, err := v.rt.Load(v.ctx, fmt.Sprintf("%s#%d", name, v.loads), wasm)
	if err != nil {
		return err
	}
	if v.guest != nil {
		if err := v.guest.Close(v.ctx); err != nil {
			v.log.Warn("close guest", "name", v.guest.Name(), "err", err)
		}
	}
	v.guest = g
	v.frames.RequestFrame()
	return nil
}

// Frame clears the surface, has the guest draw one frame and copies the
// result into dst.
func (v *Viewer) Frame(dst *image.RGBA) error {
	if v.guest == nil {
		return ErrNoGuest
	}
	v.raster.Clear(v.bg)
	err := v.guest.Draw(v.ctx, v.handle, time.Since(v.start).Seconds())
	src := v.raster.Image()
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return err
}

// Mouse forwards a pointer event if the guest handles them.
func (v *Viewer) Mouse(x, y float32, kind host.MouseKind) error {
	if v.guest == nil || !v.guest.HandlesMouse() {
		return nil
	}
	return v.guest.Mouse(v.ctx, x, y, kind)
}

// Key forwards a key press if the guest handles keys, and reports
// whether the guest consumed it.
func (v *Viewer) Key(k canvas.Key, uni rune, mods canvas.KeyMods) (bool, error) {
	if v.guest == nil || !v.guest.HandlesKeys() {
		return false, nil
	}
	return v.guest.KeyDown(v.ctx, k, uni, mods)
}

// IsWasm reports whether c holds a guest module.
func IsWasm(c intake.Contents) bool {
	return c.Type == WasmType || bytes.HasPrefix(c.Data, wasmMagic)
}

// HandleFile loads a dropped wasm module as the new guest and hands any
// other file to the guest's file hook.
func (v *Viewer) HandleFile(c intake.Contents) error {
	if c.Err != nil {
		return c.Err
	}
	if IsWasm(c) {
		v.log.Info("loading dropped guest", "name", c.Name, "bytes", len(c.Data))
		return v.Load(c.Name, c.Data)
	}
	if v.guest == nil {
		return ErrNoGuest
	}
	if !v.guest.AcceptsFiles() {
		v.log.Warn("guest ignores dropped files", "name", c.Name, "type", c.Type)
		return nil
	}
	v.log.Info("delivering file", "name", c.Name, "type", c.Type, "bytes", len(c.Data))
	return v.guest.DeliverFile(v.ctx, c.Name, c.Data)
}

// Close releases the guest, runtime and surface.
func (v *Viewer) Close() error {
	return errors.Join(v.rt.Close(v.ctx), v.raster.Close())
}
