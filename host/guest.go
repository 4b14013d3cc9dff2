package host

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/efejjota/c2dbridge/canvas"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
)

// ErrMissingExport is returned when a guest does not export a function
// the caller needs.
var ErrMissingExport = errors.New("host: guest export missing")

// Guest exports.
const (
	ExportDraw        = "draw"
	ExportMouse       = "dispatch_mouse_event"
	ExportAlloc       = "ptrk_alloc"
	ExportFileDropped = "ptrk_file_dropped"
	ExportKeyDown     = "dispatch_key_down"
)

// MouseKind is the event type passed to a guest's mouse handler.
type MouseKind int32

const (
	MouseDown MouseKind = iota
	MouseUp
	MouseMove
	MouseHover
)

// Runtime is a wazero runtime with WASI and the bridge module loaded,
// ready to run guests.
type Runtime struct {
	r    wazero.Runtime
	host *Host
}

// NewRuntime creates a runtime whose guests import the functions of h.
func NewRuntime(ctx context.Context, h *Host) (*Runtime, error) {
	r := wazero.NewRuntime(ctx)
	if _, err := wasi_snapshot_preview1.Instantiate(ctx, r); err != nil {
		r.Close(ctx)
		return nil, fmt.Errorf("host: instantiate wasi: %w", err)
	}
	if _, err := h.Instantiate(ctx, r); err != nil {
		r.Close(ctx)
		return nil, err
	}
	return &Runtime{r: r, host: h}, nil
}

// Close releases the runtime and every guest it loaded.
func (rt *Runtime) Close(ctx context.Context) error {
	return rt.r.Close(ctx)
}

// Load compiles and instantiates a guest. Guests are reactors: their
// "_initialize" export, if any, runs once, and "draw" is required.
func (rt *Runtime) Load(ctx context.Context, name string, wasm []byte) (*Guest, error) {
	cfg := wazero.NewModuleConfig().
		WithName(name).
		WithStartFunctions("_initialize").
		WithStdout(os.Stdout).
		WithStderr(os.Stderr).
		WithSysWalltime().
		WithSysNanotime()

	mod, err := rt.r.InstantiateWithConfig(ctx, wasm, cfg)
	if err != nil {
		return nil, fmt.Errorf("host: instantiate guest %q: %w", name, err)
	}
	g := &Guest{
		name:    name,
		mod:     mod,
		draw:    mod.ExportedFunction(ExportDraw),
		mouse:   mod.ExportedFunction(ExportMouse),
		alloc:   mod.ExportedFunction(ExportAlloc),
		dropped: mod.ExportedFunction(ExportFileDropped),
		key:     mod.ExportedFunction(ExportKeyDown),
	}
	if g.draw == nil {
		mod.Close(ctx)
		return nil, fmt.Errorf("%w: %s in %q", ErrMissingExport, ExportDraw, name)
	}
	canvas.Logger().Info("guest loaded", "name", name, "bytes", len(wasm),
		"mouse", g.mouse != nil, "keys", g.key != nil, "files", g.AcceptsFiles())
	return g, nil
}

// Guest is an instantiated rendering module.
type Guest struct {
	name string
	mod  api.Module

	draw, mouse, key, alloc, dropped api.Function
}

// Name returns the module name the guest was loaded under.
func (g *Guest) Name() string { return g.name }

// Draw asks the guest to paint one frame onto the surface behind h.
// secs is the frame time in seconds.
func (g *Guest) Draw(ctx context.Context, h canvas.Handle, secs float64) error {
	if _, err := g.draw.Call(ctx, uint64(h), api.EncodeF64(secs)); err != nil {
		return fmt.Errorf("guest %q: draw: %w", g.name, err)
	}
	return nil
}

// HandlesMouse reports whether the guest exports a mouse handler.
func (g *Guest) HandlesMouse() bool { return g.mouse != nil }

// Mouse forwards a pointer event.
func (g *Guest) Mouse(ctx context.Context, x, y float32, kind MouseKind) error {
	if g.mouse == nil {
		return fmt.Errorf("%w: %s", ErrMissingExport, ExportMouse)
	}
	if _, err := g.mouse.Call(ctx, api.EncodeF32(x), api.EncodeF32(y), api.EncodeI32(int32(kind))); err != nil {
		return fmt.Errorf("guest %q: mouse: %w", g.name, err)
	}
	return nil
}

// HandlesKeys reports whether the guest exports a key handler.
func (g *Guest) HandlesKeys() bool { return g.key != nil }

// KeyDown forwards a key press and reports whether the guest handled it.
// uni is the character typed, or 0 for keys that produce none.
func (g *Guest) KeyDown(ctx context.Context, k canvas.Key, uni rune, mods canvas.KeyMods) (bool, error) {
	if g.key == nil {
		return false, fmt.Errorf("%w: %s", ErrMissingExport, ExportKeyDown)
	}
	res, err := g.key.Call(ctx, api.EncodeI32(int32(k)), api.EncodeI32(uni), api.EncodeI32(int32(mods)))
	if err != nil {
		return false, fmt.Errorf("guest %q: key down: %w", g.name, err)
	}
	return len(res) > 0 && api.DecodeI32(res[0]) != 0, nil
}

// AcceptsFiles reports whether the guest can receive dropped files.
func (g *Guest) AcceptsFiles() bool { return g.alloc != nil && g.dropped != nil }

// DeliverFile copies name and data into guest memory and calls the
// guest's file hook.
func (g *Guest) DeliverFile(ctx context.Context, name string, data []byte) error {
	if !g.AcceptsFiles() {
		return fmt.Errorf("%w: %s/%s", ErrMissingExport, ExportAlloc, ExportFileDropped)
	}
	total := uint64(len(name)) + uint64(len(data))
	res, err := g.alloc.Call(ctx, total)
	if err != nil {
		return fmt.Errorf("guest %q: alloc: %w", g.name, err)
	}
	ptr := uint32(res[0])
	dataPtr := ptr + uint32(len(name))

	mem := g.mod.Memory()
	if memoryOf(g.mod) == nil {
		return ErrNoMemory
	}
	if !mem.WriteString(ptr, name) || !mem.Write(dataPtr, data) {
		return fmt.Errorf("%w: %d bytes at %#x", ErrOutOfBounds, total, ptr)
	}
	_, err = g.dropped.Call(ctx, uint64(ptr), uint64(len(name)), uint64(dataPtr), uint64(len(data)))
	if err != nil {
		return fmt.Errorf("guest %q: file dropped: %w", g.name, err)
	}
	return nil
}

// Close releases the guest instance so another can be loaded under the
// same name.
func (g *Guest) Close(ctx context.Context) error {
	return g.mod.Close(ctx)
}
