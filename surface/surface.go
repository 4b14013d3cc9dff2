// Package surface holds the raster drawing surfaces a host can hand to
// canvas.Registry, and a registry of their factories keyed by name.
//
// Backends live in sub-packages and register themselves from init(),
// following the database/sql driver pattern:
//
//	import _ "github.com/efejjota/c2dbridge/surface/ggsurface"
//
//	r, err := surface.New("gg", 640, 480)
package surface

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sort"
	"sync"

	"github.com/efejjota/c2dbridge/canvas"
)

// Raster is a canvas.Surface that paints into an in-memory image.
type Raster interface {
	canvas.Surface

	// Clear fills the whole surface with c, ignoring clip and transform.
	Clear(c color.Color)

	// Image returns the current pixels. The image may share memory with the
	// surface and is only valid until the next drawing call.
	Image() image.Image

	Close() error
}

// Factory creates a raster of the given size in pixels.
type Factory func(width, height int) (Raster, error)

// ErrBadSize is returned by New for non-positive dimensions.
var ErrBadSize = errors.New("surface: width and height must be positive")

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register makes a raster backend available under name. It panics if
// factory is nil or name is already registered.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("surface: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("surface: Register called twice for " + name)
	}
	factories[name] = factory
	canvas.Logger().Debug("surface registered", "name", name)
}

// Unregister removes a backend. Used by tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// New creates a raster from the backend registered as name.
func New(name string, width, height int) (Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, width, height)
	}

	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("surface: unknown backend %q (forgotten import?)", name)
	}
	return factory(width, height)
}

// Names returns the registered backend names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
