package canvas

import (
	"errors"
	"fmt"
	"sync"
)

// Handle identifies a registered Surface. The low 16 bits are the slot
// index and the high 16 bits the slot generation. The zero Handle is never
// issued.
type Handle uint32

func makeHandle(index int, gen uint16) Handle {
	return Handle(uint32(gen)<<16 | uint32(index))
}

func (h Handle) index() int     { return int(h & 0xFFFF) }
func (h Handle) gen() uint16    { return uint16(h >> 16) }
func (h Handle) String() string { return fmt.Sprintf("handle(%d@%d)", h.index(), h.gen()) }

var (
	// ErrUnknownHandle is returned for handles that were never issued.
	ErrUnknownHandle = errors.New("canvas: unknown context handle")
	// ErrStaleHandle is returned for handles whose slot was released.
	ErrStaleHandle = errors.New("canvas: stale context handle")
	// ErrRegistryFull is returned when every slot is in use.
	ErrRegistryFull = errors.New("canvas: context registry full")
)

const maxSlots = 1 << 16

type slot struct {
	gen     uint16
	surface Surface
}

// Registry maps handles to surfaces. The zero value is ready to use.
// It is safe for concurrent use.
type Registry struct {
	mu    sync.Mutex
	slots []slot
	free  []int
	live  int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register stores s and returns its handle.
func (r *Registry) Register(s Surface) (Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var i int
	if n := len(r.free); n > 0 {
		i = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		if len(r.slots) == maxSlots {
			return 0, ErrRegistryFull
		}
		r.slots = append(r.slots, slot{})
		i = len(r.slots) - 1
	}
	sl := &r.slots[i]
	sl.gen++
	if sl.gen == 0 {
		sl.gen = 1
	}
	sl.surface = s
	r.live++
	return makeHandle(i, sl.gen), nil
}

// Lookup resolves h.
func (r *Registry) Lookup(h Handle) (Surface, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sl, err := r.slotFor(h)
	if err != nil {
		return nil, err
	}
	return sl.surface, nil
}

// Release frees h. Later lookups of h fail with ErrStaleHandle.
func (r *Registry) Release(h Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sl, err := r.slotFor(h)
	if err != nil {
		return err
	}
	sl.surface = nil
	r.free = append(r.free, h.index())
	r.live--
	return nil
}

// Len returns the number of live handles.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live
}

func (r *Registry) slotFor(h Handle) (*slot, error) {
	i := h.index()
	if h.gen() == 0 || i >= len(r.slots) {
		return nil, fmt.Errorf("%w: %v", ErrUnknownHandle, h)
	}
	sl := &r.slots[i]
	if sl.gen != h.gen() || sl.surface == nil {
		return nil, fmt.Errorf("%w: %v", ErrStaleHandle, h)
	}
	return sl, nil
}
