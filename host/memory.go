package host

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Memory is the part of a guest's linear memory the bridge reads from.
// wazero's api.Memory satisfies it.
type Memory interface {
	Read(offset, byteCount uint32) ([]byte, bool)
}

var (
	// ErrOutOfBounds is returned when a pointer/length pair reaches past
	// the end of guest memory.
	ErrOutOfBounds = errors.New("host: guest memory access out of bounds")
	// ErrNoMemory is returned when the calling module exports no memory.
	ErrNoMemory = errors.New("host: caller has no linear memory")
	// ErrNegativeCount is returned for negative element counts.
	ErrNegativeCount = errors.New("host: negative element count")
)

func view(mem Memory, ptr uint32, n int32, size uint64) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	if n == 0 {
		return nil, nil
	}
	if mem == nil {
		return nil, ErrNoMemory
	}
	total := uint64(n) * size
	if total > math.MaxUint32 || uint64(ptr)+total > math.MaxUint32+1 {
		return nil, fmt.Errorf("%w: %d bytes at %#x", ErrOutOfBounds, total, ptr)
	}
	buf, ok := mem.Read(ptr, uint32(total))
	if !ok {
		return nil, fmt.Errorf("%w: %d bytes at %#x", ErrOutOfBounds, total, ptr)
	}
	return buf, nil
}

// Float32s copies n little-endian float32 values starting at ptr.
func Float32s(mem Memory, ptr uint32, n int32) ([]float32, error) {
	buf, err := view(mem, ptr, n, 4)
	if err != nil || buf == nil {
		return nil, err
	}
	out := make([]float32, n)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	return out, nil
}

// Uint32s copies n little-endian uint32 values starting at ptr.
func Uint32s(mem Memory, ptr uint32, n int32) ([]uint32, error) {
	buf, err := view(mem, ptr, n, 4)
	if err != nil || buf == nil {
		return nil, err
	}
	out := make([]uint32, n)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(buf[i*4:])
	}
	return out, nil
}

// Bytes copies n bytes starting at ptr.
func Bytes(mem Memory, ptr uint32, n int32) ([]byte, error) {
	buf, err := view(mem, ptr, n, 1)
	if err != nil || buf == nil {
		return nil, err
	}
	return append([]byte(nil), buf...), nil
}
