package host

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceMemory is a Memory backed by a byte slice.
type sliceMemory []byte

func (m sliceMemory) Read(offset, n uint32) ([]byte, bool) {
	end := uint64(offset) + uint64(n)
	if end > uint64(len(m)) {
		return nil, false
	}
	return m[offset:end], true
}

func (m sliceMemory) putF32(off int, vs ...float32) {
	for i, v := range vs {
		binary.LittleEndian.PutUint32(m[off+4*i:], math.Float32bits(v))
	}
}

func (m sliceMemory) putU32(off int, vs ...uint32) {
	for i, v := range vs {
		binary.LittleEndian.PutUint32(m[off+4*i:], v)
	}
}

func TestTypedViews(t *testing.T) {
	mem := make(sliceMemory, 64)
	mem.putF32(0, 1.5, -2, 1e6)
	mem.putU32(16, 0xFF00FF00, 7)
	copy(mem[32:], []byte{0, 1, 2, 3, 4})

	f, err := Float32s(mem, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []float32{1.5, -2, 1e6}, f)

	u, err := Uint32s(mem, 16, 2)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0xFF00FF00, 7}, u)

	b, err := Bytes(mem, 32, 5)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 2, 3, 4}, b)

	b[0] = 9
	assert.Equal(t, byte(0), mem[32], "Bytes returns a copy")
}

func TestTypedViewsBounds(t *testing.T) {
	mem := make(sliceMemory, 16)

	_, err := Float32s(mem, 0, 5)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = Uint32s(mem, 12, 2)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = Bytes(mem, 16, 1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = Float32s(mem, math.MaxUint32-3, 2)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = Float32s(mem, 0, math.MaxInt32)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = Bytes(mem, 0, -1)
	assert.ErrorIs(t, err, ErrNegativeCount)

	_, err = Bytes(nil, 0, 1)
	assert.ErrorIs(t, err, ErrNoMemory)

	v, err := Float32s(nil, 1<<30, 0)
	require.NoError(t, err, "empty views never touch memory")
	assert.Empty(t, v)
}
