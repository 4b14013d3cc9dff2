package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameQueueCoalesces(t *testing.T) {
	q := NewFrameQueue()
	assert.False(t, q.Pending())

	q.RequestFrame()
	q.RequestFrame()
	q.RequestFrame()
	assert.True(t, q.Pending())
	assert.False(t, q.Pending())

	q.RequestFrame()
	select {
	case <-q.Frames():
	default:
		t.Fatal("expected a pending frame")
	}
}

func TestMatrixMultiply(t *testing.T) {
	tr := Matrix{A: 1, D: 1, E: 10, F: 20}
	sc := Matrix{A: 2, D: 3}

	// translate then scale in local space: scale applies first to points
	m := tr.Multiply(sc)
	x, y := m.Apply(1, 1)
	assert.Equal(t, 12.0, x)
	assert.Equal(t, 23.0, y)

	assert.Equal(t, sc, Identity().Multiply(sc))
	assert.Equal(t, sc, sc.Multiply(Identity()))
}
