package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradientStopsKeepOrder(t *testing.T) {
	colors := []uint32{0xFFFF0000, 0xFF00FF00, 0x800000FF, 0xFF123456}
	pos := []float32{0.9, 0.1, 0.5, 0.5}

	g, err := NewLinearGradient([4]float32{0, 0, 100, 0}, colors, pos)
	require.NoError(t, err)
	assert.Equal(t, Linear, g.Kind)
	require.Len(t, g.Stops, len(colors))
	for i := range colors {
		assert.Equal(t, Stop{Pos: pos[i], Color: Color32(colors[i])}, g.Stops[i])
	}
	assert.Equal(t, 100.0, g.X1)
}

func TestRadialGradient(t *testing.T) {
	g, err := NewRadialGradient(10, 20, 30, []uint32{1, 2}, []float32{1, 0})
	require.NoError(t, err)
	assert.Equal(t, Radial, g.Kind)
	assert.Equal(t, []float64{10, 20, 30}, []float64{g.CX, g.CY, g.R})
	assert.Equal(t, float32(1), g.Stops[0].Pos)
	assert.Equal(t, float32(0), g.Stops[1].Pos)
}

func TestGradientStopCount(t *testing.T) {
	_, err := NewLinearGradient([4]float32{}, []uint32{1, 2}, []float32{0})
	assert.ErrorIs(t, err, ErrStopCount)
	_, err = NewRadialGradient(0, 0, 1, []uint32{1}, nil)
	assert.ErrorIs(t, err, ErrStopCount)

	g, err := NewLinearGradient([4]float32{}, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, g.Stops)
}
