package canvas

import (
	"errors"
	"fmt"
)

// GradientKind distinguishes linear from radial gradients.
type GradientKind uint8

const (
	Linear GradientKind = iota
	Radial
)

func (k GradientKind) String() string {
	if k == Linear {
		return "linear"
	}
	return "radial"
}

// Stop is a single gradient colour stop.
type Stop struct {
	Pos   float32
	Color Color32
}

// Gradient is a transient gradient description. Stops are kept in the
// order they were supplied; nothing here sorts or validates positions.
type Gradient struct {
	Kind GradientKind

	// Linear endpoints.
	X0, Y0, X1, Y1 float64

	// Radial centre and outer radius. The inner radius is always zero.
	CX, CY, R float64

	Stops []Stop
}

func (*Gradient) style() {}

// ErrStopCount is returned when colour and position slices differ in length.
var ErrStopCount = errors.New("canvas: gradient colour and position counts differ")

func makeStops(colors []uint32, pos []float32) ([]Stop, error) {
	if len(colors) != len(pos) {
		return nil, fmt.Errorf("%w: %d colours, %d positions", ErrStopCount, len(colors), len(pos))
	}
	stops := make([]Stop, len(colors))
	for i := range colors {
		stops[i] = Stop{Pos: pos[i], Color: Color32(colors[i])}
	}
	return stops, nil
}

// NewLinearGradient builds a linear gradient from (pts[0],pts[1]) to
// (pts[2],pts[3]).
func NewLinearGradient(pts [4]float32, colors []uint32, pos []float32) (*Gradient, error) {
	stops, err := makeStops(colors, pos)
	if err != nil {
		return nil, err
	}
	return &Gradient{
		Kind:  Linear,
		X0:    float64(pts[0]),
		Y0:    float64(pts[1]),
		X1:    float64(pts[2]),
		Y1:    float64(pts[3]),
		Stops: stops,
	}, nil
}

// NewRadialGradient builds a radial gradient centred on (cx, cy).
func NewRadialGradient(cx, cy, r float32, colors []uint32, pos []float32) (*Gradient, error) {
	stops, err := makeStops(colors, pos)
	if err != nil {
		return nil, err
	}
	return &Gradient{
		Kind:  Radial,
		CX:    float64(cx),
		CY:    float64(cy),
		R:     float64(r),
		Stops: stops,
	}, nil
}
