package guest

import "github.com/efejjota/c2dbridge/canvas"

// Black is the initial fill and stroke colour of a context.
const Black = canvas.Color32(0xFF000000)

type shaderKind uint8

const (
	linearShader shaderKind = iota
	radialShader
)

// Shader is an immutable gradient. Canvases compare shaders by pointer, so
// reuse a *Shader across frames to avoid re-sending it.
type Shader struct {
	kind   shaderKind
	pts    [4]float32
	colors []uint32
	pos    []float32
}

func colorWords(colors []canvas.Color32) []uint32 {
	out := make([]uint32, len(colors))
	for i, c := range colors {
		out[i] = uint32(c)
	}
	return out
}

// LinearGradient returns a gradient from (x0,y0) to (x1,y1). A nil pos
// spreads the colours evenly.
func LinearGradient(x0, y0, x1, y1 float32, colors []canvas.Color32, pos []float32) *Shader {
	return &Shader{kind: linearShader, pts: [4]float32{x0, y0, x1, y1}, colors: colorWords(colors), pos: stopsFor(len(colors), pos)}
}

// RadialGradient returns a gradient from the centre out to radius r.
func RadialGradient(cx, cy, r float32, colors []canvas.Color32, pos []float32) *Shader {
	return &Shader{kind: radialShader, pts: [4]float32{cx, cy, r, 0}, colors: colorWords(colors), pos: stopsFor(len(colors), pos)}
}

func stopsFor(n int, pos []float32) []float32 {
	if pos != nil {
		return append([]float32(nil), pos...)
	}
	return EvenStops(n)
}

// EvenStops returns n positions spaced evenly from 0 to 1.
func EvenStops(n int) []float32 {
	switch n {
	case 0:
		return nil
	case 1:
		return []float32{0}
	}
	p := make([]float32, n)
	dt := 1 / float32(n-1)
	for i := 1; i < n-1; i++ {
		p[i] = float32(i) * dt
	}
	p[n-1] = 1
	return p
}

// Paint selects how a rect or path is drawn.
type Paint struct {
	Color  canvas.Color32
	Shader *Shader
	Stroke bool
	Width  float32
}

// NewPaint returns an opaque black fill paint.
func NewPaint(c canvas.Color32) Paint {
	return Paint{Color: c, Width: 1}
}

// Stroked returns a copy of p that strokes with width w.
func (p Paint) Stroked(w float32) Paint {
	p.Stroke = true
	p.Width = w
	return p
}

// WithShader returns a copy of p that paints with sh.
func (p Paint) WithShader(sh *Shader) Paint {
	p.Shader = sh
	return p
}
