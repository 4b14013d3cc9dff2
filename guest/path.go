package guest

import "github.com/efejjota/c2dbridge/canvas"

// Point is a guest-side coordinate pair.
type Point struct {
	X, Y float32
}

// Path accumulates a verb stream and its points in the wire layout the
// host decodes.
type Path struct {
	verbs []byte
	pts   []float32
	rule  canvas.FillRule
}

// NewPath returns an empty nonzero path.
func NewPath() *Path { return &Path{} }

func (p *Path) verb(v canvas.Verb, coords ...float32) *Path {
	p.verbs = append(p.verbs, byte(v))
	p.pts = append(p.pts, coords...)
	return p
}

func (p *Path) MoveTo(x, y float32) *Path { return p.verb(canvas.VerbMove, x, y) }
func (p *Path) LineTo(x, y float32) *Path { return p.verb(canvas.VerbLine, x, y) }
func (p *Path) QuadTo(cx, cy, x, y float32) *Path {
	return p.verb(canvas.VerbQuad, cx, cy, x, y)
}
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float32) *Path {
	return p.verb(canvas.VerbCubic, c1x, c1y, c2x, c2y, x, y)
}
func (p *Path) Close() *Path { return p.verb(canvas.VerbClose) }

// SetFillRule sets the rule sent with the path.
func (p *Path) SetFillRule(r canvas.FillRule) *Path {
	p.rule = r
	return p
}

// Verbs returns the verb stream.
func (p *Path) Verbs() []byte { return p.verbs }

// Coords returns the flat coordinate stream.
func (p *Path) Coords() []float32 { return p.pts }

// NumPoints returns the number of coordinate pairs.
func (p *Path) NumPoints() int { return len(p.pts) / 2 }

// FillRule returns the path's rule.
func (p *Path) FillRule() canvas.FillRule { return p.rule }

// Circle appends a closed circle built from four cubic arcs.
func (p *Path) Circle(cx, cy, r float32) *Path {
	const k = 0.5522847498 // cubic handle length for a quarter circle
	kr := k * r
	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy+kr, cx+kr, cy+r, cx, cy+r)
	p.CubicTo(cx-kr, cy+r, cx-r, cy+kr, cx-r, cy)
	p.CubicTo(cx-r, cy-kr, cx-kr, cy-r, cx, cy-r)
	p.CubicTo(cx+kr, cy-r, cx+r, cy-kr, cx+r, cy)
	return p.Close()
}

// Polygon appends a closed polygon through pts.
func (p *Path) Polygon(pts ...Point) *Path {
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
		} else {
			p.LineTo(pt.X, pt.Y)
		}
	}
	if len(pts) > 0 {
		p.Close()
	}
	return p
}
