// Package pathrec records canvas paths for raster backends whose contexts
// transform points as they are added, so a path can be replayed under the
// matrix current when it is painted.
package pathrec

import "github.com/efejjota/c2dbridge/canvas"

// Builder is the path half of a gg-style context.
type Builder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(x1, y1, x2, y2 float64)
	CubicTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// Path records segments in user space.
type Path struct {
	segs []func(Builder)
}

var _ canvas.Path2D = (*Path)(nil)

func (p *Path) MoveTo(x, y float64) {
	p.segs = append(p.segs, func(b Builder) { b.MoveTo(x, y) })
}

func (p *Path) LineTo(x, y float64) {
	p.segs = append(p.segs, func(b Builder) { b.LineTo(x, y) })
}

func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.segs = append(p.segs, func(b Builder) { b.QuadraticTo(cx, cy, x, y) })
}

func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.segs = append(p.segs, func(b Builder) { b.CubicTo(c1x, c1y, c2x, c2y, x, y) })
}

func (p *Path) Close() {
	p.segs = append(p.segs, func(b Builder) { b.ClosePath() })
}

// Append adds the segments of q after those of p.
func (p *Path) Append(q *Path) {
	p.segs = append(p.segs, q.segs...)
}

// Replay issues the recorded segments on b.
func (p *Path) Replay(b Builder) {
	for _, seg := range p.segs {
		seg(b)
	}
}

// Rect returns the closed rectangle x, y, w, h.
func Rect(x, y, w, h float64) *Path {
	p := &Path{}
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	return p
}

// Device maps points through M before forwarding them to B.
type Device struct {
	B Builder
	M canvas.Matrix
}

func (d Device) MoveTo(x, y float64) { d.B.MoveTo(d.M.Apply(x, y)) }
func (d Device) LineTo(x, y float64) { d.B.LineTo(d.M.Apply(x, y)) }

func (d Device) QuadraticTo(x1, y1, x2, y2 float64) {
	x1, y1 = d.M.Apply(x1, y1)
	x2, y2 = d.M.Apply(x2, y2)
	d.B.QuadraticTo(x1, y1, x2, y2)
}

func (d Device) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	x1, y1 = d.M.Apply(x1, y1)
	x2, y2 = d.M.Apply(x2, y2)
	x3, y3 = d.M.Apply(x3, y3)
	d.B.CubicTo(x1, y1, x2, y2, x3, y3)
}

func (d Device) ClosePath() { d.B.ClosePath() }
