// Package ggsurface implements surface.Raster on github.com/fogleman/gg.
//
// gg differs from Canvas2D in a few places the surface papers over: its
// Push/Pop does not restore the clip mask, it has no arbitrary affine
// transform call, and it neither transforms gradients nor scales line
// widths with the current matrix. The surface keeps its own state stack
// with the matrix and mask and applies those corrections at paint time.
package ggsurface

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/efejjota/c2dbridge/canvas"
	"github.com/efejjota/c2dbridge/surface"
	"github.com/efejjota/c2dbridge/surface/internal/pathrec"
)

// Name is the registry key of this backend.
const Name = "gg"

func init() {
	surface.Register(Name, func(w, h int) (surface.Raster, error) {
		return New(w, h), nil
	})
}

type state struct {
	fill, stroke canvas.Style
	width        float64
	matrix       canvas.Matrix
	mask         *image.Alpha
}

// Surface is a gg-backed raster.
type Surface struct {
	dc *gg.Context
	// clipper mirrors dc's transform and renders clip paths to masks.
	clipper *gg.Context

	cur   state
	stack []state
}

var _ surface.Raster = (*Surface)(nil)

// New returns a transparent w x h surface.
func New(w, h int) *Surface {
	return &Surface{
		dc:      gg.NewContext(w, h),
		clipper: gg.NewContext(w, h),
		cur: state{
			fill:   canvas.Color32(0xFF000000),
			stroke: canvas.Color32(0xFF000000),
			width:  1,
			matrix: canvas.Identity(),
		},
	}
}

// Context exposes the underlying gg context.
func (s *Surface) Context() *gg.Context { return s.dc }

func (s *Surface) SetFillStyle(st canvas.Style)   { s.cur.fill = st }
func (s *Surface) SetStrokeStyle(st canvas.Style) { s.cur.stroke = st }
func (s *Surface) SetLineWidth(w float64)         { s.cur.width = w }

func (s *Surface) Save() {
	s.stack = append(s.stack, s.cur)
	s.dc.Push()
	s.clipper.Push()
}

// Restore pops the state. An unbalanced Restore is ignored.
func (s *Surface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.cur = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.dc.Pop()
	s.clipper.Pop()
	s.applyMask()
}

func (s *Surface) applyMask() {
	if s.cur.mask == nil {
		s.dc.ResetClip()
		return
	}
	if err := s.dc.SetMask(s.cur.mask); err != nil {
		canvas.Logger().Error("gg: set clip mask", "err", err)
	}
}

func (s *Surface) Transform(m canvas.Matrix) {
	s.cur.matrix = s.cur.matrix.Multiply(m)
	concat(s.dc, m)
	concat(s.clipper, m)
}

// concat multiplies m onto dc's matrix as translate * rotate * shear * scale.
func concat(dc *gg.Context, m canvas.Matrix) {
	dc.Translate(m.E, m.F)
	sx := math.Hypot(m.A, m.B)
	if sx == 0 {
		// Singular in x: everything collapses, nothing with area can paint.
		dc.Scale(0, 0)
		return
	}
	theta := math.Atan2(m.B, m.A)
	sin, cos := math.Sincos(theta)
	sy := (m.A*m.D - m.B*m.C) / sx
	shear := cos*m.C + sin*m.D
	dc.Rotate(theta)
	if sy != 0 {
		dc.Shear(shear/sy, 0)
	}
	dc.Scale(sx, sy)
}

func (s *Surface) NewPath() canvas.Path2D { return &pathrec.Path{} }

func ggRule(r canvas.FillRule) gg.FillRule {
	if r == canvas.EvenOdd {
		return gg.FillRuleEvenOdd
	}
	return gg.FillRuleWinding
}

// pattern converts st to a gg pattern in device space.
func (s *Surface) pattern(st canvas.Style) gg.Pattern {
	switch st := st.(type) {
	case canvas.Color32:
		return gg.NewSolidPattern(st)
	case *canvas.Gradient:
		m := s.cur.matrix
		var g gg.Gradient
		if st.Kind == canvas.Linear {
			x0, y0 := m.Apply(st.X0, st.Y0)
			x1, y1 := m.Apply(st.X1, st.Y1)
			g = gg.NewLinearGradient(x0, y0, x1, y1)
		} else {
			cx, cy := m.Apply(st.CX, st.CY)
			// gg gradients are circular; a non-uniform scale averages the radius.
			r := st.R * s.scale()
			g = gg.NewRadialGradient(cx, cy, 0, cx, cy, r)
		}
		for _, stop := range st.Stops {
			g.AddColorStop(float64(stop.Pos), stop.Color)
		}
		return g
	}
	return gg.NewSolidPattern(color.Transparent)
}

// scale is the uniform scale factor of the current matrix.
func (s *Surface) scale() float64 {
	m := s.cur.matrix
	return math.Sqrt(math.Abs(m.A*m.D - m.B*m.C))
}

func (s *Surface) Fill(p canvas.Path2D, rule canvas.FillRule) {
	s.dc.ClearPath()
	p.(*pathrec.Path).Replay(s.dc)
	s.dc.SetFillRule(ggRule(rule))
	s.dc.SetFillStyle(s.pattern(s.cur.fill))
	s.dc.Fill()
}

// Stroke outlines p. The fill rule does not affect strokes.
func (s *Surface) Stroke(p canvas.Path2D, _ canvas.FillRule) {
	s.dc.ClearPath()
	p.(*pathrec.Path).Replay(s.dc)
	s.dc.SetLineWidth(s.cur.width * s.scale())
	s.dc.SetStrokeStyle(s.pattern(s.cur.stroke))
	s.dc.Stroke()
}

// Clip intersects the clip with p.
func (s *Surface) Clip(p canvas.Path2D, rule canvas.FillRule) {
	c := s.clipper
	c.SetColor(color.Transparent)
	c.Clear()
	c.ClearPath()
	p.(*pathrec.Path).Replay(c)
	c.SetFillRule(ggRule(rule))
	c.SetColor(color.Opaque)
	c.Fill()
	mask := c.AsMask()
	if s.cur.mask != nil {
		for i, a := range s.cur.mask.Pix {
			mask.Pix[i] = uint8(uint16(mask.Pix[i]) * uint16(a) / 0xFF)
		}
	}
	s.cur.mask = mask
	s.applyMask()
}

func (s *Surface) FillRect(x, y, w, h float64) {
	s.Fill(pathrec.Rect(x, y, w, h), canvas.NonZero)
}

func (s *Surface) StrokeRect(x, y, w, h float64) {
	s.Stroke(pathrec.Rect(x, y, w, h), canvas.NonZero)
}

// Clear fills every pixel with c, ignoring the clip and transform.
func (s *Surface) Clear(c color.Color) {
	s.dc.SetColor(c)
	s.dc.Clear()
}

func (s *Surface) Image() image.Image { return s.dc.Image() }

func (s *Surface) Close() error { return nil }
