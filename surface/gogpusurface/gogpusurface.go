// Package gogpusurface implements surface.Raster on github.com/gogpu/gg.
//
// The gg context is used as a rasterizer only: every fill or stroke is
// drawn alone onto a cleared scratch context and then composited onto the
// surface image through the current clip mask. The surface owns the whole
// Canvas2D state (styles, line width, matrix, clip) on its own stack, since
// gg shares one brush between fill and stroke and its software renderer
// does not apply clips.
package gogpusurface

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/efejjota/c2dbridge/canvas"
	"github.com/efejjota/c2dbridge/surface"
	"github.com/efejjota/c2dbridge/surface/internal/pathrec"
)

// Name is the registry key of this backend.
const Name = "gogpu"

func init() {
	surface.Register(Name, func(w, h int) (surface.Raster, error) {
		return New(w, h), nil
	})
}

type state struct {
	fill, stroke canvas.Style
	width        float64
	matrix       canvas.Matrix
	clip         *image.Alpha
}

// Surface is a gogpu/gg-backed raster.
type Surface struct {
	dc  *gg.Context
	dst *image.RGBA

	cur   state
	stack []state
}

var _ surface.Raster = (*Surface)(nil)

// New returns a transparent w x h surface.
func New(w, h int) *Surface {
	return &Surface{
		dc:  gg.NewContext(w, h),
		dst: image.NewRGBA(image.Rect(0, 0, w, h)),
		cur: state{
			fill:   canvas.Color32(0xFF000000),
			stroke: canvas.Color32(0xFF000000),
			width:  1,
			matrix: canvas.Identity(),
		},
	}
}

func (s *Surface) SetFillStyle(st canvas.Style)   { s.cur.fill = st }
func (s *Surface) SetStrokeStyle(st canvas.Style) { s.cur.stroke = st }
func (s *Surface) SetLineWidth(w float64)         { s.cur.width = w }

func (s *Surface) Save() {
	s.stack = append(s.stack, s.cur)
}

// Restore pops the state. An unbalanced Restore is ignored.
func (s *Surface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.cur = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *Surface) Transform(m canvas.Matrix) {
	s.cur.matrix = s.cur.matrix.Multiply(m)
}

// scale is the uniform scale factor of the current matrix.
func (s *Surface) scale() float64 {
	m := s.cur.matrix
	return math.Sqrt(math.Abs(m.A*m.D - m.B*m.C))
}

func (s *Surface) NewPath() canvas.Path2D { return &pathrec.Path{} }

func ggRule(r canvas.FillRule) gg.FillRule {
	if r == canvas.EvenOdd {
		return gg.FillRuleEvenOdd
	}
	return gg.FillRuleNonZero
}

// brush converts st to a gg brush. Gradient geometry is mapped to device
// space because gg samples brushes per pixel. Radial brushes stay circular,
// so a non-uniform scale averages the radius.
func (s *Surface) brush(st canvas.Style) gg.Brush {
	m := s.cur.matrix
	switch st := st.(type) {
	case canvas.Color32:
		return gg.Solid(gg.FromColor(st))
	case *canvas.Gradient:
		if st.Kind == canvas.Linear {
			x0, y0 := m.Apply(st.X0, st.Y0)
			x1, y1 := m.Apply(st.X1, st.Y1)
			g := gg.NewLinearGradientBrush(x0, y0, x1, y1)
			for _, stop := range st.Stops {
				g.AddColorStop(float64(stop.Pos), gg.FromColor(stop.Color))
			}
			return g
		}
		cx, cy := m.Apply(st.CX, st.CY)
		g := gg.NewRadialGradientBrush(cx, cy, 0, st.R*s.scale())
		for _, stop := range st.Stops {
			g.AddColorStop(float64(stop.Pos), gg.FromColor(stop.Color))
		}
		return g
	}
	return gg.Solid(gg.Transparent)
}

// rasterize draws p alone on the scratch context and returns its pixels.
// The path is mapped to device space before it reaches gg, which stays at
// the identity transform.
func (s *Surface) rasterize(p *pathrec.Path, paint func(dc *gg.Context) error) *image.RGBA {
	dc := s.dc
	dc.Clear()
	dc.ClearPath()
	dc.Identity()
	p.Replay(pathrec.Device{B: dc, M: s.cur.matrix})
	if err := paint(dc); err != nil {
		canvas.Logger().Error("gogpu: rasterize", "err", err)
	}
	return dc.Image().(*image.RGBA)
}

// composite blends src over the surface through the clip.
func (s *Surface) composite(src *image.RGBA) {
	var mask image.Image
	if s.cur.clip != nil {
		mask = s.cur.clip
	}
	draw.DrawMask(s.dst, s.dst.Bounds(), src, image.Point{}, mask, image.Point{}, draw.Over)
}

func (s *Surface) Fill(p canvas.Path2D, rule canvas.FillRule) {
	b := s.brush(s.cur.fill)
	s.composite(s.rasterize(p.(*pathrec.Path), func(dc *gg.Context) error {
		dc.SetFillRule(ggRule(rule))
		dc.SetFillBrush(b)
		return dc.Fill()
	}))
}

// Stroke outlines p. The fill rule does not affect strokes.
func (s *Surface) Stroke(p canvas.Path2D, _ canvas.FillRule) {
	b := s.brush(s.cur.stroke)
	w := s.cur.width * s.scale()
	s.composite(s.rasterize(p.(*pathrec.Path), func(dc *gg.Context) error {
		dc.SetLineWidth(w)
		dc.SetStrokeBrush(b)
		return dc.Stroke()
	}))
}

// Clip intersects the clip with p.
func (s *Surface) Clip(p canvas.Path2D, rule canvas.FillRule) {
	cov := s.rasterize(p.(*pathrec.Path), func(dc *gg.Context) error {
		dc.SetFillRule(ggRule(rule))
		dc.SetFillBrush(gg.Solid(gg.White))
		return dc.Fill()
	})
	mask := image.NewAlpha(cov.Bounds())
	for i := range mask.Pix {
		a := cov.Pix[i*4+3]
		if s.cur.clip != nil {
			a = uint8(uint16(a) * uint16(s.cur.clip.Pix[i]) / 0xFF)
		}
		mask.Pix[i] = a
	}
	s.cur.clip = mask
}

func (s *Surface) FillRect(x, y, w, h float64) {
	s.Fill(pathrec.Rect(x, y, w, h), canvas.NonZero)
}

func (s *Surface) StrokeRect(x, y, w, h float64) {
	s.Stroke(pathrec.Rect(x, y, w, h), canvas.NonZero)
}

// Clear fills every pixel with c, ignoring the clip and transform.
func (s *Surface) Clear(c color.Color) {
	draw.Draw(s.dst, s.dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Image returns the surface pixels. The image is shared with the surface.
func (s *Surface) Image() image.Image { return s.dst }

func (s *Surface) Close() error { return s.dc.Close() }
