//go:build js && wasm

// Package jssurface implements canvas.Surface on a browser
// CanvasRenderingContext2D through syscall/js.
package jssurface

import (
	"errors"
	"syscall/js"

	"github.com/efejjota/c2dbridge/canvas"
)

// ErrNoContext is returned when the element has no 2d context.
var ErrNoContext = errors.New("jssurface: element has no 2d context")

// Path wraps a JS Path2D.
type Path struct {
	v js.Value
}

func (p *Path) MoveTo(x, y float64) { p.v.Call("moveTo", x, y) }
func (p *Path) LineTo(x, y float64) { p.v.Call("lineTo", x, y) }
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.v.Call("quadraticCurveTo", cx, cy, x, y)
}
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.v.Call("bezierCurveTo", c1x, c1y, c2x, c2y, x, y)
}
func (p *Path) Close() { p.v.Call("closePath") }

// Surface draws on a CanvasRenderingContext2D.
type Surface struct {
	ctx    js.Value
	path2D js.Value
}

var _ canvas.Surface = (*Surface)(nil)

// New wraps the 2d context of a <canvas> element.
func New(el js.Value) (*Surface, error) {
	ctx := el.Call("getContext", "2d")
	if ctx.IsNull() || ctx.IsUndefined() {
		return nil, ErrNoContext
	}
	return FromContext(ctx), nil
}

// FromContext wraps an existing CanvasRenderingContext2D.
func FromContext(ctx js.Value) *Surface {
	return &Surface{ctx: ctx, path2D: js.Global().Get("Path2D")}
}

// Context returns the wrapped JS context.
func (s *Surface) Context() js.Value { return s.ctx }

// jsStyle converts st to a CSS colour string or a CanvasGradient.
func (s *Surface) jsStyle(st canvas.Style) any {
	switch st := st.(type) {
	case canvas.Color32:
		return st.CSS()
	case *canvas.Gradient:
		var g js.Value
		if st.Kind == canvas.Linear {
			g = s.ctx.Call("createLinearGradient", st.X0, st.Y0, st.X1, st.Y1)
		} else {
			g = s.ctx.Call("createRadialGradient", st.CX, st.CY, 0, st.CX, st.CY, st.R)
		}
		for _, stop := range st.Stops {
			g.Call("addColorStop", stop.Pos, stop.Color.CSS())
		}
		return g
	}
	return "transparent"
}

func (s *Surface) SetFillStyle(st canvas.Style)   { s.ctx.Set("fillStyle", s.jsStyle(st)) }
func (s *Surface) SetStrokeStyle(st canvas.Style) { s.ctx.Set("strokeStyle", s.jsStyle(st)) }
func (s *Surface) SetLineWidth(w float64)         { s.ctx.Set("lineWidth", w) }

func (s *Surface) Save()    { s.ctx.Call("save") }
func (s *Surface) Restore() { s.ctx.Call("restore") }

func (s *Surface) Transform(m canvas.Matrix) {
	s.ctx.Call("transform", m.A, m.B, m.C, m.D, m.E, m.F)
}

func (s *Surface) NewPath() canvas.Path2D {
	return &Path{v: s.path2D.New()}
}

func (s *Surface) Fill(p canvas.Path2D, rule canvas.FillRule) {
	s.ctx.Call("fill", p.(*Path).v, rule.String())
}

// Stroke outlines p. Canvas2D stroke() takes no fill rule.
func (s *Surface) Stroke(p canvas.Path2D, _ canvas.FillRule) {
	s.ctx.Call("stroke", p.(*Path).v)
}

func (s *Surface) Clip(p canvas.Path2D, rule canvas.FillRule) {
	s.ctx.Call("clip", p.(*Path).v, rule.String())
}

func (s *Surface) FillRect(x, y, w, h float64)   { s.ctx.Call("fillRect", x, y, w, h) }
func (s *Surface) StrokeRect(x, y, w, h float64) { s.ctx.Call("strokeRect", x, y, w, h) }

// Size returns the backing canvas size in pixels.
func (s *Surface) Size() (w, h int) {
	el := s.ctx.Get("canvas")
	return el.Get("width").Int(), el.Get("height").Int()
}

// ClearRect resets pixels in the rectangle to transparent black.
func (s *Surface) ClearRect(x, y, w, h float64) { s.ctx.Call("clearRect", x, y, w, h) }
