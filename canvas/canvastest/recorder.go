// Package canvastest provides a canvas.Surface that records calls, for
// tests of code that drives a surface.
package canvastest

import (
	"fmt"
	"strings"

	"github.com/efejjota/c2dbridge/canvas"
)

// Path records path-building calls in Canvas2D notation.
type Path struct {
	Ops []string
}

func (p *Path) MoveTo(x, y float64) { p.add("moveTo(%g,%g)", x, y) }
func (p *Path) LineTo(x, y float64) { p.add("lineTo(%g,%g)", x, y) }
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.add("quadraticCurveTo(%g,%g,%g,%g)", cx, cy, x, y)
}
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.add("bezierCurveTo(%g,%g,%g,%g,%g,%g)", c1x, c1y, c2x, c2y, x, y)
}
func (p *Path) Close() { p.Ops = append(p.Ops, "closePath()") }

func (p *Path) add(format string, args ...any) {
	p.Ops = append(p.Ops, fmt.Sprintf(format, args...))
}

// String joins the recorded ops with "; ".
func (p *Path) String() string { return strings.Join(p.Ops, "; ") }

// Recorder is a canvas.Surface that appends one line per call to Calls.
type Recorder struct {
	Calls []string

	FillStyle   canvas.Style
	StrokeStyle canvas.Style
	LineWidth   float64
	Depth       int
}

var _ canvas.Surface = (*Recorder)(nil)

// New returns an empty recorder.
func New() *Recorder {
	return &Recorder{LineWidth: 1}
}

func (r *Recorder) add(format string, args ...any) {
	r.Calls = append(r.Calls, fmt.Sprintf(format, args...))
}

func styleString(s canvas.Style) string {
	switch s := s.(type) {
	case canvas.Color32:
		return s.CSS()
	case *canvas.Gradient:
		return s.Kind.String() + "-gradient"
	}
	return fmt.Sprintf("%T", s)
}

func (r *Recorder) SetFillStyle(s canvas.Style) {
	r.FillStyle = s
	r.add("fillStyle %s", styleString(s))
}

func (r *Recorder) SetStrokeStyle(s canvas.Style) {
	r.StrokeStyle = s
	r.add("strokeStyle %s", styleString(s))
}

func (r *Recorder) SetLineWidth(w float64) {
	r.LineWidth = w
	r.add("lineWidth %g", w)
}

func (r *Recorder) Save() {
	r.Depth++
	r.add("save")
}

func (r *Recorder) Restore() {
	r.Depth--
	r.add("restore")
}

func (r *Recorder) Transform(m canvas.Matrix) {
	r.add("transform %g %g %g %g %g %g", m.A, m.B, m.C, m.D, m.E, m.F)
}

func (r *Recorder) NewPath() canvas.Path2D { return &Path{} }

func (r *Recorder) Fill(p canvas.Path2D, rule canvas.FillRule) {
	r.add("fill %s %s", rule, p.(*Path))
}

func (r *Recorder) Stroke(p canvas.Path2D, rule canvas.FillRule) {
	r.add("stroke %s %s", rule, p.(*Path))
}

func (r *Recorder) Clip(p canvas.Path2D, rule canvas.FillRule) {
	r.add("clip %s %s", rule, p.(*Path))
}

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.add("fillRect %g %g %g %g", x, y, w, h)
}

func (r *Recorder) StrokeRect(x, y, w, h float64) {
	r.add("strokeRect %g %g %g %g", x, y, w, h)
}

// Last returns the most recent call, or "" if there is none.
func (r *Recorder) Last() string {
	if len(r.Calls) == 0 {
		return ""
	}
	return r.Calls[len(r.Calls)-1]
}

// Reset clears the recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
