package guest

import (
	"math"

	"github.com/efejjota/c2dbridge/canvas"
)

type style struct {
	shader *Shader
	color  canvas.Color32
}

type state struct {
	fill, stroke style
	width        float32
}

// Canvas draws onto one host context through Calls. It mirrors the host's
// fill style, stroke style and line width on a save/restore stack and only
// forwards changes.
type Canvas struct {
	calls Calls
	ctx   uint32
	stack []state
}

// NewCanvas returns a canvas for the host context ctx.
func NewCanvas(calls Calls, ctx uint32) *Canvas {
	return &Canvas{
		calls: calls,
		ctx:   ctx,
		stack: []state{{
			fill:   style{color: Black},
			stroke: style{color: Black},
			width:  1,
		}},
	}
}

// Context returns the host handle the canvas draws to.
func (c *Canvas) Context() uint32 { return c.ctx }

func (c *Canvas) top() *state { return &c.stack[len(c.stack)-1] }

func (c *Canvas) sendShader(sh *Shader, isStroke bool) {
	switch sh.kind {
	case linearShader:
		c.calls.SetLinearGradient(c.ctx, sh.pts, sh.colors, sh.pos, isStroke)
	case radialShader:
		c.calls.SetRadialGradient(c.ctx, sh.pts[0], sh.pts[1], sh.pts[2], sh.colors, sh.pos, isStroke)
	}
}

func (c *Canvas) updateStyle(s *style, p Paint, isStroke bool) {
	if p.Shader != nil {
		if p.Shader != s.shader {
			c.sendShader(p.Shader, isStroke)
			s.shader = p.Shader
		}
		return
	}
	if s.shader != nil || s.color != p.Color {
		c.calls.SetColor(c.ctx, uint32(p.Color), isStroke)
		s.color = p.Color
		s.shader = nil
	}
}

func (c *Canvas) updatePaint(p Paint) {
	top := c.top()
	if !p.Stroke {
		c.updateStyle(&top.fill, p, false)
		return
	}
	c.updateStyle(&top.stroke, p, true)
	if top.width != p.Width {
		c.calls.SetStrokeWidth(c.ctx, p.Width)
		top.width = p.Width
	}
}

// Save pushes the drawing state.
func (c *Canvas) Save() {
	c.calls.Save(c.ctx)
	c.stack = append(c.stack, *c.top())
}

// Restore pops the drawing state. The host is told even when the local
// stack is already at its base.
func (c *Canvas) Restore() {
	if len(c.stack) > 1 {
		c.stack = c.stack[:len(c.stack)-1]
	}
	c.calls.Restore(c.ctx)
}

// Concat multiplies an affine matrix onto the current transform.
func (c *Canvas) Concat(a, b, cc, d, e, f float32) {
	c.calls.Concat(c.ctx, a, b, cc, d, e, f)
}

func (c *Canvas) Translate(x, y float32) { c.Concat(1, 0, 0, 1, x, y) }
func (c *Canvas) Scale(sx, sy float32)   { c.Concat(sx, 0, 0, sy, 0, 0) }

// Rotate rotates by rad radians.
func (c *Canvas) Rotate(rad float32) {
	s, co := math.Sincos(float64(rad))
	c.Concat(float32(co), float32(s), float32(-s), float32(co), 0, 0)
}

// ClipPath intersects the clip with p.
func (c *Canvas) ClipPath(p *Path) {
	c.calls.ClipPath(c.ctx, p.Coords(), p.Verbs(), int32(p.FillRule()))
}

// DrawRect draws the rectangle with edges l, t, r, b.
func (c *Canvas) DrawRect(l, t, r, b float32, p Paint) {
	c.updatePaint(p)
	c.calls.DrawRect(c.ctx, l, t, r, b, p.Stroke)
}

// DrawPath fills or strokes path.
func (c *Canvas) DrawPath(path *Path, p Paint) {
	c.updatePaint(p)
	c.calls.DrawPath(c.ctx, path.Coords(), path.Verbs(), int32(path.FillRule()), p.Stroke)
}

// DrawCircle draws a circle of radius r centred on (cx, cy).
func (c *Canvas) DrawCircle(cx, cy, r float32, p Paint) {
	c.DrawPath(NewPath().Circle(cx, cy, r), p)
}
