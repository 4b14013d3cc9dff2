package canvas

import (
	"errors"
	"fmt"
)

// ErrNoScheduler is returned by RequestAnimationFrame when the bridge was
// built without a FrameScheduler.
var ErrNoScheduler = errors.New("canvas: no frame scheduler")

// Option configures a Bridge.
type Option func(*Bridge)

// WithScheduler sets the target of RequestAnimationFrame.
func WithScheduler(s FrameScheduler) Option {
	return func(b *Bridge) { b.frames = s }
}

// Bridge forwards drawing primitives to the surfaces held by a Registry.
// Each call resolves its handle, builds any transient value it needs and
// issues exactly one host operation.
type Bridge struct {
	reg    *Registry
	frames FrameScheduler
}

// NewBridge returns a bridge over reg.
func NewBridge(reg *Registry, opts ...Option) *Bridge {
	b := &Bridge{reg: reg}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Registry returns the registry the bridge resolves handles against.
func (b *Bridge) Registry() *Registry { return b.reg }

func (b *Bridge) surface(h Handle, op string) (Surface, error) {
	s, err := b.reg.Lookup(h)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	Logger().Debug("canvas call", "op", op, "handle", h)
	return s, nil
}

func setStyle(s Surface, st Style, isStroke bool) {
	if isStroke {
		s.SetStrokeStyle(st)
	} else {
		s.SetFillStyle(st)
	}
}

// SetLinearGradient paints with a linear gradient from (pts[0],pts[1]) to
// (pts[2],pts[3]). Stops are added in slice order.
func (b *Bridge) SetLinearGradient(h Handle, pts [4]float32, colors []uint32, pos []float32, isStroke bool) error {
	s, err := b.surface(h, "setLinearGradient")
	if err != nil {
		return err
	}
	g, err := NewLinearGradient(pts, colors, pos)
	if err != nil {
		return fmt.Errorf("setLinearGradient: %w", err)
	}
	setStyle(s, g, isStroke)
	return nil
}

// SetRadialGradient paints with a radial gradient from a zero-radius
// circle at (cx, cy) out to radius r.
func (b *Bridge) SetRadialGradient(h Handle, cx, cy, r float32, colors []uint32, pos []float32, isStroke bool) error {
	s, err := b.surface(h, "setRadialGradient")
	if err != nil {
		return err
	}
	g, err := NewRadialGradient(cx, cy, r, colors, pos)
	if err != nil {
		return fmt.Errorf("setRadialGradient: %w", err)
	}
	setStyle(s, g, isStroke)
	return nil
}

// SetColor paints with a solid colour.
func (b *Bridge) SetColor(h Handle, c Color32, isStroke bool) error {
	s, err := b.surface(h, "setColor")
	if err != nil {
		return err
	}
	setStyle(s, c, isStroke)
	return nil
}

// SetStrokeWidth passes w through unchecked; zero and negative widths
// reach the surface as given.
func (b *Bridge) SetStrokeWidth(h Handle, w float32) error {
	s, err := b.surface(h, "setStrokeWidth")
	if err != nil {
		return err
	}
	s.SetLineWidth(float64(w))
	return nil
}

// Save pushes the drawing state.
func (b *Bridge) Save(h Handle) error {
	s, err := b.surface(h, "save")
	if err != nil {
		return err
	}
	s.Save()
	return nil
}

// Restore pops the drawing state. An unmatched Restore is forwarded as is.
func (b *Bridge) Restore(h Handle) error {
	s, err := b.surface(h, "restore")
	if err != nil {
		return err
	}
	s.Restore()
	return nil
}

// Concat multiplies (a,b,c,d,e,f) onto the current transform.
func (b *Bridge) Concat(h Handle, a, bb, c, d, e, f float32) error {
	s, err := b.surface(h, "concat")
	if err != nil {
		return err
	}
	s.Transform(Matrix{
		A: float64(a), B: float64(bb),
		C: float64(c), D: float64(d),
		E: float64(e), F: float64(f),
	})
	return nil
}

func (b *Bridge) path(s Surface, op string, pts []float32, verbs []byte) (Path2D, error) {
	p := s.NewPath()
	if _, err := BuildPath(p, verbs, pts); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// ClipPath intersects the clip region with the decoded path. The clip is
// only undone by Restore.
func (b *Bridge) ClipPath(h Handle, pts []float32, verbs []byte, rule FillRule) error {
	s, err := b.surface(h, "clipPath")
	if err != nil {
		return err
	}
	p, err := b.path(s, "clipPath", pts, verbs)
	if err != nil {
		return err
	}
	s.Clip(p, rule)
	return nil
}

// DrawPath fills or strokes the decoded path.
func (b *Bridge) DrawPath(h Handle, pts []float32, verbs []byte, rule FillRule, isStroke bool) error {
	s, err := b.surface(h, "drawPath")
	if err != nil {
		return err
	}
	p, err := b.path(s, "drawPath", pts, verbs)
	if err != nil {
		return err
	}
	if isStroke {
		s.Stroke(p, rule)
	} else {
		s.Fill(p, rule)
	}
	return nil
}

// DrawRect fills or strokes the rectangle with edges l, t, r, b.
func (b *Bridge) DrawRect(h Handle, l, t, r, bottom float32, isStroke bool) error {
	s, err := b.surface(h, "drawRect")
	if err != nil {
		return err
	}
	x, y := float64(l), float64(t)
	w, hh := float64(r-l), float64(bottom-t)
	if isStroke {
		s.StrokeRect(x, y, w, hh)
	} else {
		s.FillRect(x, y, w, hh)
	}
	return nil
}

// RequestAnimationFrame asks the scheduler for one redraw.
func (b *Bridge) RequestAnimationFrame() error {
	if b.frames == nil {
		return ErrNoScheduler
	}
	b.frames.RequestFrame()
	return nil
}
