package guest

import "github.com/efejjota/c2dbridge/canvas"

// BridgeCalls implements Calls on a canvas.Bridge in the same process,
// for guests compiled into the host. The first failing call is kept in
// Err; later calls still run.
type BridgeCalls struct {
	Bridge *canvas.Bridge
	Err    error
}

var _ Calls = (*BridgeCalls)(nil)

func (c *BridgeCalls) check(err error) {
	if err != nil && c.Err == nil {
		c.Err = err
	}
}

func (c *BridgeCalls) RequestAnimationFrame() {
	c.check(c.Bridge.RequestAnimationFrame())
}

func (c *BridgeCalls) SetLinearGradient(ctx uint32, pts [4]float32, colors []uint32, pos []float32, isStroke bool) {
	c.check(c.Bridge.SetLinearGradient(canvas.Handle(ctx), pts, colors, pos, isStroke))
}

func (c *BridgeCalls) SetRadialGradient(ctx uint32, cx, cy, r float32, colors []uint32, pos []float32, isStroke bool) {
	c.check(c.Bridge.SetRadialGradient(canvas.Handle(ctx), cx, cy, r, colors, pos, isStroke))
}

func (c *BridgeCalls) SetColor(ctx uint32, col uint32, isStroke bool) {
	c.check(c.Bridge.SetColor(canvas.Handle(ctx), canvas.Color32(col), isStroke))
}

func (c *BridgeCalls) SetStrokeWidth(ctx uint32, w float32) {
	c.check(c.Bridge.SetStrokeWidth(canvas.Handle(ctx), w))
}

func (c *BridgeCalls) Save(ctx uint32)    { c.check(c.Bridge.Save(canvas.Handle(ctx))) }
func (c *BridgeCalls) Restore(ctx uint32) { c.check(c.Bridge.Restore(canvas.Handle(ctx))) }

func (c *BridgeCalls) Concat(ctx uint32, a, b, cc, d, e, f float32) {
	c.check(c.Bridge.Concat(canvas.Handle(ctx), a, b, cc, d, e, f))
}

func (c *BridgeCalls) ClipPath(ctx uint32, pts []float32, verbs []byte, fillType int32) {
	c.check(c.Bridge.ClipPath(canvas.Handle(ctx), pts, verbs, canvas.FillRuleFromFlag(fillType)))
}

func (c *BridgeCalls) DrawRect(ctx uint32, l, t, r, b float32, isStroke bool) {
	c.check(c.Bridge.DrawRect(canvas.Handle(ctx), l, t, r, b, isStroke))
}

func (c *BridgeCalls) DrawPath(ctx uint32, pts []float32, verbs []byte, fillType int32, isStroke bool) {
	c.check(c.Bridge.DrawPath(canvas.Handle(ctx), pts, verbs, canvas.FillRuleFromFlag(fillType), isStroke))
}
