package guest

// Calls is the set of bridge functions a guest imports. Under wasip1 the
// package-level Imports value implements it with wasm imports; tests
// substitute a recorder.
type Calls interface {
	RequestAnimationFrame()

	SetLinearGradient(ctx uint32, pts [4]float32, colors []uint32, pos []float32, isStroke bool)
	SetRadialGradient(ctx uint32, cx, cy, r float32, colors []uint32, pos []float32, isStroke bool)
	SetColor(ctx uint32, c uint32, isStroke bool)
	SetStrokeWidth(ctx uint32, w float32)

	Save(ctx uint32)
	Restore(ctx uint32)
	Concat(ctx uint32, a, b, c, d, e, f float32)
	ClipPath(ctx uint32, pts []float32, verbs []byte, fillType int32)
	DrawRect(ctx uint32, l, t, r, b float32, isStroke bool)
	DrawPath(ctx uint32, pts []float32, verbs []byte, fillType int32, isStroke bool)
}
