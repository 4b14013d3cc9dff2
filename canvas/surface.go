package canvas

// Matrix is a 2x3 affine transform with Canvas2D transform() meaning:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Multiply returns m followed by n in the parent space, i.e. the matrix a
// context holds after transform(n) is applied on top of m.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Apply transforms a point.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// Style is a paint source: a Color32 or a *Gradient.
type Style interface {
	style()
}

// Surface is a host 2D drawing context. Every method mutates the context
// state or paints immediately; none report errors, matching the host API.
type Surface interface {
	SetFillStyle(s Style)
	SetStrokeStyle(s Style)
	SetLineWidth(w float64)

	Save()
	Restore()

	// Transform concatenates m onto the current transform.
	Transform(m Matrix)

	// NewPath returns an empty host path for Fill, Stroke and Clip.
	NewPath() Path2D
	Fill(p Path2D, rule FillRule)
	Stroke(p Path2D, rule FillRule)
	// Clip intersects the current clip region with p.
	Clip(p Path2D, rule FillRule)

	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)
}
