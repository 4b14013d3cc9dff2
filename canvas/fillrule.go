package canvas

// FillRule selects how path self-intersections are resolved when filling
// or clipping.
type FillRule uint8

const (
	// NonZero is the winding rule.
	NonZero FillRule = iota
	// EvenOdd is the parity rule.
	EvenOdd
)

// FillRuleFromFlag maps the wire flag to a rule. Zero is nonzero and every
// other value is evenodd; there is no third rule.
func FillRuleFromFlag(flag int32) FillRule {
	if flag == 0 {
		return NonZero
	}
	return EvenOdd
}

// String returns the name the Canvas2D API uses for the rule.
func (r FillRule) String() string {
	if r == NonZero {
		return "nonzero"
	}
	return "evenodd"
}
