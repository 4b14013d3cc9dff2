package canvas

import (
	"errors"
	"fmt"
)

// Verb is a single path-construction opcode.
type Verb uint8

const (
	VerbMove Verb = iota
	VerbLine
	VerbQuad
	VerbCubic
	VerbClose
)

// Arity returns how many floats the verb consumes from the coordinate
// stream, or -1 for an unrecognized verb.
func (v Verb) Arity() int {
	switch v {
	case VerbMove, VerbLine:
		return 2
	case VerbQuad:
		return 4
	case VerbCubic:
		return 6
	case VerbClose:
		return 0
	}
	return -1
}

func (v Verb) String() string {
	switch v {
	case VerbMove:
		return "move"
	case VerbLine:
		return "line"
	case VerbQuad:
		return "quad"
	case VerbCubic:
		return "cubic"
	case VerbClose:
		return "close"
	}
	return fmt.Sprintf("verb(%d)", uint8(v))
}

// Path2D receives path-building calls. Surfaces return their own host path
// type from NewPath and accept it back in Fill, Stroke and Clip.
type Path2D interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	Close()
}

// ErrCoordCount is returned when a coordinate stream does not hold exactly
// the floats its verbs consume.
var ErrCoordCount = errors.New("canvas: coordinate count does not match verbs")

// CoordsFor returns the number of floats the verb stream consumes.
// Unrecognized verbs consume nothing.
func CoordsFor(verbs []byte) int {
	n := 0
	for _, b := range verbs {
		if a := Verb(b).Arity(); a > 0 {
			n += a
		}
	}
	return n
}

// ValidatePath checks that coords holds exactly the floats verbs consume.
func ValidatePath(verbs []byte, coords []float32) error {
	if want := CoordsFor(verbs); want != len(coords) {
		return fmt.Errorf("%w: %d verbs need %d floats, got %d", ErrCoordCount, len(verbs), want, len(coords))
	}
	return nil
}

// BuildPath decodes verbs against coords into dst in a single pass and
// returns the number of floats consumed.
//
// An unrecognized verb is logged and skipped. The coordinate cursor is not
// advanced for it, so every later verb reads from where the skipped verb
// would have started.
func BuildPath(dst Path2D, verbs []byte, coords []float32) (int, error) {
	if err := ValidatePath(verbs, coords); err != nil {
		return 0, err
	}
	pt := func(i int) float64 { return float64(coords[i]) }
	i := 0
	for n, b := range verbs {
		switch Verb(b) {
		case VerbMove:
			dst.MoveTo(pt(i), pt(i+1))
			i += 2
		case VerbLine:
			dst.LineTo(pt(i), pt(i+1))
			i += 2
		case VerbQuad:
			dst.QuadTo(pt(i), pt(i+1), pt(i+2), pt(i+3))
			i += 4
		case VerbCubic:
			dst.CubicTo(pt(i), pt(i+1), pt(i+2), pt(i+3), pt(i+4), pt(i+5))
			i += 6
		case VerbClose:
			dst.Close()
		default:
			Logger().Warn("unexpected path verb", "verb", b, "index", n)
		}
	}
	return i, nil
}
