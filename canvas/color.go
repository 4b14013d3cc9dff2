package canvas

import (
	"fmt"
	"image/color"
	"math/bits"
)

// Color32 is a packed non-premultiplied colour with 8 bits per channel,
// laid out as 0xAARRGGBB.
type Color32 uint32

// ARGB packs four 8-bit channels.
func ARGB(a, r, g, b uint8) Color32 {
	return Color32(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c Color32) A() uint8 { return uint8(c >> 24) }
func (c Color32) R() uint8 { return uint8(c >> 16) }
func (c Color32) G() uint8 { return uint8(c >> 8) }
func (c Color32) B() uint8 { return uint8(c) }

// CSS returns the colour as an 8-digit "#rrggbbaa" string. The packed
// value is ARGB, so the alpha byte is rotated to the end.
func (c Color32) CSS() string {
	return fmt.Sprintf("#%08x", bits.RotateLeft32(uint32(c), 8))
}

// String implements fmt.Stringer.
func (c Color32) String() string { return c.CSS() }

// NRGBA converts to the standard library representation.
func (c Color32) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// RGBA implements color.Color.
func (c Color32) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func (Color32) style() {}
