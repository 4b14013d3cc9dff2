// Package demo is the scene the example guests draw: random-coloured
// circles placed by clicking, over a gradient, clipped to a disc, with a
// spinning marker. Dropping a text file of #rrggbb colours adds a palette;
// the left and right arrow keys cycle through the palettes.
package demo

import (
	"bufio"
	"bytes"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/efejjota/c2dbridge/canvas"
	"github.com/efejjota/c2dbridge/guest"
)

const (
	// Size is the width and height the scene is laid out for.
	Size   = 300
	radius = 15
)

// DefaultPalette is the palette a new scene starts with.
var DefaultPalette = []canvas.Color32{
	0xFFE63946, 0xFFF1FAEE, 0xFFA8DADC, 0xFF457B9D, 0xFF1D3557,
}

var builtinPalettes = [][]canvas.Color32{
	DefaultPalette,
	{0xFF264653, 0xFF2A9D8F, 0xFFE9C46A, 0xFFF4A261, 0xFFE76F51},
	{0xFF003049, 0xFFD62828, 0xFFF77F00, 0xFFFCBF49, 0xFFEAE2B7},
}

type circle struct {
	x, y float32
	// index into the palette
	color int
}

// Scene is the demo state. It is not safe for concurrent use.
type Scene struct {
	calls guest.Calls
	rng   *rand.Rand

	canvas *guest.Canvas
	bg     *guest.Shader
	marker *guest.Shader
	clip   *guest.Path

	palettes [][]canvas.Color32
	current  int
	palette  []canvas.Color32
	circles  []circle

	hovering bool
	hx, hy   float32
}

// NewScene returns an empty scene drawing through calls.
func NewScene(calls guest.Calls, seed uint64) *Scene {
	s := &Scene{
		calls: calls,
		rng:   rand.New(rand.NewPCG(seed, seed>>1)),
		clip:  guest.NewPath().Circle(Size/2, Size/2, Size/2-10),

		palettes: append([][]canvas.Color32(nil), builtinPalettes...),
	}
	s.selectPalette(0)
	return s
}

func (s *Scene) selectPalette(i int) {
	n := len(s.palettes)
	s.current = ((i % n) + n) % n
	p := s.palettes[s.current]
	s.palette = p
	s.bg = guest.LinearGradient(0, 0, 0, Size, []canvas.Color32{p[len(p)-1], 0xFF000000}, nil)
	s.marker = guest.RadialGradient(0, 0, 20, p, nil)
}

// Draw paints one frame on the context ctx and asks for the next.
func (s *Scene) Draw(ctx uint32, t float64) {
	if s.canvas == nil || s.canvas.Context() != ctx {
		s.canvas = guest.NewCanvas(s.calls, ctx)
	}
	c := s.canvas

	c.DrawRect(0, 0, Size, Size, guest.NewPaint(guest.Black).WithShader(s.bg))

	c.Save()
	c.ClipPath(s.clip)
	for _, ci := range s.circles {
		c.DrawCircle(ci.x, ci.y, radius, guest.NewPaint(s.palette[ci.color%len(s.palette)]))
	}
	if s.hovering {
		c.DrawCircle(s.hx, s.hy, radius, guest.NewPaint(0xFFFFFFFF).Stroked(2))
	}
	c.Restore()

	c.Save()
	c.Translate(Size/2, Size/2)
	c.Rotate(float32(t))
	c.DrawRect(-20, -20, 20, 20, guest.NewPaint(guest.Black).WithShader(s.marker))
	c.Restore()

	s.calls.RequestAnimationFrame()
}

// Mouse handles a pointer event. kind uses the host numbering: 0 down,
// 1 up, 2 move, 3 hover.
func (s *Scene) Mouse(x, y float32, kind int32) {
	switch kind {
	case 0: // down
		s.circles = append(s.circles, circle{x: x, y: y, color: s.rng.IntN(len(s.palette))})
	case 2, 3: // move, hover
		s.hovering = true
		s.hx, s.hy = x, y
	}
	s.calls.RequestAnimationFrame()
}

// KeyDown handles a key press and reports whether the scene used it.
// Arrow keys cycle palettes; delete or "c" clears the circles.
func (s *Scene) KeyDown(k canvas.Key, uni rune, mods canvas.KeyMods) bool {
	if k != canvas.KeyNone {
		uni = 0
	}
	switch {
	case k == canvas.KeyArrowLeft:
		s.selectPalette(s.current - 1)
	case k == canvas.KeyArrowRight:
		s.selectPalette(s.current + 1)
	case k == canvas.KeyDelete, uni == 'c' && mods == 0:
		s.circles = s.circles[:0]
	default:
		return false
	}
	s.calls.RequestAnimationFrame()
	return true
}

// FileDropped adds the colours listed in data as a palette and selects
// it. Files without any colour are ignored.
func (s *Scene) FileDropped(name string, data []byte) {
	p := ParsePalette(data)
	if len(p) == 0 {
		return
	}
	s.palettes = append(s.palettes, p)
	s.selectPalette(len(s.palettes) - 1)
	s.calls.RequestAnimationFrame()
}

// ParsePalette reads #rrggbb or #aarrggbb words separated by spaces,
// commas or newlines.
func ParsePalette(data []byte) []canvas.Color32 {
	var out []canvas.Color32
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		for _, w := range strings.Split(sc.Text(), ",") {
			hex, ok := strings.CutPrefix(strings.TrimSpace(w), "#")
			if !ok || (len(hex) != 6 && len(hex) != 8) {
				continue
			}
			v, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				continue
			}
			if len(hex) == 6 {
				v |= 0xFF000000
			}
			out = append(out, canvas.Color32(v))
		}
	}
	return out
}
