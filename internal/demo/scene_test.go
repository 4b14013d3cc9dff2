package demo

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efejjota/c2dbridge/canvas"
	"github.com/efejjota/c2dbridge/canvas/canvastest"
	"github.com/efejjota/c2dbridge/guest"
)

type frameCounter int

func (f *frameCounter) RequestFrame() { *f++ }

func newTestScene(t *testing.T) (*Scene, *frameCounter, *canvastest.Recorder, uint32) {
	t.Helper()
	reg := canvas.NewRegistry()
	rec := canvastest.New()
	h, err := reg.Register(rec)
	require.NoError(t, err)
	frames := new(frameCounter)
	calls := &guest.BridgeCalls{Bridge: canvas.NewBridge(reg, canvas.WithScheduler(frames))}
	t.Cleanup(func() { assert.NoError(t, calls.Err) })
	return NewScene(calls, 1), frames, rec, uint32(h)
}

func count(calls []string, prefix string) int {
	n := 0
	for _, c := range calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func TestSceneDrawsBalancedFrame(t *testing.T) {
	s, frames, rec, h := newTestScene(t)

	s.Draw(h, 0)
	assert.Equal(t, 0, rec.Depth)
	assert.Equal(t, "fillStyle linear-gradient", rec.Calls[0])
	assert.Equal(t, 1, count(rec.Calls, "clip evenodd")+count(rec.Calls, "clip nonzero"))
	assert.Equal(t, 1, int(*frames))

	rec.Reset()
	s.Draw(h, 1)
	assert.Equal(t, 0, count(rec.Calls, "fillStyle linear-gradient"), "unchanged background shader is not resent")
}

func TestSceneMouseAddsCircles(t *testing.T) {
	s, frames, rec, h := newTestScene(t)

	s.Mouse(100, 120, 0)
	s.Mouse(50, 60, 0)
	s.Mouse(10, 10, 3)
	assert.Equal(t, 3, int(*frames))
	require.Len(t, s.circles, 2)

	s.Draw(h, 0)
	// two filled circles plus the hover ring
	assert.Equal(t, 2, count(rec.Calls, "fill nonzero moveTo"))
	assert.Equal(t, 1, count(rec.Calls, "stroke nonzero moveTo(25,10)"))
	assert.Contains(t, rec.Calls, "lineWidth 2")
}

func TestSceneFileDroppedSetsPalette(t *testing.T) {
	s, frames, _, _ := newTestScene(t)

	s.FileDropped("notes.txt", []byte("nothing here"))
	assert.Equal(t, DefaultPalette, s.palette)
	assert.Zero(t, int(*frames))

	s.FileDropped("p.txt", []byte("#ff0000, #00ff00\n#800000ff"))
	assert.Equal(t, []canvas.Color32{0xFFFF0000, 0xFF00FF00, 0x800000FF}, s.palette)
	assert.Equal(t, 1, int(*frames))
}

func TestSceneKeysCyclePalettes(t *testing.T) {
	s, frames, _, _ := newTestScene(t)

	assert.True(t, s.KeyDown(canvas.KeyArrowLeft, 0, 0))
	assert.Equal(t, builtinPalettes[len(builtinPalettes)-1], s.palette, "left wraps to the last palette")
	assert.True(t, s.KeyDown(canvas.KeyArrowRight, 0, 0))
	assert.Equal(t, DefaultPalette, s.palette)
	assert.Equal(t, 2, int(*frames))

	s.FileDropped("p.txt", []byte("#010203"))
	assert.True(t, s.KeyDown(canvas.KeyArrowRight, 0, canvas.ModShift))
	assert.Equal(t, DefaultPalette, s.palette, "right wraps past the dropped palette")

	assert.False(t, s.KeyDown(canvas.KeyArrowUp, 0, 0))
	assert.False(t, s.KeyDown(canvas.KeyNone, 'x', 0))
	assert.Equal(t, 4, int(*frames))
}

func TestSceneKeysClearCircles(t *testing.T) {
	s, _, _, _ := newTestScene(t)
	s.Mouse(100, 100, 0)
	s.Mouse(120, 100, 0)

	assert.False(t, s.KeyDown(canvas.KeyNone, 'c', canvas.ModControl))
	assert.Len(t, s.circles, 2)
	assert.True(t, s.KeyDown(canvas.KeyNone, 'c', 0))
	assert.Empty(t, s.circles)

	s.Mouse(100, 100, 0)
	assert.True(t, s.KeyDown(canvas.KeyDelete, 'c', 0))
	assert.Empty(t, s.circles)
}

func TestParsePalette(t *testing.T) {
	tests := []struct {
		in   string
		want []canvas.Color32
	}{
		{"", nil},
		{"#123456", []canvas.Color32{0xFF123456}},
		{"ff0000 #zzzzzz #12345", nil},
		{"#01020304,#0a0b0c", []canvas.Color32{0x01020304, 0xFF0A0B0C}},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePalette([]byte(tt.in)))
		})
	}
}
