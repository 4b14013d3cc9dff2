package main

import (
	"image"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/efejjota/c2dbridge/host"
	"github.com/efejjota/c2dbridge/intake"
	"github.com/efejjota/c2dbridge/internal/viewer"
)

type mouseEvent struct {
	x, y float32
	kind host.MouseKind
}

// Game is the ebiten side of the viewer. The wazero guest runs on the
// render goroutine; Update only exchanges messages with it through
// channels and never blocks.
type Game struct {
	v     *viewer.Viewer
	drops *intake.Intake
	log   *slog.Logger

	screen *ebiten.Image
	// frames cycle between the render goroutine and Update.
	free  chan *image.RGBA
	ready chan *image.RGBA

	drawFrame chan struct{}
	mouse     chan mouseEvent
	keys      chan keyEvent
	files     chan intake.Contents

	lastX, lastY int
	pressed      []ebiten.Key
	chars        []rune
	keyBuf       []keyEvent
}

func newGame(v *viewer.Viewer, drops *intake.Intake, w, h int, log *slog.Logger) *Game {
	g := &Game{
		v:         v,
		drops:     drops,
		log:       log,
		screen:    ebiten.NewImage(w, h),
		free:      make(chan *image.RGBA, 2),
		ready:     make(chan *image.RGBA, 1),
		drawFrame: make(chan struct{}, 1),
		mouse:     make(chan mouseEvent, 64),
		keys:      make(chan keyEvent, 16),
		files:     make(chan intake.Contents, 1),
		lastX:     -1,
		lastY:     -1,
	}
	for range cap(g.free) {
		g.free <- image.NewRGBA(image.Rect(0, 0, w, h))
	}
	return g
}

// render owns the viewer. It runs guest calls in the order Update
// requested them.
func (g *Game) render() {
	for {
		select {
		case <-g.drawFrame:
			buf := <-g.free
			if err := g.v.Frame(buf); err != nil {
				g.log.Error("draw", "err", err)
			}
			g.ready <- buf
		case ev := <-g.mouse:
			if err := g.v.Mouse(ev.x, ev.y, ev.kind); err != nil {
				g.log.Error("mouse", "err", err)
			}
		case ev := <-g.keys:
			if _, err := g.v.Key(ev.key, ev.uni, ev.mods); err != nil {
				g.log.Error("key", "key", ev.key, "err", err)
			}
		case c := <-g.files:
			if err := g.v.HandleFile(c); err != nil {
				g.log.Error("dropped file", "name", c.Name, "err", err)
			}
		}
	}
}

// read turns dropped files into contents for the render goroutine.
func (g *Game) read() {
	for f := range g.drops.Files() {
		g.files <- <-intake.ReadFile(f)
	}
}

func (g *Game) Update() error {
	select {
	case buf := <-g.ready:
		g.screen.WritePixels(buf.Pix)
		g.free <- buf
	default:
		// Don't block if no frame has finished
	}

	if g.v.Frames().Pending() {
		select {
		case g.drawFrame <- struct{}{}:
		default:
			// a draw is in flight; ask again next tick
			g.v.Frames().RequestFrame()
		}
	}

	g.updateMouse()
	g.updateKeys()

	if fsys := ebiten.DroppedFiles(); fsys != nil {
		files, err := intake.FilesFromFS(fsys)
		if err != nil {
			g.log.Error("dropped files", "err", err)
		} else {
			g.drops.Drop(files)
		}
	}
	return nil
}

func (g *Game) updateMouse() {
	x, y := ebiten.CursorPosition()
	kind := host.MouseKind(-1)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		kind = host.MouseDown
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		kind = host.MouseUp
	case x != g.lastX || y != g.lastY:
		kind = host.MouseHover
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			kind = host.MouseMove
		}
	}
	g.lastX, g.lastY = x, y
	if kind < 0 {
		return
	}
	select {
	case g.mouse <- mouseEvent{x: float32(x), y: float32(y), kind: kind}:
	default:
		g.log.Debug("mouse event dropped", "kind", kind)
	}
}

func (g *Game) updateKeys() {
	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	if len(g.pressed) == 0 && len(g.chars) == 0 {
		return
	}
	g.keyBuf = keyEvents(g.keyBuf[:0], g.pressed, g.chars, currentMods(ebiten.IsKeyPressed))
	for _, ev := range g.keyBuf {
		select {
		case g.keys <- ev:
		default:
			g.log.Debug("key event dropped", "key", ev.key)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.screen, nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screen.Bounds().Dx(), g.screen.Bounds().Dy()
}
