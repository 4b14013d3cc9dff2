//go:build js && wasm

// Command web runs the demo scene in a browser: the scene draws through
// the bridge onto a <canvas> element, redraws on requestAnimationFrame and
// accepts dropped palette files.
//
//	GOOS=js GOARCH=wasm go build -o web/main.wasm ./web
package main

import (
	"fmt"
	"log/slog"
	"os"
	"syscall/js"
	"time"

	"github.com/efejjota/c2dbridge/canvas"
	"github.com/efejjota/c2dbridge/guest"
	"github.com/efejjota/c2dbridge/intake"
	"github.com/efejjota/c2dbridge/intake/jsintake"
	"github.com/efejjota/c2dbridge/internal/demo"
	"github.com/efejjota/c2dbridge/surface/jssurface"
)

const canvasID = "c2d"

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	canvas.SetLogger(log)
	if err := run(log); err != nil {
		fmt.Fprintln(os.Stderr, "c2dbridge:", err)
		os.Exit(1)
	}
	select {}
}

func run(log *slog.Logger) error {
	el := js.Global().Get("document").Call("getElementById", canvasID)
	if el.IsNull() {
		return fmt.Errorf("no <canvas id=%q>", canvasID)
	}
	el.Set("width", demo.Size)
	el.Set("height", demo.Size)
	surf, err := jssurface.New(el)
	if err != nil {
		return err
	}

	reg := canvas.NewRegistry()
	h, err := reg.Register(surf)
	if err != nil {
		return err
	}

	// Callbacks from JS and the drop reader both touch the scene, so every
	// scene call goes through one goroutine.
	work := make(chan func(), 16)
	var scene *demo.Scene
	calls := &guest.BridgeCalls{}

	draw := func(secs float64) func() {
		return func() {
			w, hh := surf.Size()
			surf.ClearRect(0, 0, float64(w), float64(hh))
			scene.Draw(uint32(h), secs)
			if calls.Err != nil {
				log.Error("draw", "err", calls.Err)
				calls.Err = nil
			}
		}
	}
	frames := jssurface.NewAnimationFrames(func(secs float64) {
		// JS callbacks must not block.
		go func() { work <- draw(secs) }()
	})
	calls.Bridge = canvas.NewBridge(reg, canvas.WithScheduler(frames))
	scene = demo.NewScene(calls, uint64(time.Now().UnixNano()))

	drops := intake.New(intake.WithLogger(log))
	jsintake.Install(el, drops)
	go func() {
		for f := range drops.Files() {
			c := <-intake.ReadFile(f)
			if c.Err != nil {
				log.Error("read dropped file", "err", c.Err)
				continue
			}
			work <- func() { scene.FileDropped(c.Name, c.Data) }
		}
	}()

	installMouse(el, work, scene)
	installKeys(work, scene)

	go func() {
		for fn := range work {
			fn()
		}
	}()
	frames.RequestFrame()
	log.Info("web demo running", "canvas", canvasID, "handle", h)
	return nil
}

func installMouse(el js.Value, work chan<- func(), scene *demo.Scene) {
	down := false
	handler := func(kind func() int32) js.Func {
		return js.FuncOf(func(this js.Value, args []js.Value) any {
			ev := args[0]
			x := float32(ev.Get("offsetX").Float())
			y := float32(ev.Get("offsetY").Float())
			k := kind()
			select {
			case work <- func() { scene.Mouse(x, y, k) }:
			default:
			}
			return nil
		})
	}
	el.Call("addEventListener", "mousedown", handler(func() int32 { down = true; return 0 }))
	el.Call("addEventListener", "mouseup", handler(func() int32 { down = false; return 1 }))
	el.Call("addEventListener", "mousemove", handler(func() int32 {
		if down {
			return 2
		}
		return 3
	}))
}

// installKeys listens on the document since a <canvas> only receives key
// events when focused. The scene runs on the work goroutine, so the arrow
// keys it cycles palettes with have their page scrolling suppressed here.
func installKeys(work chan<- func(), scene *demo.Scene) {
	handler := js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := args[0]
		k := canvas.KeyFromCode(ev.Get("code").String())
		var uni rune
		if r := []rune(ev.Get("key").String()); len(r) == 1 {
			uni = r[0]
		}
		var mods canvas.KeyMods
		for bit, prop := range map[canvas.KeyMods]string{
			canvas.ModShift:   "shiftKey",
			canvas.ModControl: "ctrlKey",
			canvas.ModOption:  "altKey",
			canvas.ModCommand: "metaKey",
		} {
			if ev.Get(prop).Bool() {
				mods |= bit
			}
		}
		if k == canvas.KeyNone && uni == 0 {
			return nil
		}
		select {
		case work <- func() { scene.KeyDown(k, uni, mods) }:
		default:
		}
		if k == canvas.KeyArrowLeft || k == canvas.KeyArrowRight {
			ev.Call("preventDefault")
		}
		return nil
	})
	js.Global().Get("document").Call("addEventListener", "keydown", handler)
}
