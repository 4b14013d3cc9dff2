package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/efejjota/c2dbridge/canvas"
	"github.com/efejjota/c2dbridge/config"
	"github.com/efejjota/c2dbridge/intake"
	"github.com/efejjota/c2dbridge/internal/viewer"
	"github.com/efejjota/c2dbridge/surface"
	_ "github.com/efejjota/c2dbridge/surface/ggsurface"
	_ "github.com/efejjota/c2dbridge/surface/gogpusurface"
)

//go:generate env GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o wasm/draw.wasm ./wasm

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file")
		guestPath  = flag.String("guest", "", "wasm guest to run (overrides config)")
		surfName   = flag.String("surface", "", fmt.Sprintf("raster backend %v (overrides config)", surface.Names()))
		debug      = flag.Bool("debug", false, "log bridge calls")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fatal(err)
		}
	}
	if *guestPath != "" {
		cfg.Guest = *guestPath
	}
	if *surfName != "" {
		cfg.Surface = *surfName
	}
	if *debug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	level, _ := cfg.Level()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)
	canvas.SetLogger(log)

	if err := run(cfg, log); err != nil {
		fatal(err)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx := context.Background()
	bg, _ := cfg.BackgroundColor()

	wasm, err := os.ReadFile(cfg.Guest)
	if err != nil {
		return err
	}
	v, err := viewer.New(ctx, viewer.Options{
		Surface:    cfg.Surface,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Background: bg,
		Logger:     log,
	})
	if err != nil {
		return err
	}
	defer v.Close()
	if err := v.Load(filepath.Base(cfg.Guest), wasm); err != nil {
		return err
	}

	drops := intake.New(intake.WithLogger(log))
	g := newGame(v, drops, cfg.Width, cfg.Height, log)
	go g.render()
	go g.read()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TPS)

	// blocks until the window is closed
	return ebiten.RunGame(g)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "c2dbridge:", err)
	os.Exit(1)
}
