// Package config loads the viewer settings from a TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
)

// Config holds the viewer settings. Zero fields in a file keep their
// defaults.
type Config struct {
	// Guest is the path of the wasm module to run.
	Guest      string `toml:"guest"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Title      string `toml:"title"`
	Surface    string `toml:"surface"`
	Background string `toml:"background"`
	TPS        int    `toml:"tps"`
	LogLevel   string `toml:"log_level"`
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Guest:      "wasm/draw.wasm",
		Width:      300,
		Height:     300,
		Title:      "c2dbridge",
		Surface:    "gg",
		Background: "white",
		TPS:        60,
		LogLevel:   "info",
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	c, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes TOML from r over the defaults. Unknown keys are an error.
func Parse(r io.Reader) (Config, error) {
	c := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("%w: %s", ErrInvalid, strict.String())
		}
		return Config{}, err
	}
	return c, c.Validate()
}

// Validate checks ranges and parses the colour and level fields.
func (c Config) Validate() error {
	var errs []error
	if c.Guest == "" {
		errs = append(errs, fmt.Errorf("%w: guest is empty", ErrInvalid))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height))
	}
	if c.Surface == "" {
		errs = append(errs, fmt.Errorf("%w: surface is empty", ErrInvalid))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("%w: tps %d", ErrInvalid, c.TPS))
	}
	if _, err := c.BackgroundColor(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// BackgroundColor parses Background.
func (c Config) BackgroundColor() (color.Color, error) {
	return ParseColor(c.Background)
}

// Level parses LogLevel as a slog level name.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}
	return l, nil
}

// ParseColor accepts an SVG colour name or #rgb, #rrggbb or #rrggbbaa.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return nil, fmt.Errorf("%w: colour %q", ErrInvalid, s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if len(hex) != 8 || err != nil {
		return nil, fmt.Errorf("%w: colour %q", ErrInvalid, s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
