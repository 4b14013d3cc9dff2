package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/efejjota/c2dbridge/canvas"
)

func TestKeyEvents(t *testing.T) {
	got := keyEvents(nil,
		[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyBackspace},
		[]rune{'a'},
		canvas.ModShift)
	assert.Equal(t, []keyEvent{
		{key: canvas.KeyArrowLeft, mods: canvas.ModShift},
		{key: canvas.KeyDelete, mods: canvas.ModShift},
		{key: canvas.KeyNone, uni: 'a', mods: canvas.ModShift},
	}, got)
}

func TestCurrentMods(t *testing.T) {
	held := map[ebiten.Key]bool{ebiten.KeyControl: true, ebiten.KeyMeta: true}
	mods := currentMods(func(k ebiten.Key) bool { return held[k] })
	assert.Equal(t, canvas.ModControl|canvas.ModCommand, mods)
	assert.Zero(t, currentMods(func(ebiten.Key) bool { return false }))
}
