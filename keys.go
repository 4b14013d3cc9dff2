package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/efejjota/c2dbridge/canvas"
)

type keyEvent struct {
	key  canvas.Key
	uni  rune
	mods canvas.KeyMods
}

var ebitenKeys = map[ebiten.Key]canvas.Key{
	ebiten.KeyArrowUp:     canvas.KeyArrowUp,
	ebiten.KeyArrowDown:   canvas.KeyArrowDown,
	ebiten.KeyArrowLeft:   canvas.KeyArrowLeft,
	ebiten.KeyArrowRight:  canvas.KeyArrowRight,
	ebiten.KeyPageUp:      canvas.KeyPageUp,
	ebiten.KeyPageDown:    canvas.KeyPageDown,
	ebiten.KeyNumpadEnter: canvas.KeyEnter,
	ebiten.KeyEnter:       canvas.KeyReturn,
	ebiten.KeyEscape:      canvas.KeyEscape,
	ebiten.KeyDelete:      canvas.KeyDelete,
	ebiten.KeyBackspace:   canvas.KeyDelete,
}

func currentMods(pressed func(ebiten.Key) bool) canvas.KeyMods {
	var m canvas.KeyMods
	if pressed(ebiten.KeyShift) {
		m |= canvas.ModShift
	}
	if pressed(ebiten.KeyControl) {
		m |= canvas.ModControl
	}
	if pressed(ebiten.KeyAlt) {
		m |= canvas.ModOption
	}
	if pressed(ebiten.KeyMeta) {
		m |= canvas.ModCommand
	}
	return m
}

// keyEvents turns the keys pressed and characters typed this tick into
// guest events: mapped keys first, then one KeyNone event per character.
func keyEvents(dst []keyEvent, pressed []ebiten.Key, chars []rune, mods canvas.KeyMods) []keyEvent {
	for _, k := range pressed {
		if ck, ok := ebitenKeys[k]; ok {
			dst = append(dst, keyEvent{key: ck, mods: mods})
		}
	}
	for _, r := range chars {
		dst = append(dst, keyEvent{key: canvas.KeyNone, uni: r, mods: mods})
	}
	return dst
}
