package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyFromCode(t *testing.T) {
	tests := []struct {
		code string
		want Key
	}{
		{"ArrowLeft", KeyArrowLeft},
		{"ArrowRight", KeyArrowRight},
		{"NumpadEnter", KeyEnter},
		{"Enter", KeyReturn},
		{"Backspace", KeyDelete},
		{"Delete", KeyDelete},
		{"KeyA", KeyNone},
		{"", KeyNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KeyFromCode(tt.code), tt.code)
	}
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "arrow-left", KeyArrowLeft.String())
	assert.Equal(t, "delete", KeyDelete.String())
	assert.Equal(t, "key(?)", Key(99).String())
	assert.Equal(t, "key(?)", Key(-1).String())
}

func TestKeyModsBits(t *testing.T) {
	assert.Equal(t, KeyMods(0xF), ModShift|ModControl|ModOption|ModCommand)
}
