package canvas

// Key is a non-character key passed to a guest's key handler. Keys that
// produce text arrive as KeyNone with the character alongside.
type Key int32

const (
	KeyNone Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyPageUp
	KeyPageDown
	KeyEnter
	KeyReturn
	KeyEscape
	KeyDelete
)

var keyNames = [...]string{
	KeyNone:       "none",
	KeyArrowUp:    "arrow-up",
	KeyArrowDown:  "arrow-down",
	KeyArrowLeft:  "arrow-left",
	KeyArrowRight: "arrow-right",
	KeyPageUp:     "page-up",
	KeyPageDown:   "page-down",
	KeyEnter:      "enter",
	KeyReturn:     "return",
	KeyEscape:     "escape",
	KeyDelete:     "delete",
}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return "key(?)"
	}
	return keyNames[k]
}

// domKeys maps KeyboardEvent.code values.
var domKeys = map[string]Key{
	"ArrowUp":     KeyArrowUp,
	"ArrowDown":   KeyArrowDown,
	"ArrowLeft":   KeyArrowLeft,
	"ArrowRight":  KeyArrowRight,
	"PageUp":      KeyPageUp,
	"PageDown":    KeyPageDown,
	"NumpadEnter": KeyEnter,
	"Enter":       KeyReturn,
	"Escape":      KeyEscape,
	"Delete":      KeyDelete,
	"Backspace":   KeyDelete,
}

// KeyFromCode returns the key for a DOM KeyboardEvent.code, or KeyNone.
func KeyFromCode(code string) Key {
	return domKeys[code]
}

// KeyMods is a set of held modifier keys.
type KeyMods int32

const (
	ModShift KeyMods = 1 << iota
	ModControl
	ModOption
	ModCommand
)
