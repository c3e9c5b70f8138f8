// Package input is the backend-neutral key event vocabulary shared by the
// render surfaces and the game systems.
package input

import "fmt"

// Key is a key the program reacts to. Backends map everything else to
// KeyUnknown or drop it.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEscape
	KeyTab
	KeyQ
	KeyE
	KeyR
)

var keyNames = [...]string{
	KeyUnknown: "unknown",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyUp:      "up",
	KeyDown:    "down",
	KeyEscape:  "esc",
	KeyTab:     "tab",
	KeyQ:       "q",
	KeyE:       "e",
	KeyR:       "r",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}

// KeyFromRune maps a printable key, ignoring case.
func KeyFromRune(r rune) Key {
	switch r {
	case 'q', 'Q':
		return KeyQ
	case 'e', 'E':
		return KeyE
	case 'r', 'R':
		return KeyR
	}
	return KeyUnknown
}

// Event is one key transition. Press is false for a release.
type Event struct {
	Key   Key
	Press bool
}

// Press and Release build key events.
func Press(k Key) Event   { return Event{Key: k, Press: true} }
func Release(k Key) Event { return Event{Key: k} }

func (e Event) String() string {
	if e.Press {
		return "+" + e.Key.String()
	}
	return "-" + e.Key.String()
}

// Source yields the events gathered since the previous call. The batch is
// finite and Poll never blocks.
type Source interface {
	Poll() []Event
}
