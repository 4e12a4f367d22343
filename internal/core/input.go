package core

import "fmt"

// Action is a semantic input intent, abstracted from physical keys.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionQuit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ctrlC is what a terminal in raw mode delivers for Ctrl+C.
const ctrlC = 0x03

// KeyMap binds single-character key codes to actions.
type KeyMap struct {
	Left  rune
	Right rune
	Quit  rune
}

// DefaultKeyMap returns the classic bindings: a/d to move, q to quit.
func DefaultKeyMap() KeyMap {
	return KeyMap{Left: 'a', Right: 'd', Quit: 'q'}
}

// Lookup maps a key code to an action. Unbound keys map to ActionNone.
// Ctrl+C always quits.
func (k KeyMap) Lookup(r rune) Action {
	switch r {
	case k.Left:
		return ActionLeft
	case k.Right:
		return ActionRight
	case k.Quit, ctrlC:
		return ActionQuit
	}
	return ActionNone
}

// Validate reports bindings that are unset or collide.
func (k KeyMap) Validate() error {
	keys := map[rune]string{}
	for name, r := range map[string]rune{"left": k.Left, "right": k.Right, "quit": k.Quit} {
		if r == 0 {
			return fmt.Errorf("key %s is not bound", name)
		}
		if other, dup := keys[r]; dup {
			return fmt.Errorf("keys %s and %s share %q", other, name, r)
		}
		keys[r] = name
	}
	return nil
}
