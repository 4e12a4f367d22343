package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/blockfall/internal/core"
)

// KeyMap defines the key bindings for a game.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Pause key.Binding
	Reset key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Pause, k.Reset},
		{k.Help, k.Quit},
	}
}

// NewKeyMap builds bindings from the configured movement and quit keys.
// Arrow keys always move as well.
func NewKeyMap(km core.KeyMap) KeyMap {
	left, right, quit := string(km.Left), string(km.Right), string(km.Quit)
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys(left, "left"),
			key.WithHelp(left+"/←", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys(right, "right"),
			key.WithHelp(right+"/→", "move right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new game"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys(quit, "ctrl+c"),
			key.WithHelp(quit, "quit"),
		),
	}
}
