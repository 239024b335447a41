package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// KeyMap defines the key bindings of the game screen.
// Each binding presses one or more pad buttons; Chord presses both fire
// buttons at once, which starts the demo on the title screen and drops a
// bomb while playing.
type KeyMap struct {
	FireLeft  key.Binding
	MoveLeft  key.Binding
	FireRight key.Binding
	MoveRight key.Binding
	Chord     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.MoveLeft, k.MoveRight, k.FireLeft, k.FireRight, k.Chord, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.MoveLeft, k.MoveRight},
		{k.FireLeft, k.FireRight, k.Chord},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		FireLeft: key.NewBinding(
			key.WithKeys("a", "z"),
			key.WithHelp("a/z", "fire left"),
		),
		MoveLeft: key.NewBinding(
			key.WithKeys("b", "left", "h"),
			key.WithHelp("b/←", "left"),
		),
		FireRight: key.NewBinding(
			key.WithKeys("x", "c"),
			key.WithHelp("x/c", "fire right"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys("y", "right", "l"),
			key.WithHelp("y/→", "right"),
		),
		Chord: key.NewBinding(
			key.WithKeys("d", " "),
			key.WithHelp("d/space", "bomb / demo"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Buttons translates a key message to the pad buttons it presses.
// Returns nil for keys that are not game controls.
func (k KeyMap) Buttons(msg tea.KeyMsg) []core.Button {
	switch {
	case key.Matches(msg, k.FireLeft):
		return []core.Button{core.ButtonA}
	case key.Matches(msg, k.MoveLeft):
		return []core.Button{core.ButtonB}
	case key.Matches(msg, k.FireRight):
		return []core.Button{core.ButtonX}
	case key.Matches(msg, k.MoveRight):
		return []core.Button{core.ButtonY}
	case key.Matches(msg, k.Chord):
		return []core.Button{core.ButtonA, core.ButtonX}
	}
	return nil
}
