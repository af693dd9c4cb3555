package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// KeyMap holds the dodge key bindings. Matching is case-sensitive: "W" is not "w".
// It satisfies help.KeyMap so the footer and `dodge keys` print the same bindings.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the w/a/s/d/q bindings. ctrl+c also quits because raw
// mode swallows SIGINT.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key to a game action. Anything unbound is ActionNone.
// k is a tea.KeyMsg or any other Stringer that names keys the Bubble Tea way.
func (km KeyMap) Action(k fmt.Stringer) core.Action {
	switch {
	case key.Matches(k, km.Quit):
		return core.ActionQuit
	case key.Matches(k, km.Up):
		return core.ActionUp
	case key.Matches(k, km.Down):
		return core.ActionDown
	case key.Matches(k, km.Left):
		return core.ActionLeft
	case key.Matches(k, km.Right):
		return core.ActionRight
	}
	return core.ActionNone
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Left, km.Down, km.Right, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Left, km.Right},
		{km.Quit},
	}
}
