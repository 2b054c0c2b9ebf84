package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// KeyMap defines the key bindings for the runner.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Jump    key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Restart, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "A"),
			key.WithHelp("←/a", "left lane"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "D"),
			key.WithHelp("→/d", "right lane"),
		),
		Jump: key.NewBinding(
			key.WithKeys("up", "w", " "),
			key.WithHelp("↑/space", "jump"),
		),
		Restart: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter/r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Command translates a key message into a runner command.
// Returns CommandNone for keys that are not game input.
func (k KeyMap) Command(msg tea.KeyMsg) core.Command {
	switch {
	case key.Matches(msg, k.Left):
		return core.CommandMoveLeft
	case key.Matches(msg, k.Right):
		return core.CommandMoveRight
	case key.Matches(msg, k.Jump):
		return core.CommandJump
	case key.Matches(msg, k.Restart):
		return core.CommandRestart
	}
	return core.CommandNone
}
