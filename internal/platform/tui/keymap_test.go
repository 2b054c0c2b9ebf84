package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-runner/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapCommand(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Command
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.CommandMoveLeft},
		{"a", runeKey('a'), core.CommandMoveLeft},
		{"A", runeKey('A'), core.CommandMoveLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.CommandMoveRight},
		{"d", runeKey('d'), core.CommandMoveRight},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.CommandJump},
		{"w", runeKey('w'), core.CommandJump},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.CommandJump},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.CommandRestart},
		{"r", runeKey('r'), core.CommandRestart},
		{"unbound", runeKey('x'), core.CommandNone},
		{"quit is not a game command", runeKey('q'), core.CommandNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Command(tc.msg); got != tc.expected {
				t.Errorf("Command(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("short help should list bindings")
	}

	n := 0
	for _, col := range keys.FullHelp() {
		n += len(col)
	}
	if n != 6 {
		t.Errorf("full help lists %d bindings, expected 6", n)
	}
}
