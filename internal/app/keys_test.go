package app

import (
	"testing"

	key "github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMap(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		dismiss bool
		scroll  bool
	}{
		{name: "esc", msg: tea.KeyMsg{Type: tea.KeyEsc}, dismiss: true},
		{name: "ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, dismiss: true},
		{name: "up", msg: tea.KeyMsg{Type: tea.KeyUp}, scroll: true},
		{name: "pgdown", msg: tea.KeyMsg{Type: tea.KeyPgDown}, scroll: true},
		{name: "ctrl+d", msg: tea.KeyMsg{Type: tea.KeyCtrlD}, scroll: true},
		{name: "letter", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}},
		{name: "backspace", msg: tea.KeyMsg{Type: tea.KeyBackspace}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.dismiss, key.Matches(tt.msg, keys.Dismiss))
			assert.Equal(t, tt.scroll, keys.isScroll(tt.msg))
		})
	}
}

func TestKeyMap_Help(t *testing.T) {
	keys := DefaultKeyMap()

	assert.Len(t, keys.ShortHelp(), 5)
	assert.Equal(t, "esc", keys.Dismiss.Help().Key)
	assert.Len(t, keys.FullHelp(), 3)
}
