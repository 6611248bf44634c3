package components

import (
	"testing"

	key "github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
)

type testKeyMap struct {
	quit   key.Binding
	scroll key.Binding
}

func (k testKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit, k.scroll}
}

func (k testKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newTestKeyMap() testKeyMap {
	return testKeyMap{
		quit:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		scroll: key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "scroll")),
	}
}

func TestHelpBar_Render(t *testing.T) {
	hb := NewHelpBar(newTestKeyMap(), createStyleProvider())
	hb.SetWidth(80)

	assert.True(t, hb.IsEnabled())
	out := hb.Render()
	assert.Contains(t, out, "esc")
	assert.Contains(t, out, "close")
	assert.Contains(t, out, "scroll")
}

func TestHelpBar_Disabled(t *testing.T) {
	hb := NewHelpBar(newTestKeyMap(), createStyleProvider())

	hb.SetEnabled(false)

	assert.False(t, hb.IsEnabled())
	assert.Equal(t, "", hb.Render())
}
