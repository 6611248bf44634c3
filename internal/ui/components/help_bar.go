package components

import (
	help "github.com/charmbracelet/bubbles/help"
	styles "github.com/inference-gateway/cheat/internal/ui/styles"
)

// HelpBar displays the overlay key bindings on one line
type HelpBar struct {
	help    help.Model
	keyMap  help.KeyMap
	enabled bool
}

// NewHelpBar creates an enabled help bar for keyMap
func NewHelpBar(keyMap help.KeyMap, styleProvider *styles.Provider) *HelpBar {
	h := help.New()
	h.Styles = styleProvider.HelpStyles()
	h.ShortSeparator = " • "

	return &HelpBar{
		help:    h,
		keyMap:  keyMap,
		enabled: true,
	}
}

func (hb *HelpBar) IsEnabled() bool {
	return hb.enabled
}

func (hb *HelpBar) SetEnabled(enabled bool) {
	hb.enabled = enabled
}

func (hb *HelpBar) SetWidth(width int) {
	hb.help.Width = width
}

func (hb *HelpBar) Render() string {
	if !hb.enabled {
		return ""
	}
	return hb.help.View(hb.keyMap)
}
