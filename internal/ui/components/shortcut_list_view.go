package components

import (
	"strings"

	key "github.com/charmbracelet/bubbles/key"
	viewport "github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	domain "github.com/inference-gateway/cheat/internal/domain"
	shortcuts "github.com/inference-gateway/cheat/internal/shortcuts"
	styles "github.com/inference-gateway/cheat/internal/ui/styles"
	truncate "github.com/muesli/reflow/truncate"
)

const (
	noMatchesMessage = "No matching shortcuts"
	emptyListMessage = "No shortcuts configured"
	rowGap           = 2
)

// ShortcutListView displays the shortcut list filtered by the current query.
// The visible subset and its rendered rows are rebuilt from scratch on every
// SetQuery; they never carry state from the previous query.
type ShortcutListView struct {
	shortcuts     domain.ShortcutList
	query         string
	visible       domain.ShortcutList
	rowStyles     []domain.RowStyle
	rows          []string
	keyWidth      int
	width         int
	height        int
	Viewport      viewport.Model
	styleProvider *styles.Provider
}

// NewShortcutListView creates a list view showing every entry of list
func NewShortcutListView(list domain.ShortcutList, styleProvider *styles.Provider) *ShortcutListView {
	vp := viewport.New(80, 20)
	vp.KeyMap = scrollKeyMap()

	lv := &ShortcutListView{
		shortcuts:     list,
		Viewport:      vp,
		width:         80,
		height:        20,
		styleProvider: styleProvider,
	}

	for _, entry := range list {
		lv.keyWidth = max(lv.keyWidth, styleProvider.GetWidth(entry.Key))
	}

	lv.SetQuery("")
	return lv
}

// scrollKeyMap limits viewport scrolling to keys that never produce text,
// so typing into the search bar does not scroll the list
func scrollKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
	}
}

// SetQuery recomputes the visible subset for text and re-renders it.
// With an empty query rows alternate between the even and odd styles; with a
// non-empty query every row uses the uniform style.
func (lv *ShortcutListView) SetQuery(text string) {
	lv.query = text
	lv.visible = shortcuts.Filter(lv.shortcuts, text)

	lv.rowStyles = make([]domain.RowStyle, len(lv.visible))
	for i := range lv.visible {
		switch {
		case text != "":
			lv.rowStyles[i] = domain.RowUniform
		case i%2 == 0:
			lv.rowStyles[i] = domain.RowEven
		default:
			lv.rowStyles[i] = domain.RowOdd
		}
	}

	lv.render()
	lv.Viewport.GotoTop()
}

// render discards the previous rows and renders the visible subset in order
func (lv *ShortcutListView) render() {
	lv.rows = make([]string, 0, len(lv.visible))

	descWidth := lv.width - lv.keyWidth - rowGap
	for i, entry := range lv.visible {
		description := entry.Description
		if descWidth > 0 {
			description = truncate.StringWithTail(description, uint(descWidth), "…")
		}
		lv.rows = append(lv.rows, lv.styleProvider.RenderRow(entry.Key, description, lv.keyWidth, lv.rowStyles[i]))
	}

	if len(lv.rows) == 0 {
		message := noMatchesMessage
		if len(lv.shortcuts) == 0 {
			message = emptyListMessage
		}
		lv.Viewport.SetContent(lv.styleProvider.RenderDimText(message))
		return
	}

	lv.Viewport.SetContent(strings.Join(lv.rows, "\n"))
}

// Update scrolls the list
func (lv *ShortcutListView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	lv.Viewport, cmd = lv.Viewport.Update(msg)
	return cmd
}

// View renders the visible part of the list
func (lv *ShortcutListView) View() string {
	return lv.Viewport.View()
}

// SetSize resizes the list and re-renders rows to the new width
func (lv *ShortcutListView) SetSize(width, height int) {
	lv.width = max(width, 0)
	lv.height = max(height, 1)
	lv.Viewport.Width = lv.width
	lv.Viewport.Height = lv.height
	lv.render()
}

// Query returns the current query
func (lv *ShortcutListView) Query() string {
	return lv.query
}

// Visible returns a copy of the visible subset
func (lv *ShortcutListView) Visible() domain.ShortcutList {
	visible := make(domain.ShortcutList, len(lv.visible))
	copy(visible, lv.visible)
	return visible
}

// RowStyles returns the style assigned to each visible row
func (lv *ShortcutListView) RowStyles() []domain.RowStyle {
	rowStyles := make([]domain.RowStyle, len(lv.rowStyles))
	copy(rowStyles, lv.rowStyles)
	return rowStyles
}

// Rows returns the rendered rows of the visible subset
func (lv *ShortcutListView) Rows() []string {
	rows := make([]string, len(lv.rows))
	copy(rows, lv.rows)
	return rows
}

// Len returns the number of visible entries
func (lv *ShortcutListView) Len() int {
	return len(lv.visible)
}

// Total returns the number of loaded entries
func (lv *ShortcutListView) Total() int {
	return len(lv.shortcuts)
}
