package components

import (
	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	styles "github.com/inference-gateway/cheat/internal/ui/styles"
	icons "github.com/inference-gateway/cheat/internal/ui/styles/icons"
)

// DefaultSearchPlaceholder is shown while the search bar is empty
const DefaultSearchPlaceholder = "Search shortcuts..."

// SearchBar is the single-line query input at the top of the overlay
type SearchBar struct {
	input         textinput.Model
	width         int
	styleProvider *styles.Provider
}

// NewSearchBar creates an unfocused search bar
func NewSearchBar(placeholder string, styleProvider *styles.Provider) *SearchBar {
	if placeholder == "" {
		placeholder = DefaultSearchPlaceholder
	}

	ti := textinput.New()
	ti.Prompt = icons.SearchPrompt
	ti.Placeholder = placeholder
	ti.PromptStyle, ti.TextStyle, ti.PlaceholderStyle = styleProvider.SearchInputStyles()

	return &SearchBar{
		input:         ti,
		width:         80,
		styleProvider: styleProvider,
	}
}

// Focus gives the search bar keyboard focus
func (s *SearchBar) Focus() tea.Cmd {
	return s.input.Focus()
}

// Focused reports whether the search bar has keyboard focus
func (s *SearchBar) Focused() bool {
	return s.input.Focused()
}

// Update forwards msg to the text input and reports whether the query changed
func (s *SearchBar) Update(msg tea.Msg) (bool, tea.Cmd) {
	before := s.input.Value()

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	return s.input.Value() != before, cmd
}

// Value returns the current query text
func (s *SearchBar) Value() string {
	return s.input.Value()
}

// SetWidth sets the outer width of the search field
func (s *SearchBar) SetWidth(width int) {
	s.width = width
	// border, padding and prompt
	s.input.Width = max(width-4-s.styleProvider.GetWidth(s.input.Prompt)-1, 1)
}

// View renders the search field
func (s *SearchBar) View() string {
	return s.styleProvider.RenderSearchField(s.input.View(), s.width, s.input.Focused())
}
