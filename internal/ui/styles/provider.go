package styles

import (
	"strings"

	help "github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/inference-gateway/cheat/internal/domain"
)

// Provider centralizes all styling logic. Components interact with styling
// through this provider instead of building lipgloss styles themselves.
type Provider struct {
	themeService domain.ThemeService
}

// NewProvider creates a new style provider
func NewProvider(themeService domain.ThemeService) *Provider {
	return &Provider{
		themeService: themeService,
	}
}

// Shortcut rows

// RenderRow renders one shortcut row; the key column is padded to keyWidth cells
func (p *Provider) RenderRow(key, description string, keyWidth int, style domain.RowStyle) string {
	rs := newRowStyles(p.themeService.GetCurrentTheme())[style]

	renderedKey := rs.Key.Render(key)
	if pad := keyWidth - lipgloss.Width(key); pad > 0 {
		renderedKey += strings.Repeat(" ", pad)
	}

	return renderedKey + rs.Description.Render(description)
}

// Panel styles

// RenderTitle renders the overlay title
func (p *Provider) RenderTitle(title string) string {
	theme := p.themeService.GetCurrentTheme()
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.GetAccentColor())).
		Bold(true)
	return style.Render(title)
}

// RenderSearchField renders the search input with a rounded border
func (p *Provider) RenderSearchField(content string, width int, focused bool) string {
	theme := p.themeService.GetCurrentTheme()

	borderColor := theme.GetBorderColor()
	if focused {
		borderColor = theme.GetAccentColor()
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(0, 1).
		Width(max(width-2, 0))

	return style.Render(content)
}

// RenderSeparator renders a horizontal rule
func (p *Provider) RenderSeparator(width int) string {
	if width <= 0 {
		return ""
	}
	theme := p.themeService.GetCurrentTheme()
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.GetBorderColor()))
	return style.Render(strings.Repeat("─", width))
}

// RenderPanel renders content inside the overlay panel
func (p *Provider) RenderPanel(content string, width, height int) string {
	theme := p.themeService.GetCurrentTheme()
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.GetBorderColor())).
		Padding(0, 1).
		Width(max(width-2, 0)).
		Height(max(height-2, 0))
	return style.Render(content)
}

// PlaceOnBackdrop centers content in the given area and fills the rest with the backdrop color
func (p *Provider) PlaceOnBackdrop(width, height int, content string) string {
	theme := p.themeService.GetCurrentTheme()
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(theme.GetBackdropColor())))
}

// Text styles

// RenderDimText renders text in the dim color
func (p *Provider) RenderDimText(text string) string {
	theme := p.themeService.GetCurrentTheme()
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.GetDimColor()))
	return style.Render(text)
}

// RenderErrorText renders text in the error color
func (p *Provider) RenderErrorText(text string) string {
	theme := p.themeService.GetCurrentTheme()
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.GetErrorColor()))
	return style.Render(text)
}

// Widget styles

// SearchInputStyles returns the prompt, text and placeholder styles for the search input
func (p *Provider) SearchInputStyles() (prompt, text, placeholder lipgloss.Style) {
	theme := p.themeService.GetCurrentTheme()
	prompt = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.GetAccentColor()))
	text = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.GetTextColor()))
	placeholder = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.GetDimColor())).Italic(true)
	return prompt, text, placeholder
}

// HelpStyles returns styles for the key help line
func (p *Provider) HelpStyles() help.Styles {
	theme := p.themeService.GetCurrentTheme()
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.GetAccentColor()))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.GetDimColor()))
	sepStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.GetBorderColor()))

	return help.Styles{
		ShortKey:       keyStyle,
		ShortDesc:      descStyle,
		ShortSeparator: sepStyle,
		Ellipsis:       sepStyle,
		FullKey:        keyStyle,
		FullDesc:       descStyle,
		FullSeparator:  sepStyle,
	}
}

// Layout utilities to avoid components depending on lipgloss

// JoinVertical joins strings vertically
func (p *Provider) JoinVertical(strs ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, strs...)
}

// GetHeight returns the rendered height of a string
func (p *Provider) GetHeight(s string) int {
	return lipgloss.Height(s)
}

// GetWidth returns the rendered width of a string
func (p *Provider) GetWidth(s string) int {
	return lipgloss.Width(s)
}
