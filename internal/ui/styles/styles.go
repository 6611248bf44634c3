package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/inference-gateway/cheat/internal/domain"
)

// RowStyles holds the key and description styles for one kind of shortcut row
type RowStyles struct {
	Key         lipgloss.Style
	Description lipgloss.Style
}

// newRowStyles builds the row styles for a theme. Even and uniform rows use the
// primary text color, odd rows the alternate one.
func newRowStyles(theme domain.Theme) map[domain.RowStyle]RowStyles {
	primary := lipgloss.Color(theme.GetTextColor())
	alternate := lipgloss.Color(theme.GetAltTextColor())

	build := func(c lipgloss.Color) RowStyles {
		return RowStyles{
			Key:         lipgloss.NewStyle().Foreground(c).Bold(true).PaddingRight(2),
			Description: lipgloss.NewStyle().Foreground(c),
		}
	}

	return map[domain.RowStyle]RowStyles{
		domain.RowEven:    build(primary),
		domain.RowOdd:     build(alternate),
		domain.RowUniform: build(primary),
	}
}
