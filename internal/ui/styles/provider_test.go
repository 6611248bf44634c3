package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/inference-gateway/cheat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	return NewProvider(domain.NewThemeProvider())
}

func TestRenderRow_PadsKeyColumn(t *testing.T) {
	p := newTestProvider(t)

	row := p.RenderRow("Esc", "Close", 10, domain.RowEven)

	plain := stripANSI(row)
	assert.True(t, strings.HasPrefix(plain, "Esc"))
	assert.True(t, strings.HasSuffix(plain, "Close"))
	assert.Equal(t, 10+2+len("Close"), lipgloss.Width(row))
}

func TestRenderRow_KeyWiderThanColumn(t *testing.T) {
	p := newTestProvider(t)

	row := p.RenderRow("Ctrl+Shift+Alt+P", "Palette", 4, domain.RowUniform)

	assert.Equal(t, "Ctrl+Shift+Alt+P  Palette", stripANSI(row))
}

func TestNewRowStyles_EvenOddUniform(t *testing.T) {
	theme := domain.NewDraculaTheme()
	rs := newRowStyles(theme)

	require.Len(t, rs, 3)
	assert.Equal(t, lipgloss.Color(theme.GetTextColor()), rs[domain.RowEven].Key.GetForeground())
	assert.Equal(t, lipgloss.Color(theme.GetAltTextColor()), rs[domain.RowOdd].Description.GetForeground())
	assert.Equal(t, lipgloss.Color(theme.GetTextColor()), rs[domain.RowUniform].Description.GetForeground())
}

func TestPlaceOnBackdrop_FillsArea(t *testing.T) {
	p := newTestProvider(t)

	out := p.PlaceOnBackdrop(20, 5, "hi")

	assert.Equal(t, 5, p.GetHeight(out))
	assert.Equal(t, 20, p.GetWidth(out))
	assert.Contains(t, out, "hi")
}

func TestRenderPanel_Size(t *testing.T) {
	p := newTestProvider(t)

	out := p.RenderPanel("content", 30, 8)

	assert.Equal(t, 30, p.GetWidth(out))
	assert.Equal(t, 8, p.GetHeight(out))
}

func TestRenderSeparator(t *testing.T) {
	p := newTestProvider(t)

	assert.Equal(t, "", p.RenderSeparator(0))
	assert.Equal(t, strings.Repeat("─", 6), stripANSI(p.RenderSeparator(6)))
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return b.String()
}
