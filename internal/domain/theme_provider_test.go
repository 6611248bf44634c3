package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeProvider_Defaults(t *testing.T) {
	tp := NewThemeProvider()

	assert.Equal(t, DefaultThemeName, tp.GetCurrentThemeName())
	assert.Equal(t, []string{"dracula", "github-light", "tokyo-night"}, tp.ListThemes())
	require.NotNil(t, tp.GetCurrentTheme())
	assert.Equal(t, "#c0caf5", tp.GetCurrentTheme().GetTextColor())
}

func TestThemeProvider_SetTheme(t *testing.T) {
	tp := NewThemeProvider()

	require.NoError(t, tp.SetTheme("dracula"))
	assert.Equal(t, "dracula", tp.GetCurrentThemeName())
	assert.Equal(t, "#d3d3d3", tp.GetCurrentTheme().GetAltTextColor())

	err := tp.SetTheme("solarized")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "theme 'solarized' not found")
	assert.Equal(t, "dracula", tp.GetCurrentThemeName())
}

func TestThemeProvider_GetTheme(t *testing.T) {
	tp := NewThemeProvider()

	theme, err := tp.GetTheme("")
	require.NoError(t, err)
	assert.Equal(t, tp.GetCurrentTheme(), theme)

	theme, err = tp.GetTheme("github-light")
	require.NoError(t, err)
	assert.Equal(t, "#0366d6", theme.GetAccentColor())

	_, err = tp.GetTheme("missing")
	assert.Error(t, err)
}

func TestThemesDefineEveryColor(t *testing.T) {
	tp := NewThemeProvider()

	for _, name := range tp.ListThemes() {
		theme, err := tp.GetTheme(name)
		require.NoError(t, err)

		for _, c := range []string{
			theme.GetTextColor(),
			theme.GetAltTextColor(),
			theme.GetAccentColor(),
			theme.GetDimColor(),
			theme.GetBorderColor(),
			theme.GetErrorColor(),
			theme.GetBackdropColor(),
		} {
			assert.NotEmpty(t, c, "theme %s has an empty color", name)
		}
	}
}
