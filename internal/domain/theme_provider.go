package domain

import (
	"fmt"
	"sort"

	"github.com/inference-gateway/cheat/internal/ui/styles/colors"
)

// DefaultThemeName is the theme used when none is configured
const DefaultThemeName = "tokyo-night"

// ThemeProvider implements ThemeService and manages available themes
type ThemeProvider struct {
	themes      map[string]Theme
	currentName string
}

var _ ThemeService = (*ThemeProvider)(nil)

// NewThemeProvider creates a new theme provider with default themes
func NewThemeProvider() *ThemeProvider {
	provider := &ThemeProvider{
		themes:      make(map[string]Theme),
		currentName: DefaultThemeName,
	}

	provider.registerDefaultThemes()
	return provider
}

// registerDefaultThemes registers all built-in themes
func (tp *ThemeProvider) registerDefaultThemes() {
	tp.themes["tokyo-night"] = NewTokyoNightTheme()
	tp.themes["github-light"] = NewGithubLightTheme()
	tp.themes["dracula"] = NewDraculaTheme()
}

// GetTheme returns the theme by name, or the current theme if name is empty
func (tp *ThemeProvider) GetTheme(name string) (Theme, error) {
	if name == "" {
		name = tp.currentName
	}

	theme, exists := tp.themes[name]
	if !exists {
		return nil, fmt.Errorf("theme '%s' not found", name)
	}

	return theme, nil
}

// SetTheme sets the current theme by name
func (tp *ThemeProvider) SetTheme(name string) error {
	if _, exists := tp.themes[name]; !exists {
		return fmt.Errorf("theme '%s' not found (available: %v)", name, tp.ListThemes())
	}

	tp.currentName = name
	return nil
}

// GetCurrentTheme returns the currently active theme
func (tp *ThemeProvider) GetCurrentTheme() Theme {
	return tp.themes[tp.currentName]
}

// GetCurrentThemeName returns the name of the currently active theme
func (tp *ThemeProvider) GetCurrentThemeName() string {
	return tp.currentName
}

// ListThemes returns all available theme names in alphabetical order
func (tp *ThemeProvider) ListThemes() []string {
	names := make([]string, 0, len(tp.themes))
	for name := range tp.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TokyoNightTheme is the default dark theme
type TokyoNightTheme struct{}

func NewTokyoNightTheme() *TokyoNightTheme {
	return &TokyoNightTheme{}
}

func (t *TokyoNightTheme) GetTextColor() string     { return colors.TextColor.Lipgloss }
func (t *TokyoNightTheme) GetAltTextColor() string  { return colors.AltTextColor.Lipgloss }
func (t *TokyoNightTheme) GetAccentColor() string   { return colors.AccentColor.Lipgloss }
func (t *TokyoNightTheme) GetDimColor() string      { return colors.DimColor.Lipgloss }
func (t *TokyoNightTheme) GetBorderColor() string   { return colors.BorderColor.Lipgloss }
func (t *TokyoNightTheme) GetErrorColor() string    { return colors.ErrorColor.Lipgloss }
func (t *TokyoNightTheme) GetBackdropColor() string { return colors.BackdropColor.Lipgloss }

// GithubLightTheme provides a light theme similar to GitHub's interface
type GithubLightTheme struct{}

func NewGithubLightTheme() *GithubLightTheme {
	return &GithubLightTheme{}
}

func (t *GithubLightTheme) GetTextColor() string     { return colors.GithubTextColor.Lipgloss }
func (t *GithubLightTheme) GetAltTextColor() string  { return colors.GithubAltTextColor.Lipgloss }
func (t *GithubLightTheme) GetAccentColor() string   { return colors.GithubAccentColor.Lipgloss }
func (t *GithubLightTheme) GetDimColor() string      { return colors.GithubDimColor.Lipgloss }
func (t *GithubLightTheme) GetBorderColor() string   { return colors.GithubBorderColor.Lipgloss }
func (t *GithubLightTheme) GetErrorColor() string    { return colors.GithubErrorColor.Lipgloss }
func (t *GithubLightTheme) GetBackdropColor() string { return colors.GithubBackdropColor.Lipgloss }

// DraculaTheme provides the popular Dracula color scheme
type DraculaTheme struct{}

func NewDraculaTheme() *DraculaTheme {
	return &DraculaTheme{}
}

func (t *DraculaTheme) GetTextColor() string     { return colors.DraculaTextColor.Lipgloss }
func (t *DraculaTheme) GetAltTextColor() string  { return colors.DraculaAltTextColor.Lipgloss }
func (t *DraculaTheme) GetAccentColor() string   { return colors.DraculaAccentColor.Lipgloss }
func (t *DraculaTheme) GetDimColor() string      { return colors.DraculaDimColor.Lipgloss }
func (t *DraculaTheme) GetBorderColor() string   { return colors.DraculaBorderColor.Lipgloss }
func (t *DraculaTheme) GetErrorColor() string    { return colors.DraculaErrorColor.Lipgloss }
func (t *DraculaTheme) GetBackdropColor() string { return colors.DraculaBackdropColor.Lipgloss }
