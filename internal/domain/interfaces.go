package domain

// Theme exposes the colors the overlay is drawn with
type Theme interface {
	GetTextColor() string
	GetAltTextColor() string
	GetAccentColor() string
	GetDimColor() string
	GetBorderColor() string
	GetErrorColor() string
	GetBackdropColor() string
}

// ThemeService manages the available themes and the active one
type ThemeService interface {
	ListThemes() []string
	GetCurrentTheme() Theme
	GetCurrentThemeName() string
	SetTheme(name string) error
}
