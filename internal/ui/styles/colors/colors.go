package colors

import (
	"github.com/charmbracelet/lipgloss"
)

// ANSI Color Codes - Tokyo Night Theme
const (
	Reset   = "\033[0m"
	Red     = "\033[38;2;247;118;142m" // #f7768e - soft red for errors
	Green   = "\033[38;2;158;206;106m" // #9ece6a - green for success
	Blue    = "\033[38;2;122;162;247m" // #7aa2f7 - blue for accent
	White   = "\033[38;2;192;202;245m" // #c0caf5 - foreground
	Silver  = "\033[38;2;169;177;214m" // #a9b1d6 - light gray-blue for alternate rows
	Gray    = "\033[38;2;86;95;137m"   // #565f89 - dim gray
	BoldOn  = "\033[1m"
	BoldOff = "\033[22m"
)

// Lipgloss Color Names - Tokyo Night Theme Hex Values
const (
	LipglossRed      = "#f7768e"
	LipglossGreen    = "#9ece6a"
	LipglossBlue     = "#7aa2f7"
	LipglossWhite    = "#c0caf5"
	LipglossSilver   = "#a9b1d6"
	LipglossGray     = "#565f89"
	LipglossBackdrop = "#16161e"

	// GitHub Light Theme Colors
	GithubBlue      = "#0366d6"
	GithubDarkGray  = "#24292e"
	GithubMidGray   = "#444d56"
	GithubRed       = "#d73a49"
	GithubGray      = "#586069"
	GithubLightGray = "#d0d7de"
	GithubBackdrop  = "#f6f8fa"

	// Dracula Theme Colors
	DraculaForeground = "#f8f8f2"
	DraculaLightGray  = "#d3d3d3"
	DraculaRed        = "#ff5555"
	DraculaPink       = "#ff79c6"
	DraculaComment    = "#6272a4"
	DraculaSelection  = "#44475a"
	DraculaBackground = "#21222c"
)

// Color represents a color that can be used in both ANSI and Lipgloss contexts
type Color struct {
	ANSI     string
	Lipgloss string
}

// Predefined colors for consistent theming - Tokyo Night Theme
var (
	TextColor     = Color{ANSI: White, Lipgloss: LipglossWhite}         // Even rows and search text
	AltTextColor  = Color{ANSI: Silver, Lipgloss: LipglossSilver}       // Odd rows
	AccentColor   = Color{ANSI: Blue, Lipgloss: LipglossBlue}           // Focused search bar, title
	DimColor      = Color{ANSI: Gray, Lipgloss: LipglossGray}           // Placeholder, help line
	BorderColor   = Color{ANSI: Gray, Lipgloss: LipglossGray}           // Panel border, separator
	ErrorColor    = Color{ANSI: Red, Lipgloss: LipglossRed}             // Errors
	SuccessColor  = Color{ANSI: Green, Lipgloss: LipglossGreen}         // Validation success
	BackdropColor = Color{ANSI: "\033[48;2;22;22;30m", Lipgloss: LipglossBackdrop}

	// GitHub Light Theme Colors
	GithubTextColor     = Color{ANSI: "\033[38;2;36;41;46m", Lipgloss: GithubDarkGray}
	GithubAltTextColor  = Color{ANSI: "\033[38;2;68;77;86m", Lipgloss: GithubMidGray}
	GithubAccentColor   = Color{ANSI: "\033[38;2;3;102;214m", Lipgloss: GithubBlue}
	GithubDimColor      = Color{ANSI: "\033[38;2;88;96;105m", Lipgloss: GithubGray}
	GithubBorderColor   = Color{ANSI: "\033[38;2;208;215;222m", Lipgloss: GithubLightGray}
	GithubErrorColor    = Color{ANSI: "\033[38;2;215;58;73m", Lipgloss: GithubRed}
	GithubBackdropColor = Color{ANSI: "\033[48;2;246;248;250m", Lipgloss: GithubBackdrop}

	// Dracula Theme Colors
	DraculaTextColor     = Color{ANSI: "\033[38;2;248;248;242m", Lipgloss: DraculaForeground}
	DraculaAltTextColor  = Color{ANSI: "\033[38;2;211;211;211m", Lipgloss: DraculaLightGray}
	DraculaAccentColor   = Color{ANSI: "\033[38;2;255;121;198m", Lipgloss: DraculaPink}
	DraculaDimColor      = Color{ANSI: "\033[38;2;98;114;164m", Lipgloss: DraculaComment}
	DraculaBorderColor   = Color{ANSI: "\033[38;2;68;71;90m", Lipgloss: DraculaSelection}
	DraculaErrorColor    = Color{ANSI: "\033[38;2;255;85;85m", Lipgloss: DraculaRed}
	DraculaBackdropColor = Color{ANSI: "\033[48;2;33;34;44m", Lipgloss: DraculaBackground}
)

// GetLipglossColor returns a lipgloss color for the given Color
func (c Color) GetLipglossColor() lipgloss.Color {
	return lipgloss.Color(c.Lipgloss)
}

// CreateColoredText creates colored text with automatic reset
func CreateColoredText(text string, color Color) string {
	return color.ANSI + text + Reset
}

// CreateBoldText wraps text in bold on/off codes
func CreateBoldText(text string) string {
	return BoldOn + text + BoldOff
}
