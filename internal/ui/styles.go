package ui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha (dark theme)
var mocha = struct {
	Pink, Mauve, Red, Peach, Yellow, Green, Teal, Blue lipgloss.Color
	Text, Subtext1, Overlay1, Surface1, Base           lipgloss.Color
}{
	Pink: "#f5c2e7", Mauve: "#cba6f7", Red: "#f38ba8", Peach: "#fab387",
	Yellow: "#f9e2af", Green: "#a6e3a1", Teal: "#94e2d5", Blue: "#89b4fa",
	Text: "#cdd6f4", Subtext1: "#bac2de", Overlay1: "#7f849c",
	Surface1: "#45475a", Base: "#1e1e2e",
}

// Catppuccin Latte (light theme)
var latte = struct {
	Pink, Mauve, Red, Peach, Yellow, Green, Teal, Blue lipgloss.Color
	Text, Subtext1, Overlay1, Surface1, Base           lipgloss.Color
}{
	Pink: "#ea76cb", Mauve: "#8839ef", Red: "#d20f39", Peach: "#fe640b",
	Yellow: "#df8e1d", Green: "#40a02b", Teal: "#179299", Blue: "#1e66f5",
	Text: "#4c4f69", Subtext1: "#5c5f77", Overlay1: "#8c8fa1",
	Surface1: "#bcc0cc", Base: "#eff1f5",
}

// ThemePalette holds the current color scheme.
type ThemePalette struct {
	Red, Green, Yellow, Blue, Magenta lipgloss.Color
	Text, Subtext, Overlay            lipgloss.Color
}

var currentTheme ThemePalette

func init() {
	if DetectTheme() == ThemeDark {
		SetDarkTheme()
	} else {
		SetLightTheme()
	}
}

// SetDarkTheme switches to Catppuccin Mocha.
func SetDarkTheme() {
	currentTheme = ThemePalette{
		Red: mocha.Red, Green: mocha.Green, Yellow: mocha.Yellow,
		Blue: mocha.Blue, Magenta: mocha.Pink,
		Text: mocha.Text, Subtext: mocha.Subtext1, Overlay: mocha.Overlay1,
	}
	refreshStyles()
}

// SetLightTheme switches to Catppuccin Latte.
func SetLightTheme() {
	currentTheme = ThemePalette{
		Red: latte.Red, Green: latte.Green, Yellow: latte.Yellow,
		Blue: latte.Blue, Magenta: latte.Pink,
		Text: latte.Text, Subtext: latte.Subtext1, Overlay: latte.Overlay1,
	}
	refreshStyles()
}

// Semantic styles used across the REPL and builtins.
var (
	MutedStyle   lipgloss.Style
	ErrorStyle   lipgloss.Style
	CommandStyle lipgloss.Style
	HeaderStyle  lipgloss.Style
)

func refreshStyles() {
	MutedStyle = lipgloss.NewStyle().Foreground(currentTheme.Overlay)
	ErrorStyle = lipgloss.NewStyle().Foreground(currentTheme.Red).Bold(true)
	CommandStyle = lipgloss.NewStyle().Foreground(currentTheme.Green).Bold(true)
	HeaderStyle = lipgloss.NewStyle().Foreground(currentTheme.Magenta).Bold(true)
}
