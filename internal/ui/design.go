package ui

import "github.com/charmbracelet/lipgloss"

// Design centralizes the console palette.
//
// Palette is based on Vitesse Dark Soft:
// https://github.com/antfu/vscode-theme-vitesse/blob/main/themes/vitesse-dark-soft.json
type designTheme struct {
	Primary lipgloss.Color // #4d9375
	Yellow  lipgloss.Color // #e6cc77
	Cyan    lipgloss.Color // #5eaab5
	Red     lipgloss.Color // #cb7676

	Text  lipgloss.AdaptiveColor
	Muted lipgloss.AdaptiveColor
}

// Vitesse is the theme used for report output.
var Vitesse = designTheme{
	Primary: lipgloss.Color("#4d9375"),
	Yellow:  lipgloss.Color("#e6cc77"),
	Cyan:    lipgloss.Color("#5eaab5"),
	Red:     lipgloss.Color("#cb7676"),

	Text:  lipgloss.AdaptiveColor{Light: "#393a34", Dark: "#dbd7ca"},
	Muted: lipgloss.AdaptiveColor{Light: "#999999", Dark: "#959da5"},
}

// AccentBold returns a bold style using the primary accent color.
func AccentBold() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(Vitesse.Primary)
}

// NameStyle renders tool names.
func NameStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.Text)
}

// MutedStyle renders secondary details such as paths.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.Muted)
}

// ScopeStyle renders the menu scope chip.
func ScopeStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.Cyan)
}
