package ui

import (
	"image/color"
	"os"
	"sync"

	"charm.land/lipgloss/v2"
)

var (
	darkBgOnce sync.Once
	isDarkBg   bool
)

// IsDarkBackground reports whether the terminal has a dark background. The
// terminal is queried once, on first use.
func IsDarkBackground() bool {
	darkBgOnce.Do(func() {
		isDarkBg = lipgloss.HasDarkBackground(os.Stdin, os.Stdout)
	})
	return isDarkBg
}

// AdaptiveColor picks between a light-mode and dark-mode hex color based on
// the terminal background.
func AdaptiveColor(light, dark string) color.Color {
	if IsDarkBackground() {
		return lipgloss.Color(dark)
	}
	return lipgloss.Color(light)
}

// Theme is the color scheme used for styled terminal output.
type Theme struct {
	Primary   color.Color
	Secondary color.Color
	Success   color.Color
	Warning   color.Color
	Error     color.Color
	Text      color.Color
	Muted     color.Color
	Border    color.Color
}

// DefaultTheme is based on the Catppuccin Latte (light) and Mocha (dark)
// palettes.
func DefaultTheme() Theme {
	return Theme{
		Primary:   AdaptiveColor("#8839ef", "#cba6f7"), // Mauve
		Secondary: AdaptiveColor("#04a5e5", "#89dceb"), // Sky
		Success:   AdaptiveColor("#40a02b", "#a6e3a1"), // Green
		Warning:   AdaptiveColor("#df8e1d", "#f9e2af"), // Yellow
		Error:     AdaptiveColor("#d20f39", "#f38ba8"), // Red
		Text:      AdaptiveColor("#4c4f69", "#cdd6f4"), // Text
		Muted:     AdaptiveColor("#6c6f85", "#a6adc8"), // Subtext 0
		Border:    AdaptiveColor("#acb0be", "#585b70"), // Surface 2
	}
}

// StyleHeader is used for section titles.
func StyleHeader(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)
}

// StyleLabel is used for field names in key/value lines.
func StyleLabel(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true)
}

// StyleMuted is used for secondary text.
func StyleMuted(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Muted)
}

// StyleError is used for validation hints.
func StyleError(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Error)
}

// StyleCard wraps a block in a rounded border.
func StyleCard(width int, theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)
}
