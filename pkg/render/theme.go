// Package render formats resolved style configurations and tick tables for
// terminal display.
package render

import "github.com/charmbracelet/lipgloss"

// Theme defines the styles used for terminal rendering.
type Theme struct {
	Name  string
	Title lipgloss.Style
	Key   lipgloss.Style
	Value lipgloss.Style
	Warn  lipgloss.Style
	Muted lipgloss.Style
}

// DefaultTheme returns the standard color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:  "default",
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")), // blue
		Key:   lipgloss.NewStyle().Foreground(lipgloss.Color("75")),            // pale blue
		Value: lipgloss.NewStyle(),
		Warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // orange
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
	}
}

// MonoTheme returns a colorless theme for pipes and CI logs.
func MonoTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:  "mono",
		Title: plain,
		Key:   plain,
		Value: plain,
		Warn:  plain,
		Muted: plain,
	}
}

// Themes returns the built-in themes keyed by name.
func Themes() map[string]Theme {
	return map[string]Theme{
		"default": DefaultTheme(),
		"mono":    MonoTheme(),
	}
}
