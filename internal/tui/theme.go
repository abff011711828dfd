package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/taskdeck/internal/chart"
)

// ThemeName selects a palette
type ThemeName string

const (
	ThemeLight ThemeName = "light"
	ThemeDark  ThemeName = "dark"
)

// Toggle switches between light and dark
func (t ThemeName) Toggle() ThemeName {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Icon is shown in the header; it names the theme the toggle switches to
func (t ThemeName) Icon() string {
	if t == ThemeDark {
		return "☀️"
	}
	return "🌙"
}

// Theme is a palette of colors for the board
type Theme struct {
	Border         string
	CardBackground string
	PrimaryText    string
	SecondaryText  string
	DisabledText   string
	HelpText       string
	AccentMain     string
	AccentBright   string
	Error          string
	Success        string
	Warning        string
}

var themes = map[ThemeName]Theme{
	ThemeDark: {
		Border:         "#3A3F55", // Grey-blue
		CardBackground: "#1B1530", // Dark purple
		PrimaryText:    "#E6EAF2",
		SecondaryText:  "#B1B8C7",
		DisabledText:   "#6D7383",
		HelpText:       "240",
		AccentMain:     "#7C3AED",
		AccentBright:   "#A78BFA",
		Error:          "#EF4444",
		Success:        chart.ColorCompleted,
		Warning:        chart.ColorPending,
	},
	ThemeLight: {
		Border:         "#C9CEDB",
		CardBackground: "#F4F1FF",
		PrimaryText:    "#1F2330",
		SecondaryText:  "#4B5263",
		DisabledText:   "#9AA0AE",
		HelpText:       "245",
		AccentMain:     "#6D28D9",
		AccentBright:   "#7C3AED",
		Error:          "#DC2626",
		Success:        chart.ColorCompleted,
		Warning:        "#B45309",
	},
}

// themeFor returns the palette, falling back to light for unknown names
func themeFor(name ThemeName) Theme {
	if th, ok := themes[name]; ok {
		return th
	}
	return themes[ThemeLight]
}

func (th Theme) fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// card is the background of the selected task card
func (th Theme) card() lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(th.CardBackground))
}
