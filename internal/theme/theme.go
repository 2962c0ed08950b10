// Package theme provides the colour palettes used to draw dashboard panels.
package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors used by the dashboard.
type Theme struct {
	Accent    lipgloss.Color // border and title of the active panel
	AccentFg  lipgloss.Color // text drawn on an Accent background
	AccentDim lipgloss.Color
	BorderDim lipgloss.Color // border of inactive panels
	MutedFg   lipgloss.Color // title of inactive panels
	TextFg    lipgloss.Color
}

// Theme names.
const (
	ANSIName            = "ansi"
	DraculaName         = "dracula"
	DraculaLightName    = "dracula-light"
	NarnaName           = "narna"
	CleanLightName      = "clean-light"
	SolarizedDarkName   = "solarized-dark"
	GruvboxDarkName     = "gruvbox-dark"
	NordName            = "nord"
	CatppuccinMochaName = "catppuccin-mocha"
)

var palettes = map[string]Theme{
	// Plain terminal colours with a yellow highlight.
	ANSIName: {
		Accent:    lipgloss.Color("3"),
		AccentFg:  lipgloss.Color("0"),
		AccentDim: lipgloss.Color("8"),
		BorderDim: lipgloss.Color("7"),
		MutedFg:   lipgloss.Color("7"),
		TextFg:    lipgloss.Color("15"),
	},
	DraculaName: {
		Accent:    lipgloss.Color("#BD93F9"),
		AccentFg:  lipgloss.Color("#282A36"),
		AccentDim: lipgloss.Color("#44475A"),
		BorderDim: lipgloss.Color("#44475A"),
		MutedFg:   lipgloss.Color("#6272A4"),
		TextFg:    lipgloss.Color("#F8F8F2"),
	},
	DraculaLightName: {
		Accent:    lipgloss.Color("#7C3AED"),
		AccentFg:  lipgloss.Color("#FFFFFF"),
		AccentDim: lipgloss.Color("#F3E8FF"),
		BorderDim: lipgloss.Color("#D0D7DE"),
		MutedFg:   lipgloss.Color("#6E7781"),
		TextFg:    lipgloss.Color("#24292F"),
	},
	NarnaName: {
		Accent:    lipgloss.Color("#41ADFF"),
		AccentFg:  lipgloss.Color("#0D1117"),
		AccentDim: lipgloss.Color("#1A2230"),
		BorderDim: lipgloss.Color("#20252D"),
		MutedFg:   lipgloss.Color("#8B949E"),
		TextFg:    lipgloss.Color("#E6EDF3"),
	},
	CleanLightName: {
		Accent:    lipgloss.Color("#0598BC"),
		AccentFg:  lipgloss.Color("#FFFFFF"),
		AccentDim: lipgloss.Color("#DDF4FF"),
		BorderDim: lipgloss.Color("#E1E4E8"),
		MutedFg:   lipgloss.Color("#6E7781"),
		TextFg:    lipgloss.Color("#24292F"),
	},
	SolarizedDarkName: {
		Accent:    lipgloss.Color("#268BD2"),
		AccentFg:  lipgloss.Color("#FDF6E3"),
		AccentDim: lipgloss.Color("#073642"),
		BorderDim: lipgloss.Color("#073642"),
		MutedFg:   lipgloss.Color("#586E75"),
		TextFg:    lipgloss.Color("#EEE8D5"),
	},
	GruvboxDarkName: {
		Accent:    lipgloss.Color("#FABD2F"),
		AccentFg:  lipgloss.Color("#282828"),
		AccentDim: lipgloss.Color("#3C3836"),
		BorderDim: lipgloss.Color("#3C3836"),
		MutedFg:   lipgloss.Color("#928374"),
		TextFg:    lipgloss.Color("#EBDBB2"),
	},
	NordName: {
		Accent:    lipgloss.Color("#88C0D0"),
		AccentFg:  lipgloss.Color("#2E3440"),
		AccentDim: lipgloss.Color("#3B4252"),
		BorderDim: lipgloss.Color("#434C5E"),
		MutedFg:   lipgloss.Color("#81A1C1"),
		TextFg:    lipgloss.Color("#E5E9F0"),
	},
	CatppuccinMochaName: {
		Accent:    lipgloss.Color("#B4BEFE"),
		AccentFg:  lipgloss.Color("#1E1E2E"),
		AccentDim: lipgloss.Color("#313244"),
		BorderDim: lipgloss.Color("#313244"),
		MutedFg:   lipgloss.Color("#6C7086"),
		TextFg:    lipgloss.Color("#CDD6F4"),
	},
}

// GetTheme returns a theme by name, or Dracula if not found.
func GetTheme(name string) *Theme {
	t, ok := palettes[name]
	if !ok {
		t = palettes[DraculaName]
	}
	return &t
}

// Exists reports whether name is a known theme.
func Exists(name string) bool {
	_, ok := palettes[name]
	return ok
}

// IsLight returns true if the theme is a light theme.
func IsLight(name string) bool {
	switch name {
	case DraculaLightName, CleanLightName:
		return true
	default:
		return false
	}
}

// DefaultDark returns the default dark theme name.
func DefaultDark() string {
	return DraculaName
}

// DefaultLight returns the default light theme name.
func DefaultLight() string {
	return DraculaLightName
}

// Detect picks the default theme matching the terminal background.
func Detect() string {
	if lipgloss.HasDarkBackground() {
		return DefaultDark()
	}
	return DefaultLight()
}

// AvailableThemes returns the known theme names, sorted.
func AvailableThemes() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
