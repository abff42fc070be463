// Package theme defines color themes for the credsim TUI dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name         string
	Background   lipgloss.Color // Main app background
	Surface      lipgloss.Color // Card/panel backgrounds
	SurfaceHover lipgloss.Color // Highlighted surface (active tab, selected row)
	Border       lipgloss.Color // Subtle borders
	BorderAccent lipgloss.Color // Accent-colored borders for focus states
	TextDim      lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted    lipgloss.Color // Secondary text (labels, metadata)
	TextPrimary  lipgloss.Color // Primary content text
	Accent       lipgloss.Color // Primary accent (links, active states)
	AccentBright lipgloss.Color // Brighter accent for emphasis
	Green        lipgloss.Color
	Orange       lipgloss.Color
	Red          lipgloss.Color
	Blue         lipgloss.Color
	Yellow       lipgloss.Color
}

// Active is the currently selected theme.
var Active = LedgerDark

// LedgerDark is the default theme - cool slate tones with a teal accent.
var LedgerDark = Theme{
	Name:         "ledger-dark",
	Background:   lipgloss.Color("#0E1113"),
	Surface:      lipgloss.Color("#161B1E"),
	SurfaceHover: lipgloss.Color("#242B2F"),
	Border:       lipgloss.Color("#2E373C"),
	BorderAccent: lipgloss.Color("#3FB8AF"),
	TextDim:      lipgloss.Color("#4E5A61"),
	TextMuted:    lipgloss.Color("#8A979E"),
	TextPrimary:  lipgloss.Color("#ECF2F4"),
	Accent:       lipgloss.Color("#3FB8AF"),
	AccentBright: lipgloss.Color("#63D6CD"),
	Green:        lipgloss.Color("#7BB662"),
	Orange:       lipgloss.Color("#E08E45"),
	Red:          lipgloss.Color("#D4554B"),
	Blue:         lipgloss.Color("#4C8FCB"),
	Yellow:       lipgloss.Color("#D8B02C"),
}

// Graphite is a neutral gray theme with a gold accent.
var Graphite = Theme{
	Name:         "graphite",
	Background:   lipgloss.Color("#121212"),
	Surface:      lipgloss.Color("#1D1D1D"),
	SurfaceHover: lipgloss.Color("#2A2A2A"),
	Border:       lipgloss.Color("#383838"),
	BorderAccent: lipgloss.Color("#C9A227"),
	TextDim:      lipgloss.Color("#555555"),
	TextMuted:    lipgloss.Color("#8F8F8F"),
	TextPrimary:  lipgloss.Color("#EDEDED"),
	Accent:       lipgloss.Color("#C9A227"),
	AccentBright: lipgloss.Color("#E5C454"),
	Green:        lipgloss.Color("#8CB369"),
	Orange:       lipgloss.Color("#DD8A3E"),
	Red:          lipgloss.Color("#CF5C56"),
	Blue:         lipgloss.Color("#5E94C9"),
	Yellow:       lipgloss.Color("#D9B43A"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	SurfaceHover: lipgloss.Color("8"),
	Border:       lipgloss.Color("8"),
	BorderAccent: lipgloss.Color("6"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("6"),
	AccentBright: lipgloss.Color("14"),
	Green:        lipgloss.Color("2"),
	Orange:       lipgloss.Color("3"),
	Red:          lipgloss.Color("1"),
	Blue:         lipgloss.Color("4"),
	Yellow:       lipgloss.Color("3"),
}

// All available themes.
var All = []Theme{LedgerDark, Graphite, Terminal}

// ByName returns a theme by its name, defaulting to LedgerDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return LedgerDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
