package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines a complete color scheme for the application
type Theme struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	TextPrimary lipgloss.Color
	TextMuted   lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	Border    lipgloss.Color
	UserLabel lipgloss.Color
	BotLabel  lipgloss.Color
	Notice    lipgloss.Color
}

// DarkTheme is the dark mode color scheme
var DarkTheme = Theme{
	Primary:   lipgloss.Color("#4DB6AC"), // Teal 300
	Secondary: lipgloss.Color("#81C784"), // Green 300
	Accent:    lipgloss.Color("#4FC3F7"), // Light Blue 300

	TextPrimary: lipgloss.Color("#E0E0E0"),
	TextMuted:   lipgloss.Color("#757575"),

	Success: lipgloss.Color("#A5D6A7"),
	Warning: lipgloss.Color("#FFF59D"),
	Error:   lipgloss.Color("#EF9A9A"),

	Border:    lipgloss.Color("#37474F"),
	UserLabel: lipgloss.Color("#81C784"),
	BotLabel:  lipgloss.Color("#4DB6AC"),
	Notice:    lipgloss.Color("#90A4AE"),
}

// LightTheme is the light mode color scheme
var LightTheme = Theme{
	Primary:   lipgloss.Color("#00796B"), // Teal 700
	Secondary: lipgloss.Color("#388E3C"), // Green 700
	Accent:    lipgloss.Color("#0288D1"), // Light Blue 700

	TextPrimary: lipgloss.Color("#263238"),
	TextMuted:   lipgloss.Color("#90A4AE"),

	Success: lipgloss.Color("#2E7D32"),
	Warning: lipgloss.Color("#F9A825"),
	Error:   lipgloss.Color("#C62828"),

	Border:    lipgloss.Color("#B0BEC5"),
	UserLabel: lipgloss.Color("#388E3C"),
	BotLabel:  lipgloss.Color("#00796B"),
	Notice:    lipgloss.Color("#607D8B"),
}

// CurrentTheme holds the active theme, selected by the darkMode setting.
var CurrentTheme = LightTheme

// ApplyDarkMode switches the active theme and rebuilds the style set.
func ApplyDarkMode(dark bool) {
	if dark {
		CurrentTheme = DarkTheme
	} else {
		CurrentTheme = LightTheme
	}
	rebuild()
}
