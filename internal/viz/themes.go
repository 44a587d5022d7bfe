package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI chrome. Particles always use the
// configured stroke colour.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Muted   lipgloss.Color
}

var (
	ThemeRetroGreen = Theme{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"),
		Accent:  lipgloss.Color("#88ff88"),
		Muted:   lipgloss.Color("#005500"),
	}

	ThemeCyberpunk = Theme{
		Name:    "cyberpunk",
		Primary: lipgloss.Color("#ff00ff"),
		Accent:  lipgloss.Color("#ffff00"),
		Muted:   lipgloss.Color("#666666"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Primary: lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#0088ff"),
		Muted:   lipgloss.Color("#888888"),
	}

	CurrentTheme = ThemeRetroGreen

	Themes = []Theme{
		ThemeRetroGreen,
		ThemeCyberpunk,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeRetroGreen
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme switches to the theme after the current one.
func NextTheme() {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return
		}
	}
	CurrentTheme = Themes[0]
}
