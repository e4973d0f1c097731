package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the live view.
type Theme struct {
	Name     string
	Neighbor lipgloss.Color
	Lone     lipgloss.Color
	Link     lipgloss.Color
	Accent   lipgloss.Color
	Text     lipgloss.Color
	Muted    lipgloss.Color
}

var (
	// ThemeClassic matches the SVG palette.
	ThemeClassic = Theme{
		Name:     "classic",
		Neighbor: lipgloss.Color("#0070f3"),
		Lone:     lipgloss.Color("#ff4040"),
		Link:     lipgloss.Color("#999999"),
		Accent:   lipgloss.Color("86"),
		Text:     lipgloss.Color("252"),
		Muted:    lipgloss.Color("240"),
	}

	ThemeRetroGreen = Theme{
		Name:     "retro",
		Neighbor: lipgloss.Color("#00ff00"), // Green phosphor
		Lone:     lipgloss.Color("#88ff88"),
		Link:     lipgloss.Color("#005500"),
		Accent:   lipgloss.Color("#00ff00"),
		Text:     lipgloss.Color("#00cc00"),
		Muted:    lipgloss.Color("#005500"),
	}

	ThemeCyberpunk = Theme{
		Name:     "cyberpunk",
		Neighbor: lipgloss.Color("#00ffff"),
		Lone:     lipgloss.Color("#ff00ff"),
		Link:     lipgloss.Color("#666666"),
		Accent:   lipgloss.Color("#ffff00"),
		Text:     lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#666666"),
	}

	ThemeMinimal = Theme{
		Name:     "minimal",
		Neighbor: lipgloss.Color("#ffffff"),
		Lone:     lipgloss.Color("#888888"),
		Link:     lipgloss.Color("#444444"),
		Accent:   lipgloss.Color("#ffffff"),
		Text:     lipgloss.Color("#cccccc"),
		Muted:    lipgloss.Color("#888888"),
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeRetroGreen,
		ThemeCyberpunk,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// LayerStyles maps canvas layers to foreground styles.
func (t Theme) LayerStyles() map[Layer]lipgloss.Style {
	return map[Layer]lipgloss.Style{
		LayerLink:     lipgloss.NewStyle().Foreground(t.Link),
		LayerLone:     lipgloss.NewStyle().Foreground(t.Lone),
		LayerNeighbor: lipgloss.NewStyle().Foreground(t.Neighbor),
	}
}
