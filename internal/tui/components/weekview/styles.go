package weekview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/weekboard/internal/models"
)

// Card accent colors, one per selectable theme.
var themeColors = map[models.Theme]lipgloss.Color{
	models.ThemeEmerald: lipgloss.Color("#10b981"),
	models.ThemeRose:    lipgloss.Color("#f43f5e"),
	models.ThemeAmber:   lipgloss.Color("#f59e0b"),
	models.ThemeBlue:    lipgloss.Color("#3b82f6"),
}

var cursorColor = lipgloss.Color("205")

var (
	dayHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Align(lipgloss.Center)

	dayHeaderActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Align(lipgloss.Center).
				Bold(true)

	dayColumnStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	dayColumnActiveStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("205")).
				Padding(0, 1)

	emptySlotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238")).
			Align(lipgloss.Center)

	emptySlotActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Align(lipgloss.Center)

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	trashStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 1)

	trashActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")).
				Padding(0, 1).
				Bold(true)

	navZoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 1)
)

// cardStyle returns the bordered card style for a theme; unthemed cards get
// a neutral border.
func cardStyle(theme models.Theme) lipgloss.Style {
	color, ok := themeColors[theme]
	if !ok {
		color = lipgloss.Color("245")
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1)
}
