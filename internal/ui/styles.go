package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Mason green and gold
	Primary  = lipgloss.Color("#006633")
	Accent   = lipgloss.Color("#FFCC33")
	Success  = lipgloss.Color("#39B54A")
	Warning  = lipgloss.Color("#FFAD00")
	ErrorCol = lipgloss.Color("#E03C31")
	Text     = lipgloss.Color("#FFFFFF")
	Muted    = lipgloss.Color("#888888")

	HeaderStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1)

	CardStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(Primary).
			Width(64)

	InfoKeyStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Width(16)

	InfoValueStyle = lipgloss.NewStyle().
			Foreground(Text)

	PointsStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning)

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(ErrorCol)
)

var categoryColors = map[string]lipgloss.Color{
	"recyclable":  lipgloss.Color("#1E88E5"),
	"compostable": lipgloss.Color("#43A047"),
	"landfill":    lipgloss.Color("#757575"),
	"e-waste":     lipgloss.Color("#8E24AA"),
	"hazardous":   lipgloss.Color("#E53935"),
	"reusable":    lipgloss.Color("#FB8C00"),
}

func CategoryStyle(category string) lipgloss.Style {
	color, ok := categoryColors[category]
	if !ok {
		color = Muted
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}
