package tui

import "github.com/charmbracelet/lipgloss"

var (
	indigo  = lipgloss.Color("#4F46E5")
	emerald = lipgloss.Color("#059669")
	slate   = lipgloss.Color("#64748B")
	border  = lipgloss.Color("#CBD5E1")
)

type styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Blurred  lipgloss.Style
	Card     lipgloss.Style
	Cursor   lipgloss.Style
	SPI      lipgloss.Style
	CPI      lipgloss.Style
	Muted    lipgloss.Style
	Notice   lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Title:    lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Subtitle: lipgloss.NewStyle().Bold(true),
		Label:    lipgloss.NewStyle().Foreground(slate),
		Focused:  lipgloss.NewStyle().Bold(true).Foreground(indigo),
		Blurred:  lipgloss.NewStyle(),
		Card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1),
		Cursor:   lipgloss.NewStyle().Bold(true).Foreground(indigo),
		SPI:      lipgloss.NewStyle().Bold(true).Foreground(indigo),
		CPI:      lipgloss.NewStyle().Bold(true).Foreground(emerald),
		Muted:    lipgloss.NewStyle().Foreground(slate),
		Notice:   lipgloss.NewStyle().Italic(true).Foreground(emerald),
	}
}
