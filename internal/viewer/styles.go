package viewer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lgbarn/fourplay-go/internal/chess"
)

type styles struct {
	corner   lipgloss.Style
	empty    lipgloss.Style
	cursor   lipgloss.Style
	selected lipgloss.Style
	friendly lipgloss.Style
	hostile  lipgloss.Style
	header   lipgloss.Style
	help     lipgloss.Style
	seats    map[chess.Seat]lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		corner:   lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		cursor:   lipgloss.NewStyle().Reverse(true),
		selected: lipgloss.NewStyle().Bold(true).Underline(true),
		friendly: lipgloss.NewStyle().Background(lipgloss.Color("22")),
		hostile:  lipgloss.NewStyle().Background(lipgloss.Color("52")),
		header:   lipgloss.NewStyle().Bold(true),
		help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		seats: map[chess.Seat]lipgloss.Style{
			chess.Dead:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			chess.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
			chess.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			chess.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			chess.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		},
	}
}
