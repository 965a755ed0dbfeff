package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/fleetboard/internal/board"
	"github.com/thenoetrevino/fleetboard/internal/config/colors"
)

// styles are the board styles derived from a color scheme
type styles struct {
	title        lipgloss.Style
	subtle       lipgloss.Style
	normal       lipgloss.Style
	errorText    lipgloss.Style
	column       lipgloss.Style
	activeColumn lipgloss.Style
	columnHeader lipgloss.Style
	card         lipgloss.Style
	selectedCard lipgloss.Style
	liftedCard   lipgloss.Style
	dropSlot     lipgloss.Style
	statusBar    lipgloss.Style
	priority     map[board.Priority]lipgloss.Style
}

func newStyles(c colors.ColorScheme) styles {
	cardBase := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Title)),
		subtle:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Subtle)),
		normal:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Normal)),
		errorText: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.ErrorFg)),
		column: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(c.ColumnBorder)).
			Padding(0, 1),
		activeColumn: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(c.Accent)).
			Padding(0, 1),
		columnHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Accent)),
		card:         cardBase.BorderForeground(lipgloss.Color(c.CardBorder)),
		selectedCard: cardBase.BorderForeground(lipgloss.Color(c.SelectedBorder)),
		liftedCard: cardBase.
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(c.LiftedBorder)),
		dropSlot: lipgloss.NewStyle().
			Border(lipgloss.HiddenBorder()).
			Foreground(lipgloss.Color(c.LiftedBorder)),
		statusBar: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Accent)),
		priority: map[board.Priority]lipgloss.Style{
			board.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.PriorityLow)),
			board.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color(c.PriorityMedium)),
			board.PriorityHigh:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.PriorityHigh)),
		},
	}
}
