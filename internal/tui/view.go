package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/fleetboard/internal/board"
	"github.com/thenoetrevino/fleetboard/internal/tui/state"
)

// View renders the board
func (m Model) View() string {
	if m.uiState.Mode() == state.HelpMode {
		return m.viewHelp()
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewColumns())
	b.WriteString("\n")
	b.WriteString(m.viewStatusBar())
	return b.String()
}

func (m Model) viewHeader() string {
	title := m.styles.title.Render("Fleet Board")
	if m.loading {
		title += m.styles.subtle.Render("  loading...")
	}
	if summary := describeCriteria(m.criteria); summary != "" {
		title += m.styles.subtle.Render("  filter: " + summary)
	}
	return title
}

// describeCriteria summarizes the active filter, empty when there is none
func describeCriteria(c board.Criteria) string {
	var parts []string
	if c.Status != "" {
		parts = append(parts, "status="+c.Status.Title())
	}
	if c.Priority != "" {
		parts = append(parts, "priority="+string(c.Priority))
	}
	if s := strings.TrimSpace(c.Search); s != "" {
		parts = append(parts, fmt.Sprintf("search=%q", s))
	}
	return strings.Join(parts, " ")
}

func (m Model) viewColumns() string {
	columns := board.Columns()
	visible := m.engine.Visible()
	width := m.uiState.ColumnWidth(len(columns))

	rendered := make([]string, 0, len(columns))
	for i, col := range columns {
		rendered = append(rendered, m.viewColumn(col, visible[col], i == m.uiState.SelectedColumn(), width))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) viewColumn(col board.ColumnKey, cards []board.Card, selected bool, width int) string {
	inner := max(width-4, 10)
	active, dragging := m.engine.Active()

	lines := []string{m.styles.columnHeader.Render(fmt.Sprintf("%s (%d)", col.Title(), len(cards)))}
	if len(cards) == 0 && !(selected && dragging) {
		lines = append(lines, m.styles.subtle.Render("No work orders"))
	}

	for i, card := range cards {
		style := m.styles.card
		switch {
		case dragging && card.ID == active.ID:
			style = m.styles.liftedCard
		case selected && i == m.uiState.SelectedCard():
			style = m.styles.selectedCard
		}
		lines = append(lines, style.Width(inner).Render(m.viewCard(card, inner-4)))
	}

	if selected && dragging {
		slot := "  drop at end"
		if m.uiState.SelectedCard() >= len(cards) {
			slot = "> drop at end"
		}
		lines = append(lines, m.styles.dropSlot.Render(slot))
	}

	style := m.styles.column
	if selected {
		style = m.styles.activeColumn
	}
	return style.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// viewCard renders the card body: code and priority, the wrapped title, the
// vehicle and the assignee line.
func (m Model) viewCard(card board.Card, width int) string {
	width = max(width, 8)

	badge := m.styles.normal.Render("[" + string(card.Priority) + "]")
	if ps, ok := m.styles.priority[card.Priority]; ok {
		badge = ps.Render("[" + string(card.Priority) + "]")
	}

	lines := []string{
		m.styles.subtle.Render(card.Code) + " " + badge,
		m.styles.normal.Render(wordwrap.String(card.Title, width)),
		m.styles.subtle.Render(truncate.StringWithTail(card.Vehicle, uint(width), "…")),
	}

	footer := card.Initials()
	if card.Comments > 0 {
		footer += fmt.Sprintf("  💬 %d", card.Comments)
	}
	if card.Attachments > 0 {
		footer += fmt.Sprintf("  📎 %d", card.Attachments)
	}
	if footer != "" {
		lines = append(lines, m.styles.subtle.Render(footer))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewStatusBar() string {
	if m.uiState.Mode() == state.SearchMode {
		return m.search.View()
	}
	if n, ok := m.notificationState.Current(); ok {
		if n.Level == state.LevelError {
			return m.styles.errorText.Render(n.Message)
		}
		return m.styles.statusBar.Render(n.Message)
	}
	return m.help.ShortHelpView(m.keys.ShortHelp())
}

func (m Model) viewHelp() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.title.Render("Keyboard shortcuts"),
		"",
		m.help.FullHelpView(m.keys.FullHelp()),
		"",
		m.styles.subtle.Render("Press "+m.keys.Help.Help().Key+" or esc to return"),
	)
}
