package styles

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/thenoetrevino/fleetboard/internal/board"
	"github.com/thenoetrevino/fleetboard/internal/config/colors"
)

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Vehicle:", "Priority:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For column headers

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style

	priorityColors map[board.Priority]string
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.ErrorFg))

	priorityColors = map[board.Priority]string{
		board.PriorityLow:    scheme.PriorityLow,
		board.PriorityMedium: scheme.PriorityMedium,
		board.PriorityHigh:   scheme.PriorityHigh,
	}
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// RenderPriority renders a priority as "[high]" in its badge color
func RenderPriority(p board.Priority) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(priorityColors[p])).
		Bold(true).
		Render("[" + string(p) + "]")
}

// RenderColumnHeader renders "Title (n)" for a board column
func RenderColumnHeader(col board.ColumnKey, count int) string {
	return SectionStyle.Render(col.Title()) + " " + SubtitleStyle.Render("("+strconv.Itoa(count)+")")
}

// RenderTable renders rows under a bold header with a rounded border
func RenderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(SubtitleStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return LabelStyle.Padding(0, 1)
			}
			return ValueStyle.Padding(0, 1)
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}
