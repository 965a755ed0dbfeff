package board

import "strings"

// Priority is the display priority of a card.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority accepts low, medium or high in any case.
func ParsePriority(s string) (Priority, bool) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(s))); p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, true
	}
	return "", false
}

// Card is a work item shown on the board. IDs are unique across the whole
// board, not just within a column.
type Card struct {
	ID          string   `json:"id"`
	Code        string   `json:"code"`
	Title       string   `json:"title"`
	Vehicle     string   `json:"vehicle"`
	Priority    Priority `json:"priority"`
	Assignee    string   `json:"assignee"`
	Comments    int      `json:"comments,omitempty"`
	Attachments int      `json:"attachments,omitempty"`
}

// Initials returns up to two upper-case initials of the assignee.
func (c Card) Initials() string {
	var initials []rune
	for _, part := range strings.Fields(c.Assignee) {
		initials = append(initials, []rune(part)[0])
		if len(initials) == 2 {
			break
		}
	}
	return strings.ToUpper(string(initials))
}
