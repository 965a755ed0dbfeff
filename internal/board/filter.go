package board

import "strings"

// Filter decides whether a card in the given column is visible.
// A nil Filter shows every card.
type Filter func(card Card, column ColumnKey) bool

// Criteria is the console's client-side board filter. Empty fields match
// everything.
type Criteria struct {
	Status   ColumnKey `json:"status,omitempty"`
	Priority Priority  `json:"priority,omitempty"`
	Search   string    `json:"search,omitempty"`
}

// IsZero reports whether the criteria match every card.
func (c Criteria) IsZero() bool {
	return c.Status == "" && c.Priority == "" && strings.TrimSpace(c.Search) == ""
}

// Match applies status, priority and a case-insensitive search over the
// card title, vehicle and assignee.
func (c Criteria) Match(card Card, column ColumnKey) bool {
	if c.Status != "" && column != c.Status {
		return false
	}
	if c.Priority != "" && card.Priority != c.Priority {
		return false
	}
	term := strings.ToLower(strings.TrimSpace(c.Search))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(card.Title), term) ||
		strings.Contains(strings.ToLower(card.Vehicle), term) ||
		strings.Contains(strings.ToLower(card.Assignee), term)
}

// Filter returns the predicate for c, or nil when c matches everything.
func (c Criteria) Filter() Filter {
	if c.IsZero() {
		return nil
	}
	return c.Match
}
