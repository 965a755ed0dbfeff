// Package board implements the work-order kanban board: a fixed set of
// ordered columns, the drag-and-drop engine that reorders and transfers
// cards between them, and the reconciliation of filtered views.
package board

import "strings"

// ColumnKey identifies one of the fixed board columns.
type ColumnKey string

const (
	ColumnNew        ColumnKey = "new"
	ColumnInProgress ColumnKey = "in_progress"
	ColumnInReview   ColumnKey = "in_review"
	ColumnCompleted  ColumnKey = "completed"
)

// columnOrder is the left-to-right order of the board
var columnOrder = [...]ColumnKey{
	ColumnNew,
	ColumnInProgress,
	ColumnInReview,
	ColumnCompleted,
}

var columnTitles = map[ColumnKey]string{
	ColumnNew:        "New",
	ColumnInProgress: "In Progress",
	ColumnInReview:   "In Review",
	ColumnCompleted:  "Completed",
}

// Columns returns the column keys in display order.
func Columns() []ColumnKey {
	cols := make([]ColumnKey, len(columnOrder))
	copy(cols, columnOrder[:])
	return cols
}

// Valid reports whether k is one of the fixed columns.
func (k ColumnKey) Valid() bool {
	_, ok := columnTitles[k]
	return ok
}

// Title returns the human-readable column name
func (k ColumnKey) Title() string {
	if title, ok := columnTitles[k]; ok {
		return title
	}
	return string(k)
}

// ParseColumn maps user input such as "In Progress", "in-progress" or
// "in_progress" to a column key.
func ParseColumn(s string) (ColumnKey, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	key := ColumnKey(normalized)
	return key, key.Valid()
}
