package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode Mode = iota // Default navigation mode, also used while a card is lifted
	SearchMode             // Typing a search query (/)
	HelpMode               // Displaying help screen
)

// UIState manages the user interface state.
// This includes the cursor (column and card selection), terminal
// dimensions, and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedCard is the index of the card under the cursor in the selected
	// column. It may equal the column length while a card is lifted, meaning
	// "end of column".
	selectedCard int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedCard returns the index of the card under the cursor.
func (s *UIState) SelectedCard() int {
	return s.selectedCard
}

// SetSelectedCard updates the card index.
func (s *UIState) SetSelectedCard(index int) {
	s.selectedCard = index
}

// MoveColumn shifts the column cursor by delta, clamped to [0, columns).
func (s *UIState) MoveColumn(delta, columns int) {
	s.selectedColumn = clamp(s.selectedColumn+delta, 0, columns-1)
}

// MoveCard shifts the card cursor by delta, clamped to [0, limit].
func (s *UIState) MoveCard(delta, limit int) {
	s.selectedCard = clamp(s.selectedCard+delta, 0, limit)
}

// ClampCard keeps the card cursor within [0, limit].
func (s *UIState) ClampCard(limit int) {
	s.selectedCard = clamp(s.selectedCard, 0, limit)
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetSize updates the terminal dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// ColumnWidth returns the width available to each of n columns, with a
// minimum of 20.
func (s *UIState) ColumnWidth(n int) int {
	if n <= 0 || s.width <= 0 {
		return 30
	}
	return max(s.width/n-2, 20)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
