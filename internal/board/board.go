package board

// Board maps every column to its ordered cards.
// Use NewBoard or Normalize to obtain a board that holds every column key.
type Board map[ColumnKey][]Card

// NewBoard returns an empty board with all columns present.
func NewBoard() Board {
	b := make(Board, len(columnOrder))
	for _, col := range columnOrder {
		b[col] = []Card{}
	}
	return b
}

// Normalize returns a copy of b that satisfies the board invariants: every
// known column is present, unknown columns are discarded, and a card id that
// appears more than once keeps only its first occurrence in column order.
func Normalize(b Board) Board {
	out := NewBoard()
	seen := make(map[string]struct{})
	for _, col := range columnOrder {
		for _, card := range b[col] {
			if _, dup := seen[card.ID]; dup {
				continue
			}
			seen[card.ID] = struct{}{}
			out[col] = append(out[col], card)
		}
	}
	return out
}

// Clone returns a deep copy of the column slices.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for col, cards := range b {
		out[col] = append([]Card{}, cards...)
	}
	return out
}

// Len returns the number of cards on the board.
func (b Board) Len() int {
	n := 0
	for _, cards := range b {
		n += len(cards)
	}
	return n
}

// Find returns the card with the given id and the column holding it.
func (b Board) Find(id string) (Card, ColumnKey, bool) {
	for _, col := range columnOrder {
		for _, card := range b[col] {
			if card.ID == id {
				return card, col, true
			}
		}
	}
	return Card{}, "", false
}

// Layout returns the card ids of every column in order.
func (b Board) Layout() map[ColumnKey][]string {
	out := make(map[ColumnKey][]string, len(columnOrder))
	for _, col := range columnOrder {
		ids := make([]string, 0, len(b[col]))
		for _, card := range b[col] {
			ids = append(ids, card.ID)
		}
		out[col] = ids
	}
	return out
}

// SameLayout reports whether both boards hold the same card ids in the same
// columns and order. Card display fields are not compared.
func (b Board) SameLayout(other Board) bool {
	for _, col := range columnOrder {
		if len(b[col]) != len(other[col]) {
			return false
		}
		for i := range b[col] {
			if b[col][i].ID != other[col][i].ID {
				return false
			}
		}
	}
	return true
}

// Filtered returns the cards accepted by keep. A nil filter keeps everything.
func (b Board) Filtered(keep Filter) Board {
	out := NewBoard()
	for _, col := range columnOrder {
		out[col] = filterColumn(b[col], col, keep)
	}
	return out
}

func filterColumn(cards []Card, col ColumnKey, keep Filter) []Card {
	out := make([]Card, 0, len(cards))
	for _, card := range cards {
		if keep == nil || keep(card, col) {
			out = append(out, card)
		}
	}
	return out
}

// removeAt returns a new slice without the element at i.
func removeAt(cards []Card, i int) []Card {
	out := make([]Card, 0, len(cards)-1)
	out = append(out, cards[:i]...)
	return append(out, cards[i+1:]...)
}

// insertAt returns a new slice with card placed at i; i past the end appends.
func insertAt(cards []Card, i int, card Card) []Card {
	if i > len(cards) {
		i = len(cards)
	}
	out := make([]Card, 0, len(cards)+1)
	out = append(out, cards[:i]...)
	out = append(out, card)
	return append(out, cards[i:]...)
}

// moveWithin is a stable array move: the card at from is taken out and
// reinserted at to, the other cards keep their relative order.
func moveWithin(cards []Card, from, to int) []Card {
	card := cards[from]
	return insertAt(removeAt(cards, from), to, card)
}
