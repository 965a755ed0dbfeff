package board

type position struct {
	column ColumnKey
	index  int
}

// index maps card ids to their column and position in the visible board.
type index map[string]position

func buildIndex(b Board) index {
	ix := make(index, b.Len())
	ix.reindex(b, columnOrder[:]...)
	return ix
}

// reindex rewrites the entries of the given columns. Ids that left those
// columns entirely must be deleted by the caller.
func (ix index) reindex(b Board, cols ...ColumnKey) {
	for _, col := range cols {
		for i, card := range b[col] {
			ix[card.ID] = position{column: col, index: i}
		}
	}
}
