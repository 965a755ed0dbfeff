// Package layout keeps the operator's local card order across refreshes.
//
// The API only knows a work order's status. Reordering inside a column, or
// moving a card to a column its status does not map to, is remembered here
// and re-applied on top of every freshly fetched board for as long as the
// server-side status has not changed.
package layout

import (
	"cmp"
	"slices"

	"github.com/thenoetrevino/fleetboard/internal/board"
	"github.com/thenoetrevino/fleetboard/internal/models"
)

// Sources records the column every card sits in on a server-derived board.
func Sources(b board.Board) map[string]board.ColumnKey {
	out := make(map[string]board.ColumnKey, b.Len())
	for _, col := range board.Columns() {
		for _, c := range b[col] {
			out[c.ID] = col
		}
	}
	return out
}

// Entries flattens b into layout entries. sources maps card ids to their
// server-derived column; cards missing from it use their current column.
func Entries(b board.Board, sources map[string]board.ColumnKey) []models.LayoutEntry {
	entries := make([]models.LayoutEntry, 0, b.Len())
	for _, col := range board.Columns() {
		for i, c := range b[col] {
			src, ok := sources[c.ID]
			if !ok {
				src = col
			}
			entries = append(entries, models.LayoutEntry{
				CardID:       c.ID,
				Column:       string(col),
				Position:     i,
				SourceColumn: string(src),
			})
		}
	}
	return entries
}

type placed struct {
	card     board.Card
	position int
}

// Apply re-applies saved entries to a server-derived board.
//
// A card keeps its saved column and relative order only while its derived
// column still equals the entry's source column. Otherwise the server wins.
// In every column saved cards come first, by saved position, followed by
// the remaining cards in their server order.
func Apply(b board.Board, entries []models.LayoutEntry) board.Board {
	b = board.Normalize(b)
	if len(entries) == 0 {
		return b
	}

	derived := Sources(b)
	cards := make(map[string]board.Card, len(derived))
	for _, col := range board.Columns() {
		for _, c := range b[col] {
			cards[c.ID] = c
		}
	}

	saved := make(map[board.ColumnKey][]placed)
	kept := make(map[string]bool)
	for _, e := range entries {
		src, ok := derived[e.CardID]
		if !ok || kept[e.CardID] || string(src) != e.SourceColumn {
			continue
		}
		col, ok := board.ParseColumn(e.Column)
		if !ok {
			continue
		}
		kept[e.CardID] = true
		saved[col] = append(saved[col], placed{card: cards[e.CardID], position: e.Position})
	}

	out := board.NewBoard()
	for _, col := range board.Columns() {
		s := saved[col]
		slices.SortStableFunc(s, func(a, b placed) int {
			return cmp.Compare(a.position, b.position)
		})
		for _, p := range s {
			out[col] = append(out[col], p.card)
		}
		for _, c := range b[col] {
			if !kept[c.ID] {
				out[col] = append(out[col], c)
			}
		}
	}
	return out
}
