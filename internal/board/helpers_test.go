package board

import (
	"sort"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// cards builds cards with the given ids and default display fields
func cards(ids ...string) []Card {
	out := make([]Card, 0, len(ids))
	for _, id := range ids {
		out = append(out, Card{ID: id, Code: "WO-" + id, Title: "Order " + id, Priority: PriorityMedium})
	}
	return out
}

func newTestBoard(newIDs, inProgress, inReview, completed []string) Board {
	return Board{
		ColumnNew:        cards(newIDs...),
		ColumnInProgress: cards(inProgress...),
		ColumnInReview:   cards(inReview...),
		ColumnCompleted:  cards(completed...),
	}
}

func numbered(n int) []string {
	ids := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		ids = append(ids, strconv.Itoa(i))
	}
	return ids
}

func sortedIDs(b Board) []string {
	var ids []string
	for _, col := range Columns() {
		for _, card := range b[col] {
			ids = append(ids, card.ID)
		}
	}
	sort.Strings(ids)
	return ids
}

func assertLayout(t *testing.T, want map[ColumnKey][]string, got Board) {
	t.Helper()
	if diff := cmp.Diff(want, got.Layout(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("board layout mismatch (-want +got):\n%s", diff)
	}
}

// recorder collects boards passed to the observer
type recorder struct {
	boards []Board
}

func (r *recorder) BoardChanged(b Board) {
	r.boards = append(r.boards, b)
}
