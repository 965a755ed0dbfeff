package board

// Reconcile merges a freshly computed board with the previous full board
// under the active filter.
//
// Cards of prior that keep rejects are hidden: they stay in the column they
// occupied in prior, in prior order, after the live cards of that column.
// Every other card comes from live in live order. A hidden id that also
// appears in live is taken from prior only, so no card is duplicated and no
// hidden card changes column.
func Reconcile(live, prior Board, keep Filter) Board {
	if keep == nil {
		return Normalize(live)
	}

	hidden := NewBoard()
	hiddenIDs := make(map[string]struct{})
	for _, col := range columnOrder {
		for _, card := range prior[col] {
			if keep(card, col) {
				continue
			}
			if _, dup := hiddenIDs[card.ID]; dup {
				continue
			}
			hiddenIDs[card.ID] = struct{}{}
			hidden[col] = append(hidden[col], card)
		}
	}

	out := NewBoard()
	seen := make(map[string]struct{})
	for _, col := range columnOrder {
		for _, card := range live[col] {
			if _, ok := hiddenIDs[card.ID]; ok {
				continue
			}
			if _, dup := seen[card.ID]; dup {
				continue
			}
			seen[card.ID] = struct{}{}
			out[col] = append(out[col], card)
		}
		out[col] = append(out[col], hidden[col]...)
	}
	return out
}
