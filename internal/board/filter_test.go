package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCriteria_Match(t *testing.T) {
	card := Card{
		ID:       "7",
		Title:    "Replace brake pads",
		Vehicle:  "Ford Transit (AB-123)",
		Assignee: "Alex Johnson",
		Priority: PriorityHigh,
	}

	tests := []struct {
		name     string
		criteria Criteria
		column   ColumnKey
		want     bool
	}{
		{"zero value matches", Criteria{}, ColumnNew, true},
		{"status matches", Criteria{Status: ColumnInReview}, ColumnInReview, true},
		{"status rejects", Criteria{Status: ColumnInReview}, ColumnNew, false},
		{"priority matches", Criteria{Priority: PriorityHigh}, ColumnNew, true},
		{"priority rejects", Criteria{Priority: PriorityLow}, ColumnNew, false},
		{"search title", Criteria{Search: "BRAKE"}, ColumnNew, true},
		{"search vehicle", Criteria{Search: "ab-123"}, ColumnNew, true},
		{"search assignee", Criteria{Search: "johnson"}, ColumnNew, true},
		{"search misses", Criteria{Search: "tyres"}, ColumnNew, false},
		{"all combined", Criteria{Status: ColumnNew, Priority: PriorityHigh, Search: "alex"}, ColumnNew, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.criteria.Match(card, tt.column))
		})
	}
}

func TestCriteria_Filter(t *testing.T) {
	assert.Nil(t, Criteria{}.Filter())
	assert.Nil(t, Criteria{Search: "   "}.Filter())
	assert.NotNil(t, Criteria{Priority: PriorityLow}.Filter())
}

func TestBoard_Filtered(t *testing.T) {
	b := newTestBoard([]string{"1", "2"}, []string{"3"}, nil, []string{"4"})
	got := b.Filtered(Criteria{Status: ColumnNew}.Filter())
	assertLayout(t, map[ColumnKey][]string{
		ColumnNew: {"1", "2"}, ColumnInProgress: {}, ColumnInReview: {}, ColumnCompleted: {},
	}, got)

	all := b.Filtered(nil)
	assert.True(t, all.SameLayout(b))
}
