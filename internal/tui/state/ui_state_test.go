package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUIState_Cursor(t *testing.T) {
	s := NewUIState()

	s.MoveColumn(-1, 4)
	assert.Equal(t, 0, s.SelectedColumn())

	s.MoveColumn(10, 4)
	assert.Equal(t, 3, s.SelectedColumn())

	s.MoveCard(5, 2)
	assert.Equal(t, 2, s.SelectedCard())

	s.MoveCard(-1, 2)
	assert.Equal(t, 1, s.SelectedCard())

	s.ClampCard(0)
	assert.Equal(t, 0, s.SelectedCard())

	s.SetSelectedCard(3)
	s.ClampCard(-1)
	assert.Equal(t, 0, s.SelectedCard(), "empty column clamps to zero")
}

func TestUIState_ColumnWidth(t *testing.T) {
	s := NewUIState()
	assert.Equal(t, 30, s.ColumnWidth(4), "unknown width")

	s.SetSize(160, 40)
	assert.Equal(t, 38, s.ColumnWidth(4))

	s.SetSize(40, 40)
	assert.Equal(t, 20, s.ColumnWidth(4))
}

func TestUIState_Mode(t *testing.T) {
	s := NewUIState()
	assert.Equal(t, NormalMode, s.Mode())

	s.SetMode(SearchMode)
	assert.Equal(t, SearchMode, s.Mode())
}

func TestNotificationState(t *testing.T) {
	s := NewNotificationState()
	_, ok := s.Current()
	assert.False(t, ok)

	s.Add(LevelInfo, "saved")
	s.Add(LevelError, "boom")
	n, ok := s.Current()
	assert.True(t, ok)
	assert.Equal(t, Notification{Level: LevelError, Message: "boom"}, n)

	s.Clear()
	_, ok = s.Current()
	assert.False(t, ok)
}
