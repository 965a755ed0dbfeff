package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/fleetboard/internal/board"
	"github.com/thenoetrevino/fleetboard/internal/services/workorder"
	"github.com/thenoetrevino/fleetboard/internal/tui/state"
)

type fakeLoader struct {
	loaded *workorder.Loaded
	err    error
	calls  int
}

func (f *fakeLoader) LoadBoard(context.Context) (*workorder.Loaded, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.loaded, nil
}

type fakeObserver struct {
	boards  []board.Board
	sources []map[string]board.ColumnKey
	flushes int
}

func (f *fakeObserver) Flush() {
	f.flushes++
}

func (f *fakeObserver) BoardChanged(b board.Board) {
	f.boards = append(f.boards, b)
}

func (f *fakeObserver) SetSources(sources map[string]board.ColumnKey) {
	f.sources = append(f.sources, sources)
}

func card(id, title string, p board.Priority) board.Card {
	return board.Card{
		ID:       id,
		Code:     "WO-" + id,
		Title:    title,
		Vehicle:  "TRK-0" + id,
		Priority: p,
		Assignee: "Alex Johnson",
	}
}

// fixtureBoard: new [1 2 3], in_progress [4], completed [5]
func fixtureBoard() board.Board {
	b := board.NewBoard()
	b[board.ColumnNew] = []board.Card{
		card("1", "Brake inspection", board.PriorityHigh),
		card("2", "Oil change", board.PriorityLow),
		card("3", "Tire rotation", board.PriorityMedium),
	}
	b[board.ColumnInProgress] = []board.Card{card("4", "Brake pads", board.PriorityLow)}
	b[board.ColumnCompleted] = []board.Card{card("5", "Wiper blades", board.PriorityMedium)}
	return b
}

func loadedFor(b board.Board) *workorder.Loaded {
	sources := map[string]board.ColumnKey{}
	for col, cards := range b {
		for _, c := range cards {
			sources[c.ID] = col
		}
	}
	return &workorder.Loaded{Board: b, Sources: sources}
}

func setupTestModel(t *testing.T) (Model, *fakeLoader, *fakeObserver) {
	t.Helper()
	loader := &fakeLoader{loaded: loadedFor(fixtureBoard())}
	observer := &fakeObserver{}
	m := New(context.Background(), loader, observer, nil, nil)

	cmd := m.Init()
	require.NotNil(t, cmd)
	m = update(t, m, cmd())
	return m, loader, observer
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m = update(t, m, msg)
	}
	return m
}

func ids(cards []board.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ID)
	}
	return out
}

func TestInitialLoad(t *testing.T) {
	m, loader, observer := setupTestModel(t)

	assert.Equal(t, 1, loader.calls)
	assert.Len(t, observer.sources, 1)
	assert.Equal(t, board.ColumnNew, observer.sources[0]["1"])
	assert.Equal(t, 5, m.Engine().Board().Len())
	assert.Equal(t, 0, m.UIState().SelectedColumn())
	assert.Equal(t, 0, m.UIState().SelectedCard())
	assert.False(t, m.loading)
}

func TestNavigation(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = press(t, m, "j", "j", "j")
	assert.Equal(t, 2, m.UIState().SelectedCard(), "cursor stops at last card")

	m = press(t, m, "l")
	assert.Equal(t, 1, m.UIState().SelectedColumn())
	assert.Equal(t, 0, m.UIState().SelectedCard(), "cursor clamped to shorter column")

	m = press(t, m, "l", "l", "l")
	assert.Equal(t, 3, m.UIState().SelectedColumn())

	m = press(t, m, "h")
	assert.Equal(t, 2, m.UIState().SelectedColumn())
	assert.Equal(t, 0, m.UIState().SelectedCard())
}

func TestDragWithinColumn(t *testing.T) {
	m, _, observer := setupTestModel(t)

	m = press(t, m, "space")
	require.True(t, m.Engine().Dragging())
	active, _ := m.Engine().Active()
	assert.Equal(t, "1", active.ID)

	m = press(t, m, "j", "enter")

	assert.False(t, m.Engine().Dragging())
	assert.Equal(t, []string{"2", "1", "3"}, ids(m.Engine().Board()[board.ColumnNew]))
	require.Len(t, observer.boards, 1)
	assert.Equal(t, []string{"2", "1", "3"}, ids(observer.boards[0][board.ColumnNew]))

	assert.Equal(t, 1, m.UIState().SelectedCard(), "cursor follows the dropped card")
	n, ok := m.Notification()
	require.True(t, ok)
	assert.Equal(t, "Moved WO-1 to New (position 2)", n.Message)
}

func TestDragAcrossColumnsToEnd(t *testing.T) {
	m, _, observer := setupTestModel(t)

	m = press(t, m, "space", "l", "j")
	assert.Equal(t, 1, m.UIState().SelectedCard(), "end slot is reachable while dragging")

	m = press(t, m, "enter")

	b := m.Engine().Board()
	assert.Equal(t, []string{"2", "3"}, ids(b[board.ColumnNew]))
	assert.Equal(t, []string{"4", "1"}, ids(b[board.ColumnInProgress]))
	require.Len(t, observer.boards, 1)
	assert.Equal(t, 1, m.UIState().SelectedColumn())
	assert.Equal(t, 1, m.UIState().SelectedCard())
}

func TestDropOnCardInOtherColumn(t *testing.T) {
	m, _, _ := setupTestModel(t)

	// lift 3, drop on 5 in completed
	m = press(t, m, "j", "j", "space", "l", "l", "l", "space")

	b := m.Engine().Board()
	assert.Equal(t, []string{"1", "2"}, ids(b[board.ColumnNew]))
	assert.Equal(t, []string{"3", "5"}, ids(b[board.ColumnCompleted]))
}

func TestDropInEmptyColumn(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = press(t, m, "space", "l", "l", "enter")

	b := m.Engine().Board()
	assert.Equal(t, []string{"1"}, ids(b[board.ColumnInReview]))
}

func TestDropInPlace(t *testing.T) {
	m, _, observer := setupTestModel(t)

	m = press(t, m, "space", "enter")

	assert.Empty(t, observer.boards)
	n, ok := m.Notification()
	require.True(t, ok)
	assert.Equal(t, "WO-1 already in place", n.Message)
}

func TestCancelDrag(t *testing.T) {
	m, _, observer := setupTestModel(t)

	m = press(t, m, "space", "l", "esc")

	assert.False(t, m.Engine().Dragging())
	assert.Empty(t, observer.boards)
	assert.Equal(t, fixtureBoard(), m.Engine().Board())
	assert.Equal(t, 0, m.UIState().SelectedColumn(), "cursor returns to the card")
}

func TestFilterCycling(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = press(t, m, "p")
	assert.Equal(t, board.PriorityLow, m.Criteria().Priority)
	visible := m.Engine().Visible()
	assert.Equal(t, []string{"2"}, ids(visible[board.ColumnNew]))
	assert.Equal(t, []string{"4"}, ids(visible[board.ColumnInProgress]))
	assert.Empty(t, visible[board.ColumnCompleted])

	m = press(t, m, "s")
	assert.Equal(t, board.ColumnNew, m.Criteria().Status)
	assert.Empty(t, m.Engine().Visible()[board.ColumnInProgress])

	m = press(t, m, "c")
	assert.True(t, m.Criteria().IsZero())
	assert.Equal(t, 5, m.Engine().Visible().Len())
}

func TestFilteredDropKeepsHiddenCards(t *testing.T) {
	m, _, observer := setupTestModel(t)

	// only medium: new [3], completed [5]
	m = press(t, m, "p", "p")
	require.Equal(t, board.PriorityMedium, m.Criteria().Priority)

	m = press(t, m, "space", "l", "l", "l", "enter")

	b := m.Engine().Board()
	assert.Equal(t, []string{"1", "2"}, ids(b[board.ColumnNew]))
	assert.Contains(t, ids(b[board.ColumnCompleted]), "3")
	assert.Equal(t, 5, b.Len())
	require.Len(t, observer.boards, 1)
}

func TestSearch(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = press(t, m, "/")
	assert.Equal(t, state.SearchMode, m.UIState().Mode())

	m = press(t, m, "b", "r", "a", "k", "e")
	assert.Equal(t, "brake", m.Criteria().Search)
	visible := m.Engine().Visible()
	assert.Equal(t, []string{"1"}, ids(visible[board.ColumnNew]))
	assert.Equal(t, []string{"4"}, ids(visible[board.ColumnInProgress]))

	m = press(t, m, "enter")
	assert.Equal(t, state.NormalMode, m.UIState().Mode())
	assert.Equal(t, "brake", m.Criteria().Search, "enter keeps the query")

	m = press(t, m, "esc")
	assert.True(t, m.Criteria().IsZero(), "esc clears the filter in normal mode")
}

func TestSearchEscapeDropsQuery(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = press(t, m, "/", "o", "i", "l", "esc")

	assert.Equal(t, state.NormalMode, m.UIState().Mode())
	assert.Empty(t, m.Criteria().Search)
	assert.Equal(t, 5, m.Engine().Visible().Len())
}

func TestRefreshReconcilesBoard(t *testing.T) {
	m, loader, observer := setupTestModel(t)

	// server moved 1 to completed
	b := fixtureBoard()
	b[board.ColumnNew] = b[board.ColumnNew][1:]
	b[board.ColumnCompleted] = append(b[board.ColumnCompleted], card("1", "Brake inspection", board.PriorityHigh))
	loader.loaded = loadedFor(b)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.True(t, m.loading)

	m = update(t, m, cmd())

	assert.Equal(t, 2, loader.calls)
	assert.Equal(t, 2, observer.flushes, "every load flushes pending drops first")
	assert.Len(t, observer.sources, 2)
	assert.Equal(t, board.ColumnCompleted, observer.sources[1]["1"])
	assert.Equal(t, []string{"5", "1"}, ids(m.Engine().Board()[board.ColumnCompleted]))
	assert.Equal(t, 3, m.UIState().SelectedColumn(), "cursor follows the selected card")
	assert.Empty(t, observer.boards, "refresh is not a local change")
}

func TestLoadError(t *testing.T) {
	loader := &fakeLoader{err: errors.New("connection refused")}
	m := New(context.Background(), loader, nil, nil, nil)

	m = update(t, m, m.Init()())

	n, ok := m.Notification()
	require.True(t, ok)
	assert.Equal(t, state.LevelError, n.Level)
	assert.Contains(t, n.Message, "connection refused")
	assert.Equal(t, 0, m.Engine().Board().Len())

	// lifting on an empty board is a no-op
	m = press(t, m, "space")
	assert.False(t, m.Engine().Dragging())
}

func TestHelpMode(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = press(t, m, "?")
	assert.Equal(t, state.HelpMode, m.UIState().Mode())
	assert.Contains(t, m.View(), "Keyboard shortcuts")

	m = press(t, m, "esc")
	assert.Equal(t, state.NormalMode, m.UIState().Mode())
}

func TestQuit(t *testing.T) {
	m, _, _ := setupTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView(t *testing.T) {
	m, _, _ := setupTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 160, Height: 40})

	view := m.View()
	for _, want := range []string{"Fleet Board", "New (3)", "In Progress (1)", "In Review (0)", "Completed (1)", "WO-1", "Brake inspection", "AJ"} {
		assert.Contains(t, view, want)
	}

	m = press(t, m, "p")
	assert.Contains(t, m.View(), "priority=low")
}

func TestDescribeCriteria(t *testing.T) {
	assert.Empty(t, describeCriteria(board.Criteria{}))
	assert.Equal(t,
		`status=In Review priority=high search="pads"`,
		describeCriteria(board.Criteria{Status: board.ColumnInReview, Priority: board.PriorityHigh, Search: " pads "}),
	)
}
