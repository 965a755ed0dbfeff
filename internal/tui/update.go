package tui

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/fleetboard/internal/board"
	"github.com/thenoetrevino/fleetboard/internal/tui/state"
)

// Update handles all incoming messages and returns the updated model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiState.SetSize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case boardLoadedMsg:
		return m.handleBoardLoaded(msg), nil

	case errMsg:
		m.loading = false
		m.notificationState.Add(state.LevelError, "Failed to load board: "+msg.Error())
		return m, nil

	case tea.KeyMsg:
		switch m.uiState.Mode() {
		case state.SearchMode:
			return m.handleSearchMode(msg)
		case state.HelpMode:
			return m.handleHelpMode(msg)
		default:
			return m.handleNormalMode(msg)
		}
	}

	return m, nil
}

// handleBoardLoaded adopts the first load and reconciles later ones with the
// board on screen.
func (m Model) handleBoardLoaded(msg boardLoadedMsg) Model {
	m.loading = false
	if msg.loaded == nil {
		return m
	}

	selected, hadCard := m.currentCard()
	if m.observer != nil {
		m.observer.SetSources(msg.loaded.Sources)
	}
	if m.initialized {
		m.engine.OnExternalChange(msg.loaded.Board)
	} else {
		m.engine.Initialize(msg.loaded.Board)
		m.initialized = true
	}

	if !hadCard || !m.focus(selected.ID) {
		m.uiState.ClampCard(m.cardLimit())
	}
	return m
}

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notificationState.Clear()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.uiState.SetMode(state.HelpMode)
	case key.Matches(msg, m.keys.PrevColumn):
		m.moveColumn(-1)
	case key.Matches(msg, m.keys.NextColumn):
		m.moveColumn(1)
	case key.Matches(msg, m.keys.PrevCard):
		m.uiState.MoveCard(-1, m.cardLimit())
	case key.Matches(msg, m.keys.NextCard):
		m.uiState.MoveCard(1, m.cardLimit())
	case key.Matches(msg, m.keys.Lift):
		return m.handleLift()
	case key.Matches(msg, m.keys.Drop):
		return m.handleDrop()
	case key.Matches(msg, m.keys.Cancel):
		return m.handleCancel()
	case key.Matches(msg, m.keys.Search):
		return m.handleEnterSearch()
	case key.Matches(msg, m.keys.CycleStatus):
		c := m.criteria
		c.Status = next(append([]board.ColumnKey{""}, board.Columns()...), c.Status)
		return m.setCriteria(c), nil
	case key.Matches(msg, m.keys.CyclePriority):
		c := m.criteria
		c.Priority = next([]board.Priority{"", board.PriorityLow, board.PriorityMedium, board.PriorityHigh}, c.Priority)
		return m.setCriteria(c), nil
	case key.Matches(msg, m.keys.ClearFilter):
		return m.setCriteria(board.Criteria{}), nil
	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, m.load()
	}

	return m, nil
}

// next returns the value after current in values, wrapping around
func next[T comparable](values []T, current T) T {
	i := slices.Index(values, current)
	return values[(i+1)%len(values)]
}

func (m Model) moveColumn(delta int) {
	m.uiState.MoveColumn(delta, len(board.Columns()))
	m.uiState.ClampCard(m.cardLimit())
}

// handleLift lifts the card under the cursor, or drops the lifted one
func (m Model) handleLift() (tea.Model, tea.Cmd) {
	if m.engine.Dragging() {
		return m.handleDrop()
	}
	card, ok := m.currentCard()
	if !ok {
		return m, nil
	}
	m.engine.BeginDrag(card.ID)
	m.notificationState.Add(state.LevelInfo, fmt.Sprintf("Moving %s, pick a spot and press %s", card.Code, m.keys.Drop.Help().Key))
	return m, nil
}

// handleDrop drops the lifted card on the card under the cursor, or at the
// end of the column when the cursor is on the end slot.
func (m Model) handleDrop() (tea.Model, tea.Cmd) {
	active, ok := m.engine.Active()
	if !ok {
		return m, nil
	}

	col := m.currentColumn()
	target := string(col)
	if card, ok := m.currentCard(); ok {
		target = card.ID
	}

	before := m.engine.Board()
	after := m.engine.EndDrag(active.ID, target)
	m.focus(active.ID)
	m.uiState.ClampCard(m.cardLimit())

	if before.SameLayout(after) {
		m.notificationState.Add(state.LevelInfo, active.Code+" already in place")
		return m, nil
	}
	newCol, pos, _ := m.engine.Locate(active.ID)
	m.notificationState.Add(state.LevelInfo, fmt.Sprintf("Moved %s to %s (position %d)", active.Code, newCol.Title(), pos+1))
	return m, nil
}

// handleCancel cancels a drag, otherwise clears the filter
func (m Model) handleCancel() (tea.Model, tea.Cmd) {
	if active, ok := m.engine.Active(); ok {
		m.engine.EndDrag(active.ID, "")
		m.focus(active.ID)
		m.uiState.ClampCard(m.cardLimit())
		m.notificationState.Add(state.LevelInfo, "Move cancelled")
		return m, nil
	}
	if !m.criteria.IsZero() {
		return m.setCriteria(board.Criteria{}), nil
	}
	return m, nil
}

// ============================================================================
// SEARCH MODE HANDLERS
// ============================================================================

// handleEnterSearch focuses the search box with the current query
func (m Model) handleEnterSearch() (tea.Model, tea.Cmd) {
	m.search.SetValue(m.criteria.Search)
	m.search.CursorEnd()
	m.uiState.SetMode(state.SearchMode)
	focus := m.search.Focus()
	return m, tea.Batch(focus, textinput.Blink)
}

// handleSearchMode filters the board as the query is typed. Enter keeps the
// query, esc drops it.
func (m Model) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		m.search.Blur()
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	case tea.KeyEsc:
		m.search.Blur()
		m.search.SetValue("")
		m.uiState.SetMode(state.NormalMode)
		c := m.criteria
		c.Search = ""
		return m.setCriteria(c), nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.criteria.Search {
		c := m.criteria
		c.Search = m.search.Value()
		m = m.setCriteria(c)
	}
	return m, cmd
}

// ============================================================================
// HELP MODE HANDLERS
// ============================================================================

// handleHelpMode handles input in the help screen.
func (m Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Quit):
		m.uiState.SetMode(state.NormalMode)
	}
	return m, nil
}
