// Package tui is the interactive kanban board: a Bubble Tea program that
// drives the board engine with keyboard drag and drop.
package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/fleetboard/internal/board"
	"github.com/thenoetrevino/fleetboard/internal/config"
	"github.com/thenoetrevino/fleetboard/internal/services/workorder"
	"github.com/thenoetrevino/fleetboard/internal/tui/state"
)

// Loader fetches the board with the local layout applied
type Loader interface {
	LoadBoard(ctx context.Context) (*workorder.Loaded, error)
}

// Observer receives every board changed by a drop. It also needs the
// server-derived column of each card so it can tell saved moves from
// server state. Flush stores pending drops before the layout is read back.
type Observer interface {
	board.Observer
	SetSources(sources map[string]board.ColumnKey)
	Flush()
}

// Model represents the application state for the TUI
type Model struct {
	ctx      context.Context
	loader   Loader
	observer Observer
	engine   *board.Engine
	criteria board.Criteria

	keys   keyMap
	help   help.Model
	search textinput.Model
	styles styles

	uiState           *state.UIState
	notificationState *state.NotificationState

	initialized bool
	loading     bool
}

// New creates the board model. observer may be nil, in which case drops are
// not persisted.
func New(ctx context.Context, loader Loader, observer Observer, cfg *config.Config, logger *slog.Logger) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}

	opts := []board.Option{board.WithLogger(logger)}
	if observer != nil {
		opts = append(opts, board.WithObserver(observer))
	}

	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "title, vehicle or assignee"
	search.CharLimit = 64

	return Model{
		ctx:               ctx,
		loader:            loader,
		observer:          observer,
		engine:            board.NewEngine(opts...),
		keys:              newKeyMap(cfg.KeyMappings),
		help:              help.New(),
		search:            search,
		styles:            newStyles(cfg.ColorScheme),
		uiState:           state.NewUIState(),
		notificationState: state.NewNotificationState(),
		loading:           true,
	}
}

// Init starts the first board load
func (m Model) Init() tea.Cmd {
	return m.load()
}

// load fetches the board off the update loop. Pending drops are flushed
// first so the saved layout read by the loader includes them.
func (m Model) load() tea.Cmd {
	ctx, loader, observer := m.ctx, m.loader, m.observer
	return func() tea.Msg {
		if observer != nil {
			observer.Flush()
		}
		loaded, err := loader.LoadBoard(ctx)
		if err != nil {
			return errMsg{err: err}
		}
		return boardLoadedMsg{loaded: loaded}
	}
}

// Criteria returns the active filter
func (m Model) Criteria() board.Criteria {
	return m.criteria
}

// Engine exposes the board engine
func (m Model) Engine() *board.Engine {
	return m.engine
}

// UIState exposes the cursor and mode
func (m Model) UIState() *state.UIState {
	return m.uiState
}

// Notification returns the status bar message, if any
func (m Model) Notification() (state.Notification, bool) {
	return m.notificationState.Current()
}

// currentColumn returns the column under the cursor
func (m Model) currentColumn() board.ColumnKey {
	return board.Columns()[m.uiState.SelectedColumn()]
}

// currentCards returns the visible cards of the column under the cursor
func (m Model) currentCards() []board.Card {
	return m.engine.Visible()[m.currentColumn()]
}

// currentCard returns the card under the cursor. While dragging the cursor
// may rest on the end slot, which holds no card.
func (m Model) currentCard() (board.Card, bool) {
	cards := m.currentCards()
	i := m.uiState.SelectedCard()
	if i < 0 || i >= len(cards) {
		return board.Card{}, false
	}
	return cards[i], true
}

// cardLimit is the highest cursor index in the current column. A lifted
// card may also be dropped past the last card.
func (m Model) cardLimit() int {
	n := len(m.currentCards())
	if m.engine.Dragging() {
		return n
	}
	return n - 1
}

// focus moves the cursor onto cardID when it is visible
func (m Model) focus(cardID string) bool {
	col, i, ok := m.engine.Locate(cardID)
	if !ok {
		return false
	}
	for ci, key := range board.Columns() {
		if key == col {
			m.uiState.SetSelectedColumn(ci)
			m.uiState.SetSelectedCard(i)
			return true
		}
	}
	return false
}

// setCriteria applies a new filter and keeps the cursor on the same card
// when it is still visible. A drag in progress is cancelled.
func (m Model) setCriteria(c board.Criteria) Model {
	if active, ok := m.engine.Active(); ok {
		m.engine.EndDrag(active.ID, "")
	}
	selected, hadCard := m.currentCard()
	m.criteria = c
	m.engine.SetFilter(c.Filter())
	if !hadCard || !m.focus(selected.ID) {
		m.uiState.ClampCard(m.cardLimit())
	}
	return m
}
