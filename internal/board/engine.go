package board

import "log/slog"

// Observer is notified with the full board after every drop that changed it.
// It is called synchronously on the engine's goroutine and must not block;
// persisting the board is the observer's own business.
type Observer interface {
	BoardChanged(b Board)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(Board)

// BoardChanged calls f(b).
func (f ObserverFunc) BoardChanged(b Board) {
	f(b)
}

// Option configures an Engine
type Option func(*Engine)

// WithObserver registers the change observer.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		e.observer = o
	}
}

// WithFilter sets the initial client-side filter.
func WithFilter(f Filter) Option {
	return func(e *Engine) {
		e.filter = f
	}
}

// WithLogger sets the logger used for ignored drag events.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// Engine owns the board between refreshes and applies drag gestures to it.
//
// The engine keeps the full board, hidden cards included, and a filtered
// visible view that drags operate on. Drops are merged back into the full
// board with Reconcile. An Engine is driven from a single goroutine and is
// not safe for concurrent use.
type Engine struct {
	board   Board
	visible Board
	index   index
	filter  Filter

	active   string
	dragging bool

	observer Observer
	logger   *slog.Logger
}

// NewEngine returns an engine holding an empty board.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		board:  NewBoard(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.refreshView()
	return e
}

// Initialize adopts source as the current board and drops any drag in
// progress.
func (e *Engine) Initialize(source Board) Board {
	e.board = Normalize(source)
	e.clearDrag()
	e.refreshView()
	return e.board.Clone()
}

// OnExternalChange merges a freshly materialized board with the current one.
// Cards hidden by the active filter keep their last known column. A drag in
// progress is kept and resolves against the refreshed board.
func (e *Engine) OnExternalChange(source Board) Board {
	e.board = Reconcile(Normalize(source), e.board, e.filter)
	e.refreshView()
	return e.board.Clone()
}

// SetFilter replaces the client-side filter. The board itself is unchanged.
func (e *Engine) SetFilter(f Filter) {
	e.filter = f
	e.refreshView()
}

// Filter returns the active filter, nil when everything is shown.
func (e *Engine) Filter() Filter {
	return e.filter
}

// Board returns a copy of the full board, hidden cards included.
func (e *Engine) Board() Board {
	return e.board.Clone()
}

// Visible returns a copy of the filtered view.
func (e *Engine) Visible() Board {
	return e.visible.Clone()
}

// Dragging reports whether a card is currently lifted.
func (e *Engine) Dragging() bool {
	return e.dragging
}

// Active returns the lifted card, if any.
func (e *Engine) Active() (Card, bool) {
	if !e.dragging {
		return Card{}, false
	}
	pos, ok := e.index[e.active]
	if !ok {
		return Card{}, false
	}
	return e.visible[pos.column][pos.index], true
}

// Locate returns the column and position of a visible card.
func (e *Engine) Locate(cardID string) (ColumnKey, int, bool) {
	pos, ok := e.index[cardID]
	return pos.column, pos.index, ok
}

// BeginDrag marks cardID as lifted. Unknown or hidden ids are ignored.
// Starting a new drag while one is active replaces the marker.
func (e *Engine) BeginDrag(cardID string) {
	if _, ok := e.index[cardID]; !ok {
		e.logger.Debug("drag start ignored, card not on board", "card_id", cardID)
		return
	}
	e.active = cardID
	e.dragging = true
}

// EndDrag drops cardID on target and returns the full board.
//
// target is a column key (drop on the column area, the card is appended) or
// the id of another card (the dragged card takes that card's index). An empty
// or unresolvable target cancels the gesture and leaves the board unchanged.
// The observer is notified only when the order actually changed.
func (e *Engine) EndDrag(cardID, target string) Board {
	defer e.clearDrag()

	if target == "" {
		return e.board.Clone()
	}

	from, ok := e.index[cardID]
	if !ok {
		e.logger.Debug("drop ignored, card not on board", "card_id", cardID)
		return e.board.Clone()
	}

	toColumn, toIndex, ok := e.resolveTarget(target)
	if !ok {
		e.logger.Debug("drop ignored, unknown target", "card_id", cardID, "target", target)
		return e.board.Clone()
	}

	next := e.visible.Clone()
	if from.column == toColumn {
		cards := next[toColumn]
		if toIndex < 0 {
			toIndex = len(cards) - 1
		}
		if toIndex == from.index {
			return e.board.Clone()
		}
		next[toColumn] = moveWithin(cards, from.index, toIndex)
	} else {
		card := next[from.column][from.index]
		next[from.column] = removeAt(next[from.column], from.index)
		if toIndex < 0 {
			toIndex = len(next[toColumn])
		}
		next[toColumn] = insertAt(next[toColumn], toIndex, card)
	}

	e.board = Reconcile(next, e.board, e.filter)
	e.refreshColumns(cardID, from.column, toColumn)

	e.logger.Debug("card dropped",
		"card_id", cardID,
		"from", from.column,
		"to", toColumn,
		"index", toIndex,
	)

	if e.observer != nil {
		e.observer.BoardChanged(e.board.Clone())
	}
	return e.board.Clone()
}

// resolveTarget returns the column and index for a drop target. Index -1
// means the end of the column.
func (e *Engine) resolveTarget(target string) (ColumnKey, int, bool) {
	if col := ColumnKey(target); col.Valid() {
		return col, -1, true
	}
	pos, ok := e.index[target]
	if !ok {
		return "", 0, false
	}
	return pos.column, pos.index, true
}

func (e *Engine) clearDrag() {
	e.active = ""
	e.dragging = false
}

// refreshView recomputes the visible board and the whole index.
func (e *Engine) refreshView() {
	e.visible = e.board.Filtered(e.filter)
	e.index = buildIndex(e.visible)
}

// refreshColumns recomputes only the columns touched by a drop.
func (e *Engine) refreshColumns(movedID string, cols ...ColumnKey) {
	delete(e.index, movedID)
	for _, col := range cols {
		e.visible[col] = filterColumn(e.board[col], col, e.filter)
	}
	e.index.reindex(e.visible, cols...)
}
