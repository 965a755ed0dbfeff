package layout

import (
	"context"
	"log/slog"
	"maps"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/thenoetrevino/fleetboard/internal/board"
	"github.com/thenoetrevino/fleetboard/internal/models"
)

// DefaultDebounce is the write window used unless FLEETBOARD_LAYOUT_DEBOUNCE_MS
// or WithDebounce overrides it.
const DefaultDebounce = 250 * time.Millisecond

const writeTimeout = 5 * time.Second

// Store is the subset of the local database the persister writes to.
type Store interface {
	SaveLayout(ctx context.Context, apiURL string, entries []models.LayoutEntry) error
}

// PersisterOption configures a Persister
type PersisterOption func(*Persister)

// WithDebounce sets the coalescing window
func WithDebounce(d time.Duration) PersisterOption {
	return func(p *Persister) {
		if d > 0 {
			p.debounce = d
		}
	}
}

// WithLogger sets the logger used for write failures
func WithLogger(logger *slog.Logger) PersisterOption {
	return func(p *Persister) {
		p.logger = logger
	}
}

// Persister writes board snapshots to the local store in the background.
//
// It implements board.Observer. BoardChanged never blocks: snapshots are
// queued and bursts within the debounce window collapse to the latest one.
// Write failures are logged and dropped.
type Persister struct {
	store  Store
	apiURL string

	mu      sync.Mutex
	sources map[string]board.ColumnKey
	closed  bool

	queue    chan []models.LayoutEntry
	flushes  chan chan struct{}
	debounce time.Duration
	logger   *slog.Logger

	done chan struct{}
}

// NewPersister starts the background writer for apiURL's layout
func NewPersister(store Store, apiURL string, opts ...PersisterOption) *Persister {
	debounce := DefaultDebounce
	if envVal := os.Getenv("FLEETBOARD_LAYOUT_DEBOUNCE_MS"); envVal != "" {
		if parsed, err := strconv.Atoi(envVal); err == nil && parsed > 0 {
			debounce = time.Duration(parsed) * time.Millisecond
		}
	}

	p := &Persister{
		store:    store,
		apiURL:   apiURL,
		sources:  map[string]board.ColumnKey{},
		queue:    make(chan []models.LayoutEntry, 32),
		flushes:  make(chan chan struct{}),
		debounce: debounce,
		logger:   slog.Default(),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}

	go p.run()
	return p
}

// SetSources records the server-derived column of every card. Call it after
// each fetch, before the board is shown.
func (p *Persister) SetSources(sources map[string]board.ColumnKey) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sources = maps.Clone(sources)
}

// BoardChanged queues b for writing
func (p *Persister) BoardChanged(b board.Board) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	entries := Entries(b, p.sources)
	for {
		select {
		case p.queue <- entries:
			return
		default:
		}
		// Queue full: the oldest snapshot is stale anyway.
		select {
		case <-p.queue:
		default:
		}
	}
}

// run drains the queue and writes the latest snapshot once per debounce tick
func (p *Persister) run() {
	defer close(p.done)

	ticker := time.NewTicker(p.debounce)
	defer ticker.Stop()

	var pending []models.LayoutEntry
	hasPending := false

	flush := func() {
		if !hasPending {
			return
		}
		p.write(pending)
		pending = nil
		hasPending = false
	}

	for {
		select {
		case entries, ok := <-p.queue:
			if !ok {
				flush()
				return
			}
			pending = entries
			hasPending = true

		drain:
			for {
				select {
				case entries, ok := <-p.queue:
					if !ok {
						flush()
						return
					}
					pending = entries
				default:
					break drain
				}
			}

		case ack := <-p.flushes:
			// Snapshots queued before Flush was called are already buffered.
		queued:
			for {
				select {
				case entries, ok := <-p.queue:
					if !ok {
						flush()
						close(ack)
						return
					}
					pending = entries
					hasPending = true
				default:
					break queued
				}
			}
			flush()
			close(ack)

		case <-ticker.C:
			flush()
		}
	}
}

func (p *Persister) write(entries []models.LayoutEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := p.store.SaveLayout(ctx, p.apiURL, entries); err != nil {
		p.logger.Error("failed to save board layout", "api_url", p.apiURL, "error", err)
		return
	}
	p.logger.Debug("board layout saved", "cards", len(entries))
}

// Flush writes the pending snapshot, if any, and returns once it is stored.
// Call it before reading the layout back so a refresh sees the latest drop.
func (p *Persister) Flush() {
	ack := make(chan struct{})
	select {
	case p.flushes <- ack:
	case <-p.done:
		return
	}
	select {
	case <-ack:
	case <-p.done:
	}
}

// Close writes any pending snapshot and stops the background writer.
// It is safe to call more than once.
func (p *Persister) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	<-p.done
	return nil
}
