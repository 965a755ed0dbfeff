package workorder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/thenoetrevino/fleetboard/internal/board"
	"github.com/thenoetrevino/fleetboard/internal/layout"
	"github.com/thenoetrevino/fleetboard/internal/models"
	"golang.org/x/sync/errgroup"
)

// Service defines all work-order and board operations
type Service interface {
	// Read operations
	Fetch(ctx context.Context) (*Snapshot, error)
	LoadBoard(ctx context.Context) (*Loaded, error)

	// Write operations
	Create(ctx context.Context, req CreateRequest) (*Loaded, error)
	Move(ctx context.Context, cardID, target string) (*MoveResult, error)
	ResetLayout(ctx context.Context) error
}

// CreateRequest encapsulates data for creating a work order
type CreateRequest struct {
	Title        string
	VehicleID    *int
	Priority     string
	PlannedStart string // YYYY-MM-DD or RFC 3339, empty for none
}

// Snapshot is what the API returned on one fetch
type Snapshot struct {
	Orders   []models.WorkOrder
	Vehicles []models.Vehicle
}

// Loaded is a board ready to be shown
type Loaded struct {
	Snapshot

	// Board is the server-derived board with the local layout applied
	Board board.Board
	// Sources maps every card id to the column its status maps to
	Sources map[string]board.ColumnKey
}

// MoveResult reports the outcome of a Move
type MoveResult struct {
	Board   board.Board
	Changed bool
}

// apiClient defines the API calls needed by the work order service
type apiClient interface {
	BaseURL() string
	ListWorkOrders(ctx context.Context) ([]models.WorkOrder, error)
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	CreateWorkOrder(ctx context.Context, wo models.NewWorkOrder) error
}

// layoutStore defines the local persistence needed for board order
type layoutStore interface {
	GetLayout(ctx context.Context, apiURL string) ([]models.LayoutEntry, error)
	SaveLayout(ctx context.Context, apiURL string, entries []models.LayoutEntry) error
	ClearLayout(ctx context.Context, apiURL string) error
}

// service implements Service interface
type service struct {
	client  apiClient
	layouts layoutStore
	now     func() time.Time
	logger  *slog.Logger
}

// NewService creates a new work order service
func NewService(client apiClient, layouts layoutStore) Service {
	return &service{
		client:  client,
		layouts: layouts,
		now:     time.Now,
		logger:  slog.Default(),
	}
}

// Fetch loads work orders and vehicles concurrently
func (s *service) Fetch(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		orders, err := s.client.ListWorkOrders(gctx)
		if err != nil {
			return fmt.Errorf("failed to load work orders: %w", err)
		}
		snap.Orders = orders
		return nil
	})
	g.Go(func() error {
		vehicles, err := s.client.ListVehicles(gctx)
		if err != nil {
			return fmt.Errorf("failed to load vehicles: %w", err)
		}
		snap.Vehicles = vehicles
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

// LoadBoard fetches the API state and applies the saved local layout
func (s *service) LoadBoard(ctx context.Context) (*Loaded, error) {
	snap, err := s.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return s.materialize(ctx, snap), nil
}

func (s *service) materialize(ctx context.Context, snap *Snapshot) *Loaded {
	derived := ToBoard(snap.Orders, snap.Vehicles)
	loaded := &Loaded{
		Snapshot: *snap,
		Board:    derived,
		Sources:  layout.Sources(derived),
	}

	if s.layouts == nil {
		return loaded
	}
	entries, err := s.layouts.GetLayout(ctx, s.client.BaseURL())
	if err != nil {
		// The server order is still correct, only the local tweaks are lost.
		s.logger.Error("failed to read board layout", "error", err)
		return loaded
	}
	loaded.Board = layout.Apply(derived, entries)
	return loaded
}

// Create validates and posts a new work order, then reloads the board
func (s *service) Create(ctx context.Context, req CreateRequest) (*Loaded, error) {
	payload, err := s.buildNewWorkOrder(req)
	if err != nil {
		return nil, err
	}

	if err := s.client.CreateWorkOrder(ctx, payload); err != nil {
		return nil, fmt.Errorf("failed to create work order: %w", err)
	}

	s.logger.Info("work order created", "title", payload.OrderType, "priority", payload.Priority)
	return s.LoadBoard(ctx)
}

func (s *service) buildNewWorkOrder(req CreateRequest) (models.NewWorkOrder, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = models.DefaultOrderType
	}
	if len(title) > 200 {
		return models.NewWorkOrder{}, ErrTitleTooLong
	}

	priority := models.DefaultPriority
	if strings.TrimSpace(req.Priority) != "" {
		p, ok := board.ParsePriority(req.Priority)
		if !ok {
			return models.NewWorkOrder{}, ErrInvalidPriority
		}
		priority = string(p)
	}

	if req.VehicleID != nil && *req.VehicleID <= 0 {
		return models.NewWorkOrder{}, ErrInvalidVehicleID
	}

	wo := models.NewWorkOrder{
		VehicleID:    req.VehicleID,
		OrderType:    title,
		Status:       models.StatusOpen,
		Priority:     priority,
		ReportedDate: s.now().UTC(),
	}

	if planned := strings.TrimSpace(req.PlannedStart); planned != "" {
		ts, err := models.ParseTimestamp(planned)
		if err != nil {
			return models.NewWorkOrder{}, ErrInvalidPlannedDate
		}
		t := ts.Time
		wo.PlannedStartDate = &t
	}

	return wo, nil
}

// Move applies one drag gesture to the current board and saves the result
// as the local layout.
func (s *service) Move(ctx context.Context, cardID, target string) (*MoveResult, error) {
	loaded, err := s.LoadBoard(ctx)
	if err != nil {
		return nil, err
	}

	if _, _, ok := loaded.Board.Find(cardID); !ok {
		return nil, fmt.Errorf("%w: %s", ErrCardNotFound, cardID)
	}
	if col, ok := board.ParseColumn(target); ok {
		target = string(col)
	} else if _, _, found := loaded.Board.Find(target); !found {
		return nil, fmt.Errorf("%w: %s", ErrTargetNotFound, target)
	}

	var changed board.Board
	engine := board.NewEngine(
		board.WithLogger(s.logger),
		board.WithObserver(board.ObserverFunc(func(b board.Board) {
			changed = b
		})),
	)
	engine.Initialize(loaded.Board)
	engine.BeginDrag(cardID)
	result := engine.EndDrag(cardID, target)

	if changed == nil {
		return &MoveResult{Board: result}, nil
	}

	if s.layouts != nil {
		entries := layout.Entries(changed, loaded.Sources)
		if err := s.layouts.SaveLayout(ctx, s.client.BaseURL(), entries); err != nil {
			return nil, fmt.Errorf("failed to save board layout: %w", err)
		}
	}
	return &MoveResult{Board: result, Changed: true}, nil
}

// ResetLayout forgets the local order so the board follows the API again
func (s *service) ResetLayout(ctx context.Context) error {
	if s.layouts == nil {
		return nil
	}
	return s.layouts.ClearLayout(ctx, s.client.BaseURL())
}
