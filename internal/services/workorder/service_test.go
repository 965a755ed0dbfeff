package workorder

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/fleetboard/internal/api"
	"github.com/thenoetrevino/fleetboard/internal/api/apitest"
	"github.com/thenoetrevino/fleetboard/internal/board"
	"github.com/thenoetrevino/fleetboard/internal/database"
	"github.com/thenoetrevino/fleetboard/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

type fixture struct {
	srv  *apitest.Server
	repo *database.Repository
	svc  Service
}

func setup(t *testing.T) *fixture {
	t.Helper()

	srv := apitest.New(t)
	db, err := database.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := database.NewRepository(db)
	client := api.NewClient(srv.URL, api.WithToken(apitest.Token))

	return &fixture{srv: srv, repo: repo, svc: NewService(client, repo)}
}

func seedOrders(f *fixture) {
	f.srv.AddVehicles(models.Vehicle{ID: 1, Name: "Truck", PlateNumber: "XY-1"})
	f.srv.AddWorkOrders(
		models.WorkOrder{ID: 1, Status: "open", OrderType: "Brakes", VehicleID: intPtr(1)},
		models.WorkOrder{ID: 2, Status: "open", OrderType: "Tyres"},
		models.WorkOrder{ID: 3, Status: "open", OrderType: "Lights"},
		models.WorkOrder{ID: 4, Status: "in_progress", OrderType: "Engine"},
	)
}

// ============================================================================
// LOAD
// ============================================================================

func TestLoadBoard(t *testing.T) {
	f := setup(t)
	seedOrders(f)

	loaded, err := f.svc.LoadBoard(context.Background())
	require.NoError(t, err)

	assert.Len(t, loaded.Orders, 4)
	assert.Len(t, loaded.Vehicles, 1)
	assert.Equal(t, []string{"1", "2", "3"}, loaded.Board.Layout()[board.ColumnNew])
	assert.Equal(t, board.ColumnInProgress, loaded.Sources["4"])
	assert.Equal(t, "Truck (XY-1)", loaded.Board[board.ColumnNew][0].Vehicle)

	assert.Equal(t, 1, f.srv.Hits(http.MethodGet, "/maintenance/work-orders"))
	assert.Equal(t, 1, f.srv.Hits(http.MethodGet, "/vehicles"))
}

func TestLoadBoard_FetchFailure(t *testing.T) {
	f := setup(t)
	seedOrders(f)
	f.srv.Fail(http.MethodGet, "/vehicles", http.StatusBadGateway)

	_, err := f.svc.LoadBoard(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load vehicles")
}

func TestLoadBoard_Unauthorized(t *testing.T) {
	srv := apitest.New(t)
	svc := NewService(api.NewClient(srv.URL), nil)

	_, err := svc.LoadBoard(context.Background())
	assert.ErrorIs(t, err, api.ErrUnauthorized)
}

// ============================================================================
// CREATE
// ============================================================================

func TestCreate(t *testing.T) {
	f := setup(t)
	seedOrders(f)

	loaded, err := f.svc.Create(context.Background(), CreateRequest{
		Title:        "  Windscreen  ",
		VehicleID:    intPtr(1),
		Priority:     "HIGH",
		PlannedStart: "2030-01-15",
	})
	require.NoError(t, err)

	orders := f.srv.WorkOrders()
	require.Len(t, orders, 5)
	created := orders[4]
	assert.Equal(t, "Windscreen", created.OrderType)
	assert.Equal(t, models.StatusOpen, created.Status)
	assert.Equal(t, models.PriorityHigh, created.Priority)
	require.NotNil(t, created.PlannedStartDate)
	assert.True(t, time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC).Equal(created.PlannedStartDate.Time))
	require.NotNil(t, created.ReportedDate)
	assert.WithinDuration(t, time.Now(), created.ReportedDate.Time, time.Minute)

	assert.Len(t, loaded.Board[board.ColumnNew], 4)
	assert.Equal(t, 1, f.srv.Hits(http.MethodGet, "/maintenance/work-orders"))
}

func TestCreate_Defaults(t *testing.T) {
	f := setup(t)

	_, err := f.svc.Create(context.Background(), CreateRequest{})
	require.NoError(t, err)

	orders := f.srv.WorkOrders()
	require.Len(t, orders, 1)
	assert.Equal(t, models.DefaultOrderType, orders[0].OrderType)
	assert.Equal(t, models.PriorityMedium, orders[0].Priority)
	assert.Nil(t, orders[0].VehicleID)
	assert.Nil(t, orders[0].PlannedStartDate)
}

func TestCreate_Validation(t *testing.T) {
	f := setup(t)
	long := make([]byte, 201)
	for i := range long {
		long[i] = 'x'
	}

	tests := []struct {
		name string
		req  CreateRequest
		want error
	}{
		{"bad priority", CreateRequest{Priority: "urgent"}, ErrInvalidPriority},
		{"bad vehicle", CreateRequest{VehicleID: intPtr(-1)}, ErrInvalidVehicleID},
		{"bad date", CreateRequest{PlannedStart: "next tuesday"}, ErrInvalidPlannedDate},
		{"long title", CreateRequest{Title: string(long)}, ErrTitleTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Equal(t, 0, f.srv.Hits(http.MethodPost, "/maintenance/work-orders"))
}

// ============================================================================
// MOVE
// ============================================================================

func TestMove_ReorderSurvivesReload(t *testing.T) {
	f := setup(t)
	seedOrders(f)
	ctx := context.Background()

	res, err := f.svc.Move(ctx, "3", "1")
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, []string{"3", "1", "2"}, res.Board.Layout()[board.ColumnNew])

	loaded, err := f.svc.LoadBoard(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1", "2"}, loaded.Board.Layout()[board.ColumnNew])
}

func TestMove_TransferToColumn(t *testing.T) {
	f := setup(t)
	seedOrders(f)
	ctx := context.Background()

	res, err := f.svc.Move(ctx, "2", "In Review")
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, []string{"2"}, res.Board.Layout()[board.ColumnInReview])

	loaded, err := f.svc.LoadBoard(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, loaded.Board.Layout()[board.ColumnNew])
	assert.Equal(t, []string{"2"}, loaded.Board.Layout()[board.ColumnInReview])
}

func TestMove_ServerStatusChangeWins(t *testing.T) {
	f := setup(t)
	seedOrders(f)
	ctx := context.Background()

	_, err := f.svc.Move(ctx, "2", "in_review")
	require.NoError(t, err)

	f.srv.SetWorkOrders(
		models.WorkOrder{ID: 1, Status: "open"},
		models.WorkOrder{ID: 2, Status: "done"},
		models.WorkOrder{ID: 3, Status: "open"},
		models.WorkOrder{ID: 4, Status: "in_progress"},
	)

	loaded, err := f.svc.LoadBoard(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded.Board.Layout()[board.ColumnInReview])
	assert.Equal(t, []string{"2"}, loaded.Board.Layout()[board.ColumnCompleted])
}

func TestMove_NoOp(t *testing.T) {
	f := setup(t)
	seedOrders(f)

	res, err := f.svc.Move(context.Background(), "1", "1")
	require.NoError(t, err)
	assert.False(t, res.Changed)

	entries, err := f.repo.GetLayout(context.Background(), f.srv.URL)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMove_Errors(t *testing.T) {
	f := setup(t)
	seedOrders(f)
	ctx := context.Background()

	_, err := f.svc.Move(ctx, "99", "new")
	assert.ErrorIs(t, err, ErrCardNotFound)

	_, err = f.svc.Move(ctx, "1", "archive")
	assert.ErrorIs(t, err, ErrTargetNotFound)
}

func TestResetLayout(t *testing.T) {
	f := setup(t)
	seedOrders(f)
	ctx := context.Background()

	_, err := f.svc.Move(ctx, "3", "1")
	require.NoError(t, err)
	require.NoError(t, f.svc.ResetLayout(ctx))

	loaded, err := f.svc.LoadBoard(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, loaded.Board.Layout()[board.ColumnNew])
}
