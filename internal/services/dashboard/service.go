// Package dashboard computes the fleet KPI summary shown by the dashboard command.
package dashboard

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/thenoetrevino/fleetboard/internal/models"
	"golang.org/x/sync/errgroup"
)

// RecentLimit is how many work orders the recent table shows by default
const RecentLimit = 10

// Summary is the dashboard content
type Summary struct {
	Open        int        `json:"open"`
	Overdue     int        `json:"overdue"`
	NewThisWeek int        `json:"new_this_week"`
	PerDay      []DayCount `json:"per_day"`
	Recent      []Row      `json:"recent"`
	Vehicles    int        `json:"vehicles"`
	GeneratedAt time.Time  `json:"generated_at"`
}

// DayCount is the number of work orders reported on one UTC date
type DayCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// Row is one line of the recent work orders table
type Row struct {
	ID           int    `json:"id"`
	OrderNumber  string `json:"order_number"`
	Vehicle      string `json:"vehicle"`
	Type         string `json:"type"`
	Status       string `json:"status"`
	Priority     string `json:"priority"`
	ReportedDate string `json:"reported_date"`
	PlannedStart string `json:"planned_start"`
}

// Service builds dashboard summaries
type Service interface {
	Summary(ctx context.Context, limit int) (*Summary, error)
}

type apiClient interface {
	ListWorkOrders(ctx context.Context) ([]models.WorkOrder, error)
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
}

type service struct {
	client apiClient
	now    func() time.Time
}

// NewService creates a new dashboard service
func NewService(client apiClient) Service {
	return &service{client: client, now: time.Now}
}

// Summary fetches work orders and vehicles concurrently and computes the KPIs
func (s *service) Summary(ctx context.Context, limit int) (*Summary, error) {
	var (
		orders   []models.WorkOrder
		vehicles []models.Vehicle
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		orders, err = s.client.ListWorkOrders(gctx)
		return err
	})
	g.Go(func() (err error) {
		vehicles, err = s.client.ListVehicles(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load dashboard data: %w", err)
	}

	return Compute(orders, vehicles, s.now(), limit), nil
}

// Compute builds the summary for the given data as of now. A limit of zero
// or less shows RecentLimit rows.
func Compute(orders []models.WorkOrder, vehicles []models.Vehicle, now time.Time, limit int) *Summary {
	if limit <= 0 {
		limit = RecentLimit
	}
	return &Summary{
		Open:        CountOpen(orders),
		Overdue:     CountOverdue(orders, now),
		NewThisWeek: CountNewThisWeek(orders, now),
		PerDay:      PerDay(orders),
		Recent:      Recent(orders, vehicles, limit),
		Vehicles:    len(vehicles),
		GeneratedAt: now,
	}
}

// CountOpen counts orders whose raw status is open or in_progress
func CountOpen(orders []models.WorkOrder) int {
	n := 0
	for _, wo := range orders {
		if wo.Status == models.StatusOpen || wo.Status == models.StatusInProgress {
			n++
		}
	}
	return n
}

// CountOverdue counts orders planned before now that are neither done nor
// cancelled.
func CountOverdue(orders []models.WorkOrder, now time.Time) int {
	n := 0
	for _, wo := range orders {
		if wo.PlannedStartDate == nil || wo.PlannedStartDate.IsZero() {
			continue
		}
		if wo.Status == models.StatusDone || wo.Status == models.StatusCancelled {
			continue
		}
		if wo.PlannedStartDate.Before(now) {
			n++
		}
	}
	return n
}

// CountNewThisWeek counts orders reported within the last 7 days
func CountNewThisWeek(orders []models.WorkOrder, now time.Time) int {
	cutoff := now.Add(-7 * 24 * time.Hour)
	n := 0
	for _, wo := range orders {
		if wo.ReportedDate == nil || wo.ReportedDate.IsZero() {
			continue
		}
		if !wo.ReportedDate.Before(cutoff) {
			n++
		}
	}
	return n
}

// PerDay counts orders per UTC reported date, sorted by date
func PerDay(orders []models.WorkOrder) []DayCount {
	counts := map[string]int{}
	for _, wo := range orders {
		if wo.ReportedDate == nil || wo.ReportedDate.IsZero() {
			continue
		}
		counts[wo.ReportedDate.UTC().Format(time.DateOnly)]++
	}

	out := make([]DayCount, 0, len(counts))
	for date, count := range counts {
		out = append(out, DayCount{Date: date, Count: count})
	}
	slices.SortFunc(out, func(a, b DayCount) int {
		return cmp.Compare(a.Date, b.Date)
	})
	return out
}

// Recent returns up to limit rows, most recently reported first
func Recent(orders []models.WorkOrder, vehicles []models.Vehicle, limit int) []Row {
	labels := make(map[int]string, len(vehicles))
	for _, v := range vehicles {
		labels[v.ID] = v.Label()
	}

	sorted := slices.Clone(orders)
	slices.SortStableFunc(sorted, func(a, b models.WorkOrder) int {
		return reported(b).Compare(reported(a))
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	rows := make([]Row, 0, len(sorted))
	for _, wo := range sorted {
		rows = append(rows, Row{
			ID:           wo.ID,
			OrderNumber:  orderNumber(wo),
			Vehicle:      vehicleCell(wo.VehicleID, labels),
			Type:         wo.OrderType,
			Status:       wo.Status,
			Priority:     wo.Priority,
			ReportedDate: formatDate(wo.ReportedDate, ""),
			PlannedStart: formatDate(wo.PlannedStartDate, "-"),
		})
	}
	return rows
}

func reported(wo models.WorkOrder) time.Time {
	if wo.ReportedDate == nil {
		return time.Time{}
	}
	return wo.ReportedDate.Time
}

func orderNumber(wo models.WorkOrder) string {
	if wo.OrderNumber != "" {
		return wo.OrderNumber
	}
	return "WO-" + strconv.Itoa(wo.ID)
}

func vehicleCell(id *int, labels map[int]string) string {
	if id == nil || *id == 0 {
		return "N/A"
	}
	if label, ok := labels[*id]; ok {
		return label
	}
	return "#" + strconv.Itoa(*id)
}

func formatDate(ts *models.Timestamp, empty string) string {
	if ts == nil || ts.IsZero() {
		return empty
	}
	return ts.UTC().Format(time.DateOnly)
}
