package workorder

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/thenoetrevino/fleetboard/internal/board"
	"github.com/thenoetrevino/fleetboard/internal/models"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// StatusToColumn maps a raw API status to its board column. Unknown and
// empty statuses land in New. Whitespace runs become underscores and
// nothing is trimmed, so " in_progress" is unknown.
func StatusToColumn(status string) board.ColumnKey {
	normalized := whitespaceRun.ReplaceAllString(strings.ToLower(status), "_")
	switch normalized {
	case models.StatusInProgress:
		return board.ColumnInProgress
	case models.StatusInReview:
		return board.ColumnInReview
	case models.StatusCompleted, models.StatusDone:
		return board.ColumnCompleted
	default:
		return board.ColumnNew
	}
}

// NormalizePriority maps a raw API priority to a card priority, medium
// when unknown.
func NormalizePriority(priority string) board.Priority {
	if p, ok := board.ParsePriority(priority); ok {
		return p
	}
	return board.PriorityMedium
}

// VehicleLabel returns the card label for a work order's vehicle
func VehicleLabel(vehicleID *int, vehicles map[int]models.Vehicle) string {
	if vehicleID == nil || *vehicleID == 0 {
		return models.UnassignedVehicle
	}
	v, ok := vehicles[*vehicleID]
	if !ok {
		return models.UnassignedVehicle
	}
	return v.Label()
}

// CardCode returns "#<order number>" or "WO-<id>"
func CardCode(wo models.WorkOrder) string {
	return wo.Code()
}

// ToCard converts a work order into a board card
func ToCard(wo models.WorkOrder, vehicles map[int]models.Vehicle) board.Card {
	return board.Card{
		ID:       strconv.Itoa(wo.ID),
		Code:     CardCode(wo),
		Title:    wo.Title(),
		Vehicle:  VehicleLabel(wo.VehicleID, vehicles),
		Priority: NormalizePriority(wo.Priority),
		Assignee: models.DefaultAssignee,
	}
}

// VehicleIndex indexes vehicles by id
func VehicleIndex(vehicles []models.Vehicle) map[int]models.Vehicle {
	out := make(map[int]models.Vehicle, len(vehicles))
	for _, v := range vehicles {
		out[v.ID] = v
	}
	return out
}

// ToBoard partitions work orders into columns, keeping API order inside
// each column. A work order id seen twice keeps its first occurrence.
func ToBoard(orders []models.WorkOrder, vehicles []models.Vehicle) board.Board {
	index := VehicleIndex(vehicles)
	b := board.NewBoard()
	for _, wo := range orders {
		col := StatusToColumn(wo.Status)
		b[col] = append(b[col], ToCard(wo, index))
	}
	return board.Normalize(b)
}

// Row is one line of the list view
type Row struct {
	Column board.ColumnKey `json:"column"`
	board.Card
}

// Rows flattens b into rows in column order, keeping only cards accepted by
// keep. A nil filter keeps everything.
func Rows(b board.Board, keep board.Filter) []Row {
	rows := []Row{}
	for _, col := range board.Columns() {
		for _, c := range b[col] {
			if keep != nil && !keep(c, col) {
				continue
			}
			rows = append(rows, Row{Column: col, Card: c})
		}
	}
	return rows
}
