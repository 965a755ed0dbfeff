package models

import (
	"strconv"
	"time"
)

// WorkOrder is a maintenance work order as returned by the API
type WorkOrder struct {
	ID               int        `json:"id"`
	OrderNumber      string     `json:"order_number,omitempty"`
	VehicleID        *int       `json:"vehicle_id,omitempty"`
	OrderType        string     `json:"order_type,omitempty"`
	Status           string     `json:"status,omitempty"`
	Priority         string     `json:"priority,omitempty"`
	ReportedDate     *Timestamp `json:"reported_date,omitempty"`
	PlannedStartDate *Timestamp `json:"planned_start_date,omitempty"`
}

// Code returns the display code: "#<order number>" when the API assigned one,
// "WO-<id>" otherwise.
func (w WorkOrder) Code() string {
	if w.OrderNumber != "" {
		return "#" + w.OrderNumber
	}
	return "WO-" + strconv.Itoa(w.ID)
}

// Title returns the order type, falling back to DefaultOrderType
func (w WorkOrder) Title() string {
	if w.OrderType != "" {
		return w.OrderType
	}
	return DefaultOrderType
}

// NewWorkOrder is the payload for creating a work order
type NewWorkOrder struct {
	VehicleID        *int       `json:"vehicle_id,omitempty"`
	OrderType        string     `json:"order_type"`
	Status           string     `json:"status"`
	Priority         string     `json:"priority"`
	ReportedDate     time.Time  `json:"reported_date"`
	PlannedStartDate *time.Time `json:"planned_start_date,omitempty"`
}
