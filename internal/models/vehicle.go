package models

import (
	"fmt"
	"strings"
)

// Vehicle is a fleet vehicle as returned by the API
type Vehicle struct {
	ID            int     `json:"id"`
	Name          string  `json:"name,omitempty"`
	InternalCode  string  `json:"internal_code,omitempty"`
	PlateNumber   string  `json:"plate_number,omitempty"`
	Brand         string  `json:"brand,omitempty"`
	Model         string  `json:"model,omitempty"`
	Year          int     `json:"year,omitempty"`
	Mileage       float64 `json:"mileage,omitempty"`
	HoursMeter    float64 `json:"hours_meter,omitempty"`
	Status        string  `json:"status,omitempty"`
	VehicleTypeID int     `json:"vehicle_type_id,omitempty"`
}

// DisplayName returns the vehicle name, or brand and model, or the internal
// code, whichever is available first.
func (v Vehicle) DisplayName() string {
	if v.Name != "" {
		return v.Name
	}
	if bm := strings.TrimSpace(v.Brand + " " + v.Model); bm != "" {
		return bm
	}
	if v.InternalCode != "" {
		return v.InternalCode
	}
	return fmt.Sprintf("#%d", v.ID)
}

// Label returns "Name (PLATE)" or just the name when no plate is known
func (v Vehicle) Label() string {
	if v.PlateNumber != "" {
		return fmt.Sprintf("%s (%s)", v.DisplayName(), v.PlateNumber)
	}
	return v.DisplayName()
}

// NewVehicle is the payload for registering a vehicle
type NewVehicle struct {
	InternalCode  string  `json:"internal_code"`
	PlateNumber   string  `json:"plate_number"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	Year          int     `json:"year"`
	Mileage       float64 `json:"mileage"`
	HoursMeter    float64 `json:"hours_meter"`
	VehicleTypeID int     `json:"vehicle_type_id"`
	Status        string  `json:"status"`
}
