package models

// TemplateLine is one operation of a maintenance plan template
type TemplateLine struct {
	ID                     int     `json:"id"`
	OperationTypeID        int     `json:"operation_type_id,omitempty"`
	SparePartID            int     `json:"spare_part_id,omitempty"`
	Quantity               float64 `json:"quantity,omitempty"`
	EstimatedDurationHours float64 `json:"estimated_duration_hours,omitempty"`
}

// Template is a maintenance plan template
// Templates fire on mileage, elapsed time or a custom trigger
type Template struct {
	ID               int            `json:"id"`
	Name             string         `json:"name"`
	TriggerType      string         `json:"trigger_type,omitempty"`
	MileageInterval  int            `json:"mileage_interval,omitempty"`
	TimeIntervalDays int            `json:"time_interval_days,omitempty"`
	IsActive         *bool          `json:"is_active,omitempty"`
	VehicleTypeID    int            `json:"vehicle_type_id,omitempty"`
	Lines            []TemplateLine `json:"lines,omitempty"`
}

// Trigger returns the trigger type, "custom" when unset
func (t Template) Trigger() string {
	if t.TriggerType == "" {
		return TriggerCustom
	}
	return t.TriggerType
}

// Active reports whether the template is active; unset counts as active
func (t Template) Active() bool {
	return t.IsActive == nil || *t.IsActive
}

// NewTemplate is the payload for creating a template
type NewTemplate struct {
	Name             string `json:"name"`
	VehicleTypeID    int    `json:"vehicle_type_id"`
	TriggerType      string `json:"trigger_type"`
	MileageInterval  int    `json:"mileage_interval,omitempty"`
	TimeIntervalDays int    `json:"time_interval_days,omitempty"`
	IsActive         bool   `json:"is_active"`
}
