package models

// ============================================================================
// WORK ORDER STATUS CONSTANTS
// ============================================================================

// Raw status values used by the maintenance API
const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusInReview   = "in_review"
	StatusCompleted  = "completed"
	StatusDone       = "done"
	StatusCancelled  = "cancelled"
)

// ============================================================================
// PRIORITY CONSTANTS
// ============================================================================

// Priority values accepted by the maintenance API
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// DefaultPriority is used when a work order carries no known priority
const DefaultPriority = PriorityMedium

// ============================================================================
// TEMPLATE TRIGGER CONSTANTS
// ============================================================================

// Trigger types for maintenance plan templates
const (
	TriggerMileage = "mileage"
	TriggerTime    = "time"
	TriggerCustom  = "custom"
)

// ============================================================================
// DEFAULTS
// ============================================================================

// DefaultOrderType is the title given to work orders created without one
const DefaultOrderType = "Maintenance"

// DefaultAssignee is shown on cards until the API exposes assignments
const DefaultAssignee = "Unassigned"

// UnassignedVehicle is shown on cards with no resolvable vehicle
const UnassignedVehicle = "Unassigned vehicle"
