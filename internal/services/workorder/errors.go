package workorder

import "errors"

// Domain errors for work order service
var (
	// Validation errors
	ErrTitleTooLong       = errors.New("work order title cannot exceed 200 characters")
	ErrInvalidPriority    = errors.New("priority must be one of: low, medium, high")
	ErrInvalidVehicleID   = errors.New("invalid vehicle ID")
	ErrInvalidPlannedDate = errors.New("planned start date must be YYYY-MM-DD or RFC 3339")

	// Board errors
	ErrCardNotFound   = errors.New("card not found")
	ErrTargetNotFound = errors.New("drop target not found")
)
