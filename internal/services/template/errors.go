package template

import "errors"

// Domain errors for template service
var (
	ErrEmptyName       = errors.New("template name cannot be empty")
	ErrNameTooLong     = errors.New("template name cannot exceed 100 characters")
	ErrInvalidTrigger  = errors.New("trigger type must be one of: mileage, time, custom")
	ErrMissingInterval = errors.New("interval must be positive for the selected trigger")
	ErrInvalidTypeID   = errors.New("invalid vehicle type ID")
)
