package vehicle

import "errors"

// Domain errors for vehicle service
var (
	ErrMissingIdentifier = errors.New("vehicle needs a plate number or an internal code")
	ErrInvalidYear       = errors.New("vehicle year is out of range")
	ErrNegativeMileage   = errors.New("mileage cannot be negative")
	ErrNegativeHours     = errors.New("hours meter cannot be negative")
	ErrInvalidTypeID     = errors.New("invalid vehicle type ID")
)
