package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/fleetboard/internal/api"
	authservice "github.com/thenoetrevino/fleetboard/internal/services/auth"
	templateservice "github.com/thenoetrevino/fleetboard/internal/services/template"
	vehicleservice "github.com/thenoetrevino/fleetboard/internal/services/vehicle"
	workorderservice "github.com/thenoetrevino/fleetboard/internal/services/workorder"
)

// ErrUsage marks bad flag values detected by the commands themselves
var ErrUsage = errors.New("invalid usage")

// CommandError carries the process exit code for a failed command.
// The error has already been reported to the user.
type CommandError struct {
	Code int
	Err  error
}

func (e *CommandError) Error() string {
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code for the error returned by a command
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *CommandError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}

// Usagef builds an ErrUsage error with a message
func Usagef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}

var validationErrors = []error{
	workorderservice.ErrTitleTooLong,
	workorderservice.ErrInvalidPriority,
	workorderservice.ErrInvalidVehicleID,
	workorderservice.ErrInvalidPlannedDate,
	vehicleservice.ErrMissingIdentifier,
	vehicleservice.ErrInvalidYear,
	vehicleservice.ErrNegativeMileage,
	vehicleservice.ErrNegativeHours,
	vehicleservice.ErrInvalidTypeID,
	templateservice.ErrEmptyName,
	templateservice.ErrNameTooLong,
	templateservice.ErrInvalidTrigger,
	templateservice.ErrMissingInterval,
	templateservice.ErrInvalidTypeID,
	authservice.ErrInvalidEmail,
	authservice.ErrEmptyPassword,
	authservice.ErrPasswordTooShort,
	authservice.ErrEmptyFullName,
}

// Classify maps an error to a machine code, an exit code and an optional
// suggestion for the user
func Classify(err error) (code string, exit int, suggestion string) {
	switch {
	case errors.Is(err, ErrUsage):
		return "USAGE_ERROR", ExitUsage, "Run the command with --help to see valid flags"
	case errors.Is(err, authservice.ErrNotLoggedIn), errors.Is(err, api.ErrUnauthorized):
		return "NOT_LOGGED_IN", ExitError, "Log in with 'fleetboard auth login'"
	case errors.Is(err, authservice.ErrInvalidCredentials):
		return "INVALID_CREDENTIALS", ExitError, ""
	case errors.Is(err, workorderservice.ErrCardNotFound):
		return "CARD_NOT_FOUND", ExitNotFound, "Use 'fleetboard board show' to see card ids"
	case errors.Is(err, workorderservice.ErrTargetNotFound):
		return "TARGET_NOT_FOUND", ExitNotFound, "Targets are a column (new, in_progress, in_review, completed) or a card id"
	case errors.Is(err, api.ErrNotFound):
		return "NOT_FOUND", ExitNotFound, ""
	case errors.Is(err, context.DeadlineExceeded):
		return "TIMEOUT", ExitError, "Check api_url and timeout in the config file"
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return "VALIDATION_ERROR", ExitValidation, ""
		}
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == 400 || apiErr.StatusCode == 422 {
			return "API_REJECTED", ExitDataErr, ""
		}
		return "API_ERROR", ExitError, ""
	}
	return "ERROR", ExitError, ""
}
