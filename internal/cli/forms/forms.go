// Package forms holds the interactive prompts used by CLI commands when
// required values are missing from the flags.
package forms

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/fleetboard/internal/models"
)

// WorkOrderForm asks for the fields of a new work order. vehicleID receives
// the selected vehicle id as a string, empty for none.
func WorkOrderForm(title, priority, vehicleID, planned *string, vehicles []models.Vehicle) *huh.Form {
	vehicleOptions := []huh.Option[string]{huh.NewOption(models.UnassignedVehicle, "")}
	for _, v := range vehicles {
		vehicleOptions = append(vehicleOptions, huh.NewOption(v.Label(), strconv.Itoa(v.ID)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("title").
				Title("Title").
				Placeholder(models.DefaultOrderType).
				CharLimit(200).
				Value(title),

			huh.NewSelect[string]().
				Key("priority").
				Title("Priority").
				Options(
					huh.NewOption("Low", "low"),
					huh.NewOption("Medium", "medium"),
					huh.NewOption("High", "high"),
				).
				Value(priority),

			huh.NewSelect[string]().
				Key("vehicle").
				Title("Vehicle").
				Options(vehicleOptions...).
				Value(vehicleID),

			huh.NewInput().
				Key("planned").
				Title("Planned start").
				Placeholder("YYYY-MM-DD (optional)").
				Validate(ValidateOptionalDate).
				Value(planned),
		),
	)
}

// LoginForm asks for credentials
func LoginForm(email, password *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("email").
				Title("Email").
				Validate(ValidateRequired("email")).
				Value(email),

			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Validate(ValidateRequired("password")).
				Value(password),
		),
	)
}

// SignupForm asks for the fields of a new account
func SignupForm(email, fullName, password *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("email").
				Title("Email").
				Validate(ValidateRequired("email")).
				Value(email),

			huh.NewInput().
				Key("full_name").
				Title("Full name").
				Validate(ValidateRequired("full name")).
				Value(fullName),

			huh.NewInput().
				Key("password").
				Title("Password").
				Description("At least 8 characters").
				EchoMode(huh.EchoModePassword).
				Validate(ValidateRequired("password")).
				Value(password),
		),
	)
}

// ValidateRequired rejects blank input
func ValidateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}

// ValidateOptionalDate accepts an empty string or a date the API understands
func ValidateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := models.ParseTimestamp(strings.TrimSpace(s)); err != nil {
		return errors.New("use YYYY-MM-DD")
	}
	return nil
}
