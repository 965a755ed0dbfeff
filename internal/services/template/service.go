package template

import (
	"context"
	"fmt"
	"strings"

	"github.com/thenoetrevino/fleetboard/internal/models"
)

// Service defines all maintenance plan template operations
type Service interface {
	List(ctx context.Context) ([]models.Template, error)
	Create(ctx context.Context, req CreateRequest) ([]models.Template, error)
}

// CreateRequest encapsulates data for creating a template
type CreateRequest struct {
	Name             string
	VehicleTypeID    int
	TriggerType      string
	MileageInterval  int
	TimeIntervalDays int
	Inactive         bool
}

type apiClient interface {
	ListTemplates(ctx context.Context) ([]models.Template, error)
	CreateTemplate(ctx context.Context, t models.NewTemplate) error
}

type service struct {
	client apiClient
}

// NewService creates a new template service
func NewService(client apiClient) Service {
	return &service{client: client}
}

// List returns every template
func (s *service) List(ctx context.Context) ([]models.Template, error) {
	templates, err := s.client.ListTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	return templates, nil
}

// Create validates and posts a template, then returns the refreshed list
func (s *service) Create(ctx context.Context, req CreateRequest) ([]models.Template, error) {
	payload, err := validate(req)
	if err != nil {
		return nil, err
	}
	if err := s.client.CreateTemplate(ctx, payload); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return s.List(ctx)
}

// validate checks the request and keeps only the interval that matches the
// trigger type.
func validate(req CreateRequest) (models.NewTemplate, error) {
	t := models.NewTemplate{
		Name:          strings.TrimSpace(req.Name),
		VehicleTypeID: req.VehicleTypeID,
		TriggerType:   strings.ToLower(strings.TrimSpace(req.TriggerType)),
		IsActive:      !req.Inactive,
	}

	if t.Name == "" {
		return t, ErrEmptyName
	}
	if len(t.Name) > 100 {
		return t, ErrNameTooLong
	}
	if t.VehicleTypeID < 0 {
		return t, ErrInvalidTypeID
	}

	switch t.TriggerType {
	case "":
		t.TriggerType = models.TriggerMileage
		fallthrough
	case models.TriggerMileage:
		if req.MileageInterval <= 0 {
			return t, ErrMissingInterval
		}
		t.MileageInterval = req.MileageInterval
	case models.TriggerTime:
		if req.TimeIntervalDays <= 0 {
			return t, ErrMissingInterval
		}
		t.TimeIntervalDays = req.TimeIntervalDays
	case models.TriggerCustom:
	default:
		return t, ErrInvalidTrigger
	}

	return t, nil
}
