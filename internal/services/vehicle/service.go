package vehicle

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/thenoetrevino/fleetboard/internal/models"
)

// MinYear is the oldest model year accepted for a new vehicle
const MinYear = 1950

// DefaultStatus is used when a vehicle is registered without one
const DefaultStatus = "active"

// Service defines all vehicle-related operations
type Service interface {
	List(ctx context.Context) ([]models.Vehicle, error)
	Create(ctx context.Context, req CreateRequest) ([]models.Vehicle, error)
}

// CreateRequest encapsulates data for registering a vehicle
type CreateRequest struct {
	InternalCode  string
	PlateNumber   string
	Brand         string
	Model         string
	Year          int
	Mileage       float64
	HoursMeter    float64
	VehicleTypeID int
	Status        string
}

type apiClient interface {
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	CreateVehicle(ctx context.Context, v models.NewVehicle) error
}

type service struct {
	client apiClient
	now    func() time.Time
}

// NewService creates a new vehicle service
func NewService(client apiClient) Service {
	return &service{client: client, now: time.Now}
}

// List returns the fleet sorted by label
func (s *service) List(ctx context.Context) ([]models.Vehicle, error) {
	vehicles, err := s.client.ListVehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load vehicles: %w", err)
	}
	slices.SortStableFunc(vehicles, func(a, b models.Vehicle) int {
		return strings.Compare(strings.ToLower(a.Label()), strings.ToLower(b.Label()))
	})
	return vehicles, nil
}

// Create validates and registers a vehicle, then returns the refreshed fleet
func (s *service) Create(ctx context.Context, req CreateRequest) ([]models.Vehicle, error) {
	payload, err := s.validate(req)
	if err != nil {
		return nil, err
	}
	if err := s.client.CreateVehicle(ctx, payload); err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}
	return s.List(ctx)
}

func (s *service) validate(req CreateRequest) (models.NewVehicle, error) {
	v := models.NewVehicle{
		InternalCode:  strings.TrimSpace(req.InternalCode),
		PlateNumber:   strings.ToUpper(strings.TrimSpace(req.PlateNumber)),
		Brand:         strings.TrimSpace(req.Brand),
		Model:         strings.TrimSpace(req.Model),
		Year:          req.Year,
		Mileage:       req.Mileage,
		HoursMeter:    req.HoursMeter,
		VehicleTypeID: req.VehicleTypeID,
		Status:        strings.ToLower(strings.TrimSpace(req.Status)),
	}

	if v.InternalCode == "" && v.PlateNumber == "" {
		return v, ErrMissingIdentifier
	}
	if v.Year != 0 && (v.Year < MinYear || v.Year > s.now().Year()+1) {
		return v, ErrInvalidYear
	}
	if v.Mileage < 0 {
		return v, ErrNegativeMileage
	}
	if v.HoursMeter < 0 {
		return v, ErrNegativeHours
	}
	if v.VehicleTypeID < 0 {
		return v, ErrInvalidTypeID
	}
	if v.Status == "" {
		v.Status = DefaultStatus
	}
	return v, nil
}
