package api

import (
	"context"
	"net/http"

	"github.com/thenoetrevino/fleetboard/internal/models"
)

const (
	pathLogin      = "/auth/login"
	pathSignup     = "/auth/signup"
	pathWorkOrders = "/maintenance/work-orders"
	pathVehicles   = "/vehicles"
	pathTemplates  = "/templates"
)

// ============================================================================
// Auth
// ============================================================================

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

// Login exchanges credentials for a session
func (c *Client) Login(ctx context.Context, email, password string) (*models.Session, error) {
	var session models.Session
	if err := c.do(ctx, http.MethodPost, pathLogin, loginRequest{Email: email, Password: password}, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Signup creates an account and returns its session
func (c *Client) Signup(ctx context.Context, email, fullName, password string) (*models.Session, error) {
	req := signupRequest{Email: email, FullName: fullName, Password: password}
	var session models.Session
	if err := c.do(ctx, http.MethodPost, pathSignup, req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// ============================================================================
// Work orders
// ============================================================================

// ListWorkOrders returns every work order visible to the session
func (c *Client) ListWorkOrders(ctx context.Context) ([]models.WorkOrder, error) {
	return list[models.WorkOrder](ctx, c, pathWorkOrders)
}

// CreateWorkOrder posts a new work order. The response body is ignored;
// callers refetch the list.
func (c *Client) CreateWorkOrder(ctx context.Context, wo models.NewWorkOrder) error {
	return c.do(ctx, http.MethodPost, pathWorkOrders, wo, nil)
}

// ============================================================================
// Vehicles
// ============================================================================

// ListVehicles returns the fleet
func (c *Client) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	return list[models.Vehicle](ctx, c, pathVehicles)
}

// CreateVehicle registers a vehicle
func (c *Client) CreateVehicle(ctx context.Context, v models.NewVehicle) error {
	return c.do(ctx, http.MethodPost, pathVehicles, v, nil)
}

// ============================================================================
// Templates
// ============================================================================

// ListTemplates returns the maintenance plan templates
func (c *Client) ListTemplates(ctx context.Context) ([]models.Template, error) {
	return list[models.Template](ctx, c, pathTemplates)
}

// CreateTemplate creates a maintenance plan template
func (c *Client) CreateTemplate(ctx context.Context, t models.NewTemplate) error {
	return c.do(ctx, http.MethodPost, pathTemplates, t, nil)
}
