// Package apitest provides an in-memory fake of the maintenance API for tests.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/thenoetrevino/fleetboard/internal/models"
)

// Default credentials accepted by a new Server
const (
	Email    = "alex@gomaintenance.io"
	Password = "secret"
	Token    = "test-token"
)

type account struct {
	user     models.User
	password string
}

// Server is a fake maintenance API backed by slices guarded by a mutex.
type Server struct {
	*httptest.Server

	mu         sync.Mutex
	accounts   map[string]account
	workOrders []models.WorkOrder
	vehicles   []models.Vehicle
	templates  []models.Template
	failures   map[string]int
	hits       map[string]int
	requestIDs []string
	nextID     int
}

// New starts a server seeded with one account and closes it when the test ends.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		accounts: map[string]account{
			Email: {
				user:     models.User{ID: 1, Email: Email, FullName: "Alex Johnson", Role: "admin"},
				password: Password,
			},
		},
		failures: make(map[string]int),
		hits:     make(map[string]int),
		nextID:   100,
	}

	r := chi.NewRouter()
	r.Use(s.record)
	r.Post("/auth/login", s.login)
	r.Post("/auth/signup", s.signup)
	r.Group(func(r chi.Router) {
		r.Use(s.requireToken)
		r.Get("/maintenance/work-orders", s.listWorkOrders)
		r.Post("/maintenance/work-orders", s.createWorkOrder)
		r.Get("/vehicles", s.listVehicles)
		r.Post("/vehicles", s.createVehicle)
		r.Get("/templates", s.listTemplates)
		r.Post("/templates", s.createTemplate)
	})

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// ============================================================================
// Seeding and inspection
// ============================================================================

// AddWorkOrders appends work orders to the fake store
func (s *Server) AddWorkOrders(orders ...models.WorkOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workOrders = append(s.workOrders, orders...)
}

// SetWorkOrders replaces the stored work orders
func (s *Server) SetWorkOrders(orders ...models.WorkOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workOrders = append([]models.WorkOrder{}, orders...)
}

// WorkOrders returns a copy of the stored work orders
func (s *Server) WorkOrders() []models.WorkOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.WorkOrder{}, s.workOrders...)
}

// AddVehicles appends vehicles to the fake store
func (s *Server) AddVehicles(vehicles ...models.Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vehicles = append(s.vehicles, vehicles...)
}

// Vehicles returns a copy of the stored vehicles
func (s *Server) Vehicles() []models.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Vehicle{}, s.vehicles...)
}

// AddTemplates appends templates to the fake store
func (s *Server) AddTemplates(templates ...models.Template) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates = append(s.templates, templates...)
}

// Templates returns a copy of the stored templates
func (s *Server) Templates() []models.Template {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Template{}, s.templates...)
}

// Fail makes every request to method+path answer with status until cleared
// with a zero status.
func (s *Server) Fail(method, path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := method + " " + path
	if status == 0 {
		delete(s.failures, key)
		return
	}
	s.failures[key] = status
}

// Hits returns how many requests reached method+path
func (s *Server) Hits(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[method+" "+path]
}

// RequestIDs returns the X-Request-ID headers seen so far
func (s *Server) RequestIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.requestIDs...)
}

// ============================================================================
// Middleware
// ============================================================================

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path

		s.mu.Lock()
		s.hits[key]++
		s.requestIDs = append(s.requestIDs, r.Header.Get("X-Request-ID"))
		status, fail := s.failures[key]
		s.mu.Unlock()

		if fail {
			http.Error(w, http.StatusText(status), status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+Token {
			http.Error(w, "Not authenticated", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ============================================================================
// Handlers
// ============================================================================

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	acc, ok := s.accounts[strings.ToLower(req.Email)]
	s.mu.Unlock()
	if !ok || acc.password != req.Password {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, models.Session{Token: Token, User: acc.user})
}

func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		FullName string `json:"full_name"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(req.Email)
	if _, exists := s.accounts[key]; exists {
		http.Error(w, "Email already registered", http.StatusConflict)
		return
	}
	s.nextID++
	user := models.User{ID: s.nextID, Email: req.Email, FullName: req.FullName, Role: "technician"}
	s.accounts[key] = account{user: user, password: req.Password}
	writeJSON(w, http.StatusCreated, models.Session{Token: Token, User: user})
}

func (s *Server) listWorkOrders(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.WorkOrders())
}

func (s *Server) createWorkOrder(w http.ResponseWriter, r *http.Request) {
	var req models.NewWorkOrder
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.nextID++
	reported := models.Timestamp{Time: req.ReportedDate}
	if reported.IsZero() {
		reported = models.Timestamp{Time: time.Now().UTC()}
	}
	wo := models.WorkOrder{
		ID:           s.nextID,
		VehicleID:    req.VehicleID,
		OrderType:    req.OrderType,
		Status:       req.Status,
		Priority:     req.Priority,
		ReportedDate: &reported,
	}
	if req.PlannedStartDate != nil {
		wo.PlannedStartDate = &models.Timestamp{Time: *req.PlannedStartDate}
	}
	s.workOrders = append(s.workOrders, wo)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, wo)
}

func (s *Server) listVehicles(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.Vehicles())
}

func (s *Server) createVehicle(w http.ResponseWriter, r *http.Request) {
	var req models.NewVehicle
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.nextID++
	v := models.Vehicle{
		ID:            s.nextID,
		InternalCode:  req.InternalCode,
		PlateNumber:   req.PlateNumber,
		Brand:         req.Brand,
		Model:         req.Model,
		Year:          req.Year,
		Mileage:       req.Mileage,
		HoursMeter:    req.HoursMeter,
		Status:        req.Status,
		VehicleTypeID: req.VehicleTypeID,
	}
	s.vehicles = append(s.vehicles, v)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, v)
}

func (s *Server) listTemplates(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.Templates())
}

func (s *Server) createTemplate(w http.ResponseWriter, r *http.Request) {
	var req models.NewTemplate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.nextID++
	active := req.IsActive
	tpl := models.Template{
		ID:               s.nextID,
		Name:             req.Name,
		TriggerType:      req.TriggerType,
		MileageInterval:  req.MileageInterval,
		TimeIntervalDays: req.TimeIntervalDays,
		IsActive:         &active,
		VehicleTypeID:    req.VehicleTypeID,
	}
	s.templates = append(s.templates, tpl)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, tpl)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
