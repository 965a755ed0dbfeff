package vehicle

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/fleetboard/internal/api"
	"github.com/thenoetrevino/fleetboard/internal/api/apitest"
	"github.com/thenoetrevino/fleetboard/internal/models"
)

func setup(t *testing.T) (*apitest.Server, Service) {
	t.Helper()
	srv := apitest.New(t)
	return srv, NewService(api.NewClient(srv.URL, api.WithToken(apitest.Token)))
}

func TestList_SortedByLabel(t *testing.T) {
	srv, svc := setup(t)
	srv.AddVehicles(
		models.Vehicle{ID: 1, Name: "volvo"},
		models.Vehicle{ID: 2, Name: "Actros"},
		models.Vehicle{ID: 3, Brand: "Ford", Model: "Transit"},
	)

	vehicles, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, vehicles, 3)
	assert.Equal(t, []int{2, 3, 1}, []int{vehicles[0].ID, vehicles[1].ID, vehicles[2].ID})
}

func TestCreate(t *testing.T) {
	srv, svc := setup(t)

	vehicles, err := svc.Create(context.Background(), CreateRequest{
		PlateNumber: " ab-123 ",
		Brand:       "Ford",
		Model:       "Transit",
		Year:        2021,
		Mileage:     12000,
	})
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "AB-123", vehicles[0].PlateNumber)
	assert.Equal(t, DefaultStatus, srv.Vehicles()[0].Status)
}

func TestCreate_Validation(t *testing.T) {
	srv, svc := setup(t)

	tests := []struct {
		name string
		req  CreateRequest
		want error
	}{
		{"no identifier", CreateRequest{Brand: "Ford"}, ErrMissingIdentifier},
		{"too old", CreateRequest{PlateNumber: "A", Year: 1900}, ErrInvalidYear},
		{"future", CreateRequest{PlateNumber: "A", Year: 3000}, ErrInvalidYear},
		{"negative mileage", CreateRequest{PlateNumber: "A", Mileage: -1}, ErrNegativeMileage},
		{"negative hours", CreateRequest{InternalCode: "T-1", HoursMeter: -5}, ErrNegativeHours},
		{"negative type", CreateRequest{InternalCode: "T-1", VehicleTypeID: -2}, ErrInvalidTypeID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Equal(t, 0, srv.Hits(http.MethodPost, "/vehicles"))
}

func TestCreate_APIError(t *testing.T) {
	srv, svc := setup(t)
	srv.Fail(http.MethodPost, "/vehicles", http.StatusUnprocessableEntity)

	_, err := svc.Create(context.Background(), CreateRequest{PlateNumber: "AB-1"})
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
}
