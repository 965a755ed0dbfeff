package workorder

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/fleetboard/internal/cli"
	"github.com/thenoetrevino/fleetboard/internal/models"
	"github.com/thenoetrevino/fleetboard/internal/testutil"
	testcli "github.com/thenoetrevino/fleetboard/internal/testutil/cli"
)

func intPtr(i int) *int { return &i }

func TestListWorkOrders_Positive(t *testing.T) {
	srv, a := testcli.SetupCLITest(t)
	srv.AddVehicles(models.Vehicle{ID: 10, Name: "Truck 12", PlateNumber: "ABC123"})
	srv.AddWorkOrders(
		models.WorkOrder{ID: 1, OrderNumber: "1001", OrderType: "Brake inspection", Status: "open", Priority: "high", VehicleID: intPtr(10)},
		models.WorkOrder{ID: 2, OrderType: "Oil change", Status: "done", Priority: "low"},
	)

	t.Run("human readable", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, a, ListCmd(), nil)
		require.NoError(t, err)

		assert.Contains(t, output, "Found 2 work orders")
		assert.Contains(t, output, "#1001")
		assert.Contains(t, output, "WO-2")
		assert.Contains(t, output, "Truck 12 (ABC123)")
		assert.Contains(t, output, models.UnassignedVehicle)
	})

	t.Run("quiet with status filter", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, a, ListCmd(), []string{"--status", "DONE", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, "2", strings.TrimSpace(output))
	})

	t.Run("JSON", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, a, ListCmd(), []string{"--priority", "high", "--json"})
		require.NoError(t, err)

		var result struct {
			Success    bool               `json:"success"`
			WorkOrders []models.WorkOrder `json:"work_orders"`
		}
		require.NoError(t, json.Unmarshal([]byte(output), &result))
		assert.True(t, result.Success)
		require.Len(t, result.WorkOrders, 1)
		assert.Equal(t, "Brake inspection", result.WorkOrders[0].OrderType)
	})

	t.Run("no match", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, a, ListCmd(), []string{"--status", "cancelled"})
		require.NoError(t, err)
		assert.Contains(t, output, "No work orders found")
	})
}

func TestCreateWorkOrder_Positive(t *testing.T) {
	t.Run("all flags", func(t *testing.T) {
		srv, a := testcli.SetupCLITest(t)

		output, err := testcli.ExecuteCLICommand(t, a, CreateCmd(), []string{
			"--title", "Brake inspection",
			"--priority", "high",
			"--vehicle", "12",
			"--planned", "2025-03-01",
		})
		require.NoError(t, err)
		assert.Contains(t, output, "Work order 'Brake inspection' created")
		assert.Contains(t, output, "Board now holds 1 cards")

		orders := srv.WorkOrders()
		require.Len(t, orders, 1)
		assert.Equal(t, "Brake inspection", orders[0].OrderType)
		assert.Equal(t, models.StatusOpen, orders[0].Status)
		assert.Equal(t, "high", orders[0].Priority)
		require.NotNil(t, orders[0].VehicleID)
		assert.Equal(t, 12, *orders[0].VehicleID)
		require.NotNil(t, orders[0].PlannedStartDate)
		assert.Equal(t, "2025-03-01", orders[0].PlannedStartDate.Format("2006-01-02"))
	})

	t.Run("defaults", func(t *testing.T) {
		srv, a := testcli.SetupCLITest(t)

		output, err := testcli.ExecuteCLICommand(t, a, CreateCmd(), []string{"--json"})
		require.NoError(t, err)

		result := testutil.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])
		assert.Equal(t, float64(1), result["board"].(map[string]any)["total"])

		orders := srv.WorkOrders()
		require.Len(t, orders, 1)
		assert.Equal(t, models.DefaultOrderType, orders[0].OrderType)
		assert.Equal(t, "medium", orders[0].Priority)
		assert.Nil(t, orders[0].VehicleID)
	})
}

func TestCreateWorkOrder_Negative(t *testing.T) {
	srv, a := testcli.SetupCLITest(t)

	tests := []struct {
		name string
		args []string
	}{
		{"invalid priority", []string{"--priority", "urgent"}},
		{"invalid vehicle", []string{"--vehicle", "0"}},
		{"invalid planned date", []string{"--planned", "soon"}},
		{"title too long", []string{"--title", strings.Repeat("x", 201)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := testcli.ExecuteCLICommand(t, a, CreateCmd(), append(tt.args, "--json"))
			assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
			assert.Contains(t, output, "VALIDATION_ERROR")
		})
	}

	assert.Empty(t, srv.WorkOrders())
}
