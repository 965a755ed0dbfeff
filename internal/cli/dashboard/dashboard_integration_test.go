package dashboard

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/fleetboard/internal/cli"
	"github.com/thenoetrevino/fleetboard/internal/models"
	testcli "github.com/thenoetrevino/fleetboard/internal/testutil/cli"
)

func ts(t time.Time) *models.Timestamp {
	return &models.Timestamp{Time: t}
}

func TestDashboard(t *testing.T) {
	srv, a := testcli.SetupCLITest(t)

	now := time.Now().UTC()
	srv.AddVehicles(models.Vehicle{ID: 10, Name: "Truck 12"})
	srv.AddWorkOrders(
		models.WorkOrder{ID: 1, Status: "open", ReportedDate: ts(now.Add(-time.Hour)), PlannedStartDate: ts(now.Add(-48 * time.Hour))},
		models.WorkOrder{ID: 2, Status: "in_progress", ReportedDate: ts(now.Add(-30 * 24 * time.Hour))},
		models.WorkOrder{ID: 3, Status: "done", ReportedDate: ts(now.Add(-2 * time.Hour)), PlannedStartDate: ts(now.Add(-48 * time.Hour))},
	)

	t.Run("JSON", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, a, DashboardCmd(), []string{"--json"})
		require.NoError(t, err)

		var result struct {
			Success bool `json:"success"`
			Summary struct {
				Open        int `json:"open"`
				Overdue     int `json:"overdue"`
				NewThisWeek int `json:"new_this_week"`
				Vehicles    int `json:"vehicles"`
			} `json:"summary"`
		}
		require.NoError(t, json.Unmarshal([]byte(output), &result))
		assert.True(t, result.Success)
		assert.Equal(t, 2, result.Summary.Open)
		assert.Equal(t, 1, result.Summary.Overdue)
		assert.Equal(t, 2, result.Summary.NewThisWeek)
		assert.Equal(t, 1, result.Summary.Vehicles)
	})

	t.Run("quiet prints the three KPIs", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, a, DashboardCmd(), []string{"--quiet"})
		require.NoError(t, err)
		assert.Equal(t, "2 1 2", strings.TrimSpace(output))
	})

	t.Run("raw markdown", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, a, DashboardCmd(), []string{"--raw", "--limit", "1"})
		require.NoError(t, err)
		assert.Contains(t, output, "# Fleet dashboard")
		assert.Contains(t, output, "Signed in as **Alex Johnson**")
		assert.Contains(t, output, "| Open work orders | 2 |")
		assert.Equal(t, 1, strings.Count(output, "| WO-"), "limit applies to recent rows")
	})

	t.Run("rendered", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, a, DashboardCmd(), nil)
		require.NoError(t, err)
		assert.Contains(t, output, "Fleet dashboard")
		assert.Contains(t, output, "Open work orders")
	})

	t.Run("negative limit", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, a, DashboardCmd(), []string{"--limit", "-1"})
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})
}
