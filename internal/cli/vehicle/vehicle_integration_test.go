package vehicle

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/fleetboard/internal/cli"
	"github.com/thenoetrevino/fleetboard/internal/models"
	testcli "github.com/thenoetrevino/fleetboard/internal/testutil/cli"
)

func TestListVehicles(t *testing.T) {
	srv, a := testcli.SetupCLITest(t)

	t.Run("empty", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, a, ListCmd(), nil)
		require.NoError(t, err)
		assert.Contains(t, output, "No vehicles found")
	})

	srv.AddVehicles(
		models.Vehicle{ID: 2, Name: "Van", PlateNumber: "ZZZ999", Year: 2019},
		models.Vehicle{ID: 1, Brand: "Volvo", Model: "FH16", InternalCode: "TRK-12"},
	)

	t.Run("human readable", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, a, ListCmd(), nil)
		require.NoError(t, err)
		assert.Contains(t, output, "Found 2 vehicles")
		assert.Contains(t, output, "Van (ZZZ999)")
		assert.Contains(t, output, "Volvo FH16")
	})

	t.Run("quiet is sorted by label", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, a, ListCmd(), []string{"--quiet"})
		require.NoError(t, err)
		assert.Equal(t, []string{"2", "1"}, strings.Fields(output))
	})
}

func TestCreateVehicle(t *testing.T) {
	t.Run("positive", func(t *testing.T) {
		srv, a := testcli.SetupCLITest(t)

		output, err := testcli.ExecuteCLICommand(t, a, CreateCmd(), []string{
			"--plate", " abc123 ", "--brand", "Volvo", "--year", "2021", "--json",
		})
		require.NoError(t, err)

		var result struct {
			Success  bool             `json:"success"`
			Vehicles []models.Vehicle `json:"vehicles"`
		}
		require.NoError(t, json.Unmarshal([]byte(output), &result))
		assert.True(t, result.Success)
		require.Len(t, result.Vehicles, 1)
		assert.Equal(t, "ABC123", result.Vehicles[0].PlateNumber)

		stored := srv.Vehicles()
		require.Len(t, stored, 1)
		assert.Equal(t, "active", stored[0].Status)
	})

	t.Run("validation", func(t *testing.T) {
		srv, a := testcli.SetupCLITest(t)

		for _, args := range [][]string{
			{"--brand", "Volvo"},
			{"--plate", "A1", "--year", "1900"},
			{"--plate", "A1", "--mileage", "-5"},
			{"--plate", "A1", "--hours", "-1"},
		} {
			_, err := testcli.ExecuteCLICommand(t, a, CreateCmd(), append(args, "--json"))
			assert.Equal(t, cli.ExitValidation, cli.ExitCode(err), args)
		}
		assert.Empty(t, srv.Vehicles())
	})
}
