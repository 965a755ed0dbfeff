package vehicle

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/fleetboard/internal/cli"
	vehicleservice "github.com/thenoetrevino/fleetboard/internal/services/vehicle"
)

// CreateCmd returns the vehicle create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a vehicle",
		Long: `Register a vehicle. A plate number or an internal code is required.

Examples:
  fleetboard vehicle create --plate=abc123 --brand=Volvo --model=FH16 --year=2021
  fleetboard vehicle create --code=TRK-12 --mileage=120500
`,
		RunE: runCreate,
	}

	cmd.Flags().String("plate", "", "Plate number (stored upper-case)")
	cmd.Flags().String("code", "", "Internal fleet code")
	cmd.Flags().String("brand", "", "Brand")
	cmd.Flags().String("model", "", "Model")
	cmd.Flags().Int("year", 0, "Model year")
	cmd.Flags().Float64("mileage", 0, "Odometer reading")
	cmd.Flags().Float64("hours", 0, "Engine hours")
	cmd.Flags().Int("type", 0, "Vehicle type ID")
	cmd.Flags().String("status", vehicleservice.DefaultStatus, "Status")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)

	req := vehicleservice.CreateRequest{}
	req.PlateNumber, _ = cmd.Flags().GetString("plate")
	req.InternalCode, _ = cmd.Flags().GetString("code")
	req.Brand, _ = cmd.Flags().GetString("brand")
	req.Model, _ = cmd.Flags().GetString("model")
	req.Year, _ = cmd.Flags().GetInt("year")
	req.Mileage, _ = cmd.Flags().GetFloat64("mileage")
	req.HoursMeter, _ = cmd.Flags().GetFloat64("hours")
	req.VehicleTypeID, _ = cmd.Flags().GetInt("type")
	req.Status, _ = cmd.Flags().GetString("status")

	cliInstance, closeCLI, err := cli.Open(cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	defer closeCLI()

	vehicles, err := cliInstance.App.VehicleService.Create(cmd.Context(), req)
	if err != nil {
		return formatter.Fail(err)
	}

	if !formatter.JSON && !formatter.Quiet {
		fmt.Println("✓ Vehicle registered")
		fmt.Println()
	}
	return printVehicles(formatter, vehicles)
}
