package workorder

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/fleetboard/internal/cli"
	"github.com/thenoetrevino/fleetboard/internal/cli/forms"
	"github.com/thenoetrevino/fleetboard/internal/models"
	workorderservice "github.com/thenoetrevino/fleetboard/internal/services/workorder"
)

// CreateCmd returns the workorder create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a work order",
		Long: `Create a work order. New work orders start as open and land in the New column.

Examples:
  # Defaults: "Maintenance", medium priority, no vehicle
  fleetboard workorder create

  # Full example
  fleetboard workorder create \
    --title="Brake inspection" \
    --priority=high \
    --vehicle=12 \
    --planned=2025-03-01

  # Prompt for every field
  fleetboard workorder create -i
`,
		RunE: runCreate,
	}

	cmd.Flags().String("title", "", "Work order title (defaults to Maintenance)")
	cmd.Flags().String("priority", "medium", "Priority: low, medium, high")
	cmd.Flags().Int("vehicle", 0, "Vehicle ID")
	cmd.Flags().String("planned", "", "Planned start date (YYYY-MM-DD)")
	cmd.Flags().BoolP("interactive", "i", false, "Prompt for the fields")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)
	ctx := cmd.Context()

	title, _ := cmd.Flags().GetString("title")
	priority, _ := cmd.Flags().GetString("priority")
	planned, _ := cmd.Flags().GetString("planned")
	interactive, _ := cmd.Flags().GetBool("interactive")
	vehicleID, err := cli.OptionalInt(cmd, "vehicle")
	if err != nil {
		return formatter.Fail(err)
	}

	cliInstance, closeCLI, err := cli.Open(cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	defer closeCLI()

	if interactive {
		snap, err := cliInstance.App.WorkOrderService.Fetch(ctx)
		if err != nil {
			return formatter.Fail(err)
		}
		vehicle := cli.FormatOptional(vehicleID)
		if vehicle == "-" {
			vehicle = ""
		}
		if err := forms.WorkOrderForm(&title, &priority, &vehicle, &planned, snap.Vehicles).RunWithContext(ctx); err != nil {
			return formatter.Fail(err)
		}
		vehicleID = nil
		if vehicle != "" {
			id, err := strconv.Atoi(vehicle)
			if err != nil {
				return formatter.Fail(cli.Usagef("invalid vehicle id '%s'", vehicle))
			}
			vehicleID = &id
		}
	}

	req := workorderservice.CreateRequest{
		Title:        title,
		VehicleID:    vehicleID,
		Priority:     priority,
		PlannedStart: planned,
	}
	loaded, err := cliInstance.App.WorkOrderService.Create(ctx, req)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.Result("board", map[string]any{
			"total":  loaded.Board.Len(),
			"orders": len(loaded.Orders),
		})
	}

	// Human-readable output
	shownTitle := title
	if shownTitle == "" {
		shownTitle = models.DefaultOrderType
	}
	fmt.Printf("✓ Work order '%s' created\n", shownTitle)
	fmt.Printf("  Priority: %s\n", priority)
	if vehicleID != nil {
		fmt.Printf("  Vehicle: %d\n", *vehicleID)
	}
	if planned != "" {
		fmt.Printf("  Planned start: %s\n", planned)
	}
	fmt.Printf("  Board now holds %d cards\n", loaded.Board.Len())
	return nil
}
