package workorder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/fleetboard/internal/cli"
	"github.com/thenoetrevino/fleetboard/internal/cli/styles"
	"github.com/thenoetrevino/fleetboard/internal/models"
	workorderservice "github.com/thenoetrevino/fleetboard/internal/services/workorder"
)

// ListCmd returns the workorder list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List work orders",
		Long:  "List work orders as the API returns them, optionally filtered by status or priority.",
		RunE:  runList,
	}

	cmd.Flags().String("status", "", "Only work orders with this API status (open, in_progress, done, ...)")
	cmd.Flags().String("priority", "", "Only work orders with this priority")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)

	status, _ := cmd.Flags().GetString("status")
	priority, _ := cmd.Flags().GetString("priority")

	cliInstance, closeCLI, err := cli.Open(cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	defer closeCLI()

	snap, err := cliInstance.App.WorkOrderService.Fetch(cmd.Context())
	if err != nil {
		return formatter.Fail(err)
	}

	orders := make([]models.WorkOrder, 0, len(snap.Orders))
	for _, wo := range snap.Orders {
		if status != "" && !strings.EqualFold(wo.Status, status) {
			continue
		}
		if priority != "" && !strings.EqualFold(wo.Priority, priority) {
			continue
		}
		orders = append(orders, wo)
	}

	if formatter.Quiet {
		for _, wo := range orders {
			fmt.Println(wo.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.Result("work_orders", orders)
	}

	// Human-readable output
	if len(orders) == 0 {
		fmt.Println("No work orders found")
		return nil
	}

	vehicles := workorderservice.VehicleIndex(snap.Vehicles)
	rows := make([][]string, 0, len(orders))
	for _, wo := range orders {
		rows = append(rows, []string{
			strconv.Itoa(wo.ID),
			wo.Code(),
			wo.Title(),
			wo.Status,
			string(workorderservice.NormalizePriority(wo.Priority)),
			workorderservice.VehicleLabel(wo.VehicleID, vehicles),
			formatDate(wo.PlannedStartDate),
		})
	}

	fmt.Printf("Found %d work orders:\n\n", len(orders))
	fmt.Println(styles.RenderTable(
		[]string{"ID", "Code", "Title", "Status", "Priority", "Vehicle", "Planned"},
		rows,
	))
	return nil
}

func formatDate(ts *models.Timestamp) string {
	if ts == nil || ts.IsZero() {
		return "-"
	}
	return ts.Format("2006-01-02")
}
