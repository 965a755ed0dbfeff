package vehicle

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/fleetboard/internal/cli"
	"github.com/thenoetrevino/fleetboard/internal/cli/styles"
	"github.com/thenoetrevino/fleetboard/internal/models"
)

// ListCmd returns the vehicle list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vehicles",
		RunE:  runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)

	cliInstance, closeCLI, err := cli.Open(cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	defer closeCLI()

	vehicles, err := cliInstance.App.VehicleService.List(cmd.Context())
	if err != nil {
		return formatter.Fail(err)
	}
	return printVehicles(formatter, vehicles)
}

func printVehicles(formatter *cli.OutputFormatter, vehicles []models.Vehicle) error {
	if formatter.Quiet {
		for _, v := range vehicles {
			fmt.Println(v.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.Result("vehicles", vehicles)
	}

	if len(vehicles) == 0 {
		fmt.Println("No vehicles found")
		return nil
	}

	rows := make([][]string, 0, len(vehicles))
	for _, v := range vehicles {
		year := "-"
		if v.Year > 0 {
			year = strconv.Itoa(v.Year)
		}
		rows = append(rows, []string{
			strconv.Itoa(v.ID),
			v.Label(),
			v.InternalCode,
			year,
			strconv.FormatFloat(v.Mileage, 'f', -1, 64),
			v.Status,
		})
	}

	fmt.Printf("Found %d vehicles:\n\n", len(vehicles))
	fmt.Println(styles.RenderTable([]string{"ID", "Vehicle", "Code", "Year", "Mileage", "Status"}, rows))
	return nil
}
