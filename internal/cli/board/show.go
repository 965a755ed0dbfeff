package board

import (
	"fmt"

	"github.com/spf13/cobra"
	kanban "github.com/thenoetrevino/fleetboard/internal/board"
	"github.com/thenoetrevino/fleetboard/internal/cli"
	"github.com/thenoetrevino/fleetboard/internal/cli/styles"
	workorderservice "github.com/thenoetrevino/fleetboard/internal/services/workorder"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the board",
		Long: `Print the work order board column by column, in the local order.

Examples:
  # Whole board
  fleetboard board show

  # Only high priority cards in progress
  fleetboard board show --status=in_progress --priority=high

  # Card ids matching a vehicle, one per line
  fleetboard board show --search="truck 12" --quiet
`,
		RunE: runShow,
	}

	cmd.Flags().String("status", "", "Only this column: new, in_progress, in_review, completed")
	cmd.Flags().String("priority", "", "Only this priority: low, medium, high")
	cmd.Flags().String("search", "", "Case-insensitive match on title, vehicle or assignee")
	cli.AddOutputFlags(cmd)

	return cmd
}

type columnView struct {
	Key   kanban.ColumnKey `json:"key"`
	Title string           `json:"title"`
	Cards []kanban.Card    `json:"cards"`
}

func runShow(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)

	criteria, err := cli.ParseCriteria(cmd)
	if err != nil {
		return formatter.Fail(err)
	}

	cliInstance, closeCLI, err := cli.Open(cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	defer closeCLI()

	loaded, err := cliInstance.App.WorkOrderService.LoadBoard(cmd.Context())
	if err != nil {
		return formatter.Fail(err)
	}
	visible := loaded.Board.Filtered(criteria.Filter())

	if formatter.Quiet {
		for _, row := range workorderservice.Rows(visible, nil) {
			fmt.Println(row.ID)
		}
		return nil
	}

	if formatter.JSON {
		columns := make([]columnView, 0, len(kanban.Columns()))
		for _, col := range kanban.Columns() {
			cards := visible[col]
			if cards == nil {
				cards = []kanban.Card{}
			}
			columns = append(columns, columnView{Key: col, Title: col.Title(), Cards: cards})
		}
		return formatter.Result("columns", columns)
	}

	// Human-readable output
	if visible.Len() == 0 {
		fmt.Println("No work orders found")
		return nil
	}

	for _, col := range kanban.Columns() {
		if criteria.Status != "" && col != criteria.Status {
			continue
		}
		fmt.Println(styles.RenderColumnHeader(col, len(visible[col])))
		for _, card := range visible[col] {
			fmt.Printf("  [%s] %s %s %s %s\n",
				card.ID,
				styles.LabelStyle.Render(card.Code),
				styles.ValueStyle.Render(card.Title),
				styles.SubtitleStyle.Render("· "+card.Vehicle),
				styles.RenderPriority(card.Priority),
			)
		}
	}

	return nil
}
