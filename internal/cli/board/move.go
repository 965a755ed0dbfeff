package board

import (
	"fmt"

	"github.com/spf13/cobra"
	kanban "github.com/thenoetrevino/fleetboard/internal/board"
	"github.com/thenoetrevino/fleetboard/internal/cli"
)

// MoveCmd returns the board move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <card-id> <target>",
		Short: "Move a card to a column or onto another card",
		Long: `Move a card the way dragging it in the board view would.

The target is either a column (the card goes to the end of it) or the id of
another card (the card takes that card's place). The new order is kept in the
local layout; the work order status on the server is not changed.

Examples:
  # Send card 12 to the end of In Review
  fleetboard board move 12 in_review

  # Put card 12 right before card 7
  fleetboard board move 12 7
`,
		Args: cobra.ExactArgs(2),
		RunE: runMove,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)
	cardID, target := args[0], args[1]

	cliInstance, closeCLI, err := cli.Open(cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	defer closeCLI()

	result, err := cliInstance.App.WorkOrderService.Move(cmd.Context(), cardID, target)
	if err != nil {
		return formatter.Fail(err)
	}

	column, position := locate(result.Board, cardID)

	if formatter.Quiet {
		fmt.Println(cardID)
		return nil
	}

	if formatter.JSON {
		return formatter.Result("card", map[string]any{
			"id":       cardID,
			"column":   column,
			"position": position,
			"changed":  result.Changed,
		})
	}

	// Human-readable output
	if !result.Changed {
		fmt.Printf("Card %s already in place (%s, position %d)\n", cardID, column.Title(), position)
		return nil
	}
	fmt.Printf("✓ Moved card %s to %s (position %d)\n", cardID, column.Title(), position)
	return nil
}

// locate returns the column and 1-based position of id
func locate(b kanban.Board, id string) (kanban.ColumnKey, int) {
	for _, col := range kanban.Columns() {
		for i, card := range b[col] {
			if card.ID == id {
				return col, i + 1
			}
		}
	}
	return "", 0
}
