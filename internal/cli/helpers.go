package cli

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/fleetboard/internal/board"
)

// AddOutputFlags registers --json and --quiet on cmd
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}

// Formatter builds an OutputFormatter from the --json and --quiet flags
func Formatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// Open returns the CLI for cmd's context and a function that closes it
func Open(cmd *cobra.Command) (*CLI, func(), error) {
	cliInstance, err := GetCLIFromContext(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	return cliInstance, func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}, nil
}

// ParseCriteria builds the board filter from --status, --priority and --search
func ParseCriteria(cmd *cobra.Command) (board.Criteria, error) {
	status, _ := cmd.Flags().GetString("status")
	priority, _ := cmd.Flags().GetString("priority")
	search, _ := cmd.Flags().GetString("search")

	var c board.Criteria
	if status != "" {
		col, ok := board.ParseColumn(status)
		if !ok {
			return c, Usagef("invalid status '%s' (must be: new, in_progress, in_review, completed)", status)
		}
		c.Status = col
	}
	if priority != "" {
		p, ok := board.ParsePriority(priority)
		if !ok {
			return c, Usagef("invalid priority '%s' (must be: low, medium, high)", priority)
		}
		c.Priority = p
	}
	c.Search = search
	return c, nil
}

// OptionalInt returns a pointer to the flag value when it was set
func OptionalInt(cmd *cobra.Command, name string) (*int, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	v, err := cmd.Flags().GetInt(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read --%s: %w", name, err)
	}
	return &v, nil
}

// FormatOptional renders a nullable int for tables
func FormatOptional(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}
