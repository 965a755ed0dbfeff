package tutorial

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed guide.md
var guideContent string

// TutorialCmd returns the guide command
func TutorialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "guide",
		Aliases: []string{"tutorial"},
		Short:   "Show how to use the board and the commands",
		Long:    "Print a short guide to the board workflow, rendered for the terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetBool("raw")
			width, _ := cmd.Flags().GetInt("width")
			fmt.Println(outputGuide(raw, width))
			return nil
		},
	}
	cmd.Flags().Bool("raw", false, "Print markdown instead of rendering it")
	cmd.Flags().Int("width", 80, "Wrap width for the rendered output")
	return cmd
}

func outputGuide(raw bool, width int) string {
	if raw {
		return strings.TrimRight(guideContent, "\n")
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return guideContent
	}
	out, err := renderer.Render(guideContent)
	if err != nil {
		return guideContent
	}
	return strings.TrimRight(out, "\n")
}
