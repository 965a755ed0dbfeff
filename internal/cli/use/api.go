package use

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/fleetboard/internal/cli"
	"github.com/thenoetrevino/fleetboard/internal/config"
)

// APICmd returns the use api subcommand
func APICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "api [url]",
		Short: "Set the API base URL",
		Long: `Save the API base URL in the config file.

With --shell the URL is not saved; instead an export line for
FLEETBOARD_API_URL is printed so it applies to the current shell only:

  eval $(fleetboard use api http://localhost:8080 --shell)`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUseAPI,
	}

	cmd.Flags().Bool("clear", false, "Go back to the default API")
	cmd.Flags().Bool("show", false, "Show the API in use")
	cmd.Flags().Bool("shell", false, "Print a shell export instead of saving")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUseAPI(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)

	clearFlag, _ := cmd.Flags().GetBool("clear")
	showFlag, _ := cmd.Flags().GetBool("show")
	shellFlag, _ := cmd.Flags().GetBool("shell")

	cfg, err := config.Load()
	if err != nil {
		return formatter.Fail(fmt.Errorf("failed to load config: %w", err))
	}

	if showFlag {
		return report(formatter, cfg.APIURL, "Current API: %s\n")
	}

	target := config.DefaultAPIURL
	switch {
	case clearFlag:
	case len(args) == 0:
		return formatter.Fail(cli.Usagef("API URL required (usage: fleetboard use api <url>)"))
	default:
		target, err = NormalizeURL(args[0])
		if err != nil {
			return formatter.Fail(err)
		}
	}

	if shellFlag {
		if clearFlag {
			fmt.Println("unset FLEETBOARD_API_URL")
			return nil
		}
		fmt.Printf("export FLEETBOARD_API_URL=%s\n", target)
		fmt.Fprintf(os.Stderr, "Using %s in this shell\n", target)
		return nil
	}

	cfg.APIURL = target
	if err := cfg.Save(); err != nil {
		return formatter.Fail(fmt.Errorf("failed to save config: %w", err))
	}
	return report(formatter, target, "✓ Now using %s\n")
}

func report(formatter *cli.OutputFormatter, apiURL, human string) error {
	if formatter.Quiet {
		fmt.Println(apiURL)
		return nil
	}
	if formatter.JSON {
		return formatter.Result("api_url", apiURL)
	}
	fmt.Printf(human, apiURL)
	return nil
}

// NormalizeURL checks that raw is an absolute http(s) URL and drops any
// trailing slash.
func NormalizeURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", cli.Usagef("invalid API URL '%s' (must be http:// or https://)", raw)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return strings.TrimRight(u.String(), "/"), nil
}
