package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/fleetboard/cmd"
	"github.com/thenoetrevino/fleetboard/internal/cli"
)

func main() {
	err := cmd.Execute(context.Background())
	if err == nil {
		return
	}

	// Command failures are already reported; anything else came from flag
	// or argument parsing.
	var cmdErr *cli.CommandError
	if !errors.As(err, &cmdErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitUsage)
	}
	os.Exit(cmdErr.Code)
}
