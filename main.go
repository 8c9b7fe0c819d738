package main

import (
	"fmt"
	"os"

	"github.com/thenoetrevino/roster/cmd"
	"github.com/thenoetrevino/roster/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCodeFor(err))
	}
}
