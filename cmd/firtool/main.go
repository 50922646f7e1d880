// Command firtool is the command-line front end for the FIR reference
// models. Run "firtool --help" for the command list.
package main

import (
	"log/slog"
	"os"

	"github.com/tphakala/go-fir/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("command failed", "error", err)
		os.Exit(cli.GetExitCode(err))
	}
}
