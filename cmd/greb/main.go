package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/quellex/greb/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		// Commands print their own diagnostics before returning an
		// ExitError; anything else is unexpected and printed here.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
