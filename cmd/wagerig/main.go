// SPDX-License-Identifier: MIT

// Command wagerig solves the downward-rigid wage-setting problem.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/katalvlaran/wagerig/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.NewRootCommand().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "wagerig:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
