// SPDX-License-Identifier: MIT

// Command cyclovander prints the trace of H_n and the condition number of the
// cyclotomic Vandermonde matrix V_n, for one n or for a file of inputs.
//
// Usage:
//
//	cyclovander [--trace] get <n>
//	cyclovander [--trace] table <input-file> [-q] [-t N] [--ordered] [--memo] [--metrics-file F]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
