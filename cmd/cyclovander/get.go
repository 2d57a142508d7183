// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cyclovander/cyclo"
)

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <n>",
		Short: "Print the result for a single n",
		Example: `  cyclovander get 105
  cyclovander --trace get 105`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseUint(strings.TrimSpace(args[0]), 10, 64)
			if err != nil {
				return fmt.Errorf("%q is not an unsigned 64-bit integer: %w", args[0], cyclo.ErrInvalidInput)
			}

			tr, err := cyclo.TraceH(n)
			if err != nil {
				return err
			}
			if !tr.Reliable() {
				a.log.Warn("residual above tolerance, result may be off",
					slog.Uint64("n", n),
					slog.Float64("residual", tr.Residual),
					slog.Float64("tolerance", tr.Tolerance()),
				)
			}
			a.log.Debug("computed", slog.Uint64("n", n), slog.Int("dim", tr.Dim), slog.Float64("raw", tr.Raw))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), a.mode.Format(tr))
			return err
		},
	}
}
