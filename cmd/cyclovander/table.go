// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cyclovander/batch"
	"github.com/katalvlaran/cyclovander/config"
	"github.com/katalvlaran/cyclovander/cyclo"
	"github.com/katalvlaran/cyclovander/logging"
	"github.com/katalvlaran/cyclovander/metrics"
	"github.com/katalvlaran/cyclovander/progress"
)

func newTableCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table <input-file>",
		Short: "Print a two-column table for every integer in a file",
		Long: `table reads one unsigned integer per line and prints "n<TAB>result" for each.
Lines that are not unsigned integers are skipped. With more than one thread the
rows come out in completion order; pass --ordered to keep the input order.`,
		Example: `  cyclovander table inputs.txt -t 8 > table.tsv
  cyclovander --trace table inputs.txt --ordered --memo`,
		Args: cobra.ExactArgs(1),
		RunE: a.runTable,
	}

	f := cmd.Flags()
	f.BoolP(config.KeyQuiet, "q", false, "disable the progress spinner")
	f.IntP(config.KeyThreads, "t", config.Default().Threads, "number of worker threads")
	f.Bool(config.KeyOrdered, false, "emit rows in input order")
	f.Bool(config.KeyMemo, false, "compute repeated inputs only once")
	f.String(config.KeyMetricsFile, "", "write run metrics to this file (Prometheus text format)")

	return cmd
}

func (a *app) runTable(cmd *cobra.Command, args []string) (err error) {
	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("%w: could not read file: %w", batch.ErrIO, err)
	}
	defer in.Close()

	var (
		tracker progress.Tracker
		opts    = []batch.Option{batch.WithLogger(a.log), batch.WithTracker(&tracker)}
		col     *metrics.Collector
	)
	if a.cfg.Memo {
		opts = append(opts, batch.WithMemo(cyclo.NewMemo()))
	}
	if a.cfg.MetricsFile != "" {
		col = metrics.New()
		opts = append(opts, batch.WithMetrics(col))
	}

	runner, err := batch.New(batch.Config{
		Mode:    a.mode,
		Workers: a.cfg.Threads,
		Ordered: a.cfg.Ordered,
		Header:  true,
	}, opts...)
	if err != nil {
		return err
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	if showSpinner(a.cfg.Quiet, out, errOut) {
		rep := progress.NewReporter(errOut, &tracker)
		rep.Start()
		defer rep.Stop()
	}

	_, err = runner.Run(cmd.Context(), in, out)
	if col != nil {
		err = errors.Join(err, col.WriteTextfile(a.cfg.MetricsFile))
	}

	return err
}

// showSpinner keeps the spinner off the result stream: it is drawn on stderr,
// and only when stdout is redirected and stderr is a terminal.
func showSpinner(quiet bool, out, errOut io.Writer) bool {
	return !quiet && !logging.IsTerminal(out) && logging.IsTerminal(errOut)
}
