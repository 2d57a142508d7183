// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/cyclovander/config"
	"github.com/katalvlaran/cyclovander/cyclo"
	"github.com/katalvlaran/cyclovander/logging"
)

// app is the state shared by the commands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string

	cfg  config.Config
	mode cyclo.Mode
	log  *slog.Logger
}

// newRootCmd builds a fresh command tree. Each call owns its own viper
// instance, so tests can execute several trees in one process.
func newRootCmd() *cobra.Command {
	a := &app{v: config.New(), log: logging.Discard()}

	cmd := &cobra.Command{
		Use:   "cyclovander",
		Short: "Trace of H_n and condition number of cyclotomic Vandermonde matrices",
		Long: `cyclovander computes, for a positive integer n, the trace of H_n = n·G_n⁻¹
(G_n the Gram matrix of the n-th cyclotomic Vandermonde matrix V_n) and the
condition number cond(V_n) = φ(n)·sqrt(Tr(H_n)/n).

Settings come from flags, CYCLOVANDER_* environment variables and an optional
config file, in that order of precedence.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := cmd.PersistentFlags()
	pf.Bool(config.KeyTrace, false, "compute the trace of H_n instead of the condition number")
	pf.String(config.KeyLogLevel, config.Default().LogLevel, "log level: debug, info, warn or error")
	pf.Bool(config.KeyLogJSON, false, "write logs as JSON")
	pf.StringVar(&a.cfgFile, "config", "", "config file (yaml, toml or json)")

	cmd.AddCommand(newGetCmd(a), newTableCmd(a))

	return cmd
}

// setup resolves the configuration and the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	mode, err := cfg.ModeValue()
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}

	a.cfg, a.mode = cfg, mode
	a.log = logging.New(logging.Config{
		Level:  level,
		JSON:   cfg.LogJSON,
		Writer: cmd.ErrOrStderr(),
	})
	a.log.Debug("configuration loaded",
		slog.String("mode", mode.String()),
		slog.Int("threads", cfg.Threads),
		slog.String("config_file", a.v.ConfigFileUsed()),
	)

	return nil
}
