// SPDX-License-Identifier: MIT
package config_test

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cyclovander/config"
	"github.com/katalvlaran/cyclovander/cyclo"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)

	mode, err := cfg.ModeValue()
	require.NoError(t, err)
	require.Equal(t, cyclo.ModeCond, mode)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, slog.LevelWarn, lvl)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("CYCLOVANDER_THREADS", "8")
	t.Setenv("CYCLOVANDER_LOG_LEVEL", "DEBUG")
	t.Setenv("CYCLOVANDER_MODE", "trace")

	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)
	require.Equal(t, 8, cfg.Threads)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "trace", cfg.Mode)
}

func TestLoad_FlagsOverrideFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "cyclovander.yaml")
	require.NoError(t, os.WriteFile(file, []byte("threads: 3\nordered: true\nlog-level: info\n"), 0o600))
	t.Setenv("CYCLOVANDER_THREADS", "5")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int(config.KeyThreads, 1, "")
	fs.Bool(config.KeyTrace, false, "")
	require.NoError(t, fs.Parse([]string{"--threads=6", "--trace"}))

	v := config.New()
	require.NoError(t, config.BindFlags(v, fs))
	cfg, err := config.Load(v, file)
	require.NoError(t, err)
	require.Equal(t, 6, cfg.Threads, "flag beats env and file")
	require.True(t, cfg.Ordered, "file beats default")
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "trace", cfg.Mode, "--trace selects trace mode")
}

func TestLoad_UnsetFlagKeepsLowerLayers(t *testing.T) {
	t.Setenv("CYCLOVANDER_THREADS", "5")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int(config.KeyThreads, 1, "")
	require.NoError(t, fs.Parse(nil))

	v := config.New()
	require.NoError(t, config.BindFlags(v, fs))
	cfg, err := config.Load(v, "")
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Threads)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(config.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, config.ErrConfig)
}

func TestValidate(t *testing.T) {
	good := config.Default()
	require.NoError(t, config.Validate(good))

	for name, mutate := range map[string]func(*config.Config){
		"zero threads":  func(c *config.Config) { c.Threads = 0 },
		"huge threads":  func(c *config.Config) { c.Threads = config.MaxThreads + 1 },
		"unknown mode":  func(c *config.Config) { c.Mode = "det" },
		"unknown level": func(c *config.Config) { c.LogLevel = "verbose" },
	} {
		cfg := good
		mutate(&cfg)
		err := config.Validate(cfg)
		require.ErrorIs(t, err, config.ErrConfig, name)
	}

	err := config.Validate(config.Config{Mode: "x", Threads: 0, LogLevel: "warn"})
	require.ErrorContains(t, err, "Mode=x")
	require.ErrorContains(t, err, "Threads=0 fails min=1")
}

func TestValidate_ThreadsBoundFollowsMaxThreads(t *testing.T) {
	cfg := config.Default()
	cfg.Threads = config.MaxThreads
	require.NoError(t, config.Validate(cfg))

	cfg.Threads = config.MaxThreads + 1
	err := config.Validate(cfg)
	require.ErrorIs(t, err, config.ErrConfig)
	require.ErrorContains(t, err, fmt.Sprintf("Threads=%d fails max=%d", config.MaxThreads+1, config.MaxThreads))
}
