// SPDX-License-Identifier: MIT

// Package config resolves the CLI settings from defaults, an optional config
// file, CYCLOVANDER_* environment variables and command-line flags, in
// increasing order of precedence, and validates the result.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/cyclovander/cyclo"
	"github.com/katalvlaran/cyclovander/logging"
)

// EnvPrefix prefixes every environment variable, e.g. CYCLOVANDER_THREADS.
const EnvPrefix = "CYCLOVANDER"

// Keys shared by viper, flags and the config file.
const (
	KeyMode        = "mode"
	KeyTrace       = "trace"
	KeyThreads     = "threads"
	KeyQuiet       = "quiet"
	KeyOrdered     = "ordered"
	KeyMemo        = "memo"
	KeyLogLevel    = "log-level"
	KeyLogJSON     = "log-json"
	KeyMetricsFile = "metrics-file"
)

// MaxThreads bounds the worker pool.
const MaxThreads = 4096

// ErrConfig wraps every load and validation failure.
var ErrConfig = errors.New("config: invalid configuration")

// threadsTag validates Config.Threads against MaxThreads.
const threadsTag = "threads"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterAlias(threadsTag, fmt.Sprintf("min=1,max=%d", MaxThreads))

	return v
}

// Config is the resolved configuration of one CLI invocation.
type Config struct {
	Mode        string `mapstructure:"mode" validate:"oneof=trace cond"`
	Threads     int    `mapstructure:"threads" validate:"threads"`
	Quiet       bool   `mapstructure:"quiet"`
	Ordered     bool   `mapstructure:"ordered"`
	Memo        bool   `mapstructure:"memo"`
	LogLevel    string `mapstructure:"log-level" validate:"oneof=debug info warn warning error"`
	LogJSON     bool   `mapstructure:"log-json"`
	MetricsFile string `mapstructure:"metrics-file"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Mode:     cyclo.ModeCond.String(),
		Threads:  1,
		LogLevel: "warn",
	}
}

// New returns a viper instance with defaults and environment lookup wired.
func New() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault(KeyMode, d.Mode)
	v.SetDefault(KeyTrace, false)
	v.SetDefault(KeyThreads, d.Threads)
	v.SetDefault(KeyQuiet, d.Quiet)
	v.SetDefault(KeyOrdered, d.Ordered)
	v.SetDefault(KeyMemo, d.Memo)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogJSON, d.LogJSON)
	v.SetDefault(KeyMetricsFile, d.MetricsFile)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// BindFlags binds every flag in fs whose name is a config key.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		if bindErr := v.BindPFlag(f.Name, f); bindErr != nil {
			err = fmt.Errorf("%w: bind flag %s: %w", ErrConfig, f.Name, bindErr)
		}
	})

	return err
}

// Load reads file (when non-empty) into v, applies the trace shortcut and
// returns the validated Config.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w: read %s: %w", ErrConfig, file, err)
		}
	}
	if v.GetBool(KeyTrace) {
		v.Set(KeyMode, cyclo.ModeTrace.String())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	cfg.Mode = strings.ToLower(strings.TrimSpace(cfg.Mode))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks cfg against its struct tags and reports every violation.
func Validate(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s=%v fails %s", fe.Field(), fe.Value(), describe(fe)))
	}

	return fmt.Errorf("%w: %s", ErrConfig, strings.Join(msgs, "; "))
}

// describe names the failing rule; aliases resolve to the rule behind them.
func describe(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.ActualTag()
	}

	return fe.ActualTag() + "=" + fe.Param()
}

// ModeValue returns the parsed cyclo.Mode.
func (c Config) ModeValue() (cyclo.Mode, error) {
	return cyclo.ParseMode(c.Mode)
}

// Level returns the parsed log level.
func (c Config) Level() (slog.Level, error) {
	return logging.ParseLevel(c.LogLevel)
}
