package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rabitt1ove/serialdate"
)

const (
	cfgFileName = "serialdate"
	envPrefix   = "SERIALDATE"
)

var defCfgFilePaths = []string{".", "$HOME/.config/serialdate"}

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v   *viper.Viper
	log *zap.Logger
}

func newApp() *app {
	v := viper.New()
	v.SetDefault("format", "pretty")
	v.SetDefault("encoding", "utf-8")
	v.SetDefault("log.level", "warn")
	v.SetDefault("convert.column", 0)
	v.SetDefault("convert.keep_going", false)
	return &app{v: v, log: zap.NewNop()}
}

// loadConfig reads the optional config file and the environment, then
// builds the logger. An explicit --config file must exist.
func (a *app) loadConfig(cmd *cobra.Command) error {
	v := a.v
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(cfgFileName)
		for _, dir := range defCfgFilePaths {
			v.AddConfigPath(os.ExpandEnv(dir))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("reading config: %w", err)
			}
		}
	}

	log, err := newLogger(v.GetString("log.level"))
	if err != nil {
		return err
	}
	a.log = log
	if used := v.ConfigFileUsed(); used != "" {
		a.log.Debug("loaded config", zap.String("fpath", filepath.Clean(used)))
	}
	return nil
}

// newLogger returns a console logger writing to stderr at the given level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

func (a *app) style() (serialdate.Style, error) {
	return serialdate.ParseStyleName(a.v.GetString("format"))
}

func (a *app) bindFlag(key string, flag *pflag.Flag) {
	if err := a.v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag for %q: %v", key, err))
	}
}
