package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spacemeshos/synchealth/config"
	"github.com/spacemeshos/synchealth/log"
)

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{}

func bind(fs *pflag.FlagSet, name, key string) {
	if fs.Lookup(name) == nil {
		panic("BUG: unknown flag " + name)
	}
	flagKeys[name] = key
}

var defaults = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:           "synchealth",
	Short:         "check and repair message sync between hubs",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	fs := rootCmd.PersistentFlags()
	fs.StringP("config", "c", "", "load configuration from file")
	fs.String("log-level", defaults.Log.Level, "logging level")
	bind(fs, "log-level", "log.level")
	fs.String("log-encoder", defaults.Log.Encoder, "log encoder: console or json")
	bind(fs, "log-encoder", "log.encoder")
	fs.Duration("request-timeout", defaults.Hub.RequestTimeout, "deadline of a single hub request")
	bind(fs, "request-timeout", "hub.request-timeout")
	fs.Duration("connect-timeout", defaults.Hub.ConnectTimeout, "deadline of a connection attempt")
	bind(fs, "connect-timeout", "hub.connect-timeout")

	rootCmd.AddCommand(runCmd, serveCmd, reportCmd)
}

// loadConfig merges defaults, the config file and command line flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	v := viper.New()
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return config.Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	if err := config.LoadConfig(path, v); err != nil {
		return config.Config{}, err
	}
	cfg := config.DefaultConfig()
	if err := config.Load(v, &cfg); err != nil {
		return config.Config{}, err
	}
	cfg.ConfigFile = path
	return cfg, nil
}

func setup(cmd *cobra.Command) (config.Config, *zap.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return cfg, nil, err
	}
	logger, err := log.New(cfg.Log)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logger, nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
