// Package config contains the synchealth configuration definitions.
package config

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/spacemeshos/synchealth/healthlog"
	"github.com/spacemeshos/synchealth/hubrpc"
	"github.com/spacemeshos/synchealth/log"
	"github.com/spacemeshos/synchealth/metrics"
	"github.com/spacemeshos/synchealth/synchealth"
)

// Config defines the top level configuration.
type Config struct {
	ConfigFile string `mapstructure:"config"`

	Log     log.Config         `mapstructure:"log"`
	Session synchealth.Config  `mapstructure:"session"`
	Hub     hubrpc.Config      `mapstructure:"hub"`
	Health  healthlog.Config   `mapstructure:"health"`
	Push    metrics.PushConfig `mapstructure:"metrics-push"`
	Serve   ServeConfig        `mapstructure:"serve"`
}

// ServeConfig configures the in-memory hub started by the serve command.
type ServeConfig struct {
	ID string `mapstructure:"id"`
	// Seed is the number of random records the hub starts with.
	Seed int `mapstructure:"seed"`
	// Span is the time range, ending now, the seeded records are spread over.
	Span time.Duration `mapstructure:"span"`
	// Peers are advertised to clients as known peers.
	Peers []string `mapstructure:"peers"`
	// MetricsAddr exposes prometheus metrics if set.
	MetricsAddr string `mapstructure:"metrics-addr"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Log:     log.DefaultConfig(),
		Session: synchealth.DefaultConfig(),
		Hub:     hubrpc.DefaultConfig(),
		Health:  healthlog.DefaultConfig(),
		Push:    metrics.DefaultPushConfig(),
		Serve: ServeConfig{
			ID:   "hub",
			Span: time.Hour,
		},
	}
}

// LoadConfig reads the config file at fileLocation into vip. An empty location
// leaves vip untouched.
func LoadConfig(fileLocation string, vip *viper.Viper) error {
	if fileLocation == "" {
		return nil
	}
	vip.SetConfigFile(fileLocation)
	if err := vip.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", fileLocation, err)
	}
	return nil
}

// Load decodes the settings of vip on top of cfg.
func Load(vip *viper.Viper, cfg *Config) error {
	hook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.TextUnmarshallerHookFunc(),
	)
	opts := []viper.DecoderConfigOption{
		viper.DecodeHook(hook),
		WithIgnoreUntagged(),
		WithErrorUnused(),
	}
	if err := vip.Unmarshal(cfg, opts...); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	return nil
}

func WithIgnoreUntagged() viper.DecoderConfigOption {
	return func(cfg *mapstructure.DecoderConfig) {
		cfg.IgnoreUntaggedFields = true
	}
}

func WithErrorUnused() viper.DecoderConfigOption {
	return func(cfg *mapstructure.DecoderConfig) {
		cfg.ErrorUnused = true
	}
}
