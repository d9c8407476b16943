package hubrpc

import "time"

// Config configures the hub transport.
type Config struct {
	// Listen is the address the serve command binds to.
	Listen string `mapstructure:"listen"`
	// RequestTimeout bounds every remote call.
	RequestTimeout time.Duration `mapstructure:"request-timeout"`
	// ConnectTimeout bounds each connection attempt.
	ConnectTimeout time.Duration `mapstructure:"connect-timeout"`
	// RequestsPerSecond limits the rate of calls to a single hub. Zero disables the limit.
	RequestsPerSecond float64 `mapstructure:"requests-per-second"`
	Burst             int     `mapstructure:"burst"`
}

// DefaultConfig returns the default Config.
func DefaultConfig() Config {
	return Config{
		Listen:            ":2283",
		RequestTimeout:    2 * time.Second,
		ConnectTimeout:    5 * time.Second,
		RequestsPerSecond: 0,
		Burst:             10,
	}
}
