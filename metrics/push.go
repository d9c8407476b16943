package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// PushConfig configures pushing metrics to a Prometheus Pushgateway.
type PushConfig struct {
	// URL of the gateway. Metrics are not pushed if it is empty.
	URL      string            `mapstructure:"url"`
	Job      string            `mapstructure:"job"`
	Username string            `mapstructure:"username"`
	Password string            `mapstructure:"password"`
	Headers  map[string]string `mapstructure:"headers"`
}

// DefaultPushConfig returns the default PushConfig.
func DefaultPushConfig() PushConfig {
	return PushConfig{Job: "synchealth"}
}

// Push sends the metrics gathered by g to the gateway once, grouped by instance.
// A run is a batch job, so metrics are pushed when it completes rather than scraped.
func Push(cfg PushConfig, g prometheus.Gatherer, instance string) error {
	if cfg.URL == "" {
		return nil
	}
	header := http.Header{}
	for k, v := range cfg.Headers {
		header.Add(k, v)
	}
	pusher := push.New(cfg.URL, cfg.Job).Gatherer(g).
		Grouping("instance", instance).
		Header(header)
	if cfg.Username != "" && cfg.Password != "" {
		pusher = pusher.BasicAuth(cfg.Username, cfg.Password)
	}
	if err := pusher.Push(); err != nil {
		return fmt.Errorf("push metrics to %s: %w", cfg.URL, err)
	}
	return nil
}
