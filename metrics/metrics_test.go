package metrics

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestPush(t *testing.T) {
	var requests atomic.Int32
	var path atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		path.Store(r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	require.NoError(t, Push(PushConfig{}, reg, "local"))
	require.Zero(t, requests.Load())

	cfg := DefaultPushConfig()
	cfg.URL = srv.URL
	require.NoError(t, Push(cfg, reg, "local"))
	require.EqualValues(t, 1, requests.Load())
	require.Equal(t, "/metrics/job/synchealth/instance/local", path.Load())
}
