package config

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

const configFile = `
[session]
start-time = "01:00"
stop-time = "02:30:00"
max-peers = 5

[session.counter]
stepwise-fallback = true
stepwise-max-span = "30s"

[session.repair]
dry-run = true

[hub]
request-timeout = "3s"

[health]
path = "/var/log/synchealth.jsonl"

[serve]
peers = ["10.0.0.1:2283", "10.0.0.2:2283"]
`

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/synchealth.toml", []byte(configFile), 0o644))
	vip := viper.New()
	vip.SetFs(fs)
	require.NoError(t, LoadConfig("/etc/synchealth.toml", vip))

	cfg := DefaultConfig()
	require.NoError(t, Load(vip, &cfg))
	require.Equal(t, "01:00", cfg.Session.StartTime)
	require.Equal(t, "02:30:00", cfg.Session.StopTime)
	require.Equal(t, 5, cfg.Session.MaxPeers)
	require.True(t, cfg.Session.Counter.StepwiseFallback)
	require.Equal(t, 30*time.Second, cfg.Session.Counter.StepwiseMaxSpan)
	require.True(t, cfg.Session.Repair.DryRun)
	require.Equal(t, 3*time.Second, cfg.Hub.RequestTimeout)
	require.Equal(t, "/var/log/synchealth.jsonl", cfg.Health.Path)
	require.Equal(t, []string{"10.0.0.1:2283", "10.0.0.2:2283"}, cfg.Serve.Peers)

	// values missing from the file keep their defaults
	def := DefaultConfig()
	require.Equal(t, def.Session.Repair.BatchSize, cfg.Session.Repair.BatchSize)
	require.Equal(t, def.Hub.ConnectTimeout, cfg.Hub.ConnectTimeout)
	require.Equal(t, def.Session.Investigate, cfg.Session.Investigate)
}

func TestLoadUnknownKey(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg.toml", []byte("[session]\nmax-peerz = 1\n"), 0o644))
	vip := viper.New()
	vip.SetFs(fs)
	require.NoError(t, LoadConfig("/cfg.toml", vip))
	cfg := DefaultConfig()
	require.Error(t, Load(vip, &cfg))
}

func TestLoadConfigMissing(t *testing.T) {
	vip := viper.New()
	vip.SetFs(afero.NewMemMapFs())
	require.ErrorContains(t, LoadConfig("/missing.toml", vip), "failed to read config file")
	require.NoError(t, LoadConfig("", vip))
}
