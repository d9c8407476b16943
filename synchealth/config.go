package synchealth

import (
	"github.com/spacemeshos/synchealth/repair"
	"github.com/spacemeshos/synchealth/synctrie"
)

// Config configures a Syncer.
type Config struct {
	// Primary is the address of the primary replica. Peers advertising the same
	// address are not compared with it.
	Primary string `mapstructure:"primary"`
	// StartTime and StopTime bound the checked window as times of day,
	// resolved against the current date when a run starts.
	StartTime string `mapstructure:"start-time"`
	StopTime  string `mapstructure:"stop-time"`
	// MaxPeers is the number of peers sampled per run. Zero checks every known peer.
	MaxPeers int `mapstructure:"max-peers"`
	// Investigate enables finding and repairing the difference when counts don't match.
	Investigate bool `mapstructure:"investigate"`
	// CacheSize is the number of trie nodes cached per replica during a peer's pass.
	CacheSize int `mapstructure:"cache-size"`

	Counter synctrie.CounterConfig `mapstructure:"counter"`
	Repair  repair.Config          `mapstructure:"repair"`
}

// DefaultConfig returns the default Config.
func DefaultConfig() Config {
	return Config{
		StartTime:   "00:00:00",
		StopTime:    "23:59:59",
		MaxPeers:    3,
		Investigate: true,
		CacheSize:   synctrie.DefaultCacheSize,
		Counter:     synctrie.DefaultCounterConfig(),
		Repair:      repair.DefaultConfig(),
	}
}
