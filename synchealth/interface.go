package synchealth

import (
	"context"

	"github.com/spacemeshos/synchealth/common/types"
	"github.com/spacemeshos/synchealth/repair"
)

//go:generate mockgen -typed -package=mocks -destination=./mocks/mocks.go -source=./interface.go

// Primary is the replica all peers are compared with.
type Primary interface {
	repair.Replica
	ListKnownPeers(ctx context.Context) ([]types.Peer, error)
}

// Conn is an established connection to a peer replica.
type Conn interface {
	repair.Replica
	Close() error
}

// Dialer connects to peers.
type Dialer interface {
	Connect(ctx context.Context, addr string) (Conn, error)
}

// Reporter persists health records.
type Reporter interface {
	Append(rec types.HealthRecord) error
}
