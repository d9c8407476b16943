package hubrpc

import (
	"context"

	"github.com/spacemeshos/synchealth/common/types"
	"github.com/spacemeshos/synchealth/synctrie"
)

//go:generate mockgen -typed -package=mocks -destination=./mocks/mocks.go -source=./interface.go

// Backend is the replica served by a Server.
type Backend interface {
	GetMetadata(ctx context.Context, prefix []byte) (*synctrie.NodeMetadata, error)
	GetIdentifiersByPrefix(ctx context.Context, prefix []byte) ([]types.RecordID, error)
	GetRecordsByIdentifiers(ctx context.Context, ids []types.RecordID) ([]types.Record, error)
	SubmitRecord(ctx context.Context, rec types.Record) error
	ListKnownPeers(ctx context.Context) ([]types.Peer, error)
	Info(ctx context.Context) (types.HubInfo, error)
}
