package synctrie

import (
	"context"

	"github.com/spacemeshos/synchealth/common/types"
)

//go:generate mockgen -typed -package=mocks -destination=./mocks/mocks.go -source=./interface.go

// Retriever fetches trie node metadata by prefix. It is implemented both against remote
// replicas and in-process tries, and callers must not depend on which one they use.
type Retriever interface {
	// GetMetadata returns the metadata of the node with the given prefix.
	// It fails with ErrUnavailable when the node doesn't exist and with ErrTimeout
	// when the request deadline elapses.
	GetMetadata(ctx context.Context, prefix []byte) (*NodeMetadata, error)
}

// IDFetcher lists all record identifiers under a prefix.
type IDFetcher interface {
	GetIdentifiersByPrefix(ctx context.Context, prefix []byte) ([]types.RecordID, error)
}
