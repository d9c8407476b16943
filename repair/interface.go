package repair

import (
	"context"

	"github.com/spacemeshos/synchealth/common/types"
	"github.com/spacemeshos/synchealth/synctrie"
)

//go:generate mockgen -typed -package=mocks -destination=./mocks/mocks.go -source=./interface.go

// RecordSource returns full records for identifiers. Identifiers unknown to the
// source are omitted from the result.
type RecordSource interface {
	GetRecordsByIdentifiers(ctx context.Context, ids []types.RecordID) ([]types.Record, error)
}

// RecordSink accepts a single record.
type RecordSink interface {
	SubmitRecord(ctx context.Context, rec types.Record) error
}

// Replica is one side of a repair.
type Replica interface {
	synctrie.Retriever
	synctrie.IDFetcher
	RecordSource
	RecordSink
}
