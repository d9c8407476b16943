package repair

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/spacemeshos/synchealth/common/types"
)

var (
	// ErrSubmissionFailed is the reason recorded for records rejected by the target.
	ErrSubmissionFailed = errors.New("submission failed")
	// ErrNotFound is the reason recorded for records the source could not return.
	ErrNotFound = errors.New("record not found on source")
)

// Transfer copies the records with the given ids from one replica to another. Records are
// fetched from the source in batches of at most BatchSize and submitted one at a time.
// Exactly one outcome is returned per identifier: a rejected submission or a failed
// batch fetch is recorded and the remaining identifiers are still attempted.
// No calls are made for an empty id list.
func (r *Repairer) Transfer(
	ctx context.Context,
	from RecordSource,
	to RecordSink,
	ids []types.RecordID,
) []types.TransferOutcome {
	if len(ids) == 0 {
		return []types.TransferOutcome{}
	}
	batchSize := r.cfg.BatchSize
	if batchSize <= 0 {
		batchSize = len(ids)
	}
	outcomes := make([]types.TransferOutcome, 0, len(ids))
	for begin := 0; begin < len(ids); begin += batchSize {
		batch := ids[begin:min(begin+batchSize, len(ids))]
		outcomes = append(outcomes, transferBatch(ctx, r.logger, from, to, batch)...)
	}
	return outcomes
}

func transferBatch(
	ctx context.Context,
	logger *zap.Logger,
	from RecordSource,
	to RecordSink,
	ids []types.RecordID,
) []types.TransferOutcome {
	outcomes := make([]types.TransferOutcome, 0, len(ids))
	records, err := from.GetRecordsByIdentifiers(ctx, ids)
	if err != nil {
		logger.Debug("failed to fetch records", zap.Int("count", len(ids)), zap.Error(err))
		for _, id := range ids {
			outcomes = append(outcomes, failure(id, fmt.Errorf("fetch: %w", err)))
		}
		return outcomes
	}
	byID := make(map[string]types.Record, len(records))
	for _, rec := range records {
		byID[string(rec.ID)] = rec
	}
	for _, id := range ids {
		rec, ok := byID[string(id)]
		if !ok {
			outcomes = append(outcomes, failure(id, ErrNotFound))
			continue
		}
		if err := to.SubmitRecord(ctx, rec); err != nil {
			logger.Debug("record rejected",
				zap.Stringer("id", id),
				zap.Error(err),
			)
			outcomes = append(outcomes, failure(id, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)))
			continue
		}
		outcomes = append(outcomes, types.TransferOutcome{ID: id, Success: true})
	}
	return outcomes
}

func failure(id types.RecordID, err error) types.TransferOutcome {
	return types.TransferOutcome{ID: id, Reason: err.Error()}
}
