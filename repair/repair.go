// Package repair finds records that only one of two replicas holds within a time
// window and copies them to the replica that lacks them. Records are never deleted:
// absence on one side is always treated as something to heal.
package repair

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/synchealth/common/types"
	"github.com/spacemeshos/synchealth/synctrie"
	"github.com/spacemeshos/synchealth/timeprefix"
)

// Config configures a Repairer.
type Config struct {
	// BatchSize is the maximum number of records fetched in a single request.
	BatchSize int `mapstructure:"batch-size"`
	// DryRun disables transfers; differences are only reported.
	DryRun bool `mapstructure:"dry-run"`
}

// DefaultConfig returns the default Config.
func DefaultConfig() Config {
	return Config{
		BatchSize: 100,
		DryRun:    false,
	}
}

// Opt is an option for Repairer.
type Opt func(*Repairer)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Opt {
	return func(r *Repairer) {
		r.logger = logger
	}
}

// WithConfig sets the config.
func WithConfig(cfg Config) Opt {
	return func(r *Repairer) {
		r.cfg = cfg
	}
}

// WithCodec sets the codec used to encode window boundaries.
func WithCodec(codec timeprefix.Codec) Opt {
	return func(r *Repairer) {
		r.codec = codec
	}
}

// Repairer investigates and repairs divergence between two replicas.
type Repairer struct {
	logger *zap.Logger
	cfg    Config
	codec  timeprefix.Codec
}

// New creates a Repairer.
func New(opts ...Opt) *Repairer {
	r := &Repairer{
		logger: zap.NewNop(),
		cfg:    DefaultConfig(),
		codec:  timeprefix.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Investigation is the symmetric difference of two replicas within a window.
type Investigation struct {
	// PrimaryCount and PeerCount are the numbers of distinct identifiers found.
	PrimaryCount  int
	PeerCount     int
	OnlyInPrimary []types.RecordID
	OnlyInPeer    []types.RecordID
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (inv *Investigation) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("primary_ids", inv.PrimaryCount)
	enc.AddInt("peer_ids", inv.PeerCount)
	enc.AddInt("only_in_primary", len(inv.OnlyInPrimary))
	enc.AddInt("only_in_peer", len(inv.OnlyInPeer))
	return nil
}

// Investigate collects the identifiers each replica holds in the window and diffs them.
func (r *Repairer) Investigate(ctx context.Context, primary, peer Replica, window types.TimeWindow) (*Investigation, error) {
	start, stop, err := synctrie.EncodeWindow(r.codec, window)
	if err != nil {
		return nil, err
	}
	primaryIDs, err := synctrie.CollectIdentifiers(ctx, primary, primary, start, stop)
	if err != nil {
		return nil, fmt.Errorf("collect primary identifiers: %w", err)
	}
	peerIDs, err := synctrie.CollectIdentifiers(ctx, peer, peer, start, stop)
	if err != nil {
		return nil, fmt.Errorf("collect peer identifiers: %w", err)
	}
	onlyInPrimary, onlyInPeer := Diff(primaryIDs, peerIDs)
	return &Investigation{
		PrimaryCount:  len(idSet(primaryIDs)),
		PeerCount:     len(idSet(peerIDs)),
		OnlyInPrimary: onlyInPrimary,
		OnlyInPeer:    onlyInPeer,
	}, nil
}

// Repair transfers missing records in both directions. The directions are independent:
// failures in one don't affect the other.
func (r *Repairer) Repair(ctx context.Context, primary, peer Replica, inv *Investigation) types.RepairResult {
	if r.cfg.DryRun {
		return types.RepairResult{ToPeer: []types.TransferOutcome{}, ToPrimary: []types.TransferOutcome{}}
	}
	return types.RepairResult{
		ToPeer:    r.Transfer(ctx, primary, peer, inv.OnlyInPrimary),
		ToPrimary: r.Transfer(ctx, peer, primary, inv.OnlyInPeer),
	}
}

// Run investigates the window and repairs the differences found.
func (r *Repairer) Run(ctx context.Context, primary, peer Replica, window types.TimeWindow) (*Investigation, types.RepairResult, error) {
	inv, err := r.Investigate(ctx, primary, peer, window)
	if err != nil {
		return nil, types.RepairResult{}, err
	}
	r.logger.Debug("investigated window",
		zap.Object("window", window),
		zap.Object("investigation", inv),
	)
	result := r.Repair(ctx, primary, peer, inv)
	r.logger.Info("repair complete",
		zap.Object("window", window),
		zap.Object("result", result),
		zap.Bool("dry_run", r.cfg.DryRun),
	)
	return inv, result, nil
}
