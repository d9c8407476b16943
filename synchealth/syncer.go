// Package synchealth checks how well peers are synchronized with a primary replica.
//
// A run samples peers known to the primary and processes them one at a time: it
// connects to the peer, counts the messages both replicas hold in the configured
// window and, if the counts differ, finds and copies the missing records in both
// directions. The outcome for every peer is appended to the health log.
package synchealth

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/spacemeshos/synchealth/common/types"
	"github.com/spacemeshos/synchealth/healthlog"
	"github.com/spacemeshos/synchealth/repair"
	"github.com/spacemeshos/synchealth/synctrie"
	"github.com/spacemeshos/synchealth/timeprefix"
)

// Stage is the step of a peer's pass that failed.
type Stage string

const (
	StageConnect Stage = "connect"
	StageMeasure Stage = "measure"
	StagePersist Stage = "persist"
)

// PeerFailure describes a peer whose pass didn't complete.
type PeerFailure struct {
	Peer  types.Peer
	Stage Stage
	Err   error
}

// Session is the state of a single run.
type Session struct {
	RunID  string
	Window types.TimeWindow
	// Peers are the sampled peers with resolved addresses.
	Peers []types.Peer
	// Records holds the health records persisted during the run.
	Records  []types.HealthRecord
	Failures []PeerFailure
}

func (s *Session) fail(peer types.Peer, stage Stage, err error) {
	s.Failures = append(s.Failures, PeerFailure{Peer: peer, Stage: stage, Err: err})
}

// Opt is an option for Syncer.
type Opt func(*Syncer)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Opt {
	return func(s *Syncer) {
		s.logger = logger
	}
}

// WithConfig sets the config.
func WithConfig(cfg Config) Opt {
	return func(s *Syncer) {
		s.cfg = cfg
	}
}

// WithClock sets the clock used to resolve the window and timestamp records.
func WithClock(clock clockwork.Clock) Opt {
	return func(s *Syncer) {
		s.clock = clock
	}
}

// WithRand sets the source of randomness used to sample peers.
func WithRand(rng *rand.Rand) Opt {
	return func(s *Syncer) {
		s.rng = rng
	}
}

// WithCodec sets the time prefix codec.
func WithCodec(codec timeprefix.Codec) Opt {
	return func(s *Syncer) {
		s.codec = codec
	}
}

// Syncer runs sync health sessions against a primary replica.
type Syncer struct {
	logger *zap.Logger
	cfg    Config
	clock  clockwork.Clock
	rng    *rand.Rand
	codec  timeprefix.Codec

	primary  Primary
	dialer   Dialer
	reporter Reporter
}

// New creates a Syncer.
func New(primary Primary, dialer Dialer, reporter Reporter, opts ...Opt) *Syncer {
	s := &Syncer{
		logger:   zap.NewNop(),
		cfg:      DefaultConfig(),
		clock:    clockwork.NewRealClock(),
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		codec:    timeprefix.Default(),
		primary:  primary,
		dialer:   dialer,
		reporter: reporter,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Window resolves the configured times of day against the date of now.
func (s *Syncer) Window(now time.Time) (types.TimeWindow, error) {
	start, err := timeprefix.ParseTimeOfDay(s.cfg.StartTime, now)
	if err != nil {
		return types.TimeWindow{}, fmt.Errorf("start time: %w", err)
	}
	stop, err := timeprefix.ParseTimeOfDay(s.cfg.StopTime, now)
	if err != nil {
		return types.TimeWindow{}, fmt.Errorf("stop time: %w", err)
	}
	window := types.TimeWindow{Start: start, Stop: stop}
	if err := window.Validate(); err != nil {
		return types.TimeWindow{}, fmt.Errorf("%w: %w", timeprefix.ErrInvalidTime, err)
	}
	return window, nil
}

// Run performs one session. Failures of individual peers are recorded in the
// session and don't fail the run; an error is returned only if the window can't
// be resolved, peers can't be listed, or ctx is canceled.
func (s *Syncer) Run(ctx context.Context) (*Session, error) {
	started := s.clock.Now()
	window, err := s.Window(started)
	if err != nil {
		return nil, err
	}
	session := &Session{
		RunID:  uuid.NewString(),
		Window: window,
	}
	logger := s.logger.With(zap.String("run_id", session.RunID))
	logger.Info("starting sync health run", zap.Object("window", window))

	session.Peers, err = s.selectPeers(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("selected peers", zap.Int("count", len(session.Peers)))
	selectedPeers.WithLabelValues().Set(float64(len(session.Peers)))
	for _, peer := range session.Peers {
		if err := ctx.Err(); err != nil {
			return session, err
		}
		s.processPeer(ctx, logger.With(zap.Object("peer", peer)), session, peer)
	}
	runDuration.WithLabelValues().Observe(s.clock.Since(started).Seconds())
	logger.Info("sync health run done",
		zap.Int("records", len(session.Records)),
		zap.Int("failures", len(session.Failures)),
	)
	return session, nil
}

func (s *Syncer) processPeer(ctx context.Context, logger *zap.Logger, session *Session, peer types.Peer) {
	conn, err := s.dialer.Connect(ctx, peer.Address)
	if err != nil {
		logger.Warn("failed to connect to peer", zap.Error(err))
		peerOutcomes.WithLabelValues(outcomeConnectFailed).Inc()
		session.fail(peer, StageConnect, err)
		return
	}
	defer func() {
		if err := conn.Close(); err != nil {
			logger.Debug("failed to close connection", zap.Error(err))
		}
	}()

	primary := s.cached(s.primary)
	remote := s.cached(conn)
	stats, err := s.measure(ctx, primary, remote, session.Window)
	if err != nil {
		logger.Warn("failed to measure health", zap.Error(err))
		peerOutcomes.WithLabelValues(outcomeMeasureFailed).Inc()
		session.fail(peer, StageMeasure, err)
		return
	}
	logger.Info("measured health", zap.Object("stats", stats))
	messageDiff.WithLabelValues().Observe(float64(stats.Diff()))

	var (
		result    types.RepairResult
		repairErr error
	)
	switch {
	case stats.InSync():
		peerOutcomes.WithLabelValues(outcomeInSync).Inc()
	case !s.cfg.Investigate:
		peerOutcomes.WithLabelValues(outcomeDiverged).Inc()
	default:
		repairer := repair.New(
			repair.WithLogger(logger),
			repair.WithConfig(s.cfg.Repair),
			repair.WithCodec(s.codec),
		)
		_, result, repairErr = repairer.Run(ctx, primary, remote, session.Window)
		if repairErr != nil {
			logger.Warn("failed to investigate", zap.Error(repairErr))
			peerOutcomes.WithLabelValues(outcomeRepairFailed).Inc()
			result = types.RepairResult{}
		} else {
			peerOutcomes.WithLabelValues(outcomeDiverged).Inc()
			reportTransfers("to_peer", result.ToPeer)
			reportTransfers("to_primary", result.ToPrimary)
		}
	}

	rec := healthlog.NewRecord(session.RunID, s.clock.Now(), session.Window, s.cfg.Primary, peer, stats, result, repairErr)
	if err := s.reporter.Append(rec); err != nil {
		logger.Error("failed to persist health record", zap.Error(err))
		peerOutcomes.WithLabelValues(outcomePersistFailed).Inc()
		session.fail(peer, StagePersist, err)
		return
	}
	session.Records = append(session.Records, rec)
}

func (s *Syncer) measure(
	ctx context.Context,
	primary, peer synctrie.Retriever,
	window types.TimeWindow,
) (types.MessageStats, error) {
	counter := synctrie.NewCounter(
		synctrie.WithCounterLogger(s.logger),
		synctrie.WithCounterConfig(s.cfg.Counter),
		synctrie.WithCodec(s.codec),
	)
	var (
		stats types.MessageStats
		err   error
	)
	stats.Primary, err = counter.Count(ctx, primary, window)
	if err != nil {
		return stats, fmt.Errorf("count primary: %w", err)
	}
	stats.Peer, err = counter.Count(ctx, peer, window)
	if err != nil {
		return stats, fmt.Errorf("count peer: %w", err)
	}
	return stats, nil
}

// cachedReplica serves metadata from a per-pass cache, so that the identifier pass
// doesn't repeat the queries made while counting.
type cachedReplica struct {
	repair.Replica
	metadata *synctrie.CachingRetriever
}

func (s *Syncer) cached(r repair.Replica) cachedReplica {
	return cachedReplica{Replica: r, metadata: synctrie.NewCachingRetriever(r, s.cfg.CacheSize)}
}

func (c cachedReplica) GetMetadata(ctx context.Context, prefix []byte) (*synctrie.NodeMetadata, error) {
	return c.metadata.GetMetadata(ctx, prefix)
}
