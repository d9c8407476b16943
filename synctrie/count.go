package synctrie

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spacemeshos/synchealth/common/types"
	"github.com/spacemeshos/synchealth/timeprefix"
)

// CountInWindow returns the number of messages in [start, stop) by summing the counts of
// the coarsest nodes contained in the window.
func CountInWindow(ctx context.Context, r Retriever, start, stop []byte) (uint64, error) {
	var total uint64
	err := TraverseWindow(ctx, r, start, stop, func(_ context.Context, child ChildRef) error {
		total += child.NumMessages
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// CountInWindowStepwise counts messages in the window by fetching the node of every
// second in it. It needs one request per second of the window and is only meant for
// short windows. Seconds without messages have no node and count as zero.
func CountInWindowStepwise(ctx context.Context, r Retriever, codec timeprefix.Codec, window types.TimeWindow) (uint64, error) {
	var total uint64
	for t := window.Start; t.Before(window.Stop); t = t.Add(time.Second) {
		p, err := codec.Encode(t)
		if err != nil {
			return 0, err
		}
		md, err := r.GetMetadata(ctx, p)
		switch {
		case errors.Is(err, ErrUnavailable):
			continue
		case err != nil:
			return 0, fmt.Errorf("get metadata %s: %w", p, err)
		}
		total += md.NumMessages
	}
	return total, nil
}

// CounterConfig configures a Counter.
type CounterConfig struct {
	// StepwiseFallback enables counting second by second when the common prefix
	// node of a short window is not available.
	StepwiseFallback bool `mapstructure:"stepwise-fallback"`
	// StepwiseMaxSpan is the longest window for which the stepwise fallback is used.
	StepwiseMaxSpan time.Duration `mapstructure:"stepwise-max-span"`
}

// DefaultCounterConfig returns the default CounterConfig.
func DefaultCounterConfig() CounterConfig {
	return CounterConfig{
		StepwiseFallback: false,
		StepwiseMaxSpan:  time.Minute,
	}
}

// CounterOpt is an option for Counter.
type CounterOpt func(*Counter)

// WithCounterLogger sets the logger of the Counter.
func WithCounterLogger(logger *zap.Logger) CounterOpt {
	return func(c *Counter) {
		c.logger = logger
	}
}

// WithCounterConfig sets the config of the Counter.
func WithCounterConfig(cfg CounterConfig) CounterOpt {
	return func(c *Counter) {
		c.cfg = cfg
	}
}

// WithCodec sets the codec used to encode window boundaries.
func WithCodec(codec timeprefix.Codec) CounterOpt {
	return func(c *Counter) {
		c.codec = codec
	}
}

// Counter counts messages of a replica within time windows.
type Counter struct {
	logger *zap.Logger
	cfg    CounterConfig
	codec  timeprefix.Codec
}

// NewCounter creates a Counter.
func NewCounter(opts ...CounterOpt) *Counter {
	c := &Counter{
		logger: zap.NewNop(),
		cfg:    DefaultCounterConfig(),
		codec:  timeprefix.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Count returns the number of messages r holds in the window.
func (c *Counter) Count(ctx context.Context, r Retriever, window types.TimeWindow) (uint64, error) {
	start, stop, err := EncodeWindow(c.codec, window)
	if err != nil {
		return 0, err
	}
	n, err := CountInWindow(ctx, r, start, stop)
	if err == nil || !errors.Is(err, ErrUnavailable) || !c.cfg.StepwiseFallback ||
		window.Duration() > c.cfg.StepwiseMaxSpan {
		return n, err
	}
	c.logger.Debug("prefix count unavailable, counting stepwise",
		zap.Object("window", window),
		zap.Error(err),
	)
	return CountInWindowStepwise(ctx, r, c.codec, window)
}

// EncodeWindow encodes both boundaries of the window.
func EncodeWindow(codec timeprefix.Codec, window types.TimeWindow) (start, stop timeprefix.Prefix, err error) {
	if start, err = codec.Encode(window.Start); err != nil {
		return nil, nil, fmt.Errorf("encode window start: %w", err)
	}
	if stop, err = codec.Encode(window.Stop); err != nil {
		return nil, nil, fmt.Errorf("encode window stop: %w", err)
	}
	return start, stop, nil
}
