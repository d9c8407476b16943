package types

import (
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap/zapcore"
)

// TimeWindow is the half-open interval [Start, Stop).
type TimeWindow struct {
	Start time.Time `json:"start"`
	Stop  time.Time `json:"stop"`
}

// Validate checks that the window is not empty.
func (w TimeWindow) Validate() error {
	if !w.Stop.After(w.Start) {
		return fmt.Errorf("empty window: stop %s is not after start %s",
			w.Stop.Format(time.RFC3339), w.Start.Format(time.RFC3339))
	}
	return nil
}

// Duration returns the length of the window.
func (w TimeWindow) Duration() time.Duration {
	return w.Stop.Sub(w.Start)
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (w TimeWindow) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddTime("start", w.Start)
	enc.AddTime("stop", w.Stop)
	return nil
}

// MessageStats holds the number of messages two replicas have in the same window.
type MessageStats struct {
	Primary uint64
	Peer    uint64
}

// Diff returns the absolute difference between the counts.
func (s MessageStats) Diff() uint64 {
	if s.Primary > s.Peer {
		return s.Primary - s.Peer
	}
	return s.Peer - s.Primary
}

// DiffPercentage returns Diff relative to the primary count.
// The second value is false when the primary has no messages and the ratio is undefined.
func (s MessageStats) DiffPercentage() (float64, bool) {
	if s.Primary == 0 {
		return 0, false
	}
	return float64(s.Diff()) / float64(s.Primary), true
}

// InSync returns true if both replicas report the same count.
func (s MessageStats) InSync() bool {
	return s.Primary == s.Peer
}

type messageStatsJSON struct {
	Primary        uint64   `json:"primary"`
	Peer           uint64   `json:"peer"`
	Diff           uint64   `json:"diff"`
	DiffPercentage *float64 `json:"diffPercentage"`
}

// MarshalJSON encodes the stats together with the derived values.
// The percentage is null when it is undefined.
func (s MessageStats) MarshalJSON() ([]byte, error) {
	out := messageStatsJSON{Primary: s.Primary, Peer: s.Peer, Diff: s.Diff()}
	if pct, ok := s.DiffPercentage(); ok {
		out.DiffPercentage = &pct
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the counts; derived values are recomputed on demand.
func (s *MessageStats) UnmarshalJSON(data []byte) error {
	var in messageStatsJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	s.Primary = in.Primary
	s.Peer = in.Peer
	return nil
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (s MessageStats) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint64("primary", s.Primary)
	enc.AddUint64("peer", s.Peer)
	enc.AddUint64("diff", s.Diff())
	if pct, ok := s.DiffPercentage(); ok {
		enc.AddFloat64("diff_percentage", pct)
	}
	return nil
}
