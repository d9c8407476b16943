package types

import (
	"time"

	"go.uber.org/zap/zapcore"
)

// TransferOutcome is the result of submitting one missing record to a replica.
type TransferOutcome struct {
	ID      RecordID `json:"id"`
	Success bool     `json:"success"`
	Reason  string   `json:"reason,omitempty"`
}

// RepairResult holds transfer outcomes for both directions of a repair.
type RepairResult struct {
	ToPeer    []TransferOutcome `json:"toPeer"`
	ToPrimary []TransferOutcome `json:"toPrimary"`
}

// Succeeded returns the number of successful transfers in outcomes.
func Succeeded(outcomes []TransferOutcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Success {
			n++
		}
	}
	return n
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (r RepairResult) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	ok := Succeeded(r.ToPeer)
	enc.AddInt("to_peer_ok", ok)
	enc.AddInt("to_peer_failed", len(r.ToPeer)-ok)
	ok = Succeeded(r.ToPrimary)
	enc.AddInt("to_primary_ok", ok)
	enc.AddInt("to_primary_failed", len(r.ToPrimary)-ok)
	return nil
}

// HealthRecord is one entry of the sync health log. It is written once per peer per run.
type HealthRecord struct {
	RunID       string            `json:"runId"`
	Time        time.Time         `json:"time"`
	Window      TimeWindow        `json:"window"`
	Primary     string            `json:"primary"`
	Peer        string            `json:"peer"`
	PeerAddress string            `json:"peerAddress"`
	Stats       MessageStats      `json:"stats"`
	ToPeer      []TransferOutcome `json:"toPeer"`
	ToPrimary   []TransferOutcome `json:"toPrimary"`
	Error       string            `json:"error,omitempty"`
}
