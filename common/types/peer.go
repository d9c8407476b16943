package types

import "go.uber.org/zap/zapcore"

// Peer describes a replica known to the primary.
type Peer struct {
	ID string `json:"id"`
	// Address is either a multiaddr (/ip4/1.2.3.4/tcp/2283) or host:port.
	Address string `json:"address"`
}

// String implements fmt.Stringer.
func (p Peer) String() string {
	if p.ID == "" {
		return p.Address
	}
	return p.ID
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (p Peer) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("id", p.ID)
	enc.AddString("address", p.Address)
	return nil
}

// HubInfo describes a replica.
type HubInfo struct {
	ID          string `json:"id"`
	NumMessages uint64 `json:"numMessages"`
}
