// Package synctrie walks prefix-indexed Merkle tries of timestamp ordered records
// within time windows, counting and collecting records with as few node fetches
// as possible.
package synctrie

import (
	"errors"
	"fmt"

	"go.uber.org/zap/zapcore"
)

var (
	// ErrUnavailable is returned when the requested node doesn't exist in the replica.
	ErrUnavailable = errors.New("trie node unavailable")
	// ErrTimeout is returned when a request deadline elapses.
	ErrTimeout = errors.New("request timed out")
)

// ChildRef references a child of a trie node.
type ChildRef struct {
	Prefix      []byte `json:"prefix"`
	NumMessages uint64 `json:"numMessages"`
}

// NodeMetadata describes a single trie node. It is never mutated after it is returned.
type NodeMetadata struct {
	Prefix      []byte     `json:"prefix"`
	NumMessages uint64     `json:"numMessages"`
	Children    []ChildRef `json:"children"`
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (m *NodeMetadata) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("prefix", FormatPrefix(m.Prefix))
	enc.AddUint64("messages", m.NumMessages)
	enc.AddInt("children", len(m.Children))
	return nil
}

// FormatPrefix renders a prefix for logs. The timestamp part is printable,
// anything beyond it is hex encoded.
func FormatPrefix(p []byte) string {
	for i, b := range p {
		if b < '0' || b > '9' {
			return fmt.Sprintf("%s:%x", p[:i], p[i:])
		}
	}
	return string(p)
}
