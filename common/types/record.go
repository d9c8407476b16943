package types

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/zeebo/blake3"

	"github.com/spacemeshos/synchealth/timeprefix"
)

const (
	// HashLength is the number of bytes of the payload hash in a RecordID.
	HashLength = 20
	// RecordIDLength is the total length of a RecordID.
	RecordIDLength = timeprefix.Width + HashLength
)

var (
	// ErrInvalidRecord is returned when a record's identifier doesn't match its content.
	ErrInvalidRecord = errors.New("invalid record")
	// ErrDuplicateRecord is returned when a submitted record is already stored.
	ErrDuplicateRecord = errors.New("duplicate record")
)

// RecordID is a content addressed reference to a single message. It starts with the
// time prefix of the message, so that identifiers sort chronologically.
type RecordID []byte

// String implements fmt.Stringer.
func (id RecordID) String() string {
	return hex.EncodeToString(id)
}

// ShortString returns an abbreviated form of the id for logging.
func (id RecordID) ShortString() string {
	if len(id) <= timeprefix.Width+4 {
		return id.String()
	}
	return hex.EncodeToString(id[:timeprefix.Width+4])
}

// Compare compares two identifiers byte by byte.
func (id RecordID) Compare(other RecordID) int {
	return bytes.Compare(id, other)
}

// Timestamp returns the time encoded in the identifier.
func (id RecordID) Timestamp() (time.Time, error) {
	return timeprefix.Decode(id)
}

// MarshalText encodes the id as hex.
func (id RecordID) MarshalText() ([]byte, error) {
	out := make([]byte, hex.EncodedLen(len(id)))
	hex.Encode(out, id)
	return out, nil
}

// UnmarshalText decodes a hex encoded id.
func (id *RecordID) UnmarshalText(text []byte) error {
	buf := make([]byte, hex.DecodedLen(len(text)))
	if _, err := hex.Decode(buf, text); err != nil {
		return fmt.Errorf("decode record id: %w", err)
	}
	*id = buf
	return nil
}

// CalcRecordID returns the identifier of a payload created at ts.
func CalcRecordID(ts time.Time, payload []byte) (RecordID, error) {
	prefix, err := timeprefix.Encode(ts)
	if err != nil {
		return nil, err
	}
	h := blake3.Sum256(payload)
	id := make(RecordID, 0, RecordIDLength)
	id = append(id, prefix...)
	return append(id, h[:HashLength]...), nil
}

// Record is a single message held by a replica.
type Record struct {
	ID        RecordID  `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Payload   []byte    `json:"payload"`
}

// NewRecord creates a record and computes its identifier.
func NewRecord(ts time.Time, payload []byte) (Record, error) {
	id, err := CalcRecordID(ts, payload)
	if err != nil {
		return Record{}, err
	}
	return Record{ID: id, Timestamp: ts.Truncate(time.Second), Payload: payload}, nil
}

// Verify checks that the identifier of the record matches its timestamp and payload.
func (r *Record) Verify() error {
	id, err := CalcRecordID(r.Timestamp, r.Payload)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	if !bytes.Equal(id, r.ID) {
		return fmt.Errorf("%w: id %s doesn't match content %s", ErrInvalidRecord, r.ID.ShortString(), id.ShortString())
	}
	return nil
}
