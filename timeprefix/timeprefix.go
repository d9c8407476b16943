// Package timeprefix encodes instants as fixed-width byte prefixes whose
// byte-lexicographic order is the same as their chronological order.
package timeprefix

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

const (
	// Width is the number of bytes in an encoded prefix.
	Width = 10
	// maxSeconds is the largest offset from the epoch that fits into Width digits.
	maxSeconds = 9_999_999_999
)

// Epoch is the default protocol epoch. Timestamps are stored as seconds since Epoch.
var Epoch = time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)

// ErrInvalidTime is returned for instants that can't be represented relative to the epoch,
// and for time-of-day strings that can't be parsed.
var ErrInvalidTime = errors.New("invalid time")

// Prefix is an encoded timestamp usable as a trie key boundary.
type Prefix []byte

// String implements fmt.Stringer.
func (p Prefix) String() string {
	return string(p)
}

// Codec converts instants to prefixes relative to a fixed epoch.
type Codec struct {
	epoch time.Time
}

// NewCodec returns a Codec for the given epoch.
func NewCodec(epoch time.Time) Codec {
	return Codec{epoch: epoch}
}

// Default returns the Codec for the protocol epoch.
func Default() Codec {
	return NewCodec(Epoch)
}

// Encode returns the prefix for t. Sub-second precision is truncated.
func (c Codec) Encode(t time.Time) (Prefix, error) {
	if t.Before(c.epoch) {
		return nil, fmt.Errorf("%w: %s is before epoch %s", ErrInvalidTime, t.Format(time.RFC3339), c.epoch.Format(time.RFC3339))
	}
	secs := t.Unix() - c.epoch.Unix()
	if secs > maxSeconds {
		return nil, fmt.Errorf("%w: %s does not fit into %d digits", ErrInvalidTime, t.Format(time.RFC3339), Width)
	}
	// zero padding keeps shorter numbers from sorting after longer ones
	return Prefix(fmt.Sprintf("%0*d", Width, secs)), nil
}

// Decode returns the instant encoded in the first Width bytes of p.
func (c Codec) Decode(p []byte) (time.Time, error) {
	if len(p) < Width {
		return time.Time{}, fmt.Errorf("%w: prefix %q is shorter than %d bytes", ErrInvalidTime, p, Width)
	}
	secs, err := strconv.ParseUint(string(p[:Width]), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidTime, err)
	}
	return c.epoch.Add(time.Duration(secs) * time.Second), nil
}

// Encode encodes t relative to the protocol epoch.
func Encode(t time.Time) (Prefix, error) {
	return Default().Encode(t)
}

// Decode decodes p relative to the protocol epoch.
func Decode(p []byte) (time.Time, error) {
	return Default().Decode(p)
}

// CommonPrefix returns the longest leading byte sequence shared by a and b.
// The result aliases a.
func CommonPrefix(a, b []byte) []byte {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}

var timeOfDayLayouts = []string{"15:04:05", "15:04"}

// ParseTimeOfDay resolves a wall-clock time of day such as "13:45" or "13:45:30"
// against the date of now, in now's location.
func ParseTimeOfDay(s string, now time.Time) (time.Time, error) {
	for _, layout := range timeOfDayLayouts {
		tod, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		y, m, d := now.Date()
		return time.Date(y, m, d, tod.Hour(), tod.Minute(), tod.Second(), 0, now.Location()), nil
	}
	return time.Time{}, fmt.Errorf("%w: can't parse time of day %q", ErrInvalidTime, s)
}
