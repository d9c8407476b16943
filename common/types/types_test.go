package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/synchealth/timeprefix"
)

func TestMessageStats(t *testing.T) {
	s := MessageStats{Primary: 5, Peer: 3}
	require.EqualValues(t, 2, s.Diff())
	pct, ok := s.DiffPercentage()
	require.True(t, ok)
	require.InDelta(t, 0.4, pct, 1e-9)
	require.False(t, s.InSync())

	s = MessageStats{Primary: 3, Peer: 5}
	require.EqualValues(t, 2, s.Diff())

	t.Run("undefined percentage", func(t *testing.T) {
		s := MessageStats{Primary: 0, Peer: 7}
		require.EqualValues(t, 7, s.Diff())
		_, ok := s.DiffPercentage()
		require.False(t, ok)

		data, err := json.Marshal(s)
		require.NoError(t, err)
		require.JSONEq(t, `{"primary":0,"peer":7,"diff":7,"diffPercentage":null}`, string(data))

		var decoded MessageStats
		require.NoError(t, json.Unmarshal(data, &decoded))
		require.Equal(t, s, decoded)
	})
}

func TestRecord(t *testing.T) {
	ts := timeprefix.Epoch.Add(42*time.Second + 300*time.Millisecond)
	rec, err := NewRecord(ts, []byte("hello"))
	require.NoError(t, err)
	require.Len(t, rec.ID, RecordIDLength)
	require.Equal(t, "0000000042", string(rec.ID[:timeprefix.Width]))
	require.NoError(t, rec.Verify())

	got, err := rec.ID.Timestamp()
	require.NoError(t, err)
	require.True(t, got.Equal(timeprefix.Epoch.Add(42*time.Second)))

	tampered := rec
	tampered.Payload = []byte("world")
	require.ErrorIs(t, tampered.Verify(), ErrInvalidRecord)

	_, err = NewRecord(timeprefix.Epoch.Add(-time.Hour), nil)
	require.ErrorIs(t, err, timeprefix.ErrInvalidTime)
}

func TestRecordJSON(t *testing.T) {
	rec, err := NewRecord(timeprefix.Epoch.Add(time.Hour), []byte{1, 2, 3})
	require.NoError(t, err)
	data, err := json.Marshal(rec)
	require.NoError(t, err)
	require.Contains(t, string(data), `"id":"`+rec.ID.String()+`"`)

	var decoded Record
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, rec.ID, decoded.ID)
	require.NoError(t, decoded.Verify())

	var id RecordID
	require.Error(t, id.UnmarshalText([]byte("zz")))
}

func TestTimeWindow(t *testing.T) {
	start := timeprefix.Epoch.Add(time.Hour)
	require.NoError(t, TimeWindow{Start: start, Stop: start.Add(time.Second)}.Validate())
	require.Error(t, TimeWindow{Start: start, Stop: start}.Validate())
	require.Error(t, TimeWindow{Start: start, Stop: start.Add(-time.Second)}.Validate())
}
