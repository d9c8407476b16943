package replica

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/synchealth/common/types"
	"github.com/spacemeshos/synchealth/synctrie"
	"github.com/spacemeshos/synchealth/timeprefix"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory("hub-1")
	rec, err := types.NewRecord(timeprefix.Epoch.Add(10*time.Second), []byte("one"))
	require.NoError(t, err)

	require.NoError(t, m.SubmitRecord(ctx, rec))
	require.ErrorIs(t, m.SubmitRecord(ctx, rec), types.ErrDuplicateRecord)
	require.True(t, m.Has(rec.ID))
	require.EqualValues(t, 1, m.Count())

	bad := rec
	bad.Payload = []byte("two")
	require.ErrorIs(t, m.SubmitRecord(ctx, bad), types.ErrInvalidRecord)

	md, err := m.GetMetadata(ctx, rec.ID[:timeprefix.Width])
	require.NoError(t, err)
	require.EqualValues(t, 1, md.NumMessages)
	_, err = m.GetMetadata(ctx, []byte("9"))
	require.ErrorIs(t, err, synctrie.ErrUnavailable)

	ids, err := m.GetIdentifiersByPrefix(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, []types.RecordID{rec.ID}, ids)

	other, err := types.NewRecord(timeprefix.Epoch, []byte("missing"))
	require.NoError(t, err)
	recs, err := m.GetRecordsByIdentifiers(ctx, []types.RecordID{other.ID, rec.ID})
	require.NoError(t, err)
	require.Equal(t, []types.Record{rec}, recs)

	info, err := m.Info(ctx)
	require.NoError(t, err)
	require.Equal(t, types.HubInfo{ID: "hub-1", NumMessages: 1}, info)

	m.AddPeer(types.Peer{ID: "p", Address: "127.0.0.1:2283"})
	peers, err := m.ListKnownPeers(ctx)
	require.NoError(t, err)
	require.Equal(t, []types.Peer{{ID: "p", Address: "127.0.0.1:2283"}}, peers)
}
