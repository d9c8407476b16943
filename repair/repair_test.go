package repair_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/spacemeshos/synchealth/common/types"
	"github.com/spacemeshos/synchealth/log/logtest"
	"github.com/spacemeshos/synchealth/replica"
	"github.com/spacemeshos/synchealth/repair"
	"github.com/spacemeshos/synchealth/repair/mocks"
	"github.com/spacemeshos/synchealth/timeprefix"
)

func at(sec int) time.Time {
	return timeprefix.Epoch.Add(time.Duration(sec) * time.Second)
}

func newRecord(tb testing.TB, sec int, payload string) types.Record {
	tb.Helper()
	rec, err := types.NewRecord(at(sec), []byte(payload))
	require.NoError(tb, err)
	return rec
}

func ids(recs ...types.Record) []types.RecordID {
	out := make([]types.RecordID, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.ID)
	}
	return out
}

func keys(ids []types.RecordID) map[string]struct{} {
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		m[string(id)] = struct{}{}
	}
	return m
}

func TestDiff(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 20 {
		var primary, peer []types.RecordID
		for i := range 200 {
			id := newRecord(t, rng.IntN(100), fmt.Sprint(i)).ID
			switch rng.IntN(3) {
			case 0:
				primary = append(primary, id)
			case 1:
				peer = append(peer, id)
			default:
				primary = append(primary, id)
				peer = append(peer, id)
			}
		}
		onlyPrimary, onlyPeer := repair.Diff(primary, peer)

		pk, qk := keys(primary), keys(peer)
		for _, id := range onlyPrimary {
			require.Contains(t, pk, string(id))
			require.NotContains(t, qk, string(id))
		}
		for _, id := range onlyPeer {
			require.Contains(t, qk, string(id))
			require.NotContains(t, pk, string(id))
		}
		// union of the diff and the intersection reconstructs each input
		common := 0
		for k := range pk {
			if _, ok := qk[k]; ok {
				common++
			}
		}
		require.Len(t, pk, len(onlyPrimary)+common)
		require.Len(t, qk, len(onlyPeer)+common)
		require.True(t, slices.IsSortedFunc(onlyPrimary, types.RecordID.Compare))
		require.True(t, slices.IsSortedFunc(onlyPeer, types.RecordID.Compare))
	}

	t.Run("identical", func(t *testing.T) {
		in := ids(newRecord(t, 1, "a"), newRecord(t, 2, "b"))
		a, b := repair.Diff(in, slices.Clone(in))
		require.Empty(t, a)
		require.Empty(t, b)
	})
	t.Run("duplicates collapse", func(t *testing.T) {
		rec := newRecord(t, 1, "a")
		a, b := repair.Diff(ids(rec, rec), nil)
		require.Equal(t, []types.RecordID{rec.ID}, a)
		require.Empty(t, b)
	})
}

func TestTransfer(t *testing.T) {
	recs := []types.Record{newRecord(t, 1, "a"), newRecord(t, 2, "b"), newRecord(t, 3, "c")}

	t.Run("continues after rejection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		src := mocks.NewMockRecordSource(ctrl)
		sink := mocks.NewMockRecordSink(ctrl)
		src.EXPECT().GetRecordsByIdentifiers(gomock.Any(), ids(recs...)).Return(recs, nil)
		gomock.InOrder(
			sink.EXPECT().SubmitRecord(gomock.Any(), recs[0]).Return(nil),
			sink.EXPECT().SubmitRecord(gomock.Any(), recs[1]).Return(errors.New("rejected")),
			sink.EXPECT().SubmitRecord(gomock.Any(), recs[2]).Return(nil),
		)
		r := repair.New(repair.WithLogger(logtest.New(t)))
		out := r.Transfer(context.Background(), src, sink, ids(recs...))
		require.Len(t, out, 3)
		require.True(t, out[0].Success)
		require.False(t, out[1].Success)
		require.Contains(t, out[1].Reason, repair.ErrSubmissionFailed.Error())
		require.Contains(t, out[1].Reason, "rejected")
		require.True(t, out[2].Success)
		require.Equal(t, 2, types.Succeeded(out))
	})
	t.Run("empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		src := mocks.NewMockRecordSource(ctrl)
		sink := mocks.NewMockRecordSink(ctrl)
		out := repair.New().Transfer(context.Background(), src, sink, nil)
		require.NotNil(t, out)
		require.Empty(t, out)
	})
	t.Run("fetch error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		src := mocks.NewMockRecordSource(ctrl)
		sink := mocks.NewMockRecordSink(ctrl)
		src.EXPECT().GetRecordsByIdentifiers(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
		out := repair.New().Transfer(context.Background(), src, sink, ids(recs...))
		require.Len(t, out, 3)
		for i, o := range out {
			require.Equal(t, recs[i].ID, o.ID)
			require.False(t, o.Success)
			require.Contains(t, o.Reason, "boom")
		}
	})
	t.Run("missing on source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		src := mocks.NewMockRecordSource(ctrl)
		sink := mocks.NewMockRecordSink(ctrl)
		src.EXPECT().GetRecordsByIdentifiers(gomock.Any(), gomock.Any()).Return(recs[:1], nil)
		sink.EXPECT().SubmitRecord(gomock.Any(), recs[0]).Return(nil)
		out := repair.New().Transfer(context.Background(), src, sink, ids(recs...))
		require.Len(t, out, 3)
		require.True(t, out[0].Success)
		require.Equal(t, repair.ErrNotFound.Error(), out[1].Reason)
		require.Equal(t, repair.ErrNotFound.Error(), out[2].Reason)
	})
	t.Run("batches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		src := mocks.NewMockRecordSource(ctrl)
		sink := mocks.NewMockRecordSink(ctrl)
		gomock.InOrder(
			src.EXPECT().GetRecordsByIdentifiers(gomock.Any(), ids(recs[:2]...)).Return(recs[:2], nil),
			src.EXPECT().GetRecordsByIdentifiers(gomock.Any(), ids(recs[2:]...)).Return(recs[2:], nil),
		)
		sink.EXPECT().SubmitRecord(gomock.Any(), gomock.Any()).Return(nil).Times(3)
		r := repair.New(repair.WithConfig(repair.Config{BatchSize: 2}))
		out := r.Transfer(context.Background(), src, sink, ids(recs...))
		require.Equal(t, 3, types.Succeeded(out))
	})
}

func TestRunScenario(t *testing.T) {
	primary := replica.NewMemory("primary")
	peer := replica.NewMemory("peer")
	for i := range 3 {
		rec := newRecord(t, 2, fmt.Sprint("shared", i))
		require.True(t, primary.Add(rec))
		require.True(t, peer.Add(rec))
	}
	missing := []types.Record{newRecord(t, 7, "x"), newRecord(t, 7, "y")}
	for _, rec := range missing {
		require.True(t, primary.Add(rec))
	}
	window := types.TimeWindow{Start: at(0), Stop: at(10)}
	r := repair.New(repair.WithLogger(logtest.New(t)))

	inv, result, err := r.Run(context.Background(), primary, peer, window)
	require.NoError(t, err)
	require.Equal(t, 5, inv.PrimaryCount)
	require.Equal(t, 3, inv.PeerCount)
	require.Empty(t, inv.OnlyInPeer)
	require.ElementsMatch(t, ids(missing...), inv.OnlyInPrimary)
	require.Len(t, result.ToPeer, 2)
	require.Equal(t, 2, types.Succeeded(result.ToPeer))
	require.Empty(t, result.ToPrimary)
	require.EqualValues(t, 5, peer.Count())

	// a second run finds nothing to repair
	inv, result, err = r.Run(context.Background(), primary, peer, window)
	require.NoError(t, err)
	require.Empty(t, inv.OnlyInPrimary)
	require.Empty(t, inv.OnlyInPeer)
	require.Empty(t, result.ToPeer)
	require.Empty(t, result.ToPrimary)
}

func TestRunBothDirections(t *testing.T) {
	primary := replica.NewMemory("primary")
	peer := replica.NewMemory("peer")
	a := newRecord(t, 4, "a")
	b := newRecord(t, 5, "b")
	outside := newRecord(t, 50, "outside")
	primary.Add(a)
	peer.Add(b)
	peer.Add(outside)

	_, result, err := repair.New().Run(context.Background(), primary, peer,
		types.TimeWindow{Start: at(0), Stop: at(10)})
	require.NoError(t, err)
	require.Equal(t, 1, types.Succeeded(result.ToPeer))
	require.Equal(t, 1, types.Succeeded(result.ToPrimary))
	require.True(t, primary.Has(b.ID))
	require.True(t, peer.Has(a.ID))
	require.False(t, primary.Has(outside.ID))
}

func TestRunDryRun(t *testing.T) {
	primary := replica.NewMemory("primary")
	peer := replica.NewMemory("peer")
	primary.Add(newRecord(t, 1, "a"))
	peer.Add(newRecord(t, 2, "b"))
	r := repair.New(repair.WithConfig(repair.Config{BatchSize: 10, DryRun: true}))
	inv, result, err := r.Run(context.Background(), primary, peer,
		types.TimeWindow{Start: at(0), Stop: at(10)})
	require.NoError(t, err)
	require.Len(t, inv.OnlyInPrimary, 1)
	require.NotNil(t, result.ToPeer)
	require.Empty(t, result.ToPeer)
	require.Len(t, inv.OnlyInPeer, 1)
	require.NotNil(t, result.ToPrimary)
	require.EqualValues(t, 1, peer.Count())
	require.EqualValues(t, 1, primary.Count())
}

func TestInvestigateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := replica.NewMemory("primary")
	primary.Add(newRecord(t, 1, "a"))
	peer := mocks.NewMockReplica(ctrl)
	peer.EXPECT().GetMetadata(gomock.Any(), gomock.Any()).Return(nil, errors.New("down"))

	_, err := repair.New().Investigate(context.Background(), primary, peer,
		types.TimeWindow{Start: at(0), Stop: at(10)})
	require.ErrorContains(t, err, "collect peer identifiers")
}

// echoReplica reports every identifier twice.
type echoReplica struct {
	*replica.Memory
}

func (r echoReplica) GetIdentifiersByPrefix(ctx context.Context, prefix []byte) ([]types.RecordID, error) {
	ids, err := r.Memory.GetIdentifiersByPrefix(ctx, prefix)
	return append(ids, ids...), err
}

func TestInvestigateCountsDistinct(t *testing.T) {
	primary := replica.NewMemory("primary")
	peer := replica.NewMemory("peer")
	shared := newRecord(t, 2, "shared")
	primary.Add(shared)
	peer.Add(shared)
	extra := newRecord(t, 3, "extra")
	primary.Add(extra)

	inv, err := repair.New().Investigate(context.Background(),
		echoReplica{primary}, echoReplica{peer},
		types.TimeWindow{Start: at(0), Stop: at(10)})
	require.NoError(t, err)
	require.Equal(t, 2, inv.PrimaryCount)
	require.Equal(t, 1, inv.PeerCount)
	require.Equal(t, ids(extra), inv.OnlyInPrimary)
	require.Empty(t, inv.OnlyInPeer)
}
