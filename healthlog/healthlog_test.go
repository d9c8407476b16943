package healthlog_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/spacemeshos/synchealth/common/types"
	"github.com/spacemeshos/synchealth/healthlog"
)

var (
	now    = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	window = types.TimeWindow{Start: now.Add(-time.Hour), Stop: now}
)

func TestNewRecord(t *testing.T) {
	peer := types.Peer{ID: "peer-1", Address: "10.0.0.1:2283"}
	rec := healthlog.NewRecord("run", now, window, "primary", peer,
		types.MessageStats{Primary: 0, Peer: 3}, types.RepairResult{}, nil)
	require.Equal(t, "peer-1", rec.Peer)
	require.Equal(t, "10.0.0.1:2283", rec.PeerAddress)
	require.NotNil(t, rec.ToPeer)
	require.NotNil(t, rec.ToPrimary)
	require.Empty(t, rec.Error)

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	require.Contains(t, string(data), `"diffPercentage":null`)
	require.Contains(t, string(data), `"toPeer":[]`)

	rec = healthlog.NewRecord("run", now, window, "primary", peer,
		types.MessageStats{}, types.RepairResult{}, errors.New("timeout"))
	require.Equal(t, "timeout", rec.Error)
}

func TestWriterAppend(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "logs/health.jsonl"
	w := healthlog.NewWriter(path, healthlog.WithFs(fs), healthlog.WithLogger(zaptest.NewLogger(t)))
	require.Equal(t, path, w.Path())

	var written []types.HealthRecord
	for i := range 3 {
		rec := healthlog.NewRecord("run", now.Add(time.Duration(i)*time.Second), window, "primary",
			types.Peer{ID: fmt.Sprint("peer-", i)},
			types.MessageStats{Primary: 10, Peer: uint64(10 - i)},
			types.RepairResult{ToPeer: []types.TransferOutcome{{ID: types.RecordID{1, 2}, Success: true}}},
			nil)
		require.NoError(t, w.Append(rec))
		written = append(written, rec)
	}

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	require.Equal(t, 3, strings.Count(string(data), "\n"))

	got, err := healthlog.ReadAll(fs, path)
	require.NoError(t, err)
	if diff := cmp.Diff(written, got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}

	t.Run("reopen appends", func(t *testing.T) {
		w := healthlog.NewWriter(path, healthlog.WithFs(fs))
		require.NoError(t, w.Append(written[0]))
		got, err := healthlog.ReadAll(fs, path)
		require.NoError(t, err)
		require.Len(t, got, 4)
	})
}

func TestWriterConcurrent(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := healthlog.NewWriter("health.jsonl", healthlog.WithFs(fs))
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := healthlog.NewRecord("run", now, window, "primary",
				types.Peer{ID: fmt.Sprint("peer-", i)}, types.MessageStats{Primary: 1, Peer: 1},
				types.RepairResult{}, nil)
			require.NoError(t, w.Append(rec))
		}()
	}
	wg.Wait()
	got, err := healthlog.ReadAll(fs, "health.jsonl")
	require.NoError(t, err)
	require.Len(t, got, 20)
}

func TestReadAll(t *testing.T) {
	fs := afero.NewMemMapFs()
	got, err := healthlog.ReadAll(fs, "missing.jsonl")
	require.NoError(t, err)
	require.Empty(t, got)

	require.NoError(t, afero.WriteFile(fs, "bad.jsonl", []byte("{}\nnot json\n"), 0o644))
	_, err = healthlog.ReadAll(fs, "bad.jsonl")
	require.ErrorContains(t, err, "line 2")
}

func TestSummarize(t *testing.T) {
	ok := types.TransferOutcome{ID: types.RecordID{1}, Success: true}
	failed := types.TransferOutcome{ID: types.RecordID{2}, Reason: "rejected"}
	records := []types.HealthRecord{
		healthlog.NewRecord("r1", now, window, "p", types.Peer{ID: "b"},
			types.MessageStats{Primary: 5, Peer: 3},
			types.RepairResult{ToPeer: []types.TransferOutcome{ok, failed}}, nil),
		healthlog.NewRecord("r1", now, window, "p", types.Peer{ID: "a"},
			types.MessageStats{Primary: 5, Peer: 5}, types.RepairResult{}, nil),
		healthlog.NewRecord("r2", now.Add(time.Hour), window, "p", types.Peer{ID: "b"},
			types.MessageStats{Primary: 6, Peer: 6},
			types.RepairResult{ToPrimary: []types.TransferOutcome{ok}}, errors.New("partial")),
	}
	summary := healthlog.Summarize(records)
	require.Len(t, summary, 2)
	require.Equal(t, "a", summary[0].Peer)
	require.Equal(t, 1, summary[0].Runs)
	require.Equal(t, 1, summary[0].InSync)

	b := summary[1]
	require.Equal(t, "b", b.Peer)
	require.Equal(t, 2, b.Runs)
	require.Equal(t, 1, b.Errors)
	require.Equal(t, 1, b.InSync)
	require.Equal(t, 2, b.TransferredOK)
	require.Equal(t, 1, b.TransfersFailed)
	require.Equal(t, types.MessageStats{Primary: 6, Peer: 6}, b.LastStats)
	require.Equal(t, now.Add(time.Hour), b.LastSeen)
}
