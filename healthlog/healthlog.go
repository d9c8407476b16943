// Package healthlog persists sync health records as an append-only log of JSON lines.
package healthlog

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/spacemeshos/synchealth/common/types"
)

const (
	filePerm = 0o644
	dirPerm  = 0o755
	// maxLine bounds the size of a single record when reading the log back.
	maxLine = 64 << 20
)

// Config configures the health log.
type Config struct {
	Path string `mapstructure:"path"`
}

// DefaultConfig returns the default Config.
func DefaultConfig() Config {
	return Config{Path: "sync-health.jsonl"}
}

// Opt is an option for Writer.
type Opt func(*Writer)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Opt {
	return func(w *Writer) {
		w.logger = logger
	}
}

// WithFs sets the filesystem the log is written to.
func WithFs(fs afero.Fs) Opt {
	return func(w *Writer) {
		w.fs = fs
	}
}

// Writer appends health records to a file. Each record is written with a single
// write call so concurrent readers never observe a partial line from this writer.
type Writer struct {
	logger *zap.Logger
	fs     afero.Fs
	path   string

	mu sync.Mutex
}

// NewWriter creates a Writer for the file at path.
func NewWriter(path string, opts ...Opt) *Writer {
	w := &Writer{
		logger: zap.NewNop(),
		fs:     afero.NewOsFs(),
		path:   path,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Path returns the location of the log.
func (w *Writer) Path() string {
	return w.path
}

// Append writes rec as one line at the end of the log, creating the file if needed.
func (w *Writer) Append(rec types.HealthRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode health record: %w", err)
	}
	data = append(data, '\n')

	w.mu.Lock()
	defer w.mu.Unlock()
	if dir := filepath.Dir(w.path); dir != "." {
		if err := w.fs.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
	}
	f, err := w.fs.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("open health log: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write health log: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close health log: %w", err)
	}
	w.logger.Debug("health record persisted",
		zap.String("path", w.path),
		zap.String("peer", rec.Peer),
		zap.Object("stats", rec.Stats),
	)
	return nil
}

// NewRecord builds a health record. Nil outcome lists are stored as empty lists, and a
// non-nil err is stored in the Error field.
func NewRecord(
	runID string,
	now time.Time,
	window types.TimeWindow,
	primary string,
	peer types.Peer,
	stats types.MessageStats,
	result types.RepairResult,
	err error,
) types.HealthRecord {
	rec := types.HealthRecord{
		RunID:       runID,
		Time:        now.UTC(),
		Window:      window,
		Primary:     primary,
		Peer:        peer.ID,
		PeerAddress: peer.Address,
		Stats:       stats,
		ToPeer:      result.ToPeer,
		ToPrimary:   result.ToPrimary,
	}
	if rec.ToPeer == nil {
		rec.ToPeer = []types.TransferOutcome{}
	}
	if rec.ToPrimary == nil {
		rec.ToPrimary = []types.TransferOutcome{}
	}
	if err != nil {
		rec.Error = err.Error()
	}
	return rec
}

// ReadAll returns all records of the log in the order they were written.
// A missing log holds no records.
func ReadAll(afs afero.Fs, path string) ([]types.HealthRecord, error) {
	f, err := afs.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open health log: %w", err)
	}
	defer f.Close()

	var out []types.HealthRecord
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64<<10), maxLine)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var rec types.HealthRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			return nil, fmt.Errorf("decode line %d: %w", line, err)
		}
		out = append(out, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read health log: %w", err)
	}
	return out, nil
}

// PeerSummary aggregates the records of a single peer.
type PeerSummary struct {
	Peer            string
	Runs            int
	Errors          int
	InSync          int
	LastStats       types.MessageStats
	LastSeen        time.Time
	TransferredOK   int
	TransfersFailed int
}

// Summarize aggregates records per peer. The result is sorted by peer.
func Summarize(records []types.HealthRecord) []PeerSummary {
	byPeer := map[string]*PeerSummary{}
	for _, rec := range records {
		s, ok := byPeer[rec.Peer]
		if !ok {
			s = &PeerSummary{Peer: rec.Peer}
			byPeer[rec.Peer] = s
		}
		s.Runs++
		if rec.Error != "" {
			s.Errors++
		}
		if rec.Stats.InSync() {
			s.InSync++
		}
		if !rec.Time.Before(s.LastSeen) {
			s.LastSeen = rec.Time
			s.LastStats = rec.Stats
		}
		for _, outcomes := range [][]types.TransferOutcome{rec.ToPeer, rec.ToPrimary} {
			ok := types.Succeeded(outcomes)
			s.TransferredOK += ok
			s.TransfersFailed += len(outcomes) - ok
		}
	}
	out := make([]PeerSummary, 0, len(byPeer))
	for _, s := range byPeer {
		out = append(out, *s)
	}
	slices.SortFunc(out, func(a, b PeerSummary) int {
		return strings.Compare(a.Peer, b.Peer)
	})
	return out
}
