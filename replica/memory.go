// Package replica provides an in-memory replica exposing the same capabilities
// as a remote hub: trie metadata, identifier listing, record fetch and submission.
package replica

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/spacemeshos/synchealth/common/types"
	"github.com/spacemeshos/synchealth/synctrie"
	"github.com/spacemeshos/synchealth/synctrie/memtrie"
)

// Memory is a thread-safe in-memory replica.
type Memory struct {
	id        string
	trie      *memtrie.Trie
	retriever *synctrie.LocalRetriever

	mu      sync.RWMutex
	records map[string]types.Record
	peers   []types.Peer
}

// NewMemory creates an empty replica.
func NewMemory(id string) *Memory {
	trie := memtrie.New()
	return &Memory{
		id:        id,
		trie:      trie,
		retriever: synctrie.NewLocalRetriever(trie),
		records:   make(map[string]types.Record),
	}
}

// ID returns the replica identifier.
func (m *Memory) ID() string {
	return m.id
}

// Info returns the replica identifier and the total number of messages.
func (m *Memory) Info(context.Context) (types.HubInfo, error) {
	return types.HubInfo{ID: m.id, NumMessages: m.trie.Count()}, nil
}

// Add stores a record without verification. It returns false if the record exists.
func (m *Memory) Add(rec types.Record) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := string(rec.ID)
	if _, ok := m.records[key]; ok {
		return false
	}
	m.records[key] = rec
	m.trie.Insert(rec.ID)
	return true
}

// Has returns true if a record with the given id is stored.
func (m *Memory) Has(id types.RecordID) bool {
	return m.trie.Has(id)
}

// Count returns the number of stored records.
func (m *Memory) Count() uint64 {
	return m.trie.Count()
}

// AddPeer registers a peer to be returned by ListKnownPeers.
func (m *Memory) AddPeer(p types.Peer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.peers = append(m.peers, p)
}

// GetMetadata returns trie node metadata for prefix.
func (m *Memory) GetMetadata(ctx context.Context, prefix []byte) (*synctrie.NodeMetadata, error) {
	return m.retriever.GetMetadata(ctx, prefix)
}

// GetIdentifiersByPrefix returns all identifiers starting with prefix.
func (m *Memory) GetIdentifiersByPrefix(ctx context.Context, prefix []byte) ([]types.RecordID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return m.trie.IdentifiersByPrefix(prefix), nil
}

// GetRecordsByIdentifiers returns the records it has among ids. Unknown ids are skipped.
func (m *Memory) GetRecordsByIdentifiers(ctx context.Context, ids []types.RecordID) ([]types.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]types.Record, 0, len(ids))
	for _, id := range ids {
		if rec, ok := m.records[string(id)]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

// SubmitRecord verifies and stores a record.
func (m *Memory) SubmitRecord(ctx context.Context, rec types.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := rec.Verify(); err != nil {
		return err
	}
	if !m.Add(rec) {
		return fmt.Errorf("%w: %s", types.ErrDuplicateRecord, rec.ID.ShortString())
	}
	return nil
}

// ListKnownPeers returns the registered peers.
func (m *Memory) ListKnownPeers(ctx context.Context) ([]types.Peer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.peers), nil
}
