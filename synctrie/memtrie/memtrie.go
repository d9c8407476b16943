// Package memtrie is an in-memory prefix trie over record identifiers with
// per-node message counts.
package memtrie

import (
	"bytes"
	"slices"
	"sync"

	"github.com/spacemeshos/synchealth/common/types"
	"github.com/spacemeshos/synchealth/synctrie"
)

type node struct {
	children map[byte]*node
	count    uint64
	leaf     bool
}

func (n *node) sortedKeys() []byte {
	keys := make([]byte, 0, len(n.children))
	for k := range n.children {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Trie stores identifiers one byte per level. It is safe for concurrent use.
type Trie struct {
	mu   sync.RWMutex
	root *node
}

var _ synctrie.Trie = (*Trie)(nil)

// New creates an empty Trie.
func New() *Trie {
	return &Trie{root: &node{}}
}

// Insert adds id to the trie. It returns false if id was already present.
func (t *Trie) Insert(id types.RecordID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.has(id) {
		return false
	}
	n := t.root
	n.count++
	for _, b := range id {
		if n.children == nil {
			n.children = make(map[byte]*node)
		}
		child, ok := n.children[b]
		if !ok {
			child = &node{}
			n.children[b] = child
		}
		child.count++
		n = child
	}
	n.leaf = true
	return true
}

// Has returns true if id is in the trie.
func (t *Trie) Has(id types.RecordID) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.has(id)
}

func (t *Trie) has(id []byte) bool {
	n := t.find(id)
	return n != nil && n.leaf
}

func (t *Trie) find(prefix []byte) *node {
	n := t.root
	for _, b := range prefix {
		n = n.children[b]
		if n == nil {
			return nil
		}
	}
	return n
}

// Count returns the total number of identifiers in the trie.
func (t *Trie) Count() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.root.count
}

// Node implements synctrie.Trie.
func (t *Trie) Node(prefix []byte) (*synctrie.NodeMetadata, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n := t.find(prefix)
	if n == nil {
		return nil, false
	}
	md := &synctrie.NodeMetadata{
		Prefix:      bytes.Clone(prefix),
		NumMessages: n.count,
		Children:    make([]synctrie.ChildRef, 0, len(n.children)),
	}
	for _, k := range n.sortedKeys() {
		p := make([]byte, len(prefix)+1)
		copy(p, prefix)
		p[len(prefix)] = k
		md.Children = append(md.Children, synctrie.ChildRef{Prefix: p, NumMessages: n.children[k].count})
	}
	return md, true
}

// IdentifiersByPrefix returns all identifiers starting with prefix, in ascending order.
func (t *Trie) IdentifiersByPrefix(prefix []byte) []types.RecordID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n := t.find(prefix)
	if n == nil {
		return nil
	}
	var ids []types.RecordID
	collect(n, bytes.Clone(prefix), &ids)
	return ids
}

func collect(n *node, key []byte, ids *[]types.RecordID) {
	if n.leaf {
		*ids = append(*ids, bytes.Clone(key))
	}
	for _, k := range n.sortedKeys() {
		collect(n.children[k], append(key, k), ids)
	}
}
