package synctrie

import (
	"context"
	"fmt"
)

// Trie is an in-process trie that can be queried for node metadata.
type Trie interface {
	// Node returns the metadata of the node with the given prefix, or false
	// if no such node exists.
	Node(prefix []byte) (*NodeMetadata, bool)
}

// LocalRetriever resolves metadata directly against an in-process trie.
type LocalRetriever struct {
	trie Trie
}

var _ Retriever = (*LocalRetriever)(nil)

// NewLocalRetriever creates a LocalRetriever for t.
func NewLocalRetriever(t Trie) *LocalRetriever {
	return &LocalRetriever{trie: t}
}

// GetMetadata implements Retriever.
func (r *LocalRetriever) GetMetadata(ctx context.Context, prefix []byte) (*NodeMetadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	md, found := r.trie.Node(prefix)
	if !found {
		return nil, fmt.Errorf("%w: prefix %s", ErrUnavailable, FormatPrefix(prefix))
	}
	return md, nil
}
