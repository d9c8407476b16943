package synctrie

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the default number of nodes kept by CachingRetriever.
const DefaultCacheSize = 4096

// CachingRetriever remembers fetched nodes so that repeated traversals of the same
// window, such as counting followed by collecting identifiers, query each prefix once.
// Failed fetches are not cached.
type CachingRetriever struct {
	r     Retriever
	cache *lru.Cache[string, *NodeMetadata]
}

var _ Retriever = (*CachingRetriever)(nil)

// NewCachingRetriever wraps r with a cache of the given size.
func NewCachingRetriever(r Retriever, size int) *CachingRetriever {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, *NodeMetadata](size)
	if err != nil {
		panic("BUG: lru cache: " + err.Error())
	}
	return &CachingRetriever{r: r, cache: cache}
}

// GetMetadata implements Retriever.
func (c *CachingRetriever) GetMetadata(ctx context.Context, prefix []byte) (*NodeMetadata, error) {
	if md, ok := c.cache.Get(string(prefix)); ok {
		return md, nil
	}
	md, err := c.r.GetMetadata(ctx, prefix)
	if err != nil {
		return nil, err
	}
	c.cache.Add(string(prefix), md)
	return md, nil
}

// Len returns the number of cached nodes.
func (c *CachingRetriever) Len() int {
	return c.cache.Len()
}
