package synctrie_test

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/spacemeshos/synchealth/common/types"
	"github.com/spacemeshos/synchealth/synctrie"
	"github.com/spacemeshos/synchealth/synctrie/memtrie"
	"github.com/spacemeshos/synchealth/synctrie/mocks"
	"github.com/spacemeshos/synchealth/timeprefix"
)

func at(sec int) time.Time {
	return timeprefix.Epoch.Add(time.Duration(sec) * time.Second)
}

func prefix(tb testing.TB, sec int) timeprefix.Prefix {
	tb.Helper()
	p, err := timeprefix.Encode(at(sec))
	require.NoError(tb, err)
	return p
}

func recordID(tb testing.TB, sec int, suffix ...byte) types.RecordID {
	return append(types.RecordID(bytes.Clone(prefix(tb, sec))), suffix...)
}

// countingRetriever records how many times each prefix was fetched.
type countingRetriever struct {
	mu      sync.Mutex
	r       synctrie.Retriever
	fetches map[string]int
}

func newCountingRetriever(r synctrie.Retriever) *countingRetriever {
	return &countingRetriever{r: r, fetches: map[string]int{}}
}

func (c *countingRetriever) GetMetadata(ctx context.Context, prefix []byte) (*synctrie.NodeMetadata, error) {
	c.mu.Lock()
	c.fetches[string(prefix)]++
	c.mu.Unlock()
	return c.r.GetMetadata(ctx, prefix)
}

func (c *countingRetriever) total() int {
	n := 0
	for _, v := range c.fetches {
		n += v
	}
	return n
}

type randomTrie struct {
	trie *memtrie.Trie
	// seconds holds the timestamp of every inserted identifier
	seconds []int
}

func genTrie(tb testing.TB, rng *rand.Rand, n, span int) *randomTrie {
	rt := &randomTrie{trie: memtrie.New()}
	for range n {
		sec := rng.IntN(span)
		id := recordID(tb, sec, byte(rng.IntN(4)), byte(rng.IntN(256)))
		if rt.trie.Insert(id) {
			rt.seconds = append(rt.seconds, sec)
		}
	}
	return rt
}

func (rt *randomTrie) count(from, to int) uint64 {
	var n uint64
	for _, s := range rt.seconds {
		if s >= from && s < to {
			n++
		}
	}
	return n
}

func TestTraverseVisitsWindowOnce(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for i := range 50 {
		span := 10 + rng.IntN(5000)
		rt := genTrie(t, rng, 1+rng.IntN(500), span)
		from := rng.IntN(span)
		to := from + rng.IntN(span-from+1)
		cr := newCountingRetriever(synctrie.NewLocalRetriever(rt.trie))

		var visited [][]byte
		var total uint64
		err := synctrie.TraverseWindow(context.Background(), cr, prefix(t, from), prefix(t, to),
			func(_ context.Context, child synctrie.ChildRef) error {
				visited = append(visited, child.Prefix)
				total += child.NumMessages
				return nil
			})
		if from == to {
			require.NoError(t, err)
			require.Empty(t, visited)
			continue
		}
		if err != nil {
			// the common prefix node may legitimately be missing for sparse tries
			require.ErrorIs(t, err, synctrie.ErrUnavailable)
			require.Zero(t, rt.count(from, to), "iteration %d", i)
			continue
		}
		require.Equal(t, rt.count(from, to), total, "iteration %d: [%d, %d)", i, from, to)
		for a := range visited {
			for b := range visited {
				if a != b {
					require.False(t, bytes.HasPrefix(visited[b], visited[a]),
						"overlapping nodes %q %q", visited[a], visited[b])
				}
			}
		}
		for p, n := range cr.fetches {
			require.Equal(t, 1, n, "prefix %q fetched more than once", p)
		}
	}
}

func TestCountScenario(t *testing.T) {
	primary := memtrie.New()
	peer := memtrie.New()
	for i := range byte(3) {
		primary.Insert(recordID(t, 2, i))
		peer.Insert(recordID(t, 2, i))
	}
	for i := range byte(2) {
		primary.Insert(recordID(t, 7, i))
	}
	ctx := context.Background()
	counter := synctrie.NewCounter()
	window := types.TimeWindow{Start: at(0), Stop: at(10)}

	n, err := counter.Count(ctx, synctrie.NewLocalRetriever(primary), window)
	require.NoError(t, err)
	require.EqualValues(t, 5, n)

	n, err = counter.Count(ctx, synctrie.NewLocalRetriever(peer), window)
	require.NoError(t, err)
	require.EqualValues(t, 3, n)

	n, err = synctrie.CountInWindowStepwise(ctx, synctrie.NewLocalRetriever(primary), timeprefix.Default(), window)
	require.NoError(t, err)
	require.EqualValues(t, 5, n)

	// the left boundary is inclusive, the right one is not
	n, err = counter.Count(ctx, synctrie.NewLocalRetriever(primary), types.TimeWindow{Start: at(2), Stop: at(7)})
	require.NoError(t, err)
	require.EqualValues(t, 3, n)
	n, err = counter.Count(ctx, synctrie.NewLocalRetriever(primary), types.TimeWindow{Start: at(3), Stop: at(8)})
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
}

func TestStepwiseMatchesPrefixCount(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	rt := genTrie(t, rng, 300, 120)
	r := synctrie.NewLocalRetriever(rt.trie)
	for range 30 {
		from := rng.IntN(120)
		to := from + 1 + rng.IntN(120-from)
		window := types.TimeWindow{Start: at(from), Stop: at(to)}
		stepwise, err := synctrie.CountInWindowStepwise(context.Background(), r, timeprefix.Default(), window)
		require.NoError(t, err)
		require.Equal(t, rt.count(from, to), stepwise)
	}
}

func TestCountUnavailable(t *testing.T) {
	tr := memtrie.New()
	tr.Insert(recordID(t, 5, 1))
	r := synctrie.NewLocalRetriever(tr)
	window := types.TimeWindow{Start: at(100), Stop: at(110)}

	_, err := synctrie.NewCounter().Count(context.Background(), r, window)
	require.ErrorIs(t, err, synctrie.ErrUnavailable)

	t.Run("stepwise fallback", func(t *testing.T) {
		counter := synctrie.NewCounter(synctrie.WithCounterConfig(synctrie.CounterConfig{
			StepwiseFallback: true,
			StepwiseMaxSpan:  time.Minute,
		}))
		n, err := counter.Count(context.Background(), r, window)
		require.NoError(t, err)
		require.Zero(t, n)
	})
	t.Run("window too long for fallback", func(t *testing.T) {
		counter := synctrie.NewCounter(synctrie.WithCounterConfig(synctrie.CounterConfig{
			StepwiseFallback: true,
			StepwiseMaxSpan:  time.Second,
		}))
		_, err := counter.Count(context.Background(), r, window)
		require.ErrorIs(t, err, synctrie.ErrUnavailable)
	})
}

func TestCountInvalidWindow(t *testing.T) {
	r := synctrie.NewLocalRetriever(memtrie.New())
	_, err := synctrie.NewCounter().Count(context.Background(), r, types.TimeWindow{
		Start: timeprefix.Epoch.Add(-time.Hour),
		Stop:  timeprefix.Epoch,
	})
	require.ErrorIs(t, err, timeprefix.ErrInvalidTime)
}

func TestTraverseAbortsOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockRetriever(ctrl)
	start := prefix(t, 15)
	stop := prefix(t, 35)
	common := timeprefix.CommonPrefix(start, stop)

	child := func(last byte) synctrie.ChildRef {
		p := append(bytes.Clone(common), last)
		return synctrie.ChildRef{Prefix: p, NumMessages: 1}
	}
	r.EXPECT().GetMetadata(gomock.Any(), common).Return(&synctrie.NodeMetadata{
		Prefix:      common,
		NumMessages: 3,
		Children:    []synctrie.ChildRef{child('1'), child('2'), child('3')},
	}, nil)
	r.EXPECT().GetMetadata(gomock.Any(), child('1').Prefix).Return(nil, synctrie.ErrTimeout)

	visits := 0
	err := synctrie.TraverseWindow(context.Background(), r, start, stop,
		func(context.Context, synctrie.ChildRef) error {
			visits++
			return nil
		})
	require.ErrorIs(t, err, synctrie.ErrTimeout)
	require.Zero(t, visits)

	t.Run("visitor error", func(t *testing.T) {
		tr := memtrie.New()
		tr.Insert(recordID(t, 20, 1))
		errStop := errors.New("stop")
		err := synctrie.TraverseWindow(context.Background(), synctrie.NewLocalRetriever(tr), start, stop,
			func(context.Context, synctrie.ChildRef) error { return errStop })
		require.ErrorIs(t, err, errStop)
	})
}

func TestCollectIdentifiers(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	rt := genTrie(t, rng, 400, 300)
	r := synctrie.NewLocalRetriever(rt.trie)
	fetcher := idFetcher{rt.trie}

	ids, err := synctrie.CollectIdentifiers(context.Background(), r, fetcher, prefix(t, 50), prefix(t, 250))
	require.NoError(t, err)
	require.EqualValues(t, rt.count(50, 250), len(ids))
	for _, id := range ids {
		ts, err := id.Timestamp()
		require.NoError(t, err)
		require.False(t, ts.Before(at(50)))
		require.True(t, ts.Before(at(250)))
	}

	t.Run("fetch error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := mocks.NewMockIDFetcher(ctrl)
		f.EXPECT().GetIdentifiersByPrefix(gomock.Any(), gomock.Any()).Return(nil, synctrie.ErrTimeout)
		_, err := synctrie.CollectIdentifiers(context.Background(), r, f, prefix(t, 0), prefix(t, 300))
		require.ErrorIs(t, err, synctrie.ErrTimeout)
	})
}

type idFetcher struct {
	trie *memtrie.Trie
}

func (f idFetcher) GetIdentifiersByPrefix(_ context.Context, prefix []byte) ([]types.RecordID, error) {
	return f.trie.IdentifiersByPrefix(prefix), nil
}

func TestCachingRetriever(t *testing.T) {
	tr := memtrie.New()
	for sec := range 40 {
		tr.Insert(recordID(t, sec*3, 1))
	}
	counting := newCountingRetriever(synctrie.NewLocalRetriever(tr))
	cached := synctrie.NewCachingRetriever(counting, 0)
	start, stop := prefix(t, 10), prefix(t, 100)

	first, err := synctrie.CountInWindow(context.Background(), cached, start, stop)
	require.NoError(t, err)
	fetches := counting.total()
	require.Positive(t, fetches)
	require.Equal(t, fetches, cached.Len())

	second, err := synctrie.CountInWindow(context.Background(), cached, start, stop)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, fetches, counting.total())

	t.Run("errors are not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := mocks.NewMockRetriever(ctrl)
		md := &synctrie.NodeMetadata{Prefix: []byte("1")}
		gomock.InOrder(
			r.EXPECT().GetMetadata(gomock.Any(), []byte("1")).Return(nil, synctrie.ErrTimeout),
			r.EXPECT().GetMetadata(gomock.Any(), []byte("1")).Return(md, nil),
		)
		c := synctrie.NewCachingRetriever(r, 10)
		_, err := c.GetMetadata(context.Background(), []byte("1"))
		require.ErrorIs(t, err, synctrie.ErrTimeout)
		got, err := c.GetMetadata(context.Background(), []byte("1"))
		require.NoError(t, err)
		require.Same(t, md, got)
		got, err = c.GetMetadata(context.Background(), []byte("1"))
		require.NoError(t, err)
		require.Same(t, md, got)
	})
}

func TestLocalRetrieverCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := synctrie.NewLocalRetriever(memtrie.New()).GetMetadata(ctx, nil)
	require.ErrorIs(t, err, context.Canceled)
}
