// Package reader orchestrates accessibility tree reads: it drives the
// platform fetcher, runs the normalization pass, and owns the ref cache
// that later by-ref actions resolve against.
package reader

import (
	"context"
	"sync"

	"github.com/avren/desktop-agent/internal/model"
	"github.com/avren/desktop-agent/internal/platform"
)

// DefaultDepth is the traversal depth used when none is requested.
const DefaultDepth = 10

// Options controls one ReadUI call.
type Options struct {
	WindowTitle string       // Target window; empty = frontmost
	Depth       int          // Max traversal depth; <= 0 means DefaultDepth
	Filter      model.Filter // Empty means model.FilterAll
}

// Reader reads and normalizes the UI tree. It holds exactly one read
// generation: every ReadUI resets the ref counter and cache, so refs from a
// previous read resolve to absence afterwards. The mutex serializes reads —
// overlapping reads against shared counter/cache state would corrupt both —
// while ref lookups between reads are cheap map gets under the same lock.
type Reader struct {
	mu      sync.Mutex
	fetcher platform.TreeFetcher
	cache   *model.RefCache
}

// New returns a Reader backed by the given platform fetcher.
func New(fetcher platform.TreeFetcher) *Reader {
	return &Reader{
		fetcher: fetcher,
		cache:   model.NewRefCache(),
	}
}

// ReadUI fetches the platform tree and returns the normalized, ref-assigned
// elements, repopulating the cache as a side effect. The cache is cleared
// before the fetch: a failed fetch leaves it explicitly empty, never
// half-written. An unmatched window or empty tree is a valid empty result.
func (r *Reader) ReadUI(ctx context.Context, opts Options) ([]model.Element, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	depth := opts.Depth
	if depth <= 0 {
		depth = DefaultDepth
	}
	filter := opts.Filter
	if filter == "" {
		filter = model.FilterAll
	}

	r.cache.Reset()

	raw, err := r.fetcher.FetchTree(ctx, platform.FetchOptions{
		WindowTitle: opts.WindowTitle,
		Depth:       depth,
	})
	if err != nil {
		return nil, err
	}

	return model.ProcessTree(raw, filter, r.cache), nil
}

// ElementByRef resolves ref against the current generation. Absence is a
// normal outcome for stale or unknown refs.
func (r *Reader) ElementByRef(ref string) (model.Element, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cache.Get(ref)
}

// ElementCenter resolves ref to the element's center point in screen
// pixels, for click/type targeting.
func (r *Reader) ElementCenter(ref string) (x, y int, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cache.Center(ref)
}

// CachedCount returns the number of elements in the current generation.
func (r *Reader) CachedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cache.Len()
}
