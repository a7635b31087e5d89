// Package offset provides the offset-based pagination executor.
//
// Offset pagination retrieves a page by skipping a computed number of
// preceding rows (LIMIT/OFFSET). It supports arbitrary page jumps (the grid
// can go straight to page N) at the price of retrieval cost that grows with
// depth: the engine must traverse and discard every preceding matched,
// sorted row before the window starts, and latency grows materially once
// the offset passes the same order of magnitude as the engine's working
// set. That ceiling is inherent to the strategy; the keyset package is the
// depth-independent alternative.
package offset

import (
	"context"
	"time"

	datagrid "github.com/nrfta/go-datagrid"
)

// Strategy is the metadata identifier for this executor.
const Strategy = "offset"

// Executor runs offset pagination over a Fetcher, resolving totals through
// a CountCache.
//
// Type parameter T is the storage model type.
type Executor[T any] struct {
	fetcher datagrid.Fetcher[T]
	counts  datagrid.CountCache
	config  *datagrid.PageConfig
}

// New creates an offset executor. counts may be nil, in which case every
// request recomputes the total.
func New[T any](
	fetcher datagrid.Fetcher[T],
	counts datagrid.CountCache,
	opts ...datagrid.PaginateOption,
) *Executor[T] {
	return &Executor[T]{
		fetcher: fetcher,
		counts:  counts,
		config:  datagrid.ApplyPaginateOptions(opts...),
	}
}

// Paginate returns up to pageSize rows starting at (page-1)*pageSize, plus
// the total matching row count.
//
// Inputs are coerced, never rejected: page below 1 becomes 1, a missing or
// oversized page size becomes the configured default or cap, and the sort is
// resolved against the allowlist. A storage failure is the only error path.
func (e *Executor[T]) Paginate(
	ctx context.Context,
	filter datagrid.FilterSpec,
	sort datagrid.SortSpec,
	req datagrid.PageRequest,
) (*datagrid.Result[T], error) {
	filter = filter.Normalize()
	sort = sort.Resolve()

	pageSize := e.config.EffectiveSize(req.PageSize)
	page := req.EffectivePage()

	params := datagrid.FetchParams{
		Limit:   pageSize,
		Offset:  req.OffsetFor(pageSize),
		Filter:  filter,
		OrderBy: sort.OrderBy(),
	}

	countStart := time.Now()
	total, fromCache, err := e.totalCount(ctx, filter, params)
	if err != nil {
		return nil, err
	}
	countTime := time.Since(countStart)

	queryStart := time.Now()
	rows, err := e.fetcher.Fetch(ctx, params)
	if err != nil {
		return nil, err
	}
	queryTime := time.Since(queryStart)

	result := &datagrid.Result[T]{
		Rows:            rows,
		TotalCount:      &total,
		HasNextPage:     int64(params.Offset+pageSize) < total,
		HasPreviousPage: page > 1,
		Metadata: datagrid.Metadata{
			Strategy:       Strategy,
			QueryTimeMs:    queryTime.Milliseconds(),
			CountTimeMs:    countTime.Milliseconds(),
			CountFromCache: fromCache,
			Page:           page,
			PageSize:       pageSize,
			Sort:           sort.String(),
			Search:         filter.Search.String,
			Status:         string(filter.Status),
		},
	}

	if reporter, ok := e.counts.(datagrid.TTLReporter); ok {
		result.Metadata.CountCacheTTLMs = reporter.TTL().Milliseconds()
	}

	return result, nil
}

// PageCount returns the number of pages a total splits into at a page size.
func PageCount(total int64, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// totalCount resolves the total for the filter, consulting the cache first.
// A miss recomputes through the fetcher and repopulates the cache; two
// concurrent misses both recompute, and whichever writes last wins.
func (e *Executor[T]) totalCount(
	ctx context.Context,
	filter datagrid.FilterSpec,
	params datagrid.FetchParams,
) (int64, bool, error) {
	if e.counts == nil {
		total, err := e.fetcher.Count(ctx, params)
		return total, false, err
	}

	key := filter.CacheKey()
	if total, ok := e.counts.Get(key); ok {
		return total, true, nil
	}

	total, err := e.fetcher.Count(ctx, params)
	if err != nil {
		return 0, false, err
	}

	e.counts.Set(key, total)
	return total, false, nil
}
