// Package keyset provides the cursor-based (keyset) pagination executor.
//
// Keyset pagination anchors each page on the composite key of the last row
// of the previous page instead of a row offset. With a composite index on
// the sort columns the engine seeks directly to the boundary, so retrieval
// cost is bounded by the page size and independent of how many pages precede
// it. This is the strategy for infinite scroll over large datasets.
//
// The trade: only forward traversal from a known cursor (or a restart at
// page one) is possible. There is no "jump to page N".
//
// Ordering is fixed at (created_at DESC, id DESC); the id tiebreaker makes
// the key totally ordered, so a page boundary is always unambiguous.
package keyset

import (
	"context"
	"time"

	datagrid "github.com/nrfta/go-datagrid"
)

// Strategy is the metadata identifier for this executor.
const Strategy = "keyset"

// Order is the fixed keyset ordering. The boundary predicate compares the
// composite (created_at, id) key lexicographically under this order.
var Order = []datagrid.OrderBy{
	{Column: "created_at", Desc: true},
	{Column: "id", Desc: true},
}

// KeyFunc extracts the composite cursor key from a row. The returned cursor
// must carry the same values the row sorts by, or chained pages will skip or
// repeat rows.
type KeyFunc[T any] func(item T) datagrid.Cursor

// Executor runs keyset pagination over a Fetcher.
//
// Type parameter T is the storage model type.
type Executor[T any] struct {
	fetcher datagrid.Fetcher[T]
	key     KeyFunc[T]
	config  *datagrid.PageConfig
}

// New creates a keyset executor.
//
// Example:
//
//	executor := keyset.New(fetcher, func(p *models.Person) datagrid.Cursor {
//	    return datagrid.Cursor{CreatedAt: p.CreatedAt, ID: p.ID}
//	})
func New[T any](
	fetcher datagrid.Fetcher[T],
	key KeyFunc[T],
	opts ...datagrid.PaginateOption,
) *Executor[T] {
	return &Executor[T]{
		fetcher: fetcher,
		key:     key,
		config:  datagrid.ApplyPaginateOptions(opts...),
	}
}

// Paginate returns up to pageSize rows strictly after the cursor under
// (created_at DESC, id DESC). A nil cursor means first page; callers
// assembling a cursor from transport fields should use
// datagrid.CursorFromParts, which already discards partial cursors.
//
// One row beyond the page size is fetched to detect whether a next page
// exists without a count query. NextCursor is taken from the last row of the
// returned (trimmed) page, or nil when the page is empty, which is the
// terminal state for a chained traversal.
func (e *Executor[T]) Paginate(
	ctx context.Context,
	filter datagrid.FilterSpec,
	pageSize int,
	cursor *datagrid.Cursor,
) (*datagrid.Result[T], error) {
	filter = filter.Normalize()
	limit := e.config.EffectiveSize(pageSize)

	params := datagrid.FetchParams{
		Limit:   limit + 1,
		Cursor:  cursor,
		Filter:  filter,
		OrderBy: Order,
	}

	queryStart := time.Now()
	items, err := e.fetcher.Fetch(ctx, params)
	if err != nil {
		return nil, err
	}
	queryTime := time.Since(queryStart)

	hasNextPage := len(items) > limit
	if hasNextPage {
		items = items[:limit]
	}

	var nextCursor *datagrid.Cursor
	if len(items) > 0 {
		last := e.key(items[len(items)-1])
		nextCursor = &last
	}

	return &datagrid.Result[T]{
		Rows:            items,
		NextCursor:      nextCursor,
		HasNextPage:     hasNextPage,
		HasPreviousPage: cursor != nil,
		Metadata: datagrid.Metadata{
			Strategy:    Strategy,
			QueryTimeMs: queryTime.Milliseconds(),
			PageSize:    limit,
			Search:      filter.Search.String,
			Status:      string(filter.Status),
			UsedCursor:  cursor != nil,
		},
	}, nil
}
