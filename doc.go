// Package datagrid is the data-access core for serving large, filterable,
// sortable tabular datasets to a grid UI without shipping the full dataset
// to the client.
//
// The package provides the shared vocabulary used by the strategy packages:
//
//   - FilterSpec / SortSpec: validated, normalized query parameters. Sort
//     fields are allowlisted; unknown fields fall back to a safe default
//     instead of erroring, so a bad sort key never breaks a grid render.
//   - PageRequest / PageConfig: page-number pagination arguments with
//     default and maximum page sizes (silent capping, never rejection).
//   - Cursor: the composite (createdAt, id) key used by keyset pagination.
//   - Fetcher / FetchParams: the storage abstraction implemented by the
//     sqlboiler subpackage (or any other ORM adapter).
//   - CountCache: the aggregate-count cache contract implemented by the
//     countcache subpackage.
//
// Strategy packages build on these types:
//
//   - offset: LIMIT/OFFSET retrieval with cached total counts. Supports
//     arbitrary page jumps; cost grows with page depth.
//   - keyset: cursor-based retrieval ordered by (created_at DESC, id DESC).
//     Cost is independent of depth; forward traversal only.
//   - sequencer: the client-side protocol that debounces rapid input and
//     guarantees the newest request's result is the one applied.
//
// Example usage:
//
//	fetcher := sqlboiler.NewFetcher(queryFunc, countFunc, sqlboiler.OffsetQueryMods)
//	counts := countcache.New(countcache.WithTTL(30 * time.Second))
//	executor := offset.New(fetcher, counts)
//
//	result, err := executor.Paginate(ctx, filter, sort, datagrid.PageRequest{Page: 1, PageSize: 25})
package datagrid
