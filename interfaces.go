package datagrid

import (
	"context"
	"time"
)

// Fetcher abstracts database queries for any ORM or database layer.
// This interface allows the pagination executors to work with SQLBoiler,
// GORM, sqlc, or raw SQL without being tightly coupled to any specific ORM.
//
// Type parameter T is the database model type (e.g., *models.Person).
type Fetcher[T any] interface {
	// Fetch retrieves items from storage based on the given parameters.
	// It must apply the filter predicate, ordering, limit, and either the
	// offset or the cursor bound, depending on which is set.
	Fetch(ctx context.Context, params FetchParams) ([]T, error)

	// Count returns the total number of items matching the filter, without
	// pagination. The count must honor params.Filter: the total a grid
	// displays is the total for the current filter condition, not the table.
	Count(ctx context.Context, params FetchParams) (int64, error)
}

// FetchParams contains all parameters needed to fetch a page of data.
// Executors construct these based on their strategy: the offset executor
// sets Offset, the keyset executor sets Cursor.
type FetchParams struct {
	// Limit is the maximum number of items to fetch.
	Limit int

	// Offset is the number of items to skip (offset strategy only).
	Offset int

	// Cursor is the keyset position boundary (keyset strategy only).
	// Nil means first page.
	Cursor *Cursor

	// Filter is the normalized filter condition.
	Filter FilterSpec

	// OrderBy specifies the sort order for results.
	OrderBy []OrderBy
}

// OrderBy represents a sort directive for query results.
type OrderBy struct {
	// Column is the database column to sort by.
	Column string

	// Desc indicates descending order. False means ascending.
	Desc bool
}

// CountCache memoizes the aggregate row count for a filter condition.
// The key is the serialized, normalized FilterSpec (see FilterSpec.CacheKey);
// sort and page parameters never participate in the key since they do not
// affect the count.
//
// Implementations are expected to bound staleness with a TTL but are not
// required to serialize concurrent misses: independently recomputed values
// for the same key are interchangeable within the TTL window, so last-write-
// wins overwriting is always safe.
type CountCache interface {
	// Get returns the cached count for key, or false if absent or expired.
	Get(key string) (int64, bool)

	// Set stores the count for key, restarting its TTL.
	Set(key string, count int64)
}

// TTLReporter is optionally implemented by CountCache implementations that
// can report their TTL. Executors use it to fill Metadata.CountCacheTTL.
type TTLReporter interface {
	TTL() time.Duration
}
