// Package sqlboiler lowers datagrid queries into SQLBoiler query mods.
//
// This package is the query compiler: it turns validated filter, sort, and
// pagination parameters into parameterized qm.QueryMod values. Filter values
// always ride as bind parameters; the only identifiers that reach a query
// are the allowlisted sort columns the root package resolves. No user text
// is ever interpolated into SQL.
//
// The design separates ORM integration (the generic Fetcher) from pagination
// strategy (the *QueryMods converters), so:
//  1. new strategies can be added without changing the fetcher, and
//  2. other ORMs can be supported by implementing datagrid.Fetcher[T].
//
// Example usage:
//
//	fetcher := sqlboiler.NewFetcher(
//	    func(ctx context.Context, mods ...qm.QueryMod) ([]*models.Person, error) {
//	        return models.People(mods...).All(ctx, db)
//	    },
//	    func(ctx context.Context, mods ...qm.QueryMod) (int64, error) {
//	        return models.People(mods...).Count(ctx, db)
//	    },
//	    sqlboiler.OffsetQueryMods,
//	)
package sqlboiler

import (
	"context"

	"github.com/aarondl/sqlboiler/v4/queries/qm"

	datagrid "github.com/nrfta/go-datagrid"
)

// QueryFunc executes a SQLBoiler query and returns results.
// This is ORM-specific but strategy-agnostic.
//
// Type parameter T is the SQLBoiler model type (e.g., *models.Person).
type QueryFunc[T any] func(ctx context.Context, mods ...qm.QueryMod) ([]T, error)

// CountFunc executes a SQLBoiler count query.
type CountFunc func(ctx context.Context, mods ...qm.QueryMod) (int64, error)

// Fetcher implements datagrid.Fetcher[T] over SQLBoiler queries. It is
// generic over pagination strategy: the strategy-specific conversion from
// FetchParams to query mods is supplied as queryModsFn (OffsetQueryMods or
// KeysetQueryMods).
type Fetcher[T any] struct {
	queryFunc   QueryFunc[T]
	countFunc   CountFunc
	queryModsFn func(datagrid.FetchParams) []qm.QueryMod
}

// NewFetcher creates a SQLBoiler fetcher with a strategy-specific query
// builder.
func NewFetcher[T any](
	queryFunc QueryFunc[T],
	countFunc CountFunc,
	queryModsFn func(datagrid.FetchParams) []qm.QueryMod,
) datagrid.Fetcher[T] {
	return &Fetcher[T]{
		queryFunc:   queryFunc,
		countFunc:   countFunc,
		queryModsFn: queryModsFn,
	}
}

// Fetch retrieves items using the strategy-specific query mods.
func (f *Fetcher[T]) Fetch(ctx context.Context, params datagrid.FetchParams) ([]T, error) {
	mods := f.queryModsFn(params)
	return f.queryFunc(ctx, mods...)
}

// Count returns the number of items matching the filter, ignoring
// pagination and ordering. Only the filter predicate is applied: the total
// for "page 7 of ACTIVE rows" is the total of ACTIVE rows.
func (f *Fetcher[T]) Count(ctx context.Context, params datagrid.FetchParams) (int64, error) {
	return f.countFunc(ctx, FilterQueryMods(params.Filter)...)
}
