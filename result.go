package datagrid

import (
	"time"

	"github.com/friendsofgo/errors"
)

// Row is the API-facing row shape served to the grid in both pagination
// modes. Storage models are mapped onto it with MapRows.
type Row struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Result is a single page of grid data plus the metadata the grid needs to
// drive its pager.
//
// Type parameter T is the row type.
type Result[T any] struct {
	// Rows contains the items for this page.
	Rows []T `json:"rows"`

	// TotalCount is the number of rows matching the filter, independent of
	// pagination. Nil in keyset mode, which never computes totals.
	TotalCount *int64 `json:"totalCount,omitempty"`

	// NextCursor is the keyset continuation point, computed from the last
	// row of this page. Nil in offset mode, and nil in keyset mode when the
	// page was empty (terminal state: no more rows).
	NextCursor *Cursor `json:"nextCursor,omitempty"`

	// HasNextPage reports whether another page exists.
	HasNextPage bool `json:"hasNextPage"`

	// HasPreviousPage reports whether a page precedes this one.
	HasPreviousPage bool `json:"hasPreviousPage"`

	// Metadata provides observability and the effective (post-coercion)
	// request parameters.
	Metadata Metadata `json:"meta"`
}

// Metadata provides observability information about one pagination
// execution, plus the effective parameters after defaulting and coercion.
// This data is useful for monitoring, alerting, and debugging slow grids.
type Metadata struct {
	// Strategy identifies which pagination strategy produced the result.
	// Values: "offset", "keyset".
	Strategy string `json:"strategy"`

	// QueryTimeMs is the wall-clock time spent fetching the page of rows.
	QueryTimeMs int64 `json:"queryTimeMs"`

	// CountTimeMs is the wall-clock time spent resolving the total count.
	// Zero in keyset mode.
	CountTimeMs int64 `json:"countTimeMs,omitempty"`

	// CountFromCache reports whether the total came from the count cache.
	CountFromCache bool `json:"countFromCache,omitempty"`

	// CountCacheTTLMs is the cache staleness bound, when the cache reports
	// one. The displayed total may lag reality by up to this long.
	CountCacheTTLMs int64 `json:"countCacheTtlMs,omitempty"`

	// Page and PageSize are the effective pagination parameters.
	Page     int `json:"page,omitempty"`
	PageSize int `json:"pageSize"`

	// Sort is the effective sort, after allowlist coercion. Offset mode only.
	Sort string `json:"sort,omitempty"`

	// Search and Status are the normalized filter parameters.
	Search string `json:"search,omitempty"`
	Status string `json:"status,omitempty"`

	// UsedCursor reports whether a keyset request carried a valid cursor.
	UsedCursor bool `json:"usedCursor,omitempty"`
}

// MapRows converts a result over storage models into a result over API rows,
// preserving pagination state and metadata.
//
// Example:
//
//	page, err := executor.Paginate(ctx, filter, sort, req)
//	out, err := datagrid.MapRows(page, toRow)
func MapRows[From any, To any](r *Result[From], transform func(From) (To, error)) (*Result[To], error) {
	out := &Result[To]{
		Rows:            make([]To, 0, len(r.Rows)),
		TotalCount:      r.TotalCount,
		NextCursor:      r.NextCursor,
		HasNextPage:     r.HasNextPage,
		HasPreviousPage: r.HasPreviousPage,
		Metadata:        r.Metadata,
	}

	for i, item := range r.Rows {
		transformed, err := transform(item)
		if err != nil {
			return nil, errors.Wrapf(err, "transform row at index %d", i)
		}
		out.Rows = append(out.Rows, transformed)
	}

	return out, nil
}
