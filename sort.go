package datagrid

import "strings"

// DefaultSortField is the API-facing sort field used when the requested
// field is missing or not allowlisted.
const DefaultSortField = "createdAt"

// sortableColumns maps API-facing sort fields to database columns.
//
// This allowlist is a security invariant, not a convenience: only values on
// the right-hand side ever reach a query, so user input can never name an
// arbitrary (or unindexed) column.
var sortableColumns = map[string]string{
	"id":        "id",
	"name":      "name",
	"email":     "email",
	"status":    "status",
	"createdAt": "created_at",
}

// SortSpec is a validated sort request: an API-facing field name plus a
// direction. Use ParseSort to build one from raw input.
type SortSpec struct {
	Field string `json:"field"`
	Desc  bool   `json:"desc"`
}

// DefaultSort is the sort applied when the client sends none: newest first.
func DefaultSort() SortSpec {
	return SortSpec{Field: DefaultSortField, Desc: true}
}

// ParseSort parses a "<field>:<asc|desc>" sort expression.
//
// Unknown fields are coerced to the default field rather than rejected; a
// grid render should never fail over a bad sort key. Direction defaults to
// descending unless explicitly "asc".
func ParseSort(raw string) SortSpec {
	field, dir, _ := strings.Cut(strings.TrimSpace(raw), ":")

	if _, ok := sortableColumns[field]; !ok {
		field = DefaultSortField
	}

	return SortSpec{
		Field: field,
		Desc:  !strings.EqualFold(strings.TrimSpace(dir), "asc"),
	}
}

// Resolve coerces the spec onto the allowlist and returns the effective spec.
// Resolve is idempotent; ParseSort output is already resolved.
func (s SortSpec) Resolve() SortSpec {
	if _, ok := sortableColumns[s.Field]; !ok {
		s.Field = DefaultSortField
	}
	return s
}

// Column returns the database column for the resolved sort field.
func (s SortSpec) Column() string {
	return sortableColumns[s.Resolve().Field]
}

// OrderBy lowers the spec into ORDER BY directives. A unique id tiebreaker
// is appended so the ordering is total: without it, rows that compare equal
// on the sort column could swap across page boundaries between requests.
func (s SortSpec) OrderBy() []OrderBy {
	col := s.Column()

	orderBy := []OrderBy{{Column: col, Desc: s.Desc}}
	if col != "id" {
		orderBy = append(orderBy, OrderBy{Column: "id", Desc: s.Desc})
	}

	return orderBy
}

// String renders the spec back into "<field>:<asc|desc>" form for metadata.
func (s SortSpec) String() string {
	dir := "desc"
	if !s.Desc {
		dir = "asc"
	}
	return s.Resolve().Field + ":" + dir
}
