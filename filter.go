package datagrid

import (
	"encoding/json"
	"strings"

	"github.com/aarondl/null/v8"
)

// Status is the lifecycle state of a row.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// IsValid reports whether s is one of the known status values.
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// ParseStatus converts raw input into a Status. Anything other than the two
// known values (case-insensitively) is treated as "no status filter".
func ParseStatus(raw string) Status {
	switch Status(strings.ToUpper(strings.TrimSpace(raw))) {
	case StatusActive:
		return StatusActive
	case StatusInactive:
		return StatusInactive
	default:
		return ""
	}
}

// FilterSpec is the filter condition for a grid query. The zero value means
// "no filtering".
//
// The normalized form of a FilterSpec is the canonical identity of a filter
// condition: it is what the count cache is keyed by, so two requests that
// differ only in search-term whitespace share a cache entry.
type FilterSpec struct {
	// Search matches rows whose name or email contain the term.
	// Invalid (absent) means no search filtering.
	Search null.String `json:"search,omitempty"`

	// Status restricts rows to one lifecycle state. Empty means both.
	Status Status `json:"status,omitempty"`
}

// Normalize returns the canonical form of the filter: a search term that is
// empty or whitespace-only collapses to absent, and an unknown status
// collapses to no status filter. Normalize is idempotent.
func (f FilterSpec) Normalize() FilterSpec {
	out := f

	if f.Search.Valid {
		trimmed := strings.TrimSpace(f.Search.String)
		if trimmed == "" {
			out.Search = null.String{}
		} else {
			out.Search = null.StringFrom(trimmed)
		}
	}

	if !f.Status.IsValid() {
		out.Status = ""
	}

	return out
}

// CacheKey returns the count-cache key for this filter condition.
//
// The key is derived from the structured fields via JSON encoding, never by
// joining raw user text with a separator, so user input cannot collide two
// distinct filter conditions onto one key.
func (f FilterSpec) CacheKey() string {
	n := f.Normalize()

	data, err := json.Marshal(struct {
		Search *string `json:"search"`
		Status string  `json:"status"`
	}{
		Search: n.Search.Ptr(),
		Status: string(n.Status),
	})
	if err != nil {
		// Marshaling a struct of a *string and a string cannot fail.
		return ""
	}

	return string(data)
}

// IsZero reports whether the normalized filter matches every row.
func (f FilterSpec) IsZero() bool {
	n := f.Normalize()
	return !n.Search.Valid && n.Status == ""
}
