package sqlboiler

import (
	"strings"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/aarondl/strmangle"

	datagrid "github.com/nrfta/go-datagrid"
)

// OffsetQueryMods converts FetchParams into query mods for offset
// pagination.
//
// The conversion follows these rules:
//   - Filter  → parameterized WHERE mods (FilterQueryMods)
//   - Offset  → qm.Offset(n)
//   - Limit   → qm.Limit(n)
//   - OrderBy → qm.OrderBy("col1 DESC, col2 DESC")
//
// Cost model: the engine traverses and discards Offset rows of the matched,
// sorted set before the window starts, so deep pages are expected to be
// slower. That is the documented ceiling of this strategy, not a bug; use
// the keyset strategy when depth-independent cost matters.
func OffsetQueryMods(params datagrid.FetchParams) []qm.QueryMod {
	mods := FilterQueryMods(params.Filter)

	if params.Offset > 0 {
		mods = append(mods, qm.Offset(params.Offset))
	}

	if params.Limit > 0 {
		mods = append(mods, qm.Limit(params.Limit))
	}

	if len(params.OrderBy) > 0 {
		mods = append(mods, qm.OrderBy(buildOrderByClause(params.OrderBy)))
	}

	return mods
}

// buildOrderByClause constructs an ORDER BY clause from OrderBy directives.
// Assumes len(orderBy) > 0 (caller must verify). Columns are quoted; the
// directives themselves only ever carry allowlisted columns, so quoting is
// belt and braces rather than the safety boundary.
//
// Example:
//
//	[]OrderBy{
//	    {Column: "created_at", Desc: true},
//	    {Column: "id", Desc: false},
//	}
//	→ `"created_at" DESC, "id"`
func buildOrderByClause(orderBy []datagrid.OrderBy) string {
	parts := make([]string, len(orderBy))
	for i, o := range orderBy {
		parts[i] = strmangle.IdentQuote('"', '"', o.Column)
		if o.Desc {
			parts[i] += " DESC"
		}
	}
	return strings.Join(parts, ", ")
}
