package sqlboiler

import (
	"fmt"
	"strings"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"

	datagrid "github.com/nrfta/go-datagrid"
)

// KeysetQueryMods converts FetchParams into query mods for keyset (cursor)
// pagination.
//
// The conversion follows these rules:
//   - Filter  → parameterized WHERE mods (FilterQueryMods)
//   - Cursor  → an expanded composite comparison WHERE clause
//   - Limit   → qm.Limit(n)
//   - OrderBy → qm.OrderBy("created_at DESC, id DESC")
//
// Cost model: the comparison predicate plus a composite index on the sort
// columns lets the engine seek directly to the page boundary, so retrieval
// cost is bounded by Limit and independent of how many pages precede it.
//
// Requires a composite index matching the ordering:
//
//	CREATE INDEX idx ON people (created_at DESC, id DESC);
func KeysetQueryMods(params datagrid.FetchParams) []qm.QueryMod {
	mods := FilterQueryMods(params.Filter)

	if params.Cursor != nil && len(params.OrderBy) > 0 {
		clause, args := buildKeysetWhereClause(params.Cursor, params.OrderBy)
		if clause != "" {
			mods = append(mods, rawWhereClause(clause, args))
		}
	}

	if params.Limit > 0 {
		mods = append(mods, qm.Limit(params.Limit))
	}

	if len(params.OrderBy) > 0 {
		mods = append(mods, qm.OrderBy(buildOrderByClause(params.OrderBy)))
	}

	return mods
}

// buildKeysetWhereClause builds the page-boundary predicate in expanded
// comparison form:
//
//	DESC order: (col1 < ? OR (col1 = ? AND col2 < ?))
//	ASC order:  (col1 > ? OR (col1 = ? AND col2 > ?))
//
// This is the lexicographic composite comparison, NOT independent
// per-column comparisons, which would wrongly exclude rows that are larger
// on a later column while tied on an earlier one.
//
// Returns an empty clause if the cursor cannot supply a value for every
// ordered column, in which case the caller must treat the request as
// unbounded (first page) rather than apply a partial bound.
func buildKeysetWhereClause(cursor *datagrid.Cursor, orderBy []datagrid.OrderBy) (string, []interface{}) {
	if cursor == nil || len(orderBy) == 0 {
		return "", nil
	}

	operator := ">"
	if orderBy[0].Desc {
		operator = "<"
	}

	var parts []string
	var args []interface{}

	for i, order := range orderBy {
		val, ok := cursorValue(cursor, order.Column)
		if !ok {
			return "", nil
		}

		if i == 0 {
			parts = append(parts, fmt.Sprintf("%s %s ?", order.Column, operator))
			args = append(args, val)
			continue
		}

		// Equality on all preceding columns, then the comparison.
		var equalityParts []string
		for j := 0; j < i; j++ {
			prev := orderBy[j]
			prevVal, _ := cursorValue(cursor, prev.Column)
			equalityParts = append(equalityParts, fmt.Sprintf("%s = ?", prev.Column))
			args = append(args, prevVal)
		}

		parts = append(parts, fmt.Sprintf("(%s AND %s %s ?)",
			strings.Join(equalityParts, " AND "),
			order.Column,
			operator,
		))
		args = append(args, val)
	}

	return "(" + strings.Join(parts, " OR ") + ")", args
}

// cursorValue maps an ordered column onto the corresponding cursor field.
func cursorValue(cursor *datagrid.Cursor, column string) (interface{}, bool) {
	switch column {
	case "created_at":
		return cursor.CreatedAt, true
	case "id":
		return cursor.ID, true
	default:
		return nil, false
	}
}

// rawWhereClause injects a WHERE clause directly into the query. qm.Where
// does not handle the composite comparison's nested parenthesization, so the
// clause and its args are appended to the WHERE buffer as-is; the values
// still ride as bind parameters.
func rawWhereClause(clause string, args []interface{}) qm.QueryMod {
	return qm.QueryModFunc(func(q *queries.Query) {
		queries.AppendWhere(q, clause, args...)
	})
}
