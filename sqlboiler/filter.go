package sqlboiler

import (
	"strings"

	"github.com/aarondl/sqlboiler/v4/queries/qm"

	datagrid "github.com/nrfta/go-datagrid"
)

// searchColumns are the columns a search term matches against.
var searchColumns = []string{"name", "email"}

// FilterQueryMods lowers a filter condition into parameterized WHERE mods.
//
// The search term matches name or email case-insensitively (ILIKE, so the
// match does not depend on the database's default collation). LIKE
// metacharacters in the term are escaped, so a user searching for "50%"
// matches the literal text rather than every row.
//
// Requires PostgreSQL for ILIKE, consistent with the keyset comparison in
// this package.
func FilterQueryMods(filter datagrid.FilterSpec) []qm.QueryMod {
	filter = filter.Normalize()
	mods := []qm.QueryMod{}

	if filter.Search.Valid {
		pattern := "%" + escapeLikePattern(filter.Search.String) + "%"

		clauses := make([]string, len(searchColumns))
		args := make([]interface{}, len(searchColumns))
		for i, col := range searchColumns {
			clauses[i] = col + " ILIKE ?"
			args[i] = pattern
		}

		mods = append(mods, qm.Where("("+strings.Join(clauses, " OR ")+")", args...))
	}

	if filter.Status.IsValid() {
		mods = append(mods, qm.Where("status = ?", string(filter.Status)))
	}

	return mods
}

// escapeLikePattern escapes LIKE metacharacters with a backslash, the
// PostgreSQL default escape character.
func escapeLikePattern(term string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`%`, `\%`,
		`_`, `\_`,
	)
	return replacer.Replace(term)
}
