package pgtest

import (
	"context"
	"time"

	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/drivers"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

// Person is the storage model for the people table.
type Person struct {
	ID        int64     `boil:"id" json:"id"`
	Name      string    `boil:"name" json:"name"`
	Email     string    `boil:"email" json:"email"`
	Status    string    `boil:"status" json:"status"`
	CreatedAt time.Time `boil:"created_at" json:"created_at"`
}

// dialect matches PostgreSQL: double-quoted identifiers and $N placeholders.
var dialect = drivers.Dialect{
	LQ:                   '"',
	RQ:                   '"',
	UseIndexPlaceholders: true,
	UseDefaultKeyword:    true,
}

// NewQuery initializes a new Query using the passed in QueryMods.
func NewQuery(mods ...qm.QueryMod) *queries.Query {
	q := &queries.Query{}
	queries.SetDialect(q, &dialect)
	qm.Apply(q, mods...)

	return q
}

const personColumns = "id, name, email, status, created_at"

type personQuery struct {
	*queries.Query
}

// People returns a query against the people table with the given mods.
func People(mods ...qm.QueryMod) personQuery {
	base := []qm.QueryMod{
		qm.Select(personColumns),
		qm.From(`"people"`),
	}
	return personQuery{NewQuery(append(base, mods...)...)}
}

// All executes the query and binds every matching Person.
func (q personQuery) All(ctx context.Context, exec boil.ContextExecutor) ([]*Person, error) {
	var people []*Person
	if err := q.Bind(ctx, exec, &people); err != nil {
		return nil, err
	}
	return people, nil
}

// Count executes the query as COUNT(*).
func (q personQuery) Count(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	queries.SetSelect(q.Query, nil)
	queries.SetCount(q.Query)

	var count int64
	err := q.QueryRowContext(ctx, exec).Scan(&count)
	return count, err
}
