// Package pgtest provides the PostgreSQL test rig for the integration
// suites: a disposable container, the reference grid schema, seed data, and
// a minimal SQLBoiler-compatible model for the people table.
//
// The schema mirrors what the executors assume in production: a composite
// index on (created_at DESC, id DESC) so keyset queries can seek to the page
// boundary instead of scanning discarded rows.
package pgtest

import (
	"context"
	"database/sql"

	"github.com/friendsofgo/errors"
	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Container represents a running PostgreSQL testcontainer with the grid
// schema installed.
type Container struct {
	Container *postgres.PostgresContainer
	DB        *sql.DB
	ConnStr   string
}

// SetupPostgres starts a PostgreSQL container and installs the schema.
func SetupPostgres(ctx context.Context) (*Container, error) {
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2),
		),
	)
	if err != nil {
		return nil, errors.Wrap(err, "start postgres container")
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		pgContainer.Terminate(ctx)
		return nil, errors.Wrap(err, "get connection string")
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		pgContainer.Terminate(ctx)
		return nil, errors.Wrap(err, "open database")
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		pgContainer.Terminate(ctx)
		return nil, errors.Wrap(err, "ping database")
	}

	if err := createSchema(ctx, db); err != nil {
		db.Close()
		pgContainer.Terminate(ctx)
		return nil, errors.Wrap(err, "create schema")
	}

	return &Container{
		Container: pgContainer,
		DB:        db,
		ConnStr:   connStr,
	}, nil
}

// Terminate stops and removes the container.
func (c *Container) Terminate(ctx context.Context) error {
	if c.DB != nil {
		c.DB.Close()
	}
	if c.Container != nil {
		return c.Container.Terminate(ctx)
	}
	return nil
}

// createSchema installs the people table and its pagination indexes.
func createSchema(ctx context.Context, db *sql.DB) error {
	schema := `
		CREATE TABLE people (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			status VARCHAR(16) NOT NULL DEFAULT 'ACTIVE',
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		);

		-- Composite index matching the keyset ordering: the boundary
		-- predicate seeks on it instead of scanning discarded rows.
		CREATE INDEX idx_people_created_at_id ON people (created_at DESC, id DESC);
		CREATE INDEX idx_people_status ON people (status);
	`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// CleanupPeople truncates the people table between specs.
func CleanupPeople(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, "TRUNCATE TABLE people RESTART IDENTITY")
	return err
}
