package pgtest

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/friendsofgo/errors"
)

// SeedPeople inserts count rows and returns their IDs in insertion order.
//
// The data is shaped to exercise pagination edge cases:
//   - created_at is staggered hourly, oldest first, so insertion order i
//     maps to ascending created_at;
//   - every fifth row shares its timestamp with the previous one, so the
//     (created_at DESC, id DESC) tiebreaker actually gets exercised;
//   - every third row is INACTIVE, the rest ACTIVE;
//   - names are "User N" and emails "userN@example.com", giving search
//     terms like "user 5" predictable matches.
func SeedPeople(ctx context.Context, db *sql.DB, count int) ([]int64, error) {
	ids := make([]int64, 0, count)
	base := time.Now().Add(-time.Duration(count) * time.Hour).Truncate(time.Second)

	createdAt := base
	for i := 0; i < count; i++ {
		if i%5 != 0 || i == 0 {
			createdAt = base.Add(time.Duration(i) * time.Hour)
		}

		status := "ACTIVE"
		if i%3 == 0 {
			status = "INACTIVE"
		}

		var id int64
		err := db.QueryRowContext(ctx, `
			INSERT INTO people (name, email, status, created_at)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`,
			fmt.Sprintf("User %d", i+1),
			fmt.Sprintf("user%d@example.com", i+1),
			status,
			createdAt,
		).Scan(&id)
		if err != nil {
			return nil, errors.Wrapf(err, "seed person %d", i)
		}

		ids = append(ids, id)
	}

	return ids, nil
}
