package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// preferenceRepo implements PreferenceRepo on the preferences table.
type preferenceRepo struct {
	drv *entsql.Driver
}

func (r *preferenceRepo) Get(ctx context.Context, key string) (string, bool, error) {
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select(colValue).
		From(b.Table(preferencesTable)).
		Where(entsql.EQ(colKey, key)).
		Limit(1).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return "", false, fmt.Errorf("query preference %q: %w", key, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return "", false, fmt.Errorf("query preference %q: %w", key, err)
		}
		return "", false, nil
	}

	var value string
	if err := rows.Scan(&value); err != nil {
		return "", false, fmt.Errorf("scan preference %q: %w", key, err)
	}
	return value, true, nil
}

func (r *preferenceRepo) Set(ctx context.Context, key, value string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(preferencesTable).
		Columns(colKey, colValue, colUpdatedAt).
		Values(key, value, time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns(colKey),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save preference %q: %w", key, err)
	}
	return nil
}
