package postgres

import (
	"context"
	"database/sql"

	"biztime/internal/repository"
)

// scanner is the subset of *sql.Rows used by row scan functions.
type scanner interface {
	Scan(dest ...any) error
}

// query runs a parameterized statement that returns rows and collects every
// row with scan. Count is the number of rows returned.
func query[T any](ctx context.Context, db *sql.DB, scan func(scanner, *T) error, q string, args ...any) (repository.Result[T], error) {
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return repository.Result[T]{}, err
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		var v T
		if err := scan(rows, &v); err != nil {
			return repository.Result[T]{}, err
		}
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return repository.Result[T]{}, err
	}

	return repository.Result[T]{Rows: items, Count: int64(len(items))}, nil
}

// exec runs a parameterized statement that returns no rows. Count is the
// number of rows affected.
func exec(ctx context.Context, db *sql.DB, q string, args ...any) (repository.Result[struct{}], error) {
	res, err := db.ExecContext(ctx, q, args...)
	if err != nil {
		return repository.Result[struct{}]{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return repository.Result[struct{}]{}, err
	}
	return repository.Result[struct{}]{Rows: []struct{}{}, Count: n}, nil
}
