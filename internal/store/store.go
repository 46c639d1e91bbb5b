// Package store provides the low-level data access layer: parameterized
// statement execution and schema-agnostic result fetching over a pgx
// connection pool.
//
// The store deliberately has no knowledge of the clinic schema. Results come
// back as ordered []Row built from the result set's own column descriptor,
// so new tables and columns are served without code changes.
package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgxpool.Pool the store depends on.
// Accepting the interface keeps the store constructible over a pool,
// a single connection, or a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Store executes parameterized statements against a shared connection
// resource. Each call acquires a connection scoped to that one statement;
// the connection is returned to the pool on every exit path.
type Store struct {
	db Querier
}

// New creates a Store over the given connection resource.
func New(db Querier) *Store {
	return &Store{db: db}
}

// Exec runs a parameterized mutating statement. Statements run in
// autocommit mode: a successful statement is committed, a failed one leaves
// no open transaction behind. Updates that match zero rows succeed silently.
//
// Any driver failure is reported as *QueryError.
func (s *Store) Exec(ctx context.Context, sql string, args ...any) error {
	if _, err := s.db.Exec(ctx, sql, args...); err != nil {
		return &QueryError{Op: "exec", Err: err}
	}
	return nil
}

// Fetch runs a parameterized read statement and returns the full result set
// as mapped rows, in result order. The column descriptor is taken from the
// result set at runtime, so Fetch works against any query shape.
//
// A query matching zero rows returns an empty slice, never an error.
func (s *Store) Fetch(ctx context.Context, sql string, args ...any) ([]Row, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, &QueryError{Op: "query", Err: err}
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	out := make([]Row, 0)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, &QueryError{Op: "query", Err: err}
		}
		out = append(out, mapRow(fields, values))
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Op: "query", Err: err}
	}
	return out, nil
}
