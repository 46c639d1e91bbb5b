package store

import "fmt"

// QueryError reports a statement the database rejected or failed: connection
// loss, constraint violation, bad syntax. The driver error is retained for
// unwrapping; the store never retries.
type QueryError struct {
	Op  string // "exec" or "query"
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
