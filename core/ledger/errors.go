package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDatabase is returned when the reader has no database handle.
	ErrNoDatabase = errors.New("ledger database is not configured")

	// ErrMalformedRow is returned for rows that cannot yield a token identity.
	ErrMalformedRow = errors.New("malformed ledger row")
)

// QueryError is returned when a ledger query fails after retry exhaustion
// or returns rows that cannot be used.
type QueryError struct {
	Owner    string
	Table    string
	Attempts int
	Err      error
}

// Error implements the error interface.
func (e *QueryError) Error() string {
	return fmt.Sprintf("ledger query on %s for owner %s failed after %d attempt(s): %v",
		e.Table, e.Owner, e.Attempts, e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *QueryError) Unwrap() error {
	return e.Err
}
