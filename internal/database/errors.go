package database

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrConstraintViolation is returned when a write breaks a unique, foreign
	// key, check or not-null constraint, or a drop is blocked by dependents.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrNotFound is returned when a row, catalog query or table does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidIdentifier is returned when a table or column name is rejected
	// before any statement is built.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrUnsupportedOperation is returned for schema changes that are not offered.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrMalformedQuery is returned when the store rejects a statement.
	ErrMalformedQuery = errors.New("malformed query")

	// ErrInvalidInput is returned when a value fails validation or coercion.
	ErrInvalidInput = errors.New("invalid input")
)

var kinds = []error{
	ErrConstraintViolation,
	ErrNotFound,
	ErrInvalidIdentifier,
	ErrUnsupportedOperation,
	ErrMalformedQuery,
	ErrInvalidInput,
}

// QueryError carries the classified kind of a failed statement together with
// the driver error.
type QueryError struct {
	Kind  error
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	if e.Kind == nil {
		return fmt.Sprintf("query error: %v", e.Err)
	}
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

func (e *QueryError) Unwrap() []error {
	if e.Kind == nil {
		return []error{e.Err}
	}
	return []error{e.Kind, e.Err}
}

// Wrap classifies err and attaches the statement that produced it.
func Wrap(query string, err error) error {
	if err == nil {
		return nil
	}
	var qe *QueryError
	if errors.As(err, &qe) {
		return err
	}
	return &QueryError{Kind: Classify(err), Query: query, Err: err}
}

// Classify maps a driver error to one of the package error kinds. It returns
// nil when the error has no matching kind.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	switch pgErr.Code {
	case "23505", "23503", "23514", "23502", "2BP01":
		return ErrConstraintViolation
	}
	if len(pgErr.Code) == 5 {
		switch pgErr.Code[:2] {
		case "42", "22":
			return ErrMalformedQuery
		}
	}
	return nil
}

// KindName returns a stable snake_case name for the kind of err.
func KindName(err error) string {
	switch Classify(err) {
	case ErrConstraintViolation:
		return "constraint_violation"
	case ErrNotFound:
		return "not_found"
	case ErrInvalidIdentifier:
		return "invalid_identifier"
	case ErrUnsupportedOperation:
		return "unsupported_operation"
	case ErrMalformedQuery:
		return "malformed_query"
	case ErrInvalidInput:
		return "invalid_input"
	}
	return "internal"
}

// IsRetryable reports serialization failures, deadlocks and lock timeouts.
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case "40001", "40P01", "55P03":
		return true
	}
	return false
}
