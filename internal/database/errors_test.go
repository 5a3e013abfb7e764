package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "unique", err: &pgconn.PgError{Code: "23505"}, want: ErrConstraintViolation},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, want: ErrConstraintViolation},
		{name: "check", err: &pgconn.PgError{Code: "23514"}, want: ErrConstraintViolation},
		{name: "not null", err: &pgconn.PgError{Code: "23502"}, want: ErrConstraintViolation},
		{name: "dependent objects", err: &pgconn.PgError{Code: "2BP01"}, want: ErrConstraintViolation},
		{name: "undefined table", err: &pgconn.PgError{Code: "42P01"}, want: ErrMalformedQuery},
		{name: "syntax", err: &pgconn.PgError{Code: "42601"}, want: ErrMalformedQuery},
		{name: "invalid text representation", err: &pgconn.PgError{Code: "22P02"}, want: ErrMalformedQuery},
		{name: "no rows", err: pgx.ErrNoRows, want: ErrNotFound},
		{name: "wrapped sentinel", err: fmt.Errorf("lookup: %w", ErrInvalidIdentifier), want: ErrInvalidIdentifier},
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: nil},
		{name: "plain error", err: errors.New("boom"), want: nil},
		{name: "nil", err: nil, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestWrapExposesKindAndDriverError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", Message: "duplicate key value"}
	err := Wrap("INSERT INTO customers", pgErr)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConstraintViolation)
	var got *pgconn.PgError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, "23505", got.Code)

	var qe *QueryError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, "INSERT INTO customers", qe.Query)

	assert.Same(t, err, Wrap("other", err))
	assert.NoError(t, Wrap("SELECT 1", nil))
}

func TestKindName(t *testing.T) {
	assert.Equal(t, "constraint_violation", KindName(Wrap("q", &pgconn.PgError{Code: "23503"})))
	assert.Equal(t, "not_found", KindName(ErrNotFound))
	assert.Equal(t, "invalid_identifier", KindName(ErrInvalidIdentifier))
	assert.Equal(t, "unsupported_operation", KindName(ErrUnsupportedOperation))
	assert.Equal(t, "malformed_query", KindName(&pgconn.PgError{Code: "42703"}))
	assert.Equal(t, "invalid_input", KindName(fmt.Errorf("x: %w", ErrInvalidInput)))
	assert.Equal(t, "internal", KindName(errors.New("connection reset")))
}

func TestIsRetryable(t *testing.T) {
	for _, code := range []string{"40001", "40P01", "55P03"} {
		assert.True(t, IsRetryable(Wrap("q", &pgconn.PgError{Code: code})), code)
	}
	assert.False(t, IsRetryable(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsRetryable(errors.New("boom")))
}

func TestWithRetry(t *testing.T) {
	t.Run("success runs once", func(t *testing.T) {
		calls := 0
		err := WithRetry(context.Background(), func(context.Context) error {
			calls++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("transient error retried once", func(t *testing.T) {
		calls := 0
		err := WithRetry(context.Background(), func(context.Context) error {
			calls++
			if calls == 1 {
				return &pgconn.PgError{Code: "40P01"}
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("persistent transient error gives up after second try", func(t *testing.T) {
		calls := 0
		err := WithRetry(context.Background(), func(context.Context) error {
			calls++
			return &pgconn.PgError{Code: "40001"}
		})
		require.Error(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("other errors are not retried", func(t *testing.T) {
		calls := 0
		err := WithRetry(context.Background(), func(context.Context) error {
			calls++
			return &pgconn.PgError{Code: "23505"}
		})
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("cancelled context is not retried", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		calls := 0
		err := WithRetry(ctx, func(context.Context) error {
			calls++
			return &pgconn.PgError{Code: "40001"}
		})
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}
