package catalog

import (
	"context"
	"fmt"

	"github.com/chrisdamba/foodadmin/internal/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Result is a tabular query result. Rows is never nil.
type Result struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// List returns the catalog in presentation order.
func List() []Query {
	out := make([]Query, len(registry))
	copy(out, registry)
	return out
}

func Lookup(id string) (Query, bool) {
	for _, q := range registry {
		if q.ID == id {
			return q, true
		}
	}
	return Query{}, false
}

type Catalog struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Catalog {
	return &Catalog{pool: pool}
}

func (c *Catalog) List() []Query { return List() }

// Run executes the query registered under id inside a read-only transaction.
func (c *Catalog) Run(ctx context.Context, id string) (Result, error) {
	q, ok := Lookup(id)
	if !ok {
		return Result{}, fmt.Errorf("%w: query %q", database.ErrNotFound, id)
	}

	var res Result
	err := database.WithRetry(ctx, func(ctx context.Context) error {
		tx, err := c.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		rows, err := tx.Query(ctx, q.SQL)
		if err != nil {
			return database.Wrap(q.SQL, err)
		}
		res, err = Collect(rows)
		if err != nil {
			return database.Wrap(q.SQL, err)
		}
		return tx.Commit(ctx)
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to run query %s: %w", id, err)
	}
	return res, nil
}

// Collect drains rows into a Result and closes them.
func Collect(rows pgx.Rows) (Result, error) {
	defer rows.Close()

	fields := rows.FieldDescriptions()
	res := Result{
		Columns: make([]string, len(fields)),
		Rows:    [][]any{},
	}
	for i, f := range fields {
		res.Columns[i] = f.Name
	}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return Result{}, err
		}
		for i, v := range values {
			values[i] = Normalize(v)
		}
		res.Rows = append(res.Rows, values)
	}
	return res, rows.Err()
}

// Normalize converts driver values to plain Go scalars.
func Normalize(v any) any {
	switch x := v.(type) {
	case pgtype.Numeric:
		f, err := x.Float64Value()
		if err != nil || !f.Valid {
			return nil
		}
		return f.Float64
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case float32:
		return float64(x)
	case [16]byte:
		return fmt.Sprintf("%x-%x-%x-%x-%x", x[0:4], x[4:6], x[6:8], x[8:10], x[10:16])
	}
	return v
}
