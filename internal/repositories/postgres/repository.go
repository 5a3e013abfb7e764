package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chrisdamba/foodadmin/internal/database"
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/chrisdamba/foodadmin/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var validate = validator.New()

// Repository stores one entity type. PT is the pointer type that carries
// the models.Entity methods.
type Repository[T any, PT interface {
	*T
	models.Entity
}] struct {
	pool  *pgxpool.Pool
	kind  models.Kind
	table database.Table
	now   func() time.Time

	insertSQL string
	selectSQL string
}

func NewRepository[T any, PT interface {
	*T
	models.Entity
}](pool *pgxpool.Pool, kind models.Kind) (*Repository[T, PT], error) {
	table, err := database.TableFor(kind)
	if err != nil {
		return nil, err
	}

	cols := quoteAll(table.ColumnNames())
	placeholders := make([]string, len(cols))
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	name := pgx.Identifier{table.Name}.Sanitize()
	pk := pgx.Identifier{table.PrimaryKey}.Sanitize()

	return &Repository[T, PT]{
		pool:  pool,
		kind:  kind,
		table: table,
		now:   time.Now,
		insertSQL: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
			name, strings.Join(cols, ", "), strings.Join(placeholders, ", "), pk),
		selectSQL: fmt.Sprintf("SELECT %s, %s FROM %s", pk, strings.Join(cols, ", "), name),
	}, nil
}

func quoteAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = pgx.Identifier{n}.Sanitize()
	}
	return out
}

func (r *Repository[T, PT]) Kind() models.Kind     { return r.kind }
func (r *Repository[T, PT]) Table() database.Table { return r.table }
func (r *Repository[T, PT]) tableName() string     { return pgx.Identifier{r.table.Name}.Sanitize() }
func (r *Repository[T, PT]) primaryKey() string    { return pgx.Identifier{r.table.PrimaryKey}.Sanitize() }

// prepare fills defaults and validates entity before it reaches the store.
func (r *Repository[T, PT]) prepare(entity PT) error {
	if entity == nil {
		return fmt.Errorf("%w: nil %s", database.ErrInvalidInput, r.kind)
	}
	entity.ApplyDefaults(r.now())
	if err := validate.Struct(entity); err != nil {
		return fmt.Errorf("%w: %v", database.ErrInvalidInput, err)
	}
	return nil
}

func (r *Repository[T, PT]) insert(ctx context.Context, q database.Querier, entity PT) (int64, error) {
	var id int64
	if err := q.QueryRow(ctx, r.insertSQL, entity.InsertValues()...).Scan(&id); err != nil {
		return 0, database.Wrap(r.insertSQL, err)
	}
	entity.SetPrimaryKey(id)
	return id, nil
}

func (r *Repository[T, PT]) Create(ctx context.Context, entity PT) (int64, error) {
	if err := r.prepare(entity); err != nil {
		return 0, err
	}
	var id int64
	err := database.WithRetry(ctx, func(ctx context.Context) error {
		var err error
		id, err = r.insert(ctx, r.pool, entity)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", r.kind, err)
	}
	return id, nil
}

func (r *Repository[T, PT]) BulkCreate(ctx context.Context, entities []PT) error {
	for _, e := range entities {
		if err := r.prepare(e); err != nil {
			return err
		}
	}

	return database.WithRetry(ctx, func(ctx context.Context) error {
		tx, err := r.pool.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		for _, e := range entities {
			if _, err := r.insert(ctx, tx, e); err != nil {
				return err
			}
		}
		return tx.Commit(ctx)
	})
}

func (r *Repository[T, PT]) InsertEntities(ctx context.Context, q database.Querier, entities []models.Entity) error {
	for _, e := range entities {
		typed, err := r.assert(e)
		if err != nil {
			return err
		}
		if err := r.prepare(typed); err != nil {
			return err
		}
		if _, err := r.insert(ctx, q, typed); err != nil {
			return fmt.Errorf("failed to insert %s: %w", r.kind, err)
		}
	}
	return nil
}

func (r *Repository[T, PT]) CreateFields(ctx context.Context, fields map[string]any) (models.Entity, error) {
	entity, err := r.assert(r.kind.New())
	if err != nil {
		return nil, err
	}
	if err := DecodeFields(entity, fields); err != nil {
		return nil, err
	}
	if _, err := r.Create(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *Repository[T, PT]) CreateEntity(ctx context.Context, entity models.Entity) (int64, error) {
	typed, err := r.assert(entity)
	if err != nil {
		return 0, err
	}
	return r.Create(ctx, typed)
}

func (r *Repository[T, PT]) assert(entity models.Entity) (PT, error) {
	typed, ok := entity.(PT)
	if !ok {
		return nil, fmt.Errorf("%w: expected %s entity, got %T", database.ErrInvalidInput, r.kind, entity)
	}
	return typed, nil
}

func (r *Repository[T, PT]) ListAll(ctx context.Context) ([]PT, error) {
	return r.List(ctx, repositories.Page{})
}

func (r *Repository[T, PT]) List(ctx context.Context, page repositories.Page) ([]PT, error) {
	query := r.selectSQL + " ORDER BY " + r.primaryKey()
	var args []any
	if page.Limit > 0 {
		args = append(args, page.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if page.Offset > 0 {
		args = append(args, page.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	var out []PT
	err := database.WithRetry(ctx, func(ctx context.Context) error {
		rows, err := r.pool.Query(ctx, query, args...)
		if err != nil {
			return database.Wrap(query, err)
		}
		items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
		if err != nil {
			return database.Wrap(query, err)
		}
		out = make([]PT, len(items))
		for i, item := range items {
			out[i] = PT(item)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.kind, err)
	}
	return out, nil
}

func (r *Repository[T, PT]) ListEntities(ctx context.Context, page repositories.Page) ([]models.Entity, error) {
	items, err := r.List(ctx, page)
	if err != nil {
		return nil, err
	}
	out := make([]models.Entity, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out, nil
}

func (r *Repository[T, PT]) Get(ctx context.Context, id int64) (PT, error) {
	query := r.selectSQL + " WHERE " + r.primaryKey() + " = $1"

	var out PT
	err := database.WithRetry(ctx, func(ctx context.Context) error {
		rows, err := r.pool.Query(ctx, query, id)
		if err != nil {
			return database.Wrap(query, err)
		}
		item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%s %d: %w", r.kind, id, database.ErrNotFound)
		}
		if err != nil {
			return database.Wrap(query, err)
		}
		out = PT(item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository[T, PT]) GetEntity(ctx context.Context, id int64) (models.Entity, error) {
	item, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateField sets one allow-listed column on the row with id and returns the
// number of rows changed.
func (r *Repository[T, PT]) UpdateField(ctx context.Context, id int64, field string, value any) (int64, error) {
	col, ok := r.table.Column(field)
	if !ok || !col.Updatable {
		return 0, fmt.Errorf("%w: %q is not an updatable %s field", database.ErrInvalidIdentifier, field, r.kind)
	}
	v, err := database.Coerce(col, value)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf("UPDATE %s SET %s = $1 WHERE %s = $2",
		r.tableName(), pgx.Identifier{col.Name}.Sanitize(), r.primaryKey())

	var affected int64
	err = database.WithRetry(ctx, func(ctx context.Context) error {
		tag, err := r.pool.Exec(ctx, query, v, id)
		if err != nil {
			return database.Wrap(query, err)
		}
		affected = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to update %s.%s: %w", r.kind, field, err)
	}
	return affected, nil
}

func (r *Repository[T, PT]) DeleteByID(ctx context.Context, id int64) (int64, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", r.tableName(), r.primaryKey())

	var affected int64
	err := database.WithRetry(ctx, func(ctx context.Context) error {
		tag, err := r.pool.Exec(ctx, query, id)
		if err != nil {
			return database.Wrap(query, err)
		}
		affected = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete %s %d: %w", r.kind, id, err)
	}
	return affected, nil
}

func (r *Repository[T, PT]) Count(ctx context.Context) (int, error) {
	query := "SELECT COUNT(*) FROM " + r.tableName()
	var count int
	err := database.WithRetry(ctx, func(ctx context.Context) error {
		return database.Wrap(query, r.pool.QueryRow(ctx, query).Scan(&count))
	})
	return count, err
}

// DeleteAll truncates the table, rows referencing it included, and restarts
// its identity sequence.
func (r *Repository[T, PT]) DeleteAll(ctx context.Context) error {
	query := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", r.tableName())
	_, err := r.pool.Exec(ctx, query)
	return database.Wrap(query, err)
}
