package schemaeditor

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/chrisdamba/foodadmin/internal/catalog"
	"github.com/chrisdamba/foodadmin/internal/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cast"
)

// ColumnInfo describes an existing column as reported by information_schema.
type ColumnInfo struct {
	Name     string  `db:"column_name" json:"name"`
	DataType string  `db:"data_type" json:"data_type"`
	UDTName  string  `db:"udt_name" json:"-"`
	Nullable bool    `db:"is_nullable" json:"nullable"`
	Default  *string `db:"column_default" json:"default,omitempty"`
}

// Editor applies validated DDL to the current schema. Every name is checked
// before a statement is built and quoted when it is.
type Editor struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Editor {
	return &Editor{pool: pool}
}

func (e *Editor) exec(ctx context.Context, query string, args ...any) (int64, error) {
	var affected int64
	err := database.WithRetry(ctx, func(ctx context.Context) error {
		tag, err := e.pool.Exec(ctx, query, args...)
		if err != nil {
			return database.Wrap(query, err)
		}
		affected = tag.RowsAffected()
		return nil
	})
	return affected, err
}

// CreateTable creates name from a textual column spec unless it exists.
func (e *Editor) CreateTable(ctx context.Context, name, columnSpec string) error {
	table, err := ValidateIdentifier(name)
	if err != nil {
		return err
	}
	cols, err := ParseColumnSpec(columnSpec)
	if err != nil {
		return err
	}

	defs := make([]string, len(cols))
	for i, c := range cols {
		defs[i] = c.SQL()
	}
	query := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", quote(table), strings.Join(defs, ", "))
	if _, err := e.exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}
	return nil
}

// DropTable removes name if it exists. Tables still referenced by foreign
// keys are not dropped.
func (e *Editor) DropTable(ctx context.Context, name string) error {
	table, err := ValidateIdentifier(name)
	if err != nil {
		return err
	}
	query := "DROP TABLE IF EXISTS " + quote(table)
	if _, err := e.exec(ctx, query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", table, err)
	}
	return nil
}

func (e *Editor) RenameTable(ctx context.Context, oldName, newName string) error {
	from, err := ValidateIdentifier(oldName)
	if err != nil {
		return err
	}
	to, err := ValidateIdentifier(newName)
	if err != nil {
		return err
	}
	if err := e.requireTable(ctx, from); err != nil {
		return err
	}
	query := fmt.Sprintf("ALTER TABLE %s RENAME TO %s", quote(from), quote(to))
	if _, err := e.exec(ctx, query); err != nil {
		return fmt.Errorf("failed to rename table %s: %w", from, err)
	}
	return nil
}

func (e *Editor) AddColumn(ctx context.Context, tableName, columnName, columnType string) error {
	table, err := ValidateIdentifier(tableName)
	if err != nil {
		return err
	}
	column, err := ValidateIdentifier(columnName)
	if err != nil {
		return err
	}
	typ, err := ParseColumnType(columnType)
	if err != nil {
		return err
	}
	if err := e.requireTable(ctx, table); err != nil {
		return err
	}
	query := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", quote(table), quote(column), typ)
	if _, err := e.exec(ctx, query); err != nil {
		return fmt.Errorf("failed to add column %s.%s: %w", table, column, err)
	}
	return nil
}

func (e *Editor) RenameColumn(ctx context.Context, tableName, oldName, newName string) error {
	return fmt.Errorf("%w: renaming column %s.%s", database.ErrUnsupportedOperation, tableName, oldName)
}

func (e *Editor) DropColumn(ctx context.Context, tableName, columnName string) error {
	return fmt.Errorf("%w: dropping column %s.%s", database.ErrUnsupportedOperation, tableName, columnName)
}

const listTablesSQL = `SELECT table_name::text
FROM information_schema.tables
WHERE table_schema = current_schema() AND table_type = 'BASE TABLE'
ORDER BY table_name`

func (e *Editor) ListTables(ctx context.Context) ([]string, error) {
	var tables []string
	err := database.WithRetry(ctx, func(ctx context.Context) error {
		rows, err := e.pool.Query(ctx, listTablesSQL)
		if err != nil {
			return database.Wrap(listTablesSQL, err)
		}
		tables, err = pgx.CollectRows(rows, pgx.RowTo[string])
		return database.Wrap(listTablesSQL, err)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	return tables, nil
}

const describeSQL = `SELECT column_name::text, data_type::text, udt_name::text,
	is_nullable = 'YES' AS is_nullable, column_default::text
FROM information_schema.columns
WHERE table_schema = current_schema() AND table_name = $1
ORDER BY ordinal_position`

// DescribeTable lists the columns of name in declaration order.
func (e *Editor) DescribeTable(ctx context.Context, name string) ([]ColumnInfo, error) {
	table, err := ValidateIdentifier(name)
	if err != nil {
		return nil, err
	}

	var cols []ColumnInfo
	err = database.WithRetry(ctx, func(ctx context.Context) error {
		rows, err := e.pool.Query(ctx, describeSQL, table)
		if err != nil {
			return database.Wrap(describeSQL, err)
		}
		cols, err = pgx.CollectRows(rows, pgx.RowToStructByName[ColumnInfo])
		return database.Wrap(describeSQL, err)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe table %s: %w", table, err)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: table %q", database.ErrNotFound, table)
	}
	return cols, nil
}

func (e *Editor) requireTable(ctx context.Context, table string) error {
	_, err := e.DescribeTable(ctx, table)
	return err
}

// TableContent returns every row of name.
func (e *Editor) TableContent(ctx context.Context, name string) (catalog.Result, error) {
	table, err := ValidateIdentifier(name)
	if err != nil {
		return catalog.Result{}, err
	}
	if err := e.requireTable(ctx, table); err != nil {
		return catalog.Result{}, err
	}

	query := "SELECT * FROM " + quote(table)
	var res catalog.Result
	err = database.WithRetry(ctx, func(ctx context.Context) error {
		rows, err := e.pool.Query(ctx, query)
		if err != nil {
			return database.Wrap(query, err)
		}
		res, err = catalog.Collect(rows)
		return database.Wrap(query, err)
	})
	if err != nil {
		return catalog.Result{}, fmt.Errorf("failed to read table %s: %w", table, err)
	}
	return res, nil
}

// InsertRow inserts one row into name. Keys must be existing columns; nil and
// empty values are left to the column default. Values are sent as text and
// cast to the column type by the server.
func (e *Editor) InsertRow(ctx context.Context, name string, values map[string]any) (int64, error) {
	table, err := ValidateIdentifier(name)
	if err != nil {
		return 0, err
	}
	info, err := e.DescribeTable(ctx, table)
	if err != nil {
		return 0, err
	}
	types := make(map[string]string, len(info))
	for _, c := range info {
		types[c.Name] = c.UDTName
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var (
		cols         []string
		placeholders []string
		args         []any
	)
	for _, k := range keys {
		column, err := ValidateIdentifier(k)
		if err != nil {
			return 0, err
		}
		udt, ok := types[column]
		if !ok {
			return 0, fmt.Errorf("%w: table %q has no column %q", database.ErrInvalidIdentifier, table, column)
		}
		if values[k] == nil {
			continue
		}
		text, err := cast.ToStringE(values[k])
		if err != nil {
			return 0, fmt.Errorf("%w: column %q: %v", database.ErrInvalidInput, column, err)
		}
		if text == "" {
			continue
		}
		args = append(args, text)
		cols = append(cols, quote(column))
		placeholders = append(placeholders, fmt.Sprintf("$%d::text::%s", len(args), quote(udt)))
	}

	query := fmt.Sprintf("INSERT INTO %s DEFAULT VALUES", quote(table))
	if len(cols) > 0 {
		query = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			quote(table), strings.Join(cols, ", "), strings.Join(placeholders, ", "))
	}
	affected, err := e.exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return affected, nil
}
