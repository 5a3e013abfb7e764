package database

import (
	"context"
	"fmt"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ColumnType is the value class a column is coerced to on update.
type ColumnType int

const (
	TypeText ColumnType = iota
	TypeInteger
	TypeFloat
	TypeBool
	TypeDate
	TypeTimestamp
)

func (t ColumnType) String() string {
	switch t {
	case TypeInteger:
		return "integer"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "boolean"
	case TypeDate:
		return "date"
	case TypeTimestamp:
		return "timestamp"
	}
	return "text"
}

type Column struct {
	Name      string
	Type      ColumnType
	Nullable  bool
	Updatable bool
}

// Table describes one managed entity table. Columns exclude the primary key
// and are listed in insert order.
type Table struct {
	Name       string
	PrimaryKey string
	Columns    []Column
	DDL        string
}

func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// UpdatableColumns returns the update allow-list.
func (t Table) UpdatableColumns() []string {
	var names []string
	for _, c := range t.Columns {
		if c.Updatable {
			names = append(names, c.Name)
		}
	}
	return names
}

var Tables = map[models.Kind]Table{
	models.KindCustomer: {
		Name:       "customers",
		PrimaryKey: "customer_id",
		Columns: []Column{
			{Name: "name", Type: TypeText, Updatable: true},
			{Name: "email", Type: TypeText, Updatable: true},
			{Name: "phone", Type: TypeText, Nullable: true, Updatable: true},
			{Name: "location", Type: TypeText, Updatable: true},
			{Name: "signup_date", Type: TypeDate, Updatable: true},
			{Name: "is_premium", Type: TypeBool, Updatable: true},
			{Name: "preferred_cuisine", Type: TypeText, Updatable: true},
			{Name: "total_orders", Type: TypeInteger, Updatable: true},
			{Name: "average_rating", Type: TypeFloat, Updatable: true},
		},
		DDL: `CREATE TABLE IF NOT EXISTS customers (
	customer_id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	phone TEXT UNIQUE,
	location TEXT NOT NULL DEFAULT '',
	signup_date DATE NOT NULL DEFAULT CURRENT_DATE,
	is_premium BOOLEAN NOT NULL DEFAULT FALSE,
	preferred_cuisine TEXT NOT NULL DEFAULT '',
	total_orders INTEGER NOT NULL DEFAULT 0 CHECK (total_orders >= 0),
	average_rating DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (average_rating >= 0 AND average_rating <= 5)
)`,
	},
	models.KindRestaurant: {
		Name:       "restaurants",
		PrimaryKey: "restaurant_id",
		Columns: []Column{
			{Name: "name", Type: TypeText, Updatable: true},
			{Name: "cuisine_type", Type: TypeText, Updatable: true},
			{Name: "location", Type: TypeText, Updatable: true},
			{Name: "owner_name", Type: TypeText, Updatable: true},
			{Name: "average_delivery_time", Type: TypeInteger, Updatable: true},
			{Name: "contact_number", Type: TypeText, Updatable: true},
			{Name: "rating", Type: TypeFloat, Updatable: true},
			{Name: "total_orders", Type: TypeInteger, Updatable: true},
			{Name: "is_active", Type: TypeBool, Updatable: true},
		},
		DDL: `CREATE TABLE IF NOT EXISTS restaurants (
	restaurant_id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
	name TEXT NOT NULL,
	cuisine_type TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	owner_name TEXT NOT NULL DEFAULT '',
	average_delivery_time INTEGER NOT NULL DEFAULT 0 CHECK (average_delivery_time >= 0),
	contact_number TEXT NOT NULL DEFAULT '',
	rating DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (rating >= 0 AND rating <= 5),
	total_orders INTEGER NOT NULL DEFAULT 0 CHECK (total_orders >= 0),
	is_active BOOLEAN NOT NULL DEFAULT TRUE
)`,
	},
	models.KindDeliveryPerson: {
		Name:       "delivery_persons",
		PrimaryKey: "delivery_person_id",
		Columns: []Column{
			{Name: "name", Type: TypeText, Updatable: true},
			{Name: "contact_number", Type: TypeText, Updatable: true},
			{Name: "vehicle_type", Type: TypeText, Updatable: true},
			{Name: "total_deliveries", Type: TypeInteger, Updatable: true},
			{Name: "average_rating", Type: TypeFloat, Updatable: true},
			{Name: "location", Type: TypeText, Updatable: true},
		},
		DDL: `CREATE TABLE IF NOT EXISTS delivery_persons (
	delivery_person_id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
	name TEXT NOT NULL,
	contact_number TEXT NOT NULL DEFAULT '',
	vehicle_type TEXT NOT NULL DEFAULT 'Bike' CHECK (vehicle_type IN ('Bike', 'Car')),
	total_deliveries INTEGER NOT NULL DEFAULT 0 CHECK (total_deliveries >= 0),
	average_rating DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (average_rating >= 0 AND average_rating <= 5),
	location TEXT NOT NULL DEFAULT ''
)`,
	},
	models.KindOrder: {
		Name:       "orders",
		PrimaryKey: "order_id",
		Columns: []Column{
			{Name: "customer_id", Type: TypeInteger},
			{Name: "restaurant_id", Type: TypeInteger},
			{Name: "order_date", Type: TypeTimestamp},
			{Name: "delivery_time", Type: TypeTimestamp, Nullable: true, Updatable: true},
			{Name: "status", Type: TypeText, Updatable: true},
			{Name: "total_amount", Type: TypeFloat, Updatable: true},
			{Name: "payment_mode", Type: TypeText, Updatable: true},
			{Name: "discount_applied", Type: TypeFloat, Updatable: true},
			{Name: "feedback_rating", Type: TypeFloat, Nullable: true, Updatable: true},
		},
		DDL: `CREATE TABLE IF NOT EXISTS orders (
	order_id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
	customer_id BIGINT NOT NULL REFERENCES customers (customer_id),
	restaurant_id BIGINT NOT NULL REFERENCES restaurants (restaurant_id),
	order_date TIMESTAMPTZ NOT NULL DEFAULT now(),
	delivery_time TIMESTAMPTZ,
	status TEXT NOT NULL DEFAULT 'Pending' CHECK (status IN ('Pending', 'Delivered', 'Cancelled')),
	total_amount DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (total_amount >= 0),
	payment_mode TEXT NOT NULL DEFAULT 'Credit Card' CHECK (payment_mode IN ('Credit Card', 'Cash', 'UPI')),
	discount_applied DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (discount_applied >= 0),
	feedback_rating DOUBLE PRECISION CHECK (feedback_rating >= 1 AND feedback_rating <= 5)
)`,
	},
	models.KindDelivery: {
		Name:       "deliveries",
		PrimaryKey: "delivery_id",
		Columns: []Column{
			{Name: "order_id", Type: TypeInteger},
			{Name: "delivery_person_id", Type: TypeInteger, Nullable: true, Updatable: true},
			{Name: "delivery_status", Type: TypeText, Updatable: true},
			{Name: "distance", Type: TypeFloat, Updatable: true},
			{Name: "delivery_time", Type: TypeInteger, Updatable: true},
			{Name: "estimated_time", Type: TypeInteger, Updatable: true},
			{Name: "delivery_fee", Type: TypeFloat, Updatable: true},
			{Name: "vehicle_type", Type: TypeText, Updatable: true},
		},
		DDL: `CREATE TABLE IF NOT EXISTS deliveries (
	delivery_id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
	order_id BIGINT NOT NULL REFERENCES orders (order_id),
	delivery_person_id BIGINT REFERENCES delivery_persons (delivery_person_id),
	delivery_status TEXT NOT NULL DEFAULT 'On the way' CHECK (delivery_status IN ('On the way', 'Delivered')),
	distance DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (distance >= 0),
	delivery_time INTEGER NOT NULL DEFAULT 0 CHECK (delivery_time >= 0),
	estimated_time INTEGER NOT NULL DEFAULT 0 CHECK (estimated_time >= 0),
	delivery_fee DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (delivery_fee >= 0),
	vehicle_type TEXT NOT NULL DEFAULT 'Bike' CHECK (vehicle_type IN ('Bike', 'Car'))
)`,
	},
}

// schemaLockKey serializes concurrent EnsureSchema calls.
const schemaLockKey int64 = 0x666f6f64

func TableFor(kind models.Kind) (Table, error) {
	t, ok := Tables[kind]
	if !ok {
		return Table{}, fmt.Errorf("%w: %q", models.ErrUnknownKind, kind)
	}
	return t, nil
}

// EnsureSchema creates the entity tables, parents first, in one transaction.
// Existing tables and their rows are left untouched.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", schemaLockKey); err != nil {
		return fmt.Errorf("failed to lock schema: %w", Wrap("pg_advisory_xact_lock", err))
	}
	for _, kind := range models.Kinds {
		t := Tables[kind]
		if _, err := tx.Exec(ctx, t.DDL); err != nil {
			return fmt.Errorf("failed to create table %s: %w", t.Name, Wrap(t.DDL, err))
		}
	}

	return tx.Commit(ctx)
}
