package seed

import (
	"context"
	"fmt"

	"github.com/chrisdamba/foodadmin/internal/database"
	"github.com/chrisdamba/foodadmin/internal/factories"
	"github.com/chrisdamba/foodadmin/internal/logging"
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/chrisdamba/foodadmin/internal/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Progress is called after each inserted row.
type Progress func(kind models.Kind, done, total int)

type Result struct {
	Kind     models.Kind `json:"entity"`
	Inserted int         `json:"inserted"`
}

type Seeder struct {
	pool   *pgxpool.Pool
	stores map[models.Kind]repositories.EntityStore
	config *models.Config

	customers       *factories.CustomerFactory
	restaurants     *factories.RestaurantFactory
	deliveryPersons *factories.DeliveryPersonFactory
	orders          *factories.OrderFactory
	deliveries      *factories.DeliveryFactory

	progress Progress
}

func NewSeeder(pool *pgxpool.Pool, stores map[models.Kind]repositories.EntityStore, config *models.Config) *Seeder {
	f := factories.NewFaker(config.Seed.RandomSeed)
	return &Seeder{
		pool:            pool,
		stores:          stores,
		config:          config,
		customers:       factories.NewCustomerFactory(f),
		restaurants:     factories.NewRestaurantFactory(f),
		deliveryPersons: factories.NewDeliveryPersonFactory(f),
		orders:          factories.NewOrderFactory(f),
		deliveries:      factories.NewDeliveryFactory(f),
	}
}

func (s *Seeder) OnProgress(fn Progress) {
	s.progress = fn
}

// SeedAll seeds every empty table, parents first.
func (s *Seeder) SeedAll(ctx context.Context) ([]Result, error) {
	results := make([]Result, 0, len(models.Kinds))
	for _, kind := range models.Kinds {
		n, err := s.SeedIfEmpty(ctx, kind)
		if err != nil {
			return results, err
		}
		results = append(results, Result{Kind: kind, Inserted: n})
	}
	return results, nil
}

// SeedIfEmpty inserts the configured number of rows for kind when its table
// holds none, and returns how many were inserted. Concurrent callers for the
// same table are serialized so only one of them seeds.
func (s *Seeder) SeedIfEmpty(ctx context.Context, kind models.Kind) (int, error) {
	store, ok := s.stores[kind]
	if !ok {
		return 0, fmt.Errorf("%w: %q", models.ErrUnknownKind, kind)
	}
	total := s.config.Seed.Count(kind)
	if total <= 0 {
		return 0, nil
	}
	table := pgx.Identifier{store.Table().Name}.Sanitize()

	var inserted int
	err := database.WithRetry(ctx, func(ctx context.Context) error {
		inserted = 0
		tx, err := s.pool.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", store.Table().Name); err != nil {
			return database.Wrap("pg_advisory_xact_lock", err)
		}

		var count int
		countSQL := "SELECT COUNT(*) FROM " + table
		if err := tx.QueryRow(ctx, countSQL).Scan(&count); err != nil {
			return database.Wrap(countSQL, err)
		}
		if count > 0 {
			return nil
		}

		entities, err := s.generate(ctx, tx, kind, total)
		if err != nil {
			return err
		}
		for i, e := range entities {
			if err := store.InsertEntities(ctx, tx, []models.Entity{e}); err != nil {
				return err
			}
			if s.progress != nil {
				s.progress(kind, i+1, len(entities))
			}
		}
		if err := tx.Commit(ctx); err != nil {
			return err
		}
		inserted = len(entities)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to seed %s: %w", kind, err)
	}

	logging.FromContext(ctx).Info("seeded table", "entity", kind, "inserted", inserted)
	return inserted, nil
}

func (s *Seeder) generate(ctx context.Context, tx pgx.Tx, kind models.Kind, n int) ([]models.Entity, error) {
	out := make([]models.Entity, 0, n)

	switch kind {
	case models.KindCustomer:
		for i := 0; i < n; i++ {
			out = append(out, s.customers.CreateCustomer(s.config))
		}
	case models.KindRestaurant:
		for i := 0; i < n; i++ {
			out = append(out, s.restaurants.CreateRestaurant(s.config))
		}
	case models.KindDeliveryPerson:
		for i := 0; i < n; i++ {
			out = append(out, s.deliveryPersons.CreateDeliveryPerson(s.config))
		}
	case models.KindOrder:
		customerIDs, err := queryIDs(ctx, tx, "SELECT customer_id FROM customers ORDER BY customer_id")
		if err != nil {
			return nil, err
		}
		restaurantIDs, err := queryIDs(ctx, tx, "SELECT restaurant_id FROM restaurants ORDER BY restaurant_id")
		if err != nil {
			return nil, err
		}
		if len(customerIDs) == 0 || len(restaurantIDs) == 0 {
			return nil, fmt.Errorf("%w: orders need existing customers and restaurants", database.ErrConstraintViolation)
		}
		for i := 0; i < n; i++ {
			out = append(out, s.orders.CreateOrder(s.config, customerIDs, restaurantIDs))
		}
	case models.KindDelivery:
		orderIDs, err := queryIDs(ctx, tx, `SELECT o.order_id FROM orders o
			WHERE NOT EXISTS (SELECT 1 FROM deliveries d WHERE d.order_id = o.order_id)
			ORDER BY o.order_id`)
		if err != nil {
			return nil, err
		}
		if len(orderIDs) == 0 {
			return nil, fmt.Errorf("%w: deliveries need existing orders", database.ErrConstraintViolation)
		}
		personIDs, err := queryIDs(ctx, tx, "SELECT delivery_person_id FROM delivery_persons ORDER BY delivery_person_id")
		if err != nil {
			return nil, err
		}
		for _, orderID := range orderIDs[:min(n, len(orderIDs))] {
			out = append(out, s.deliveries.CreateDelivery(s.config, orderID, personIDs))
		}
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownKind, kind)
	}
	return out, nil
}

func queryIDs(ctx context.Context, q database.Querier, query string) ([]int64, error) {
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, database.Wrap(query, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, database.Wrap(query, err)
	}
	return ids, nil
}
