package postgres

import (
	"context"
	"fmt"

	"github.com/chrisdamba/foodadmin/internal/database"
	"github.com/jackc/pgx/v5/pgxpool"
)

var counterStatements = []string{
	`UPDATE customers c SET
		total_orders = (SELECT COUNT(*) FROM orders o WHERE o.customer_id = c.customer_id),
		average_rating = COALESCE((SELECT AVG(o.feedback_rating) FROM orders o WHERE o.customer_id = c.customer_id), 0)`,
	`UPDATE restaurants r SET
		total_orders = (SELECT COUNT(*) FROM orders o WHERE o.restaurant_id = r.restaurant_id)`,
	`UPDATE delivery_persons p SET
		total_deliveries = (SELECT COUNT(*) FROM deliveries d WHERE d.delivery_person_id = p.delivery_person_id)`,
}

// CounterRepository recomputes the denormalized counters from orders and
// deliveries.
type CounterRepository struct {
	pool *pgxpool.Pool
}

func NewCounterRepository(pool *pgxpool.Pool) *CounterRepository {
	return &CounterRepository{pool: pool}
}

// Refresh rewrites every counter in one transaction and returns the number
// of rows touched.
func (r *CounterRepository) Refresh(ctx context.Context) (int64, error) {
	var total int64
	err := database.WithRetry(ctx, func(ctx context.Context) error {
		total = 0
		tx, err := r.pool.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		for _, stmt := range counterStatements {
			tag, err := tx.Exec(ctx, stmt)
			if err != nil {
				return database.Wrap(stmt, err)
			}
			total += tag.RowsAffected()
		}
		return tx.Commit(ctx)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to refresh counters: %w", err)
	}
	return total, nil
}
