package repositories

import (
	"context"

	"github.com/chrisdamba/foodadmin/internal/database"
	"github.com/chrisdamba/foodadmin/internal/models"
)

// Page bounds a listing. A zero Limit lists every row.
type Page struct {
	Limit  int
	Offset int
}

type Repository[T models.Entity] interface {
	BulkCreate(ctx context.Context, entities []T) error
	Create(ctx context.Context, entity T) (int64, error)
	ListAll(ctx context.Context) ([]T, error)
	List(ctx context.Context, page Page) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	UpdateField(ctx context.Context, id int64, field string, value any) (int64, error)
	DeleteByID(ctx context.Context, id int64) (int64, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type (
	CustomerRepository       = Repository[*models.Customer]
	RestaurantRepository     = Repository[*models.Restaurant]
	OrderRepository          = Repository[*models.Order]
	DeliveryRepository       = Repository[*models.Delivery]
	DeliveryPersonRepository = Repository[*models.DeliveryPerson]
)

// EntityStore is a Repository addressed by entity kind instead of type.
type EntityStore interface {
	Kind() models.Kind
	Table() database.Table
	CreateEntity(ctx context.Context, entity models.Entity) (int64, error)
	CreateFields(ctx context.Context, fields map[string]any) (models.Entity, error)
	ListEntities(ctx context.Context, page Page) ([]models.Entity, error)
	GetEntity(ctx context.Context, id int64) (models.Entity, error)
	UpdateField(ctx context.Context, id int64, field string, value any) (int64, error)
	DeleteByID(ctx context.Context, id int64) (int64, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
	// InsertEntities inserts within q, typically a transaction owned by the caller.
	InsertEntities(ctx context.Context, q database.Querier, entities []models.Entity) error
}

type CounterRepository interface {
	Refresh(ctx context.Context) (int64, error)
}
