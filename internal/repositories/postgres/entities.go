package postgres

import (
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/chrisdamba/foodadmin/internal/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	CustomerRepository       = Repository[models.Customer, *models.Customer]
	RestaurantRepository     = Repository[models.Restaurant, *models.Restaurant]
	OrderRepository          = Repository[models.Order, *models.Order]
	DeliveryRepository       = Repository[models.Delivery, *models.Delivery]
	DeliveryPersonRepository = Repository[models.DeliveryPerson, *models.DeliveryPerson]
)

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return mustRepository[models.Customer](pool, models.KindCustomer)
}

func NewRestaurantRepository(pool *pgxpool.Pool) *RestaurantRepository {
	return mustRepository[models.Restaurant](pool, models.KindRestaurant)
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return mustRepository[models.Order](pool, models.KindOrder)
}

func NewDeliveryRepository(pool *pgxpool.Pool) *DeliveryRepository {
	return mustRepository[models.Delivery](pool, models.KindDelivery)
}

func NewDeliveryPersonRepository(pool *pgxpool.Pool) *DeliveryPersonRepository {
	return mustRepository[models.DeliveryPerson](pool, models.KindDeliveryPerson)
}

func mustRepository[T any, PT interface {
	*T
	models.Entity
}](pool *pgxpool.Pool, kind models.Kind) *Repository[T, PT] {
	r, err := NewRepository[T, PT](pool, kind)
	if err != nil {
		panic(err)
	}
	return r
}

// NewStores returns one store per entity kind.
func NewStores(pool *pgxpool.Pool) map[models.Kind]repositories.EntityStore {
	return map[models.Kind]repositories.EntityStore{
		models.KindCustomer:       NewCustomerRepository(pool),
		models.KindRestaurant:     NewRestaurantRepository(pool),
		models.KindOrder:          NewOrderRepository(pool),
		models.KindDelivery:       NewDeliveryRepository(pool),
		models.KindDeliveryPerson: NewDeliveryPersonRepository(pool),
	}
}

var (
	_ repositories.CustomerRepository       = (*CustomerRepository)(nil)
	_ repositories.RestaurantRepository     = (*RestaurantRepository)(nil)
	_ repositories.OrderRepository          = (*OrderRepository)(nil)
	_ repositories.DeliveryRepository       = (*DeliveryRepository)(nil)
	_ repositories.DeliveryPersonRepository = (*DeliveryPersonRepository)(nil)
	_ repositories.EntityStore              = (*CustomerRepository)(nil)
)
