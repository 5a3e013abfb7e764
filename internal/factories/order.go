package factories

import (
	"time"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/jaswdr/faker"
)

type OrderFactory struct {
	Faker faker.Faker
}

func NewOrderFactory(f faker.Faker) *OrderFactory {
	return &OrderFactory{Faker: f}
}

// CreateOrder draws an order for one of the given customers and restaurants.
// Both id slices must be non-empty.
func (of *OrderFactory) CreateOrder(config *models.Config, customerIDs, restaurantIDs []int64) *models.Order {
	f := of.Faker
	orderDate := f.Time().TimeBetween(config.Seed.StartDate, time.Now())
	status := f.RandomStringElement(models.OrderStatuses)

	order := &models.Order{
		CustomerID:      pickID(f, customerIDs),
		RestaurantID:    pickID(f, restaurantIDs),
		OrderDate:       orderDate,
		Status:          status,
		TotalAmount:     f.Float64(2, 5, 150),
		PaymentMode:     f.RandomStringElement(models.PaymentModes),
		DiscountApplied: f.Float64(2, 0, 20),
	}

	if status == models.OrderStatusDelivered {
		delivered := orderDate.Add(time.Duration(f.IntBetween(15, 60)) * time.Minute)
		order.DeliveryTime = &delivered
		rating := float64(f.IntBetween(1, 5))
		order.FeedbackRating = &rating
	}
	return order
}
