package factories

import (
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/jaswdr/faker"
)

type DeliveryFactory struct {
	Faker faker.Faker
}

func NewDeliveryFactory(f faker.Faker) *DeliveryFactory {
	return &DeliveryFactory{Faker: f}
}

// CreateDelivery draws a delivery for orderID. A delivery person is assigned
// only when personIDs is non-empty.
func (df *DeliveryFactory) CreateDelivery(config *models.Config, orderID int64, personIDs []int64) *models.Delivery {
	f := df.Faker

	delivery := &models.Delivery{
		OrderID:        orderID,
		DeliveryStatus: f.RandomStringElement(models.DeliveryStatuses),
		Distance:       f.Float64(1, 1, 15),
		DeliveryTime:   f.IntBetween(15, 60),
		EstimatedTime:  f.IntBetween(15, 60),
		DeliveryFee:    f.Float64(2, 0, 10),
		VehicleType:    f.RandomStringElement(models.VehicleTypes),
	}
	if len(personIDs) > 0 {
		id := pickID(f, personIDs)
		delivery.DeliveryPersonID = &id
	}
	return delivery
}
