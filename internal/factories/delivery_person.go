package factories

import (
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/jaswdr/faker"
)

type DeliveryPersonFactory struct {
	Faker faker.Faker
}

func NewDeliveryPersonFactory(f faker.Faker) *DeliveryPersonFactory {
	return &DeliveryPersonFactory{Faker: f}
}

func (df *DeliveryPersonFactory) CreateDeliveryPerson(config *models.Config) *models.DeliveryPerson {
	f := df.Faker

	return &models.DeliveryPerson{
		Name:          f.Person().Name(),
		ContactNumber: f.Phone().Number(),
		VehicleType:   f.RandomStringElement(models.VehicleTypes),
		AverageRating: f.Float64(1, 3, 5),
		Location:      f.Address().City(),
	}
}
