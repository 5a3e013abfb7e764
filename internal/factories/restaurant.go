package factories

import (
	"sync"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/jaswdr/faker"
)

type RestaurantFactory struct {
	Faker   faker.Faker
	numbers sync.Map
}

func NewRestaurantFactory(f faker.Faker) *RestaurantFactory {
	return &RestaurantFactory{Faker: f}
}

func (rf *RestaurantFactory) CreateRestaurant(config *models.Config) *models.Restaurant {
	f := rf.Faker

	return &models.Restaurant{
		Name:                f.Company().Name(),
		CuisineType:         f.RandomStringElement(models.Cuisines),
		Location:            f.Address().City(),
		OwnerName:           f.Person().Name(),
		AverageDeliveryTime: f.IntBetween(15, 45),
		ContactNumber:       uniqueValue(&rf.numbers, f.Phone().Number(), suffixVariant),
		Rating:              f.Float64(1, 3, 5),
		IsActive:            f.IntBetween(1, 10) > 1,
	}
}
