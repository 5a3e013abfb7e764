package factories

import (
	"sync"
	"time"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/jaswdr/faker"
)

type CustomerFactory struct {
	Faker  faker.Faker
	emails sync.Map
	phones sync.Map
}

func NewCustomerFactory(f faker.Faker) *CustomerFactory {
	return &CustomerFactory{Faker: f}
}

func (cf *CustomerFactory) CreateCustomer(config *models.Config) *models.Customer {
	f := cf.Faker
	phone := uniqueValue(&cf.phones, f.Phone().Number(), suffixVariant)

	return &models.Customer{
		Name:             f.Person().Name(),
		Email:            uniqueValue(&cf.emails, f.Internet().Email(), emailVariant),
		Phone:            &phone,
		Location:         f.Address().City(),
		SignupDate:       f.Time().TimeBetween(config.Seed.StartDate, time.Now()),
		IsPremium:        f.Bool(),
		PreferredCuisine: f.RandomStringElement(models.Cuisines),
	}
}
