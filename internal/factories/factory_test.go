package factories

import (
	"sync"
	"testing"
	"time"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *models.Config {
	return &models.Config{Seed: models.SeedConfig{StartDate: time.Now().AddDate(-1, 0, 0).Truncate(time.Second)}}
}

func TestUniqueValue(t *testing.T) {
	var cache sync.Map
	assert.Equal(t, "ana@x.com", uniqueValue(&cache, "ana@x.com", emailVariant))
	assert.Equal(t, "ana+1@x.com", uniqueValue(&cache, "ana@x.com", emailVariant))
	assert.Equal(t, "ana+2@x.com", uniqueValue(&cache, "ana@x.com", emailVariant))

	assert.Equal(t, "555-0100", uniqueValue(&cache, "555-0100", suffixVariant))
	assert.Equal(t, "555-0100-1", uniqueValue(&cache, "555-0100", suffixVariant))
}

func TestCreateCustomer(t *testing.T) {
	cfg := testConfig()
	cf := NewCustomerFactory(NewFaker(42))

	emails := map[string]bool{}
	phones := map[string]bool{}
	for i := 0; i < 200; i++ {
		c := cf.CreateCustomer(cfg)
		require.NotEmpty(t, c.Name)
		require.NotNil(t, c.Phone)
		assert.False(t, emails[c.Email], "duplicate email %s", c.Email)
		assert.False(t, phones[*c.Phone], "duplicate phone %s", *c.Phone)
		emails[c.Email] = true
		phones[*c.Phone] = true

		assert.False(t, c.SignupDate.Before(cfg.Seed.StartDate))
		assert.False(t, c.SignupDate.After(time.Now()))
		assert.Contains(t, models.Cuisines, c.PreferredCuisine)
		assert.Zero(t, c.TotalOrders)
	}
}

func TestCreateRestaurant(t *testing.T) {
	rf := NewRestaurantFactory(NewFaker(7))
	numbers := map[string]bool{}
	for i := 0; i < 200; i++ {
		r := rf.CreateRestaurant(testConfig())
		assert.GreaterOrEqual(t, r.Rating, 3.0)
		assert.LessOrEqual(t, r.Rating, 5.0)
		assert.GreaterOrEqual(t, r.AverageDeliveryTime, 15)
		assert.LessOrEqual(t, r.AverageDeliveryTime, 45)
		assert.Contains(t, models.Cuisines, r.CuisineType)
		assert.False(t, numbers[r.ContactNumber])
		numbers[r.ContactNumber] = true
	}
}

func TestCreateOrder(t *testing.T) {
	cfg := testConfig()
	of := NewOrderFactory(NewFaker(3))
	customers := []int64{4, 8, 15}
	restaurants := []int64{16, 23}

	for i := 0; i < 300; i++ {
		o := of.CreateOrder(cfg, customers, restaurants)
		assert.Contains(t, customers, o.CustomerID)
		assert.Contains(t, restaurants, o.RestaurantID)
		assert.Contains(t, models.OrderStatuses, o.Status)
		assert.Contains(t, models.PaymentModes, o.PaymentMode)
		assert.GreaterOrEqual(t, o.TotalAmount, 5.0)
		assert.LessOrEqual(t, o.TotalAmount, 150.0)
		assert.GreaterOrEqual(t, o.DiscountApplied, 0.0)
		assert.LessOrEqual(t, o.DiscountApplied, 20.0)

		if o.Status == models.OrderStatusDelivered {
			require.NotNil(t, o.DeliveryTime)
			require.NotNil(t, o.FeedbackRating)
			assert.True(t, o.DeliveryTime.After(o.OrderDate))
			assert.GreaterOrEqual(t, *o.FeedbackRating, 1.0)
			assert.LessOrEqual(t, *o.FeedbackRating, 5.0)
		} else {
			assert.Nil(t, o.DeliveryTime)
			assert.Nil(t, o.FeedbackRating)
		}
	}
}

func TestCreateDelivery(t *testing.T) {
	df := NewDeliveryFactory(NewFaker(11))

	for i := 0; i < 200; i++ {
		d := df.CreateDelivery(testConfig(), 9, []int64{1, 2})
		assert.EqualValues(t, 9, d.OrderID)
		require.NotNil(t, d.DeliveryPersonID)
		assert.Contains(t, []int64{1, 2}, *d.DeliveryPersonID)
		assert.GreaterOrEqual(t, d.Distance, 1.0)
		assert.LessOrEqual(t, d.Distance, 15.0)
		assert.GreaterOrEqual(t, d.DeliveryTime, 15)
		assert.LessOrEqual(t, d.DeliveryTime, 60)
		assert.GreaterOrEqual(t, d.DeliveryFee, 0.0)
		assert.LessOrEqual(t, d.DeliveryFee, 10.0)
		assert.Contains(t, models.DeliveryStatuses, d.DeliveryStatus)
		assert.Contains(t, models.VehicleTypes, d.VehicleType)
	}

	d := df.CreateDelivery(testConfig(), 9, nil)
	assert.Nil(t, d.DeliveryPersonID)
}

func TestSeededFakerIsDeterministic(t *testing.T) {
	a := NewRestaurantFactory(NewFaker(99)).CreateRestaurant(testConfig())
	b := NewRestaurantFactory(NewFaker(99)).CreateRestaurant(testConfig())
	assert.Equal(t, a.Name, b.Name)
	assert.Equal(t, a.Rating, b.Rating)
}
