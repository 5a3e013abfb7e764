package models

import "time"

type Customer struct {
	ID               int64     `db:"customer_id" json:"customer_id" mapstructure:"-"`
	Name             string    `db:"name" json:"name" mapstructure:"name" validate:"required,max=200"`
	Email            string    `db:"email" json:"email" mapstructure:"email" validate:"required,email"`
	Phone            *string   `db:"phone" json:"phone" mapstructure:"phone" validate:"omitempty,max=40"`
	Location         string    `db:"location" json:"location" mapstructure:"location"`
	SignupDate       time.Time `db:"signup_date" json:"signup_date" mapstructure:"signup_date"`
	IsPremium        bool      `db:"is_premium" json:"is_premium" mapstructure:"is_premium"`
	PreferredCuisine string    `db:"preferred_cuisine" json:"preferred_cuisine" mapstructure:"preferred_cuisine"`
	TotalOrders      int       `db:"total_orders" json:"total_orders" mapstructure:"total_orders" validate:"gte=0"`
	AverageRating    float64   `db:"average_rating" json:"average_rating" mapstructure:"average_rating" validate:"gte=0,lte=5"`
}

func (c *Customer) Kind() Kind             { return KindCustomer }
func (c *Customer) PrimaryKey() int64      { return c.ID }
func (c *Customer) SetPrimaryKey(id int64) { c.ID = id }

func (c *Customer) InsertValues() []any {
	return []any{
		c.Name,
		c.Email,
		c.Phone,
		c.Location,
		c.SignupDate,
		c.IsPremium,
		c.PreferredCuisine,
		c.TotalOrders,
		c.AverageRating,
	}
}

func (c *Customer) ApplyDefaults(now time.Time) {
	if c.SignupDate.IsZero() {
		c.SignupDate = now
	}
	if c.Phone != nil && *c.Phone == "" {
		c.Phone = nil
	}
}
