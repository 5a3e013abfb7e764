package models

import "time"

type Restaurant struct {
	ID                  int64   `db:"restaurant_id" json:"restaurant_id" mapstructure:"-"`
	Name                string  `db:"name" json:"name" mapstructure:"name" validate:"required,max=200"`
	CuisineType         string  `db:"cuisine_type" json:"cuisine_type" mapstructure:"cuisine_type"`
	Location            string  `db:"location" json:"location" mapstructure:"location"`
	OwnerName           string  `db:"owner_name" json:"owner_name" mapstructure:"owner_name"`
	AverageDeliveryTime int     `db:"average_delivery_time" json:"average_delivery_time" mapstructure:"average_delivery_time" validate:"gte=0"` // minutes
	ContactNumber       string  `db:"contact_number" json:"contact_number" mapstructure:"contact_number"`
	Rating              float64 `db:"rating" json:"rating" mapstructure:"rating" validate:"gte=0,lte=5"`
	TotalOrders         int     `db:"total_orders" json:"total_orders" mapstructure:"total_orders" validate:"gte=0"`
	IsActive            bool    `db:"is_active" json:"is_active" mapstructure:"is_active"`
}

func (r *Restaurant) Kind() Kind             { return KindRestaurant }
func (r *Restaurant) PrimaryKey() int64      { return r.ID }
func (r *Restaurant) SetPrimaryKey(id int64) { r.ID = id }

func (r *Restaurant) InsertValues() []any {
	return []any{
		r.Name,
		r.CuisineType,
		r.Location,
		r.OwnerName,
		r.AverageDeliveryTime,
		r.ContactNumber,
		r.Rating,
		r.TotalOrders,
		r.IsActive,
	}
}

func (r *Restaurant) ApplyDefaults(time.Time) {}
