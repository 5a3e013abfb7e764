package models

import "time"

type DeliveryPerson struct {
	ID              int64   `db:"delivery_person_id" json:"delivery_person_id" mapstructure:"-"`
	Name            string  `db:"name" json:"name" mapstructure:"name" validate:"required,max=200"`
	ContactNumber   string  `db:"contact_number" json:"contact_number" mapstructure:"contact_number"`
	VehicleType     string  `db:"vehicle_type" json:"vehicle_type" mapstructure:"vehicle_type" validate:"oneof=Bike Car"`
	TotalDeliveries int     `db:"total_deliveries" json:"total_deliveries" mapstructure:"total_deliveries" validate:"gte=0"`
	AverageRating   float64 `db:"average_rating" json:"average_rating" mapstructure:"average_rating" validate:"gte=0,lte=5"`
	Location        string  `db:"location" json:"location" mapstructure:"location"`
}

func (p *DeliveryPerson) Kind() Kind             { return KindDeliveryPerson }
func (p *DeliveryPerson) PrimaryKey() int64      { return p.ID }
func (p *DeliveryPerson) SetPrimaryKey(id int64) { p.ID = id }

func (p *DeliveryPerson) InsertValues() []any {
	return []any{
		p.Name,
		p.ContactNumber,
		p.VehicleType,
		p.TotalDeliveries,
		p.AverageRating,
		p.Location,
	}
}

func (p *DeliveryPerson) ApplyDefaults(time.Time) {
	if p.VehicleType == "" {
		p.VehicleType = VehicleBike
	}
}
