package models

import "time"

type Delivery struct {
	ID               int64   `db:"delivery_id" json:"delivery_id" mapstructure:"-"`
	OrderID          int64   `db:"order_id" json:"order_id" mapstructure:"order_id" validate:"gt=0"`
	DeliveryPersonID *int64  `db:"delivery_person_id" json:"delivery_person_id" mapstructure:"delivery_person_id" validate:"omitempty,gt=0"`
	DeliveryStatus   string  `db:"delivery_status" json:"delivery_status" mapstructure:"delivery_status" validate:"oneof='On the way' Delivered"`
	Distance         float64 `db:"distance" json:"distance" mapstructure:"distance" validate:"gte=0"` // km
	DeliveryTime     int     `db:"delivery_time" json:"delivery_time" mapstructure:"delivery_time" validate:"gte=0"`
	EstimatedTime    int     `db:"estimated_time" json:"estimated_time" mapstructure:"estimated_time" validate:"gte=0"`
	DeliveryFee      float64 `db:"delivery_fee" json:"delivery_fee" mapstructure:"delivery_fee" validate:"gte=0"`
	VehicleType      string  `db:"vehicle_type" json:"vehicle_type" mapstructure:"vehicle_type" validate:"oneof=Bike Car"`
}

func (d *Delivery) Kind() Kind             { return KindDelivery }
func (d *Delivery) PrimaryKey() int64      { return d.ID }
func (d *Delivery) SetPrimaryKey(id int64) { d.ID = id }

func (d *Delivery) InsertValues() []any {
	return []any{
		d.OrderID,
		d.DeliveryPersonID,
		d.DeliveryStatus,
		d.Distance,
		d.DeliveryTime,
		d.EstimatedTime,
		d.DeliveryFee,
		d.VehicleType,
	}
}

func (d *Delivery) ApplyDefaults(time.Time) {
	if d.DeliveryStatus == "" {
		d.DeliveryStatus = DeliveryStatusOnTheWay
	}
	if d.VehicleType == "" {
		d.VehicleType = VehicleBike
	}
}
