package models

import "time"

type Order struct {
	ID              int64      `db:"order_id" json:"order_id" mapstructure:"-"`
	CustomerID      int64      `db:"customer_id" json:"customer_id" mapstructure:"customer_id" validate:"gt=0"`
	RestaurantID    int64      `db:"restaurant_id" json:"restaurant_id" mapstructure:"restaurant_id" validate:"gt=0"`
	OrderDate       time.Time  `db:"order_date" json:"order_date" mapstructure:"order_date"`
	DeliveryTime    *time.Time `db:"delivery_time" json:"delivery_time" mapstructure:"delivery_time"`
	Status          string     `db:"status" json:"status" mapstructure:"status" validate:"oneof=Pending Delivered Cancelled"`
	TotalAmount     float64    `db:"total_amount" json:"total_amount" mapstructure:"total_amount" validate:"gte=0"`
	PaymentMode     string     `db:"payment_mode" json:"payment_mode" mapstructure:"payment_mode" validate:"oneof='Credit Card' Cash UPI"`
	DiscountApplied float64    `db:"discount_applied" json:"discount_applied" mapstructure:"discount_applied" validate:"gte=0"`
	FeedbackRating  *float64   `db:"feedback_rating" json:"feedback_rating" mapstructure:"feedback_rating" validate:"omitempty,gte=1,lte=5"`
}

func (o *Order) Kind() Kind             { return KindOrder }
func (o *Order) PrimaryKey() int64      { return o.ID }
func (o *Order) SetPrimaryKey(id int64) { o.ID = id }

func (o *Order) InsertValues() []any {
	return []any{
		o.CustomerID,
		o.RestaurantID,
		o.OrderDate,
		o.DeliveryTime,
		o.Status,
		o.TotalAmount,
		o.PaymentMode,
		o.DiscountApplied,
		o.FeedbackRating,
	}
}

func (o *Order) ApplyDefaults(now time.Time) {
	if o.OrderDate.IsZero() {
		o.OrderDate = now
	}
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	if o.PaymentMode == "" {
		o.PaymentMode = PaymentModeCreditCard
	}
}
