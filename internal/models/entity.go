package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrUnknownKind = errors.New("unknown entity")

// Kind names an entity by its table.
type Kind string

const (
	KindCustomer       Kind = "customers"
	KindRestaurant     Kind = "restaurants"
	KindOrder          Kind = "orders"
	KindDelivery       Kind = "deliveries"
	KindDeliveryPerson Kind = "delivery_persons"
)

// Kinds lists every entity with parents ahead of the rows that reference them.
var Kinds = []Kind{KindCustomer, KindRestaurant, KindDeliveryPerson, KindOrder, KindDelivery}

// Entity is a row of one of the managed tables.
type Entity interface {
	Kind() Kind
	PrimaryKey() int64
	SetPrimaryKey(id int64)
	// InsertValues returns the column values in table insert order.
	InsertValues() []any
	// ApplyDefaults fills unset values the store would otherwise default.
	ApplyDefaults(now time.Time)
}

// ParseKind accepts table names, singular names and dashed forms in any case.
func ParseKind(s string) (Kind, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	switch key {
	case "customers", "customer":
		return KindCustomer, nil
	case "restaurants", "restaurant":
		return KindRestaurant, nil
	case "orders", "order":
		return KindOrder, nil
	case "deliveries", "delivery":
		return KindDelivery, nil
	case "delivery_persons", "delivery_person", "deliverypersons", "deliveryperson":
		return KindDeliveryPerson, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// New returns an empty entity of kind k initialised with the column defaults.
func (k Kind) New() Entity {
	switch k {
	case KindCustomer:
		return &Customer{}
	case KindRestaurant:
		return &Restaurant{IsActive: true}
	case KindOrder:
		return &Order{Status: OrderStatusPending, PaymentMode: PaymentModeCreditCard}
	case KindDelivery:
		return &Delivery{DeliveryStatus: DeliveryStatusOnTheWay, VehicleType: VehicleBike}
	case KindDeliveryPerson:
		return &DeliveryPerson{VehicleType: VehicleBike}
	}
	return nil
}

func (k Kind) String() string { return string(k) }
