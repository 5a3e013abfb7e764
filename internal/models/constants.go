package models

const (
	OrderStatusPending   = "Pending"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"

	PaymentModeCreditCard = "Credit Card"
	PaymentModeCash       = "Cash"
	PaymentModeUPI        = "UPI"

	DeliveryStatusOnTheWay  = "On the way"
	DeliveryStatusDelivered = "Delivered"

	VehicleBike = "Bike"
	VehicleCar  = "Car"
)

var (
	OrderStatuses    = []string{OrderStatusPending, OrderStatusDelivered, OrderStatusCancelled}
	PaymentModes     = []string{PaymentModeCreditCard, PaymentModeCash, PaymentModeUPI}
	DeliveryStatuses = []string{DeliveryStatusOnTheWay, DeliveryStatusDelivered}
	VehicleTypes     = []string{VehicleBike, VehicleCar}
	Cuisines         = []string{"Indian", "Chinese", "Italian", "Mexican", "Thai"}
)
