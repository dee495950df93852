package entity

import "time"

// Order is a coffee order as tracked by the client. Coffee is always present; payment and
// delivery are optional only for orders read back from history.
type Order struct {
	ID          string          `json:"id"`
	Coffee      Coffee          `json:"coffee"`
	Payment     *PaymentMethod  `json:"payment,omitempty"`
	Delivery    *DeliveryMethod `json:"delivery,omitempty"`
	Status      OrderStatus     `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UserID      string          `json:"userId,omitempty"`
	TotalPrice  *int64          `json:"totalPrice,omitempty"`
	OrderNumber string          `json:"orderNumber,omitempty"`
}

// Total is the server total when known, otherwise coffee cost plus delivery price.
func (o *Order) Total() int64 {
	if o.TotalPrice != nil {
		return *o.TotalPrice
	}

	return o.ComputedTotal()
}

// ComputedTotal is coffee cost plus delivery price, ignoring any server total.
func (o *Order) ComputedTotal() int64 {
	total := o.Coffee.Cost
	if o.Delivery != nil {
		total += o.Delivery.Price
	}

	return total
}

// Clone returns a copy that shares no pointers with o.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}

	c := *o
	if o.Payment != nil {
		payment := *o.Payment
		c.Payment = &payment
	}
	if o.Delivery != nil {
		delivery := *o.Delivery
		c.Delivery = &delivery
	}
	if o.TotalPrice != nil {
		total := *o.TotalPrice
		c.TotalPrice = &total
	}

	return &c
}

// CreateOrderRequest is the payload sent to create an order remotely.
type CreateOrderRequest struct {
	CoffeeID   string `json:"coffeeId"`
	PaymentID  string `json:"paymentId"`
	DeliveryID string `json:"deliveryId"`
	Status     string `json:"status"`
	TotalPrice int64  `json:"totalPrice"`
}

// StatusUpdate is the server acknowledgement of a status change.
type StatusUpdate struct {
	ID         string      `json:"id"`
	Status     OrderStatus `json:"status"`
	StatusDate time.Time   `json:"statusDate"`
}

// StatusTransition is the outcome of one status mutation on the active order.
// ServerConfirmed is false when the remote update failed and the status was applied locally
// only, in which case Cause holds the remote error.
type StatusTransition struct {
	OrderID         string      `json:"orderId"`
	From            OrderStatus `json:"from"`
	To              OrderStatus `json:"to"`
	ServerConfirmed bool        `json:"serverConfirmed"`
	Cause           error       `json:"-"`
}

// Diverged reports whether local state may now disagree with the server.
func (t *StatusTransition) Diverged() bool {
	return !t.ServerConfirmed
}
