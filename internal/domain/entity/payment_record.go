package entity

import "time"

// PaymentRecord is one entry of the payment history. Display-only.
type PaymentRecord struct {
	ID                   string               `json:"id"`
	PaymentDate          time.Time            `json:"paymentDate"`
	TransactionReference string               `json:"transactionReference"`
	TotalAmount          int64                `json:"totalAmount"`
	PhoneNumber          string               `json:"phoneNumber,omitempty"`
	SecretCode           string               `json:"secretCode,omitempty"`
	CardNumber           string               `json:"cardNumber,omitempty"` // Masked by the server.
	Amount               *int64               `json:"amount,omitempty"`
	Delivery             *DeliveryOption      `json:"delivery,omitempty"`
	CoffeeOrder          *CoffeeOrderSnapshot `json:"coffeeOrder,omitempty"`
	Method               string               `json:"method"`
	Status               string               `json:"status"`
}

// CoffeeOrderSnapshot is the coffee order a payment was made for, as the server saw it.
type CoffeeOrderSnapshot struct {
	ID         string             `json:"id"`
	TotalPrice int64              `json:"totalPrice"`
	Coffees    []Coffee           `json:"coffees"`
	Statuses   []OrderStatusEntry `json:"statuses,omitempty"`
}

// OrderStatusEntry is one step of a server-side status history.
type OrderStatusEntry struct {
	ID         string      `json:"id"`
	Status     OrderStatus `json:"status"`
	StatusDate time.Time   `json:"statusDate"`
}
