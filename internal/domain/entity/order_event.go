package entity

import "time"

// OrderEvent records that the active order changed status.
type OrderEvent struct {
	EventID         string      `json:"event_id"`
	RequestID       string      `json:"request_id,omitempty"`
	OrderID         string      `json:"order_id"`
	From            OrderStatus `json:"from,omitempty"`
	To              OrderStatus `json:"to"`
	ServerConfirmed bool        `json:"server_confirmed"`
	OccurredAt      time.Time   `json:"occurred_at"`
}
