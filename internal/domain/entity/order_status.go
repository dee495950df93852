package entity

import (
	"slices"
	"strings"
)

// OrderStatus is a stage of the order pipeline. Stages are totally ordered and an order only
// ever moves forward through them.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusBrewing    OrderStatus = "brewing"
	OrderStatusPaying     OrderStatus = "paying"
	OrderStatusDelivering OrderStatus = "delivering"
	OrderStatusCompleted  OrderStatus = "completed"
)

var orderStatusSequence = []OrderStatus{
	OrderStatusPending,
	OrderStatusBrewing,
	OrderStatusPaying,
	OrderStatusDelivering,
	OrderStatusCompleted,
}

// OrderStatuses returns the pipeline in order.
func OrderStatuses() []OrderStatus {
	out := make([]OrderStatus, len(orderStatusSequence))
	copy(out, orderStatusSequence)

	return out
}

// NormalizeOrderStatus maps a raw status string coming from the server onto the pipeline.
// Anything it does not recognise becomes pending.
func NormalizeOrderStatus(raw string) OrderStatus {
	candidate := OrderStatus(strings.ToLower(strings.TrimSpace(raw)))
	if candidate.Valid() {
		return candidate
	}

	return OrderStatusPending
}

// Valid reports whether s is one of the pipeline stages.
func (s OrderStatus) Valid() bool {
	return s.Rank() >= 0
}

// Rank is the position of s in the pipeline, or -1 for an unknown status.
func (s OrderStatus) Rank() int {
	for i, status := range orderStatusSequence {
		if status == s {
			return i
		}
	}

	return -1
}

// Next returns the stage that follows s. ok is false for the terminal stage and unknown values.
func (s OrderStatus) Next() (next OrderStatus, ok bool) {
	rank := s.Rank()
	if rank < 0 || rank == len(orderStatusSequence)-1 {
		return "", false
	}

	return orderStatusSequence[rank+1], true
}

// Before reports whether s comes strictly earlier in the pipeline than other.
func (s OrderStatus) Before(other OrderStatus) bool {
	return s.Rank() < other.Rank()
}

// IsTerminal reports whether no further transition can happen from s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted
}

// AwaitsUser reports whether leaving s requires an explicit user action (payment confirmation).
func (s OrderStatus) AwaitsUser() bool {
	return s == OrderStatusPaying
}

// CrossesGate reports whether moving forward from s to later stage to would leave a stage that
// awaits the user, s itself included.
func (s OrderStatus) CrossesGate(to OrderStatus) bool {
	from, until := s.Rank(), to.Rank()
	if from < 0 || until <= from {
		return false
	}

	return slices.ContainsFunc(orderStatusSequence[from:until], OrderStatus.AwaitsUser)
}

func (s OrderStatus) String() string {
	return string(s)
}
