package service

import (
	"context"

	"brew/internal/domain/entity"
)

// EventPublisher defines the interface for publishing order events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes a status change of an order
	PublishOrderEvent(ctx context.Context, event *entity.OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
