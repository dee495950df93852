package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"brew/internal/domain/entity"
	"brew/internal/usecase"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// manualScheduler holds scheduled tasks until a test fires them.
type manualScheduler struct {
	mu    sync.Mutex
	tasks map[string]scheduledTask
}

type scheduledTask struct {
	delay time.Duration
	run   func()
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{tasks: make(map[string]scheduledTask)}
}

func (s *manualScheduler) Schedule(key string, delay time.Duration, task func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks[key] = scheduledTask{delay: delay, run: task}
}

func (s *manualScheduler) Cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.tasks[key]
	delete(s.tasks, key)

	return ok
}

func (s *manualScheduler) Pending(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.tasks[key]

	return ok
}

func (s *manualScheduler) Close() error { return nil }

// Delay returns the delay the pending task for key was scheduled with.
func (s *manualScheduler) Delay(key string) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[key]

	return task.delay, ok
}

// Take removes the pending task for key without running it.
func (s *manualScheduler) Take(key string) (func(), bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[key]
	delete(s.tasks, key)

	return task.run, ok
}

// Fire runs the pending task for key as if its delay had elapsed.
func (s *manualScheduler) Fire(t *testing.T, key string) {
	t.Helper()

	run, ok := s.Take(key)
	require.True(t, ok, "no task scheduled for %s", key)
	run()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func counterTotal(t *testing.T, reader *sdkmetric.ManualReader, name string) int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					total += dp.Value
				}
			}
		}
	}

	return total
}

func sampleCoffee() entity.Coffee {
	return entity.Coffee{ID: "coffee-1", Name: "Espresso", Cost: 4000, PreparationTime: 120}
}

func sampleDelivery() entity.DeliveryMethod {
	return entity.DeliveryMethod{
		ID:            "vehicle-1",
		Name:          "City Bike",
		Type:          entity.VehicleBike,
		EstimatedTime: 25 * time.Minute,
		Price:         1000,
		Icon:          "🚲",
	}
}

func samplePayment(paymentType entity.PaymentType) entity.PaymentMethod {
	for _, m := range entity.StaticPaymentMethods() {
		if m.Type == paymentType {
			return m
		}
	}

	return entity.PaymentMethod{ID: string(paymentType), Name: string(paymentType), Type: paymentType, Available: true}
}

func sampleSelection(paymentType entity.PaymentType) usecase.Selection {
	coffee := sampleCoffee()
	payment := samplePayment(paymentType)
	delivery := sampleDelivery()

	return usecase.Selection{Coffee: &coffee, Payment: &payment, Delivery: &delivery}
}

func sampleOrder(id string, status entity.OrderStatus, paymentType entity.PaymentType) entity.Order {
	payment := samplePayment(paymentType)
	delivery := sampleDelivery()

	return entity.Order{
		ID:        id,
		Coffee:    sampleCoffee(),
		Payment:   &payment,
		Delivery:  &delivery,
		Status:    status,
		CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}
