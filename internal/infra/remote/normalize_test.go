package remote

import (
	"strings"
	"testing"
	"time"

	"brew/internal/domain/entity"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestVehicleTypeFromName(t *testing.T) {
	tests := []struct {
		name string
		want entity.VehicleType
		icon string
	}{
		{name: "Moto Rapide", want: entity.VehicleMotorcycle, icon: "🏍️"},
		{name: "MOTORCYCLE", want: entity.VehicleMotorcycle, icon: "🏍️"},
		{name: "Electric Bike", want: entity.VehicleBike, icon: "🚲"},
		{name: "Big Truck", want: entity.VehicleTruck, icon: "🚚"},
		{name: "Van", want: entity.VehicleTruck, icon: "🚐"},
		{name: "Cargo", want: entity.VehicleShip, icon: "🚗"},
		{name: "", want: entity.VehicleShip, icon: "🚗"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VehicleTypeFromName(tt.name))
			assert.Equal(t, tt.icon, VehicleIcon(tt.name))
		})
	}
}

func TestFlattenDeliveryOption_ClampsNegativeEstimate(t *testing.T) {
	methods := FlattenDeliveryOption(entity.DeliveryOption{
		ID:       "d1",
		Duration: 5,
		Vehicles: []entity.Vehicle{{ID: "v1", Name: "Rocket bike", TimeGain: 10}},
	})

	assert.Len(t, methods, 1)
	assert.Zero(t, methods[0].EstimatedTime)
}

func TestTransactionReference(t *testing.T) {
	assert.Equal(t, "TX-1", TransactionReference("TX-1", "abcdefghij"))
	assert.Equal(t, "PAY-abcdefgh", TransactionReference("", "abcdefghij"))
	assert.Equal(t, "PAY-abc", TransactionReference("  ", "abc"))
}

func TestParseTimestamp(t *testing.T) {
	fallback := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC), ParseTimestamp("2026-03-14T10:00:00Z", fallback))
	assert.Equal(t, time.Date(2026, 3, 14, 10, 0, 0, 500000000, time.UTC), ParseTimestamp("2026-03-14T10:00:00.5", fallback))
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), ParseTimestamp("2026-03-14", fallback))
	assert.Equal(t, fallback, ParseTimestamp("", fallback))
	assert.Equal(t, fallback, ParseTimestamp("yesterday", fallback))
}

func TestNormalizeOrderStatus_NeverLeavesPipeline(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("any string normalizes to a pipeline stage", prop.ForAll(
		func(raw string) bool {
			return entity.NormalizeOrderStatus(raw).Valid()
		},
		gen.AnyString(),
	))

	properties.Property("known stages survive case and padding changes", prop.ForAll(
		func(index, padding int) bool {
			status := entity.OrderStatuses()[index]
			pad := strings.Repeat(" ", padding)
			raw := pad + strings.ToUpper(status.String()) + "\t" + pad

			return entity.NormalizeOrderStatus(raw) == status
		},
		gen.IntRange(0, len(entity.OrderStatuses())-1),
		gen.IntRange(0, 3),
	))

	properties.TestingRun(t)
}

func TestTransactionReference_AlwaysNonEmpty(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("a reference is always present and keeps at most eight id characters", prop.ForAll(
		func(id string) bool {
			ref := TransactionReference("", id)
			if !strings.HasPrefix(ref, "PAY-") {
				return false
			}

			return len(ref) <= len("PAY-")+8 && strings.HasPrefix(id, strings.TrimPrefix(ref, "PAY-"))
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
