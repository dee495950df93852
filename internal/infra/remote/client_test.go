package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "brew/internal/delivery/context"
	"brew/internal/domain/entity"
	domainerrors "brew/internal/domain/errors"
	"brew/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)

	return New(server.URL, opts...)
}

func TestCatalogRepository_ListDeliveryMethods_FlattensVehicles(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/delivery", r.URL.Path)
		_, _ = io.WriteString(w, `[{"id":"d1","duration":30,"vehicles":[
			{"id":"v1","name":"Moto Rapide","price":2000,"timeGain":10},
			{"id":"v2","name":"City Bike","price":500,"timeGain":0},
			{"id":"v3","name":"Delivery Van","price":3000,"timeGain":5}]}]`)
	})

	methods, err := NewCatalogRepository(client).ListDeliveryMethods(context.Background())

	require.NoError(t, err)
	require.Len(t, methods, 3)

	assert.Equal(t, "v1", methods[0].ID)
	assert.Equal(t, entity.VehicleMotorcycle, methods[0].Type)
	assert.Equal(t, 20*time.Minute, methods[0].EstimatedTime)
	assert.Equal(t, int64(1200000), methods[0].EstimatedTime.Milliseconds())
	assert.Equal(t, int64(2000), methods[0].Price)
	assert.Equal(t, "🏍️", methods[0].Icon)

	assert.Equal(t, entity.VehicleBike, methods[1].Type)
	assert.Equal(t, entity.VehicleTruck, methods[2].Type)
	assert.Equal(t, "🚐", methods[2].Icon)
}

func TestCatalogRepository_ListCoffees(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/coffee", r.URL.Path)
		_, _ = io.WriteString(w, `[{"id":"c1","name":"Espresso","cost":4000,"preparationTime":30,"strength":4},
			{"id":"c2","name":"Latte","cost":"4500.4","addins":[{"id":"a1","name":"Milk","price":200}],"strength":9}]`)
	})

	coffees, err := NewCatalogRepository(client).ListCoffees(context.Background())

	require.NoError(t, err)
	require.Len(t, coffees, 2)
	assert.Equal(t, int64(4000), coffees[0].Cost)
	require.NotNil(t, coffees[0].Strength)
	assert.Equal(t, 4, *coffees[0].Strength)
	assert.Empty(t, coffees[0].Addins)
	assert.Equal(t, int64(4500), coffees[1].Cost)
	assert.Nil(t, coffees[1].Strength, "out of range strength is dropped")
	require.Len(t, coffees[1].Addins, 1)
	assert.Equal(t, int64(200), coffees[1].Addins[0].Price)
}

func TestCatalogRepository_ListPaymentMethods_UsesDedicatedPath(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/payment-methods", r.URL.Path)
		_, _ = io.WriteString(w, `[{"id":"card","name":"Card","type":"CARD","icon":"💳"},{"id":"cash","type":"cash","available":false}]`)
	})

	methods, err := NewCatalogRepository(client).ListPaymentMethods(context.Background())

	require.NoError(t, err)
	require.Len(t, methods, 2)
	assert.Equal(t, entity.PaymentTypeCard, methods[0].Type)
	assert.True(t, methods[0].Available)
	assert.False(t, methods[1].Available)
}

func TestClient_NonSuccessStatus_UsesMessageField(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"message":"coffee c9 does not exist"}`)
	})

	_, err := NewOrderRepository(client).Create(context.Background(), &entity.CreateOrderRequest{CoffeeID: "c9"})

	var remoteErr *domainerrors.RemoteCallError
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, http.StatusBadRequest, remoteErr.Status)
	assert.Equal(t, "coffee c9 does not exist", remoteErr.Msg)
	assert.Equal(t, http.MethodPost, remoteErr.Method)
	assert.Equal(t, "/api/orders", remoteErr.Path)
}

func TestClient_NonSuccessStatus_FallsBackToStatusText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, "<html>down</html>")
	})

	_, err := NewOrderRepository(client).List(context.Background())

	var remoteErr *domainerrors.RemoteCallError
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, http.StatusServiceUnavailable, remoteErr.Status)
	assert.Equal(t, "Service Unavailable", remoteErr.Msg)
	assert.Equal(t, "REMOTE_CALL_FAILED", remoteErr.ErrorCode())
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, WithTimeout(50*time.Millisecond))
	defer close(release)

	start := time.Now()
	_, err := NewCatalogRepository(client).ListCoffees(context.Background())

	var remoteErr *domainerrors.RemoteCallError
	require.True(t, errors.As(err, &remoteErr))
	assert.Zero(t, remoteErr.Status)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestClient_ForwardsRequestIDAndUserAgent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-42", r.Header.Get("X-Request-Id"))
		assert.Equal(t, "brew-test", r.Header.Get("User-Agent"))
		_, _ = io.WriteString(w, `[]`)
	}, WithUserAgent("brew-test"))

	ctx := deliverycontext.WithScope(context.Background(), "req-42", nil)
	orders, err := NewOrderRepository(client).ListActive(ctx)

	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestClient_RateLimitHonoursContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	}, WithRateLimit(0.001, 1))

	_, err := NewOrderRepository(client).List(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = NewOrderRepository(client).List(ctx)
	var remoteErr *domainerrors.RemoteCallError
	require.True(t, errors.As(err, &remoteErr))
	assert.Zero(t, remoteErr.Status)
}

func TestOrderRepository_Create_NormalizesResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "c1", body["coffeeId"])
		assert.Equal(t, "card", body["paymentId"])
		assert.Equal(t, "v1", body["deliveryId"])
		assert.Equal(t, "pending", body["status"])
		assert.InDelta(t, 5000, body["totalPrice"], 0)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		_, _ = io.WriteString(w, `{"id":"srv-1","status":" BREWING ","createdAt":"2026-03-14T10:00:00","totalPrice":5000,"orderNumber":"A-17"}`)
	})

	order, err := NewOrderRepository(client).Create(context.Background(), &entity.CreateOrderRequest{
		CoffeeID:   "c1",
		PaymentID:  "card",
		DeliveryID: "v1",
		Status:     "pending",
		TotalPrice: 5000,
	})

	require.NoError(t, err)
	assert.Equal(t, "srv-1", order.ID)
	assert.Equal(t, entity.OrderStatusBrewing, order.Status)
	assert.Equal(t, time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC), order.CreatedAt)
	require.NotNil(t, order.TotalPrice)
	assert.Equal(t, int64(5000), *order.TotalPrice)
	assert.Equal(t, "A-17", order.OrderNumber)
}

func TestOrderRepository_List_AcceptsStatusHistoryShape(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[
			{"id":"o1","totalPrice":4200,"coffees":[{"id":"c1","name":"Mocha","cost":4200}],
			 "statuses":[{"id":"s1","status":"PENDING","statusDate":"2026-03-01T08:00:00Z"},{"id":"s2","status":"delivering","statusDate":"2026-03-01T08:10:00Z"}]},
			{"id":"o2","coffee":{"id":"c2","name":"Flat white","cost":3900},"status":"teleporting"}]`)
	})

	orders, err := NewOrderRepository(client).List(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, "Mocha", orders[0].Coffee.Name)
	assert.Equal(t, entity.OrderStatusDelivering, orders[0].Status)
	assert.Equal(t, time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC), orders[0].CreatedAt)

	assert.Equal(t, entity.OrderStatusPending, orders[1].Status, "unknown status is coerced to pending")
	assert.Equal(t, fixedNow, orders[1].CreatedAt, "missing timestamp falls back to now")
}

func TestOrderRepository_UpdateStatus_SendsStatusQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/orders/srv-1/status", r.URL.Path)
		assert.Equal(t, "paying", r.URL.Query().Get("status"))
		_, _ = io.WriteString(w, `{"status":"PAYING","statusDate":"2026-03-14T10:05:00Z"}`)
	})

	update, err := NewOrderRepository(client).UpdateStatus(context.Background(), "srv-1", entity.OrderStatusPaying)

	require.NoError(t, err)
	assert.Equal(t, "srv-1", update.ID)
	assert.Equal(t, entity.OrderStatusPaying, update.Status)
}

func TestOrderRepository_FindByID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/o-7", r.URL.Path)
		_, _ = io.WriteString(w, `{"id":"o-7","coffee":{"id":"c1","name":"Ristretto","cost":3000},"status":"completed"}`)
	})

	order, err := NewOrderRepository(client).FindByID(context.Background(), "o-7")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, order.Status)
	assert.Nil(t, order.TotalPrice)
}

func TestPaymentRepository_ListPayments_FillsDefaults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/payments", r.URL.Path)
		_, _ = io.WriteString(w, `[
			{"id":"abcdef123456","paymentDate":"2026-02-01T12:00:00Z","totalAmount":5000,
			 "coffeeOrder":{"id":"co1","totalPrice":5000,"coffees":[{"id":"c1","name":"Espresso","cost":4000}]}},
			{"id":"p2","transactionReference":"TX-99","totalAmount":3000,"method":"mobile","status":"refunded","amount":3000}]`)
	})

	records, err := NewPaymentRepository(client).ListPayments(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "PAY-abcdef12", records[0].TransactionReference)
	assert.Equal(t, "card", records[0].Method)
	assert.Equal(t, "completed", records[0].Status)
	require.NotNil(t, records[0].CoffeeOrder)
	assert.Equal(t, "Espresso", records[0].CoffeeOrder.Coffees[0].Name)

	assert.Equal(t, "TX-99", records[1].TransactionReference)
	assert.Equal(t, "mobile", records[1].Method)
	assert.Equal(t, "refunded", records[1].Status)
	require.NotNil(t, records[1].Amount)
	assert.Equal(t, int64(3000), *records[1].Amount)
}

func TestUserRepository_FindCurrent(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantID  string
		wantErr bool
	}{
		{name: "array takes first", body: `[{"id":"u1","name":"Ada"},{"id":"u2"}]`, wantID: "u1"},
		{name: "single object", body: `{"id":"u3","name":"Grace","email":"g@example.com","address":"1 Main St"}`, wantID: "u3"},
		{name: "empty array", body: `[]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/users", r.URL.Path)
				_, _ = io.WriteString(w, tt.body)
			})

			profile, err := NewUserRepository(client).FindCurrent(context.Background())

			if tt.wantErr {
				var noUser *domainerrors.NoUserFoundError
				require.True(t, errors.As(err, &noUser))
				assert.Nil(t, profile)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, profile.ID)
		})
	}
}

func TestAnalyticsRepository(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/analytics/orders-summary":
			_, _ = io.WriteString(w, `{"totalOrders":12,"totalRevenue":60000,"averageOrderValue":5000.5}`)
		case "/api/analytics/user-stats/u1":
			_, _ = io.WriteString(w, `{"totalOrders":3,"totalSpent":15000,"favoriteCoffee":"Latte","lastOrderDate":"2026-03-10T07:00:00Z"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	repo := NewAnalyticsRepository(client)

	summary, err := repo.OrdersSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, summary.TotalOrders)
	assert.Equal(t, int64(60000), summary.TotalRevenue)
	assert.InDelta(t, 5000.5, summary.AverageOrderValue, 0.001)

	stats, err := repo.UserStats(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", stats.UserID)
	assert.Equal(t, "Latte", stats.FavoriteCoffee)
	assert.Equal(t, time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC), stats.LastOrderDate)
}
