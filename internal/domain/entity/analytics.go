package entity

import "time"

// OrdersSummary holds the aggregate order figures computed by the server.
type OrdersSummary struct {
	TotalOrders       int     `json:"totalOrders"`
	TotalRevenue      int64   `json:"totalRevenue"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

// UserStats holds the per-user aggregate computed by the server.
type UserStats struct {
	UserID         string    `json:"userId"`
	TotalOrders    int       `json:"totalOrders"`
	TotalSpent     int64     `json:"totalSpent"`
	FavoriteCoffee string    `json:"favoriteCoffee"`
	LastOrderDate  time.Time `json:"lastOrderDate"`
}

// OrderBoard is the local status board: history figures plus the active order.
type OrderBoard struct {
	TotalOrders       int     `json:"totalOrders"`
	ActiveOrders      int     `json:"activeOrders"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	Active            *Order  `json:"active,omitempty"`
	Recent            []Order `json:"recent"`
}
