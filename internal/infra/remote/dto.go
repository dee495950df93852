package remote

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"brew/internal/errors"
)

// amount decodes a currency value sent either as a JSON number, possibly fractional, or as a
// numeric string. Fractions are rounded to whole units.
type amount int64

func (a *amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0

		return nil
	}

	text := strings.Trim(string(data), `"`)
	if text == "" {
		*a = 0

		return nil
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid amount %s", data)
	}
	*a = amount(math.Round(value))

	return nil
}

type addinDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price amount `json:"price"`
}

type coffeeDTO struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Cost            amount     `json:"cost"`
	PreparationTime int        `json:"preparationTime"`
	Addins          []addinDTO `json:"addins"`
	Strength        *int       `json:"strength"`
	Image           string     `json:"image"`
	Description     string     `json:"description"`
}

type paymentMethodDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Icon      string `json:"icon"`
	Available *bool  `json:"available"`
}

type vehicleDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    amount `json:"price"`
	TimeGain int    `json:"timeGain"`
}

type deliveryOptionDTO struct {
	ID             string       `json:"id"`
	Date           string       `json:"date"`
	PlaceToDeliver string       `json:"placeToDeliver"`
	Duration       int          `json:"duration"`
	Vehicles       []vehicleDTO `json:"vehicles"`
}

// deliveryMethodDTO is a delivery method echoed back inside an order, estimatedTime in milliseconds.
type deliveryMethodDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	EstimatedTime int64  `json:"estimatedTime"`
	Price         amount `json:"price"`
	Icon          string `json:"icon"`
}

type statusEntryDTO struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	StatusDate string `json:"statusDate"`
}

// orderDTO accepts both order shapes the service produces: a single coffee with a status,
// or a coffee list with a status history.
type orderDTO struct {
	ID          string             `json:"id"`
	Coffee      *coffeeDTO         `json:"coffee"`
	Coffees     []coffeeDTO        `json:"coffees"`
	Payment     *paymentMethodDTO  `json:"payment"`
	Delivery    *deliveryMethodDTO `json:"delivery"`
	Status      string             `json:"status"`
	Statuses    []statusEntryDTO   `json:"statuses"`
	CreatedAt   string             `json:"createdAt"`
	UserID      string             `json:"userId"`
	TotalPrice  *amount            `json:"totalPrice"`
	OrderNumber string             `json:"orderNumber"`
}

type statusUpdateDTO struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	StatusDate string `json:"statusDate"`
}

type coffeeOrderDTO struct {
	ID         string           `json:"id"`
	TotalPrice amount           `json:"totalPrice"`
	Coffees    []coffeeDTO      `json:"coffees"`
	Statuses   []statusEntryDTO `json:"statuses"`
}

type paymentRecordDTO struct {
	ID                   string             `json:"id"`
	PaymentDate          string             `json:"paymentDate"`
	TransactionReference string             `json:"transactionReference"`
	TotalAmount          amount             `json:"totalAmount"`
	PhoneNumber          string             `json:"phoneNumber"`
	SecretCode           string             `json:"secretCode"`
	CardNumber           string             `json:"cardNumber"`
	Amount               *amount            `json:"amount"`
	Delivery             *deliveryOptionDTO `json:"delivery"`
	CoffeeOrder          *coffeeOrderDTO    `json:"coffeeOrder"`
	Method               string             `json:"method"`
	Status               string             `json:"status"`
}

type userProfileDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// userProfilesDTO decodes the user endpoint, which answers with either a list or a single object.
type userProfilesDTO []userProfileDTO

func (u *userProfilesDTO) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*u = nil

		return nil
	}

	if data[0] == '[' {
		var list []userProfileDTO
		if err := json.Unmarshal(data, &list); err != nil {
			return errors.WithStack(err)
		}
		*u = list

		return nil
	}

	var single userProfileDTO
	if err := json.Unmarshal(data, &single); err != nil {
		return errors.WithStack(err)
	}
	*u = userProfilesDTO{single}

	return nil
}

type ordersSummaryDTO struct {
	TotalOrders       int     `json:"totalOrders"`
	TotalRevenue      amount  `json:"totalRevenue"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

type userStatsDTO struct {
	UserID         string `json:"userId"`
	TotalOrders    int    `json:"totalOrders"`
	TotalSpent     amount `json:"totalSpent"`
	FavoriteCoffee string `json:"favoriteCoffee"`
	LastOrderDate  string `json:"lastOrderDate"`
}
