package entity

import (
	"encoding/json"
	"time"
)

// VehicleType is the kind of vehicle carrying a delivery.
type VehicleType string

const (
	VehicleBike       VehicleType = "bike"
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleTruck      VehicleType = "truck"
	VehicleShip       VehicleType = "ship"
)

// DeliveryMethod is a selectable way of delivering an order. The client derives one per
// vehicle of a remote DeliveryOption.
type DeliveryMethod struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Type          VehicleType   `json:"type"`
	EstimatedTime time.Duration `json:"estimatedTime"`
	Price         int64         `json:"price"`
	Icon          string        `json:"icon"`
}

// DeliveryOption is the remote delivery entity: a delivery slot with the vehicles that can
// serve it. Duration and TimeGain are in minutes.
type DeliveryOption struct {
	ID             string    `json:"id"`
	Date           string    `json:"date,omitempty"`
	PlaceToDeliver string    `json:"placeToDeliver,omitempty"`
	Duration       int       `json:"duration"`
	Vehicles       []Vehicle `json:"vehicles"`
}

// Vehicle is one vehicle of a DeliveryOption.
type Vehicle struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	TimeGain int    `json:"timeGain"`
}

// MarshalJSON renders EstimatedTime in milliseconds, the unit the UI works with.
func (d DeliveryMethod) MarshalJSON() ([]byte, error) {
	type alias DeliveryMethod

	return json.Marshal(struct {
		alias
		EstimatedTime int64 `json:"estimatedTime"`
	}{
		alias:         alias(d),
		EstimatedTime: d.EstimatedTime.Milliseconds(),
	})
}
