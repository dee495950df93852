package remote

import (
	"strings"
	"time"

	"brew/internal/domain/entity"
)

const (
	defaultPaymentMethod = "card"
	defaultPaymentStatus = "completed"
	transactionPrefix    = "PAY-"
	transactionIDLength  = 8
	defaultVehicleIcon   = "🚗"
)

// timestampLayouts are tried in order; the service emits both zoned and local date-times.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a service timestamp. Empty or unparseable input yields fallback.
func ParseTimestamp(raw string, fallback time.Time) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}

	return fallback
}

// VehicleTypeFromName infers the vehicle type from its display name.
func VehicleTypeFromName(name string) entity.VehicleType {
	lower := strings.ToLower(name)

	switch {
	case strings.Contains(lower, "bike"):
		return entity.VehicleBike
	case strings.Contains(lower, "moto"):
		return entity.VehicleMotorcycle
	case strings.Contains(lower, "truck"), strings.Contains(lower, "van"):
		return entity.VehicleTruck
	default:
		return entity.VehicleShip
	}
}

// VehicleIcon picks the display icon for a vehicle name.
func VehicleIcon(name string) string {
	lower := strings.ToLower(name)

	switch {
	case strings.Contains(lower, "bike"):
		return "🚲"
	case strings.Contains(lower, "moto"):
		return "🏍️"
	case strings.Contains(lower, "truck"):
		return "🚚"
	case strings.Contains(lower, "van"):
		return "🚐"
	default:
		return defaultVehicleIcon
	}
}

// FlattenDeliveryOption turns one delivery option into one delivery method per vehicle.
// A vehicle gaining more time than the option lasts gets a zero estimate.
func FlattenDeliveryOption(option entity.DeliveryOption) []entity.DeliveryMethod {
	methods := make([]entity.DeliveryMethod, 0, len(option.Vehicles))
	for _, vehicle := range option.Vehicles {
		minutes := max(option.Duration-vehicle.TimeGain, 0)

		methods = append(methods, entity.DeliveryMethod{
			ID:            vehicle.ID,
			Name:          vehicle.Name,
			Type:          VehicleTypeFromName(vehicle.Name),
			EstimatedTime: time.Duration(minutes) * time.Minute,
			Price:         vehicle.Price,
			Icon:          VehicleIcon(vehicle.Name),
		})
	}

	return methods
}

// TransactionReference returns ref, or PAY- followed by the first eight characters of id when ref is blank.
func TransactionReference(ref, id string) string {
	if strings.TrimSpace(ref) != "" {
		return ref
	}

	prefix := id
	if len(prefix) > transactionIDLength {
		prefix = prefix[:transactionIDLength]
	}

	return transactionPrefix + prefix
}

func toCoffee(dto coffeeDTO) entity.Coffee {
	addins := make([]entity.Addin, 0, len(dto.Addins))
	for _, a := range dto.Addins {
		addins = append(addins, entity.Addin{ID: a.ID, Name: a.Name, Price: int64(a.Price)})
	}

	var strength *int
	if dto.Strength != nil && *dto.Strength >= 1 && *dto.Strength <= 5 {
		s := *dto.Strength
		strength = &s
	}

	return entity.Coffee{
		ID:              dto.ID,
		Name:            dto.Name,
		Cost:            int64(dto.Cost),
		PreparationTime: dto.PreparationTime,
		Addins:          addins,
		Strength:        strength,
		Image:           dto.Image,
		Description:     dto.Description,
	}
}

func toPaymentMethod(dto paymentMethodDTO) entity.PaymentMethod {
	available := true
	if dto.Available != nil {
		available = *dto.Available
	}

	return entity.PaymentMethod{
		ID:        dto.ID,
		Name:      dto.Name,
		Type:      entity.PaymentType(strings.ToLower(strings.TrimSpace(dto.Type))),
		Icon:      dto.Icon,
		Available: available,
	}
}

func toDeliveryOption(dto deliveryOptionDTO) entity.DeliveryOption {
	vehicles := make([]entity.Vehicle, 0, len(dto.Vehicles))
	for _, v := range dto.Vehicles {
		vehicles = append(vehicles, entity.Vehicle{
			ID:       v.ID,
			Name:     v.Name,
			Price:    int64(v.Price),
			TimeGain: v.TimeGain,
		})
	}

	return entity.DeliveryOption{
		ID:             dto.ID,
		Date:           dto.Date,
		PlaceToDeliver: dto.PlaceToDeliver,
		Duration:       dto.Duration,
		Vehicles:       vehicles,
	}
}

func toDeliveryMethod(dto deliveryMethodDTO) entity.DeliveryMethod {
	vehicleType := entity.VehicleType(strings.ToLower(strings.TrimSpace(dto.Type)))
	switch vehicleType {
	case entity.VehicleBike, entity.VehicleMotorcycle, entity.VehicleTruck, entity.VehicleShip:
	default:
		vehicleType = VehicleTypeFromName(dto.Name)
	}

	icon := dto.Icon
	if icon == "" {
		icon = VehicleIcon(dto.Name)
	}

	return entity.DeliveryMethod{
		ID:            dto.ID,
		Name:          dto.Name,
		Type:          vehicleType,
		EstimatedTime: time.Duration(dto.EstimatedTime) * time.Millisecond,
		Price:         int64(dto.Price),
		Icon:          icon,
	}
}

func toStatusEntries(dtos []statusEntryDTO, fallback time.Time) []entity.OrderStatusEntry {
	if len(dtos) == 0 {
		return nil
	}

	entries := make([]entity.OrderStatusEntry, 0, len(dtos))
	for _, s := range dtos {
		entries = append(entries, entity.OrderStatusEntry{
			ID:         s.ID,
			Status:     entity.NormalizeOrderStatus(s.Status),
			StatusDate: ParseTimestamp(s.StatusDate, fallback),
		})
	}

	return entries
}

// toOrder normalizes an order of either shape. The status falls back to the latest entry of
// the status history and the creation time to the earliest one, then to now.
func toOrder(dto orderDTO, now time.Time) entity.Order {
	order := entity.Order{
		ID:          dto.ID,
		UserID:      dto.UserID,
		OrderNumber: dto.OrderNumber,
	}

	switch {
	case dto.Coffee != nil:
		order.Coffee = toCoffee(*dto.Coffee)
	case len(dto.Coffees) > 0:
		order.Coffee = toCoffee(dto.Coffees[0])
	}

	if dto.Payment != nil {
		payment := toPaymentMethod(*dto.Payment)
		order.Payment = &payment
	}
	if dto.Delivery != nil {
		delivery := toDeliveryMethod(*dto.Delivery)
		order.Delivery = &delivery
	}
	if dto.TotalPrice != nil {
		total := int64(*dto.TotalPrice)
		order.TotalPrice = &total
	}

	rawStatus := dto.Status
	if strings.TrimSpace(rawStatus) == "" && len(dto.Statuses) > 0 {
		rawStatus = dto.Statuses[len(dto.Statuses)-1].Status
	}
	order.Status = entity.NormalizeOrderStatus(rawStatus)

	rawCreated := dto.CreatedAt
	if strings.TrimSpace(rawCreated) == "" && len(dto.Statuses) > 0 {
		rawCreated = dto.Statuses[0].StatusDate
	}
	order.CreatedAt = ParseTimestamp(rawCreated, now)

	return order
}

func toStatusUpdate(dto statusUpdateDTO, id string, now time.Time) entity.StatusUpdate {
	updateID := dto.ID
	if updateID == "" {
		updateID = id
	}

	return entity.StatusUpdate{
		ID:         updateID,
		Status:     entity.NormalizeOrderStatus(dto.Status),
		StatusDate: ParseTimestamp(dto.StatusDate, now),
	}
}

func toPaymentRecord(dto paymentRecordDTO, now time.Time) entity.PaymentRecord {
	record := entity.PaymentRecord{
		ID:                   dto.ID,
		PaymentDate:          ParseTimestamp(dto.PaymentDate, now),
		TransactionReference: TransactionReference(dto.TransactionReference, dto.ID),
		TotalAmount:          int64(dto.TotalAmount),
		PhoneNumber:          dto.PhoneNumber,
		SecretCode:           dto.SecretCode,
		CardNumber:           dto.CardNumber,
		Method:               dto.Method,
		Status:               dto.Status,
	}
	if strings.TrimSpace(record.Method) == "" {
		record.Method = defaultPaymentMethod
	}
	if strings.TrimSpace(record.Status) == "" {
		record.Status = defaultPaymentStatus
	}
	if dto.Amount != nil {
		value := int64(*dto.Amount)
		record.Amount = &value
	}
	if dto.Delivery != nil {
		delivery := toDeliveryOption(*dto.Delivery)
		record.Delivery = &delivery
	}
	if dto.CoffeeOrder != nil {
		coffees := make([]entity.Coffee, 0, len(dto.CoffeeOrder.Coffees))
		for _, c := range dto.CoffeeOrder.Coffees {
			coffees = append(coffees, toCoffee(c))
		}
		record.CoffeeOrder = &entity.CoffeeOrderSnapshot{
			ID:         dto.CoffeeOrder.ID,
			TotalPrice: int64(dto.CoffeeOrder.TotalPrice),
			Coffees:    coffees,
			Statuses:   toStatusEntries(dto.CoffeeOrder.Statuses, now),
		}
	}

	return record
}

func toUserProfile(dto userProfileDTO) entity.UserProfile {
	return entity.UserProfile{
		ID:      dto.ID,
		Name:    dto.Name,
		Email:   dto.Email,
		Address: dto.Address,
	}
}
