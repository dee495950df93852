package entity

// PaymentType enumerates how an order can be paid.
type PaymentType string

const (
	PaymentTypeCard   PaymentType = "card"
	PaymentTypeMobile PaymentType = "mobile"
	PaymentTypeCash   PaymentType = "cash"
)

// PaymentMethod is one of the ways a user can pay for an order.
type PaymentMethod struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Type      PaymentType `json:"type"`
	Icon      string      `json:"icon"`
	Available bool        `json:"available"`
}

// StaticPaymentMethods returns the fixed payment catalog: card, mobile money and cash.
func StaticPaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		{ID: "card", Name: "Carte bancaire", Type: PaymentTypeCard, Icon: "💳", Available: true},
		{ID: "mobile", Name: "Mobile Money", Type: PaymentTypeMobile, Icon: "📱", Available: true},
		{ID: "cash", Name: "Espèces", Type: PaymentTypeCash, Icon: "💰", Available: true},
	}
}
