package models

// DeliveryMethod is how the customer receives their order
type DeliveryMethod string

const (
	DeliveryPickup DeliveryMethod = "pickup"
	DeliveryToSeat DeliveryMethod = "delivery"
)

// PaymentMethod for checkout; no real processing happens either way
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// LineItem is one customized, quantified instance of a menu item in a
// cart. Every add produces a fresh LineItem with its own ID — adding
// the same menu item twice never merges quantities. MenuItem is a
// frozen copy and Modifiers are fixed at creation; only Quantity (and
// with it Subtotal) changes afterwards.
type LineItem struct {
	ID                  string              `json:"id"`
	MenuItem            MenuItem            `json:"menuItem"`
	Quantity            int                 `json:"quantity"`
	Modifiers           map[string][]string `json:"modifiers"`
	SpecialInstructions string              `json:"specialInstructions,omitempty"`
	Subtotal            float64             `json:"subtotal"`
}
