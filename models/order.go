package models

import "time"

// OrderStatus represents all possible states of a concession order
type OrderStatus string

const (
	// StatusPending is declared for completeness but never assigned:
	// orders are created directly in StatusConfirmed.
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusReady          OrderStatus = "ready"
	StatusOutForDelivery OrderStatus = "out-for-delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCompleted      OrderStatus = "completed"
)

// TaxRate applied to every order subtotal at checkout
const TaxRate = 0.08

// Order is a frozen snapshot of a cart at checkout plus the money
// breakdown. Everything except Status (and its history) is immutable
// once created; mutating the live cart afterwards never touches a
// past order.
type Order struct {
	ID             string         `json:"id"`
	OrderNumber    string         `json:"orderNumber"`
	Items          []LineItem     `json:"items"`
	Subtotal       float64        `json:"subtotal"`
	Tax            float64        `json:"tax"`
	Tip            float64        `json:"tip"`
	Total          float64        `json:"total"`
	PaymentMethod  PaymentMethod  `json:"paymentMethod"`
	DeliveryMethod DeliveryMethod `json:"deliveryMethod"`
	Seat           *SeatLocation  `json:"seat,omitempty"`
	Status         OrderStatus    `json:"status"`
	EstimatedTime  string         `json:"estimatedTime"`
	CreatedAt      time.Time      `json:"createdAt"`
	StatusHistory  []StatusChange `json:"statusHistory,omitempty"`
}

// StatusChange records one status transition for the order's audit trail
type StatusChange struct {
	From      OrderStatus `json:"from,omitempty"`
	To        OrderStatus `json:"to"`
	Note      string      `json:"note,omitempty"`
	ChangedAt time.Time   `json:"changedAt"`
}
