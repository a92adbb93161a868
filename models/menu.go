package models

// Category groups menu items on the browse screen
type Category string

const (
	CategoryFood   Category = "food"
	CategoryDrinks Category = "drinks"
	CategoryCombos Category = "combos"
)

// StockStatus reflects concession stand availability
type StockStatus string

const (
	StockInStock    StockStatus = "in-stock"
	StockLowStock   StockStatus = "low-stock"
	StockOutOfStock StockStatus = "out-of-stock"
)

// ModifierOption is a single selectable option within a modifier group.
// Price is the delta added to the item's base price (may be zero).
type ModifierOption struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Modifier is a named group of options attached to a menu item
// (e.g. "Toppings", "Size"). Required groups must have at least one
// selection before the item can be added to a cart; MaxSelections
// caps how many options may be picked (0 = unlimited).
type Modifier struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Required      bool             `json:"required"`
	MaxSelections int              `json:"maxSelections,omitempty"`
	Options       []ModifierOption `json:"options"`
}

// ComboDeal describes the bundle contents and savings of a combo item
type ComboDeal struct {
	Items   []string `json:"items"`
	Savings float64  `json:"savings"`
}

// MenuItem is read-only catalog reference data. Carts and orders hold
// frozen copies; nothing in this service ever mutates one.
type MenuItem struct {
	ID          string      `json:"id"`
	Category    Category    `json:"category"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Image       string      `json:"image,omitempty"`
	StockStatus StockStatus `json:"stockStatus"`
	Allergens   []string    `json:"allergens,omitempty"`
	Modifiers   []Modifier  `json:"modifiers,omitempty"`
	ComboDeal   *ComboDeal  `json:"comboDeal,omitempty"`
}

// SeatLocation identifies where a delivery order should be brought
type SeatLocation struct {
	Section string `json:"section"`
	Row     string `json:"row"`
	Seat    string `json:"seat"`
}

// Event is the sporting event this stand is serving
type Event struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Venue           string `json:"venue"`
	DeliveryEnabled bool   `json:"deliveryEnabled"`
	PickupLocation  string `json:"pickupLocation"`
	Status          string `json:"status"`
}

// PickupPoint is a physical concessions stand customers collect from
type PickupPoint struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
}
