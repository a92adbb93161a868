package cart

import (
	"testing"

	"concession-stand-api/models"

	"github.com/stretchr/testify/assert"
)

func hotDog() models.MenuItem {
	return models.MenuItem{
		ID:          "item_001",
		Category:    models.CategoryFood,
		Name:        "Stadium Hot Dog",
		Price:       5.50,
		StockStatus: models.StockInStock,
		Modifiers: []models.Modifier{
			{
				ID:   "mod_001",
				Name: "Toppings",
				Options: []models.ModifierOption{
					{ID: "top_001", Name: "Ketchup", Price: 0},
					{ID: "top_005", Name: "Chili", Price: 1.50},
					{ID: "top_006", Name: "Cheese", Price: 1.00},
				},
			},
		},
	}
}

func TestUnitPriceNoSelections(t *testing.T) {
	assert.InDelta(t, 5.50, UnitPrice(hotDog(), nil), 1e-9)
	assert.InDelta(t, 5.50, UnitPrice(hotDog(), map[string][]string{}), 1e-9)
}

func TestUnitPriceAddsSelectedOptionDeltas(t *testing.T) {
	price := UnitPrice(hotDog(), map[string][]string{
		"mod_001": {"top_001", "top_005", "top_006"},
	})
	assert.InDelta(t, 8.00, price, 1e-9)
}

func TestUnitPriceUnknownOptionContributesNothing(t *testing.T) {
	price := UnitPrice(hotDog(), map[string][]string{
		"mod_001": {"top_999"},
		"mod_999": {"top_005"},
	})
	assert.InDelta(t, 5.50, price, 1e-9)
}

func TestSubtotalScalesWithQuantity(t *testing.T) {
	// $5.50 base + $1.50 chili, quantity 2 -> $14.00
	subtotal := Subtotal(hotDog(), 2, map[string][]string{"mod_001": {"top_005"}})
	assert.InDelta(t, 14.00, subtotal, 1e-9)
}
