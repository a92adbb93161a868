package catalog

import (
	"testing"

	"concession-stand-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogSeed(t *testing.T) {
	cat := Default()

	assert.Equal(t, "Homecoming Game", cat.Event().Name)
	assert.True(t, cat.Event().DeliveryEnabled)
	assert.Len(t, cat.ListItems(ListFilter{}), 11)
	assert.Len(t, cat.SeatSections(), 5)
	assert.Len(t, cat.PickupPoints(), 2)
}

func TestGetItem(t *testing.T) {
	cat := Default()

	item, err := cat.GetItem("item_001")
	require.NoError(t, err)
	assert.Equal(t, "Stadium Hot Dog", item.Name)
	assert.InDelta(t, 5.50, item.Price, 1e-9)

	_, err = cat.GetItem("item_999")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestListItemsFilters(t *testing.T) {
	cat := Default()

	drinks := cat.ListItems(ListFilter{Category: models.CategoryDrinks})
	require.NotEmpty(t, drinks)
	for _, item := range drinks {
		assert.Equal(t, models.CategoryDrinks, item.Category)
	}

	found := cat.ListItems(ListFilter{Search: "nachos"})
	require.Len(t, found, 1)
	assert.Equal(t, "item_002", found[0].ID)

	// Search also matches descriptions.
	found = cat.ListItems(ListFilter{Search: "gatorade"})
	require.Len(t, found, 1)
	assert.Equal(t, "Sports Drink", found[0].Name)
}

func TestListItemsInStockOnly(t *testing.T) {
	soldOut := models.MenuItem{ID: "x", Name: "Gone", StockStatus: models.StockOutOfStock}
	lowStock := models.MenuItem{ID: "y", Name: "Few", StockStatus: models.StockLowStock}
	cat := New(models.Event{}, []models.MenuItem{soldOut, lowStock}, nil, nil, nil)

	items := cat.ListItems(ListFilter{InStockOnly: true})
	require.Len(t, items, 1)
	assert.Equal(t, "y", items[0].ID)
}

func TestValidateSelectionsRequired(t *testing.T) {
	cat := Default()
	tenders, err := cat.GetItem("item_003")
	require.NoError(t, err)

	err = ValidateSelections(tenders, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Sauce")

	err = ValidateSelections(tenders, map[string][]string{"mod_003": {"sauce_001"}})
	assert.NoError(t, err)
}

func TestValidateSelectionsMaxSelections(t *testing.T) {
	cat := Default()
	tenders, err := cat.GetItem("item_003")
	require.NoError(t, err)

	// Sauce allows up to 2 selections.
	err = ValidateSelections(tenders, map[string][]string{
		"mod_003": {"sauce_001", "sauce_002"},
	})
	assert.NoError(t, err)

	err = ValidateSelections(tenders, map[string][]string{
		"mod_003": {"sauce_001", "sauce_002", "sauce_003"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at most 2")
}

func TestValidateSelectionsOptionalGroupsMayBeOmitted(t *testing.T) {
	cat := Default()
	hotDog, err := cat.GetItem("item_001")
	require.NoError(t, err)

	assert.NoError(t, ValidateSelections(hotDog, nil))
	assert.NoError(t, ValidateSelections(hotDog, map[string][]string{}))
}
