package catalog

import (
	"errors"
	"fmt"
	"strings"

	"concession-stand-api/models"
)

// ErrItemNotFound is returned when a menu item id is unknown
var ErrItemNotFound = errors.New("menu item not found")

// Catalog supplies read-only event and menu reference data. Nothing in
// the service mutates it after construction.
type Catalog struct {
	event        models.Event
	items        []models.MenuItem
	byID         map[string]*models.MenuItem
	seatSections []string
	seatRows     []string
	pickupPoints []models.PickupPoint
}

// ListFilter narrows ListItems results; zero value means everything
type ListFilter struct {
	Category    models.Category
	InStockOnly bool
	Search      string
}

// New builds a catalog over the given reference data
func New(event models.Event, items []models.MenuItem, sections, rows []string, pickups []models.PickupPoint) *Catalog {
	byID := make(map[string]*models.MenuItem, len(items))
	for i := range items {
		byID[items[i].ID] = &items[i]
	}
	return &Catalog{
		event:        event,
		items:        items,
		byID:         byID,
		seatSections: sections,
		seatRows:     rows,
		pickupPoints: pickups,
	}
}

// Default returns the catalog seeded with the demo event and menu
func Default() *Catalog {
	return New(demoEvent, demoMenu, demoSeatSections, demoSeatRows, demoPickupPoints)
}

// Event returns the event this stand is serving
func (c *Catalog) Event() models.Event {
	return c.event
}

// SeatSections lists the stadium sections offered on the seat form
func (c *Catalog) SeatSections() []string {
	return c.seatSections
}

// SeatRows lists the row labels offered on the seat form
func (c *Catalog) SeatRows() []string {
	return c.seatRows
}

// PickupPoints lists the concession stands customers collect from
func (c *Catalog) PickupPoints() []models.PickupPoint {
	return c.pickupPoints
}

// GetItem returns the menu item with the given id
func (c *Catalog) GetItem(id string) (*models.MenuItem, error) {
	item, ok := c.byID[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// ListItems returns menu items matching the filter, in menu order
func (c *Catalog) ListItems(f ListFilter) []models.MenuItem {
	var out []models.MenuItem
	search := strings.ToLower(f.Search)
	for _, item := range c.items {
		if f.Category != "" && item.Category != f.Category {
			continue
		}
		if f.InStockOnly && item.StockStatus == models.StockOutOfStock {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Name), search) &&
			!strings.Contains(strings.ToLower(item.Description), search) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// ValidateSelections checks a modifier selection against an item's
// modifier groups: every required group must have at least one option
// selected, and no group may exceed its MaxSelections cap. Option ids
// that don't exist within their group are ignored here (they price at
// zero), matching the pricing rule.
func ValidateSelections(item *models.MenuItem, selections map[string][]string) error {
	for _, mod := range item.Modifiers {
		selected := selections[mod.ID]
		if mod.Required && len(selected) == 0 {
			return fmt.Errorf("please select %s", mod.Name)
		}
		if mod.MaxSelections > 0 && len(selected) > mod.MaxSelections {
			return fmt.Errorf("%s allows at most %d selection(s)", mod.Name, mod.MaxSelections)
		}
	}
	return nil
}
