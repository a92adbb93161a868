package cart

import "concession-stand-api/models"

// UnitPrice is the single source of truth for line pricing, shared by
// AddItem, UpdateQuantity and the pre-add price preview. It walks the
// item's modifier groups and adds the delta of every selected option;
// a selected option id that doesn't exist within its group contributes
// nothing.
func UnitPrice(item models.MenuItem, selections map[string][]string) float64 {
	price := item.Price
	for _, mod := range item.Modifiers {
		for _, optionID := range selections[mod.ID] {
			for _, opt := range mod.Options {
				if opt.ID == optionID {
					price += opt.Price
					break
				}
			}
		}
	}
	return price
}

// Subtotal prices a whole line: unit price times quantity
func Subtotal(item models.MenuItem, quantity int, selections map[string][]string) float64 {
	return UnitPrice(item, selections) * float64(quantity)
}
