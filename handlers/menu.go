package handlers

import (
	"net/http"

	"concession-stand-api/cart"
	"concession-stand-api/catalog"
	"concession-stand-api/models"

	"github.com/gin-gonic/gin"
)

// MenuHandler serves the browse and item-detail screens
type MenuHandler struct {
	catalog *catalog.Catalog
}

// NewMenuHandler builds a menu handler over the catalog
func NewMenuHandler(cat *catalog.Catalog) *MenuHandler {
	return &MenuHandler{catalog: cat}
}

// ListMenu returns menu items, optionally filtered by category, stock
// or a search term
func (h *MenuHandler) ListMenu(c *gin.Context) {
	filter := catalog.ListFilter{
		Category:    models.Category(c.Query("category")),
		InStockOnly: c.Query("in_stock") == "true",
		Search:      c.Query("search"),
	}
	items := h.catalog.ListItems(filter)
	c.JSON(http.StatusOK, gin.H{
		"count": len(items),
		"menu":  items,
	})
}

// GetMenuItem returns a single item with its modifier groups
func (h *MenuHandler) GetMenuItem(c *gin.Context) {
	item, err := h.catalog.GetItem(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

type PreviewPriceRequest struct {
	Quantity  int                 `json:"quantity" binding:"required,min=1"`
	Modifiers map[string][]string `json:"modifiers"`
}

// PreviewPrice computes the live total shown while customizing an
// item, using the same pricing rule that commits line items, so the
// preview and the cart can never disagree.
func (h *MenuHandler) PreviewPrice(c *gin.Context) {
	item, err := h.catalog.GetItem(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var req PreviewPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item_id":    item.ID,
		"quantity":   req.Quantity,
		"unit_price": cart.UnitPrice(*item, req.Modifiers),
		"subtotal":   cart.Subtotal(*item, req.Quantity, req.Modifiers),
	})
}
