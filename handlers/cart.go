package handlers

import (
	"net/http"
	"strconv"

	"concession-stand-api/cart"
	"concession-stand-api/catalog"
	"concession-stand-api/models"

	"github.com/gin-gonic/gin"
)

// CartHandler plays the UI collaborator role for the cart ledger: it
// validates input (required modifiers, stock, seat ranges) before any
// call reaches the core, which itself accepts whatever it is given.
type CartHandler struct {
	ledger  *cart.Ledger
	catalog *catalog.Catalog
}

// NewCartHandler builds a cart handler over the ledger and catalog
func NewCartHandler(ledger *cart.Ledger, cat *catalog.Catalog) *CartHandler {
	return &CartHandler{ledger: ledger, catalog: cat}
}

func (h *CartHandler) cartBody() gin.H {
	return gin.H{
		"items":           h.ledger.Items(),
		"cart_total":      h.ledger.CartTotal(),
		"item_count":      h.ledger.ItemCount(),
		"seat":            h.ledger.Seat(),
		"delivery_method": h.ledger.DeliveryMethod(),
	}
}

// GetCart returns the cart with its derived totals
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartBody())
}

type AddItemRequest struct {
	MenuItemID          string              `json:"menu_item_id" binding:"required"`
	Quantity            int                 `json:"quantity" binding:"required,min=1"`
	Modifiers           map[string][]string `json:"modifiers"`
	SpecialInstructions string              `json:"special_instructions"`
}

// AddItem validates the request against the catalog and appends a new
// line item. Identical requests always produce distinct lines.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.catalog.GetItem(req.MenuItemID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if item.StockStatus == models.StockOutOfStock {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'" + item.Name + "' is sold out"})
		return
	}
	if err := catalog.ValidateSelections(item, req.Modifiers); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	line := h.ledger.AddItem(*item, req.Quantity, req.Modifiers, req.SpecialInstructions)
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Added to cart",
		"line_item":  line,
		"cart_total": h.ledger.CartTotal(),
		"item_count": h.ledger.ItemCount(),
	})
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateQuantity changes a line's quantity; zero or less removes the
// line. Unknown line ids are a quiet no-op so retries stay safe.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.ledger.UpdateQuantity(c.Param("id"), req.Quantity)
	c.JSON(http.StatusOK, h.cartBody())
}

// RemoveItem deletes a line item; absent ids are a no-op
func (h *CartHandler) RemoveItem(c *gin.Context) {
	h.ledger.RemoveItem(c.Param("id"))
	c.JSON(http.StatusOK, h.cartBody())
}

// ClearCart empties the cart and the selected seat
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.ledger.Clear()
	c.JSON(http.StatusOK, h.cartBody())
}

type SetSeatRequest struct {
	Section string `json:"section" binding:"required"`
	Row     string `json:"row" binding:"required"`
	Seat    string `json:"seat" binding:"required"`
}

// SetSeat validates and records the shopper's seat. Choosing a seat
// implies seat delivery, so the delivery method flips with it.
func (h *CartHandler) SetSeat(c *gin.Context) {
	var req SetSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all seat information"})
		return
	}

	seatNumber, err := strconv.Atoi(req.Seat)
	if err != nil || seatNumber < 1 || seatNumber > 50 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid seat number. Please enter a number between 1 and 50",
		})
		return
	}
	if !h.catalog.Event().DeliveryEnabled {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Seat delivery is not available for this event"})
		return
	}

	h.ledger.SetSeat(&models.SeatLocation{
		Section: req.Section,
		Row:     req.Row,
		Seat:    req.Seat,
	})
	h.ledger.SetDeliveryMethod(models.DeliveryToSeat)
	c.JSON(http.StatusOK, h.cartBody())
}

// ClearSeat removes the selected seat
func (h *CartHandler) ClearSeat(c *gin.Context) {
	h.ledger.SetSeat(nil)
	c.JSON(http.StatusOK, h.cartBody())
}

type SetDeliveryMethodRequest struct {
	DeliveryMethod models.DeliveryMethod `json:"delivery_method" binding:"required,oneof=pickup delivery"`
}

// SetDeliveryMethod switches between pickup and seat delivery
func (h *CartHandler) SetDeliveryMethod(c *gin.Context) {
	var req SetDeliveryMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.DeliveryMethod == models.DeliveryToSeat && !h.catalog.Event().DeliveryEnabled {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Seat delivery is not available for this event"})
		return
	}
	h.ledger.SetDeliveryMethod(req.DeliveryMethod)
	c.JSON(http.StatusOK, h.cartBody())
}
