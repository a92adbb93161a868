package handlers

import (
	"net/http"

	"concession-stand-api/cart"
	"concession-stand-api/lifecycle"
	"concession-stand-api/models"
	"concession-stand-api/stream"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// DefaultTipPercentage preselected on the checkout screen
const DefaultTipPercentage = 15.0

// OrderHandler covers checkout, the confirmation screen and order history
type OrderHandler struct {
	ledger  *cart.Ledger
	manager *lifecycle.Manager
	hub     *stream.Hub
	log     *logrus.Logger
}

// NewOrderHandler builds an order handler over its collaborators
func NewOrderHandler(ledger *cart.Ledger, manager *lifecycle.Manager, hub *stream.Hub, log *logrus.Logger) *OrderHandler {
	return &OrderHandler{ledger: ledger, manager: manager, hub: hub, log: log}
}

type CheckoutRequest struct {
	PaymentMethod models.PaymentMethod `json:"payment_method" binding:"required,oneof=cash card"`
	TipPercentage *float64             `json:"tip_percentage" binding:"omitempty,gte=0"`
	CustomTip     *float64             `json:"custom_tip" binding:"omitempty,gte=0"`
}

// tipAmount reconciles the tip controls: a custom amount, when
// entered, always wins over the percentage preset.
func (r CheckoutRequest) tipAmount(cartTotal float64) float64 {
	if r.CustomTip != nil {
		return *r.CustomTip
	}
	pct := DefaultTipPercentage
	if r.TipPercentage != nil {
		pct = *r.TipPercentage
	}
	return cartTotal * pct / 100
}

// Checkout freezes the cart into a new order and clears the cart. An
// empty cart is rejected here; the lifecycle core assumes a non-empty
// snapshot.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := h.ledger.Items()
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty. Add items to your cart before checking out"})
		return
	}

	tip := req.tipAmount(h.ledger.CartTotal())
	order := h.manager.CreateOrder(items, h.ledger.Seat(), h.ledger.DeliveryMethod(), req.PaymentMethod, tip)
	h.ledger.Clear()

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// GetCurrentOrder returns the order shown on the confirmation screen
func (h *OrderHandler) GetCurrentOrder(c *gin.Context) {
	order, ok := h.manager.CurrentOrder()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No current order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// ListOrders returns the session order history, most recent first
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders := h.manager.Orders()
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrder returns one order from the history
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, ok := h.manager.GetOrder(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// Acknowledge is the "I'm here" button: it completes a ready pickup
// order. Anything else leaves the order untouched.
func (h *OrderHandler) Acknowledge(c *gin.Context) {
	order, ok := h.manager.Acknowledge(c.Param("id"))
	if order.ID == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "Order is not ready for pickup",
			"current_status": order.Status,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Enjoy the game!",
		"order":   order,
	})
}

// GetLifecycleInfo documents the status flow per delivery method
func (h *OrderHandler) GetLifecycleInfo(c *gin.Context) {
	var table []gin.H
	for _, t := range lifecycle.AllTransitions() {
		method := "any"
		if t.Method != "" {
			method = string(t.Method)
		}
		table = append(table, gin.H{
			"from":            t.From,
			"to":              t.To,
			"delivery_method": method,
			"trigger":         "timer",
		})
	}
	table = append(table, gin.H{
		"from":            models.StatusReady,
		"to":              models.StatusCompleted,
		"delivery_method": string(models.DeliveryPickup),
		"trigger":         "customer acknowledgment",
	})

	c.JSON(http.StatusOK, gin.H{
		"transitions":       table,
		"pickup_sequence":   lifecycle.StatusSequence(models.DeliveryPickup),
		"delivery_sequence": lifecycle.StatusSequence(models.DeliveryToSeat),
		"description":       "Concession Order Lifecycle State Machine",
	})
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// StreamOrders upgrades to a websocket and pushes every order update
// until the client disconnects.
func (h *OrderHandler) StreamOrders(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.WithError(err).Error("websocket upgrade failed")
		}
		return
	}
	h.hub.Register(conn)

	// Drain client frames until the connection drops.
	go func() {
		defer h.hub.Unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
