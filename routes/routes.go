package routes

import (
	"concession-stand-api/handlers"

	"github.com/gin-gonic/gin"
)

// Handlers groups everything the router mounts
type Handlers struct {
	Event *handlers.EventHandler
	Menu  *handlers.MenuHandler
	Cart  *handlers.CartHandler
	Order *handlers.OrderHandler
}

// SetupRoutes registers the full API surface
func SetupRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	{
		// Event landing
		api.GET("/event", h.Event.GetEvent)
		api.GET("/event/seating", h.Event.GetSeating)
		api.GET("/event/pickup-points", h.Event.GetPickupPoints)

		// Menu browse & customize
		api.GET("/menu", h.Menu.ListMenu)
		api.GET("/menu/:id", h.Menu.GetMenuItem)
		api.POST("/menu/:id/price", h.Menu.PreviewPrice)

		// Cart
		api.GET("/cart", h.Cart.GetCart)
		api.POST("/cart/items", h.Cart.AddItem)
		api.PUT("/cart/items/:id", h.Cart.UpdateQuantity)
		api.DELETE("/cart/items/:id", h.Cart.RemoveItem)
		api.DELETE("/cart", h.Cart.ClearCart)
		api.PUT("/cart/seat", h.Cart.SetSeat)
		api.DELETE("/cart/seat", h.Cart.ClearSeat)
		api.PUT("/cart/delivery-method", h.Cart.SetDeliveryMethod)

		// Checkout & orders
		api.POST("/checkout", h.Order.Checkout)
		api.GET("/orders", h.Order.ListOrders)
		api.GET("/orders/current", h.Order.GetCurrentOrder)
		api.GET("/orders/stream", h.Order.StreamOrders)
		api.GET("/orders/:id", h.Order.GetOrder)
		api.POST("/orders/:id/acknowledge", h.Order.Acknowledge)

		// State machine info (great for docs/Postman)
		api.GET("/state-machine", h.Order.GetLifecycleInfo)
	}
}
