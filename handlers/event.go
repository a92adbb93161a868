package handlers

import (
	"net/http"

	"concession-stand-api/catalog"

	"github.com/gin-gonic/gin"
)

// EventHandler serves the landing-screen reference data
type EventHandler struct {
	catalog *catalog.Catalog
}

// NewEventHandler builds an event handler over the catalog
func NewEventHandler(cat *catalog.Catalog) *EventHandler {
	return &EventHandler{catalog: cat}
}

// GetEvent returns the event this stand is serving
func (h *EventHandler) GetEvent(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"event": h.catalog.Event()})
}

// GetSeating returns the sections and rows offered on the seat form
func (h *EventHandler) GetSeating(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sections": h.catalog.SeatSections(),
		"rows":     h.catalog.SeatRows(),
	})
}

// GetPickupPoints returns the stands customers can collect from
func (h *EventHandler) GetPickupPoints(c *gin.Context) {
	points := h.catalog.PickupPoints()
	c.JSON(http.StatusOK, gin.H{
		"count":         len(points),
		"pickup_points": points,
	})
}
