package main

import (
	"net/http"

	"concession-stand-api/cart"
	"concession-stand-api/catalog"
	"concession-stand-api/config"
	"concession-stand-api/handlers"
	"concession-stand-api/lifecycle"
	"concession-stand-api/middleware"
	"concession-stand-api/routes"
	"concession-stand-api/storage"
	"concession-stand-api/stream"

	"github.com/gin-gonic/gin"
)

func main() {
	log := config.NewLogger()
	cfg := config.Load(log)

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// Local key-value store standing in for the device's storage
	db, err := config.OpenDB(cfg.DBPath)
	if err != nil {
		log.WithError(err).Fatal("Failed to open database")
	}
	store, err := storage.NewKVStore(db)
	if err != nil {
		log.WithError(err).Fatal("Failed to migrate key-value store")
	}

	cat := catalog.Default()
	hub := stream.NewHub(log)

	// Resume the previous session from the store
	ledger := cart.NewLedger(store)
	if items, err := store.LoadCart(); err == nil {
		seat, _ := store.LoadSeat()
		method, _ := store.LoadDeliveryMethod()
		ledger.Restore(items, seat, method)
	} else {
		log.WithError(err).Warn("Could not restore cart, starting empty")
	}

	manager := lifecycle.NewManager(store, hub, lifecycle.DemoDelays(), log)
	if orders, err := store.LoadOrders(); err == nil {
		current, _ := store.LoadCurrentOrder()
		manager.Restore(orders, current)
	} else {
		log.WithError(err).Warn("Could not restore order history, starting empty")
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Concession Stand Ordering API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🌭 Welcome to the Concession Stand Ordering API",
			"event":   cat.Event().Name,
			"docs":    "/api/state-machine",
			"health":  "/health",
		})
	})

	routes.SetupRoutes(r, routes.Handlers{
		Event: handlers.NewEventHandler(cat),
		Menu:  handlers.NewMenuHandler(cat),
		Cart:  handlers.NewCartHandler(ledger, cat),
		Order: handlers.NewOrderHandler(ledger, manager, hub, log),
	})

	log.Infof("🚀 Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
