package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"concession-stand-api/cart"
	"concession-stand-api/catalog"
	"concession-stand-api/lifecycle"
	"concession-stand-api/stream"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// testApp bundles a router with the components behind it so tests can
// reach past the HTTP surface when setting up state.
type testApp struct {
	router  *gin.Engine
	ledger  *cart.Ledger
	manager *lifecycle.Manager
	catalog *catalog.Catalog
}

// newTestApp wires the full handler stack over in-memory state. Timer
// delays are an hour so nothing advances unless a test asks for it.
// Pass nil to use the default demo catalog.
func newTestApp(t *testing.T, cat *catalog.Catalog) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if cat == nil {
		cat = catalog.Default()
	}
	ledger := cart.NewLedger(nil)
	manager := lifecycle.NewManager(nil, nil, lifecycle.Delays{
		Confirmed:      time.Hour,
		Preparing:      time.Hour,
		Ready:          time.Hour,
		OutForDelivery: time.Hour,
	}, nil)
	hub := stream.NewHub(nil)

	router := gin.New()
	api := router.Group("/api")

	event := NewEventHandler(cat)
	api.GET("/event", event.GetEvent)

	menu := NewMenuHandler(cat)
	api.GET("/menu", menu.ListMenu)
	api.GET("/menu/:id", menu.GetMenuItem)
	api.POST("/menu/:id/price", menu.PreviewPrice)

	cartH := NewCartHandler(ledger, cat)
	api.GET("/cart", cartH.GetCart)
	api.POST("/cart/items", cartH.AddItem)
	api.PUT("/cart/items/:id", cartH.UpdateQuantity)
	api.DELETE("/cart/items/:id", cartH.RemoveItem)
	api.DELETE("/cart", cartH.ClearCart)
	api.PUT("/cart/seat", cartH.SetSeat)
	api.PUT("/cart/delivery-method", cartH.SetDeliveryMethod)

	order := NewOrderHandler(ledger, manager, hub, nil)
	api.POST("/checkout", order.Checkout)
	api.GET("/orders", order.ListOrders)
	api.GET("/orders/current", order.GetCurrentOrder)
	api.GET("/orders/:id", order.GetOrder)
	api.POST("/orders/:id/acknowledge", order.Acknowledge)
	api.GET("/state-machine", order.GetLifecycleInfo)

	return &testApp{router: router, ledger: ledger, manager: manager, catalog: cat}
}

func (a *testApp) do(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}
