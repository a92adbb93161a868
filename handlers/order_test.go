package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concession-stand-api/models"
)

func fillCart(t *testing.T, app *testApp) {
	t.Helper()
	w, _ := app.do(t, http.MethodPost, "/api/cart/items", AddItemRequest{
		MenuItemID: "item_001",
		Quantity:   2,
		Modifiers:  map[string][]string{"mod_001": {"top_005"}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	app := newTestApp(t, nil)

	w, body := app.do(t, http.MethodPost, "/api/checkout", CheckoutRequest{
		PaymentMethod: models.PaymentCard,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["error"], "Cart is empty")
}

func TestCheckoutCreatesOrderAndClearsCart(t *testing.T) {
	app := newTestApp(t, nil)
	fillCart(t, app)

	tip := 2.00
	w, body := app.do(t, http.MethodPost, "/api/checkout", CheckoutRequest{
		PaymentMethod: models.PaymentCard,
		CustomTip:     &tip,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	order := body["order"].(map[string]interface{})
	assert.InDelta(t, 14.00, order["subtotal"].(float64), 1e-9)
	assert.InDelta(t, 1.12, order["tax"].(float64), 1e-9)
	assert.InDelta(t, 2.00, order["tip"].(float64), 1e-9)
	assert.InDelta(t, 17.12, order["total"].(float64), 1e-9)
	assert.Equal(t, string(models.StatusConfirmed), order["status"])

	// The cart is cleared after checkout.
	w, cart := app.do(t, http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, cart["item_count"].(float64))

	// The new order is the current order.
	w, current := app.do(t, http.MethodGet, "/api/orders/current", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, order["id"], current["order"].(map[string]interface{})["id"])
}

func TestCheckoutTipReconciliation(t *testing.T) {
	app := newTestApp(t, nil)
	fillCart(t, app) // cart total 14.00

	// Custom tip wins over the percentage.
	pct, custom := 20.0, 5.00
	w, body := app.do(t, http.MethodPost, "/api/checkout", CheckoutRequest{
		PaymentMethod: models.PaymentCash,
		TipPercentage: &pct,
		CustomTip:     &custom,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	order := body["order"].(map[string]interface{})
	assert.InDelta(t, 5.00, order["tip"].(float64), 1e-9)

	// Percentage applies when no custom tip is set.
	fillCart(t, app)
	w, body = app.do(t, http.MethodPost, "/api/checkout", CheckoutRequest{
		PaymentMethod: models.PaymentCash,
		TipPercentage: &pct,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	order = body["order"].(map[string]interface{})
	assert.InDelta(t, 2.80, order["tip"].(float64), 1e-9)

	// Default percentage when neither control is touched.
	fillCart(t, app)
	w, body = app.do(t, http.MethodPost, "/api/checkout", CheckoutRequest{
		PaymentMethod: models.PaymentCash,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	order = body["order"].(map[string]interface{})
	assert.InDelta(t, 2.10, order["tip"].(float64), 1e-9) // 15% of 14.00
}

func TestOrderHistoryMostRecentFirst(t *testing.T) {
	app := newTestApp(t, nil)

	fillCart(t, app)
	w, first := app.do(t, http.MethodPost, "/api/checkout", CheckoutRequest{PaymentMethod: models.PaymentCard})
	require.Equal(t, http.StatusCreated, w.Code)

	fillCart(t, app)
	w, second := app.do(t, http.MethodPost, "/api/checkout", CheckoutRequest{PaymentMethod: models.PaymentCard})
	require.Equal(t, http.StatusCreated, w.Code)

	w, body := app.do(t, http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, body["count"].(float64))

	orders := body["orders"].([]interface{})
	assert.Equal(t, second["order"].(map[string]interface{})["id"], orders[0].(map[string]interface{})["id"])
	assert.Equal(t, first["order"].(map[string]interface{})["id"], orders[1].(map[string]interface{})["id"])
}

func TestAcknowledgePickupOrder(t *testing.T) {
	app := newTestApp(t, nil)
	fillCart(t, app)

	w, body := app.do(t, http.MethodPost, "/api/checkout", CheckoutRequest{PaymentMethod: models.PaymentCash})
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := body["order"].(map[string]interface{})["id"].(string)

	// Too early: the order is still confirmed.
	w, _ = app.do(t, http.MethodPost, "/api/orders/"+orderID+"/acknowledge", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Walk the order to ready, then the button works.
	app.manager.AdvanceStatus(orderID)
	app.manager.AdvanceStatus(orderID)

	w, body = app.do(t, http.MethodPost, "/api/orders/"+orderID+"/acknowledge", nil)
	require.Equal(t, http.StatusOK, w.Code)
	order := body["order"].(map[string]interface{})
	assert.Equal(t, string(models.StatusCompleted), order["status"])

	// Unknown orders 404.
	w, _ = app.do(t, http.MethodPost, "/api/orders/order_missing/acknowledge", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCurrentOrderWithoutCheckout(t *testing.T) {
	app := newTestApp(t, nil)
	w, _ := app.do(t, http.MethodGet, "/api/orders/current", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLifecycleInfoEndpoint(t *testing.T) {
	app := newTestApp(t, nil)
	w, body := app.do(t, http.MethodGet, "/api/state-machine", nil)
	require.Equal(t, http.StatusOK, w.Code)

	pickup := body["pickup_sequence"].([]interface{})
	assert.Equal(t, []interface{}{"confirmed", "preparing", "ready"}, pickup)

	delivery := body["delivery_sequence"].([]interface{})
	assert.Len(t, delivery, 5)
	assert.Equal(t, "delivered", delivery[4])
}
