package stream

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"concession-stand-api/models"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func dialHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		hub.Register(conn)
	}))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestBroadcastReachesClient(t *testing.T) {
	hub := NewHub(nil)
	conn := dialHub(t, hub)

	hub.OrderUpdated(models.Order{
		ID:          "order_1",
		OrderNumber: "A1B2C3",
		Status:      models.StatusPreparing,
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))

	assert.Equal(t, EventOrderUpdate, msg.Event)
	data := msg.Data.(map[string]interface{})
	assert.Equal(t, "order_1", data["id"])
	assert.Equal(t, string(models.StatusPreparing), data["status"])
}

func TestBroadcastWithNoClients(t *testing.T) {
	hub := NewHub(nil)
	// Nothing registered; must not panic or block.
	hub.OrderUpdated(models.Order{ID: "order_1"})
}
