package orderController

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/cadefab1n/appsevenmenu/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	wsMu      sync.Mutex
	wsClients = make(map[*websocket.Conn]uint) // conn -> restaurant id
)

// GET /api/orders/ws
// Pushes the restaurant's new orders to its connected dashboards. Sits
// behind ValidateToken; the feed only carries the caller's restaurant.
func OrderFeed(c *gin.Context) {
	restaurantID := c.GetUint("restaurant_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wsMu.Lock()
	wsClients[conn] = restaurantID
	wsMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			wsMu.Lock()
			delete(wsClients, conn)
			wsMu.Unlock()
			break
		}
	}
}

// BroadcastNewOrder fans a freshly placed order out to the dashboards of
// its restaurant. Dead connections are dropped on their next read.
func BroadcastNewOrder(order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}

	wsMu.Lock()
	defer wsMu.Unlock()
	for client, restaurantID := range wsClients {
		if restaurantID != order.RestaurantID {
			continue
		}
		client.WriteMessage(websocket.TextMessage, data)
	}
}
