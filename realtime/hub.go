package realtime

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/XezMetITSolutions/roomapp-unified-sub001/utils"
)

// Event types
const (
	EventNewOrder        = "new-order"
	EventOrderUpdated    = "order-updated"
	EventNewRequest      = "new-request"
	EventRequestUpdated  = "request-updated"
	EventNewNotification = "new-notification"
	EventRoomUpdated     = "room-updated"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// subscription records what a connection is allowed to receive. Staff
// connections carry a role and receive every event of their tenant; guest
// connections only receive events addressed to their room.
type subscription struct {
	TenantID uint
	RoomID   uint // 0 for staff connections
	Role     string
}

// client pairs a subscription with a write lock so concurrent emits never
// interleave frames on the same connection.
type client struct {
	sub subscription
	mu  sync.Mutex
}

// Hub fans events out to websocket clients, always scoped by tenant and,
// for guests, by room. There is no global broadcast. The hub lock only
// guards the client map; writes take the per-connection lock so one slow
// client cannot stall delivery to the rest.
type Hub struct {
	clients map[*websocket.Conn]*client
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]*client),
}

// RegisterStaff adds a staff connection for a tenant.
func RegisterStaff(conn *websocket.Conn, tenantID uint, role string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = &client{sub: subscription{TenantID: tenantID, Role: role}}
}

// RegisterRoom adds a guest connection bound to one room of one tenant.
func RegisterRoom(conn *websocket.Conn, tenantID, roomID uint) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = &client{sub: subscription{TenantID: tenantID, RoomID: roomID}}
}

func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// EmitToStaff delivers an event to every staff connection of the tenant.
func EmitToStaff(tenantID uint, event string, data interface{}) {
	emit(Message{Event: event, Data: data}, func(sub subscription) bool {
		return sub.TenantID == tenantID && sub.RoomID == 0
	})
}

// EmitToRoles delivers an event to staff connections holding one of the
// given roles (admin always included).
func EmitToRoles(tenantID uint, event string, data interface{}, roles ...string) {
	emit(Message{Event: event, Data: data}, func(sub subscription) bool {
		if sub.TenantID != tenantID || sub.RoomID != 0 {
			return false
		}
		if sub.Role == "admin" {
			return true
		}
		for _, r := range roles {
			if sub.Role == r {
				return true
			}
		}
		return false
	})
}

// EmitToRoom delivers an event to guest connections of a single room.
func EmitToRoom(tenantID, roomID uint, event string, data interface{}) {
	emit(Message{Event: event, Data: data}, func(sub subscription) bool {
		return sub.TenantID == tenantID && sub.RoomID == roomID
	})
}

func emit(msg Message, match func(subscription) bool) {
	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling %s event: %v", msg.Event, err)
		return
	}

	type target struct {
		conn *websocket.Conn
		cl   *client
	}

	// Snapshot the matching connections, then write without the map lock
	hub.mutex.Lock()
	targets := make([]target, 0, len(hub.clients))
	for conn, cl := range hub.clients {
		if match(cl.sub) {
			targets = append(targets, target{conn: conn, cl: cl})
		}
	}
	hub.mutex.Unlock()

	for _, tgt := range targets {
		tgt.cl.mu.Lock()
		err := tgt.conn.WriteMessage(websocket.TextMessage, data)
		tgt.cl.mu.Unlock()
		if err != nil {
			// Dead connection, drop it
			UnregisterClient(tgt.conn)
		}
	}
}

// ClientCount is used by the dashboard endpoint.
func ClientCount(tenantID uint) int {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	n := 0
	for _, cl := range hub.clients {
		if cl.sub.TenantID == tenantID {
			n++
		}
	}
	return n
}
