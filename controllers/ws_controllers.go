package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/XezMetITSolutions/roomapp-unified-sub001/middlewares"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/models"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/realtime"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StaffSocketHandler -> staff WebSocket, subscribed to every event of the
// tenant. Requires auth; the token travels in the query string.
func StaffSocketHandler(c *gin.Context) {
	tenant, ok := middlewares.GetTenant(c)
	if !ok {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	user, ok := middlewares.GetUser(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	realtime.RegisterStaff(ws, tenant.ID, user.Role)
	utils.InfoLogger.Printf("Staff socket connected (tenant=%d, role=%s)", tenant.ID, user.Role)

	// Server push only; drain until disconnect
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	realtime.UnregisterClient(ws)
}

// RoomSocketHandler -> guest WebSocket bound to a single room. The room
// must belong to the request tenant, so a guest can never subscribe to
// another hotel's events.
func RoomSocketHandler(c *gin.Context) {
	tenant, ok := middlewares.GetTenant(c)
	if !ok {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	idStr := c.Param("room_id")
	id, _ := strconv.Atoi(idStr)

	var room models.Room
	if err := utils.GetDB().Where("tenant_id = ?", tenant.ID).First(&room, id).Error; err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	realtime.RegisterRoom(ws, tenant.ID, room.ID)

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	realtime.UnregisterClient(ws)
}
