package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/XezMetITSolutions/roomapp-unified-sub001/models"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/router"
)

func TestCheckInAndCheckout(t *testing.T) {
	db := newTestDB(t, "guesttest")
	r := router.SetupRouter(db)

	tenant := seedTenant(t, db, "checkintest")
	room := seedRoom(t, db, tenant, "401")
	seedUser(t, db, tenant, "reception@checkin.test", "secret-pass-123", "reception", []string{"guests"})
	token := loginAs(t, r, "checkintest", "reception@checkin.test", "secret-pass-123")

	// Check in marks the room occupied
	w, resp := doJSON(t, r, "POST", "/api/guests", "checkintest", token, map[string]interface{}{
		"room_id":   room.ID,
		"full_name": "Ada Lovelace",
		"phone":     "+49 170 0000000",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	data := resp["data"].(map[string]interface{})
	guestData := data["guest"].(map[string]interface{})
	guestID := uint(guestData["id"].(float64))
	assert.Equal(t, true, guestData["is_active"])
	assert.NotEmpty(t, data["session_key"])

	var occupied models.Room
	db.First(&occupied, room.ID)
	assert.True(t, occupied.IsOccupied)

	// A second check-in on the same room is refused
	w, _ = doJSON(t, r, "POST", "/api/guests", "checkintest", token, map[string]interface{}{
		"room_id":   room.ID,
		"full_name": "Grace Hopper",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Checkout closes the stay and frees the room
	w, resp = doJSON(t, r, "POST", "/api/guests/checkout", "checkintest", token, map[string]interface{}{
		"guest_id": guestID,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	checkedOut := resp["data"].(map[string]interface{})
	assert.Equal(t, false, checkedOut["is_active"])
	assert.NotNil(t, checkedOut["check_out"])

	db.First(&occupied, room.ID)
	assert.False(t, occupied.IsOccupied)

	// A double checkout is refused
	w, _ = doJSON(t, r, "POST", "/api/guests/checkout", "checkintest", token, map[string]interface{}{
		"guest_id": guestID,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGuestSessionKeyFlow(t *testing.T) {
	db := newTestDB(t, "guestsessiontest")
	r := router.SetupRouter(db)

	tenant := seedTenant(t, db, "sessionflow")
	room := seedRoom(t, db, tenant, "404")
	seedUser(t, db, tenant, "reception@session.test", "secret-pass-123", "reception", []string{"guests"})
	token := loginAs(t, r, "sessionflow", "reception@session.test", "secret-pass-123")

	item := models.MenuItem{TenantID: tenant.ID, Name: "Tea", Price: 3, IsActive: true, IsAvailable: true}
	db.Create(&item)

	// Before check-in the scan hands out no session key
	w, resp := doJSON(t, r, "GET", "/api/rooms/scan/"+room.QRToken, "sessionflow", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", resp["data"].(map[string]interface{})["session_key"])

	w, resp = doJSON(t, r, "POST", "/api/guests", "sessionflow", token, map[string]interface{}{
		"room_id":   room.ID,
		"full_name": "Session Guest",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	sessionKey := resp["data"].(map[string]interface{})["session_key"].(string)
	assert.NotEmpty(t, sessionKey)

	// Re-scanning the QR code returns the active stay's key
	w, resp = doJSON(t, r, "GET", "/api/rooms/scan/"+room.QRToken, "sessionflow", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, sessionKey, resp["data"].(map[string]interface{})["session_key"])

	// A forged key is rejected on guest-facing writes
	w, _ = doJSON(t, r, "POST", "/api/orders", "sessionflow", "", map[string]interface{}{
		"room_id":     room.ID,
		"session_key": "not-the-real-key",
		"items":       []map[string]interface{}{{"menu_item_id": item.ID, "quantity": 1}},
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = doJSON(t, r, "POST", "/api/requests", "sessionflow", "", map[string]interface{}{
		"room_id":     room.ID,
		"session_key": "not-the-real-key",
		"type":        "housekeeping",
		"message":     "Towels",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The real key goes through and the order is linked to the stay
	w, resp = doJSON(t, r, "POST", "/api/orders", "sessionflow", "", map[string]interface{}{
		"room_id":     room.ID,
		"session_key": sessionKey,
		"items":       []map[string]interface{}{{"menu_item_id": item.ID, "quantity": 1}},
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotNil(t, resp["data"].(map[string]interface{})["guest_id"])
}

func TestActiveGuestsFilter(t *testing.T) {
	db := newTestDB(t, "guestfiltertest")
	r := router.SetupRouter(db)

	tenant := seedTenant(t, db, "guestfilter")
	roomA := seedRoom(t, db, tenant, "402")
	roomB := seedRoom(t, db, tenant, "403")
	seedUser(t, db, tenant, "reception@filter.test", "secret-pass-123", "reception", []string{"guests"})
	token := loginAs(t, r, "guestfilter", "reception@filter.test", "secret-pass-123")

	db.Create(&models.Guest{TenantID: tenant.ID, RoomID: roomA.ID, FullName: "Current Guest", IsActive: true})
	db.Create(&models.Guest{TenantID: tenant.ID, RoomID: roomB.ID, FullName: "Past Guest", IsActive: false})

	w, resp := doJSON(t, r, "GET", "/api/guests?active=true", "guestfilter", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	guests := resp["data"].([]interface{})
	assert.Len(t, guests, 1)
	assert.Equal(t, "Current Guest", guests[0].(map[string]interface{})["full_name"])
}
