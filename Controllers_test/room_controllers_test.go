package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/XezMetITSolutions/roomapp-unified-sub001/models"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/router"
)

func TestCreateRoomBatchIsRerunnable(t *testing.T) {
	db := newTestDB(t, "roombatchtest")
	r := router.SetupRouter(db)

	tenant := seedTenant(t, db, "batchtest")
	seedUser(t, db, tenant, "manager@batch.test", "secret-pass-123", "manager", []string{"rooms"})
	token := loginAs(t, r, "batchtest", "manager@batch.test", "secret-pass-123")

	w, resp := doJSON(t, r, "POST", "/api/rooms/batch", "batchtest", token, map[string]int{
		"floors":          2,
		"rooms_per_floor": 3,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, resp["data"].([]interface{}), 6)

	var count int64
	db.Model(&models.Room{}).Where("tenant_id = ?", tenant.ID).Count(&count)
	assert.Equal(t, int64(6), count)

	// Room numbers follow <floor><nn>
	var room models.Room
	db.Where("tenant_id = ? AND room_number = ?", tenant.ID, "203").First(&room)
	assert.Equal(t, 2, room.Floor)
	assert.NotEmpty(t, room.QRToken)

	// Re-running the same batch creates nothing new
	w, resp = doJSON(t, r, "POST", "/api/rooms/batch", "batchtest", token, map[string]int{
		"floors":          2,
		"rooms_per_floor": 3,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	db.Model(&models.Room{}).Where("tenant_id = ?", tenant.ID).Count(&count)
	assert.Equal(t, int64(6), count)
}

func TestScanRoomReturnsLandingPayload(t *testing.T) {
	db := newTestDB(t, "roomscantest")
	r := router.SetupRouter(db)

	tenant := seedTenant(t, db, "scantest")
	room := seedRoom(t, db, tenant, "501")

	db.Create(&models.Hotel{TenantID: tenant.ID, Name: "Scan Test Hotel"})
	db.Create(&models.Announcement{TenantID: tenant.ID, Title: "Pool closed", Body: "Maintenance until Friday", IsActive: true})
	db.Create(&models.Announcement{TenantID: tenant.ID, Title: "Old news", Body: "Expired", IsActive: false})
	db.Create(&models.TenantFeature{TenantID: tenant.ID, Key: "room_service", Enabled: true})
	db.Create(&models.TenantFeature{TenantID: tenant.ID, Key: "spa_booking", Enabled: false})

	w, resp := doJSON(t, r, "GET", "/api/rooms/scan/"+room.QRToken, "scantest", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "501", data["room"].(map[string]interface{})["room_number"])
	assert.Equal(t, "Scan Test Hotel", data["hotel"].(map[string]interface{})["name"])
	assert.Len(t, data["announcements"].([]interface{}), 1)

	features := data["features"].([]interface{})
	assert.Equal(t, []interface{}{"room_service"}, features)

	// Vacant room, no session to hand out
	assert.Equal(t, "", data["session_key"])

	// A token of another tenant never resolves
	other := seedTenant(t, db, "othertenant")
	otherRoom := seedRoom(t, db, other, "501")
	w, _ = doJSON(t, r, "GET", "/api/rooms/scan/"+otherRoom.QRToken, "scantest", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoomQRIsPNG(t *testing.T) {
	db := newTestDB(t, "roomqrtest")
	r := router.SetupRouter(db)

	tenant := seedTenant(t, db, "qrtest")
	room := seedRoom(t, db, tenant, "502")
	seedUser(t, db, tenant, "manager@qr.test", "secret-pass-123", "manager", []string{"rooms"})
	token := loginAs(t, r, "qrtest", "manager@qr.test", "secret-pass-123")

	w, _ := doJSON(t, r, "GET", "/api/rooms/"+itoa(room.ID)+"/qr", "qrtest", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())
}
