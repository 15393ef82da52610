package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/XezMetITSolutions/roomapp-unified-sub001/models"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/router"
)

func TestCreateOrderIgnoresClientPrices(t *testing.T) {
	db := newTestDB(t, "orderpricetest")
	r := router.SetupRouter(db)

	tenant := seedTenant(t, db, "pricetest")
	room := seedRoom(t, db, tenant, "101")

	sandwich := models.MenuItem{TenantID: tenant.ID, Name: "Sandwich", Price: 10, IsActive: true, IsAvailable: true}
	juice := models.MenuItem{TenantID: tenant.ID, Name: "Juice", Price: 5, IsActive: true, IsAvailable: true}
	db.Create(&sandwich)
	db.Create(&juice)

	// The client lies about prices; the server prices from its own rows.
	w, resp := doJSON(t, r, "POST", "/api/orders", "pricetest", "", map[string]interface{}{
		"room_id": room.ID,
		"items": []map[string]interface{}{
			{"menu_item_id": sandwich.ID, "quantity": 2, "price": 0.01},
			{"menu_item_id": juice.ID, "quantity": 1, "price": 0.01},
		},
		"total_amount": 0.03,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, 25.0, data["total_amount"])

	items := data["order_items"].([]interface{})
	assert.Len(t, items, 2)

	var stored models.Order
	assert.NoError(t, db.First(&stored, uint(data["id"].(float64))).Error)
	assert.Equal(t, 25.0, stored.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, stored.Status)
}

func TestCreateOrderRejectsUnavailableItems(t *testing.T) {
	db := newTestDB(t, "orderavailtest")
	r := router.SetupRouter(db)

	tenant := seedTenant(t, db, "availtest")
	room := seedRoom(t, db, tenant, "102")

	soldOut := models.MenuItem{TenantID: tenant.ID, Name: "Sold Out", Price: 8, IsActive: true, IsAvailable: false}
	db.Create(&soldOut)

	w, _ := doJSON(t, r, "POST", "/api/orders", "availtest", "", map[string]interface{}{
		"room_id": room.ID,
		"items": []map[string]interface{}{
			{"menu_item_id": soldOut.ID, "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The transaction rolled back; no half-written order remains
	var count int64
	db.Model(&models.Order{}).Where("tenant_id = ?", tenant.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestUpdateOrderStatusValidatesTransitions(t *testing.T) {
	db := newTestDB(t, "ordertransitiontest")
	r := router.SetupRouter(db)

	tenant := seedTenant(t, db, "transtest")
	room := seedRoom(t, db, tenant, "103")
	seedUser(t, db, tenant, "kitchen@transtest.test", "secret-pass-123", "kitchen", []string{"orders"})
	token := loginAs(t, r, "transtest", "kitchen@transtest.test", "secret-pass-123")

	order := models.Order{TenantID: tenant.ID, RoomID: room.ID, Status: models.OrderStatusPending, TotalAmount: 12}
	db.Create(&order)

	path := "/api/orders/" + itoa(order.ID)

	// pending -> delivered skips preparing
	w, _ := doJSON(t, r, "PATCH", path, "transtest", token, map[string]string{"status": "delivered"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = doJSON(t, r, "PATCH", path, "transtest", token, map[string]string{"status": "preparing"})
	assert.Equal(t, http.StatusOK, w.Code)

	w, resp := doJSON(t, r, "PATCH", path, "transtest", token, map[string]string{"status": "delivered"})
	assert.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]interface{})
	assert.NotNil(t, data["delivered_at"])

	// Delivered is terminal
	w, _ = doJSON(t, r, "PATCH", path, "transtest", token, map[string]string{"status": "pending"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestOrdersAreTenantScoped(t *testing.T) {
	db := newTestDB(t, "orderscopetest")
	r := router.SetupRouter(db)

	tenantA := seedTenant(t, db, "scope-a")
	tenantB := seedTenant(t, db, "scope-b")
	roomA := seedRoom(t, db, tenantA, "201")
	roomB := seedRoom(t, db, tenantB, "201")

	db.Create(&models.Order{TenantID: tenantA.ID, RoomID: roomA.ID, Status: models.OrderStatusPending})
	db.Create(&models.Order{TenantID: tenantB.ID, RoomID: roomB.ID, Status: models.OrderStatusPending})

	seedUser(t, db, tenantA, "staff@scope-a.test", "secret-pass-123", "staff", []string{"orders"})
	token := loginAs(t, r, "scope-a", "staff@scope-a.test", "secret-pass-123")

	w, resp := doJSON(t, r, "GET", "/api/orders", "scope-a", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	orders := resp["data"].([]interface{})
	assert.Len(t, orders, 1)
	first := orders[0].(map[string]interface{})
	assert.Equal(t, float64(tenantA.ID), first["tenant_id"])
}
