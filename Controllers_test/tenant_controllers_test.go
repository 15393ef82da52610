package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/XezMetITSolutions/roomapp-unified-sub001/models"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/router"
)

func TestTenantAdminCRUD(t *testing.T) {
	db := newTestDB(t, "tenantadmintest")
	r := router.SetupRouter(db)

	home := seedTenant(t, db, "adminhome")
	seedUser(t, db, home, "root@adminhome.test", "secret-pass-123", "admin", nil)
	adminToken := loginAs(t, r, "adminhome", "root@adminhome.test", "secret-pass-123")

	// Create a new hotel account
	w, resp := doJSON(t, r, "POST", "/api/admin/tenants", "", adminToken, map[string]string{
		"name": "Bergblick Hotel",
		"slug": "bergblick",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	data := resp["data"].(map[string]interface{})
	tenantID := uint(data["id"].(float64))
	assert.Equal(t, "bergblick", data["slug"])

	// The hotel profile row is created with it
	var hotel models.Hotel
	assert.NoError(t, db.Where("tenant_id = ?", tenantID).First(&hotel).Error)
	assert.Equal(t, "Bergblick Hotel", hotel.Name)

	// A duplicate slug is refused
	w, _ = doJSON(t, r, "POST", "/api/admin/tenants", "", adminToken, map[string]string{
		"name": "Copycat",
		"slug": "bergblick",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Deactivating the tenant locks out its API
	w, _ = doJSON(t, r, "PATCH", "/api/admin/tenants/"+itoa(tenantID), "", adminToken, map[string]interface{}{
		"is_active": false,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, "GET", "/api/menu", "bergblick", "", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTenantFeatureUpsert(t *testing.T) {
	db := newTestDB(t, "tenantfeaturetest")
	r := router.SetupRouter(db)

	home := seedTenant(t, db, "featurehome")
	seedUser(t, db, home, "root@featurehome.test", "secret-pass-123", "admin", nil)
	adminToken := loginAs(t, r, "featurehome", "root@featurehome.test", "secret-pass-123")

	target := seedTenant(t, db, "featuretarget")

	w, _ := doJSON(t, r, "PUT", "/api/admin/tenants/"+itoa(target.ID)+"/features", "", adminToken, map[string]interface{}{
		"features": []map[string]interface{}{
			{"key": "room_service", "enabled": true},
			{"key": "spa_booking", "enabled": true},
		},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// Toggling an existing key updates the row instead of duplicating it
	w, resp := doJSON(t, r, "PUT", "/api/admin/tenants/"+itoa(target.ID)+"/features", "", adminToken, map[string]interface{}{
		"features": []map[string]interface{}{
			{"key": "spa_booking", "enabled": false},
		},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp["data"].([]interface{}), 2)

	var feature models.TenantFeature
	assert.NoError(t, db.Where("tenant_id = ? AND key = ?", target.ID, "spa_booking").First(&feature).Error)
	assert.False(t, feature.Enabled)

	var count int64
	db.Model(&models.TenantFeature{}).Where("tenant_id = ?", target.ID).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestTenantAdminRequiresAdminRole(t *testing.T) {
	db := newTestDB(t, "tenantroletest")
	r := router.SetupRouter(db)

	home := seedTenant(t, db, "rolehome")
	seedUser(t, db, home, "staff@rolehome.test", "secret-pass-123", "reception", []string{"orders"})
	staffToken := loginAs(t, r, "rolehome", "staff@rolehome.test", "secret-pass-123")

	w, _ := doJSON(t, r, "GET", "/api/admin/tenants", "", staffToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
