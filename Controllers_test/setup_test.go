package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/XezMetITSolutions/roomapp-unified-sub001/models"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// newTestDB opens a named in-memory sqlite database and migrates every
// model. Each test uses its own name so tests cannot see each other's rows.
func newTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.Tenant{},
		&models.TenantFeature{},
		&models.Hotel{},
		&models.User{},
		&models.Room{},
		&models.Guest{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.GuestRequest{},
		&models.Notification{},
		&models.Announcement{},
		&models.SurveyResponse{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func seedTenant(t *testing.T, db *gorm.DB, slug string) models.Tenant {
	t.Helper()

	tenant := models.Tenant{Name: slug, Slug: slug, IsActive: true}
	if err := db.Create(&tenant).Error; err != nil {
		t.Fatalf("failed to seed tenant: %v", err)
	}
	return tenant
}

func seedUser(t *testing.T, db *gorm.DB, tenant models.Tenant, email, password, role string, perms []string) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := models.User{
		TenantID: tenant.ID,
		Name:     email,
		Email:    email,
		Password: string(hashed),
		Role:     role,
		IsActive: true,
	}
	if err := user.SetPermissions(perms); err != nil {
		t.Fatalf("failed to set permissions: %v", err)
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedRoom(t *testing.T, db *gorm.DB, tenant models.Tenant, number string) models.Room {
	t.Helper()

	room := models.Room{
		TenantID:   tenant.ID,
		RoomNumber: number,
		Floor:      1,
		QRToken:    "qr-" + tenant.Slug + "-" + number,
	}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("failed to seed room: %v", err)
	}
	return room
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// loginAs runs the real login flow and returns the bearer token.
func loginAs(t *testing.T, r *gin.Engine, tenantSlug, email, password string) string {
	t.Helper()

	w, resp := doJSON(t, r, "POST", "/api/auth/login", tenantSlug, "", map[string]string{
		"email":    email,
		"password": password,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed for %s: status %d, body %s", email, w.Code, w.Body.String())
	}
	data := resp["data"].(map[string]interface{})
	return data["token"].(string)
}

// doJSON performs a request against the router with the tenant header and
// optional bearer token set, and decodes the envelope.
func doJSON(t *testing.T, r *gin.Engine, method, path, tenantSlug, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if tenantSlug != "" {
		req.Header.Set("x-tenant", tenantSlug)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]interface{}
	if len(w.Body.Bytes()) > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
	}
	return w, resp
}
