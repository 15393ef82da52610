package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/XezMetITSolutions/roomapp-unified-sub001/router"
)

func TestGlobalRateLimiterWrapsRoutes(t *testing.T) {
	db := newTestDB(t, "ratelimittest")
	r := router.SetupRouter(db)

	// The per-IP window allows 50 requests per second; the ones after
	// that are rejected until the window moves on.
	got429 := false
	for i := 0; i < 60; i++ {
		w, _ := doJSON(t, r, "GET", "/ping", "", "", nil)
		if w.Code == http.StatusTooManyRequests {
			got429 = true
			break
		}
		assert.Equal(t, http.StatusOK, w.Code)
	}
	assert.True(t, got429, "expected the rate limiter to reject requests past the window")
}

func TestLoginRateLimiterIsStrict(t *testing.T) {
	db := newTestDB(t, "loginratetest")
	r := router.SetupRouter(db)

	seedTenant(t, db, "ratelimited")

	// 5 attempts pass the strict limiter (and fail auth), the 6th is cut off
	var last int
	for i := 0; i < 6; i++ {
		w, _ := doJSON(t, r, "POST", "/api/auth/login", "ratelimited", "", map[string]string{
			"email":    "nobody@ratelimited.test",
			"password": "wrong",
		})
		last = w.Code
		if i < 5 {
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		}
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}
