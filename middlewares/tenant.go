package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/XezMetITSolutions/roomapp-unified-sub001/models"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/utils"
)

const tenantContextKey = "tenant"

// TenantMiddleware resolves the tenant once per request from the x-tenant
// header (or the first subdomain label as fallback) and stores the loaded
// row in the gin context. Every data-access call downstream scopes by it.
func TenantMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.GetHeader("x-tenant")
		if slug == "" {
			slug = subdomainOf(c.Request.Host)
		}
		if slug == "" {
			utils.RespondError(c, http.StatusBadRequest, errors.New("tenant not specified"))
			c.Abort()
			return
		}

		var tenant models.Tenant
		if err := db.Where("slug = ?", slug).First(&tenant).Error; err != nil {
			utils.RespondError(c, http.StatusNotFound, errors.New("tenant not found"))
			c.Abort()
			return
		}

		if !tenant.IsActive {
			utils.RespondError(c, http.StatusForbidden, errors.New("tenant is not active"))
			c.Abort()
			return
		}

		c.Set(tenantContextKey, tenant)
		c.Next()
	}
}

// GetTenant returns the tenant resolved by TenantMiddleware.
func GetTenant(c *gin.Context) (models.Tenant, bool) {
	v, exists := c.Get(tenantContextKey)
	if !exists {
		return models.Tenant{}, false
	}
	tenant, ok := v.(models.Tenant)
	return tenant, ok
}

// subdomainOf extracts the first label of a host like "acme.roomapp.io".
// Bare hosts, localhost and IPs yield "".
func subdomainOf(host string) string {
	if i := strings.Index(host, ":"); i >= 0 {
		host = host[:i]
	}
	parts := strings.Split(host, ".")
	if len(parts) < 3 {
		return ""
	}
	if parts[0] == "www" {
		return ""
	}
	return parts[0]
}
