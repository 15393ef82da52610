package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/XezMetITSolutions/roomapp-unified-sub001/models"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/utils"
)

// TenantController backs the system-admin panel. Its routes are the only
// ones not scoped by the request tenant.
type TenantController struct {
	DB *gorm.DB
}

func NewTenantController(db *gorm.DB) *TenantController {
	return &TenantController{DB: db}
}

// GetAllTenants
func (tc *TenantController) GetAllTenants(c *gin.Context) {
	var tenants []models.Tenant
	if err := tc.DB.Preload("Features").Find(&tenants).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "All tenants", tenants)
}

// CreateTenant -> new hotel account with its profile row
func (tc *TenantController) CreateTenant(c *gin.Context) {
	type reqBody struct {
		Name string `json:"name" binding:"required"`
		Slug string `json:"slug" binding:"required"`
	}
	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if slug == "" || strings.ContainsAny(slug, " ./") {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid slug"))
		return
	}

	tenant := models.Tenant{
		Name:     req.Name,
		Slug:     slug,
		IsActive: true,
	}

	err := tc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&tenant).Error; err != nil {
			return err
		}
		hotel := models.Hotel{
			TenantID: tenant.ID,
			Name:     req.Name,
		}
		return tx.Create(&hotel).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusConflict, errors.New("slug already in use"))
		return
	}

	utils.InfoLogger.Printf("Tenant created: %s (slug=%s)", tenant.Name, tenant.Slug)

	utils.RespondJSON(c, http.StatusCreated, "Tenant created", tenant)
}

// UpdateTenant
func (tc *TenantController) UpdateTenant(c *gin.Context) {
	idStr := c.Param("tenant_id")
	id, _ := strconv.Atoi(idStr)

	var tenant models.Tenant
	if err := tc.DB.First(&tenant, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	type reqBody struct {
		Name     *string `json:"name"`
		IsActive *bool   `json:"is_active"`
	}
	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		tenant.Name = *req.Name
	}
	if req.IsActive != nil {
		tenant.IsActive = *req.IsActive
	}

	if err := tc.DB.Save(&tenant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Tenant updated", tenant)
}

// DeleteTenant
func (tc *TenantController) DeleteTenant(c *gin.Context) {
	idStr := c.Param("tenant_id")
	id, _ := strconv.Atoi(idStr)

	if err := tc.DB.Delete(&models.Tenant{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Tenant deleted", gin.H{"tenant_id": id})
}

// GetTenantFeatures
func (tc *TenantController) GetTenantFeatures(c *gin.Context) {
	idStr := c.Param("tenant_id")
	id, _ := strconv.Atoi(idStr)

	var tenant models.Tenant
	if err := tc.DB.First(&tenant, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var features []models.TenantFeature
	if err := tc.DB.Where("tenant_id = ?", tenant.ID).Order("`key` asc").Find(&features).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Tenant features", features)
}

// PutTenantFeatures -> upsert feature toggles; key stays unique per tenant
func (tc *TenantController) PutTenantFeatures(c *gin.Context) {
	idStr := c.Param("tenant_id")
	id, _ := strconv.Atoi(idStr)

	var tenant models.Tenant
	if err := tc.DB.First(&tenant, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	type featureReq struct {
		Key     string `json:"key" binding:"required"`
		Enabled bool   `json:"enabled"`
	}
	var req struct {
		Features []featureReq `json:"features" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	err := tc.DB.Transaction(func(tx *gorm.DB) error {
		for _, f := range req.Features {
			var feature models.TenantFeature
			result := tx.Where("tenant_id = ? AND `key` = ?", tenant.ID, f.Key).First(&feature)
			if result.Error != nil {
				feature = models.TenantFeature{
					TenantID: tenant.ID,
					Key:      f.Key,
					Enabled:  f.Enabled,
				}
				if err := tx.Create(&feature).Error; err != nil {
					return err
				}
				continue
			}
			feature.Enabled = f.Enabled
			if err := tx.Save(&feature).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var features []models.TenantFeature
	tc.DB.Where("tenant_id = ?", tenant.ID).Find(&features)

	utils.RespondJSON(c, http.StatusOK, "Tenant features updated", features)
}
