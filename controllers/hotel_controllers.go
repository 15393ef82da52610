package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/XezMetITSolutions/roomapp-unified-sub001/middlewares"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/models"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/utils"
)

type HotelController struct {
	DB *gorm.DB
}

func NewHotelController(db *gorm.DB) *HotelController {
	return &HotelController{DB: db}
}

// GetHotel -> public hotel profile for the guest pages
func (hc *HotelController) GetHotel(c *gin.Context) {
	tenant, _ := middlewares.GetTenant(c)

	var hotel models.Hotel
	if err := hc.DB.Where("tenant_id = ?", tenant.ID).First(&hotel).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Hotel profile", hotel)
}

// UpdateHotel -> staff edit of the profile; creates the row if missing
func (hc *HotelController) UpdateHotel(c *gin.Context) {
	tenant, _ := middlewares.GetTenant(c)

	type reqBody struct {
		Name    *string `json:"name"`
		Address *string `json:"address"`
		Phone   *string `json:"phone"`
		Email   *string `json:"email"`
		Website *string `json:"website"`
		LogoUrl *string `json:"logo_url"`
	}
	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var hotel models.Hotel
	if err := hc.DB.Where("tenant_id = ?", tenant.ID).First(&hotel).Error; err != nil {
		hotel = models.Hotel{TenantID: tenant.ID, Name: tenant.Name}
	}

	if req.Name != nil {
		hotel.Name = *req.Name
	}
	if req.Address != nil {
		hotel.Address = *req.Address
	}
	if req.Phone != nil {
		hotel.Phone = *req.Phone
	}
	if req.Email != nil {
		hotel.Email = *req.Email
	}
	if req.Website != nil {
		hotel.Website = *req.Website
	}
	if req.LogoUrl != nil {
		hotel.LogoUrl = *req.LogoUrl
	}

	if err := hc.DB.Save(&hotel).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Hotel profile updated", hotel)
}
