package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/XezMetITSolutions/roomapp-unified-sub001/middlewares"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/models"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/utils"
)

type AnnouncementController struct {
	DB *gorm.DB
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db}
}

// GetActiveAnnouncements -> guest-facing
func (ac *AnnouncementController) GetActiveAnnouncements(c *gin.Context) {
	tenant, _ := middlewares.GetTenant(c)

	var announcements []models.Announcement
	if err := ac.DB.Where("tenant_id = ? AND is_active = ?", tenant.ID, true).
		Order("created_at desc").Find(&announcements).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Active announcements", announcements)
}

// CreateAnnouncement
func (ac *AnnouncementController) CreateAnnouncement(c *gin.Context) {
	type reqBody struct {
		Title string `json:"title" binding:"required"`
		Body  string `json:"body"`
	}
	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	tenant, _ := middlewares.GetTenant(c)

	announcement := models.Announcement{
		TenantID: tenant.ID,
		Title:    req.Title,
		Body:     req.Body,
		IsActive: true,
	}

	if err := ac.DB.Create(&announcement).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Announcement created", announcement)
}

// UpdateAnnouncement
func (ac *AnnouncementController) UpdateAnnouncement(c *gin.Context) {
	idStr := c.Param("announcement_id")
	id, _ := strconv.Atoi(idStr)

	tenant, _ := middlewares.GetTenant(c)

	var announcement models.Announcement
	if err := ac.DB.Where("tenant_id = ?", tenant.ID).First(&announcement, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	type reqBody struct {
		Title    *string `json:"title"`
		Body     *string `json:"body"`
		IsActive *bool   `json:"is_active"`
	}
	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Title != nil {
		announcement.Title = *req.Title
	}
	if req.Body != nil {
		announcement.Body = *req.Body
	}
	if req.IsActive != nil {
		announcement.IsActive = *req.IsActive
	}

	if err := ac.DB.Save(&announcement).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Announcement updated", announcement)
}

// DeleteAnnouncement
func (ac *AnnouncementController) DeleteAnnouncement(c *gin.Context) {
	idStr := c.Param("announcement_id")
	id, _ := strconv.Atoi(idStr)

	tenant, _ := middlewares.GetTenant(c)

	if err := ac.DB.Where("tenant_id = ?", tenant.ID).Delete(&models.Announcement{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Announcement deleted", gin.H{"announcement_id": id})
}
