package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/XezMetITSolutions/roomapp-unified-sub001/middlewares"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/models"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/realtime"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/utils"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GetAllNotifications -> tenant-wide plus the caller's personal ones
func (nc *NotificationController) GetAllNotifications(c *gin.Context) {
	tenant, _ := middlewares.GetTenant(c)
	user, _ := middlewares.GetUser(c)

	var notifs []models.Notification
	if err := nc.DB.Where("tenant_id = ? AND (user_id IS NULL OR user_id = ?)", tenant.ID, user.ID).
		Order("created_at desc").Find(&notifs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "All notifications", notifs)
}

// CreateNotification -> tenant-wide (user_id empty) or for a specific user
func (nc *NotificationController) CreateNotification(c *gin.Context) {
	type reqBody struct {
		UserID  *uint  `json:"user_id"`
		Title   string `json:"title"`
		Message string `json:"message" binding:"required"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	tenant, _ := middlewares.GetTenant(c)

	notif := models.Notification{
		TenantID: tenant.ID,
		UserID:   body.UserID,
		Title:    body.Title,
		Message:  body.Message,
	}

	if err := nc.DB.Create(&notif).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	realtime.EmitToStaff(tenant.ID, realtime.EventNewNotification, notif)

	utils.RespondJSON(c, http.StatusCreated, "Notification created", notif)
}

// MarkNotificationRead
func (nc *NotificationController) MarkNotificationRead(c *gin.Context) {
	idStr := c.Param("notif_id")
	id, _ := strconv.Atoi(idStr)

	tenant, _ := middlewares.GetTenant(c)

	var notif models.Notification
	if err := nc.DB.Where("tenant_id = ?", tenant.ID).First(&notif, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	notif.IsRead = true
	if err := nc.DB.Save(&notif).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Notification marked read", notif)
}

// DeleteNotification
func (nc *NotificationController) DeleteNotification(c *gin.Context) {
	idStr := c.Param("notif_id")
	id, _ := strconv.Atoi(idStr)

	tenant, _ := middlewares.GetTenant(c)

	if err := nc.DB.Where("tenant_id = ?", tenant.ID).Delete(&models.Notification{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Notification deleted", gin.H{"notif_id": id})
}
