package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/XezMetITSolutions/roomapp-unified-sub001/middlewares"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/models"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/realtime"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/utils"
)

type RequestController struct {
	DB *gorm.DB
}

func NewRequestController(db *gorm.DB) *RequestController {
	return &RequestController{DB: db}
}

// CreateRequest -> guest raises a service ticket from the room page
func (rc *RequestController) CreateRequest(c *gin.Context) {
	type reqBody struct {
		RoomID     uint   `json:"room_id" binding:"required"`
		SessionKey string `json:"session_key"`
		Type       string `json:"type" binding:"required"`
		Message    string `json:"message" binding:"required"`
		Priority   string `json:"priority"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !models.ValidRequestType(body.Type) {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown request type %q", body.Type))
		return
	}

	tenant, _ := middlewares.GetTenant(c)

	var room models.Room
	if err := rc.DB.Where("tenant_id = ?", tenant.ID).First(&room, body.RoomID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("room not found"))
		return
	}

	if err := validateSessionKey(rc.DB, tenant.ID, room.ID, body.SessionKey); err != nil {
		utils.RespondError(c, http.StatusForbidden, err)
		return
	}

	request := models.GuestRequest{
		TenantID: tenant.ID,
		RoomID:   room.ID,
		Type:     body.Type,
		Message:  body.Message,
		Priority: "normal",
		Status:   models.RequestStatusPending,
	}
	if body.Priority == "low" || body.Priority == "high" {
		request.Priority = body.Priority
	}

	if err := rc.DB.Create(&request).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	request.Room = room
	realtime.EmitToStaff(tenant.ID, realtime.EventNewRequest, request)

	utils.InfoLogger.Printf("Request #%d created (tenant=%d, room=%s, type=%s)",
		request.ID, tenant.ID, room.RoomNumber, request.Type)

	utils.RespondJSON(c, http.StatusCreated, "Request created", request)
}

// GetRoomRequests -> open tickets for one room (guest page)
func (rc *RequestController) GetRoomRequests(c *gin.Context) {
	idStr := c.Param("room_id")
	id, _ := strconv.Atoi(idStr)

	tenant, _ := middlewares.GetTenant(c)

	var requests []models.GuestRequest
	if err := rc.DB.Where("tenant_id = ? AND room_id = ? AND status IN ?",
		tenant.ID, id, []string{models.RequestStatusPending, models.RequestStatusInProgress}).
		Order("created_at asc").Find(&requests).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Room requests", requests)
}

// GetAllRequests -> staff view, optional ?status= and ?type= filters
func (rc *RequestController) GetAllRequests(c *gin.Context) {
	tenant, _ := middlewares.GetTenant(c)

	query := rc.DB.Preload("Room").Where("tenant_id = ?", tenant.ID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if reqType := c.Query("type"); reqType != "" {
		query = query.Where("type = ?", reqType)
	}

	var requests []models.GuestRequest
	if err := query.Order("created_at asc").Find(&requests).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of requests", requests)
}

// UpdateRequest -> staff move a ticket along its status flow
func (rc *RequestController) UpdateRequest(c *gin.Context) {
	idStr := c.Param("request_id")
	id, _ := strconv.Atoi(idStr)

	type reqBody struct {
		Status   string  `json:"status" binding:"required"`
		Priority *string `json:"priority"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	tenant, _ := middlewares.GetTenant(c)

	var request models.GuestRequest
	if err := rc.DB.Where("tenant_id = ?", tenant.ID).First(&request, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if !request.CanTransitionTo(body.Status) {
		utils.RespondError(c, http.StatusConflict,
			fmt.Errorf("cannot change request from %s to %s", request.Status, body.Status))
		return
	}

	request.Status = body.Status
	if body.Priority != nil {
		request.Priority = *body.Priority
	}
	if user, ok := middlewares.GetUser(c); ok {
		request.HandledByID = &user.ID
	}
	if body.Status == models.RequestStatusCompleted {
		now := time.Now()
		request.CompletedAt = &now
	}

	if err := rc.DB.Save(&request).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	realtime.EmitToStaff(tenant.ID, realtime.EventRequestUpdated, request)
	realtime.EmitToRoom(tenant.ID, request.RoomID, realtime.EventRequestUpdated, request)

	utils.RespondJSON(c, http.StatusOK, "Request updated", request)
}
