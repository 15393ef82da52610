package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/XezMetITSolutions/roomapp-unified-sub001/middlewares"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/models"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/realtime"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/utils"
)

type GuestController struct {
	DB *gorm.DB
}

func NewGuestController(db *gorm.DB) *GuestController {
	return &GuestController{DB: db}
}

// activeStay returns the open stay for a room, if any. Guest-facing
// handlers use it to resolve and validate the session key issued at
// check-in.
func activeStay(db *gorm.DB, tenantID, roomID uint) (models.Guest, bool) {
	var guest models.Guest
	err := db.Where("tenant_id = ? AND room_id = ? AND is_active = ?", tenantID, roomID, true).
		First(&guest).Error
	return guest, err == nil
}

// validateSessionKey rejects a guest-supplied session key that does not
// match the room's active stay. An empty key passes; guest actions stay
// possible from an unoccupied room page.
func validateSessionKey(db *gorm.DB, tenantID, roomID uint, key string) error {
	if key == "" {
		return nil
	}
	stay, ok := activeStay(db, tenantID, roomID)
	if !ok || stay.SessionKey != key {
		return errors.New("invalid session key")
	}
	return nil
}

// GetAllGuests -> reception view, ?active=true filters to current stays
func (gc *GuestController) GetAllGuests(c *gin.Context) {
	tenant, _ := middlewares.GetTenant(c)

	query := gc.DB.Preload("Room").Where("tenant_id = ?", tenant.ID)
	if c.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}

	var guests []models.Guest
	if err := query.Order("check_in desc").Find(&guests).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of guests", guests)
}

// CheckIn -> create a stay and mark the room occupied
func (gc *GuestController) CheckIn(c *gin.Context) {
	type reqBody struct {
		RoomID   uint   `json:"room_id" binding:"required"`
		FullName string `json:"full_name" binding:"required"`
		Phone    string `json:"phone"`
	}
	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	tenant, _ := middlewares.GetTenant(c)

	var room models.Room
	if err := gc.DB.Where("tenant_id = ?", tenant.ID).First(&room, req.RoomID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("room not found"))
		return
	}

	if room.IsOccupied {
		utils.RespondError(c, http.StatusConflict, errors.New("room is already occupied"))
		return
	}

	guest := models.Guest{
		TenantID:   tenant.ID,
		RoomID:     room.ID,
		FullName:   req.FullName,
		Phone:      req.Phone,
		SessionKey: uuid.NewString(),
		IsActive:   true,
		CheckIn:    time.Now(),
	}

	err := gc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&guest).Error; err != nil {
			return err
		}
		room.IsOccupied = true
		return tx.Save(&room).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	realtime.EmitToStaff(tenant.ID, realtime.EventRoomUpdated, room)

	utils.InfoLogger.Printf("Guest checked in (ID=%d, tenant=%d, room=%s)",
		guest.ID, tenant.ID, room.RoomNumber)

	// The session key is only handed out here and on the room scan
	utils.RespondJSON(c, http.StatusCreated, "Guest checked in", gin.H{
		"guest":       guest,
		"session_key": guest.SessionKey,
	})
}

// Checkout -> close the stay, stamp check_out and free the room
func (gc *GuestController) Checkout(c *gin.Context) {
	type reqBody struct {
		GuestID uint `json:"guest_id" binding:"required"`
	}
	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	tenant, _ := middlewares.GetTenant(c)

	var guest models.Guest
	if err := gc.DB.Where("tenant_id = ?", tenant.ID).First(&guest, req.GuestID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if !guest.IsActive {
		utils.RespondError(c, http.StatusConflict, errors.New("guest is already checked out"))
		return
	}

	now := time.Now()
	guest.IsActive = false
	guest.CheckOut = &now

	var room models.Room
	err := gc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&guest).Error; err != nil {
			return err
		}
		if err := tx.First(&room, guest.RoomID).Error; err != nil {
			return err
		}
		room.IsOccupied = false
		return tx.Save(&room).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	realtime.EmitToStaff(tenant.ID, realtime.EventRoomUpdated, room)

	utils.InfoLogger.Printf("Guest checked out (ID=%d, tenant=%d, room=%s)",
		guest.ID, tenant.ID, room.RoomNumber)

	utils.RespondJSON(c, http.StatusOK, "Guest checked out", guest)
}
