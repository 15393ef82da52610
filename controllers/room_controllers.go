package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"github.com/XezMetITSolutions/roomapp-unified-sub001/middlewares"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/models"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/utils"
)

type RoomController struct {
	DB *gorm.DB
}

func NewRoomController(db *gorm.DB) *RoomController {
	return &RoomController{DB: db}
}

// GetAllRooms
func (rc *RoomController) GetAllRooms(c *gin.Context) {
	tenant, _ := middlewares.GetTenant(c)

	var rooms []models.Room
	if err := rc.DB.Where("tenant_id = ?", tenant.ID).
		Order("floor asc, room_number asc").Find(&rooms).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of rooms", rooms)
}

// CreateRoom
func (rc *RoomController) CreateRoom(c *gin.Context) {
	type reqBody struct {
		RoomNumber string `json:"room_number" binding:"required"`
		Floor      int    `json:"floor"`
	}
	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	tenant, _ := middlewares.GetTenant(c)

	room := models.Room{
		TenantID:   tenant.ID,
		RoomNumber: req.RoomNumber,
		Floor:      req.Floor,
		QRToken:    uuid.NewString(),
	}

	if err := rc.DB.Create(&room).Error; err != nil {
		utils.RespondError(c, http.StatusConflict, errors.New("room number already exists"))
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Room created", room)
}

// CreateRoomBatch -> generate rooms per floor the way the QR page did:
// floors 1..N with M rooms each, numbered <floor><01..M>.
func (rc *RoomController) CreateRoomBatch(c *gin.Context) {
	type reqBody struct {
		Floors        int `json:"floors" binding:"required,gt=0,lte=50"`
		RoomsPerFloor int `json:"rooms_per_floor" binding:"required,gt=0,lte=100"`
	}
	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	tenant, _ := middlewares.GetTenant(c)

	var created []models.Room
	err := rc.DB.Transaction(func(tx *gorm.DB) error {
		for floor := 1; floor <= req.Floors; floor++ {
			for n := 1; n <= req.RoomsPerFloor; n++ {
				roomNumber := fmt.Sprintf("%d%02d", floor, n)

				// Skip rooms that already exist so the batch is re-runnable
				var count int64
				tx.Model(&models.Room{}).
					Where("tenant_id = ? AND room_number = ?", tenant.ID, roomNumber).
					Count(&count)
				if count > 0 {
					continue
				}

				room := models.Room{
					TenantID:   tenant.ID,
					RoomNumber: roomNumber,
					Floor:      floor,
					QRToken:    uuid.NewString(),
				}
				if err := tx.Create(&room).Error; err != nil {
					return err
				}
				created = append(created, room)
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Room batch created: %d rooms (tenant=%d)", len(created), tenant.ID)

	utils.RespondJSON(c, http.StatusCreated, "Rooms created", created)
}

// UpdateRoom
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	idStr := c.Param("room_id")
	id, _ := strconv.Atoi(idStr)

	tenant, _ := middlewares.GetTenant(c)

	var room models.Room
	if err := rc.DB.Where("tenant_id = ?", tenant.ID).First(&room, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	type reqBody struct {
		RoomNumber *string `json:"room_number"`
		Floor      *int    `json:"floor"`
		IsOccupied *bool   `json:"is_occupied"`
	}
	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.RoomNumber != nil {
		room.RoomNumber = *req.RoomNumber
	}
	if req.Floor != nil {
		room.Floor = *req.Floor
	}
	if req.IsOccupied != nil {
		room.IsOccupied = *req.IsOccupied
	}

	if err := rc.DB.Save(&room).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Room updated", room)
}

// DeleteRoom
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	idStr := c.Param("room_id")
	id, _ := strconv.Atoi(idStr)

	tenant, _ := middlewares.GetTenant(c)

	if err := rc.DB.Where("tenant_id = ?", tenant.ID).Delete(&models.Room{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Room deleted", gin.H{"room_id": id})
}

// GetRoomQR -> PNG of the guest landing URL for this room
func (rc *RoomController) GetRoomQR(c *gin.Context) {
	idStr := c.Param("room_id")
	id, _ := strconv.Atoi(idStr)

	tenant, _ := middlewares.GetTenant(c)

	var room models.Room
	if err := rc.DB.Where("tenant_id = ?", tenant.ID).First(&room, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	baseURL := os.Getenv("GUEST_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	target := fmt.Sprintf("%s/%s/room/%s", baseURL, tenant.Slug, room.QRToken)

	png, err := qrcode.Encode(target, qrcode.Medium, 256)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="room-%s.png"`, room.RoomNumber))
	c.Data(http.StatusOK, "image/png", png)
}

// ScanRoom -> guest landing payload after scanning the QR code: the room,
// the hotel profile, active announcements, the tenant's enabled features
// and the session key of the active stay (empty while the room is vacant).
func (rc *RoomController) ScanRoom(c *gin.Context) {
	token := c.Param("qr_token")

	tenant, _ := middlewares.GetTenant(c)

	var room models.Room
	if err := rc.DB.Where("tenant_id = ? AND qr_token = ?", tenant.ID, token).First(&room).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("room not found"))
		return
	}

	var hotel models.Hotel
	rc.DB.Where("tenant_id = ?", tenant.ID).First(&hotel)

	var announcements []models.Announcement
	rc.DB.Where("tenant_id = ? AND is_active = ?", tenant.ID, true).
		Order("created_at desc").Find(&announcements)

	var features []models.TenantFeature
	rc.DB.Where("tenant_id = ? AND enabled = ?", tenant.ID, true).Find(&features)

	enabledFeatures := make([]string, 0, len(features))
	for _, f := range features {
		enabledFeatures = append(enabledFeatures, f.Key)
	}

	sessionKey := ""
	if stay, ok := activeStay(rc.DB, tenant.ID, room.ID); ok {
		sessionKey = stay.SessionKey
	}

	utils.RespondJSON(c, http.StatusOK, "Room scan", gin.H{
		"room":          room,
		"hotel":         hotel,
		"announcements": announcements,
		"features":      enabledFeatures,
		"session_key":   sessionKey,
	})
}
