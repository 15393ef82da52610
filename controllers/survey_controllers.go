package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/XezMetITSolutions/roomapp-unified-sub001/middlewares"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/models"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/utils"
)

type SurveyController struct {
	DB *gorm.DB
}

func NewSurveyController(db *gorm.DB) *SurveyController {
	return &SurveyController{DB: db}
}

// CreateSurveyResponse -> guest feedback form
func (sc *SurveyController) CreateSurveyResponse(c *gin.Context) {
	type reqBody struct {
		RoomID     uint   `json:"room_id" binding:"required"`
		SessionKey string `json:"session_key"`
		Rating     int    `json:"rating" binding:"required,min=1,max=5"`
		Comment    string `json:"comment"`
	}
	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	tenant, _ := middlewares.GetTenant(c)

	var room models.Room
	if err := sc.DB.Where("tenant_id = ?", tenant.ID).First(&room, req.RoomID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("room not found"))
		return
	}

	if err := validateSessionKey(sc.DB, tenant.ID, room.ID, req.SessionKey); err != nil {
		utils.RespondError(c, http.StatusForbidden, err)
		return
	}

	response := models.SurveyResponse{
		TenantID: tenant.ID,
		RoomID:   room.ID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}

	if err := sc.DB.Create(&response).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Survey response recorded", response)
}

// GetAllSurveyResponses -> staff view with average rating
func (sc *SurveyController) GetAllSurveyResponses(c *gin.Context) {
	tenant, _ := middlewares.GetTenant(c)

	var responses []models.SurveyResponse
	if err := sc.DB.Preload("Room").Where("tenant_id = ?", tenant.ID).
		Order("created_at desc").Find(&responses).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var avg float64
	sc.DB.Model(&models.SurveyResponse{}).Where("tenant_id = ?", tenant.ID).
		Select("COALESCE(AVG(rating), 0)").Row().Scan(&avg)

	utils.RespondJSON(c, http.StatusOK, "Survey responses", gin.H{
		"responses":      responses,
		"average_rating": avg,
	})
}
