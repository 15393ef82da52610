package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/XezMetITSolutions/roomapp-unified-sub001/middlewares"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/models"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/realtime"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/utils"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetDashboardStats -> overview numbers for the staff dashboard
func (dc *DashboardController) GetDashboardStats(c *gin.Context) {
	tenant, _ := middlewares.GetTenant(c)

	today := time.Now().Format("2006-01-02")

	var stats struct {
		TotalOrders  int64   `json:"total_orders"`
		TodayOrders  int64   `json:"today_orders"`
		TodayRevenue float64 `json:"today_revenue"`
		OrderStats   struct {
			Pending   int64 `json:"pending"`
			Preparing int64 `json:"preparing"`
			Delivered int64 `json:"delivered"`
			Cancelled int64 `json:"cancelled"`
		} `json:"order_stats"`
		RequestStats struct {
			Pending    int64 `json:"pending"`
			InProgress int64 `json:"in_progress"`
			Completed  int64 `json:"completed"`
		} `json:"request_stats"`
		RoomStats struct {
			Total    int64 `json:"total"`
			Occupied int64 `json:"occupied"`
		} `json:"room_stats"`
		ActiveGuests     int64 `json:"active_guests"`
		ConnectedClients int   `json:"connected_clients"`
	}

	orders := dc.DB.Model(&models.Order{}).Where("tenant_id = ?", tenant.ID)
	orders.Count(&stats.TotalOrders)

	dc.DB.Model(&models.Order{}).
		Where("tenant_id = ? AND DATE(created_at) = ?", tenant.ID, today).
		Count(&stats.TodayOrders)

	dc.DB.Model(&models.Order{}).
		Where("tenant_id = ? AND DATE(created_at) = ? AND status != ?", tenant.ID, today, models.OrderStatusCancelled).
		Select("COALESCE(SUM(total_amount), 0)").Row().Scan(&stats.TodayRevenue)

	dc.DB.Model(&models.Order{}).Where("tenant_id = ? AND status = ?", tenant.ID, models.OrderStatusPending).Count(&stats.OrderStats.Pending)
	dc.DB.Model(&models.Order{}).Where("tenant_id = ? AND status = ?", tenant.ID, models.OrderStatusPreparing).Count(&stats.OrderStats.Preparing)
	dc.DB.Model(&models.Order{}).Where("tenant_id = ? AND status = ?", tenant.ID, models.OrderStatusDelivered).Count(&stats.OrderStats.Delivered)
	dc.DB.Model(&models.Order{}).Where("tenant_id = ? AND status = ?", tenant.ID, models.OrderStatusCancelled).Count(&stats.OrderStats.Cancelled)

	dc.DB.Model(&models.GuestRequest{}).Where("tenant_id = ? AND status = ?", tenant.ID, models.RequestStatusPending).Count(&stats.RequestStats.Pending)
	dc.DB.Model(&models.GuestRequest{}).Where("tenant_id = ? AND status = ?", tenant.ID, models.RequestStatusInProgress).Count(&stats.RequestStats.InProgress)
	dc.DB.Model(&models.GuestRequest{}).Where("tenant_id = ? AND status = ?", tenant.ID, models.RequestStatusCompleted).Count(&stats.RequestStats.Completed)

	dc.DB.Model(&models.Room{}).Where("tenant_id = ?", tenant.ID).Count(&stats.RoomStats.Total)
	dc.DB.Model(&models.Room{}).Where("tenant_id = ? AND is_occupied = ?", tenant.ID, true).Count(&stats.RoomStats.Occupied)

	dc.DB.Model(&models.Guest{}).Where("tenant_id = ? AND is_active = ?", tenant.ID, true).Count(&stats.ActiveGuests)

	stats.ConnectedClients = realtime.ClientCount(tenant.ID)

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats retrieved successfully", stats)
}
