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

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// CreateOrder -> guest places an order for their room. Prices always come
// from the stored menu items; anything the client sends for price is ignored.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type ItemReq struct {
		MenuItemID uint   `json:"menu_item_id" binding:"required"`
		Quantity   int    `json:"quantity" binding:"required,gt=0"`
		Notes      string `json:"notes"`
	}
	type ReqBody struct {
		RoomID     uint      `json:"room_id" binding:"required"`
		SessionKey string    `json:"session_key"`
		Items      []ItemReq `json:"items" binding:"required,min=1"`
		Notes      string    `json:"notes"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	tenant, _ := middlewares.GetTenant(c)

	var room models.Room
	if err := oc.DB.Where("tenant_id = ?", tenant.ID).First(&room, body.RoomID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("room not found"))
		return
	}

	if err := validateSessionKey(oc.DB, tenant.ID, room.ID, body.SessionKey); err != nil {
		utils.RespondError(c, http.StatusForbidden, err)
		return
	}

	// Attach the active stay if there is one
	var guestID *uint
	if guest, ok := activeStay(oc.DB, tenant.ID, room.ID); ok {
		guestID = &guest.ID
	}

	order := models.Order{
		TenantID: tenant.ID,
		RoomID:   room.ID,
		GuestID:  guestID,
		Status:   models.OrderStatusPending,
		Notes:    body.Notes,
	}

	var total float64
	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, item := range body.Items {
			var menuItem models.MenuItem
			if err := tx.Where("tenant_id = ? AND is_active = ? AND is_available = ?", tenant.ID, true, true).
				First(&menuItem, item.MenuItemID).Error; err != nil {
				return fmt.Errorf("menu item %d is not available", item.MenuItemID)
			}

			total += float64(item.Quantity) * menuItem.Price

			orderItem := models.OrderItem{
				OrderID:    order.ID,
				MenuItemID: menuItem.ID,
				Name:       menuItem.Name,
				Price:      menuItem.Price,
				Quantity:   item.Quantity,
				Notes:      item.Notes,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
		}

		order.TotalAmount = total
		return tx.Save(&order).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := oc.DB.Preload("OrderItems").First(&order, order.ID).Error; err == nil {
		realtime.EmitToRoles(tenant.ID, realtime.EventNewOrder, order, "kitchen", "reception", "staff")
	}

	utils.InfoLogger.Printf("Order #%d created (tenant=%d, room=%s, total=%.2f)",
		order.ID, tenant.ID, room.RoomNumber, order.TotalAmount)

	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetAllOrders -> staff view, optional ?status= filter
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	tenant, _ := middlewares.GetTenant(c)

	query := oc.DB.Preload("OrderItems").Preload("Room").
		Where("tenant_id = ?", tenant.ID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Order("created_at asc").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	idStr := c.Param("order_id")
	id, _ := strconv.Atoi(idStr)

	tenant, _ := middlewares.GetTenant(c)

	var order models.Order
	if err := oc.DB.Preload("OrderItems").Preload("Room").
		Where("tenant_id = ?", tenant.ID).First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrderStatus -> kitchen/staff move the order along its status flow.
// Invalid transitions are rejected so racing staff cannot regress an order.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	idStr := c.Param("order_id")
	id, _ := strconv.Atoi(idStr)

	type reqBody struct {
		Status string `json:"status" binding:"required"`
	}
	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	tenant, _ := middlewares.GetTenant(c)

	var order models.Order
	if err := oc.DB.Where("tenant_id = ?", tenant.ID).First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if !order.CanTransitionTo(req.Status) {
		utils.RespondError(c, http.StatusConflict,
			fmt.Errorf("cannot change order from %s to %s", order.Status, req.Status))
		return
	}

	order.Status = req.Status
	if req.Status == models.OrderStatusDelivered {
		now := time.Now()
		order.DeliveredAt = &now
	}

	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	realtime.EmitToStaff(tenant.ID, realtime.EventOrderUpdated, order)
	realtime.EmitToRoom(tenant.ID, order.RoomID, realtime.EventOrderUpdated, order)

	utils.RespondJSON(c, http.StatusOK, "Order updated", order)
}
