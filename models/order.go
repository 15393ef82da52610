package models

import "time"

// Order status flow: pending -> preparing -> delivered, or cancelled.
const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	TenantID    uint        `gorm:"index;not null" json:"tenant_id"`
	Tenant      Tenant      `gorm:"foreignKey:TenantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	RoomID      uint        `gorm:"index;not null" json:"room_id"`
	Room        Room        `gorm:"foreignKey:RoomID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"room"`
	GuestID     *uint       `gorm:"index" json:"guest_id,omitempty"`
	Guest       *Guest      `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
	Status      string      `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TotalAmount float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_amount"`
	Notes       string      `gorm:"type:text" json:"notes"`
	DeliveredAt *time.Time  `json:"delivered_at,omitempty"`
	CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"not null" json:"updated_at"`
	OrderItems  []OrderItem `gorm:"foreignKey:OrderID" json:"order_items"`
}

// CanTransitionTo validates the status flow so two staff members racing on
// the same order cannot push it backwards.
func (o *Order) CanTransitionTo(status string) bool {
	switch o.Status {
	case OrderStatusPending:
		return status == OrderStatusPreparing || status == OrderStatusCancelled
	case OrderStatusPreparing:
		return status == OrderStatusDelivered || status == OrderStatusCancelled
	default:
		return false
	}
}
