package models

import "time"

// GuestRequest types and status flow (pending -> in_progress -> completed,
// or cancelled at any point before completion).
const (
	RequestTypeHousekeeping = "housekeeping"
	RequestTypeMaintenance  = "maintenance"
	RequestTypeGeneral      = "general"
	RequestTypeFood         = "food"

	RequestStatusPending    = "pending"
	RequestStatusInProgress = "in_progress"
	RequestStatusCompleted  = "completed"
	RequestStatusCancelled  = "cancelled"
)

// GuestRequest is a free-form service ticket raised from the guest page.
type GuestRequest struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	TenantID    uint       `gorm:"index;not null" json:"tenant_id"`
	Tenant      Tenant     `gorm:"foreignKey:TenantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	RoomID      uint       `gorm:"index;not null" json:"room_id"`
	Room        Room       `gorm:"foreignKey:RoomID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"room"`
	Type        string     `gorm:"type:varchar(20);not null;default:'general'" json:"type"`
	Message     string     `gorm:"type:text;not null" json:"message"`
	Priority    string     `gorm:"type:varchar(10);not null;default:'normal'" json:"priority"` // low, normal, high
	Status      string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	HandledByID *uint      `gorm:"index" json:"handled_by_id,omitempty"`
	HandledBy   *User      `gorm:"foreignKey:HandledByID" json:"handled_by,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`
}

func ValidRequestType(t string) bool {
	switch t {
	case RequestTypeHousekeeping, RequestTypeMaintenance, RequestTypeGeneral, RequestTypeFood:
		return true
	}
	return false
}

func (r *GuestRequest) CanTransitionTo(status string) bool {
	switch r.Status {
	case RequestStatusPending:
		return status == RequestStatusInProgress || status == RequestStatusCancelled
	case RequestStatusInProgress:
		return status == RequestStatusCompleted || status == RequestStatusCancelled
	default:
		return false
	}
}
