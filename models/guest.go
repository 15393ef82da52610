package models

import "time"

// Guest is one stay: created at check-in, closed at check-out.
type Guest struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	TenantID   uint       `gorm:"index;not null" json:"tenant_id"`
	Tenant     Tenant     `gorm:"foreignKey:TenantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	RoomID     uint       `gorm:"index;not null" json:"room_id"`
	Room       Room       `gorm:"foreignKey:RoomID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"room"`
	FullName   string     `gorm:"type:varchar(255);not null" json:"full_name"`
	Phone      string     `gorm:"type:varchar(50)" json:"phone"`
	SessionKey string     `gorm:"type:varchar(64);index" json:"-"`
	IsActive   bool       `gorm:"not null;default:true" json:"is_active"`
	CheckIn    time.Time  `gorm:"not null" json:"check_in"`
	CheckOut   *time.Time `json:"check_out,omitempty"`
	CreatedAt  time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"not null" json:"updated_at"`
}
