package models

import "time"

type Room struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TenantID   uint      `gorm:"not null;uniqueIndex:idx_tenant_room_number" json:"tenant_id"`
	Tenant     Tenant    `gorm:"foreignKey:TenantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	RoomNumber string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_tenant_room_number" json:"room_number"`
	Floor      int       `gorm:"not null;default:0" json:"floor"`
	IsOccupied bool      `gorm:"not null;default:false" json:"is_occupied"`
	QRToken    string    `gorm:"type:varchar(64);uniqueIndex" json:"qr_token"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}
