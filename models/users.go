package models

import (
	"encoding/json"
	"time"
)

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TenantID    uint      `gorm:"not null;uniqueIndex:idx_tenant_user_email" json:"tenant_id"`
	Tenant      Tenant    `gorm:"foreignKey:TenantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Email       string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_tenant_user_email" json:"email"`
	Password    string    `gorm:"type:varchar(255);not null" json:"-"`
	Role        string    `gorm:"type:varchar(50);not null" json:"role"` // admin, reception, kitchen, staff
	Permissions string    `gorm:"type:text" json:"-"`                    // JSON array of admin page keys
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GetPermissions parses the stored JSON array of page keys.
func (u *User) GetPermissions() []string {
	if u.Permissions == "" {
		return []string{}
	}
	var perms []string
	if err := json.Unmarshal([]byte(u.Permissions), &perms); err != nil {
		return []string{}
	}
	return perms
}

func (u *User) SetPermissions(perms []string) error {
	data, err := json.Marshal(perms)
	if err != nil {
		return err
	}
	u.Permissions = string(data)
	return nil
}

// HasPermission reports whether the user may open the given admin page.
// Admins always pass.
func (u *User) HasPermission(page string) bool {
	if u.Role == "admin" {
		return true
	}
	for _, p := range u.GetPermissions() {
		if p == page {
			return true
		}
	}
	return false
}
