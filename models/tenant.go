package models

import "time"

// Tenant is one hotel customer account. Every room, menu item, user and
// order in the system hangs off a tenant and is resolved per request from
// the x-tenant header or subdomain.
type Tenant struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Slug      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	Features []TenantFeature `gorm:"foreignKey:TenantID" json:"features,omitempty"`
}

// TenantFeature toggles a named feature for one tenant (key unique per tenant).
type TenantFeature struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TenantID  uint      `gorm:"not null;uniqueIndex:idx_tenant_feature_key" json:"tenant_id"`
	Key       string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_tenant_feature_key" json:"key"`
	Enabled   bool      `gorm:"not null;default:false" json:"enabled"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
