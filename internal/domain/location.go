package domain

import (
	"encoding/json"
	"time"
)

type Location struct {
	ID            string          `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID      string          `gorm:"type:uuid;not null;index:idx_locations_tenant_slug,unique" json:"tenant_id"`
	Slug          string          `gorm:"type:text;not null;index:idx_locations_tenant_slug,unique" json:"slug"`
	City          string          `gorm:"type:text;not null" json:"city"`
	State         string          `gorm:"type:text;not null" json:"state"`
	Address       string          `gorm:"type:text" json:"address"`
	Phone         string          `gorm:"type:text" json:"phone"`
	BusinessHours json.RawMessage `gorm:"type:jsonb" json:"business_hours,omitempty"`
	Active        bool            `gorm:"not null;default:true" json:"active"`
	CreatedAt     time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant        *Tenant         `gorm:"foreignKey:TenantID" json:"-"`
}

func (Location) TableName() string {
	return "locations"
}
