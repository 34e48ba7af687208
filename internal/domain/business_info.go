package domain

import (
	"time"
)

// BusinessInfo holds the tenant-wide facts the template context is derived
// from (founding year, regional wording). One row per tenant.
type BusinessInfo struct {
	ID                 string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID           string    `gorm:"type:uuid;not null;uniqueIndex" json:"tenant_id"`
	FoundingYear       int       `gorm:"not null" json:"founding_year"`
	RegionalDescriptor string    `gorm:"type:text" json:"regional_descriptor"`
	LicenseNumbers     string    `gorm:"type:text" json:"license_numbers"`
	CreatedAt          time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt          time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (BusinessInfo) TableName() string {
	return "business_infos"
}
