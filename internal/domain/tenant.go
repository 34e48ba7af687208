package domain

import (
	"time"
)

type Tenant struct {
	ID           string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Slug         string    `gorm:"type:text;not null;uniqueIndex" json:"slug"`
	AgencyName   string    `gorm:"type:text;not null" json:"agency_name"`
	CanonicalURL string    `gorm:"type:text" json:"canonical_url"`
	Phone        string    `gorm:"type:text" json:"phone"`
	Email        string    `gorm:"type:text" json:"email"`
	CreatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}
