package domain

import (
	"time"
)

type GlossaryTerm struct {
	ID         string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID   string    `gorm:"type:uuid;not null;index" json:"tenant_id"`
	LocationID *string   `gorm:"type:uuid" json:"location_id,omitempty"`
	Slug       string    `gorm:"type:text;not null;index" json:"slug"`
	Term       string    `gorm:"type:text;not null" json:"term"`
	Definition string    `gorm:"type:text;not null" json:"definition"`
	Published  bool      `gorm:"not null;default:false" json:"published"`
	CreatedAt  time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (GlossaryTerm) TableName() string {
	return "glossary_terms"
}
