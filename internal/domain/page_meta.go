package domain

import (
	"time"
)

// PageMeta carries per-page SEO metadata and intro copy, keyed by the page
// slug ("home", "faq", "contact", ...). Follows the same override rules as
// the other content records.
type PageMeta struct {
	ID              string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID        string    `gorm:"type:uuid;not null;index" json:"tenant_id"`
	LocationID      *string   `gorm:"type:uuid" json:"location_id,omitempty"`
	Slug            string    `gorm:"type:text;not null;index" json:"slug"`
	MetaTitle       string    `gorm:"type:text" json:"meta_title"`
	MetaDescription string    `gorm:"type:text" json:"meta_description"`
	Heading         string    `gorm:"type:text" json:"heading"`
	Intro           string    `gorm:"type:text" json:"intro"`
	Published       bool      `gorm:"not null;default:false" json:"published"`
	CreatedAt       time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (PageMeta) TableName() string {
	return "page_metas"
}
