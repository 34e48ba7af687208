package domain

import (
	"time"
)

type JobPosting struct {
	ID             string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID       string    `gorm:"type:uuid;not null;index" json:"tenant_id"`
	LocationID     *string   `gorm:"type:uuid" json:"location_id,omitempty"`
	Slug           string    `gorm:"type:text;not null;index" json:"slug"`
	Title          string    `gorm:"type:text;not null" json:"title"`
	Description    string    `gorm:"type:text" json:"description"`
	EmploymentType string    `gorm:"type:text" json:"employment_type"`
	Published      bool      `gorm:"not null;default:false" json:"published"`
	CreatedAt      time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (JobPosting) TableName() string {
	return "job_postings"
}
