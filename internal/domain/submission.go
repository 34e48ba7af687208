package domain

import (
	"time"
)

type SubmissionKind string

const (
	SubmissionKindContact     SubmissionKind = "CONTACT"
	SubmissionKindApplication SubmissionKind = "APPLICATION"
)

type ContactSubmission struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	TenantID    string    `gorm:"type:uuid;not null;index" json:"tenant_id"`
	LocationID  *string   `gorm:"type:uuid" json:"location_id,omitempty"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Email       string    `gorm:"type:text;not null" json:"email"`
	Phone       string    `gorm:"type:text" json:"phone"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	SubmittedAt time.Time `gorm:"type:timestamp with time zone;not null" json:"submitted_at"`
	CreatedAt   time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}

type JobApplication struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	TenantID     string    `gorm:"type:uuid;not null;index" json:"tenant_id"`
	LocationID   *string   `gorm:"type:uuid" json:"location_id,omitempty"`
	JobPostingID string    `gorm:"type:uuid;not null" json:"job_posting_id"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	Email        string    `gorm:"type:text;not null" json:"email"`
	Phone        string    `gorm:"type:text" json:"phone"`
	CoverLetter  string    `gorm:"type:text" json:"cover_letter"`
	ResumeKey    string    `gorm:"type:text" json:"resume_key"`
	SubmittedAt  time.Time `gorm:"type:timestamp with time zone;not null" json:"submitted_at"`
	CreatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (JobApplication) TableName() string {
	return "job_applications"
}
