package domain

import (
	"time"
)

type BlogPost struct {
	ID          string     `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID    string     `gorm:"type:uuid;not null;index" json:"tenant_id"`
	LocationID  *string    `gorm:"type:uuid" json:"location_id,omitempty"`
	Slug        string     `gorm:"type:text;not null;index" json:"slug"`
	Title       string     `gorm:"type:text;not null" json:"title"`
	Author      string     `gorm:"type:text" json:"author"`
	Excerpt     string     `gorm:"type:text" json:"excerpt"`
	Body        string     `gorm:"type:text" json:"body"`
	Published   bool       `gorm:"not null;default:false" json:"published"`
	PublishedAt *time.Time `gorm:"type:timestamp with time zone" json:"published_at,omitempty"`
	CreatedAt   time.Time  `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}
