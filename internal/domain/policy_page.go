package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// FAQItem is a single question/answer pair authored on a policy page.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQList is stored as a jsonb column on policy pages.
type FAQList []FAQItem

func (l FAQList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *FAQList) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("unsupported type %T for FAQList", value)
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, l)
}

// PolicyPage is a publishable policy content record. A nil LocationID marks
// the tenant-wide global record; a non-nil LocationID marks a location
// override of the same slug.
type PolicyPage struct {
	ID              string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID        string    `gorm:"type:uuid;not null;index" json:"tenant_id"`
	LocationID      *string   `gorm:"type:uuid" json:"location_id,omitempty"`
	Slug            string    `gorm:"type:text;not null;index" json:"slug"`
	Category        string    `gorm:"type:text;not null" json:"category"`
	Title           string    `gorm:"type:text;not null" json:"title"`
	Body            string    `gorm:"type:text" json:"body"`
	FAQs            FAQList   `gorm:"type:jsonb" json:"faqs,omitempty"`
	MetaTitle       string    `gorm:"type:text" json:"meta_title"`
	MetaDescription string    `gorm:"type:text" json:"meta_description"`
	Published       bool      `gorm:"not null;default:false" json:"published"`
	CreatedAt       time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Location        *Location `gorm:"foreignKey:LocationID" json:"-"`
}

func (PolicyPage) TableName() string {
	return "policy_pages"
}

// SourcedFAQ is a flattened FAQ entry tagged with the policy it came from.
type SourcedFAQ struct {
	PolicyID    string `json:"policy_id"`
	PolicySlug  string `json:"policy_slug"`
	PolicyTitle string `json:"policy_title"`
	Question    string `json:"question"`
	Answer      string `json:"answer"`
}
