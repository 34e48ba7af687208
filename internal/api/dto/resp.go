package dto

import (
	"encoding/json"
	"time"
)

type LocationResponse struct {
	ID            string          `json:"id"`
	Slug          string          `json:"slug"`
	City          string          `json:"city"`
	State         string          `json:"state"`
	Address       string          `json:"address,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	BusinessHours json.RawMessage `json:"business_hours,omitempty"`
}

type PageMetaResponse struct {
	MetaTitle       string `json:"meta_title,omitempty"`
	MetaDescription string `json:"meta_description,omitempty"`
	Heading         string `json:"heading,omitempty"`
	Intro           string `json:"intro,omitempty"`
}

type PolicyLink struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Path     string `json:"path"`
}

type FAQResponse struct {
	PolicyID    string `json:"policy_id"`
	PolicySlug  string `json:"policy_slug"`
	PolicyTitle string `json:"policy_title"`
	Question    string `json:"question"`
	Answer      string `json:"answer"`
}

type LocationPageResponse struct {
	Location LocationResponse `json:"location"`
	Meta     *PageMetaResponse `json:"meta,omitempty"`
	Policies []PolicyLink      `json:"policies"`
	JSONLD   map[string]any    `json:"json_ld"`
}

type PolicyPageResponse struct {
	Slug            string         `json:"slug"`
	Category        string         `json:"category"`
	Title           string         `json:"title"`
	Body            string         `json:"body"`
	FAQs            []FAQResponse  `json:"faqs,omitempty"`
	MetaTitle       string         `json:"meta_title,omitempty"`
	MetaDescription string         `json:"meta_description,omitempty"`
	JSONLD          map[string]any `json:"json_ld"`
}

type FAQPageResponse struct {
	Meta   *PageMetaResponse `json:"meta,omitempty"`
	FAQs   []FAQResponse     `json:"faqs"`
	JSONLD map[string]any    `json:"json_ld"`
}

type GlossaryTermResponse struct {
	Slug       string `json:"slug"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

type GlossaryPageResponse struct {
	Meta  *PageMetaResponse      `json:"meta,omitempty"`
	Terms []GlossaryTermResponse `json:"terms"`
}

type BlogPostSummary struct {
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Author      string     `json:"author,omitempty"`
	Excerpt     string     `json:"excerpt,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

type BlogIndexResponse struct {
	Meta  *PageMetaResponse `json:"meta,omitempty"`
	Posts []BlogPostSummary `json:"posts"`
}

type BlogPostResponse struct {
	Slug        string         `json:"slug"`
	Title       string         `json:"title"`
	Author      string         `json:"author,omitempty"`
	Body        string         `json:"body"`
	PublishedAt *time.Time     `json:"published_at,omitempty"`
	JSONLD      map[string]any `json:"json_ld"`
}

type JobPostingResponse struct {
	Slug           string `json:"slug"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	EmploymentType string `json:"employment_type,omitempty"`
}

type CareersPageResponse struct {
	Meta *PageMetaResponse    `json:"meta,omitempty"`
	Jobs []JobPostingResponse `json:"jobs"`
}

type SearchResult struct {
	Kind  string `json:"kind"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Path  string `json:"path"`
}

type SubmissionAccepted struct {
	ID     string `json:"id"`
	Status string `json:"status" example:"accepted"`
}

// SubmissionEvent is broadcast over the operator submission stream.
type SubmissionEvent struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Kind        string    `json:"kind"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	LocationID  *string   `json:"location_id,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}
