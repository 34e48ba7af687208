package repository

import (
	"context"
	"time"

	"github.com/mchandler/agency-site-api/internal/domain"
)

//go:generate mockery --name TenantRepository --output ../mocks
type TenantRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
}

//go:generate mockery --name LocationRepository --output ../mocks
type LocationRepository interface {
	GetActiveBySlug(ctx context.Context, tenantID, slug string) (*domain.Location, error)
	ListActive(ctx context.Context, tenantID string) ([]domain.Location, error)
	CountActive(ctx context.Context, tenantID string) (int64, error)
}

//go:generate mockery --name PolicyPageRepository --output ../mocks
type PolicyPageRepository interface {
	// FindPublished looks up the published record in exactly one precedence
	// tier: locationID nil means the global tier (location IS NULL).
	FindPublished(ctx context.Context, tenantID, slug string, locationID *string) (*domain.PolicyPage, error)
	// ListPublishedVisibleTo returns all published rows in either tier
	// (location = locationID OR location IS NULL); per-slug precedence is
	// collapsed by the caller.
	ListPublishedVisibleTo(ctx context.Context, tenantID string, locationID *string) ([]domain.PolicyPage, error)
	ListPublished(ctx context.Context, tenantID string) ([]domain.PolicyPage, error)
}

//go:generate mockery --name GlossaryRepository --output ../mocks
type GlossaryRepository interface {
	FindPublished(ctx context.Context, tenantID, slug string, locationID *string) (*domain.GlossaryTerm, error)
	ListPublishedVisibleTo(ctx context.Context, tenantID string, locationID *string) ([]domain.GlossaryTerm, error)
	ListPublished(ctx context.Context, tenantID string) ([]domain.GlossaryTerm, error)
}

//go:generate mockery --name PageMetaRepository --output ../mocks
type PageMetaRepository interface {
	FindPublished(ctx context.Context, tenantID, slug string, locationID *string) (*domain.PageMeta, error)
}

//go:generate mockery --name BlogRepository --output ../mocks
type BlogRepository interface {
	FindPublished(ctx context.Context, tenantID, slug string, locationID *string) (*domain.BlogPost, error)
	ListPublished(ctx context.Context, tenantID string) ([]domain.BlogPost, error)
}

//go:generate mockery --name JobRepository --output ../mocks
type JobRepository interface {
	FindPublished(ctx context.Context, tenantID, slug string, locationID *string) (*domain.JobPosting, error)
	ListPublishedVisibleTo(ctx context.Context, tenantID string, locationID *string) ([]domain.JobPosting, error)
}

//go:generate mockery --name BusinessInfoRepository --output ../mocks
type BusinessInfoRepository interface {
	GetByTenant(ctx context.Context, tenantID string) (*domain.BusinessInfo, error)
}

//go:generate mockery --name SubmissionRepository --output ../mocks
type SubmissionRepository interface {
	CreateContact(ctx context.Context, submission *domain.ContactSubmission) error
	CreateApplication(ctx context.Context, application *domain.JobApplication) error
	ListContactsBetween(ctx context.Context, tenantID string, from, to time.Time) ([]domain.ContactSubmission, error)
	ListApplicationsBetween(ctx context.Context, tenantID string, from, to time.Time) ([]domain.JobApplication, error)
}

//go:generate mockery --name SearchRepository --output ../mocks
type SearchRepository interface {
	EnsureIndex(ctx context.Context, tenantID string) error
	DeleteIndex(ctx context.Context, tenantID string) error
	BulkIndex(ctx context.Context, docs []domain.SearchDocument) error
	Search(ctx context.Context, tenantID, query string, size int) ([]domain.SearchDocument, error)
}

//go:generate mockery --name PostgresRepository --output ../mocks
type PostgresRepository interface {
	Tenant() TenantRepository
	Location() LocationRepository
	PolicyPage() PolicyPageRepository
	Glossary() GlossaryRepository
	PageMeta() PageMetaRepository
	Blog() BlogRepository
	Job() JobRepository
	BusinessInfo() BusinessInfoRepository
	Submission() SubmissionRepository
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	PostgresRepository
	Search() SearchRepository
}
