package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/mchandler/agency-site-api/internal/domain"
)

type PolicyPageRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewPolicyPageRepository(writerDB, readerDB *gorm.DB) *PolicyPageRepository {
	return &PolicyPageRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *PolicyPageRepository) FindPublished(ctx context.Context, tenantID, slug string, locationID *string) (*domain.PolicyPage, error) {
	var page domain.PolicyPage
	// Newest row wins if the at-most-one-per-tier invariant is ever violated
	err := publishedSlugScope(r.readerDB.WithContext(ctx), tenantID, slug, locationID).
		Order("created_at DESC").
		First(&page).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *PolicyPageRepository) ListPublishedVisibleTo(ctx context.Context, tenantID string, locationID *string) ([]domain.PolicyPage, error) {
	var pages []domain.PolicyPage
	err := visibleScope(r.readerDB.WithContext(ctx).Model(&domain.PolicyPage{}), tenantID, locationID).
		Order("slug ASC, created_at DESC").
		Find(&pages).Error
	if err != nil {
		return nil, err
	}
	return pages, nil
}

func (r *PolicyPageRepository) ListPublished(ctx context.Context, tenantID string) ([]domain.PolicyPage, error) {
	var pages []domain.PolicyPage
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ? AND published = ?", tenantID, true).
		Order("slug ASC").
		Find(&pages).Error
	if err != nil {
		return nil, err
	}
	return pages, nil
}
