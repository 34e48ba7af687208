package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/mchandler/agency-site-api/internal/domain"
)

type GlossaryRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewGlossaryRepository(writerDB, readerDB *gorm.DB) *GlossaryRepository {
	return &GlossaryRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *GlossaryRepository) FindPublished(ctx context.Context, tenantID, slug string, locationID *string) (*domain.GlossaryTerm, error) {
	var term domain.GlossaryTerm
	err := publishedSlugScope(r.readerDB.WithContext(ctx), tenantID, slug, locationID).
		Order("created_at DESC").
		First(&term).Error
	if err != nil {
		return nil, err
	}
	return &term, nil
}

func (r *GlossaryRepository) ListPublished(ctx context.Context, tenantID string) ([]domain.GlossaryTerm, error) {
	var terms []domain.GlossaryTerm
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ? AND published = ?", tenantID, true).
		Order("term ASC").
		Find(&terms).Error
	if err != nil {
		return nil, err
	}
	return terms, nil
}

func (r *GlossaryRepository) ListPublishedVisibleTo(ctx context.Context, tenantID string, locationID *string) ([]domain.GlossaryTerm, error) {
	var terms []domain.GlossaryTerm
	err := visibleScope(r.readerDB.WithContext(ctx).Model(&domain.GlossaryTerm{}), tenantID, locationID).
		Order("term ASC, created_at DESC").
		Find(&terms).Error
	if err != nil {
		return nil, err
	}
	return terms, nil
}
