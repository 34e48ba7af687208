package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/mchandler/agency-site-api/internal/domain"
)

type PageMetaRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewPageMetaRepository(writerDB, readerDB *gorm.DB) *PageMetaRepository {
	return &PageMetaRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *PageMetaRepository) FindPublished(ctx context.Context, tenantID, slug string, locationID *string) (*domain.PageMeta, error) {
	var meta domain.PageMeta
	err := publishedSlugScope(r.readerDB.WithContext(ctx), tenantID, slug, locationID).
		Order("created_at DESC").
		First(&meta).Error
	if err != nil {
		return nil, err
	}
	return &meta, nil
}
