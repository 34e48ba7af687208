package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/mchandler/agency-site-api/internal/domain"
)

type BlogRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewBlogRepository(writerDB, readerDB *gorm.DB) *BlogRepository {
	return &BlogRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *BlogRepository) FindPublished(ctx context.Context, tenantID, slug string, locationID *string) (*domain.BlogPost, error) {
	var post domain.BlogPost
	err := publishedSlugScope(r.readerDB.WithContext(ctx), tenantID, slug, locationID).
		Order("created_at DESC").
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *BlogRepository) ListPublished(ctx context.Context, tenantID string) ([]domain.BlogPost, error) {
	var posts []domain.BlogPost
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ? AND published = ?", tenantID, true).
		Order("published_at DESC NULLS LAST").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
