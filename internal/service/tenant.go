package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mchandler/agency-site-api/internal/domain"
	"github.com/mchandler/agency-site-api/internal/repository"
	"github.com/mchandler/agency-site-api/pkg/logger"
)

const tenantCacheTTL = 5 * time.Minute

// TenantService resolves the deployment's tenant. The slug comes from the
// environment at startup; the row itself changes rarely, so it is cached in
// process with a short TTL.
type TenantService struct {
	repo   repository.Repository
	logger *logger.Logger

	mu        sync.Mutex
	cached    *domain.Tenant
	fetchedAt time.Time
}

func NewTenantService(repo repository.Repository, logger *logger.Logger) *TenantService {
	return &TenantService{
		repo:   repo,
		logger: logger,
	}
}

// ResolveBySlug returns the tenant for the configured slug, or
// ErrTenantNotConfigured when the slug matches no row.
func (s *TenantService) ResolveBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	s.mu.Lock()
	if s.cached != nil && s.cached.Slug == slug && time.Since(s.fetchedAt) < tenantCacheTTL {
		tenant := s.cached
		s.mu.Unlock()
		return tenant, nil
	}
	s.mu.Unlock()

	tenant, err := s.repo.Tenant().GetBySlug(ctx, slug)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("Tenant lookup failed", err, zap.String("slug", slug))
		}
		return nil, ErrTenantNotConfigured
	}

	s.mu.Lock()
	s.cached = tenant
	s.fetchedAt = time.Now()
	s.mu.Unlock()

	return tenant, nil
}
