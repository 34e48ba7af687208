package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mchandler/agency-site-api/internal/cache"
	"github.com/mchandler/agency-site-api/internal/domain"
	"github.com/mchandler/agency-site-api/internal/repository"
	"github.com/mchandler/agency-site-api/pkg/logger"
)

// ContentService resolves published content with location-override
// precedence: a published row scoped to the requested location wins over the
// published global row with the same slug. Store failures are logged and
// treated as absence, so page composition degrades to 404s and empty
// collections instead of surfacing 500s.
type ContentService struct {
	repo     repository.Repository
	cache    cache.Cache
	cacheTTL time.Duration
	logger   *logger.Logger
}

func NewContentService(repo repository.Repository, c cache.Cache, cacheTTL time.Duration, logger *logger.Logger) *ContentService {
	return &ContentService{
		repo:     repo,
		cache:    c,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// resolveOverrideThenGlobal applies the two-tier precedence. The find
// callback queries a single tier: the given location when non-nil, the
// global tier when nil. A store failure on either tier counts as absence.
func resolveOverrideThenGlobal[T any](ctx context.Context, locationID *string, find func(context.Context, *string) (*T, error), onStoreErr func(error)) (*T, error) {
	if locationID != nil {
		record, err := find(ctx, locationID)
		if err == nil {
			return record, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			onStoreErr(err)
		}
	}

	record, err := find(ctx, nil)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			onStoreErr(err)
		}
		return nil, ErrContentNotFound
	}
	return record, nil
}

// cachedResolve is a read-through wrapper around a resolver. Cache failures
// never fail the resolution; NotFound results are not cached.
func cachedResolve[T any](ctx context.Context, c cache.Cache, key string, ttl time.Duration, resolve func() (*T, error)) (*T, error) {
	if c != nil {
		if b, ok, err := c.Get(ctx, key); err == nil && ok {
			var record T
			if json.Unmarshal(b, &record) == nil {
				return &record, nil
			}
		}
	}

	record, err := resolve()
	if err != nil {
		return nil, err
	}

	if c != nil {
		if b, err := json.Marshal(record); err == nil {
			_ = c.Set(ctx, key, b, ttl)
		}
	}
	return record, nil
}

func tierLabel(locationID *string) string {
	if locationID == nil {
		return ""
	}
	return *locationID
}

func (s *ContentService) storeErrLogger(kind, tenantID, slug string) func(error) {
	return func(err error) {
		s.logger.Error("Content lookup failed", err,
			zap.String("content_type", kind),
			zap.String("tenant_id", tenantID),
			zap.String("slug", slug))
	}
}

// ResolvePolicy returns the published policy page visible under the given
// location, or the global page when no override exists.
func (s *ContentService) ResolvePolicy(ctx context.Context, tenantID, slug string, locationID *string) (*domain.PolicyPage, error) {
	key := cache.ContentKey("policy", tenantID, slug, tierLabel(locationID))
	return cachedResolve(ctx, s.cache, key, s.cacheTTL, func() (*domain.PolicyPage, error) {
		return resolveOverrideThenGlobal(ctx, locationID,
			func(ctx context.Context, locID *string) (*domain.PolicyPage, error) {
				return s.repo.PolicyPage().FindPublished(ctx, tenantID, slug, locID)
			},
			s.storeErrLogger("policy", tenantID, slug))
	})
}

func (s *ContentService) ResolveGlossaryTerm(ctx context.Context, tenantID, slug string, locationID *string) (*domain.GlossaryTerm, error) {
	key := cache.ContentKey("glossary", tenantID, slug, tierLabel(locationID))
	return cachedResolve(ctx, s.cache, key, s.cacheTTL, func() (*domain.GlossaryTerm, error) {
		return resolveOverrideThenGlobal(ctx, locationID,
			func(ctx context.Context, locID *string) (*domain.GlossaryTerm, error) {
				return s.repo.Glossary().FindPublished(ctx, tenantID, slug, locID)
			},
			s.storeErrLogger("glossary", tenantID, slug))
	})
}

func (s *ContentService) ResolvePageMeta(ctx context.Context, tenantID, pageSlug string, locationID *string) (*domain.PageMeta, error) {
	key := cache.ContentKey("page_meta", tenantID, pageSlug, tierLabel(locationID))
	return cachedResolve(ctx, s.cache, key, s.cacheTTL, func() (*domain.PageMeta, error) {
		return resolveOverrideThenGlobal(ctx, locationID,
			func(ctx context.Context, locID *string) (*domain.PageMeta, error) {
				return s.repo.PageMeta().FindPublished(ctx, tenantID, pageSlug, locID)
			},
			s.storeErrLogger("page_meta", tenantID, pageSlug))
	})
}

// ResolveBlogPost resolves blog content on the global tier only; posts are
// never location-scoped.
func (s *ContentService) ResolveBlogPost(ctx context.Context, tenantID, slug string) (*domain.BlogPost, error) {
	key := cache.ContentKey("blog", tenantID, slug, "")
	return cachedResolve(ctx, s.cache, key, s.cacheTTL, func() (*domain.BlogPost, error) {
		return resolveOverrideThenGlobal(ctx, nil,
			func(ctx context.Context, locID *string) (*domain.BlogPost, error) {
				return s.repo.Blog().FindPublished(ctx, tenantID, slug, locID)
			},
			s.storeErrLogger("blog", tenantID, slug))
	})
}

func (s *ContentService) ResolveJob(ctx context.Context, tenantID, slug string, locationID *string) (*domain.JobPosting, error) {
	key := cache.ContentKey("job", tenantID, slug, tierLabel(locationID))
	job, err := cachedResolve(ctx, s.cache, key, s.cacheTTL, func() (*domain.JobPosting, error) {
		return resolveOverrideThenGlobal(ctx, locationID,
			func(ctx context.Context, locID *string) (*domain.JobPosting, error) {
				return s.repo.Job().FindPublished(ctx, tenantID, slug, locID)
			},
			s.storeErrLogger("job", tenantID, slug))
	})
	if err != nil {
		return nil, ErrJobNotFound
	}
	return job, nil
}

// collapseOverrides reduces a mixed list of override and global rows to one
// row per slug, preferring the override. Rows arrive ordered newest-first
// within each slug, so the first row seen per tier is the tie-break winner.
func collapseOverrides[T any](rows []T, slugOf func(T) string, isOverride func(T) bool) []T {
	picked := make(map[string]int)
	var order []string
	for i, row := range rows {
		slug := slugOf(row)
		j, seen := picked[slug]
		if !seen {
			picked[slug] = i
			order = append(order, slug)
			continue
		}
		if !isOverride(rows[j]) && isOverride(row) {
			picked[slug] = i
		}
	}

	result := make([]T, 0, len(order))
	for _, slug := range order {
		result = append(result, rows[picked[slug]])
	}
	return result
}

// VisiblePolicies lists the published policy pages visible under the given
// location, one row per slug with overrides applied.
func (s *ContentService) VisiblePolicies(ctx context.Context, tenantID string, locationID *string) []domain.PolicyPage {
	rows, err := s.repo.PolicyPage().ListPublishedVisibleTo(ctx, tenantID, locationID)
	if err != nil {
		s.logger.Error("Failed to list policy pages", err, zap.String("tenant_id", tenantID))
		return []domain.PolicyPage{}
	}
	return collapseOverrides(rows,
		func(p domain.PolicyPage) string { return p.Slug },
		func(p domain.PolicyPage) bool { return p.LocationID != nil })
}

func (s *ContentService) VisibleGlossary(ctx context.Context, tenantID string, locationID *string) []domain.GlossaryTerm {
	rows, err := s.repo.Glossary().ListPublishedVisibleTo(ctx, tenantID, locationID)
	if err != nil {
		s.logger.Error("Failed to list glossary terms", err, zap.String("tenant_id", tenantID))
		return []domain.GlossaryTerm{}
	}
	return collapseOverrides(rows,
		func(t domain.GlossaryTerm) string { return t.Slug },
		func(t domain.GlossaryTerm) bool { return t.LocationID != nil })
}

func (s *ContentService) VisibleJobs(ctx context.Context, tenantID string, locationID *string) []domain.JobPosting {
	rows, err := s.repo.Job().ListPublishedVisibleTo(ctx, tenantID, locationID)
	if err != nil {
		s.logger.Error("Failed to list job postings", err, zap.String("tenant_id", tenantID))
		return []domain.JobPosting{}
	}
	return collapseOverrides(rows,
		func(j domain.JobPosting) string { return j.Slug },
		func(j domain.JobPosting) bool { return j.LocationID != nil })
}

// ListBlogPosts returns published posts, newest first.
func (s *ContentService) ListBlogPosts(ctx context.Context, tenantID string) []domain.BlogPost {
	rows, err := s.repo.Blog().ListPublished(ctx, tenantID)
	if err != nil {
		s.logger.Error("Failed to list blog posts", err, zap.String("tenant_id", tenantID))
		return []domain.BlogPost{}
	}
	return rows
}

// AggregatedFAQs flattens the FAQ lists of every visible policy page into a
// single collection tagged with the source policy. When an override shadows
// a global page, only the override's FAQs appear.
func (s *ContentService) AggregatedFAQs(ctx context.Context, tenantID string, locationID *string) []domain.SourcedFAQ {
	pages := s.VisiblePolicies(ctx, tenantID, locationID)

	faqs := []domain.SourcedFAQ{}
	for _, page := range pages {
		for _, item := range page.FAQs {
			faqs = append(faqs, domain.SourcedFAQ{
				PolicyID:    page.ID,
				PolicySlug:  page.Slug,
				PolicyTitle: page.Title,
				Question:    item.Question,
				Answer:      item.Answer,
			})
		}
	}
	return faqs
}
