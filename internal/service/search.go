package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mchandler/agency-site-api/internal/api/dto"
	"github.com/mchandler/agency-site-api/internal/domain"
	"github.com/mchandler/agency-site-api/internal/repository"
	"github.com/mchandler/agency-site-api/pkg/logger"
)

const defaultSearchSize = 20

// SearchService fronts the OpenSearch index. Queries degrade to empty
// result sets on index failure; reindexing rebuilds the tenant index from
// the published content in Postgres.
type SearchService struct {
	repo       repository.Repository
	sqsService SQSService
	logger     *logger.Logger
}

func NewSearchService(repo repository.Repository, sqsService SQSService, logger *logger.Logger) *SearchService {
	return &SearchService{
		repo:       repo,
		sqsService: sqsService,
		logger:     logger,
	}
}

func (s *SearchService) Search(ctx context.Context, tenantID, query string, size int) []dto.SearchResult {
	if size <= 0 {
		size = defaultSearchSize
	}

	docs, err := s.repo.Search().Search(ctx, tenantID, query, size)
	if err != nil {
		s.logger.Error("Search query failed", err,
			zap.String("tenant_id", tenantID), zap.String("query", query))
		return []dto.SearchResult{}
	}
	return dto.FromSearchDocuments(docs)
}

// ScheduleReindex enqueues a rebuild for the index worker to pick up.
func (s *SearchService) ScheduleReindex(ctx context.Context, tenantID string) error {
	if s.sqsService == nil {
		return fmt.Errorf("reindex queue is not configured")
	}
	return s.sqsService.SendReindexMessage(ctx, tenantID)
}

// Reindex rebuilds the tenant's search index from all published content,
// including location overrides. Paths use the global URL space; the
// presentation layer prefixes location paths where needed.
func (s *SearchService) Reindex(ctx context.Context, tenantID string) error {
	docs, err := s.buildDocuments(ctx, tenantID)
	if err != nil {
		return err
	}

	if err := s.repo.Search().EnsureIndex(ctx, tenantID); err != nil {
		return fmt.Errorf("failed to ensure search index: %w", err)
	}

	if len(docs) == 0 {
		s.logger.Infof("No published content to index for tenant %s", tenantID)
		return nil
	}

	if err := s.repo.Search().BulkIndex(ctx, docs); err != nil {
		return fmt.Errorf("failed to bulk index documents: %w", err)
	}

	s.logger.Infof("Indexed %d documents for tenant %s", len(docs), tenantID)
	return nil
}

func (s *SearchService) buildDocuments(ctx context.Context, tenantID string) ([]domain.SearchDocument, error) {
	var docs []domain.SearchDocument

	policies, err := s.repo.PolicyPage().ListPublished(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list policy pages: %w", err)
	}
	for _, page := range policies {
		docs = append(docs, domain.SearchDocument{
			ID:         page.ID,
			TenantID:   tenantID,
			Kind:       domain.SearchDocPolicy,
			Slug:       page.Slug,
			LocationID: page.LocationID,
			Title:      page.Title,
			Body:       page.Body,
			Path:       "/policies/" + page.Slug,
		})
		for i, faq := range page.FAQs {
			docs = append(docs, domain.SearchDocument{
				ID:         fmt.Sprintf("%s-faq-%d", page.ID, i),
				TenantID:   tenantID,
				Kind:       domain.SearchDocFAQ,
				Slug:       page.Slug,
				LocationID: page.LocationID,
				Title:      faq.Question,
				Body:       faq.Answer,
				Path:       "/faqs#" + page.Slug,
			})
		}
	}

	terms, err := s.repo.Glossary().ListPublished(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list glossary terms: %w", err)
	}
	for _, term := range terms {
		docs = append(docs, domain.SearchDocument{
			ID:         term.ID,
			TenantID:   tenantID,
			Kind:       domain.SearchDocGlossary,
			Slug:       term.Slug,
			LocationID: term.LocationID,
			Title:      term.Term,
			Body:       term.Definition,
			Path:       "/glossary/" + term.Slug,
		})
	}

	posts, err := s.repo.Blog().ListPublished(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	for _, post := range posts {
		docs = append(docs, domain.SearchDocument{
			ID:       post.ID,
			TenantID: tenantID,
			Kind:     domain.SearchDocBlog,
			Slug:     post.Slug,
			Title:    post.Title,
			Body:     post.Body,
			Path:     "/blog/" + post.Slug,
		})
	}

	return docs, nil
}
