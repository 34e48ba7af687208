package opensearch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/mchandler/agency-site-api/internal/config"
	"github.com/mchandler/agency-site-api/internal/domain"
)

type Repository interface {
	// EnsureIndex creates the tenant's content index if it doesn't exist
	EnsureIndex(ctx context.Context, tenantID string) error
	// DeleteIndex drops the tenant's content index
	DeleteIndex(ctx context.Context, tenantID string) error
	// BulkIndex indexes a batch of content documents
	BulkIndex(ctx context.Context, docs []domain.SearchDocument) error
	// Search runs a full-text query over the tenant's published content
	Search(ctx context.Context, tenantID, query string, size int) ([]domain.SearchDocument, error)
}

type repository struct {
	client *opensearch.Client
	config *config.OpenSearchConfig
}

func NewRepository(client *opensearch.Client, config *config.OpenSearchConfig) Repository {
	return &repository{
		client: client,
		config: config,
	}
}

func (r *repository) EnsureIndex(ctx context.Context, tenantID string) error {
	indexName := r.config.GetIndexName(tenantID)

	existsReq := opensearchapi.IndicesExistsRequest{
		Index: []string{indexName},
	}
	res, err := existsReq.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	res.Body.Close()
	if res.StatusCode == 200 {
		return nil
	}

	mapping := map[string]any{
		"mappings": map[string]any{
			"properties": map[string]any{
				"tenant_id":   map[string]any{"type": "keyword"},
				"kind":        map[string]any{"type": "keyword"},
				"slug":        map[string]any{"type": "keyword"},
				"location_id": map[string]any{"type": "keyword"},
				"title":       map[string]any{"type": "text"},
				"body":        map[string]any{"type": "text"},
				"path":        map[string]any{"type": "keyword"},
			},
		},
	}
	body, err := json.Marshal(mapping)
	if err != nil {
		return fmt.Errorf("failed to marshal index mapping: %w", err)
	}

	createReq := opensearchapi.IndicesCreateRequest{
		Index: indexName,
		Body:  strings.NewReader(string(body)),
	}
	createRes, err := createReq.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer createRes.Body.Close()

	if createRes.IsError() && createRes.StatusCode != 400 {
		return fmt.Errorf("error creating index: %s", createRes.String())
	}

	return nil
}

func (r *repository) DeleteIndex(ctx context.Context, tenantID string) error {
	req := opensearchapi.IndicesDeleteRequest{
		Index: []string{r.config.GetIndexName(tenantID)},
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to delete index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("error deleting index: %s", res.String())
	}

	return nil
}

func (r *repository) BulkIndex(ctx context.Context, docs []domain.SearchDocument) error {
	if len(docs) == 0 {
		return nil
	}

	if err := r.EnsureIndex(ctx, docs[0].TenantID); err != nil {
		return fmt.Errorf("failed to ensure index exists: %w", err)
	}

	var bulkBody strings.Builder
	for _, doc := range docs {
		action := map[string]any{
			"index": map[string]any{
				"_index": r.config.GetIndexName(doc.TenantID),
				"_id":    doc.ID,
			},
		}
		actionLine, err := json.Marshal(action)
		if err != nil {
			return fmt.Errorf("failed to marshal action: %w", err)
		}
		bulkBody.Write(actionLine)
		bulkBody.WriteString("\n")

		docLine, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}
		bulkBody.Write(docLine)
		bulkBody.WriteString("\n")
	}

	req := opensearchapi.BulkRequest{
		Body: strings.NewReader(bulkBody.String()),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to execute bulk request: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("bulk request failed: %s", res.String())
	}

	return nil
}

func (r *repository) Search(ctx context.Context, tenantID, query string, size int) ([]domain.SearchDocument, error) {
	if size <= 0 {
		size = 20
	}

	searchQuery := map[string]any{
		"size": size,
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  query,
				"fields": []string{"title^2", "body"},
			},
		},
	}

	queryJSON, err := json.Marshal(searchQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	req := opensearchapi.SearchRequest{
		Index: []string{r.config.GetIndexName(tenantID)},
		Body:  strings.NewReader(string(queryJSON)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		// A missing index just means nothing has been indexed yet
		if res.StatusCode == 404 {
			return []domain.SearchDocument{}, nil
		}
		return nil, fmt.Errorf("search request failed: %s", res.String())
	}

	var searchResult struct {
		Hits struct {
			Hits []struct {
				Source domain.SearchDocument `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(res.Body).Decode(&searchResult); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	var docs []domain.SearchDocument
	for _, hit := range searchResult.Hits.Hits {
		docs = append(docs, hit.Source)
	}

	return docs, nil
}
