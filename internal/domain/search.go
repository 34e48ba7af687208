package domain

type SearchDocKind string

const (
	SearchDocPolicy   SearchDocKind = "policy"
	SearchDocGlossary SearchDocKind = "glossary"
	SearchDocFAQ      SearchDocKind = "faq"
	SearchDocBlog     SearchDocKind = "blog"
)

// SearchDocument is the flattened shape indexed into the site search index.
type SearchDocument struct {
	ID         string        `json:"id"`
	TenantID   string        `json:"tenant_id"`
	Kind       SearchDocKind `json:"kind"`
	Slug       string        `json:"slug"`
	LocationID *string       `json:"location_id,omitempty"`
	Title      string        `json:"title"`
	Body       string        `json:"body"`
	Path       string        `json:"path"`
}
