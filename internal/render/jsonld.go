package render

import (
	"github.com/mchandler/agency-site-api/internal/domain"
)

// JSON-LD builders. Pure output transforms over already-resolved data; the
// presentation layer serializes the returned map into a script tag.

func AgencyJSONLD(tenant *domain.Tenant, location *domain.Location) map[string]any {
	doc := map[string]any{
		"@context": "https://schema.org",
		"@type":    "InsuranceAgency",
		"name":     tenant.AgencyName,
	}
	if tenant.CanonicalURL != "" {
		doc["url"] = tenant.CanonicalURL
	}
	if tenant.Phone != "" {
		doc["telephone"] = tenant.Phone
	}

	if location != nil {
		doc["address"] = map[string]any{
			"@type":           "PostalAddress",
			"streetAddress":   location.Address,
			"addressLocality": location.City,
			"addressRegion":   location.State,
		}
		if location.Phone != "" {
			doc["telephone"] = location.Phone
		}
	}

	return doc
}

func FAQPageJSONLD(faqs []domain.SourcedFAQ) map[string]any {
	entities := make([]map[string]any, len(faqs))
	for i, faq := range faqs {
		entities[i] = map[string]any{
			"@type": "Question",
			"name":  faq.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  faq.Answer,
			},
		}
	}
	return map[string]any{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": entities,
	}
}

func ServiceJSONLD(policy *domain.PolicyPage, tenant *domain.Tenant) map[string]any {
	return map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Service",
		"name":        policy.Title,
		"serviceType": policy.Category,
		"description": policy.MetaDescription,
		"provider": map[string]any{
			"@type": "InsuranceAgency",
			"name":  tenant.AgencyName,
		},
	}
}

func BlogPostingJSONLD(post *domain.BlogPost, tenant *domain.Tenant) map[string]any {
	doc := map[string]any{
		"@context": "https://schema.org",
		"@type":    "BlogPosting",
		"headline": post.Title,
		"author": map[string]any{
			"@type": "Organization",
			"name":  tenant.AgencyName,
		},
	}
	if post.Author != "" {
		doc["author"] = map[string]any{
			"@type": "Person",
			"name":  post.Author,
		}
	}
	if post.PublishedAt != nil {
		doc["datePublished"] = post.PublishedAt.Format("2006-01-02")
	}
	return doc
}
