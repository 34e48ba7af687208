package render

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	contentPolicyOnce sync.Once
	contentPolicy     *bluemonday.Policy
)

// SanitizeHTML strips anything outside the markup vocabulary the editorial
// tool produces. Runs before interpolation so the policy sees the authored
// markup, not substituted values.
func SanitizeHTML(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	return strings.TrimSpace(contentSanitizer().Sanitize(raw))
}

func contentSanitizer() *bluemonday.Policy {
	contentPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements(
			"p", "br", "strong", "em", "b", "i", "u",
			"h2", "h3", "h4",
			"ul", "ol", "li",
			"blockquote", "a", "span", "div", "table", "thead", "tbody", "tr", "th", "td",
		)
		policy.AllowAttrs("href", "title").OnElements("a")
		policy.AllowAttrs("class").OnElements("p", "span", "div", "ul", "ol", "li", "table", "a")

		// Authored links are short-form and relative; the rewriter scopes them
		policy.AllowStandardURLs()
		policy.AllowRelativeURLs(true)

		contentPolicy = policy
	})
	return contentPolicy
}
