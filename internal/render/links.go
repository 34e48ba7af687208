package render

import (
	"regexp"
	"strings"
)

// Authored content uses short-form internal links: either
// "/policies/<category>/<slug>" or a bare "<slug>-insurance" reference.
// RewriteLinks re-scopes both shapes under the current location prefix.
// Hrefs are parsed and re-rendered rather than blindly substituted, so
// rewriting already-rewritten output is a no-op.

var (
	hrefPattern       = regexp.MustCompile(`href="([^"]*)"`)
	barePolicyPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*-insurance$`)
)

// RewriteLinks rewrites authored internal hrefs in html to resolve under
// /locations/<locationSlug>. Absolute hrefs that are not policy links are
// left untouched.
func RewriteLinks(html, locationSlug string) string {
	if html == "" || locationSlug == "" {
		return html
	}
	return hrefPattern.ReplaceAllStringFunc(html, func(match string) string {
		value := match[len(`href="`) : len(match)-1]
		if rewritten, ok := rewriteHref(value, locationSlug); ok {
			return `href="` + rewritten + `"`
		}
		return match
	})
}

// rewriteHref classifies one href value and re-renders it when it is an
// authored policy reference.
func rewriteHref(value, locationSlug string) (string, bool) {
	if rest, ok := strings.CutPrefix(value, "/policies/"); ok {
		// "/policies/<category>/<slug>": the category (including the
		// literal "all") is dropped, only the trailing policy slug survives
		parts := strings.Split(rest, "/")
		if len(parts) == 2 && parts[0] != "" && parts[1] != "" {
			return "/locations/" + locationSlug + "/policies/" + parts[1], true
		}
		return "", false
	}

	if barePolicyPattern.MatchString(value) {
		return "/locations/" + locationSlug + "/policies/" + value, true
	}

	return "", false
}
