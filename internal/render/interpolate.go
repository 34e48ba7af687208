package render

import (
	"regexp"
)

// TemplateContext maps placeholder names to resolved string values for the
// current tenant/location. Built fresh per request, never persisted.
type TemplateContext map[string]string

// Placeholder names the editorial tool knows about. Tokens outside this
// vocabulary, and tokens whose value is missing from the context, pass
// through verbatim.
const (
	TokenAgencyName         = "agency_name"
	TokenCity               = "city"
	TokenState              = "state"
	TokenPhone              = "phone"
	TokenEmail              = "email"
	TokenAddress            = "address"
	TokenYearsInBusiness    = "years_in_business"
	TokenFoundingYear       = "founding_year"
	TokenRegionalDescriptor = "regional_descriptor"
)

var tokenPattern = regexp.MustCompile(`\{([A-Za-z][A-Za-z0-9_]*)\}`)

// Interpolate substitutes {token} placeholders from the context. Unknown or
// unresolved tokens are left verbatim, delimiters included; substitution is
// literal (no escaping) and substituted values are not re-scanned.
func Interpolate(text string, ctx TemplateContext) string {
	if text == "" || len(ctx) == 0 {
		return text
	}
	return tokenPattern.ReplaceAllStringFunc(text, func(match string) string {
		name := match[1 : len(match)-1]
		if value, ok := ctx[name]; ok {
			return value
		}
		return match
	})
}
