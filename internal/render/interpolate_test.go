package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpolate_ResolvesKnownTokens(t *testing.T) {
	ctx := TemplateContext{
		TokenAgencyName: "Lakeside Insurance",
		TokenCity:       "Austin",
	}

	out := Interpolate("Welcome to {agency_name} in {city}.", ctx)

	assert.Equal(t, "Welcome to Lakeside Insurance in Austin.", out)
}

func TestInterpolate_LeavesUnresolvedTokensVerbatim(t *testing.T) {
	ctx := TemplateContext{TokenCity: "Austin"}

	out := Interpolate("Call {phone} in {city}.", ctx)

	assert.Equal(t, "Call {phone} in Austin.", out)
}

func TestInterpolate_EmptyContextIsPassthrough(t *testing.T) {
	in := "Serving {city} since {founding_year}."

	assert.Equal(t, in, Interpolate(in, TemplateContext{}))
	assert.Equal(t, in, Interpolate(in, nil))
}

func TestInterpolate_DoesNotRescanSubstitutedValues(t *testing.T) {
	// A value containing brace syntax must not be expanded again.
	ctx := TemplateContext{
		TokenAgencyName: "{city} Insurance",
		TokenCity:       "Austin",
	}

	out := Interpolate("{agency_name}", ctx)

	assert.Equal(t, "{city} Insurance", out)
}

func TestInterpolate_IgnoresMalformedTokens(t *testing.T) {
	ctx := TemplateContext{TokenCity: "Austin"}

	assert.Equal(t, "{ city }", Interpolate("{ city }", ctx))
	assert.Equal(t, "{123}", Interpolate("{123}", ctx))
	assert.Equal(t, "{}", Interpolate("{}", ctx))
}
