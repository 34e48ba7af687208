package render

import (
	"strconv"
	"time"

	"github.com/mchandler/agency-site-api/internal/domain"
	"github.com/mchandler/agency-site-api/pkg/utils"
)

// BuildContext assembles the template context for one request. Location and
// business info are optional; absent sources simply leave their tokens
// unresolved. Extras are merged last and may shadow derived values.
func BuildContext(tenant *domain.Tenant, location *domain.Location, info *domain.BusinessInfo, now time.Time, extras TemplateContext) TemplateContext {
	ctx := TemplateContext{}

	if tenant != nil {
		ctx[TokenAgencyName] = tenant.AgencyName
		if tenant.Phone != "" {
			ctx[TokenPhone] = tenant.Phone
		}
		if tenant.Email != "" {
			ctx[TokenEmail] = tenant.Email
		}
	}

	if location != nil {
		ctx[TokenCity] = location.City
		ctx[TokenState] = location.State
		if location.Address != "" {
			ctx[TokenAddress] = location.Address
		}
		// A location phone overrides the tenant default
		if location.Phone != "" {
			ctx[TokenPhone] = location.Phone
		}
	}

	if info != nil {
		if info.FoundingYear > 0 {
			ctx[TokenFoundingYear] = strconv.Itoa(info.FoundingYear)
		}
		if text := utils.YearsInBusinessText(info.FoundingYear, now); text != "" {
			ctx[TokenYearsInBusiness] = text
		}
		if info.RegionalDescriptor != "" {
			ctx[TokenRegionalDescriptor] = info.RegionalDescriptor
		}
	}

	for k, v := range extras {
		ctx[k] = v
	}

	return ctx
}
