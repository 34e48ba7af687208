package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mchandler/agency-site-api/internal/api/dto"
	"github.com/mchandler/agency-site-api/internal/domain"
	"github.com/mchandler/agency-site-api/internal/render"
	"github.com/mchandler/agency-site-api/internal/repository"
	"github.com/mchandler/agency-site-api/pkg/logger"
)

// PageService composes full page responses out of resolved content. Every
// HTML fragment goes through the same pipeline: sanitize, interpolate
// template tokens, then rewrite policy links into the location's URL space.
type PageService struct {
	repo    repository.Repository
	content *ContentService
	logger  *logger.Logger
}

func NewPageService(repo repository.Repository, content *ContentService, logger *logger.Logger) *PageService {
	return &PageService{
		repo:    repo,
		content: content,
		logger:  logger,
	}
}

// pageEnv carries the per-request rendering inputs shared by every page
// type: the resolved page meta, the business info record, and the template
// context derived from both.
type pageEnv struct {
	meta *domain.PageMeta
	tctx render.TemplateContext
}

// buildEnv fetches page meta and business info concurrently. Both are
// optional inputs; a miss on either leaves the corresponding tokens
// unresolved rather than failing the page. Pass an empty metaSlug to skip
// the meta lookup.
func (s *PageService) buildEnv(ctx context.Context, tenant *domain.Tenant, location *domain.Location, metaSlug string) *pageEnv {
	var (
		wg   sync.WaitGroup
		meta *domain.PageMeta
		info *domain.BusinessInfo
	)

	var locationID *string
	if location != nil {
		locationID = &location.ID
	}

	if metaSlug != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m, err := s.content.ResolvePageMeta(ctx, tenant.ID, metaSlug, locationID)
			if err == nil {
				meta = m
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		bi, err := s.repo.BusinessInfo().GetByTenant(ctx, tenant.ID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				s.logger.Error("Business info lookup failed", err, zap.String("tenant_id", tenant.ID))
			}
			return
		}
		info = bi
	}()

	wg.Wait()

	return &pageEnv{
		meta: meta,
		tctx: render.BuildContext(tenant, location, info, time.Now(), nil),
	}
}

// renderHTML runs the full HTML pipeline. locationSlug is empty for
// single-location tenants and location-independent pages, in which case
// policy hrefs are left on their global paths.
func renderHTML(html string, tctx render.TemplateContext, locationSlug string) string {
	out := render.SanitizeHTML(html)
	out = render.Interpolate(out, tctx)
	if locationSlug != "" {
		out = render.RewriteLinks(out, locationSlug)
	}
	return out
}

// renderText interpolates tokens in plain-text fields (titles, meta
// descriptions) without HTML sanitization or link rewriting.
func renderText(text string, tctx render.TemplateContext) string {
	return render.Interpolate(text, tctx)
}

func (e *pageEnv) metaResponse(locationSlug string) *dto.PageMetaResponse {
	if e.meta == nil {
		return nil
	}
	return &dto.PageMetaResponse{
		MetaTitle:       renderText(e.meta.MetaTitle, e.tctx),
		MetaDescription: renderText(e.meta.MetaDescription, e.tctx),
		Heading:         renderText(e.meta.Heading, e.tctx),
		Intro:           renderHTML(e.meta.Intro, e.tctx, locationSlug),
	}
}

func policyPath(locationSlug, policySlug string) string {
	if locationSlug == "" {
		return "/policies/" + policySlug
	}
	return "/locations/" + locationSlug + "/policies/" + policySlug
}

func locationSlugOf(location *domain.Location) string {
	if location == nil {
		return ""
	}
	return location.Slug
}

func locationIDOf(location *domain.Location) *string {
	if location == nil {
		return nil
	}
	return &location.ID
}

// LocationLanding composes the landing page for one resolved location: its
// metadata, the policy pages visible to it, and agency structured data.
func (s *PageService) LocationLanding(ctx context.Context, tenant *domain.Tenant, location *domain.Location) *dto.LocationPageResponse {
	env := s.buildEnv(ctx, tenant, location, "home")
	policies := s.content.VisiblePolicies(ctx, tenant.ID, locationIDOf(location))

	links := make([]dto.PolicyLink, len(policies))
	for i, page := range policies {
		links[i] = dto.PolicyLink{
			Slug:     page.Slug,
			Title:    renderText(page.Title, env.tctx),
			Category: page.Category,
			Path:     policyPath(locationSlugOf(location), page.Slug),
		}
	}

	return &dto.LocationPageResponse{
		Location: dto.FromLocation(location),
		Meta:     env.metaResponse(location.Slug),
		Policies: links,
		JSONLD:   render.AgencyJSONLD(tenant, location),
	}
}

// PolicyPage resolves and fully renders one policy page. The location is
// nil for single-location tenants.
func (s *PageService) PolicyPage(ctx context.Context, tenant *domain.Tenant, location *domain.Location, policySlug string) (*dto.PolicyPageResponse, error) {
	page, err := s.content.ResolvePolicy(ctx, tenant.ID, policySlug, locationIDOf(location))
	if err != nil {
		return nil, err
	}

	env := s.buildEnv(ctx, tenant, location, "")
	locationSlug := locationSlugOf(location)

	faqs := make([]dto.FAQResponse, len(page.FAQs))
	for i, item := range page.FAQs {
		faqs[i] = dto.FAQResponse{
			PolicyID:    page.ID,
			PolicySlug:  page.Slug,
			PolicyTitle: page.Title,
			Question:    renderText(item.Question, env.tctx),
			Answer:      renderHTML(item.Answer, env.tctx, locationSlug),
		}
	}

	return &dto.PolicyPageResponse{
		Slug:            page.Slug,
		Category:        page.Category,
		Title:           renderText(page.Title, env.tctx),
		Body:            renderHTML(page.Body, env.tctx, locationSlug),
		FAQs:            faqs,
		MetaTitle:       renderText(page.MetaTitle, env.tctx),
		MetaDescription: renderText(page.MetaDescription, env.tctx),
		JSONLD:          render.ServiceJSONLD(page, tenant),
	}, nil
}

// FAQPage aggregates the FAQs of every visible policy page into one
// rendered collection with FAQPage structured data.
func (s *PageService) FAQPage(ctx context.Context, tenant *domain.Tenant, location *domain.Location) *dto.FAQPageResponse {
	env := s.buildEnv(ctx, tenant, location, "faq")
	locationSlug := locationSlugOf(location)

	faqs := s.content.AggregatedFAQs(ctx, tenant.ID, locationIDOf(location))
	rendered := make([]domain.SourcedFAQ, len(faqs))
	for i, faq := range faqs {
		rendered[i] = faq
		rendered[i].Question = renderText(faq.Question, env.tctx)
		rendered[i].Answer = renderHTML(faq.Answer, env.tctx, locationSlug)
	}

	return &dto.FAQPageResponse{
		Meta:   env.metaResponse(locationSlug),
		FAQs:   dto.FromSourcedFAQs(rendered),
		JSONLD: render.FAQPageJSONLD(rendered),
	}
}

func (s *PageService) GlossaryIndex(ctx context.Context, tenant *domain.Tenant, location *domain.Location) *dto.GlossaryPageResponse {
	env := s.buildEnv(ctx, tenant, location, "glossary")
	locationSlug := locationSlugOf(location)

	terms := s.content.VisibleGlossary(ctx, tenant.ID, locationIDOf(location))
	responses := make([]dto.GlossaryTermResponse, len(terms))
	for i, term := range terms {
		responses[i] = dto.GlossaryTermResponse{
			Slug:       term.Slug,
			Term:       term.Term,
			Definition: renderHTML(term.Definition, env.tctx, locationSlug),
		}
	}

	return &dto.GlossaryPageResponse{
		Meta:  env.metaResponse(locationSlug),
		Terms: responses,
	}
}

func (s *PageService) GlossaryTerm(ctx context.Context, tenant *domain.Tenant, location *domain.Location, slug string) (*dto.GlossaryTermResponse, error) {
	term, err := s.content.ResolveGlossaryTerm(ctx, tenant.ID, slug, locationIDOf(location))
	if err != nil {
		return nil, err
	}

	env := s.buildEnv(ctx, tenant, location, "")
	return &dto.GlossaryTermResponse{
		Slug:       term.Slug,
		Term:       term.Term,
		Definition: renderHTML(term.Definition, env.tctx, locationSlugOf(location)),
	}, nil
}

// BlogIndex lists published posts. Blog content is global; no location
// scoping applies.
func (s *PageService) BlogIndex(ctx context.Context, tenant *domain.Tenant) *dto.BlogIndexResponse {
	env := s.buildEnv(ctx, tenant, nil, "blog")

	posts := s.content.ListBlogPosts(ctx, tenant.ID)
	summaries := make([]dto.BlogPostSummary, len(posts))
	for i := range posts {
		summaries[i] = dto.FromBlogPostSummary(&posts[i])
		summaries[i].Title = renderText(summaries[i].Title, env.tctx)
		summaries[i].Excerpt = renderText(summaries[i].Excerpt, env.tctx)
	}

	return &dto.BlogIndexResponse{
		Meta:  env.metaResponse(""),
		Posts: summaries,
	}
}

func (s *PageService) BlogPost(ctx context.Context, tenant *domain.Tenant, slug string) (*dto.BlogPostResponse, error) {
	post, err := s.content.ResolveBlogPost(ctx, tenant.ID, slug)
	if err != nil {
		return nil, err
	}

	env := s.buildEnv(ctx, tenant, nil, "")
	return &dto.BlogPostResponse{
		Slug:        post.Slug,
		Title:       renderText(post.Title, env.tctx),
		Author:      post.Author,
		Body:        renderHTML(post.Body, env.tctx, ""),
		PublishedAt: post.PublishedAt,
		JSONLD:      render.BlogPostingJSONLD(post, tenant),
	}, nil
}

func (s *PageService) JobPage(ctx context.Context, tenant *domain.Tenant, location *domain.Location, slug string) (*dto.JobPostingResponse, error) {
	job, err := s.content.ResolveJob(ctx, tenant.ID, slug, locationIDOf(location))
	if err != nil {
		return nil, err
	}

	env := s.buildEnv(ctx, tenant, location, "")
	return &dto.JobPostingResponse{
		Slug:           job.Slug,
		Title:          renderText(job.Title, env.tctx),
		Description:    renderHTML(job.Description, env.tctx, locationSlugOf(location)),
		EmploymentType: job.EmploymentType,
	}, nil
}

func (s *PageService) CareersPage(ctx context.Context, tenant *domain.Tenant, location *domain.Location) *dto.CareersPageResponse {
	env := s.buildEnv(ctx, tenant, location, "careers")
	locationSlug := locationSlugOf(location)

	jobs := s.content.VisibleJobs(ctx, tenant.ID, locationIDOf(location))
	responses := make([]dto.JobPostingResponse, len(jobs))
	for i, job := range jobs {
		responses[i] = dto.JobPostingResponse{
			Slug:           job.Slug,
			Title:          renderText(job.Title, env.tctx),
			Description:    renderHTML(job.Description, env.tctx, locationSlug),
			EmploymentType: job.EmploymentType,
		}
	}

	return &dto.CareersPageResponse{
		Meta: env.metaResponse(locationSlug),
		Jobs: responses,
	}
}
