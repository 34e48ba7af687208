package dto

import (
	"github.com/mchandler/agency-site-api/internal/domain"
)

func FromLocation(location *domain.Location) LocationResponse {
	return LocationResponse{
		ID:            location.ID,
		Slug:          location.Slug,
		City:          location.City,
		State:         location.State,
		Address:       location.Address,
		Phone:         location.Phone,
		BusinessHours: location.BusinessHours,
	}
}

func FromLocations(locations []domain.Location) []LocationResponse {
	responses := make([]LocationResponse, len(locations))
	for i := range locations {
		responses[i] = FromLocation(&locations[i])
	}
	return responses
}

func FromPageMeta(meta *domain.PageMeta) *PageMetaResponse {
	if meta == nil {
		return nil
	}
	return &PageMetaResponse{
		MetaTitle:       meta.MetaTitle,
		MetaDescription: meta.MetaDescription,
		Heading:         meta.Heading,
		Intro:           meta.Intro,
	}
}

func FromSourcedFAQs(faqs []domain.SourcedFAQ) []FAQResponse {
	responses := make([]FAQResponse, len(faqs))
	for i, faq := range faqs {
		responses[i] = FAQResponse{
			PolicyID:    faq.PolicyID,
			PolicySlug:  faq.PolicySlug,
			PolicyTitle: faq.PolicyTitle,
			Question:    faq.Question,
			Answer:      faq.Answer,
		}
	}
	return responses
}

func FromGlossaryTerm(term *domain.GlossaryTerm) GlossaryTermResponse {
	return GlossaryTermResponse{
		Slug:       term.Slug,
		Term:       term.Term,
		Definition: term.Definition,
	}
}

func FromGlossaryTerms(terms []domain.GlossaryTerm) []GlossaryTermResponse {
	responses := make([]GlossaryTermResponse, len(terms))
	for i := range terms {
		responses[i] = FromGlossaryTerm(&terms[i])
	}
	return responses
}

func FromBlogPostSummary(post *domain.BlogPost) BlogPostSummary {
	return BlogPostSummary{
		Slug:        post.Slug,
		Title:       post.Title,
		Author:      post.Author,
		Excerpt:     post.Excerpt,
		PublishedAt: post.PublishedAt,
	}
}

func FromBlogPostSummaries(posts []domain.BlogPost) []BlogPostSummary {
	responses := make([]BlogPostSummary, len(posts))
	for i := range posts {
		responses[i] = FromBlogPostSummary(&posts[i])
	}
	return responses
}

func FromJobPosting(posting *domain.JobPosting) JobPostingResponse {
	return JobPostingResponse{
		Slug:           posting.Slug,
		Title:          posting.Title,
		Description:    posting.Description,
		EmploymentType: posting.EmploymentType,
	}
}

func FromJobPostings(postings []domain.JobPosting) []JobPostingResponse {
	responses := make([]JobPostingResponse, len(postings))
	for i := range postings {
		responses[i] = FromJobPosting(&postings[i])
	}
	return responses
}

func FromSearchDocuments(docs []domain.SearchDocument) []SearchResult {
	results := make([]SearchResult, len(docs))
	for i, doc := range docs {
		results[i] = SearchResult{
			Kind:  string(doc.Kind),
			Slug:  doc.Slug,
			Title: doc.Title,
			Path:  doc.Path,
		}
	}
	return results
}

func FromContactSubmission(submission *domain.ContactSubmission) *SubmissionEvent {
	return &SubmissionEvent{
		ID:          submission.ID,
		TenantID:    submission.TenantID,
		Kind:        string(domain.SubmissionKindContact),
		Name:        submission.Name,
		Email:       submission.Email,
		LocationID:  submission.LocationID,
		SubmittedAt: submission.SubmittedAt,
	}
}

func FromJobApplication(application *domain.JobApplication) *SubmissionEvent {
	return &SubmissionEvent{
		ID:          application.ID,
		TenantID:    application.TenantID,
		Kind:        string(domain.SubmissionKindApplication),
		Name:        application.Name,
		Email:       application.Email,
		LocationID:  application.LocationID,
		SubmittedAt: application.SubmittedAt,
	}
}
