package dto

type ContactRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone"`
	Message      string `json:"message" binding:"required"`
	LocationSlug string `json:"location_slug"`
}

// ApplicationRequest carries the multipart form fields of a job application.
// The resume file itself is read from the multipart body by the handler.
type ApplicationRequest struct {
	Name         string `form:"name" binding:"required"`
	Email        string `form:"email" binding:"required,email"`
	Phone        string `form:"phone"`
	CoverLetter  string `form:"cover_letter"`
	LocationSlug string `form:"location_slug"`
}
