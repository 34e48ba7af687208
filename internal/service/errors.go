package service

import "errors"

var (
	// Location errors
	ErrLocationNotFound = errors.New("location not found")

	// Content errors
	ErrContentNotFound = errors.New("content not found")
	ErrJobNotFound     = errors.New("job posting not found")

	// Configuration errors
	ErrTenantNotConfigured = errors.New("tenant not configured")
)
