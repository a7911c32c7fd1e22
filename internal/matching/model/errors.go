package model

import "errors"

var (
	// ErrInvalidTargetOrganization indicates a missing target organization id.
	ErrInvalidTargetOrganization = errors.New("target organization id is required")
	// ErrInvalidDateRange indicates that the review end date precedes the start date.
	ErrInvalidDateRange = errors.New("review end date must not precede start date")
	// ErrReviewerNotFound indicates that the requested reviewer does not exist.
	ErrReviewerNotFound = errors.New("reviewer not found")
)
