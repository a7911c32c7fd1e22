package model

import "errors"

var (
	// ErrReviewerNotFound indicates that the requested reviewer does not exist.
	ErrReviewerNotFound = errors.New("reviewer not found")
	// ErrInvalidUserID indicates that the provided user ID is invalid (e.g., empty).
	ErrInvalidUserID = errors.New("invalid user ID")
	// ErrInvalidIsActive indicates that is_active field is missing or invalid.
	ErrInvalidIsActive = errors.New("is_active field is required")
)
