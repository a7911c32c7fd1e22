package model

import "errors"

var (
	// ErrOrganizationNotFound indicates that the requested organization does not exist.
	ErrOrganizationNotFound = errors.New("organization not found")
	// ErrOrganizationExists indicates that the org_id is already registered.
	ErrOrganizationExists = errors.New("organization already exists")
	// ErrInvalidOrgID indicates that the provided org_id is invalid (e.g., empty).
	ErrInvalidOrgID = errors.New("invalid organization ID")
)
