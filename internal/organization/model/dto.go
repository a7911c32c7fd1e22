// Package model provides domain models and DTOs for organization module.
package model

// AddOrganizationRequest represents the request to register an organization.
type AddOrganizationRequest struct {
	OrgID string `json:"org_id" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Code  string `json:"code"`
	State string `json:"state" binding:"required"`
}

// OrganizationResponse represents the response after creating or getting an
// organization.
type OrganizationResponse struct {
	OrgID    string `json:"org_id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	State    string `json:"state"`
	IsActive bool   `json:"is_active"`
}
