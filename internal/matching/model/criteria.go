package model

import "time"

// MatchingCriteria describes an assignment request against which candidates
// are scored. Empty required-expertise or required-language lists mean
// "no constraint" and yield full score for that dimension.
type MatchingCriteria struct {
	TargetOrganizationID string          `json:"target_organization_id"`
	RequiredExpertise    []ExpertiseArea `json:"required_expertise"`
	PreferredExpertise   []ExpertiseArea `json:"preferred_expertise"`
	RequiredLanguages    []Language      `json:"required_languages"`
	StartDate            time.Time       `json:"start_date"`
	EndDate              time.Time       `json:"end_date"`
	TeamSize             int             `json:"team_size"`
	MustIncludeReviewers []string        `json:"must_include_reviewers"`
	ExcludeReviewers     []string        `json:"exclude_reviewers"`
}
