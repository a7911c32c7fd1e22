package engine

import (
	"fmt"
	"strings"

	"github.com/avsafety/peer-review/internal/matching/model"
)

// organizationLabel renders "Name (CODE)" or just "Name" without a code.
func organizationLabel(name, code string) string {
	if code != "" {
		return fmt.Sprintf("%s (%s)", name, code)
	}
	return name
}

func joinAreas(areas []model.ExpertiseArea) string {
	parts := make([]string, len(areas))
	for i, a := range areas {
		parts[i] = string(a)
	}
	return strings.Join(parts, ", ")
}

func joinLanguages(langs []model.Language) string {
	parts := make([]string, len(langs))
	for i, l := range langs {
		parts[i] = string(l)
	}
	return strings.Join(parts, ", ")
}

// CalculateMatchScore produces the full match result for one candidate
// against one set of criteria.
func (e *Engine) CalculateMatchScore(
	candidate *model.ReviewerCandidate,
	criteria *model.MatchingCriteria,
) model.MatchResult {
	expertise := e.ScoreExpertise(candidate.Expertise, criteria.RequiredExpertise, criteria.PreferredExpertise)
	language := e.ScoreLanguages(candidate.Languages, criteria.RequiredLanguages)
	availability := e.ScoreAvailability(candidate.Availability, criteria.StartDate, criteria.EndDate)
	experience := e.ScoreExperience(candidate.YearsExperience, candidate.ReviewsCompleted)

	coi := e.CheckCOI(candidate.Conflicts, criteria.TargetOrganizationID, candidate.HomeOrganizationID)

	warnings := make([]string, 0)
	if coi.HasConflict && coi.Severity != nil {
		switch *coi.Severity {
		case model.SeverityHard:
			warnings = append(warnings, fmt.Sprintf("disqualifying conflict of interest: %s", coi.Reason.EN))
		case model.SeveritySoft:
			warnings = append(warnings, fmt.Sprintf("conflict of interest requires waiver: %s", coi.Reason.EN))
		}
	}
	if len(expertise.RequiredMissing) > 0 {
		warnings = append(warnings, fmt.Sprintf("missing required expertise: %s", joinAreas(expertise.RequiredMissing)))
	}
	if len(language.Missing) > 0 {
		warnings = append(warnings, fmt.Sprintf("missing required languages: %s", joinLanguages(language.Missing)))
	}
	if availability.Coverage < e.cfg.LowAvailabilityWarning {
		warnings = append(warnings, fmt.Sprintf("limited availability: %.0f%% of review period", availability.Coverage*100))
	}
	if !language.CanConductReview {
		warnings = append(warnings, "cannot personally conduct the review in the required languages")
	}

	isEligible, reason := e.DetermineEligibility(coi, expertise, language, availability)

	total := expertise.Score + language.Score + availability.Score + experience

	return model.MatchResult{
		UserID:            candidate.UserID,
		ProfileID:         candidate.ProfileID,
		DisplayName:       strings.TrimSpace(candidate.FirstName + " " + candidate.LastName),
		OrganizationID:    candidate.HomeOrganizationID,
		OrganizationLabel: organizationLabel(candidate.OrganizationName, candidate.OrganizationCode),
		TotalScore:        total,
		Percentage:        total / (e.cfg.ExpertiseMax + e.cfg.LanguageMax + e.cfg.AvailabilityMax + e.cfg.ExperienceMax) * 100,
		Breakdown: model.ScoreBreakdown{
			Expertise:    expertise.Score,
			Language:     language.Score,
			Availability: availability.Score,
			Experience:   experience,
		},
		Expertise:        expertise,
		Language:         language,
		Availability:     availability,
		COI:              coi,
		Warnings:         warnings,
		IsEligible:       isEligible,
		IneligibleReason: reason,
		IsLeadQualified:  candidate.IsLeadQualified,
		ReviewsCompleted: candidate.ReviewsCompleted,
	}
}
