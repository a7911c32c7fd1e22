package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avsafety/peer-review/internal/matching/model"
)

func testCriteria() *model.MatchingCriteria {
	return &model.MatchingCriteria{
		TargetOrganizationID: "org_target",
		RequiredExpertise:    []model.ExpertiseArea{model.AreaATS},
		RequiredLanguages:    []model.Language{model.LanguageEN},
		StartDate:            date("2026-03-01"),
		EndDate:              date("2026-03-10"),
		TeamSize:             3,
	}
}

func strongCandidate(userID string) model.ReviewerCandidate {
	return model.ReviewerCandidate{
		UserID:             userID,
		ProfileID:          "p_" + userID,
		FirstName:          "Ada",
		LastName:           "Moreau",
		HomeOrganizationID: "org_home",
		OrganizationName:   "Civil Aviation Authority of Freedonia",
		OrganizationCode:   "CAA-FD",
		YearsExperience:    12,
		ReviewsCompleted:   6,
		IsLeadQualified:    true,
		Expertise: []model.Expertise{
			{Area: model.AreaATS, Level: model.ProficiencyProficient, Years: 10},
		},
		Languages: []model.LanguageSkill{
			{Language: model.LanguageEN, Proficiency: model.LanguageAdvanced, CanConductInterviews: true},
		},
		Availability: []model.AvailabilityPeriod{
			{StartDate: date("2026-03-01"), EndDate: date("2026-03-10"), Type: model.AvailabilityAvailable},
		},
	}
}

func TestEngine_CalculateMatchScore(t *testing.T) {
	e := New(DefaultConfig())

	t.Run("strong candidate gets full breakdown", func(t *testing.T) {
		candidate := strongCandidate("u1")

		result := e.CalculateMatchScore(&candidate, testCriteria())

		assert.InDelta(t, 30.0, result.Breakdown.Expertise, 1e-9)
		assert.InDelta(t, 23.75, result.Breakdown.Language, 1e-9)
		assert.InDelta(t, 25.0, result.Breakdown.Availability, 1e-9)
		assert.InDelta(t, 7.2, result.Breakdown.Experience, 1e-9)
		assert.InDelta(t, 85.95, result.TotalScore, 1e-9)
		assert.InDelta(t, 85.95, result.Percentage, 1e-9)

		assert.True(t, result.IsEligible)
		assert.Nil(t, result.IneligibleReason)
		assert.Empty(t, result.Warnings)

		assert.Equal(t, "Ada Moreau", result.DisplayName)
		assert.Equal(t, "Civil Aviation Authority of Freedonia (CAA-FD)", result.OrganizationLabel)
		assert.Equal(t, "org_home", result.OrganizationID)
		assert.True(t, result.IsLeadQualified)
		assert.Equal(t, 6, result.ReviewsCompleted)
	})

	t.Run("organization label without code", func(t *testing.T) {
		candidate := strongCandidate("u1")
		candidate.OrganizationCode = ""

		result := e.CalculateMatchScore(&candidate, testCriteria())

		assert.Equal(t, "Civil Aviation Authority of Freedonia", result.OrganizationLabel)
	})

	t.Run("soft COI produces a warning but stays eligible", func(t *testing.T) {
		candidate := strongCandidate("u1")
		candidate.Conflicts = []model.ConflictOfInterest{
			{TargetOrganizationID: "org_target", Type: model.ConflictBusinessInterest},
		}

		result := e.CalculateMatchScore(&candidate, testCriteria())

		assert.True(t, result.IsEligible)
		require.Len(t, result.Warnings, 1)
		assert.Contains(t, result.Warnings[0], "waiver")
	})

	t.Run("hard COI makes ineligible with warning", func(t *testing.T) {
		candidate := strongCandidate("u1")
		candidate.Conflicts = []model.ConflictOfInterest{
			{TargetOrganizationID: "org_target", Type: model.ConflictFamilyRelationship},
		}

		result := e.CalculateMatchScore(&candidate, testCriteria())

		assert.False(t, result.IsEligible)
		require.NotNil(t, result.IneligibleReason)
		assert.NotEmpty(t, result.IneligibleReason.FR)
		require.NotEmpty(t, result.Warnings)
		assert.Contains(t, result.Warnings[0], "disqualifying conflict of interest")
	})

	t.Run("missing expertise and limited availability warnings", func(t *testing.T) {
		candidate := strongCandidate("u1")
		candidate.Expertise = nil
		candidate.Availability = []model.AvailabilityPeriod{
			{StartDate: date("2026-03-01"), EndDate: date("2026-03-06"), Type: model.AvailabilityAvailable},
		}

		result := e.CalculateMatchScore(&candidate, testCriteria())

		assert.False(t, result.IsEligible)
		assert.Contains(t, result.Warnings, "missing required expertise: ATS")
		assert.Contains(t, result.Warnings, "limited availability: 60% of review period")
	})

	t.Run("missing language warnings include cannot-conduct", func(t *testing.T) {
		candidate := strongCandidate("u1")
		candidate.Languages = nil

		result := e.CalculateMatchScore(&candidate, testCriteria())

		assert.False(t, result.IsEligible)
		assert.Contains(t, result.Warnings, "missing required languages: EN")
		assert.Contains(t, result.Warnings, "cannot personally conduct the review in the required languages")
	})
}
