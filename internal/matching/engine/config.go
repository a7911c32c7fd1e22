// Package engine implements the reviewer matching and team composition core:
// multi-criteria scoring, conflict-of-interest classification, eligibility,
// candidate ranking and greedy team building. All logic is pure and
// synchronous; an Engine value is safe for concurrent use.
package engine

import "github.com/avsafety/peer-review/internal/matching/model"

// Config holds the programme-wide scoring and team composition constants.
// Injecting it lets programmes tune thresholds without engine changes.
type Config struct {
	// Dimension maxima. They sum to 100, making the total a percentage scale.
	ExpertiseMax    float64
	LanguageMax     float64
	AvailabilityMax float64
	ExperienceMax   float64

	// Expertise budget split between required and preferred areas.
	RequiredExpertisePool  float64
	PreferredExpertisePool float64

	// Team size bounds; requested sizes are clamped into this range.
	MinTeamSize int
	MaxTeamSize int

	// Years-of-experience ramp. Below MinYearsExperience the years sub-score
	// is zero; it ramps to the midpoint at MidYearsExperience and to the
	// maximum at FullYearsExperience.
	MinYearsExperience  float64
	MidYearsExperience  float64
	FullYearsExperience float64

	// Eligibility thresholds (coverage ratios).
	MinExpertiseCoverage    float64
	MinAvailabilityCoverage float64

	// LowAvailabilityWarning is the coverage below which a warning is added.
	LowAvailabilityWarning float64

	// Greedy team-building weights and incremental-coverage bonuses.
	ScoreWeight        float64
	CoverageWeight     float64
	ExpertiseGapBonus  float64
	LanguageGapBonus   float64
	LeadQualifiedBonus float64
}

// DefaultConfig returns the programme defaults.
func DefaultConfig() Config {
	return Config{
		ExpertiseMax:    40,
		LanguageMax:     25,
		AvailabilityMax: 25,
		ExperienceMax:   10,

		RequiredExpertisePool:  30,
		PreferredExpertisePool: 10,

		MinTeamSize: 2,
		MaxTeamSize: 5,

		MinYearsExperience:  5,
		MidYearsExperience:  10,
		FullYearsExperience: 15,

		MinExpertiseCoverage:    0.5,
		MinAvailabilityCoverage: 0.5,

		LowAvailabilityWarning: 0.8,

		ScoreWeight:        0.7,
		CoverageWeight:     0.3,
		ExpertiseGapBonus:  10,
		LanguageGapBonus:   8,
		LeadQualifiedBonus: 15,
	}
}

// Engine is the matching core. Stateless apart from its configuration.
type Engine struct {
	cfg Config
}

// New creates an engine with the given configuration.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// proficiencyMultiplier scales a required or preferred expertise share.
func proficiencyMultiplier(level model.ProficiencyLevel) float64 {
	switch level {
	case model.ProficiencyBasic:
		return 0.6
	case model.ProficiencyCompetent:
		return 0.8
	case model.ProficiencyProficient:
		return 1.0
	case model.ProficiencyExpert:
		return 1.2
	}
	return 0.6
}

// languageBonus scales the proficiency-dependent part of a language share.
func languageBonus(p model.LanguageProficiency) float64 {
	switch p {
	case model.LanguageBasic:
		return 0.25
	case model.LanguageIntermediate:
		return 0.5
	case model.LanguageAdvanced:
		return 0.8
	case model.LanguageNative:
		return 1.0
	}
	return 0.25
}

// availabilityWeight is the per-day contribution of an availability type.
func availabilityWeight(t model.AvailabilityType) float64 {
	switch t {
	case model.AvailabilityAvailable:
		return 1.0
	case model.AvailabilityTentative:
		return 0.5
	case model.AvailabilityUnavailable, model.AvailabilityOnAssignment:
		return 0.0
	}
	return 0.0
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
