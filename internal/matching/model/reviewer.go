// Package model provides domain models and DTOs for the matching module.
package model

import "time"

// ExpertiseArea identifies an audit expertise area (ICAO oversight taxonomy).
type ExpertiseArea string

// Known expertise areas. The engine matches areas by equality, so values
// outside this list still flow through scoring unchanged.
const (
	AreaLEG ExpertiseArea = "LEG" // primary aviation legislation
	AreaORG ExpertiseArea = "ORG" // civil aviation organization
	AreaPEL ExpertiseArea = "PEL" // personnel licensing
	AreaOPS ExpertiseArea = "OPS" // aircraft operations
	AreaAIR ExpertiseArea = "AIR" // airworthiness
	AreaAIG ExpertiseArea = "AIG" // accident investigation
	AreaANS ExpertiseArea = "ANS" // air navigation services
	AreaATS ExpertiseArea = "ATS" // air traffic services
	AreaAGA ExpertiseArea = "AGA" // aerodromes and ground aids
)

// ProficiencyLevel grades a reviewer's expertise in one area.
type ProficiencyLevel string

const (
	ProficiencyBasic      ProficiencyLevel = "BASIC"
	ProficiencyCompetent  ProficiencyLevel = "COMPETENT"
	ProficiencyProficient ProficiencyLevel = "PROFICIENT"
	ProficiencyExpert     ProficiencyLevel = "EXPERT"
)

// Language identifies a working language by ISO 639-1 style code.
type Language string

const (
	LanguageEN Language = "EN"
	LanguageFR Language = "FR"
	LanguageES Language = "ES"
	LanguageRU Language = "RU"
	LanguageAR Language = "AR"
	LanguageZH Language = "ZH"
)

// LanguageProficiency grades a reviewer's command of one language.
type LanguageProficiency string

const (
	LanguageBasic        LanguageProficiency = "BASIC"
	LanguageIntermediate LanguageProficiency = "INTERMEDIATE"
	LanguageAdvanced     LanguageProficiency = "ADVANCED"
	LanguageNative       LanguageProficiency = "NATIVE"
)

// AvailabilityType classifies a declared availability period.
type AvailabilityType string

const (
	AvailabilityAvailable    AvailabilityType = "AVAILABLE"
	AvailabilityTentative    AvailabilityType = "TENTATIVE"
	AvailabilityUnavailable  AvailabilityType = "UNAVAILABLE"
	AvailabilityOnAssignment AvailabilityType = "ON_ASSIGNMENT"
)

// ConflictType classifies a declared conflict of interest.
type ConflictType string

const (
	ConflictHomeOrganization   ConflictType = "HOME_ORGANIZATION"
	ConflictFamilyRelationship ConflictType = "FAMILY_RELATIONSHIP"
	ConflictFormerEmployee     ConflictType = "FORMER_EMPLOYEE"
	ConflictBusinessInterest   ConflictType = "BUSINESS_INTEREST"
	ConflictRecentReview       ConflictType = "RECENT_REVIEW"
	ConflictOther              ConflictType = "OTHER"

	// Legacy conflict types still present in historical declarations.
	ConflictEmployment     ConflictType = "EMPLOYMENT"
	ConflictFinancial      ConflictType = "FINANCIAL"
	ConflictContractual    ConflictType = "CONTRACTUAL"
	ConflictPersonal       ConflictType = "PERSONAL"
	ConflictPreviousReview ConflictType = "PREVIOUS_REVIEW"
)

// Expertise is one expertise record on a reviewer profile.
type Expertise struct {
	Area  ExpertiseArea    `json:"area"`
	Level ProficiencyLevel `json:"level"`
	Years int              `json:"years"`
}

// LanguageSkill is one language record on a reviewer profile.
type LanguageSkill struct {
	Language             Language            `json:"language"`
	Proficiency          LanguageProficiency `json:"proficiency"`
	CanConductInterviews bool                `json:"can_conduct_interviews"`
}

// AvailabilityPeriod is one declared availability window.
type AvailabilityPeriod struct {
	StartDate time.Time        `json:"start_date"`
	EndDate   time.Time        `json:"end_date"`
	Type      AvailabilityType `json:"type"`
	Notes     string           `json:"notes"`
}

// ConflictOfInterest is one declared conflict entry.
type ConflictOfInterest struct {
	TargetOrganizationID string       `json:"target_organization_id"`
	Type                 ConflictType `json:"type"`
}

// ReviewerCandidate is a reviewer's full profile as seen by the engine.
// Read-only input sourced from the reviewer store; never mutated by the core.
// HomeOrganizationID is always set; collections may be empty.
type ReviewerCandidate struct {
	UserID             string               `json:"user_id"`
	ProfileID          string               `json:"profile_id"`
	FirstName          string               `json:"first_name"`
	LastName           string               `json:"last_name"`
	HomeOrganizationID string               `json:"home_organization_id"`
	OrganizationName   string               `json:"organization_name"`
	OrganizationCode   string               `json:"organization_code"`
	YearsExperience    float64              `json:"years_experience"`
	ReviewsCompleted   int                  `json:"reviews_completed"`
	IsLeadQualified    bool                 `json:"is_lead_qualified"`
	Expertise          []Expertise          `json:"expertise"`
	Languages          []LanguageSkill      `json:"languages"`
	Availability       []AvailabilityPeriod `json:"availability"`
	Conflicts          []ConflictOfInterest `json:"conflicts_of_interest"`
}
