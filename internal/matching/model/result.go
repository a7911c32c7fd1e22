package model

// COISeverity grades a conflict of interest.
type COISeverity string

const (
	// SeverityHard disqualifies outright and cannot be waived.
	SeverityHard COISeverity = "HARD"
	// SeveritySoft produces a warning but leaves the reviewer eligible.
	SeveritySoft COISeverity = "SOFT"
)

// Reason is a bilingual human-readable explanation (EN/FR, the programme's
// working languages).
type Reason struct {
	EN string `json:"en"`
	FR string `json:"fr"`
}

// COIStatus is the classifier's verdict for one candidate against one target
// organization. Severity is nil when no conflict exists.
type COIStatus struct {
	HasConflict bool          `json:"has_conflict"`
	Severity    *COISeverity  `json:"severity,omitempty"`
	Type        *ConflictType `json:"type,omitempty"`
	Reason      *Reason       `json:"reason,omitempty"`
	IsWaivable  bool          `json:"is_waivable"`
}

// ExpertiseDetails records how the expertise dimension was scored.
type ExpertiseDetails struct {
	Score            float64         `json:"score"`
	RequiredMatched  []ExpertiseArea `json:"required_matched"`
	RequiredMissing  []ExpertiseArea `json:"required_missing"`
	PreferredMatched []ExpertiseArea `json:"preferred_matched"`
}

// LanguageDetails records how the language dimension was scored.
type LanguageDetails struct {
	Score            float64    `json:"score"`
	Matched          []Language `json:"matched"`
	Missing          []Language `json:"missing"`
	CanConductReview bool       `json:"can_conduct_review"`
}

// AvailabilityStatus records availability coverage over the review window.
// AvailableDays is the weighted day count (TENTATIVE days count 0.5).
type AvailabilityStatus struct {
	Score         float64  `json:"score"`
	Coverage      float64  `json:"coverage"`
	AvailableDays float64  `json:"available_days"`
	TotalDays     int      `json:"total_days"`
	Conflicts     []string `json:"conflicts"`
}

// ScoreBreakdown holds the four dimension scores. The maxima (40/25/25/10)
// sum to 100, so TotalScore is directly a 0-100 scale.
type ScoreBreakdown struct {
	Expertise    float64 `json:"expertise"`
	Language     float64 `json:"language"`
	Availability float64 `json:"availability"`
	Experience   float64 `json:"experience"`
}

// MatchResult is the engine's full per-candidate output. Computed fresh per
// call; never cached or persisted by the engine.
type MatchResult struct {
	UserID            string             `json:"user_id"`
	ProfileID         string             `json:"profile_id"`
	DisplayName       string             `json:"display_name"`
	OrganizationID    string             `json:"organization_id"`
	OrganizationLabel string             `json:"organization_label"`
	TotalScore        float64            `json:"total_score"`
	Percentage        float64            `json:"percentage"`
	Breakdown         ScoreBreakdown     `json:"breakdown"`
	Expertise         ExpertiseDetails   `json:"expertise_details"`
	Language          LanguageDetails    `json:"language_details"`
	Availability      AvailabilityStatus `json:"availability_details"`
	COI               COIStatus          `json:"coi_status"`
	Warnings          []string           `json:"warnings"`
	IsEligible        bool               `json:"is_eligible"`
	IneligibleReason  *Reason            `json:"ineligible_reason,omitempty"`
	IsLeadQualified   bool               `json:"is_lead_qualified"`
	ReviewsCompleted  int                `json:"reviews_completed"`
}

// AssignabilityCheck is the single-candidate verdict for CanAssignReviewer.
type AssignabilityCheck struct {
	CanAssign bool     `json:"can_assign"`
	Reasons   []string `json:"reasons"`
}
