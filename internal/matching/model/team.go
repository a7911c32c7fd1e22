package model

// TeamBalance is a qualitative rating of a composed team.
type TeamBalance string

const (
	BalanceGood TeamBalance = "GOOD"
	BalanceFair TeamBalance = "FAIR"
	BalancePoor TeamBalance = "POOR"
)

// CoverageReport summarizes how well a composed team covers the request.
// Coverage ratios treat empty requirement lists as fully covered.
type CoverageReport struct {
	ExpertiseCovered  []ExpertiseArea `json:"expertise_covered"`
	ExpertiseMissing  []ExpertiseArea `json:"expertise_missing"`
	ExpertiseCoverage float64         `json:"expertise_coverage"`
	LanguagesCovered  []Language      `json:"languages_covered"`
	LanguagesMissing  []Language      `json:"languages_missing"`
	LanguageCoverage  float64         `json:"language_coverage"`
	HasLeadQualified  bool            `json:"has_lead_qualified"`
	TeamBalance       TeamBalance     `json:"team_balance"`
}

// TeamBuildResult is the team builder's output: the chosen members in
// selection order, the coverage report and an overall viability verdict.
type TeamBuildResult struct {
	Team         []MatchResult  `json:"team"`
	Coverage     CoverageReport `json:"coverage_report"`
	TotalScore   float64        `json:"total_score"`
	AverageScore float64        `json:"average_score"`
	Warnings     []string       `json:"warnings"`
	IsViable     bool           `json:"is_viable"`
}
