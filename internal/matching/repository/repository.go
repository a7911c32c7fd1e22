// Package repository provides the candidate pool loader for matching module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	matchingModel "github.com/avsafety/peer-review/internal/matching/model"
	orgModel "github.com/avsafety/peer-review/internal/organization/model"
	reviewerModel "github.com/avsafety/peer-review/internal/reviewer/model"
)

// Repository defines the interface for matching data access operations.
type Repository interface {
	// LoadCandidates returns all active reviewers as fully assembled
	// engine candidates.
	LoadCandidates(ctx context.Context) ([]matchingModel.ReviewerCandidate, error)

	// LoadCandidate returns one reviewer as an engine candidate.
	LoadCandidate(ctx context.Context, userID string) (*matchingModel.ReviewerCandidate, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new matching repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// LoadCandidates returns all active reviewers as engine candidates.
func (r *repository) LoadCandidates(ctx context.Context) ([]matchingModel.ReviewerCandidate, error) {
	r.logger.Debugw("LoadCandidates called")

	var reviewers []reviewerModel.Reviewer
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("user_id ASC").
		Find(&reviewers).Error
	if err != nil {
		r.logger.Errorw("LoadCandidates database error", "error", err)
		return nil, err
	}

	candidates, err := r.assemble(ctx, reviewers)
	if err != nil {
		return nil, err
	}

	r.logger.Debugw("LoadCandidates completed", "count", len(candidates))
	return candidates, nil
}

// LoadCandidate returns one reviewer as an engine candidate.
func (r *repository) LoadCandidate(ctx context.Context, userID string) (*matchingModel.ReviewerCandidate, error) {
	r.logger.Debugw("LoadCandidate called", "user_id", userID)

	var reviewer reviewerModel.Reviewer
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&reviewer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, matchingModel.ErrReviewerNotFound
		}
		r.logger.Errorw("LoadCandidate database error", "user_id", userID, "error", err)
		return nil, err
	}

	candidates, err := r.assemble(ctx, []reviewerModel.Reviewer{reviewer})
	if err != nil {
		return nil, err
	}

	return &candidates[0], nil
}

// assemble joins reviewer rows with their organizations and child records.
func (r *repository) assemble(
	ctx context.Context,
	reviewers []reviewerModel.Reviewer,
) ([]matchingModel.ReviewerCandidate, error) {
	if len(reviewers) == 0 {
		return []matchingModel.ReviewerCandidate{}, nil
	}

	userIDs := make([]string, len(reviewers))
	orgIDs := make([]string, 0, len(reviewers))
	seenOrg := make(map[string]bool, len(reviewers))
	for i, rev := range reviewers {
		userIDs[i] = rev.UserID
		if !seenOrg[rev.HomeOrgID] {
			seenOrg[rev.HomeOrgID] = true
			orgIDs = append(orgIDs, rev.HomeOrgID)
		}
	}

	var orgs []orgModel.Organization
	if err := r.db.WithContext(ctx).
		Where("org_id IN ?", orgIDs).
		Find(&orgs).Error; err != nil {
		return nil, err
	}
	orgsByID := make(map[string]orgModel.Organization, len(orgs))
	for _, o := range orgs {
		orgsByID[o.OrgID] = o
	}

	var expertise []reviewerModel.ReviewerExpertise
	if err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("id ASC").
		Find(&expertise).Error; err != nil {
		return nil, err
	}
	expertiseByUser := make(map[string][]matchingModel.Expertise)
	for _, e := range expertise {
		expertiseByUser[e.UserID] = append(expertiseByUser[e.UserID], matchingModel.Expertise{
			Area:  matchingModel.ExpertiseArea(e.Area),
			Level: matchingModel.ProficiencyLevel(e.Level),
			Years: e.Years,
		})
	}

	var languages []reviewerModel.ReviewerLanguage
	if err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("id ASC").
		Find(&languages).Error; err != nil {
		return nil, err
	}
	languagesByUser := make(map[string][]matchingModel.LanguageSkill)
	for _, l := range languages {
		languagesByUser[l.UserID] = append(languagesByUser[l.UserID], matchingModel.LanguageSkill{
			Language:             matchingModel.Language(l.Language),
			Proficiency:          matchingModel.LanguageProficiency(l.Proficiency),
			CanConductInterviews: l.CanConductInterviews,
		})
	}

	var availability []reviewerModel.ReviewerAvailability
	if err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("id ASC").
		Find(&availability).Error; err != nil {
		return nil, err
	}
	availabilityByUser := make(map[string][]matchingModel.AvailabilityPeriod)
	for _, a := range availability {
		availabilityByUser[a.UserID] = append(availabilityByUser[a.UserID], matchingModel.AvailabilityPeriod{
			StartDate: a.StartDate,
			EndDate:   a.EndDate,
			Type:      matchingModel.AvailabilityType(a.Type),
			Notes:     a.Notes,
		})
	}

	var conflicts []reviewerModel.ReviewerConflict
	if err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("id ASC").
		Find(&conflicts).Error; err != nil {
		return nil, err
	}
	conflictsByUser := make(map[string][]matchingModel.ConflictOfInterest)
	for _, c := range conflicts {
		conflictsByUser[c.UserID] = append(conflictsByUser[c.UserID], matchingModel.ConflictOfInterest{
			TargetOrganizationID: c.TargetOrgID,
			Type:                 matchingModel.ConflictType(c.Type),
		})
	}

	candidates := make([]matchingModel.ReviewerCandidate, 0, len(reviewers))
	for _, rev := range reviewers {
		org := orgsByID[rev.HomeOrgID]
		candidates = append(candidates, matchingModel.ReviewerCandidate{
			UserID:             rev.UserID,
			ProfileID:          rev.ProfileID,
			FirstName:          rev.FirstName,
			LastName:           rev.LastName,
			HomeOrganizationID: rev.HomeOrgID,
			OrganizationName:   org.Name,
			OrganizationCode:   org.Code,
			YearsExperience:    rev.YearsExperience,
			ReviewsCompleted:   rev.ReviewsCompleted,
			IsLeadQualified:    rev.IsLeadQualified,
			Expertise:          expertiseByUser[rev.UserID],
			Languages:          languagesByUser[rev.UserID],
			Availability:       availabilityByUser[rev.UserID],
			Conflicts:          conflictsByUser[rev.UserID],
		})
	}

	return candidates, nil
}
