package model

import (
	"time"

	"gorm.io/gorm"
)

// Reviewer represents a certified reviewer entity in the system.
// Matches the reviewers table schema.
type Reviewer struct {
	UserID           string    `gorm:"primaryKey;column:user_id;type:varchar(255)"                                     json:"user_id"`
	ProfileID        string    `gorm:"column:profile_id;type:varchar(255);not null;uniqueIndex:idx_reviewers_profile" json:"profile_id"`
	FirstName        string    `gorm:"column:first_name;type:varchar(255);not null"                                    json:"first_name"`
	LastName         string    `gorm:"column:last_name;type:varchar(255);not null"                                     json:"last_name"`
	HomeOrgID        string    `gorm:"column:home_org_id;type:varchar(255);not null;index:idx_reviewers_home_org"      json:"home_org_id"`
	YearsExperience  float64   `gorm:"column:years_experience;type:numeric;not null;default:0"                         json:"years_experience"`
	ReviewsCompleted int       `gorm:"column:reviews_completed;type:integer;not null;default:0"                        json:"reviews_completed"`
	IsLeadQualified  bool      `gorm:"column:is_lead_qualified;type:boolean;not null;default:false"                    json:"is_lead_qualified"`
	IsActive         bool      `gorm:"column:is_active;type:boolean;not null;default:true"                             json:"is_active"`
	CreatedAt        time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"                       json:"-"`
	UpdatedAt        time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()"                       json:"-"`
}

// TableName specifies the table name for GORM.
func (Reviewer) TableName() string {
	return "reviewers"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (r *Reviewer) BeforeUpdate(tx *gorm.DB) error {
	r.UpdatedAt = time.Now()
	return nil
}

// ReviewerExpertise is one expertise record on a reviewer profile.
// Matches the reviewer_expertise table schema.
type ReviewerExpertise struct {
	ID     uint   `gorm:"primaryKey;column:id"                                             json:"-"`
	UserID string `gorm:"column:user_id;type:varchar(255);not null;index:idx_expertise_user" json:"user_id"`
	Area   string `gorm:"column:area;type:varchar(32);not null"                            json:"area"`
	Level  string `gorm:"column:level;type:varchar(32);not null"                           json:"level"`
	Years  int    `gorm:"column:years;type:integer;not null;default:0"                     json:"years"`
}

// TableName specifies the table name for GORM.
func (ReviewerExpertise) TableName() string {
	return "reviewer_expertise"
}

// ReviewerLanguage is one language record on a reviewer profile.
// Matches the reviewer_languages table schema.
type ReviewerLanguage struct {
	ID                   uint   `gorm:"primaryKey;column:id"                                              json:"-"`
	UserID               string `gorm:"column:user_id;type:varchar(255);not null;index:idx_languages_user" json:"user_id"`
	Language             string `gorm:"column:language;type:varchar(8);not null"                          json:"language"`
	Proficiency          string `gorm:"column:proficiency;type:varchar(32);not null"                      json:"proficiency"`
	CanConductInterviews bool   `gorm:"column:can_conduct_interviews;type:boolean;not null;default:false" json:"can_conduct_interviews"`
}

// TableName specifies the table name for GORM.
func (ReviewerLanguage) TableName() string {
	return "reviewer_languages"
}

// ReviewerAvailability is one declared availability period.
// Matches the availability_periods table schema.
type ReviewerAvailability struct {
	ID        uint      `gorm:"primaryKey;column:id"                                                  json:"-"`
	UserID    string    `gorm:"column:user_id;type:varchar(255);not null;index:idx_availability_user" json:"user_id"`
	StartDate time.Time `gorm:"column:start_date;type:date;not null"                                  json:"start_date"`
	EndDate   time.Time `gorm:"column:end_date;type:date;not null"                                    json:"end_date"`
	Type      string    `gorm:"column:type;type:varchar(32);not null"                                 json:"type"`
	Notes     string    `gorm:"column:notes;type:text"                                                json:"notes"`
}

// TableName specifies the table name for GORM.
func (ReviewerAvailability) TableName() string {
	return "availability_periods"
}

// ReviewerConflict is one declared conflict-of-interest entry.
// Matches the conflicts_of_interest table schema.
type ReviewerConflict struct {
	ID          uint   `gorm:"primaryKey;column:id"                                               json:"-"`
	UserID      string `gorm:"column:user_id;type:varchar(255);not null;index:idx_conflicts_user" json:"user_id"`
	TargetOrgID string `gorm:"column:target_org_id;type:varchar(255);not null"                    json:"target_org_id"`
	Type        string `gorm:"column:type;type:varchar(32);not null"                              json:"type"`
}

// TableName specifies the table name for GORM.
func (ReviewerConflict) TableName() string {
	return "conflicts_of_interest"
}
