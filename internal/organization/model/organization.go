package model

import (
	"time"

	"gorm.io/gorm"
)

// Organization represents an audited organization (civil aviation authority
// or service provider) in the system. Matches the organizations table schema.
type Organization struct {
	OrgID     string    `gorm:"primaryKey;column:org_id;type:varchar(255)"                json:"org_id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"                    json:"name"`
	Code      string    `gorm:"column:code;type:varchar(32)"                              json:"code"`
	State     string    `gorm:"column:state;type:varchar(255);not null"                   json:"state"`
	IsActive  bool      `gorm:"column:is_active;type:boolean;not null;default:true"       json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (Organization) TableName() string {
	return "organizations"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (o *Organization) BeforeUpdate(tx *gorm.DB) error {
	o.UpdatedAt = time.Now()
	return nil
}
