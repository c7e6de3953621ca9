package gorm

import (
	"time"

	"vattours/server/internal/constants"
)

// Pirep is a pilot's claim of having flown a leg, subject to admin review
type Pirep struct {
	ID          int64                 `gorm:"column:id;primaryKey;autoIncrement"`
	UserID      string                `gorm:"column:user_id;type:uuid;not null;index"`
	LegID       int64                 `gorm:"column:leg_id;not null;index"`
	Callsign    string                `gorm:"column:callsign;type:varchar(12);not null"`
	Comment     *string               `gorm:"column:comment;type:varchar(100)"`
	Status      constants.PirepStatus `gorm:"column:status;type:pirep_status;default:pending;index"`
	SubmittedAt time.Time             `gorm:"column:submitted_at;autoCreateTime"`
	ReviewerID  *string               `gorm:"column:reviewer_id;type:uuid"`
	ReviewedAt  *time.Time            `gorm:"column:reviewed_at"`
	ReviewNote  *string               `gorm:"column:review_note;type:varchar(100)"`

	// Relationships
	User     User  `gorm:"foreignKey:UserID"`
	Leg      Leg   `gorm:"foreignKey:LegID"`
	Reviewer *User `gorm:"foreignKey:ReviewerID"`
}

// TableName specifies the table name for GORM
func (Pirep) TableName() string {
	return "pireps"
}
