package gorm

import (
	"time"

	"github.com/google/uuid"
	gormlib "gorm.io/gorm"

	"vattours/server/internal/constants"
)

type User struct {
	ID         string         `gorm:"column:id;primaryKey;type:uuid"`
	ExternalID string         `gorm:"column:external_id;uniqueIndex;not null"`
	Name       string         `gorm:"column:name;not null"`
	Email      string         `gorm:"column:email;uniqueIndex;not null"`
	AvatarURL  *string        `gorm:"column:avatar_url"`
	Role       constants.Role `gorm:"column:role;type:user_role;default:user"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Badges []UserBadge `gorm:"foreignKey:UserID"`
	Tours  []UserTour  `gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns the primary key so the model works on engines
// without a uuid default (sqlite in tests)
func (u *User) BeforeCreate(tx *gormlib.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
