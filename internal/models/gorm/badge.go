package gorm

import "time"

// Badge is an award a user can earn, optionally tied to tours
type Badge struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string  `gorm:"column:name;not null;uniqueIndex"`
	Description *string `gorm:"column:description;type:text"`
	IconURL     *string `gorm:"column:icon_url"`
}

// TableName specifies the table name for GORM
func (Badge) TableName() string {
	return "badges"
}

// UserBadge records a badge earned by a user
type UserBadge struct {
	UserID    string    `gorm:"column:user_id;type:uuid;primaryKey"`
	BadgeID   int64     `gorm:"column:badge_id;primaryKey"`
	AwardedAt time.Time `gorm:"column:awarded_at;autoCreateTime"`

	Badge Badge `gorm:"foreignKey:BadgeID"`
}

// TableName specifies the table name for GORM
func (UserBadge) TableName() string {
	return "user_badges"
}

// UserTour records a tour completed by a user
type UserTour struct {
	UserID      string    `gorm:"column:user_id;type:uuid;primaryKey"`
	TourID      int64     `gorm:"column:tour_id;primaryKey"`
	CompletedAt time.Time `gorm:"column:completed_at;autoCreateTime"`

	Tour Tour `gorm:"foreignKey:TourID"`
}

// TableName specifies the table name for GORM
func (UserTour) TableName() string {
	return "user_tours"
}

// TourBadge links a tour to the badges it can award
type TourBadge struct {
	TourID  int64 `gorm:"column:tour_id;primaryKey"`
	BadgeID int64 `gorm:"column:badge_id;primaryKey"`

	Badge Badge `gorm:"foreignKey:BadgeID"`
}

// TableName specifies the table name for GORM
func (TourBadge) TableName() string {
	return "tour_badges"
}
