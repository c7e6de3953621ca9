package gorm

import "time"

// Airport represents an airfield reachable by tour legs, keyed by its
// 4-character ICAO-style code
type Airport struct {
	Code      string    `gorm:"column:code;primaryKey;type:char(4)"`
	Name      string    `gorm:"column:name;type:text;not null"`
	Country   string    `gorm:"column:country;type:char(2);not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Airport) TableName() string {
	return "airports"
}
