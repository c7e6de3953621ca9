package gorm

import "time"

// Tour is an ordered sequence of legs forming one themed journey
type Tour struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Title       string    `gorm:"column:title;not null"`
	Description *string   `gorm:"column:description;type:text"`
	ImageURL    *string   `gorm:"column:image_url"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Legs []Leg `gorm:"foreignKey:TourID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (Tour) TableName() string {
	return "tours"
}

// Leg is one directed flight segment within a tour. Order is 1-based and
// unique per tour; legs are replaced wholesale when a tour is edited.
type Leg struct {
	ID            int64   `gorm:"column:id;primaryKey;autoIncrement"`
	TourID        int64   `gorm:"column:tour_id;not null;uniqueIndex:idx_legs_tour_order"`
	DepartureCode string  `gorm:"column:departure_code;type:char(4);not null"`
	ArrivalCode   string  `gorm:"column:arrival_code;type:char(4);not null"`
	Description   *string `gorm:"column:description;type:text"`
	Order         int     `gorm:"column:leg_order;not null;uniqueIndex:idx_legs_tour_order"`

	// Relationships
	Departure Airport `gorm:"foreignKey:DepartureCode;references:Code"`
	Arrival   Airport `gorm:"foreignKey:ArrivalCode;references:Code"`
}

// TableName specifies the table name for GORM
func (Leg) TableName() string {
	return "legs"
}
