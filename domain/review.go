package domain

import (
	"time"
)

type Review struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	VehicleID uint64    `gorm:"column:vehicle_id;not null;uniqueIndex:idx_reviews_vehicle_user" json:"vehicle_id"`
	UserID    uint      `gorm:"column:user_id;not null;uniqueIndex:idx_reviews_vehicle_user" json:"user_id"`
	Rating    int       `gorm:"column:rating;not null" json:"rating"`
	Title     string    `gorm:"column:title;type:text" json:"title"`
	Comment   string    `gorm:"column:comment;type:text" json:"comment"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Review) TableName() string {
	return "reviews"
}

// ReviewSummary is returned alongside a vehicle's review list.
type ReviewSummary struct {
	VehicleID     uint64  `json:"vehicle_id"`
	ReviewCount   int64   `json:"review_count"`
	AverageRating float64 `json:"average_rating"`
}
