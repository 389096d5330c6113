package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile stores interests and photos as JSON-encoded text, matching the
// set/list columns used elsewhere in the schema.
type Profile struct {
	UserID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	AgeRange        string    `gorm:"type:varchar(10);not null"`
	Attribute       string    `gorm:"type:varchar(20);not null"`
	SchoolOrWork    string    `gorm:"type:varchar(100);not null"`
	District        string    `gorm:"type:varchar(50);not null"`
	NearestStation  string    `gorm:"type:varchar(50);not null"`
	Interests       string    `gorm:"type:text;not null"`
	Bio             *string   `gorm:"type:varchar(300)"`
	Photos          string    `gorm:"type:text;not null"`
	InstagramHandle *string   `gorm:"type:varchar(30)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
