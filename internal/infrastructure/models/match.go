package models

import (
	"time"

	"github.com/google/uuid"
)

// Match holds one row per unordered user pair. The unique pair_key index
// is what serializes concurrent reciprocal-like creation attempts.
type Match struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserAID   uuid.UUID `gorm:"type:uuid;not null;index"`
	UserBID   uuid.UUID `gorm:"type:uuid;not null;index"`
	PairKey   string    `gorm:"type:varchar(80);not null;uniqueIndex"`
	Status    string    `gorm:"type:varchar(20);not null;default:'active'"`
	MatchedAt time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
