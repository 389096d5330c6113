package models

import (
	"time"

	"github.com/google/uuid"
)

type Community struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"type:varchar(100);not null"`
	District         string    `gorm:"type:varchar(50);not null;index"`
	InterestTag      string    `gorm:"type:varchar(50);not null;index"`
	ParticipantCount int       `gorm:"not null;default:0"`
	CreatedAt        time.Time
}

// CommunityMember links users to communities; the composite key makes
// join/leave idempotent.
type CommunityMember struct {
	CommunityID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt   time.Time
}
