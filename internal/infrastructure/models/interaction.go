package models

import (
	"time"

	"github.com/google/uuid"
)

// Interaction is a directional Like/Skip edge. The unique index makes
// repeat recordings of the same edge no-ops.
type Interaction struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	FromUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_interaction_edge"`
	ToUserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_interaction_edge"`
	Kind       string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_interaction_edge"`
	CreatedAt  time.Time
}

// Block is a one-directional block edge
type Block struct {
	BlockerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	BlockedID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}
