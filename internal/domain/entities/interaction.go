package entities

import (
	"time"

	"github.com/google/uuid"
)

// InteractionKind represents the kind of a directional swipe edge
type InteractionKind string

const (
	InteractionLike InteractionKind = "like"
	InteractionSkip InteractionKind = "skip"
)

// Interaction represents a directional Like/Skip edge.
// At most one edge exists per (from, to, kind); recording the same
// interaction again is a no-op.
type Interaction struct {
	ID         uuid.UUID       `json:"id"`
	FromUserID uuid.UUID       `json:"fromUserId"`
	ToUserID   uuid.UUID       `json:"toUserId"`
	Kind       InteractionKind `json:"kind"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// Block represents a one-directional block edge. A blocking B does not
// imply B blocking A.
type Block struct {
	BlockerID uuid.UUID `json:"blockerId"`
	BlockedID uuid.UUID `json:"blockedId"`
	CreatedAt time.Time `json:"createdAt"`
}

// LikeInput represents input for sending a like
type LikeInput struct {
	ToUserID uuid.UUID `json:"toUserId" binding:"required"`
}

// SkipInput represents input for recording a skip
type SkipInput struct {
	ToUserID uuid.UUID `json:"toUserId" binding:"required"`
}

// BlockInput represents input for blocking a user
type BlockInput struct {
	BlockedUserID uuid.UUID `json:"blockedUserId" binding:"required"`
}
