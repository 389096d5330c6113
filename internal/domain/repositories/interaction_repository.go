package repositories

import (
	"context"

	"github.com/google/uuid"
)

// InteractionRepository defines the swipe/block ledger operations
type InteractionRepository interface {
	// RecordLike stores a Like edge and reports whether the reverse edge
	// already exists. Recording the same Like twice is a no-op and does not
	// toggle reciprocity.
	RecordLike(ctx context.Context, from, to uuid.UUID) (reciprocated bool, err error)
	// RecordSkip stores a Skip edge. Skips never interact with Like state;
	// they are a display-suppression hint.
	RecordSkip(ctx context.Context, from, to uuid.UUID) error
	RecordBlock(ctx context.Context, blocker, blocked uuid.UUID) error
	RemoveBlock(ctx context.Context, blocker, blocked uuid.UUID) error
	// IsBlocked reports whether viewer has blocked candidate (directional).
	IsBlocked(ctx context.Context, viewer, candidate uuid.UUID) (bool, error)
	ListBlocked(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
