package repositories

import (
	"context"

	"github.com/google/uuid"
	"tokyo-friends.backend/internal/domain/entities"
)

// MatchRepository defines match record operations. Implementations must
// guarantee at most one match per unordered pair even under concurrent
// Create calls (unique pair key or pair-scoped lock), returning
// ErrAlreadyExists to the loser.
type MatchRepository interface {
	Create(ctx context.Context, match *entities.Match) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Match, error)
	GetByPairKey(ctx context.Context, pairKey string) (*entities.Match, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.MatchStatus) error
	// ListByUser returns matches involving the user, newest first,
	// all statuses included.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Match, int64, error)
}
