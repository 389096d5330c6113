package repositories

import (
	"context"

	"github.com/google/uuid"
	"tokyo-friends.backend/internal/domain/entities"
)

// CommunityRepository defines community and membership operations
type CommunityRepository interface {
	// List returns communities, participant count descending. Empty
	// district/tag filters match everything.
	List(ctx context.Context, district, interestTag string) ([]*entities.Community, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Community, error)
	// Join and Leave are idempotent.
	Join(ctx context.Context, userID, communityID uuid.UUID) error
	Leave(ctx context.Context, userID, communityID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Community, error)
}
