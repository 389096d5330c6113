package repositories

import (
	"context"

	"github.com/google/uuid"
	"tokyo-friends.backend/internal/domain/entities"
)

// ProfileRepository defines profile data operations
type ProfileRepository interface {
	// Create stores a new profile; a second profile for the same user
	// returns ErrAlreadyExists.
	Create(ctx context.Context, profile *entities.Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error)
	Update(ctx context.Context, profile *entities.Profile) error
	UpdateInstagramHandle(ctx context.Context, userID uuid.UUID, handle string) error
	UpdatePhotos(ctx context.Context, userID uuid.UUID, photos []string) error
}
