package repositories

import (
	"context"

	"github.com/google/uuid"
	"tokyo-friends.backend/internal/domain/entities"
)

// UserRepository defines user account data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.AccountStatus) error
	UpdateLastActive(ctx context.Context, id uuid.UUID) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// TrustRepository defines trust-score storage operations. The trust usecase
// is the only writer; penalties must apply atomically (no lost updates under
// concurrent penalize calls) and clamp at 0.
type TrustRepository interface {
	Penalize(ctx context.Context, userID uuid.UUID, amount float64) error
	GetScore(ctx context.Context, userID uuid.UUID) (float64, error)
}
