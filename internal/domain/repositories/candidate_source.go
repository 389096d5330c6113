package repositories

import (
	"context"

	"github.com/google/uuid"
	"tokyo-friends.backend/internal/domain/entities"
)

// CandidateSource supplies candidate cards for deck assembly. It is an
// external collaborator: candidates arrive with precomputed signal scores
// (interest overlap, proximity, shared communities) and only include
// active accounts with a complete profile.
type CandidateSource interface {
	FetchCandidates(ctx context.Context, excludeUserID uuid.UUID) ([]*entities.Card, error)
	FetchProfile(ctx context.Context, userID uuid.UUID) (*entities.Profile, error)
}
