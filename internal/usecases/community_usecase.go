package usecases

import (
	"context"

	"github.com/google/uuid"
	"tokyo-friends.backend/internal/domain/entities"
	"tokyo-friends.backend/internal/domain/repositories"
)

// CommunityUsecase handles community listing and membership
type CommunityUsecase struct {
	communityRepo repositories.CommunityRepository
	userRepo      repositories.UserRepository
}

// NewCommunityUsecase creates a new community usecase
func NewCommunityUsecase(
	communityRepo repositories.CommunityRepository,
	userRepo repositories.UserRepository,
) *CommunityUsecase {
	return &CommunityUsecase{
		communityRepo: communityRepo,
		userRepo:      userRepo,
	}
}

// ListCommunities lists communities, optionally narrowed by district and
// interest tag, most popular first
func (u *CommunityUsecase) ListCommunities(ctx context.Context, district, interestTag string) ([]*entities.Community, error) {
	return u.communityRepo.List(ctx, district, interestTag)
}

// Join adds the caller to a community; rejoining is a no-op
func (u *CommunityUsecase) Join(ctx context.Context, userID, communityID uuid.UUID) error {
	if _, err := u.communityRepo.GetByID(ctx, communityID); err != nil {
		return err
	}
	return u.communityRepo.Join(ctx, userID, communityID)
}

// Leave removes the caller from a community; leaving twice is a no-op
func (u *CommunityUsecase) Leave(ctx context.Context, userID, communityID uuid.UUID) error {
	if _, err := u.communityRepo.GetByID(ctx, communityID); err != nil {
		return err
	}
	return u.communityRepo.Leave(ctx, userID, communityID)
}

// UserCommunities lists the caller's community memberships
func (u *CommunityUsecase) UserCommunities(ctx context.Context, userID uuid.UUID) ([]*entities.Community, error) {
	return u.communityRepo.ListByUser(ctx, userID)
}
