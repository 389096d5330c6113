package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"tokyo-friends.backend/internal/domain/entities"
	domainerrors "tokyo-friends.backend/internal/domain/errors"
	"tokyo-friends.backend/internal/domain/repositories"
)

// ProfileUsecase handles profile business logic
type ProfileUsecase struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
) *ProfileUsecase {
	return &ProfileUsecase{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// CreateProfile creates the caller's profile, one per account
func (u *ProfileUsecase) CreateProfile(ctx context.Context, userID uuid.UUID, input *entities.CreateProfileInput) (*entities.Profile, error) {
	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	now := time.Now()
	profile := &entities.Profile{
		UserID:         userID,
		AgeRange:       input.AgeRange,
		Attribute:      input.Attribute,
		SchoolOrWork:   input.SchoolOrWork,
		District:       input.District,
		NearestStation: input.NearestStation,
		Interests:      input.Interests,
		Photos:         input.Photos,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if input.Bio != "" {
		profile.Bio = null.StringFrom(input.Bio)
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if err := u.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetProfile gets a profile by user ID
func (u *ProfileUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	return u.profileRepo.GetByUserID(ctx, userID)
}

// UpdateProfile replaces the caller's profile fields. Photos and the
// Instagram handle have their own operations.
func (u *ProfileUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) (*entities.Profile, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.AgeRange = input.AgeRange
	profile.Attribute = input.Attribute
	profile.SchoolOrWork = input.SchoolOrWork
	profile.District = input.District
	profile.NearestStation = input.NearestStation
	profile.Interests = input.Interests
	if input.Bio != "" {
		profile.Bio = null.StringFrom(input.Bio)
	} else {
		profile.Bio = null.String{}
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if err := u.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// SetInstagramHandle validates and stores the caller's Instagram handle
func (u *ProfileUsecase) SetInstagramHandle(ctx context.Context, userID uuid.UUID, handle string) error {
	normalized, err := entities.NormalizeInstagramHandle(handle)
	if err != nil {
		return err
	}
	return u.profileRepo.UpdateInstagramHandle(ctx, userID, normalized)
}

// AddPhoto appends a photo to the caller's profile
func (u *ProfileUsecase) AddPhoto(ctx context.Context, userID uuid.UUID, photoURL string) (*entities.Profile, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(profile.Photos) >= entities.MaxPhotos {
		return nil, domainerrors.ValidationFailed("photo limit reached")
	}
	for _, p := range profile.Photos {
		if p == photoURL {
			return nil, domainerrors.BadRequest("photo already added")
		}
	}

	profile.Photos = append(profile.Photos, photoURL)
	if err := u.profileRepo.UpdatePhotos(ctx, userID, profile.Photos); err != nil {
		return nil, err
	}
	return profile, nil
}

// RemovePhoto removes a photo; at least one photo must remain
func (u *ProfileUsecase) RemovePhoto(ctx context.Context, userID uuid.UUID, photoURL string) (*entities.Profile, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	remaining := make([]string, 0, len(profile.Photos))
	found := false
	for _, p := range profile.Photos {
		if p == photoURL {
			found = true
			continue
		}
		remaining = append(remaining, p)
	}
	if !found {
		return nil, domainerrors.NotFound("photo not found")
	}
	if len(remaining) < entities.MinPhotos {
		return nil, domainerrors.ValidationFailed("profile must keep at least one photo")
	}

	profile.Photos = remaining
	if err := u.profileRepo.UpdatePhotos(ctx, userID, profile.Photos); err != nil {
		return nil, err
	}
	return profile, nil
}

// ReorderPhotos replaces the photo order. The new order must contain
// exactly the current photo set.
func (u *ProfileUsecase) ReorderPhotos(ctx context.Context, userID uuid.UUID, newOrder []string) (*entities.Profile, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !samePhotoSet(profile.Photos, newOrder) {
		return nil, domainerrors.BadRequest("photo order must contain exactly the current photos")
	}

	profile.Photos = newOrder
	if err := u.profileRepo.UpdatePhotos(ctx, userID, newOrder); err != nil {
		return nil, err
	}
	return profile, nil
}

func samePhotoSet(current, proposed []string) bool {
	if len(current) != len(proposed) {
		return false
	}
	counts := make(map[string]int, len(current))
	for _, p := range current {
		counts[p]++
	}
	for _, p := range proposed {
		counts[p]--
		if counts[p] < 0 {
			return false
		}
	}
	return true
}
