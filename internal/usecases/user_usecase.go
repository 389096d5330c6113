package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"tokyo-friends.backend/internal/domain/entities"
	domainerrors "tokyo-friends.backend/internal/domain/errors"
	"tokyo-friends.backend/internal/domain/repositories"
	"tokyo-friends.backend/pkg/jwt"
)

// UserUsecase handles account lifecycle business logic
type UserUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.JWTService
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService) *UserUsecase {
	return &UserUsecase{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new account. Registration is refused outright when the
// identity layer has not verified the user as over 18.
func (u *UserUsecase) Register(ctx context.Context, input *entities.CreateUserInput) (*entities.AuthResponse, error) {
	if !input.AuthMethod.Valid() {
		return nil, domainerrors.BadRequest("unknown auth method")
	}
	if input.IsOver18 == nil || !*input.IsOver18 {
		return nil, domainerrors.Unauthorized("age verification failed")
	}

	now := time.Now()
	user := &entities.User{
		ID:           uuid.New(),
		TrustScore:   entities.DefaultTrustScore,
		AuthMethod:   input.AuthMethod,
		Status:       entities.AccountStatusActive,
		LastActiveAt: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	tokens, err := u.jwtService.GenerateTokenPair(user.ID, string(user.AuthMethod))
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         user,
	}, nil
}

// GetMe returns the caller's account and bumps the last-active timestamp
func (u *UserUsecase) GetMe(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Status == entities.AccountStatusDeleted {
		return nil, domainerrors.ErrNotFound
	}
	if err := u.userRepo.UpdateLastActive(ctx, userID); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteMe logically deletes the caller's account. The record stays
// readable so moderation history survives the deletion.
func (u *UserUsecase) DeleteMe(ctx context.Context, userID uuid.UUID) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Status == entities.AccountStatusDeleted {
		return domainerrors.ErrNotFound
	}
	return u.userRepo.SoftDelete(ctx, userID)
}
