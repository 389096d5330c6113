package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tokyo-friends.backend/internal/domain/entities"
	domainerrors "tokyo-friends.backend/internal/domain/errors"
	"tokyo-friends.backend/internal/infrastructure/models"
)

// UserRepository implements user account data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := &models.User{
		ID:           user.ID,
		TrustScore:   user.TrustScore,
		AuthMethod:   string(user.AuthMethod),
		Status:       string(user.Status),
		LastActiveAt: user.LastActiveAt,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets a user by ID. Logically deleted users stay readable for
// moderation, so the soft-delete scope is lifted here.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Unscoped().Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&m), nil
}

// UpdateStatus sets the account status
func (r *UserRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.AccountStatus) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateLastActive bumps the last-active timestamp
func (r *UserRepository) UpdateLastActive(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Update("last_active_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SoftDelete logically deletes a user. The row is retained for moderation;
// the status flips to deleted alongside the GORM deleted_at marker.
func (r *UserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if err := r.UpdateStatus(ctx, id, entities.AccountStatusDeleted); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func toUserEntity(m *models.User) *entities.User {
	user := &entities.User{
		ID:           m.ID,
		TrustScore:   m.TrustScore,
		AuthMethod:   entities.AuthMethod(m.AuthMethod),
		Status:       entities.AccountStatus(m.Status),
		LastActiveAt: m.LastActiveAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.DeletedAt.Valid {
		t := m.DeletedAt.Time
		user.DeletedAt = &t
	}
	return user
}

// TrustRepository implements trust-score storage
type TrustRepository struct {
	db *gorm.DB
}

// NewTrustRepository creates a new trust repository
func NewTrustRepository(db *gorm.DB) *TrustRepository {
	return &TrustRepository{db: db}
}

// Penalize subtracts amount from the user's trust score, clamped at 0.
// The decrement happens in a single UPDATE so concurrent penalties both
// apply without lost updates.
func (r *TrustRepository) Penalize(ctx context.Context, userID uuid.UUID, amount float64) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("trust_score", gorm.Expr(
			"CASE WHEN trust_score - ? < 0 THEN 0 ELSE trust_score - ? END", amount, amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// GetScore reads the user's trust score
func (r *TrustRepository) GetScore(ctx context.Context, userID uuid.UUID) (float64, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Unscoped().Select("trust_score").Where("id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domainerrors.ErrNotFound
		}
		return 0, err
	}
	return m.TrustScore, nil
}
