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

// MatchRepository implements match record operations. The unique pair_key
// index guarantees at most one match per unordered pair; a concurrent
// second Create surfaces as ErrAlreadyExists.
type MatchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// Create inserts a match row
func (r *MatchRepository) Create(ctx context.Context, match *entities.Match) error {
	m := &models.Match{
		ID:        match.ID,
		UserAID:   match.UserAID,
		UserBID:   match.UserBID,
		PairKey:   match.PairKey,
		Status:    string(match.Status),
		MatchedAt: match.MatchedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByID gets a match by ID
func (r *MatchRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Match, error) {
	var m models.Match
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toMatchEntity(&m), nil
}

// GetByPairKey gets the match for an unordered user pair
func (r *MatchRepository) GetByPairKey(ctx context.Context, pairKey string) (*entities.Match, error) {
	var m models.Match
	if err := r.db.WithContext(ctx).Where("pair_key = ?", pairKey).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toMatchEntity(&m), nil
}

// UpdateStatus transitions the match status
func (r *MatchRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.MatchStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Match{}).Where("id = ?", id).Updates(map[string]interface{}{
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

// ListByUser lists matches involving the user, newest first
func (r *MatchRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Match, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Match{}).
		Where("user_a_id = ? OR user_b_id = ?", userID, userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("matched_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var rows []models.Match
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	matches := make([]*entities.Match, 0, len(rows))
	for i := range rows {
		matches = append(matches, toMatchEntity(&rows[i]))
	}
	return matches, total, nil
}

func toMatchEntity(m *models.Match) *entities.Match {
	return &entities.Match{
		ID:        m.ID,
		UserAID:   m.UserAID,
		UserBID:   m.UserBID,
		PairKey:   m.PairKey,
		Status:    entities.MatchStatus(m.Status),
		MatchedAt: m.MatchedAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
