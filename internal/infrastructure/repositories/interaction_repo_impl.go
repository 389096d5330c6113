package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"tokyo-friends.backend/internal/domain/entities"
	"tokyo-friends.backend/internal/infrastructure/models"
)

// InteractionRepository implements the swipe/block ledger over GORM
type InteractionRepository struct {
	db *gorm.DB
}

// NewInteractionRepository creates a new interaction repository
func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

// RecordLike stores a Like edge and reports reciprocity. The unique edge
// index plus DoNothing makes repeated likes no-ops.
func (r *InteractionRepository) RecordLike(ctx context.Context, from, to uuid.UUID) (bool, error) {
	if err := r.recordEdge(ctx, from, to, entities.InteractionLike); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&models.Interaction{}).
		Where("from_user_id = ? AND to_user_id = ? AND kind = ?", to, from, string(entities.InteractionLike)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// RecordSkip stores a Skip edge
func (r *InteractionRepository) RecordSkip(ctx context.Context, from, to uuid.UUID) error {
	return r.recordEdge(ctx, from, to, entities.InteractionSkip)
}

func (r *InteractionRepository) recordEdge(ctx context.Context, from, to uuid.UUID, kind entities.InteractionKind) error {
	m := &models.Interaction{
		ID:         uuid.New(),
		FromUserID: from,
		ToUserID:   to,
		Kind:       string(kind),
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(m).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

// RecordBlock adds a one-directional block edge; re-blocking is a no-op
func (r *InteractionRepository) RecordBlock(ctx context.Context, blocker, blocked uuid.UUID) error {
	m := &models.Block{BlockerID: blocker, BlockedID: blocked}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(m).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

// RemoveBlock removes a block edge; removing an absent edge is a no-op
func (r *InteractionRepository) RemoveBlock(ctx context.Context, blocker, blocked uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("blocker_id = ? AND blocked_id = ?", blocker, blocked).
		Delete(&models.Block{}).Error
}

// IsBlocked reports whether viewer has blocked candidate
func (r *InteractionRepository) IsBlocked(ctx context.Context, viewer, candidate uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Block{}).
		Where("blocker_id = ? AND blocked_id = ?", viewer, candidate).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListBlocked returns the IDs the user has blocked
func (r *InteractionRepository) ListBlocked(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var blocks []models.Block
	if err := r.db.WithContext(ctx).Where("blocker_id = ?", userID).Find(&blocks).Error; err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(blocks))
	for _, b := range blocks {
		ids = append(ids, b.BlockedID)
	}
	return ids, nil
}
