package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"tokyo-friends.backend/internal/domain/entities"
	domainerrors "tokyo-friends.backend/internal/domain/errors"
	"tokyo-friends.backend/internal/infrastructure/models"
)

// CommunityRepository implements community and membership operations
type CommunityRepository struct {
	db *gorm.DB
}

// NewCommunityRepository creates a new community repository
func NewCommunityRepository(db *gorm.DB) *CommunityRepository {
	return &CommunityRepository{db: db}
}

// List returns communities ordered by participant count descending
func (r *CommunityRepository) List(ctx context.Context, district, interestTag string) ([]*entities.Community, error) {
	query := r.db.WithContext(ctx).Model(&models.Community{})
	if district != "" {
		query = query.Where("district = ?", district)
	}
	if interestTag != "" {
		query = query.Where("interest_tag = ?", interestTag)
	}

	var rows []models.Community
	if err := query.Order("participant_count DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toCommunityEntities(rows), nil
}

// GetByID gets a community by ID
func (r *CommunityRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Community, error) {
	var m models.Community
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toCommunityEntity(&m), nil
}

// Join adds the user to the community; rejoining is a no-op
func (r *CommunityRepository) Join(ctx context.Context, userID, communityID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := &models.CommunityMember{CommunityID: communityID, UserID: userID}
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(m)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
				return nil
			}
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		return tx.Model(&models.Community{}).Where("id = ?", communityID).
			Update("participant_count", gorm.Expr("participant_count + 1")).Error
	})
}

// Leave removes the user from the community; leaving twice is a no-op
func (r *CommunityRepository) Leave(ctx context.Context, userID, communityID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("community_id = ? AND user_id = ?", communityID, userID).
			Delete(&models.CommunityMember{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		return tx.Model(&models.Community{}).Where("id = ? AND participant_count > 0", communityID).
			Update("participant_count", gorm.Expr("participant_count - 1")).Error
	})
}

// ListByUser returns the communities the user belongs to
func (r *CommunityRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Community, error) {
	var rows []models.Community
	err := r.db.WithContext(ctx).Model(&models.Community{}).
		Joins("JOIN community_members ON community_members.community_id = communities.id").
		Where("community_members.user_id = ?", userID).
		Order("communities.participant_count DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toCommunityEntities(rows), nil
}

func toCommunityEntity(m *models.Community) *entities.Community {
	return &entities.Community{
		ID:               m.ID,
		Name:             m.Name,
		District:         m.District,
		InterestTag:      m.InterestTag,
		ParticipantCount: m.ParticipantCount,
		CreatedAt:        m.CreatedAt,
	}
}

func toCommunityEntities(rows []models.Community) []*entities.Community {
	out := make([]*entities.Community, 0, len(rows))
	for i := range rows {
		out = append(out, toCommunityEntity(&rows[i]))
	}
	return out
}
