package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"tokyo-friends.backend/internal/domain/entities"
	domainerrors "tokyo-friends.backend/internal/domain/errors"
	"tokyo-friends.backend/internal/infrastructure/models"
)

// ProfileRepository implements profile data operations
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create creates a new profile; one profile per user
func (r *ProfileRepository) Create(ctx context.Context, profile *entities.Profile) error {
	m, err := toProfileModel(profile)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByUserID gets a profile by user ID
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	var m models.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toProfileEntity(&m)
}

// Update updates the mutable profile fields
func (r *ProfileRepository) Update(ctx context.Context, profile *entities.Profile) error {
	interests, err := json.Marshal(profile.Interests)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"age_range":       string(profile.AgeRange),
		"attribute":       string(profile.Attribute),
		"school_or_work":  profile.SchoolOrWork,
		"district":        profile.District,
		"nearest_station": profile.NearestStation,
		"interests":       string(interests),
		"bio":             profile.Bio.Ptr(),
		"updated_at":      time.Now(),
	}

	result := r.db.WithContext(ctx).Model(&models.Profile{}).Where("user_id = ?", profile.UserID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateInstagramHandle sets the Instagram handle
func (r *ProfileRepository) UpdateInstagramHandle(ctx context.Context, userID uuid.UUID, handle string) error {
	result := r.db.WithContext(ctx).Model(&models.Profile{}).Where("user_id = ?", userID).Updates(map[string]interface{}{
		"instagram_handle": handle,
		"updated_at":       time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdatePhotos replaces the ordered photo list
func (r *ProfileRepository) UpdatePhotos(ctx context.Context, userID uuid.UUID, photos []string) error {
	encoded, err := json.Marshal(photos)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Model(&models.Profile{}).Where("user_id = ?", userID).Updates(map[string]interface{}{
		"photos":     string(encoded),
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

func toProfileModel(p *entities.Profile) (*models.Profile, error) {
	interests, err := json.Marshal(p.Interests)
	if err != nil {
		return nil, err
	}
	photos, err := json.Marshal(p.Photos)
	if err != nil {
		return nil, err
	}
	return &models.Profile{
		UserID:          p.UserID,
		AgeRange:        string(p.AgeRange),
		Attribute:       string(p.Attribute),
		SchoolOrWork:    p.SchoolOrWork,
		District:        p.District,
		NearestStation:  p.NearestStation,
		Interests:       string(interests),
		Bio:             p.Bio.Ptr(),
		Photos:          string(photos),
		InstagramHandle: p.InstagramHandle.Ptr(),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}, nil
}

func toProfileEntity(m *models.Profile) (*entities.Profile, error) {
	var interests []string
	if err := json.Unmarshal([]byte(m.Interests), &interests); err != nil {
		return nil, err
	}
	var photos []string
	if err := json.Unmarshal([]byte(m.Photos), &photos); err != nil {
		return nil, err
	}
	return &entities.Profile{
		UserID:          m.UserID,
		AgeRange:        entities.AgeRange(m.AgeRange),
		Attribute:       entities.Attribute(m.Attribute),
		SchoolOrWork:    m.SchoolOrWork,
		District:        m.District,
		NearestStation:  m.NearestStation,
		Interests:       interests,
		Bio:             null.StringFromPtr(m.Bio),
		Photos:          photos,
		InstagramHandle: null.StringFromPtr(m.InstagramHandle),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}, nil
}
