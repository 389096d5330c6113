package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tokyo-friends.backend/internal/domain/entities"
	"tokyo-friends.backend/internal/infrastructure/models"
)

// CandidateSource builds candidate cards from stored profiles. Signal
// scores are computed against the viewer's profile: interest overlap,
// location proximity, and shared community memberships.
type CandidateSource struct {
	db *gorm.DB
}

// NewCandidateSource creates a new candidate source
func NewCandidateSource(db *gorm.DB) *CandidateSource {
	return &CandidateSource{db: db}
}

// FetchCandidates returns scored cards for every active profiled user
// other than the viewer
func (s *CandidateSource) FetchCandidates(ctx context.Context, excludeUserID uuid.UUID) ([]*entities.Card, error) {
	viewer, err := s.FetchProfile(ctx, excludeUserID)
	if err != nil {
		return nil, err
	}

	viewerCommunities, err := s.communityIDs(ctx, excludeUserID)
	if err != nil {
		return nil, err
	}

	var rows []models.Profile
	err = s.db.WithContext(ctx).Model(&models.Profile{}).
		Joins("JOIN users ON users.id = profiles.user_id").
		Where("profiles.user_id <> ? AND users.status = ?", excludeUserID, string(entities.AccountStatusActive)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	cards := make([]*entities.Card, 0, len(rows))
	for i := range rows {
		profile, err := toProfileEntity(&rows[i])
		if err != nil {
			return nil, err
		}
		candidateCommunities, err := s.communityIDs(ctx, profile.UserID)
		if err != nil {
			return nil, err
		}
		cards = append(cards, &entities.Card{
			UserID:                 profile.UserID,
			Profile:                profile,
			InterestMatchScore:     interestOverlap(viewer.Interests, profile.Interests),
			ProximityScore:         proximity(viewer, profile),
			CommonCommunitiesCount: intersectionSize(viewerCommunities, candidateCommunities),
		})
	}
	return cards, nil
}

// FetchProfile returns a single profile for scoring
func (s *CandidateSource) FetchProfile(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	repo := ProfileRepository{db: s.db}
	return repo.GetByUserID(ctx, userID)
}

func (s *CandidateSource) communityIDs(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	var members []models.CommunityMember
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&members).Error; err != nil {
		return nil, err
	}
	ids := make(map[uuid.UUID]struct{}, len(members))
	for _, m := range members {
		ids[m.CommunityID] = struct{}{}
	}
	return ids, nil
}

// interestOverlap is the shared-interest ratio relative to the viewer's
// own interest count, in [0, 1]
func interestOverlap(viewer, candidate []string) float64 {
	if len(viewer) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(viewer))
	for _, in := range viewer {
		set[in] = struct{}{}
	}
	shared := 0
	for _, in := range candidate {
		if _, ok := set[in]; ok {
			shared++
		}
	}
	score := float64(shared) / float64(len(viewer))
	if score > 1 {
		score = 1
	}
	return score
}

func proximity(viewer, candidate *entities.Profile) float64 {
	switch {
	case viewer.NearestStation == candidate.NearestStation:
		return 1.0
	case viewer.District == candidate.District:
		return 0.7
	default:
		return 0.3
	}
}

func intersectionSize(a, b map[uuid.UUID]struct{}) int {
	n := 0
	for id := range a {
		if _, ok := b[id]; ok {
			n++
		}
	}
	return n
}
