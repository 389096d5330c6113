package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"tokyo-friends.backend/internal/domain/entities"
)

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.AccountStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLastActive(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock TrustRepository
type MockTrustRepository struct {
	mock.Mock
}

func (m *MockTrustRepository) Penalize(ctx context.Context, userID uuid.UUID, amount float64) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func (m *MockTrustRepository) GetScore(ctx context.Context, userID uuid.UUID) (float64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(float64), args.Error(1)
}

// Mock ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *entities.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *entities.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdateInstagramHandle(ctx context.Context, userID uuid.UUID, handle string) error {
	args := m.Called(ctx, userID, handle)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdatePhotos(ctx context.Context, userID uuid.UUID, photos []string) error {
	args := m.Called(ctx, userID, photos)
	return args.Error(0)
}

// Mock InteractionRepository
type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) RecordLike(ctx context.Context, from, to uuid.UUID) (bool, error) {
	args := m.Called(ctx, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockInteractionRepository) RecordSkip(ctx context.Context, from, to uuid.UUID) error {
	args := m.Called(ctx, from, to)
	return args.Error(0)
}

func (m *MockInteractionRepository) RecordBlock(ctx context.Context, blocker, blocked uuid.UUID) error {
	args := m.Called(ctx, blocker, blocked)
	return args.Error(0)
}

func (m *MockInteractionRepository) RemoveBlock(ctx context.Context, blocker, blocked uuid.UUID) error {
	args := m.Called(ctx, blocker, blocked)
	return args.Error(0)
}

func (m *MockInteractionRepository) IsBlocked(ctx context.Context, viewer, candidate uuid.UUID) (bool, error) {
	args := m.Called(ctx, viewer, candidate)
	return args.Bool(0), args.Error(1)
}

func (m *MockInteractionRepository) ListBlocked(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

// Mock MatchRepository
type MockMatchRepository struct {
	mock.Mock
}

func (m *MockMatchRepository) Create(ctx context.Context, match *entities.Match) error {
	args := m.Called(ctx, match)
	return args.Error(0)
}

func (m *MockMatchRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Match, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Match), args.Error(1)
}

func (m *MockMatchRepository) GetByPairKey(ctx context.Context, pairKey string) (*entities.Match, error) {
	args := m.Called(ctx, pairKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Match), args.Error(1)
}

func (m *MockMatchRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.MatchStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockMatchRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Match, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Match), args.Get(1).(int64), args.Error(2)
}

// Mock ReportRepository
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(ctx context.Context, report *entities.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

// Mock CommunityRepository
type MockCommunityRepository struct {
	mock.Mock
}

func (m *MockCommunityRepository) List(ctx context.Context, district, interestTag string) ([]*entities.Community, error) {
	args := m.Called(ctx, district, interestTag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Community), args.Error(1)
}

func (m *MockCommunityRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Community, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Community), args.Error(1)
}

func (m *MockCommunityRepository) Join(ctx context.Context, userID, communityID uuid.UUID) error {
	args := m.Called(ctx, userID, communityID)
	return args.Error(0)
}

func (m *MockCommunityRepository) Leave(ctx context.Context, userID, communityID uuid.UUID) error {
	args := m.Called(ctx, userID, communityID)
	return args.Error(0)
}

func (m *MockCommunityRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Community, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Community), args.Error(1)
}

// Mock CandidateSource
type MockCandidateSource struct {
	mock.Mock
}

func (m *MockCandidateSource) FetchCandidates(ctx context.Context, excludeUserID uuid.UUID) ([]*entities.Card, error) {
	args := m.Called(ctx, excludeUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Card), args.Error(1)
}

func (m *MockCandidateSource) FetchProfile(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

// Mock SkipSuppressor
type MockSkipSuppressor struct {
	mock.Mock
}

func (m *MockSkipSuppressor) Suppress(ctx context.Context, viewer, candidate uuid.UUID) error {
	args := m.Called(ctx, viewer, candidate)
	return args.Error(0)
}

func (m *MockSkipSuppressor) FilterSuppressed(ctx context.Context, viewer uuid.UUID, candidates []uuid.UUID) (map[uuid.UUID]bool, error) {
	args := m.Called(ctx, viewer, candidates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]bool), args.Error(1)
}
