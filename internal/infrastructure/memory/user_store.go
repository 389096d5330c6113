package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"tokyo-friends.backend/internal/domain/entities"
	domainerrors "tokyo-friends.backend/internal/domain/errors"
)

// UserStore keeps accounts and trust scores in memory. It implements both
// UserRepository and TrustRepository; trust mutations are guarded by the
// store lock so concurrent penalties both land.
type UserStore struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*entities.User
}

// NewUserStore creates an empty user store
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[uuid.UUID]*entities.User)}
}

// Create creates a new user
func (s *UserStore) Create(ctx context.Context, user *entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; ok {
		return domainerrors.ErrAlreadyExists
	}
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

// GetByID gets a user by ID; deleted users remain readable
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

// UpdateStatus sets the account status
func (s *UserStore) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.AccountStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	u.Status = status
	u.UpdatedAt = time.Now()
	return nil
}

// UpdateLastActive bumps the last-active timestamp
func (s *UserStore) UpdateLastActive(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	u.LastActiveAt = time.Now()
	return nil
}

// SoftDelete marks the user deleted while keeping the record
func (s *UserStore) SoftDelete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	now := time.Now()
	u.Status = entities.AccountStatusDeleted
	u.DeletedAt = &now
	u.UpdatedAt = now
	return nil
}

// Penalize subtracts amount from the trust score, clamped at zero
func (s *UserStore) Penalize(ctx context.Context, userID uuid.UUID, amount float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return domainerrors.ErrNotFound
	}
	u.TrustScore -= amount
	if u.TrustScore < 0 {
		u.TrustScore = 0
	}
	return nil
}

// GetScore reads the trust score
func (s *UserStore) GetScore(ctx context.Context, userID uuid.UUID) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return 0, domainerrors.ErrNotFound
	}
	return u.TrustScore, nil
}
