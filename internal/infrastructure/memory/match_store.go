// Package memory provides in-memory store implementations. They back unit
// tests and local runs without Postgres, and document the concurrency
// contracts the GORM implementations rely on the database for.
package memory

import (
	"context"
	"hash/fnv"
	"sort"
	"sync"

	"github.com/google/uuid"
	"tokyo-friends.backend/internal/domain/entities"
	domainerrors "tokyo-friends.backend/internal/domain/errors"
)

const pairLockShards = 64

// MatchStore keeps matches in memory. Creation is serialized per unordered
// pair through a sharded lock set, so two concurrent reciprocal likes can
// never produce two match records.
type MatchStore struct {
	mu        sync.RWMutex
	byID      map[uuid.UUID]*entities.Match
	byPairKey map[string]uuid.UUID

	pairLocks [pairLockShards]sync.Mutex
}

// NewMatchStore creates an empty match store
func NewMatchStore() *MatchStore {
	return &MatchStore{
		byID:      make(map[uuid.UUID]*entities.Match),
		byPairKey: make(map[string]uuid.UUID),
	}
}

func (s *MatchStore) pairLock(pairKey string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(pairKey))
	return &s.pairLocks[h.Sum32()%pairLockShards]
}

// Create inserts a match, failing with ErrAlreadyExists when the pair
// already has one
func (s *MatchStore) Create(ctx context.Context, match *entities.Match) error {
	lock := s.pairLock(match.PairKey)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byPairKey[match.PairKey]; ok {
		return domainerrors.ErrAlreadyExists
	}
	clone := *match
	s.byID[match.ID] = &clone
	s.byPairKey[match.PairKey] = match.ID
	return nil
}

// GetByID gets a match by ID
func (s *MatchStore) GetByID(ctx context.Context, id uuid.UUID) (*entities.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.byID[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	clone := *m
	return &clone, nil
}

// GetByPairKey gets the match for an unordered pair
func (s *MatchStore) GetByPairKey(ctx context.Context, pairKey string) (*entities.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byPairKey[pairKey]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	clone := *s.byID[id]
	return &clone, nil
}

// UpdateStatus transitions the match status
func (s *MatchStore) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.MatchStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.byID[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	m.Status = status
	return nil
}

// ListByUser lists the user's matches newest first
func (s *MatchStore) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Match, int64, error) {
	s.mu.RLock()
	matches := make([]*entities.Match, 0)
	for _, m := range s.byID {
		if m.Involves(userID) {
			clone := *m
			matches = append(matches, &clone)
		}
	}
	s.mu.RUnlock()

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].MatchedAt.After(matches[j].MatchedAt)
	})

	total := int64(len(matches))
	if limit <= 0 {
		return matches, total, nil
	}
	if offset >= len(matches) {
		return []*entities.Match{}, total, nil
	}
	end := offset + limit
	if end > len(matches) {
		end = len(matches)
	}
	return matches[offset:end], total, nil
}
