package usecases

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"tokyo-friends.backend/internal/domain/entities"
	"tokyo-friends.backend/internal/domain/repositories"
)

// DeckUsecase assembles the ranked card deck for a viewer
type DeckUsecase struct {
	source          repositories.CandidateSource
	interactionRepo repositories.InteractionRepository
	skipStore       SkipSuppressor
}

// NewDeckUsecase creates a new deck usecase
func NewDeckUsecase(
	source repositories.CandidateSource,
	interactionRepo repositories.InteractionRepository,
	skipStore SkipSuppressor,
) *DeckUsecase {
	return &DeckUsecase{
		source:          source,
		interactionRepo: interactionRepo,
		skipStore:       skipStore,
	}
}

// AssembleDeck builds the viewer's deck: candidates minus the viewer's
// block list and live skip suppressions, filtered, then ranked descending
// by total score with the candidate ID as a deterministic tie-break.
func (u *DeckUsecase) AssembleDeck(ctx context.Context, viewerID uuid.UUID, filters *entities.CardFilters) ([]*entities.Card, error) {
	blockedIDs, err := u.interactionRepo.ListBlocked(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	blocked := make(map[uuid.UUID]struct{}, len(blockedIDs))
	for _, id := range blockedIDs {
		blocked[id] = struct{}{}
	}

	candidates, err := u.source.FetchCandidates(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	remaining := make([]*entities.Card, 0, len(candidates))
	remainingIDs := make([]uuid.UUID, 0, len(candidates))
	for _, card := range candidates {
		if card.UserID == viewerID {
			continue
		}
		if _, ok := blocked[card.UserID]; ok {
			continue
		}
		remaining = append(remaining, card)
		remainingIDs = append(remainingIDs, card.UserID)
	}

	suppressed, err := u.skipStore.FilterSuppressed(ctx, viewerID, remainingIDs)
	if err != nil {
		return nil, err
	}

	deck := make([]*entities.Card, 0, len(remaining))
	for _, card := range remaining {
		if suppressed[card.UserID] {
			continue
		}
		if !filters.Matches(card) {
			continue
		}
		deck = append(deck, card)
	}

	sort.SliceStable(deck, func(i, j int) bool {
		si, sj := deck[i].TotalScore(), deck[j].TotalScore()
		if si != sj {
			return si > sj
		}
		return deck[i].UserID.String() < deck[j].UserID.String()
	})

	decksAssembledCounter.Inc()
	return deck, nil
}
