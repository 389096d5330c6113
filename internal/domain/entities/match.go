package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// MatchStatus represents the match lifecycle state
type MatchStatus string

const (
	MatchStatusActive     MatchStatus = "active"
	MatchStatusBlockedByA MatchStatus = "blocked_by_a"
	MatchStatusBlockedByB MatchStatus = "blocked_by_b"
)

// IsBlocked reports whether either side has blocked the match
func (s MatchStatus) IsBlocked() bool {
	return s == MatchStatusBlockedByA || s == MatchStatusBlockedByB
}

// Match represents a mutual-like match between two users.
// Matches are never deleted; blocking is a status transition.
type Match struct {
	ID        uuid.UUID   `json:"id"`
	UserAID   uuid.UUID   `json:"userAId"`
	UserBID   uuid.UUID   `json:"userBId"`
	PairKey   string      `json:"-"`
	Status    MatchStatus `json:"status"`
	MatchedAt time.Time   `json:"matchedAt"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// PairKey returns the canonical unordered-pair identity for two users.
// The same key comes out regardless of argument order, which is what the
// match-uniqueness index and pair-scoped locks key on.
func PairKey(a, b uuid.UUID) string {
	as, bs := a.String(), b.String()
	if as < bs {
		return as + ":" + bs
	}
	return bs + ":" + as
}

// Involves reports whether the given user is one of the participants
func (m *Match) Involves(userID uuid.UUID) bool {
	return m.UserAID == userID || m.UserBID == userID
}

// PartnerID returns the other participant's ID
func (m *Match) PartnerID(myUserID uuid.UUID) uuid.UUID {
	if myUserID == m.UserAID {
		return m.UserBID
	}
	return m.UserAID
}

// BlockedStatusFor returns the status a block by the given participant
// transitions the match into.
func (m *Match) BlockedStatusFor(blockingUserID uuid.UUID) MatchStatus {
	if blockingUserID == m.UserAID {
		return MatchStatusBlockedByA
	}
	return MatchStatusBlockedByB
}

// MatchDetail bundles a match with the partner's profile and account.
// The Instagram handle is only populated while the match is active.
type MatchDetail struct {
	Match                  *Match      `json:"match"`
	PartnerProfile         *Profile    `json:"partnerProfile"`
	PartnerUser            *User       `json:"partnerUser"`
	PartnerInstagramHandle null.String `json:"partnerInstagramHandle,omitempty"`
}
