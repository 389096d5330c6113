package entities

import (
	"github.com/google/uuid"
)

// CascadeFailure records one non-fatal failure while a block cascaded over
// related state. Failures are reported back and logged, never escalated.
type CascadeFailure struct {
	Step    string    `json:"step"`
	MatchID uuid.UUID `json:"matchId,omitempty"`
	Reason  string    `json:"reason"`
}

// CascadeResult summarizes what a block touched
type CascadeResult struct {
	MatchesBlocked int              `json:"matchesBlocked"`
	Failures       []CascadeFailure `json:"failures,omitempty"`
}

// BlockedUser is one entry of a user's block list. Profile is nil when the
// blocked account never completed onboarding.
type BlockedUser struct {
	UserID  uuid.UUID `json:"userId"`
	Profile *Profile  `json:"profile,omitempty"`
}
