package entities

import (
	"github.com/google/uuid"
)

// Card score weights. The community term is capped so it never contributes
// more than 0.2 to the total.
const (
	interestWeight     = 0.5
	proximityWeight    = 0.3
	communityWeight    = 0.05
	maxScoredCommunities = 4
)

// Card represents a candidate profile with precomputed ranking signals.
// Signal scores arrive from the candidate source; the card itself performs
// no I/O.
type Card struct {
	UserID                 uuid.UUID `json:"userId"`
	Profile                *Profile  `json:"profile"`
	InterestMatchScore     float64   `json:"interestMatchScore"`
	ProximityScore         float64   `json:"proximityScore"`
	CommonCommunitiesCount int       `json:"commonCommunitiesCount"`
}

// TotalScore computes the ranking score for the card.
func (c *Card) TotalScore() float64 {
	communities := c.CommonCommunitiesCount
	if communities > maxScoredCommunities {
		communities = maxScoredCommunities
	}
	return c.InterestMatchScore*interestWeight +
		c.ProximityScore*proximityWeight +
		float64(communities)*communityWeight
}

// CardFilters holds optional deck filters. Each field is OR-within-field;
// fields combine with AND. An empty filter set is a no-op.
type CardFilters struct {
	Districts  []string    `form:"districts" json:"districts"`
	AgeRanges  []AgeRange  `form:"ageRanges" json:"ageRanges"`
	Attributes []Attribute `form:"attributes" json:"attributes"`
	Interests  []string    `form:"interests" json:"interests"`
}

// IsEmpty reports whether no filter field is set
func (f *CardFilters) IsEmpty() bool {
	if f == nil {
		return true
	}
	return len(f.Districts) == 0 && len(f.AgeRanges) == 0 &&
		len(f.Attributes) == 0 && len(f.Interests) == 0
}

// Matches reports whether the card's profile passes the filters.
func (f *CardFilters) Matches(card *Card) bool {
	if f.IsEmpty() {
		return true
	}
	p := card.Profile
	if len(f.Districts) > 0 && !containsString(f.Districts, p.District) {
		return false
	}
	if len(f.AgeRanges) > 0 && !containsAgeRange(f.AgeRanges, p.AgeRange) {
		return false
	}
	if len(f.Attributes) > 0 && !containsAttribute(f.Attributes, p.Attribute) {
		return false
	}
	if len(f.Interests) > 0 && !sharesInterest(f.Interests, p.Interests) {
		return false
	}
	return true
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func containsAgeRange(haystack []AgeRange, needle AgeRange) bool {
	for _, a := range haystack {
		if a == needle {
			return true
		}
	}
	return false
}

func containsAttribute(haystack []Attribute, needle Attribute) bool {
	for _, a := range haystack {
		if a == needle {
			return true
		}
	}
	return false
}

// sharesInterest reports whether at least one tag is shared
func sharesInterest(wanted, have []string) bool {
	set := make(map[string]struct{}, len(wanted))
	for _, tag := range wanted {
		set[tag] = struct{}{}
	}
	for _, tag := range have {
		if _, ok := set[tag]; ok {
			return true
		}
	}
	return false
}
