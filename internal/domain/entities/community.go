package entities

import (
	"time"

	"github.com/google/uuid"
)

// Community represents a district x interest-tag community
type Community struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	District         string    `json:"district"`
	InterestTag      string    `json:"interestTag"`
	ParticipantCount int       `json:"participantCount"`
	CreatedAt        time.Time `json:"createdAt"`
}

// CommunityName builds the default community name from its district and tag
func CommunityName(district, interestTag string) string {
	return district + "×" + interestTag
}
