package entities

import (
	"time"

	"github.com/google/uuid"
)

// AuthMethod represents how the user authenticated
type AuthMethod string

const (
	AuthMethodPhone AuthMethod = "phone"
	AuthMethodApple AuthMethod = "apple"
)

// Valid reports whether the auth method is a known value
func (m AuthMethod) Valid() bool {
	return m == AuthMethodPhone || m == AuthMethodApple
}

// AccountStatus represents the account lifecycle state
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "active"
	AccountStatusSuspended AccountStatus = "suspended"
	AccountStatusDeleted   AccountStatus = "deleted"
)

// DefaultTrustScore is the score assigned to every new account.
const DefaultTrustScore = 1.0

// User represents a user account with its trust score
type User struct {
	ID           uuid.UUID     `json:"id"`
	TrustScore   float64       `json:"trustScore"`
	AuthMethod   AuthMethod    `json:"authMethod"`
	Status       AccountStatus `json:"status"`
	LastActiveAt time.Time     `json:"lastActiveAt"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
	DeletedAt    *time.Time    `json:"-"`
}

// CreateUserInput represents input for creating a user.
// IsOver18 is a verified fact supplied by the identity layer, not a self-claim.
type CreateUserInput struct {
	AuthMethod AuthMethod `json:"authMethod" binding:"required"`
	IsOver18   *bool      `json:"isOver18" binding:"required"`
}

// AuthResponse represents the registration response
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}
