package entities

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	domainerrors "tokyo-friends.backend/internal/domain/errors"
)

// AgeRange represents the age bucket shown on a profile
type AgeRange string

const (
	AgeRange18To19 AgeRange = "18-19"
	AgeRange20To22 AgeRange = "20-22"
	AgeRange23To25 AgeRange = "23-25"
	AgeRange26Plus AgeRange = "26+"
)

// Valid reports whether the age range is a known bucket
func (a AgeRange) Valid() bool {
	switch a {
	case AgeRange18To19, AgeRange20To22, AgeRange23To25, AgeRange26Plus:
		return true
	}
	return false
}

// Attribute represents whether a user is a student or a worker
type Attribute string

const (
	AttributeStudent Attribute = "student"
	AttributeWorker  Attribute = "worker"
)

// Valid reports whether the attribute is a known value
func (a Attribute) Valid() bool {
	return a == AttributeStudent || a == AttributeWorker
}

// Profile field limits
const (
	MinInterests = 3
	MaxInterests = 10
	MaxBioLength = 300
	MinPhotos    = 1
	MaxPhotos    = 5
)

var instagramHandleRe = regexp.MustCompile(`^[a-zA-Z0-9_]{3,30}$`)

// Profile represents a user's public profile, keyed 1:1 by user ID
type Profile struct {
	UserID          uuid.UUID   `json:"userId"`
	AgeRange        AgeRange    `json:"ageRange"`
	Attribute       Attribute   `json:"attribute"`
	SchoolOrWork    string      `json:"schoolOrWork"`
	District        string      `json:"district"`
	NearestStation  string      `json:"nearestStation"`
	Interests       []string    `json:"interests"`
	Bio             null.String `json:"bio,omitempty"`
	Photos          []string    `json:"photos"`
	InstagramHandle null.String `json:"-"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// Validate checks the profile field contracts. Photo count is validated
// against the 1-5 invariant; a profile mid-onboarding never reaches here.
func (p *Profile) Validate() error {
	if !p.AgeRange.Valid() {
		return domainerrors.ValidationFailed("unknown age range")
	}
	if !p.Attribute.Valid() {
		return domainerrors.ValidationFailed("unknown attribute")
	}
	if strings.TrimSpace(p.SchoolOrWork) == "" {
		return domainerrors.ValidationFailed("school or work is required")
	}
	if len(p.Interests) < MinInterests || len(p.Interests) > MaxInterests {
		return domainerrors.ValidationFailed("interests must contain between 3 and 10 tags")
	}
	if p.Bio.Valid && len([]rune(p.Bio.String)) > MaxBioLength {
		return domainerrors.ValidationFailed("bio must be at most 300 characters")
	}
	if len(p.Photos) < MinPhotos || len(p.Photos) > MaxPhotos {
		return domainerrors.ValidationFailed("photos must contain between 1 and 5 entries")
	}
	return nil
}

// NormalizeInstagramHandle trims and validates an Instagram handle (no leading @).
func NormalizeInstagramHandle(handle string) (string, error) {
	trimmed := strings.TrimSpace(handle)
	if !instagramHandleRe.MatchString(trimmed) {
		return "", domainerrors.ValidationFailed("instagram handle must be 3-30 characters of letters, digits or underscore")
	}
	return trimmed, nil
}

// CreateProfileInput represents input for creating a profile
type CreateProfileInput struct {
	AgeRange       AgeRange  `json:"ageRange" binding:"required"`
	Attribute      Attribute `json:"attribute" binding:"required"`
	SchoolOrWork   string    `json:"schoolOrWork" binding:"required"`
	District       string    `json:"district" binding:"required"`
	NearestStation string    `json:"nearestStation" binding:"required"`
	Interests      []string  `json:"interests" binding:"required"`
	Bio            string    `json:"bio"`
	Photos         []string  `json:"photos" binding:"required"`
}

// UpdateProfileInput represents input for updating a profile
type UpdateProfileInput struct {
	AgeRange       AgeRange  `json:"ageRange" binding:"required"`
	Attribute      Attribute `json:"attribute" binding:"required"`
	SchoolOrWork   string    `json:"schoolOrWork" binding:"required"`
	District       string    `json:"district" binding:"required"`
	NearestStation string    `json:"nearestStation" binding:"required"`
	Interests      []string  `json:"interests" binding:"required"`
	Bio            string    `json:"bio"`
}

// UpdateInstagramHandleInput represents input for setting the Instagram handle
type UpdateInstagramHandleInput struct {
	Handle string `json:"handle" binding:"required"`
}

// AddPhotoInput represents input for appending a photo
type AddPhotoInput struct {
	PhotoURL string `json:"photoUrl" binding:"required"`
}

// RemovePhotoInput represents input for removing a photo
type RemovePhotoInput struct {
	PhotoURL string `json:"photoUrl" binding:"required"`
}

// ReorderPhotosInput represents input for reordering photos
type ReorderPhotosInput struct {
	PhotoOrder []string `json:"photoOrder" binding:"required"`
}
