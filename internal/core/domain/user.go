package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Role is the single role a user takes on when registering a profile.
type Role string

const (
	RoleNone       Role = ""
	RoleAdvertiser Role = "advertiser"
	RoleInfluencer Role = "influencer"
)

// ParseRole accepts the stored role label; an empty label means no role.
func ParseRole(v string) (Role, error) {
	switch Role(v) {
	case RoleNone, RoleAdvertiser, RoleInfluencer:
		return Role(v), nil
	default:
		return RoleNone, fmt.Errorf("unknown role %q", v)
	}
}

// User is the identity record issued by the external identity provider.
type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  Role      `json:"role,omitempty"`
}

// HasRole reports whether the user already registered as advertiser or influencer.
func (u User) HasRole() bool {
	return u.Role != RoleNone
}
