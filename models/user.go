package models

import (
	"fmt"
	"strings"
	"time"
)

// Role is the access level of a user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole converts a wire value into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("invalid role %q", s)
	}
	return r, nil
}

// User is an authenticated identity. OpenID is the stable external id issued by the
// identity provider and is unique across the users table.
type User struct {
	ID           int64     `db:"id" json:"id"`
	OpenID       string    `db:"open_id" json:"openId"`
	Name         *string   `db:"name" json:"name,omitempty"`
	Email        *string   `db:"email" json:"email,omitempty"`
	LoginMethod  *string   `db:"login_method" json:"loginMethod,omitempty"`
	Role         Role      `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
	LastSignedIn time.Time `db:"last_signed_in" json:"lastSignedIn"`
}
