package domain

import "time"

// Role is the closed set of roles an identity can carry. Anything outside
// this set is rejected at the authentication boundary.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a recognised role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Identity models an authenticated actor. Users and admins share this shape
// but live in disjoint collections; the role decides which store backs a
// given identity.
type Identity struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Sanitized returns a copy with the password hash stripped. The gate attaches
// sanitized identities to the request context so handlers never see the hash.
func (i *Identity) Sanitized() *Identity {
	if i == nil {
		return nil
	}
	clone := *i
	clone.PasswordHash = ""
	return &clone
}
