package domain

import (
	"slices"
	"strings"
	"time"
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Active       bool
	SecurityKey  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the authenticated principal recovered from a login or a
// bearer token. It carries no credentials.
type Identity struct {
	Email string
	Name  string
	Roles Roles
}

// Roles is an explicit set of authority strings. Authorization checks use
// exact membership, never substring matching on the joined form.
type Roles []string

// ParseRoles splits the stored comma-joined role column into a set.
func ParseRoles(s string) Roles {
	var roles Roles
	for _, part := range strings.Split(s, ",") {
		if role := strings.TrimSpace(part); role != "" {
			roles = append(roles, role)
		}
	}
	return roles
}

func (r Roles) Has(role string) bool {
	return slices.Contains(r, role)
}

// String re-joins the set with commas for transport payloads.
func (r Roles) String() string {
	return strings.Join(r, ",")
}
