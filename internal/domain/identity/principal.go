// Package identity carries the authenticated caller through every use case.
package identity

import "github.com/google/uuid"

type Role string

const (
	RoleUser  Role = "user"
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleOwner, RoleAdmin:
		return true
	}
	return false
}

// Principal is the verified identity supplied by the auth middleware.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// CanManageFleet reports whether the caller may list and edit cars.
func (p Principal) CanManageFleet() bool {
	return p.Role == RoleOwner || p.Role == RoleAdmin
}

// Owns reports whether the caller is the owner of record, admins included.
func (p Principal) Owns(ownerID uuid.UUID) bool {
	return p.IsAdmin() || p.UserID == ownerID
}
