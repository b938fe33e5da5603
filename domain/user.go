// Package domain holds the entities of the persistence service: users, their roles and
// the state entries they own.
package domain

// Role is the closed set of roles a verified user can hold.
type Role int

const (
	// RoleStandard may read and write its own state entries.
	RoleStandard Role = iota
	// RoleAdministrator manages the user directory.
	RoleAdministrator
)

// RoleOf maps the persisted admin flag to a Role.
func RoleOf(isAdmin bool) Role {
	if isAdmin {
		return RoleAdministrator
	}
	return RoleStandard
}

func (r Role) String() string {
	switch r {
	case RoleStandard:
		return "standard"
	case RoleAdministrator:
		return "administrator"
	default:
		return "unknown"
	}
}

// User is a record of the user directory.
// PasswordHash is an opaque one-way digest and must never leave the service.
type User struct {
	Name         string
	PasswordHash string
	Role         Role
}

// IsAdmin reports whether the user holds the administrator role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdministrator
}

// Public returns a copy without the password hash, safe for listings.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}
