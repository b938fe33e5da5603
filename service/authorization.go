package service

import (
	"iotpersistence/domain"
)

// Gate is the set of roles an operation admits.
// There is no hierarchy between roles: an operation is reachable by a role only when listed here.
type Gate struct {
	Standard      bool
	Administrator bool
}

var (
	// StateGate guards the state operations. Administrators own entries like any other user.
	StateGate = Gate{Standard: true, Administrator: true}
	// AdminGate guards the user directory.
	AdminGate = Gate{Administrator: true}
)

// Allows reports whether role is in the gate's set.
func (g Gate) Allows(role domain.Role) bool {
	switch role {
	case domain.RoleStandard:
		return g.Standard
	case domain.RoleAdministrator:
		return g.Administrator
	default:
		return false
	}
}

// Authorize fails with forbidden when user's role is not admitted.
func (g Gate) Authorize(user domain.User) error {
	if !g.Allows(user.Role) {
		return NewForbiddenError("operation not permitted for role "+user.Role.String(), nil)
	}
	return nil
}
