// Package permissions derives mutation capabilities from the current identity.
package permissions

import "github.com/consentmap/consentmap/internal/models"

// Capabilities is the set of mutation rights of the current identity.
// It is recomputed from the identity on every change; it carries no state
// of its own.
type Capabilities struct {
	CanEdit         bool
	CanDelete       bool
	CanClearHistory bool
	CanAdd          bool
	CanUpload       bool
}

// Resolve maps an identity to its capabilities. A nil user is the
// unauthenticated state.
//
// Adding and uploading are open to everyone, including unauthenticated
// callers; editing, deleting and clearing history are admin-only. The
// stores themselves do not consult this table — enforcement happens at the
// call site (or centrally via the gate package).
func Resolve(user *models.User) Capabilities {
	admin := user != nil && user.Role == models.RoleAdmin
	return Capabilities{
		CanEdit:         admin,
		CanDelete:       admin,
		CanClearHistory: admin,
		CanAdd:          true,
		CanUpload:       true,
	}
}
