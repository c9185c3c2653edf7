// Package rbac holds the role names and the navigation-guard decision.
//
// The decision keys on role names mirrored from the backend at signin. It
// is a UX convenience only: the backend re-authorizes every API call via
// the bearer token, so a wrong client-side decision can never grant access.
package rbac

// Role name constants as assigned by the IAM backend.
const (
	// RoleAdmin grants access to the admin screens (users, roles, audit).
	RoleAdmin = "ROLE_ADMIN"
	// RoleUser is the default role for self-registered accounts.
	RoleUser = "ROLE_USER"
	// RoleModerator is an intermediate role offered at registration.
	RoleModerator = "ROLE_MODERATOR"
)

// Decision is the outcome of a navigation-guard check.
type Decision int

const (
	// Allow renders the protected content unchanged.
	Allow Decision = iota
	// RedirectLogin sends the visitor to the login screen.
	RedirectLogin
	// RedirectHome sends an authenticated but unauthorized visitor to the
	// default view.
	RedirectHome
)

// Decide gates a protected navigation. requiredRole may be empty, in which
// case authentication alone suffices.
func Decide(authenticated bool, roles []string, requiredRole string) Decision {
	if !authenticated {
		return RedirectLogin
	}

	if requiredRole != "" && !HasRole(roles, requiredRole) {
		return RedirectHome
	}

	return Allow
}

// HasRole reports whether the role name set contains name.
func HasRole(roles []string, name string) bool {
	for _, role := range roles {
		if role == name {
			return true
		}
	}

	return false
}
