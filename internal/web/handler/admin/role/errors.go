package role

import "github.com/pkg/errors"

var (
	// ErrInvalidFormData is used if the submitted form cannot be parsed.
	ErrInvalidFormData = errors.New("Invalid form data")

	// ErrInvalidRoleData is used if the role form fails validation.
	ErrInvalidRoleData = errors.New("Invalid role data")

	// ErrRolesLoadFailed is the fallback when roles cannot be fetched.
	ErrRolesLoadFailed = errors.New("Failed to load roles")

	// ErrPermissionsLoadFailed is the fallback when the permission catalog cannot be fetched.
	ErrPermissionsLoadFailed = errors.New("Failed to load permissions")

	// ErrRoleCreateFailed is the fallback when the create is rejected.
	ErrRoleCreateFailed = errors.New("Failed to create role")

	// ErrRoleUpdateFailed is the fallback when the update is rejected.
	ErrRoleUpdateFailed = errors.New("Failed to update role")
)
