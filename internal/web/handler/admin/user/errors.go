package user

import "github.com/pkg/errors"

var (
	// ErrInvalidFormData is used if the submitted form cannot be parsed.
	ErrInvalidFormData = errors.New("Invalid form data")

	// ErrInvalidUserData is used if the user form fails validation.
	ErrInvalidUserData = errors.New("Invalid user data")

	// ErrUsersLoadFailed is the fallback when the user list cannot be fetched.
	ErrUsersLoadFailed = errors.New("Failed to load users")

	// ErrUserNotFound is used when the requested user id is not in the list.
	ErrUserNotFound = errors.New("User not found")

	// ErrUserUpdateFailed is the fallback when the update is rejected.
	ErrUserUpdateFailed = errors.New("Failed to update user")

	// ErrUserDeleteFailed is the fallback when the delete is rejected.
	ErrUserDeleteFailed = errors.New("Failed to delete user")

	// ErrSelfDelete refuses deleting the signed-in account.
	ErrSelfDelete = errors.New("You cannot delete your own account")
)
