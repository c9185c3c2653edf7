package profile

import "github.com/pkg/errors"

var (
	// ErrInvalidFormData is used if the submitted form cannot be parsed.
	ErrInvalidFormData = errors.New("Invalid form data")

	// ErrInvalidProfileData is used if the profile form fails validation.
	ErrInvalidProfileData = errors.New("Invalid profile data")

	// ErrInvalidPasswordData is used if the password form fails validation.
	ErrInvalidPasswordData = errors.New("Invalid password data, passwords must match and have at least 6 characters")

	// ErrProfileLoadFailed is the fallback when the profile cannot be fetched.
	ErrProfileLoadFailed = errors.New("Failed to load profile")

	// ErrProfileUpdateFailed is the fallback when the update is rejected.
	ErrProfileUpdateFailed = errors.New("Failed to update profile")

	// ErrPasswordChangeFailed is the fallback when the password change is rejected.
	ErrPasswordChangeFailed = errors.New("Failed to change password")
)
