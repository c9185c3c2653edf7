package adminlogin

import "github.com/pkg/errors"

var (
	// ErrInvalidFormData is used if the submitted form cannot be parsed.
	ErrInvalidFormData = errors.New("Invalid form data")

	// ErrInvalidCredentialFormat is used if username or password fail validation.
	ErrInvalidCredentialFormat = errors.New("Invalid username or password format")

	// ErrLoginFailed is the fallback message when the backend gives no detail.
	ErrLoginFailed = errors.New("Login failed")

	// ErrNotAnAdministrator is shown when valid credentials lack the admin role.
	ErrNotAnAdministrator = errors.New("Access Denied: You are not an administrator")

	// ErrInternalServerError is used for unexpected internal failures.
	ErrInternalServerError = errors.New("Internal server error, please try again later")
)
