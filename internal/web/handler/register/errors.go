package register

import "github.com/pkg/errors"

var (
	// ErrInvalidFormData is used if the submitted form cannot be parsed.
	ErrInvalidFormData = errors.New("Invalid form data")

	// ErrInvalidRegistrationData is used if the form fields fail validation.
	ErrInvalidRegistrationData = errors.New("Invalid registration data")

	// ErrRegistrationFailed is the fallback message when the backend gives no detail.
	ErrRegistrationFailed = errors.New("Registration failed")
)
