package iamapi

// Account is the authenticated identity returned by the signin endpoint.
// Roles carries role names only; this is the set the route guard keys on.
type Account struct {
	ID       int64    `json:"id"       validate:"required"`
	Username string   `json:"username" validate:"required"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

// SignInResponse is the payload of POST /auth/signin.
// The token is opaque to this client; it is stored and replayed as-is.
type SignInResponse struct {
	AccessToken string `json:"accessToken" validate:"required"`
	Account
}

// SignUpRequest is the payload of POST /auth/signup.
type SignUpRequest struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Role     []string `json:"role"`
}

// Permission is a leaf capability. It is displayed and edited here but
// never enforced client-side.
type Permission struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Role groups permissions under a name such as "ROLE_ADMIN". The name is
// the authorization key at the navigation-guard level.
type Role struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Permissions []Permission `json:"permissions"`
}

// User is a directory record as served by /users and /profile.
// Unlike Account, its roles are full Role objects.
// Timestamps stay strings: the backend emits ISO-8601 and the UI only
// displays and sorts them.
type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Roles       []Role `json:"roles"`
	Enabled     bool   `json:"enabled"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	LastLogin   string `json:"lastLogin,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// UserUpdate is the payload of PUT /users/{id}.
type UserUpdate struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Enabled     bool   `json:"enabled"`
}

// ProfileUpdate is the payload of PUT /profile.
type ProfileUpdate struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// PermissionRef references a permission by id in role change payloads.
type PermissionRef struct {
	ID int64 `json:"id"`
}

// RoleChange is the payload of POST /roles and PUT /roles/{id}.
type RoleChange struct {
	Name        string          `json:"name"`
	Permissions []PermissionRef `json:"permissions"`
}

// AuditEntry is one row of the audit trail served by GET /audit.
type AuditEntry struct {
	ID        int64  `json:"id"`
	Timestamp string `json:"timestamp"`
	Action    string `json:"action"`
	Username  string `json:"username"`
	Target    string `json:"target"`
	Details   string `json:"details"`
	Status    string `json:"status"`
}

type signInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type passwordChangeRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
