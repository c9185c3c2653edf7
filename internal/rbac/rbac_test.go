package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name          string
		authenticated bool
		roles         []string
		requiredRole  string
		want          Decision
	}{
		{
			name:          "unauthenticated always redirects to login",
			authenticated: false,
			roles:         nil,
			requiredRole:  RoleAdmin,
			want:          RedirectLogin,
		},
		{
			name:          "unauthenticated without required role still redirects to login",
			authenticated: false,
			roles:         nil,
			requiredRole:  "",
			want:          RedirectLogin,
		},
		{
			name:          "authenticated with empty role set lacks admin",
			authenticated: true,
			roles:         []string{},
			requiredRole:  RoleAdmin,
			want:          RedirectHome,
		},
		{
			name:          "authenticated admin passes admin gate",
			authenticated: true,
			roles:         []string{RoleAdmin},
			requiredRole:  RoleAdmin,
			want:          Allow,
		},
		{
			name:          "authenticated renders when no role required",
			authenticated: true,
			roles:         []string{RoleUser},
			requiredRole:  "",
			want:          Allow,
		},
		{
			name:          "non-admin role does not satisfy admin gate",
			authenticated: true,
			roles:         []string{RoleUser, RoleModerator},
			requiredRole:  RoleAdmin,
			want:          RedirectHome,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.authenticated, tt.roles, tt.requiredRole))
		})
	}
}

func TestHasRole(t *testing.T) {
	assert.True(t, HasRole([]string{RoleUser, RoleAdmin}, RoleAdmin))
	assert.False(t, HasRole([]string{RoleUser}, RoleAdmin))
	assert.False(t, HasRole(nil, RoleAdmin))
	assert.False(t, HasRole([]string{}, ""))
}
