package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContext(t *testing.T) {
	nav := NewContext("Users", "admin", "user")

	assert.Equal(t, "Users", nav.PageTitle)
	assert.Equal(t, "admin", nav.ActiveSection)
	assert.Equal(t, "user", nav.ActivePage)
	assert.Empty(t, nav.Breadcrumbs)
}

func TestAddBreadcrumb_Chains(t *testing.T) {
	nav := NewContext("Audit Log", "admin", "audit").
		AddBreadcrumb("Home", "/", false).
		AddBreadcrumb("Audit Log", "/admin/audit", true)

	assert.Len(t, nav.Breadcrumbs, 2)
	assert.Equal(t, "Home", nav.Breadcrumbs[0].Title)
	assert.False(t, nav.Breadcrumbs[0].Active)
	assert.Equal(t, "/admin/audit", nav.Breadcrumbs[1].URL)
	assert.True(t, nav.Breadcrumbs[1].Active)
}

func TestIsActive(t *testing.T) {
	nav := NewContext("Roles", "admin", "role")

	assert.True(t, nav.IsActive("admin", "role"))
	assert.False(t, nav.IsActive("admin", "user"))
	assert.False(t, nav.IsActive("dashboard", "role"))
}

func TestIsSectionActive(t *testing.T) {
	nav := NewContext("Profile", "profile", "profile")

	assert.True(t, nav.IsSectionActive("profile"))
	assert.False(t, nav.IsSectionActive("admin"))
}

func TestIsAdminSection(t *testing.T) {
	assert.True(t, NewContext("Users", SectionAdmin, "user").IsAdminSection())
	assert.False(t, NewContext("Dashboard", "dashboard", "dashboard").IsAdminSection())
}
