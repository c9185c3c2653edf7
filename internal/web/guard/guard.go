package guard

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/rbac"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/web/session"
)

const (
	// localsKey stores the materialized session in fiber.Locals for
	// template access.
	localsKey = "CurrentSession"
)

// Guard gates protected views. It re-reads the session on every request:
// login and logout change the stored state between navigations, so a
// one-time check at startup would go stale.
type Guard struct {
	store      *session.Store
	cookieName string

	// LoginPath receives unauthenticated visitors.
	LoginPath string
	// HomePath receives authenticated visitors that lack a required role.
	HomePath string

	public []string
}

// New creates a guard over the given session store.
func New(store *session.Store, cookieName string) *Guard {
	if store == nil {
		panic("session store is nil")
	}

	if cookieName == "" {
		cookieName = session.DefaultCookieName
	}

	return &Guard{
		store:      store,
		cookieName: cookieName,
		LoginPath:  "/login",
		HomePath:   "/",
	}
}

// Public registers path prefixes that render without authentication.
func (g *Guard) Public(prefixes ...string) *Guard {
	g.public = append(g.public, prefixes...)
	return g
}

// Session materializes the current request's session. The middleware caches
// it in fiber.Locals; outside the middleware chain it falls back to storage.
func (g *Guard) Session(c *fiber.Ctx) session.Data {
	if data, ok := c.Locals(localsKey).(session.Data); ok {
		return data
	}

	return g.store.Read(c.Cookies(g.cookieName))
}

// Middleware is the global authentication gate. Unauthenticated requests to
// protected paths are redirected to the login view; authenticated requests
// to a login view are sent home.
func (g *Guard) Middleware(c *fiber.Ctx) error {
	path := strings.ToLower(c.Path())
	if strings.HasPrefix(path, "/static") {
		return c.Next()
	}

	data := g.store.Read(c.Cookies(g.cookieName))
	c.Locals(localsKey, data)

	if g.isPublic(path) {
		// a logged-in visitor has no business on a login page
		if data.IsAuthenticated() && g.isLoginPage(path) {
			return c.Redirect(g.HomePath)
		}

		return c.Next()
	}

	if !data.IsAuthenticated() {
		return c.Redirect(g.LoginPath)
	}

	return c.Next()
}

// RequireRole returns per-route middleware enforcing a role name. It is a
// UX gate only: the backend authorizes every API call independently, so
// this never stands alone as a security control.
func (g *Guard) RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data := g.Session(c)

		switch rbac.Decide(data.IsAuthenticated(), data.User.Roles, role) {
		case rbac.RedirectLogin:
			return c.Redirect(g.LoginPath)
		case rbac.RedirectHome:
			log.Warn().Str("username", data.User.Username).Str("role", role).
				Str("path", c.Path()).Msg("missing required role")

			return c.Redirect(g.HomePath)
		case rbac.Allow:
		}

		return c.Next()
	}
}

func (g *Guard) isPublic(path string) bool {
	for _, prefix := range g.public {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

func (g *Guard) isLoginPage(path string) bool {
	return strings.HasPrefix(path, g.LoginPath) || strings.HasPrefix(path, "/admin/login")
}
