package logout

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/config"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/web/handler"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/web/handler/login"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/web/session"
)

// Path is the path of the logout route.
const Path = "/logout"

// Service is the logout handler service.
type Service struct {
	handler.Service
	cfg  *config.Config
	deps *handler.Deps
}

// Handler is the logout handler.
var Handler = Service{}

// Init initializes the logout handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if app == nil || cfg == nil || deps == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.deps = deps

	app.Get(Path, s.Logout)
	app.Post(Path, s.Logout)

	return nil
}

// Logout clears the stored session and the session cookie. Logging out
// without a session is a no-op and still lands on the login page.
func (s *Service) Logout(c *fiber.Ctx) error {
	cookieName := s.cfg.Webserver.Session.CookieName

	if sessionID := c.Cookies(cookieName); sessionID != "" {
		if err := s.deps.Sessions.Logout(sessionID); err != nil {
			log.Error().Err(err).Msg("failed to delete session")
		}
	}

	c.Cookie(session.ClearCookie(cookieName))

	return c.Redirect(login.Path)
}
