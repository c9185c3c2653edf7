// Package dashboard provides the landing page for signed-in users.
package dashboard

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/config"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/rbac"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/web/handler"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/web/navigation"
)

const (
	// Path is the path to the dashboard page.
	Path = handler.RootPath

	// TemplateName is the name of the dashboard template.
	TemplateName = "dashboard"
)

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	cfg  *config.Config
	deps *handler.Deps
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if app == nil || cfg == nil || deps == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.deps = deps

	app.Get(Path, s.Get)

	return nil
}

// Get handles the dashboard page rendering. Everything shown here comes
// from the session record written at signin, no backend round trip.
func (s *Service) Get(c *fiber.Ctx) error {
	data := s.deps.Guard.Session(c)

	nav := navigation.NewContext("Dashboard", "dashboard", "dashboard").
		AddBreadcrumb("Home", Path, true)

	return c.Render(TemplateName, fiber.Map{
		"Title":      s.cfg.Title,
		"Navigation": nav,
		"User":       data.User,
		"IsAdmin":    data.HasRole(rbac.RoleAdmin),
	}, handler.BaseLayout)
}
