package login

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/config"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/iamapi"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/web/handler"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/web/session"
)

const (
	// Path is the path to the login page.
	Path = "/login"

	// TemplateName is the name of the login template.
	TemplateName = "login"
)

// Form is the login form payload. Validation runs before any backend call.
type Form struct {
	Username string `form:"username" validate:"required,min=3"`
	Password string `form:"password" validate:"required,min=4"`
}

// Service is the login handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	deps      *handler.Deps
	validator *validator.Validate
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if app == nil || cfg == nil || deps == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.deps = deps
	s.validator = validator.New()

	// register routes
	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RootPath, s.Get)
		router.Post(handler.RootPath, s.Post)
	})

	return nil
}

// Get handles the login page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.Render(TemplateName, fiber.Map{
		"Title": s.cfg.Title,
	})
}

// Post handles the login form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	var form Form

	if err := c.BodyParser(&form); err != nil {
		return s.renderError(c, ErrInvalidFormData.Error())
	}

	if err := s.validator.Struct(&form); err != nil {
		return s.renderError(c, ErrInvalidCredentialFormat.Error())
	}

	resp, err := s.deps.API.SignIn(c.Context(), form.Username, form.Password)
	if err != nil {
		var apiErr *iamapi.Error
		if errors.As(err, &apiErr) {
			// credential failure: show the backend message, session unchanged
			return s.renderError(c, apiErr.UserMessage(ErrLoginFailed.Error()))
		}

		log.Error().Err(err).Str("username", form.Username).Msg("signin request failed")

		return s.renderError(c, ErrLoginFailed.Error())
	}

	sessionID := s.deps.Sessions.NewID()

	if _, err = s.deps.Sessions.Login(sessionID, resp); err != nil {
		log.Error().Err(err).Msg("failed to write session")
		return s.renderError(c, ErrInternalServerError.Error())
	}

	cookie := session.Cookie(
		s.cfg.Webserver.Session.CookieName,
		sessionID,
		s.cfg.Webserver.Session.ExpiryTime,
		!s.cfg.DevMode,
	)
	c.Cookie(cookie)

	return c.Redirect(handler.RootPath)
}

func (s *Service) renderError(c *fiber.Ctx, message string) error {
	return c.Render(TemplateName, fiber.Map{
		"Title":    s.cfg.Title,
		"error":    message,
		"Username": c.FormValue("username"),
	})
}
