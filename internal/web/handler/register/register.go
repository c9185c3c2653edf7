package register

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/config"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/iamapi"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/web/handler"
)

const (
	// Path is the path to the registration page.
	Path = "/register"

	// TemplateName is the name of the registration template.
	TemplateName = "register"
)

// Form is the registration form payload. The role field carries the short
// role selector value the backend expects ("user", "admin" or "mod").
type Form struct {
	Username string `form:"username" validate:"required,min=3,max=20"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6,max=40"`
	Role     string `form:"role" validate:"required,oneof=user admin mod"`
}

// Service is the registration handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	deps      *handler.Deps
	validator *validator.Validate
}

// Handler is the registration handler.
var Handler = Service{}

// Init initializes the registration handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if app == nil || cfg == nil || deps == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.deps = deps
	s.validator = validator.New()

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RootPath, s.Get)
		router.Post(handler.RootPath, s.Post)
	})

	return nil
}

// Get handles the registration page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.Render(TemplateName, fiber.Map{
		"Title": s.cfg.Title,
	})
}

// Post handles the registration form submission. A successful signup does
// not create a session, the visitor signs in afterwards.
func (s *Service) Post(c *fiber.Ctx) error {
	var form Form

	if err := c.BodyParser(&form); err != nil {
		return s.renderError(c, ErrInvalidFormData.Error())
	}

	if err := s.validator.Struct(&form); err != nil {
		return s.renderError(c, ErrInvalidRegistrationData.Error())
	}

	req := iamapi.SignUpRequest{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
		Role:     []string{form.Role},
	}

	if err := s.deps.API.SignUp(c.Context(), req); err != nil {
		var apiErr *iamapi.Error
		if errors.As(err, &apiErr) {
			return s.renderError(c, apiErr.UserMessage(ErrRegistrationFailed.Error()))
		}

		log.Error().Err(err).Str("username", form.Username).Msg("signup request failed")

		return s.renderError(c, ErrRegistrationFailed.Error())
	}

	return c.Render(TemplateName, fiber.Map{
		"Title":   s.cfg.Title,
		"success": "Registration successful. You can sign in now.",
	})
}

func (s *Service) renderError(c *fiber.Ctx, message string) error {
	return c.Render(TemplateName, fiber.Map{
		"Title":    s.cfg.Title,
		"error":    message,
		"Username": c.FormValue("username"),
		"Email":    c.FormValue("email"),
	})
}
