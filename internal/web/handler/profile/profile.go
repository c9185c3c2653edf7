// Package profile provides the self-service profile handler.
package profile

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/config"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/iamapi"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/rbac"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/web/handler"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/web/navigation"
)

const (
	// Path is the path to the profile page.
	Path = "/profile"

	// TemplateName is the name of the profile template.
	TemplateName = "profile"
)

// UpdateForm is the profile update form payload.
type UpdateForm struct {
	Email       string `form:"email" validate:"required,email"`
	PhoneNumber string `form:"phone_number" validate:"omitempty,max=32"`
}

// PasswordForm is the password change form payload.
type PasswordForm struct {
	CurrentPassword string `form:"current_password" validate:"required"`
	NewPassword     string `form:"new_password" validate:"required,min=6,max=40"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=NewPassword"`
}

// Service is the profile handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	deps      *handler.Deps
	validator *validator.Validate
}

// Handler is the profile handler.
var Handler = Service{}

// Init initializes the profile handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if app == nil || cfg == nil || deps == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.deps = deps
	s.validator = validator.New()

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RootPath, s.Get)
		router.Post(handler.RootPath, s.Update)
		router.Post("/password", s.ChangePassword)
	})

	return nil
}

// Get renders the profile page with the current record from the backend.
func (s *Service) Get(c *fiber.Ctx) error {
	data := s.deps.Guard.Session(c)

	user, err := s.deps.API.Profile(c.Context(), data.Token)
	if err != nil {
		log.Error().Err(err).Msg("failed to load profile")

		return s.render(c, fiber.Map{
			"User":  data.User,
			"error": s.userMessage(err, ErrProfileLoadFailed),
		})
	}

	return s.render(c, fiber.Map{"User": user})
}

// Update handles the profile update form submission.
func (s *Service) Update(c *fiber.Ctx) error {
	data := s.deps.Guard.Session(c)

	var form UpdateForm

	if err := c.BodyParser(&form); err != nil {
		return s.render(c, fiber.Map{"User": data.User, "error": ErrInvalidFormData.Error()})
	}

	if err := s.validator.Struct(&form); err != nil {
		return s.render(c, fiber.Map{"User": data.User, "error": ErrInvalidProfileData.Error()})
	}

	update := iamapi.ProfileUpdate{
		Email:       form.Email,
		PhoneNumber: form.PhoneNumber,
	}

	if err := s.deps.API.UpdateProfile(c.Context(), data.Token, update); err != nil {
		log.Error().Err(err).Msg("failed to update profile")

		return s.render(c, fiber.Map{
			"User":  data.User,
			"error": s.userMessage(err, ErrProfileUpdateFailed),
		})
	}

	// re-fetch so the page shows what the backend actually stored
	user, err := s.deps.API.Profile(c.Context(), data.Token)
	if err != nil {
		return s.render(c, fiber.Map{"User": data.User, "success": "Profile updated"})
	}

	return s.render(c, fiber.Map{"User": user, "success": "Profile updated"})
}

// ChangePassword handles the password change form submission.
func (s *Service) ChangePassword(c *fiber.Ctx) error {
	data := s.deps.Guard.Session(c)

	var form PasswordForm

	if err := c.BodyParser(&form); err != nil {
		return s.render(c, fiber.Map{"User": data.User, "error": ErrInvalidFormData.Error()})
	}

	if err := s.validator.Struct(&form); err != nil {
		return s.render(c, fiber.Map{"User": data.User, "error": ErrInvalidPasswordData.Error()})
	}

	err := s.deps.API.ChangePassword(c.Context(), data.Token, form.CurrentPassword, form.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to change password")

		return s.render(c, fiber.Map{
			"User":  data.User,
			"error": s.userMessage(err, ErrPasswordChangeFailed),
		})
	}

	return s.render(c, fiber.Map{"User": data.User, "success": "Password changed"})
}

func (s *Service) render(c *fiber.Ctx, bind fiber.Map) error {
	nav := navigation.NewContext("Profile", "profile", "profile").
		AddBreadcrumb("Home", handler.RootPath, false).
		AddBreadcrumb("Profile", Path, true)

	bind["Title"] = s.cfg.Title
	bind["Navigation"] = nav
	bind["IsAdmin"] = s.deps.Guard.Session(c).HasRole(rbac.RoleAdmin)

	return c.Render(TemplateName, bind, handler.BaseLayout)
}

// userMessage surfaces the backend message for API errors and falls back
// to the given message for everything else.
func (s *Service) userMessage(err error, fallback error) string {
	var apiErr *iamapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage(fallback.Error())
	}

	return fallback.Error()
}
