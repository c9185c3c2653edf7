// Package role provides handlers for managing roles and their permissions
// in the admin area.
package role

import (
	"errors"
	"strconv"

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
	// Path is the base path for role management.
	Path = "/admin/roles"

	// TemplateList is the template for listing roles.
	TemplateList = "admin/role/list"
)

// Form is the role create and edit form payload. Permissions carries the
// selected permission ids of the multi-select.
type Form struct {
	Name        string  `form:"name" validate:"required,min=3,max=64"`
	Permissions []int64 `form:"permissions"`
}

// Service provides role management operations.
type Service struct {
	handler.Service
	cfg       *config.Config
	deps      *handler.Deps
	validator *validator.Validate
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if app == nil || cfg == nil || deps == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.deps = deps
	s.validator = validator.New()

	admin := deps.Guard.RequireRole(rbac.RoleAdmin)

	app.Get(Path, admin, s.List)
	app.Post(Path, admin, s.Create)
	app.Post(Path+"/:id", admin, s.Update)

	return nil
}

// List shows all roles next to the permission catalog the create and edit
// forms select from.
func (s *Service) List(c *fiber.Ctx) error {
	data := s.deps.Guard.Session(c)

	roles, err := s.deps.API.ListRoles(c.Context(), data.Token)
	if err != nil {
		log.Error().Err(err).Msg("failed to list roles")

		return s.renderList(c, fiber.Map{
			"Error": s.userMessage(err, ErrRolesLoadFailed),
		})
	}

	permissions, err := s.deps.API.ListPermissions(c.Context(), data.Token)
	if err != nil {
		log.Error().Err(err).Msg("failed to list permissions")

		return s.renderList(c, fiber.Map{
			"Roles": roles,
			"Error": s.userMessage(err, ErrPermissionsLoadFailed),
		})
	}

	return s.renderList(c, fiber.Map{
		"Roles":       roles,
		"Permissions": permissions,
	})
}

// Create creates a new role.
func (s *Service) Create(c *fiber.Ctx) error {
	change, errMsg := s.parseForm(c)
	if errMsg != "" {
		return s.renderList(c, fiber.Map{"Error": errMsg})
	}

	data := s.deps.Guard.Session(c)

	if err := s.deps.API.CreateRole(c.Context(), data.Token, change); err != nil {
		log.Error().Err(err).Str("name", change.Name).Msg("failed to create role")

		return s.renderList(c, fiber.Map{
			"Error": s.userMessage(err, ErrRoleCreateFailed),
		})
	}

	return c.Redirect(Path)
}

// Update replaces a role's name and permission set.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Redirect(Path)
	}

	change, errMsg := s.parseForm(c)
	if errMsg != "" {
		return s.renderList(c, fiber.Map{"Error": errMsg})
	}

	data := s.deps.Guard.Session(c)

	if err = s.deps.API.UpdateRole(c.Context(), data.Token, id, change); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update role")

		return s.renderList(c, fiber.Map{
			"Error": s.userMessage(err, ErrRoleUpdateFailed),
		})
	}

	return c.Redirect(Path)
}

// parseForm parses and validates the role form into the backend change
// payload. The second return value is the user-facing error message, empty
// on success.
func (s *Service) parseForm(c *fiber.Ctx) (iamapi.RoleChange, string) {
	var form Form

	if err := c.BodyParser(&form); err != nil {
		return iamapi.RoleChange{}, ErrInvalidFormData.Error()
	}

	if err := s.validator.Struct(&form); err != nil {
		return iamapi.RoleChange{}, ErrInvalidRoleData.Error()
	}

	refs := make([]iamapi.PermissionRef, 0, len(form.Permissions))
	for _, id := range form.Permissions {
		refs = append(refs, iamapi.PermissionRef{ID: id})
	}

	return iamapi.RoleChange{Name: form.Name, Permissions: refs}, ""
}

func (s *Service) renderList(c *fiber.Ctx, bind fiber.Map) error {
	nav := navigation.NewContext("Roles", "admin", "role").
		AddBreadcrumb("Home", handler.RootPath, false).
		AddBreadcrumb("Roles", Path, true)

	bind["Title"] = s.cfg.Title
	bind["Navigation"] = nav
	bind["IsAdmin"] = true

	return c.Render(TemplateList, bind, handler.BaseLayout)
}

func (s *Service) userMessage(err error, fallback error) string {
	var apiErr *iamapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage(fallback.Error())
	}

	return fallback.Error()
}
