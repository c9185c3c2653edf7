// Package user provides handlers for managing users in the admin area.
package user

import (
	"errors"
	"strconv"
	"strings"

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
	// Path is the base path for user management.
	Path = "/admin/users"

	// TemplateList is the template for listing users.
	TemplateList = "admin/user/list"
	// TemplateForm is the template for editing a user.
	TemplateForm = "admin/user/form"

	// DefaultPageSize for pagination.
	DefaultPageSize = 25
)

// Form is the user edit form payload.
type Form struct {
	Email       string `form:"email" validate:"required,email"`
	PhoneNumber string `form:"phone_number" validate:"omitempty,max=32"`
	Enabled     bool   `form:"enabled"`
}

// Service provides user management operations.
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
	app.Get(Path+"/:id/edit", admin, s.Edit)
	app.Post(Path+"/:id", admin, s.Update)
	app.Post(Path+"/:id/delete", admin, s.Delete)

	return nil
}

// List shows users with search and pagination. The backend returns the full
// set, filtering and paging happen here.
func (s *Service) List(c *fiber.Ctx) error {
	data := s.deps.Guard.Session(c)

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	pageSize := c.QueryInt("pageSize", DefaultPageSize)
	if pageSize < 1 || pageSize > 100 {
		pageSize = DefaultPageSize
	}

	search := c.Query("search", "")

	users, err := s.deps.API.ListUsers(c.Context(), data.Token)
	if err != nil {
		log.Error().Err(err).Msg("failed to list users")

		return s.renderList(c, fiber.Map{
			"Error":  s.userMessage(err, ErrUsersLoadFailed),
			"Search": search,
		})
	}

	users = filterUsers(users, search)

	totalItems := len(users)
	pageUsers, totalPages, page := paginateUsers(users, page, pageSize)

	return s.renderList(c, fiber.Map{
		"Users":         pageUsers,
		"CurrentUserID": data.User.ID,
		"Search":        search,
		"Page":          page,
		"PageSize":      pageSize,
		"TotalItems":    totalItems,
		"TotalPages":    totalPages,
		"HasPrev":       page > 1,
		"HasNext":       page < totalPages,
		"PrevPage":      page - 1,
		"NextPage":      page + 1,
	})
}

// Edit shows the edit form for a user.
func (s *Service) Edit(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Redirect(Path)
	}

	data := s.deps.Guard.Session(c)

	target, err := s.findUser(c, data.Token, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to load user")
		return c.Redirect(Path)
	}

	nav := navigation.NewContext("Edit User", "admin", "user").
		AddBreadcrumb("Home", handler.RootPath, false).
		AddBreadcrumb("Users", Path, false).
		AddBreadcrumb("Edit", Path+"/"+strconv.FormatInt(id, 10)+"/edit", true)

	return c.Render(TemplateForm, fiber.Map{
		"Title":      s.cfg.Title,
		"Navigation": nav,
		"IsAdmin":    true,
		"User":       target,
	}, handler.BaseLayout)
}

// Update updates a user.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Redirect(Path)
	}

	var form Form

	if err = c.BodyParser(&form); err != nil {
		return s.renderList(c, fiber.Map{"Error": ErrInvalidFormData.Error()})
	}

	if err = s.validator.Struct(&form); err != nil {
		return s.renderList(c, fiber.Map{"Error": ErrInvalidUserData.Error()})
	}

	data := s.deps.Guard.Session(c)

	update := iamapi.UserUpdate{
		Email:       form.Email,
		PhoneNumber: form.PhoneNumber,
		Enabled:     form.Enabled,
	}

	if err = s.deps.API.UpdateUser(c.Context(), data.Token, id, update); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update user")

		return s.renderList(c, fiber.Map{
			"Error": s.userMessage(err, ErrUserUpdateFailed),
		})
	}

	return c.Redirect(Path)
}

// Delete removes a user. Deleting the signed-in account is refused, the
// session behind it would keep working against a gone user.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Redirect(Path)
	}

	data := s.deps.Guard.Session(c)

	if data.User.ID == id {
		return s.renderList(c, fiber.Map{
			"Error": ErrSelfDelete.Error(),
		})
	}

	if err = s.deps.API.DeleteUser(c.Context(), data.Token, id); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete user")

		return s.renderList(c, fiber.Map{
			"Error": s.userMessage(err, ErrUserDeleteFailed),
		})
	}

	return c.Redirect(Path)
}

func (s *Service) findUser(c *fiber.Ctx, token string, id int64) (*iamapi.User, error) {
	users, err := s.deps.API.ListUsers(c.Context(), token)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}

	return nil, ErrUserNotFound
}

func (s *Service) renderList(c *fiber.Ctx, bind fiber.Map) error {
	nav := navigation.NewContext("Users", "admin", "user").
		AddBreadcrumb("Home", handler.RootPath, false).
		AddBreadcrumb("Users", Path, true)

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

// filterUsers applies the search filter on username and email.
func filterUsers(users []iamapi.User, search string) []iamapi.User {
	if search == "" {
		return users
	}

	needle := strings.ToLower(search)
	filtered := make([]iamapi.User, 0)

	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Username), needle) ||
			strings.Contains(strings.ToLower(u.Email), needle) {
			filtered = append(filtered, u)
		}
	}

	return filtered
}

// paginateUsers calculates pagination and returns the page slice.
func paginateUsers(users []iamapi.User, page, pageSize int) (pageUsers []iamapi.User, totalPages, actualPage int) {
	totalItems := len(users)

	totalPages = (totalItems + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page > totalPages {
		page = totalPages
	}

	var (
		startIdx = (page - 1) * pageSize
		endIdx   = startIdx + pageSize
	)

	if endIdx > totalItems {
		endIdx = totalItems
	}

	if startIdx < totalItems {
		pageUsers = users[startIdx:endIdx]
	} else {
		pageUsers = []iamapi.User{}
	}

	return pageUsers, totalPages, page
}
