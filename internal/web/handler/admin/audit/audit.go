// Package audit provides the audit log viewer for the admin area.
package audit

import (
	"errors"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/config"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/iamapi"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/rbac"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/web/handler"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/web/navigation"
)

const (
	// Path is the path to the audit log page.
	Path = "/admin/audit"

	// TemplateName is the name of the audit log template.
	TemplateName = "admin/audit/list"

	// DefaultPageSize is the default number of entries per page.
	DefaultPageSize = 25

	desc = "desc"
)

// QueryParams holds the query and pagination parameters.
type QueryParams struct {
	Page         int
	PageSize     int
	SearchQuery  string
	FilterStatus string
	FilterAction string
	SortField    string
	SortOrder    string
}

// ViewData represents pagination data for the audit table.
type ViewData struct {
	Entries      []iamapi.AuditEntry
	CurrentPage  int
	PageSize     int
	TotalItems   int
	TotalPages   int
	HasPrevPage  bool
	HasNextPage  bool
	PrevPage     int
	NextPage     int
	SearchQuery  string
	FilterStatus string
	FilterAction string
	SortField    string
	SortOrder    string
}

// Service is the audit log handler service.
type Service struct {
	handler.Service
	cfg  *config.Config
	deps *handler.Deps
}

// Handler is the audit log handler.
var Handler = Service{}

// Init initializes the audit log handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if app == nil || cfg == nil || deps == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.deps = deps

	app.Get(Path, deps.Guard.RequireRole(rbac.RoleAdmin), s.Get)

	return nil
}

// Get handles the audit log page rendering. The backend returns the full
// log, filtering, sorting and paging happen here.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext("Audit Log", "admin", "audit").
		AddBreadcrumb("Home", handler.RootPath, false).
		AddBreadcrumb("Audit Log", Path, true)

	params := QueryParams{
		Page:         c.QueryInt("page", 1),
		PageSize:     c.QueryInt("pageSize", DefaultPageSize),
		SearchQuery:  c.Query("search", ""),
		FilterStatus: c.Query("status", ""),
		FilterAction: c.Query("action", ""),
		SortField:    c.Query("sort", "timestamp"),
		SortOrder:    c.Query("order", desc),
	}

	if params.Page < 1 {
		params.Page = 1
	}

	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = DefaultPageSize
	}

	data := s.deps.Guard.Session(c)

	entries, err := s.deps.API.AuditLog(c.Context(), data.Token)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch audit log")

		return c.Render(TemplateName, fiber.Map{
			"Title":      s.cfg.Title,
			"Navigation": nav,
			"IsAdmin":    true,
			"Error":      s.userMessage(err, ErrAuditLoadFailed),
		}, handler.BaseLayout)
	}

	entries = filterEntries(entries, &params)
	sortEntries(entries, params.SortField, params.SortOrder)

	totalItems := len(entries)
	pageEntries, totalPages, actualPage := paginateEntries(entries, params.Page, params.PageSize)
	params.Page = actualPage

	view := buildViewData(pageEntries, totalPages, &params)
	view.TotalItems = totalItems

	log.Debug().
		Int("total_entries", totalItems).
		Int("page", params.Page).
		Int("page_size", params.PageSize).
		Str("search", params.SearchQuery).
		Str("filter_status", params.FilterStatus).
		Str("filter_action", params.FilterAction).
		Str("sort_field", params.SortField).
		Str("sort_order", params.SortOrder).
		Msg("audit log retrieved")

	return c.Render(TemplateName, fiber.Map{
		"Title":      s.cfg.Title,
		"Navigation": nav,
		"IsAdmin":    true,
		"Data":       view,
	}, handler.BaseLayout)
}

func (s *Service) userMessage(err error, fallback error) string {
	var apiErr *iamapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage(fallback.Error())
	}

	return fallback.Error()
}

// filterEntries applies search, status and action filters.
func filterEntries(entries []iamapi.AuditEntry, params *QueryParams) []iamapi.AuditEntry {
	if params.SearchQuery != "" {
		needle := strings.ToLower(params.SearchQuery)
		filtered := make([]iamapi.AuditEntry, 0)

		for _, e := range entries {
			if strings.Contains(strings.ToLower(e.Username), needle) ||
				strings.Contains(strings.ToLower(e.Action), needle) ||
				strings.Contains(strings.ToLower(e.Target), needle) ||
				strings.Contains(strings.ToLower(e.Details), needle) {
				filtered = append(filtered, e)
			}
		}

		entries = filtered
	}

	if params.FilterStatus != "" {
		filtered := make([]iamapi.AuditEntry, 0)

		for _, e := range entries {
			if strings.EqualFold(e.Status, params.FilterStatus) {
				filtered = append(filtered, e)
			}
		}

		entries = filtered
	}

	if params.FilterAction != "" {
		filtered := make([]iamapi.AuditEntry, 0)

		for _, e := range entries {
			if strings.EqualFold(e.Action, params.FilterAction) {
				filtered = append(filtered, e)
			}
		}

		entries = filtered
	}

	return entries
}

// sortEntries sorts entries by the specified field and order. Timestamps
// are ISO-8601 strings, lexicographic order matches chronological order.
func sortEntries(entries []iamapi.AuditEntry, sortField, sortOrder string) {
	less := func(a, b string) bool {
		if sortOrder == desc {
			return strings.ToLower(a) > strings.ToLower(b)
		}

		return strings.ToLower(a) < strings.ToLower(b)
	}

	switch sortField {
	case "timestamp":
		sort.SliceStable(entries, func(i, j int) bool {
			return less(entries[i].Timestamp, entries[j].Timestamp)
		})
	case "username":
		sort.SliceStable(entries, func(i, j int) bool {
			return less(entries[i].Username, entries[j].Username)
		})
	case "action":
		sort.SliceStable(entries, func(i, j int) bool {
			return less(entries[i].Action, entries[j].Action)
		})
	case "status":
		sort.SliceStable(entries, func(i, j int) bool {
			return less(entries[i].Status, entries[j].Status)
		})
	}
}

// paginateEntries calculates pagination and returns the page slice.
func paginateEntries(entries []iamapi.AuditEntry, page, pageSize int) (pageEntries []iamapi.AuditEntry, totalPages, actualPage int) {
	totalItems := len(entries)

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
		pageEntries = entries[startIdx:endIdx]
	} else {
		pageEntries = []iamapi.AuditEntry{}
	}

	return pageEntries, totalPages, page
}

// buildViewData creates ViewData with pagination information.
func buildViewData(entries []iamapi.AuditEntry, totalPages int, params *QueryParams) ViewData {
	return ViewData{
		Entries:      entries,
		CurrentPage:  params.Page,
		PageSize:     params.PageSize,
		TotalItems:   len(entries),
		TotalPages:   totalPages,
		HasPrevPage:  params.Page > 1,
		HasNextPage:  params.Page < totalPages,
		PrevPage:     params.Page - 1,
		NextPage:     params.Page + 1,
		SearchQuery:  params.SearchQuery,
		FilterStatus: params.FilterStatus,
		FilterAction: params.FilterAction,
		SortField:    params.SortField,
		SortOrder:    params.SortOrder,
	}
}
