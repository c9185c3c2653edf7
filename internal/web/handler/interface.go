package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/config"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/iamapi"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/web/guard"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/web/session"
)

// Deps bundles the collaborators injected into every web handler: the IAM
// backend client, the session store, and the navigation guard. There are no
// package-level instances of any of them.
type Deps struct {
	API      *iamapi.Client
	Sessions *session.Store
	Guard    *guard.Guard
}

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, deps *Deps) error
}
