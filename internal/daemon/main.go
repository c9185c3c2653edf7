// Package daemon assembles the application from its parts: logger, session
// storage, backend client and the web service.
package daemon

import (
	"github.com/gofiber/storage"
	"github.com/gofiber/storage/memory/v2"
	"github.com/gofiber/storage/mysql/v2"
	"github.com/gofiber/storage/postgres/v3"
	"github.com/rs/zerolog/log"

	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/config"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/iamapi"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/logger"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/web"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/web/guard"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/web/handler"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/web/session"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start starts the Daemon's web service and blocks until shutdown.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(d.cfg.Webserver.ListenAddr())
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	if err := logger.Init(cfg.Log); err != nil {
		panic(err)
	}

	sessions := session.NewStore(newSessionStorage(cfg), cfg.Webserver.Session.ExpiryTime)

	deps := &handler.Deps{
		API:      iamapi.New(cfg.Backend),
		Sessions: sessions,
		Guard:    guard.New(sessions, cfg.Webserver.Session.CookieName),
	}

	webService, err := web.New(cfg, deps)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize web service")
		return nil
	}

	return &Daemon{
		cfg:        cfg,
		webService: webService,
	}
}

// newSessionStorage opens the configured session storage backend. Sessions
// must survive restarts, so production deployments point this at a shared
// database; the memory driver is for dev and tests.
func newSessionStorage(cfg *config.Config) storage.Storage {
	sc := cfg.SessionStore

	switch sc.Driver {
	case config.SessionStoreMySQL:
		return mysql.New(mysql.Config{
			Host:     sc.Host,
			Port:     sc.Port,
			Database: sc.Database,
			Username: sc.Username,
			Password: sc.Password,
			Table:    sc.Table,
		})
	case config.SessionStorePostgres:
		return postgres.New(postgres.Config{
			Host:     sc.Host,
			Port:     sc.Port,
			Database: sc.Database,
			Username: sc.Username,
			Password: sc.Password,
			Table:    sc.Table,
			SSLMode:  sc.SSLMode,
		})
	default:
		log.Warn().Msg("using in-memory session storage, sessions will not survive a restart")

		return memory.New()
	}
}
