package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"
	"github.com/rs/zerolog/log"

	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/config"
	logadapter "github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/logger/adapter/fiber"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/web/guard"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/web/handler"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/web/handler/admin/audit"
	adminrole "github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/web/handler/admin/role"
	adminuser "github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/web/handler/admin/user"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/web/handler/adminlogin"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/web/handler/dashboard"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/web/handler/login"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/web/handler/logout"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/web/handler/profile"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/web/handler/register"
)

// CheckAliveURI answers load balancer health checks.
const CheckAliveURI = "/checkalive"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	s.alive.Store(true)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration and handler
// dependencies.
func New(cfg *config.Config, deps *handler.Deps) (*Service, error) {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if deps == nil || deps.API == nil || deps.Sessions == nil {
		panic("handler dependencies cannot be nil")
	}

	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in debug mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("debug mode enabled: using local filesystem for templates")
	}

	// Add template helper functions
	templateEngine.AddFunc("iterate", func(count int) []int {
		result := make([]int, count)
		for i := range result {
			result[i] = i
		}

		return result
	})
	templateEngine.AddFunc("add", func(a, b int) int {
		return a + b
	})
	templateEngine.AddFunc("sub", func(a, b int) int {
		return a - b
	})

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          templateEngine,
		},
	)

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
				Browse:     false,
			},
		),
	)

	// access log middleware
	app.Use(logadapter.New(logadapter.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAliveURI,
	}))

	service := &Service{
		cfg: cfg,
		App: app,
	}

	app.Get(CheckAliveURI, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendStatus(fiber.StatusOK)
	})

	// navigation guard: anonymous visitors only reach the entry pages
	if deps.Guard == nil {
		deps.Guard = guard.New(deps.Sessions, cfg.Webserver.Session.CookieName)
	}

	deps.Guard.Public(login.Path, adminlogin.Path, register.Path, logout.Path, CheckAliveURI)
	app.Use(deps.Guard.Middleware)

	// init handlers (they register their own routes and role checks)
	handlers := []handler.Service{
		&login.Handler,
		&adminlogin.Handler,
		&register.Handler,
		&logout.Handler,
		&dashboard.Handler,
		&profile.Handler,
		&adminuser.Handler,
		&adminrole.Handler,
		&audit.Handler,
	}

	for _, h := range handlers {
		if err := h.Init(app, cfg, deps); err != nil {
			return nil, err
		}
	}

	return service, nil
}
