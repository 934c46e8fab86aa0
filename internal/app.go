package internal

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/mailrelay/pkg/health"
	"github.com/dmitrymomot/mailrelay/pkg/logger"
)

// Default server timeouts.
const (
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 60 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20 // 1MB
	defaultShutdownTimeout   = 30 * time.Second
)

// Default health check paths.
const (
	defaultLivenessPath  = "/health/live"
	defaultReadinessPath = "/health/ready"
)

// App wires the router, middleware, handlers and health probes.
// App is immutable after creation; all configuration is done via New().
type App struct {
	router       chi.Router
	errorHandler ErrorHandler
	logger       *slog.Logger
	healthChecks health.Checks
	middlewares  []Middleware
	handlers     []Handler
	withHealth   bool
}

// New creates a new application with the given options.
//
// Example:
//
//	app := internal.New(
//	    internal.WithLogger(log),
//	    internal.WithMiddleware(middlewares.RequestID(), middlewares.Recover(log)),
//	    internal.WithHandlers(relay.NewHandler(sender, relay.WithLogger(log))),
//	)
func New(opts ...Option) *App {
	a := &App{
		router: chi.NewRouter(),
		logger: logger.NewNope(),
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.errorHandler == nil {
		a.errorHandler = DefaultErrorHandler(a.logger)
	}

	a.setupRoutes()
	return a
}

// ServeHTTP makes App an http.Handler, mostly for tests.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// Run starts the HTTP server on addr and blocks until shutdown.
//
// Example:
//
//	err := app.Run("0.0.0.0:8002", internal.ShutdownHook(logger.Flush))
func (a *App) Run(addr string, opts ...RunOption) error {
	cfg := buildRunConfig(opts...)

	return runServer(runtimeConfig{
		handler:         a.router,
		address:         addr,
		logger:          a.logger,
		writeTimeout:    cfg.writeTimeout,
		shutdownTimeout: cfg.shutdownTimeout,
		shutdownHooks:   cfg.shutdownHooks,
		baseCtx:         cfg.baseCtx,
		ready:           cfg.ready,
	})
}

// setupRoutes configures the router with middleware, health probes and handlers.
func (a *App) setupRoutes() {
	for _, mw := range a.middlewares {
		a.router.Use(a.adaptMiddleware(mw))
	}

	r := &routerAdapter{router: a.router, app: a}

	if a.withHealth {
		r.GET(defaultLivenessPath, healthRoute(health.LivenessHandler()))
		r.GET(defaultReadinessPath, healthRoute(health.ReadinessHandler(a.healthChecks, health.WithLogger(a.logger))))
	}

	for _, h := range a.handlers {
		h.Routes(r)
	}
}

// healthRoute adapts a health handler, which always writes its own response.
func healthRoute(h http.HandlerFunc) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		h(w, r)
		return nil
	}
}
