package portfolio

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/tahmidspace/portfolio/core/csrf"
	"github.com/tahmidspace/portfolio/core/email"
	"github.com/tahmidspace/portfolio/core/health"
	"github.com/tahmidspace/portfolio/core/logger"
	"github.com/tahmidspace/portfolio/core/metrics"
	"github.com/tahmidspace/portfolio/core/response"
	"github.com/tahmidspace/portfolio/core/router"
	"github.com/tahmidspace/portfolio/core/server"
	"github.com/tahmidspace/portfolio/core/visitor"
	"github.com/tahmidspace/portfolio/middleware"
)

// App wires the edge layer, the application routes and the operational
// endpoints into one http.Handler.
type App struct {
	config  Config
	logger  *slog.Logger
	router  router.Router[*Context]
	store   visitor.Store
	tracker *visitor.Tracker
	guard   *csrf.Guard
	metrics *metrics.Metrics
	sender  email.EmailSender
	checks  []health.Check
	srvOpts []server.Option
}

// Option configures an App.
type Option func(*App) error

// WithLogger sets the application logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) error {
		if l == nil {
			return fmt.Errorf("%w: logger", ErrNilDependency)
		}
		a.logger = l
		return nil
	}
}

// WithStore sets the key-value store backing the visitor tracker.
// Defaults to an in-process MemoryStore.
func WithStore(s visitor.Store) Option {
	return func(a *App) error {
		if s == nil {
			return fmt.Errorf("%w: store", ErrNilDependency)
		}
		a.store = s
		return nil
	}
}

// WithEmailSender sets the contact form delivery channel.
// Defaults to a development sender that only logs.
func WithEmailSender(s email.EmailSender) Option {
	return func(a *App) error {
		if s == nil {
			return fmt.Errorf("%w: email sender", ErrNilDependency)
		}
		a.sender = s
		return nil
	}
}

// WithMetrics sets the metrics collectors.
func WithMetrics(m *metrics.Metrics) Option {
	return func(a *App) error {
		if m == nil {
			return fmt.Errorf("%w: metrics", ErrNilDependency)
		}
		a.metrics = m
		return nil
	}
}

// WithReadinessCheck adds a dependency probe to /health/ready.
func WithReadinessCheck(name string, fn func(context.Context) error) Option {
	return func(a *App) error {
		if fn == nil {
			return fmt.Errorf("%w: readiness check %q", ErrNilDependency, name)
		}
		a.checks = append(a.checks, health.Check{Name: name, Fn: fn})
		return nil
	}
}

// WithServerOptions passes options to the HTTP server created by Run.
func WithServerOptions(opts ...server.Option) Option {
	return func(a *App) error {
		a.srvOpts = append(a.srvOpts, opts...)
		return nil
	}
}

// New builds the application from cfg.
func New(cfg Config, opts ...Option) (*App, error) {
	a := &App{
		config: cfg,
		logger: logger.NewNope(),
	}

	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	if a.store == nil {
		a.store = visitor.NewMemoryStore()
	}
	if a.metrics == nil {
		a.metrics = metrics.New(cfg.Metrics)
	}
	if a.sender == nil {
		a.sender = email.NewDevSender(a.logger, cfg.EmailDir)
	}

	productionLike := cfg.IsProductionLike()
	cfg.Visitor.IsProductionLike = productionLike
	cfg.CSRF.IsProductionLike = productionLike

	tracker, err := visitor.NewFromConfig(cfg.Visitor, a.store,
		visitor.WithLogger(a.logger),
		visitor.WithObserver(a.metrics),
		visitor.WithCookieConfig(cfg.Cookie),
	)
	if err != nil {
		return nil, err
	}
	a.tracker = tracker

	guard, err := csrf.NewFromConfig(cfg.CSRF, csrf.WithCookieConfig(cfg.Cookie))
	if err != nil {
		return nil, err
	}
	a.guard = guard

	a.router = a.routes()

	return a, nil
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler {
	return a.router
}

// Tracker returns the visitor tracker.
func (a *App) Tracker() *visitor.Tracker {
	return a.tracker
}

// Metrics returns the metrics collectors.
func (a *App) Metrics() *metrics.Metrics {
	return a.metrics
}

// Run serves the application until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	opts := append([]server.Option{server.WithLogger(a.logger)}, a.srvOpts...)
	srv, err := server.NewFromConfig(a.config.Server, opts...)
	if err != nil {
		return err
	}
	return srv.Run(ctx, a.Handler())()
}

func (a *App) routes() router.Router[*Context] {
	r := router.New(
		router.WithContextFactory(newContext),
		router.WithErrorHandler(response.JSONErrorHandler[*Context]),
		router.WithLogger[*Context](a.logger),
	)

	r.Use(
		middleware.RequestID[*Context](),
		middleware.LoggingWithLogger[*Context](a.logger),
		middleware.Metrics[*Context](a.metrics),
		middleware.SecurityHeadersWithConfig[*Context](a.securityHeaders()),
	)

	r.Get("/health/live", health.Liveness[*Context])
	r.Get("/health/ready", health.Readiness[*Context](a.logger, a.checks...))
	r.Get("/metrics", metrics.Handler[*Context](a.metrics))

	r.Group(func(r router.Router[*Context]) {
		r.Use(middleware.VisitorWithConfig[*Context](middleware.VisitorConfig{
			Tracker: a.tracker,
			Logger:  a.logger,
		}))

		r.Get("/", a.home)
		r.Get("/api/csrf", a.issueToken)

		r.With(
			middleware.CSRFWithConfig[*Context](middleware.CSRFConfig{
				Guard:     a.guard,
				Logger:    a.logger,
				OnVerdict: a.metrics.CSRFVerified,
			}),
			middleware.BodyLimitWithSize[*Context](a.config.MaxContactBody),
		).Post("/api/contact", a.contact)
	})

	return r
}

func (a *App) securityHeaders() middleware.SecurityHeadersConfig {
	cfg := middleware.DefaultSecurityHeaders
	cfg.IsDevelopment = a.config.IsDevelopment()
	return cfg
}
