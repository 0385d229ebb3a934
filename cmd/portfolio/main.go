package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/sync/errgroup"

	"github.com/tahmidspace/portfolio/app/portfolio"
	"github.com/tahmidspace/portfolio/core/config"
	"github.com/tahmidspace/portfolio/core/email"
	"github.com/tahmidspace/portfolio/core/logger"
	"github.com/tahmidspace/portfolio/core/metrics"
	"github.com/tahmidspace/portfolio/core/server"
	"github.com/tahmidspace/portfolio/integration/database/redis"
	"github.com/tahmidspace/portfolio/integration/email/postmark"
	"github.com/tahmidspace/portfolio/middleware"
)

func main() {
	var cfg portfolio.Config
	if err := config.Load(&cfg); err != nil {
		slog.Error("failed to load configuration", logger.Error(err))
		os.Exit(1)
	}

	log := newLogger(cfg)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("service stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func newLogger(cfg portfolio.Config) *slog.Logger {
	opts := []logger.Option{
		logger.WithContextExtractors(middleware.RequestIDExtractor),
	}
	if cfg.IsDevelopment() {
		opts = append(opts, logger.WithDevelopment(cfg.AppName))
	} else {
		opts = append(opts, logger.WithProduction(cfg.AppName))
	}
	opts = append(opts, logger.WithLevelString(cfg.LogLevel))
	return logger.New(opts...)
}

func run(ctx context.Context, cfg portfolio.Config, log *slog.Logger) error {
	m := metrics.New(cfg.Metrics)

	opts := []portfolio.Option{
		portfolio.WithLogger(log),
		portfolio.WithMetrics(m),
	}

	if cfg.Redis.ConnectionURL != "" {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		store := redis.NewStore(client, cfg.Redis,
			redis.WithStoreLogger(log),
			redis.WithStateChangeHook(func(_, to gobreaker.State) {
				m.BreakerStateChanged(int(to))
			}),
		)
		opts = append(opts,
			portfolio.WithStore(store),
			portfolio.WithReadinessCheck("redis", redis.Healthcheck(client)),
			portfolio.WithServerOptions(server.WithShutdownHook(func(context.Context) error {
				return client.Close()
			})),
		)
	} else {
		log.Warn("REDIS_URL is not set, visitor data is kept in memory", logger.Component("store"))
	}

	if cfg.Postmark.Enabled() {
		client, err := postmark.New(cfg.Postmark)
		if err != nil {
			return err
		}
		opts = append(opts, portfolio.WithEmailSender(client))
	} else {
		opts = append(opts, portfolio.WithEmailSender(email.NewDevSender(log, cfg.EmailDir)))
	}

	app, err := portfolio.New(cfg, opts...)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.Run(ctx)
	})

	return g.Wait()
}
