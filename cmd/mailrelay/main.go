package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/mailrelay/internal"
	"github.com/dmitrymomot/mailrelay/internal/config"
	"github.com/dmitrymomot/mailrelay/internal/relay"
	"github.com/dmitrymomot/mailrelay/middlewares"
	"github.com/dmitrymomot/mailrelay/pkg/health"
	"github.com/dmitrymomot/mailrelay/pkg/logger"
	"github.com/dmitrymomot/mailrelay/pkg/mailer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())

	sender, err := newSender(cfg, log)
	if err != nil {
		return err
	}
	sender = mailer.WithTimeout(sender, cfg.Mailer.Timeout)

	app := internal.New(
		internal.WithLogger(log),
		internal.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Recover(log),
			middlewares.BodyLimit(cfg.BodyLimit),
		),
		internal.WithHealthChecks(health.Checks{
			"provider": mailer.Healthcheck(sender),
		}),
		internal.WithHandlers(
			relay.NewHandler(sender,
				relay.WithLogger(log),
				relay.WithStrictValidation(cfg.StrictValidation),
			),
		),
	)

	log.Info("starting mail relay",
		slog.String("provider", string(cfg.Mailer.Provider)),
		slog.Bool("strict_validation", cfg.StrictValidation),
		slog.Bool("provider_debug", cfg.Mailer.Debug),
	)

	return app.Run(cfg.Address(),
		internal.WriteTimeout(cfg.WriteTimeout),
		internal.ShutdownTimeout(cfg.ShutdownTimeout),
		internal.ShutdownHook(logger.Flush),
	)
}
