package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/pacam/formrelay/internal/config"
	"github.com/pacam/formrelay/internal/handlers"
	"github.com/pacam/formrelay/internal/notification"
	"github.com/pacam/formrelay/internal/submission"
	"github.com/pacam/formrelay/internal/web"
	"github.com/pacam/formrelay/middlewares"
	"github.com/pacam/formrelay/pkg/logger"
	"github.com/pacam/formrelay/pkg/mailer"
	"github.com/pacam/formrelay/pkg/mailer/resend"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", logger.Error(err))
		os.Exit(1)
	}

	log, flush := logger.New(cfg.Log, middlewares.RequestIDExtractor())

	if err := run(cfg, log, flush); err != nil {
		log.Error("application error", logger.Error(err))
		_ = flush(context.Background())
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger, flush logger.FlushFunc) error {
	var sender mailer.Sender
	if cfg.DryRun() {
		log.Warn("mail dry run enabled, messages are logged and not sent")
		sender = mailer.NewLogSender(log)
	} else {
		sender = resend.New(cfg.Resend)
	}
	gateway := mailer.NewGateway(sender,
		mailer.WithLogger(log),
		mailer.WithDefaultTags(mailer.SimpleTags("formrelay")),
	)

	renderer, err := notification.NewRenderer()
	if err != nil {
		return err
	}
	catalog, err := submission.DefaultCatalog()
	if err != nil {
		return err
	}

	orchestrator := submission.NewOrchestrator(catalog, renderer, gateway,
		submission.WithLogger(log),
		submission.WithAdminDomains(cfg.AdminDomains...),
		submission.WithUniqueReferences(cfg.UniqueRefs),
	)

	app := web.New(
		web.WithLogger(log),
		web.WithPrefix(cfg.APIPrefix),
		web.WithMiddleware(
			middlewares.RequestID(),
			middlewares.RequestLogger(),
			middlewares.Recover(),
			middlewares.SecureHeaders(),
			middlewares.CORS(middlewares.WithAllowOrigins(cfg.CORSOrigins...)),
			middlewares.BodyLimit(cfg.BodyLimit),
			middlewares.Timeout(cfg.RequestTimeout),
		),
		web.WithHandlers(handlers.NewSubmissions(orchestrator,
			handlers.WithSubmitMiddleware(middlewares.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst,
				middlewares.WithTrustedProxies(cfg.TrustedProxies...),
			)),
		)),
		web.WithErrorHandler(handlers.ErrorHandler),
		web.WithNotFoundHandler(handlers.NotFound),
		web.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		web.WithHealthChecks(
			web.WithReadinessCheck("mailer", gateway.Healthcheck),
		),
	)

	log.Info("starting formrelay",
		slog.String("addr", cfg.Addr()),
		slog.String("prefix", cfg.APIPrefix),
		slog.Bool("dry_run", cfg.DryRun()),
	)

	return app.Run(cfg.Addr(),
		web.Logger(log),
		web.ShutdownTimeout(cfg.ShutdownTimeout),
		web.ShutdownHook(flush),
	)
}
