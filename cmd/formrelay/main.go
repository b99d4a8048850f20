package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/docsynk/formrelay/modules/forms"
	"github.com/docsynk/formrelay/pkg/config"
	"github.com/docsynk/formrelay/pkg/email"
	"github.com/docsynk/formrelay/pkg/environment"
	"github.com/docsynk/formrelay/pkg/httpserver"
	"github.com/docsynk/formrelay/pkg/logger"
)

type appConfig struct {
	Env environment.Environment `env:"APP_ENV" envDefault:"development"`
}

func main() {
	var (
		appCfg  appConfig
		httpCfg httpserver.Config
		mailCfg email.Config
		formCfg forms.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&httpCfg)
	config.MustLoad(&mailCfg)
	config.MustLoad(&formCfg)

	// The bypass can only ever run outside production, regardless of what the
	// environment variable claims.
	formCfg.AllowDevBypass = formCfg.AllowDevBypass && !appCfg.Env.IsProduction()

	log := logger.New(
		logger.WithEnvironment(appCfg.Env, "formrelay"),
		logger.WithContextExtractors(environment.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	// Startup summary of delivery configuration, without exposing secrets.
	log.Info("delivery configuration",
		slog.Bool("provider_configured", mailCfg.IsConfigured()),
		slog.String("sender", mailCfg.SenderEmail),
		slog.String("recipient", mailCfg.RecipientEmail),
		slog.Bool("dev_bypass", formCfg.AllowDevBypass),
		slog.String("env", string(appCfg.Env)),
	)

	pipeline, err := forms.NewPipeline(formCfg, mailCfg, log)
	if err != nil {
		log.Error("failed to build submission pipeline", logger.Error(err))
		os.Exit(1)
	}

	ctx := context.Background()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(environment.Middleware(appCfg.Env))

	r.Get("/health", httpserver.HealthCheckHandler(ctx, log))
	r.Mount("/api", forms.NewHandler(pipeline, log).Router())

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	if err := srv.Run(ctx, r); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}
