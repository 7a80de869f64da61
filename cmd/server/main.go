// Command server runs the palm analysis API.
//
// Startup order: env file, config, logging, tracing, database, external
// clients, router, background dispatcher, HTTP server. Shutdown drains
// in-flight requests, stops the dispatcher, and flushes traces.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/palmveda/palm-backend/internal/ai"
	"github.com/palmveda/palm-backend/internal/config"
	httpapi "github.com/palmveda/palm-backend/internal/http"
	"github.com/palmveda/palm-backend/internal/mail"
	"github.com/palmveda/palm-backend/internal/observability"
	"github.com/palmveda/palm-backend/internal/repo"
	"github.com/palmveda/palm-backend/internal/services"
	"github.com/palmveda/palm-backend/internal/sysutil"

	_ "github.com/palmveda/palm-backend/docs"
)

// version is stamped at build time via -ldflags.
var version = "dev"

// @title        PalmVeda API
// @version      1.0
// @description  AI palm reading and job-role compatibility reports.
// @BasePath     /api/v1
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	sysutil.SetLogLevel(cfg.LogLevel)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}
	defer func() {
		c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(c); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	analyzer := ai.NewClient(cfg.AI)
	mailer := mail.NewResendMailer(cfg.Email)

	gin.SetMode(cfg.GinMode)
	engine := gin.New()
	httpapi.RegisterRoutes(engine, db, analyzer, mailer, cfg)

	// Background email delivery and pending-stash cleanup.
	dispatcher := &services.OutboxDispatcher{
		DB:          db,
		Mailer:      mailer,
		Pending:     &services.PendingService{DB: db, TTL: cfg.PendingTTL},
		Interval:    cfg.Outbox.Interval,
		MaxAttempts: cfg.Outbox.MaxAttempts,
		Backoff:     cfg.Outbox.Backoff,
	}
	go dispatcher.Run(ctx)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", version).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	// Drain in-flight requests; analyze calls can be slow, give them time.
	drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(drainCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
}
