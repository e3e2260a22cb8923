// @title                       Gerenciamento API
// @version                     1.0
// @description                 User accounts, roles and the product catalog.
// @BasePath                    /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	_ "github.com/meugerenciamento/gerenciamento-api/docs"
	"github.com/meugerenciamento/gerenciamento-api/internal/api"
	"github.com/meugerenciamento/gerenciamento-api/internal/api/handler"
	"github.com/meugerenciamento/gerenciamento-api/internal/core/service"
	mongodb "github.com/meugerenciamento/gerenciamento-api/internal/infrastructure/db/mongo"
	redisdb "github.com/meugerenciamento/gerenciamento-api/internal/infrastructure/db/redis"
	"github.com/meugerenciamento/gerenciamento-api/internal/infrastructure/queue"
	"github.com/meugerenciamento/gerenciamento-api/internal/infrastructure/security"
	"github.com/meugerenciamento/gerenciamento-api/internal/pkg/config"
	"github.com/meugerenciamento/gerenciamento-api/pkg/logger"
)

const serviceName = "gerenciamento-api"

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty || cfg.Development(),
		Service: serviceName,
		Env:     cfg.Env,
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

// run wires the dependencies and serves until a signal arrives. Errors are
// returned rather than fatal so the deferred disconnects always run.
func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("disconnect mongo")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("close redis")
		}
	}()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure user indexes: %w", err)
	}
	if err := mongodb.EnsureAuditIndexes(ctx, db); err != nil {
		return fmt.Errorf("ensure audit indexes: %w", err)
	}
	productRepo := mongodb.NewProductRepository(db)
	counts := redisdb.NewCountCache(rdb, cfg.Dashboard.CacheTTL)

	tokens, err := security.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return fmt.Errorf("build token service: %w", err)
	}
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)

	workerCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()
	auditService := service.NewAuditService(mongodb.NewAuditRepository(db), log)
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, auditService, log)
	dispatcher.Start(workerCtx)

	e := api.NewRouter(api.Dependencies{
		Auth:      service.NewAuthService(userRepo, hasher, tokens, counts, log),
		Users:     service.NewUserService(userRepo, counts, dispatcher, log),
		Products:  service.NewProductService(productRepo, counts, dispatcher, log),
		Dashboard: service.NewDashboardService(productRepo, userRepo, counts, log),
		Tokens:    tokens,
		Health: map[string]handler.Pinger{
			"mongodb": mongodb.NewPinger(db),
			"redis":   redisdb.NewPinger(rdb),
		},
		CORSOrigin: cfg.CORSOrigin,
		Metrics:    prometheus.DefaultRegisterer,
		Log:        log,
	})

	srvErrCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("server listening")
		srvErrCh <- e.Start(":" + cfg.Port)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	var serveErr error
	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-srvErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr = fmt.Errorf("serve: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}

	stopWorkers()
	dispatcher.Wait()

	if serveErr != nil {
		return serveErr
	}
	log.Info().Msg("server exited cleanly")
	return nil
}
