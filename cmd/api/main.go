package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"videoserver/internal/adapter/repo"
	"videoserver/internal/heygen"
	"videoserver/internal/http/handlers"
	httpapi "videoserver/internal/http/httpapi"
	"videoserver/internal/infra"
	"videoserver/internal/infra/credentials"
	"videoserver/internal/reconcile"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	runner := infra.NewSQLRunner(dbpool, logger)

	videos := repo.NewVideoRepository(runner)
	users := repo.NewUserRepository(runner)
	credits := repo.NewCreditRepository(runner, logger)
	feedback := repo.NewFeedbackRepository(runner)
	products := repo.NewProductRepository(runner)

	upstream, configured := buildUpstream(ctx, cfg, runner, logger)

	engine := reconcile.NewEngine(videos, upstream, logger, reconcile.Config{
		PerItemTimeout: cfg.ReconcilePerItemTimeout,
		GlobalBudget:   cfg.ReconcileGlobalBudget,
	})

	app := &handlers.App{
		Logger:             logger,
		Users:              users,
		Credits:            credits,
		Feedback:           feedback,
		Products:           products,
		Reconciler:         engine,
		UpstreamConfigured: configured,
	}

	router := httpapi.NewRouter(app, cfg)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on %s", server.Addr())
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

// buildUpstream assembles the HeyGen client from the environment key, then
// the credentials store. A nil client degrades listing to stored data.
func buildUpstream(ctx context.Context, cfg *infra.Config, runner *infra.SQLRunner, logger infra.Logger) (reconcile.StatusFetcher, bool) {
	key := strings.TrimSpace(cfg.HeyGenAPIKey)
	if key == "" {
		stored, err := credentials.NewStore(runner).HeyGenAPIKey(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("no stored upstream key")
		}
		key = stored
	}
	if key == "" {
		logger.Warn().Msg("upstream not configured; serving stored statuses only")
		return nil, false
	}

	client, err := heygen.NewClient(heygen.Options{
		APIKey:         key,
		BaseURL:        cfg.HeyGenBaseURL,
		Logger:         &logger,
		RequestTimeout: cfg.ReconcilePerItemTimeout,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("upstream client init failed; serving stored statuses only")
		return nil, false
	}
	return client, true
}
