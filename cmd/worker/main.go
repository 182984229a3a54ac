package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"videoserver/internal/adapter/repo"
	"videoserver/internal/infra"
	"videoserver/internal/ledger"
)

const (
	runLockKey = "credit-refresh"
	runLockTTL = 23 * time.Hour
)

func main() {
	var once bool
	flag.BoolVar(&once, "once", false, "run a single refresh immediately and exit")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv).With().Str("cmd", "worker").Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("worker: db connection failed")
	}
	defer pool.Close()

	runner := infra.NewSQLRunner(pool, logger)
	refresher := ledger.NewRefresher(
		repo.NewUserRepository(runner),
		repo.NewCreditRepository(runner, logger),
		logger,
	)

	rdb := infra.NewRedisClient(cfg)
	if rdb != nil {
		defer rdb.Close()
	}
	lock := infra.NewRunLock(rdb, runLockKey, runLockTTL)

	if once {
		runRefresh(ctx, logger, refresher, lock)
		return
	}

	logger.Info().Msg("worker started; refreshing credits daily at 00:00 UTC")
	for {
		wait := untilNextMidnightUTC(time.Now())
		select {
		case <-ctx.Done():
			logger.Info().Msg("worker stopped")
			return
		case <-time.After(wait):
		}
		runRefresh(ctx, logger, refresher, lock)
	}
}

func runRefresh(ctx context.Context, logger infra.Logger, refresher *ledger.Refresher, lock *infra.RunLock) {
	runID := time.Now().UTC().Format("2006-01-02")
	ok, err := lock.Acquire(ctx, runID)
	if err != nil {
		logger.Error().Err(err).Str("run", runID).Msg("run lock failed; proceeding without it")
	} else if !ok {
		logger.Info().Str("run", runID).Msg("refresh already claimed by another replica")
		return
	}

	summary, err := refresher.Run(ctx)
	if err != nil {
		logger.Error().Err(err).Str("run", runID).Msg("credit refresh failed")
		return
	}
	logger.Info().
		Str("run", runID).
		Int("granted", summary.Granted).
		Int("skipped", summary.Skipped).
		Int("errors", summary.Errors).
		Msg("credit refresh complete")
}

func untilNextMidnightUTC(now time.Time) time.Duration {
	now = now.UTC()
	next := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)
	return next.Sub(now)
}
