package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Janescience/work-logs-sub002/internal/config"
	"github.com/Janescience/work-logs-sub002/internal/handler"
	"github.com/Janescience/work-logs-sub002/internal/infrastructure/postgres"
	"github.com/Janescience/work-logs-sub002/internal/jobs"
	"github.com/Janescience/work-logs-sub002/internal/usecase/summary"
	"github.com/Janescience/work-logs-sub002/internal/usecase/team"
	"github.com/Janescience/work-logs-sub002/internal/usecase/user"
	"github.com/Janescience/work-logs-sub002/internal/usecase/worklog"
	"github.com/Janescience/work-logs-sub002/pkg/logger"
)

func main() {
	cfg := config.Load()
	logger := logger.New(cfg.Environment, cfg.LogLevel)
	if err := cfg.ApplyTimezone(); err != nil {
		log.Fatalf("failed to load timezone %q: %v", cfg.TZ, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("failed to connect db: %v", err)
	}
	defer pool.Close()

	if cfg.Migrate {
		if err := postgres.RunMigrations(ctx, pool, cfg.MigrationsPath, logger); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
		logger.Info("migrations completed")
	}

	repo := postgres.NewPostgresRepository(pool, logger)
	summaryUC := summary.New(repo, repo, cfg.ReportTimeout, logger)
	teamUC := team.New(repo, repo, logger)
	worklogUC := worklog.New(repo, repo, repo, repo, logger)
	userUC := user.New(repo, logger)
	h := handler.New(summaryUC, teamUC, worklogUC, userUC, logger).WithReadiness(pool.Ping)

	var snapshotJob *jobs.SnapshotJob
	if cfg.SnapshotEnabled {
		snapshotJob, err = jobs.NewSnapshotJob(cfg.SnapshotCron, summaryUC, repo, logger)
		if err != nil {
			log.Fatalf("invalid SNAPSHOT_CRON %q: %v", cfg.SnapshotCron, err)
		}
		snapshotJob.Start()
		logger.Info("snapshot job scheduled", "cron", cfg.SnapshotCron, "tz", cfg.TZ)
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           h.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	if snapshotJob != nil {
		snapshotJob.Stop(shutdownCtx)
	}
}
