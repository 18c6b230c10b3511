package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Janescience/work-logs-sub002/internal/cli"
	"github.com/Janescience/work-logs-sub002/internal/config"
	"github.com/Janescience/work-logs-sub002/internal/infrastructure/postgres"
	"github.com/Janescience/work-logs-sub002/internal/usecase/summary"
	"github.com/Janescience/work-logs-sub002/internal/usecase/user"
	"github.com/Janescience/work-logs-sub002/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Environment, cfg.LogLevel)
	if err := cfg.ApplyTimezone(); err != nil {
		stdlog.Fatalf("failed to load timezone %q: %v", cfg.TZ, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	open := func(ctx context.Context) (*cli.Services, error) {
		pool, err := postgres.NewPool(ctx, cfg.DBURL)
		if err != nil {
			return nil, fmt.Errorf("connect db: %w", err)
		}
		repo := postgres.NewPostgresRepository(pool, log)
		return &cli.Services{
			Summary: summary.New(repo, repo, cfg.ReportTimeout, log),
			Users:   user.New(repo, log),
			Migrate: func(ctx context.Context) error {
				return postgres.RunMigrations(ctx, pool, cfg.MigrationsPath, log)
			},
			Close: pool.Close,
		}, nil
	}

	if err := cli.NewRootCmd(open).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
