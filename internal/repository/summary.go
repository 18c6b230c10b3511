package repository

import (
	"context"
	"time"

	"github.com/Janescience/work-logs-sub002/internal/entities"
	"github.com/Janescience/work-logs-sub002/internal/report"
)

type SummaryRepository interface {
	// LoadReportSource reads logs dated in [from, to) together with the issues,
	// users, teams and projects they may join to, from one consistent snapshot.
	LoadReportSource(ctx context.Context, from, to time.Time) (report.Source, error)
}

type SnapshotRepository interface {
	SaveSnapshot(ctx context.Context, snapshot entities.SummarySnapshot) error
	GetSnapshot(ctx context.Context, year, month int) (entities.SummarySnapshot, error)
	TryAdvisoryLock(ctx context.Context, key int64) (bool, error)
	AdvisoryUnlock(ctx context.Context, key int64) error
}
