package summary

import (
	"context"

	"github.com/Janescience/work-logs-sub002/internal/entities"
)

type SummaryUseCase interface {
	MonthlySummary(ctx context.Context, year, month int) (entities.MonthlySummary, error)
	YearlyTrend(ctx context.Context, year int) ([]entities.MonthlyTrend, error)
	GetSnapshot(ctx context.Context, year, month int) (entities.SummarySnapshot, error)
	// TakeSnapshot recomputes the monthly summary and stores it, replacing any
	// earlier snapshot of the same month.
	TakeSnapshot(ctx context.Context, year, month int) (entities.SummarySnapshot, error)
}
