package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/Janescience/work-logs-sub002/internal/entities"
	"github.com/Janescience/work-logs-sub002/internal/report"
	"github.com/Janescience/work-logs-sub002/internal/repository"
	"github.com/Janescience/work-logs-sub002/pkg/logger"
)

type useCase struct {
	summaryRepo  repository.SummaryRepository
	snapshotRepo repository.SnapshotRepository
	timeout      time.Duration
	logger       logger.Logger
}

func New(summaryRepo repository.SummaryRepository, snapshotRepo repository.SnapshotRepository, timeout time.Duration, log logger.Logger) SummaryUseCase {
	return &useCase{
		summaryRepo:  summaryRepo,
		snapshotRepo: snapshotRepo,
		timeout:      timeout,
		logger:       log,
	}
}

func (u *useCase) MonthlySummary(ctx context.Context, year, month int) (entities.MonthlySummary, error) {
	w, err := report.MonthWindow(year, month)
	if err != nil {
		return entities.MonthlySummary{}, err
	}
	src, err := u.load(ctx, w)
	if err != nil {
		return entities.MonthlySummary{}, err
	}
	result, diag := report.Monthly(src, w)
	u.reportDiagnostics(diag, "year", year, "month", month)
	u.logger.Debug("monthly summary computed", "year", year, "month", month,
		"entries", diag.Entries, "types", len(result.ProjectSummary), "users", len(result.IndividualSummary))
	return result, nil
}

func (u *useCase) YearlyTrend(ctx context.Context, year int) ([]entities.MonthlyTrend, error) {
	w, err := report.YearWindow(year)
	if err != nil {
		return nil, err
	}
	src, err := u.load(ctx, w)
	if err != nil {
		return nil, err
	}
	trend, diag := report.Yearly(src, w)
	u.reportDiagnostics(diag, "year", year)
	return trend, nil
}

func (u *useCase) GetSnapshot(ctx context.Context, year, month int) (entities.SummarySnapshot, error) {
	if _, err := report.MonthWindow(year, month); err != nil {
		return entities.SummarySnapshot{}, err
	}
	return u.snapshotRepo.GetSnapshot(ctx, year, month)
}

func (u *useCase) TakeSnapshot(ctx context.Context, year, month int) (entities.SummarySnapshot, error) {
	result, err := u.MonthlySummary(ctx, year, month)
	if err != nil {
		return entities.SummarySnapshot{}, err
	}
	snap := entities.SummarySnapshot{Year: year, Month: month, Summary: result, ComputedAt: time.Now()}
	if err := u.snapshotRepo.SaveSnapshot(ctx, snap); err != nil {
		u.logger.Error("failed to save snapshot", "year", year, "month", month, "error", err)
		return entities.SummarySnapshot{}, err
	}
	return snap, nil
}

func (u *useCase) load(ctx context.Context, w report.Window) (report.Source, error) {
	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}
	src, err := u.summaryRepo.LoadReportSource(ctx, w.From, w.To)
	if err != nil {
		u.logger.Error("failed to load report source", "from", w.From, "to", w.To, "error", err)
		return report.Source{}, fmt.Errorf("%w: %w", entities.ErrAggregationFailed, err)
	}
	return src, nil
}

// Entries whose issue or owner no longer exists are excluded from every
// aggregate; their hours are surfaced here instead of disappearing silently.
func (u *useCase) reportDiagnostics(diag report.Diagnostics, args ...any) {
	if diag.Unattributed() == 0 {
		return
	}
	args = append(args,
		"missing_issue_entries", diag.MissingIssueEntries,
		"missing_owner_entries", diag.MissingOwnerEntries,
		"unattributed_hours", diag.UnattributedHours,
	)
	u.logger.Warn("time logs excluded from summary", args...)
}
