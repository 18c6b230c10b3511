package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Janescience/work-logs-sub002/internal/entities"
	"github.com/Janescience/work-logs-sub002/pkg/logger"
)

const snapshotLockKey int64 = 520_001

type snapshotter interface {
	TakeSnapshot(ctx context.Context, year, month int) (entities.SummarySnapshot, error)
}

type locker interface {
	TryAdvisoryLock(ctx context.Context, key int64) (bool, error)
	AdvisoryUnlock(ctx context.Context, key int64) error
}

// SnapshotJob stores the summary of the month that just closed.
type SnapshotJob struct {
	svc     snapshotter
	lock    locker
	log     logger.Logger
	timeout time.Duration
	now     func() time.Time
	c       *cron.Cron
}

func NewSnapshotJob(spec string, svc snapshotter, lock locker, log logger.Logger) (*SnapshotJob, error) {
	c := cron.New(cron.WithLocation(time.Local), cron.WithParser(cron.NewParser(cron.Minute|cron.Hour|cron.Dom|cron.Month|cron.Dow)))
	j := &SnapshotJob{svc: svc, lock: lock, log: log, timeout: 5 * time.Minute, now: time.Now, c: c}
	if _, err := c.AddFunc(spec, j.run); err != nil {
		return nil, err
	}
	return j, nil
}

func (j *SnapshotJob) Start() { j.c.Start() }

// Stop waits for a running snapshot to finish or ctx to expire.
func (j *SnapshotJob) Stop(ctx context.Context) {
	select {
	case <-j.c.Stop().Done():
	case <-ctx.Done():
	}
}

func (j *SnapshotJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()
	if err := j.RunOnce(ctx); err != nil {
		j.log.Error("snapshot job failed", "error", err)
	}
}

// RunOnce snapshots the previous calendar month unless another replica holds
// the lock.
func (j *SnapshotJob) RunOnce(ctx context.Context) error {
	ok, err := j.lock.TryAdvisoryLock(ctx, snapshotLockKey)
	if err != nil {
		return err
	}
	if !ok {
		j.log.Info("snapshot job already running elsewhere")
		return nil
	}
	defer func() {
		if err := j.lock.AdvisoryUnlock(context.Background(), snapshotLockKey); err != nil {
			j.log.Warn("failed to release snapshot lock", "error", err)
		}
	}()

	year, month := PreviousMonth(j.now())
	snap, err := j.svc.TakeSnapshot(ctx, year, month)
	if err != nil {
		return err
	}
	j.log.Info("month-close snapshot stored", "year", snap.Year, "month", snap.Month,
		"types", len(snap.Summary.ProjectSummary), "users", len(snap.Summary.IndividualSummary))
	return nil
}

func PreviousMonth(now time.Time) (int, int) {
	first := time.Date(now.In(time.Local).Year(), now.In(time.Local).Month(), 1, 0, 0, 0, 0, time.Local)
	prev := first.AddDate(0, -1, 0)
	return prev.Year(), int(prev.Month())
}
