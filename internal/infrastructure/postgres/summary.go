package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Janescience/work-logs-sub002/internal/entities"
	"github.com/Janescience/work-logs-sub002/internal/report"
)

// LoadReportSource reads everything one report needs inside a single read-only
// repeatable-read transaction, so all joins see the same snapshot.
func (r *PostgresRepository) LoadReportSource(ctx context.Context, from, to time.Time) (report.Source, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return report.Source{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var src report.Source
	if src.Logs, err = queryLogsInRange(ctx, tx, from, to); err != nil {
		return report.Source{}, err
	}
	issueIDs := make([]string, 0, len(src.Logs))
	for _, l := range src.Logs {
		issueIDs = append(issueIDs, l.IssueID)
	}
	if src.Issues, err = queryIssues(ctx, tx, `WHERE id = ANY($1::text[])`, issueIDs); err != nil {
		return report.Source{}, err
	}
	ownerIDs := make([]string, 0, len(src.Issues))
	for _, i := range src.Issues {
		ownerIDs = append(ownerIDs, i.OwnerUserID)
	}
	if src.Users, err = queryUsers(ctx, tx, `WHERE id = ANY($1::text[])`, ownerIDs); err != nil {
		return report.Source{}, err
	}
	if src.Projects, err = queryProjects(ctx, tx); err != nil {
		return report.Source{}, err
	}
	if src.Teams, err = queryTeams(ctx, tx, `WHERE t.is_active`); err != nil {
		return report.Source{}, err
	}
	if err = tx.Commit(ctx); err != nil {
		return report.Source{}, err
	}
	r.logger.Debug("report source loaded", "from", from, "to", to, "logs", len(src.Logs), "issues", len(src.Issues))
	return src, nil
}

func queryLogsInRange(ctx context.Context, q querier, from, to time.Time) ([]entities.TimeLog, error) {
	rows, err := q.Query(ctx, `SELECT id, issue_id, log_date, hours_spent::text, description, created_at
		FROM time_logs WHERE log_date >= $1 AND log_date < $2`, from, to)
	if err != nil {
		return nil, err
	}
	return collectTimeLogs(rows)
}

func (r *PostgresRepository) SaveSnapshot(ctx context.Context, snapshot entities.SummarySnapshot) error {
	payload, err := json.Marshal(toSnapshotPayload(snapshot.Summary))
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO summary_snapshots (year, month, payload, computed_at) VALUES ($1,$2,$3,$4)
		ON CONFLICT (year, month) DO UPDATE SET payload=EXCLUDED.payload, computed_at=EXCLUDED.computed_at`,
		snapshot.Year, snapshot.Month, payload, snapshot.ComputedAt,
	)
	if err != nil {
		return err
	}
	r.logger.Info("summary snapshot saved", "year", snapshot.Year, "month", snapshot.Month)
	return nil
}

func (r *PostgresRepository) GetSnapshot(ctx context.Context, year, month int) (entities.SummarySnapshot, error) {
	var payload []byte
	snap := entities.SummarySnapshot{Year: year, Month: month}
	err := r.pool.QueryRow(ctx, `SELECT payload, computed_at FROM summary_snapshots WHERE year=$1 AND month=$2`, year, month).
		Scan(&payload, &snap.ComputedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.SummarySnapshot{}, entities.ErrSnapshotNotFound
	}
	if err != nil {
		return entities.SummarySnapshot{}, err
	}
	var stored snapshotPayload
	if err := json.Unmarshal(payload, &stored); err != nil {
		return entities.SummarySnapshot{}, err
	}
	snap.Summary = stored.summary()
	return snap, nil
}

// TryAdvisoryLock takes a session-level lock on a connection that stays checked
// out of the pool until AdvisoryUnlock.
func (r *PostgresRepository) TryAdvisoryLock(ctx context.Context, key int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, held := r.locks[key]; held {
		return false, nil
	}
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return false, err
	}
	var ok bool
	if err := conn.QueryRow(ctx, `SELECT pg_try_advisory_lock($1)`, key).Scan(&ok); err != nil {
		conn.Release()
		return false, err
	}
	if !ok {
		conn.Release()
		return false, nil
	}
	r.locks[key] = conn
	return true, nil
}

func (r *PostgresRepository) AdvisoryUnlock(ctx context.Context, key int64) error {
	r.mu.Lock()
	conn, held := r.locks[key]
	delete(r.locks, key)
	r.mu.Unlock()
	if !held {
		return errors.New("advisory lock not held")
	}
	defer conn.Release()

	var ok bool
	if err := conn.QueryRow(ctx, `SELECT pg_advisory_unlock($1)`, key).Scan(&ok); err != nil {
		return err
	}
	if !ok {
		return errors.New("advisory unlock returned false")
	}
	return nil
}
