package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/Janescience/work-logs-sub002/internal/entities"
	"github.com/Janescience/work-logs-sub002/internal/report"
)

const issueColumns = `id, key, summary, project_name, service_name, owner_user_id, status, due_date,
	deploy_sit_date, deploy_uat_date, deploy_preprod_date, deploy_prod_date, created_at`

func (r *PostgresRepository) CreateIssue(ctx context.Context, issue entities.Issue) (entities.Issue, error) {
	r.logger.Debug("creating issue", "key", issue.Key)
	_, err := r.pool.Exec(ctx, `INSERT INTO issues (`+issueColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		issue.ID, issue.Key, issue.Summary, issue.ProjectName, issue.ServiceName, issue.OwnerUserID, string(issue.Status),
		issue.DueDate, issue.DeploySITDate, issue.DeployUATDate, issue.DeployPreProdDate, issue.DeployProdDate, issue.CreatedAt,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return entities.Issue{}, entities.ErrIssueExists
		}
		r.logger.Error("failed to insert issue", "key", issue.Key, "error", err)
		return entities.Issue{}, err
	}
	r.logger.Info("issue created", "issue_id", issue.ID, "key", issue.Key)
	return r.GetIssue(ctx, issue.ID)
}

func (r *PostgresRepository) GetIssue(ctx context.Context, issueID string) (entities.Issue, error) {
	issues, err := queryIssues(ctx, r.pool, `WHERE id=$1`, issueID)
	if err != nil {
		return entities.Issue{}, err
	}
	if len(issues) == 0 {
		return entities.Issue{}, entities.ErrIssueNotFound
	}
	return issues[0], nil
}

func (r *PostgresRepository) ListIssuesByOwner(ctx context.Context, ownerUserID string) ([]entities.Issue, error) {
	return queryIssues(ctx, r.pool, `WHERE owner_user_id=$1`, ownerUserID)
}

func queryIssues(ctx context.Context, q querier, where string, args ...any) ([]entities.Issue, error) {
	rows, err := q.Query(ctx, `SELECT `+issueColumns+` FROM issues `+where+` ORDER BY created_at, id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var issues []entities.Issue
	for rows.Next() {
		var i entities.Issue
		var status string
		err = rows.Scan(&i.ID, &i.Key, &i.Summary, &i.ProjectName, &i.ServiceName, &i.OwnerUserID, &status, &i.DueDate,
			&i.DeploySITDate, &i.DeployUATDate, &i.DeployPreProdDate, &i.DeployProdDate, &i.CreatedAt)
		if err != nil {
			return nil, err
		}
		i.Status = entities.IssueStatus(status)
		issues = append(issues, i)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return issues, nil
}

func (r *PostgresRepository) ListProjects(ctx context.Context) ([]entities.Project, error) {
	return queryProjects(ctx, r.pool)
}

func (r *PostgresRepository) UpsertProject(ctx context.Context, project entities.Project) (entities.Project, error) {
	_, err := r.pool.Exec(ctx, `INSERT INTO projects (name, type) VALUES ($1,$2)
		ON CONFLICT (name) DO UPDATE SET type=EXCLUDED.type`, project.Name, project.Type)
	if err != nil {
		r.logger.Error("failed to upsert project", "name", project.Name, "error", err)
		return entities.Project{}, err
	}
	r.logger.Info("project saved", "name", project.Name, "type", project.Type)
	return project, nil
}

func queryProjects(ctx context.Context, q querier) ([]entities.Project, error) {
	rows, err := q.Query(ctx, `SELECT name, type FROM projects ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []entities.Project
	for rows.Next() {
		var p entities.Project
		if err = rows.Scan(&p.Name, &p.Type); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *PostgresRepository) CreateTimeLog(ctx context.Context, log entities.TimeLog) (entities.TimeLog, error) {
	_, err := r.pool.Exec(ctx, `INSERT INTO time_logs (id, issue_id, log_date, hours_spent, description, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		log.ID, log.IssueID, log.LogDate, log.HoursSpent, log.Description, log.CreatedAt,
	)
	if err != nil {
		r.logger.Error("failed to insert time log", "issue_id", log.IssueID, "error", err)
		return entities.TimeLog{}, err
	}
	r.logger.Debug("time log created", "log_id", log.ID, "issue_id", log.IssueID, "hours", log.HoursSpent)
	return r.GetTimeLog(ctx, log.ID)
}

func (r *PostgresRepository) GetTimeLog(ctx context.Context, logID string) (entities.TimeLog, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, issue_id, log_date, hours_spent::text, description, created_at
		FROM time_logs WHERE id=$1`, logID)
	if err != nil {
		return entities.TimeLog{}, err
	}
	logs, err := collectTimeLogs(rows)
	if err != nil {
		return entities.TimeLog{}, err
	}
	if len(logs) == 0 {
		return entities.TimeLog{}, entities.ErrLogNotFound
	}
	return logs[0], nil
}

func (r *PostgresRepository) ListTimeLogsByIssue(ctx context.Context, issueID string) ([]entities.TimeLog, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, issue_id, log_date, hours_spent::text, description, created_at
		FROM time_logs WHERE issue_id=$1 ORDER BY log_date, id`, issueID)
	if err != nil {
		return nil, err
	}
	return collectTimeLogs(rows)
}

func (r *PostgresRepository) DeleteTimeLog(ctx context.Context, logID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM time_logs WHERE id=$1`, logID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrLogNotFound
	}
	r.logger.Info("time log deleted", "log_id", logID)
	return nil
}

// collectTimeLogs reads hours as text so values written by older clients as
// strings or integers coerce the same way.
func collectTimeLogs(rows pgx.Rows) ([]entities.TimeLog, error) {
	defer rows.Close()
	var logs []entities.TimeLog
	for rows.Next() {
		var l entities.TimeLog
		var hours string
		if err := rows.Scan(&l.ID, &l.IssueID, &l.LogDate, &hours, &l.Description, &l.CreatedAt); err != nil {
			return nil, err
		}
		l.HoursSpent = report.CoerceHours(hours)
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return logs, nil
}
