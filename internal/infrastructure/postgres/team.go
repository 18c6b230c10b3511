package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Janescience/work-logs-sub002/internal/entities"
)

const teamSelect = `SELECT t.id, t.name, t.lead_user_id, t.is_active,
	COALESCE(array_agg(m.user_id ORDER BY m.user_id) FILTER (WHERE m.user_id IS NOT NULL), '{}')
	FROM teams t LEFT JOIN team_members m ON m.team_id = t.id `

// memberLockSpace namespaces the per-user transaction locks taken while
// adding team members.
const memberLockSpace = 7301

func (r *PostgresRepository) CreateTeam(ctx context.Context, team entities.Team) (entities.Team, error) {
	r.logger.Debug("creating team", "name", team.Name)
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		r.logger.Error("failed to begin transaction", "error", err)
		return entities.Team{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `INSERT INTO teams (id, name, lead_user_id, is_active) VALUES ($1,$2,$3,$4)`,
		team.ID, team.Name, team.LeadUserID, team.IsActive)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return entities.Team{}, entities.ErrInvalidInput
		case pgForeignKeyViolation:
			return entities.Team{}, entities.ErrUserNotFound
		}
		r.logger.Error("failed to insert team", "error", err)
		return entities.Team{}, err
	}
	for _, userID := range team.MemberIDs {
		if err = claimMember(ctx, tx, team.ID, userID); err != nil {
			if pgErrorCode(err) == pgForeignKeyViolation {
				return entities.Team{}, entities.ErrUserNotFound
			}
			r.logger.Error("failed to insert team member", "user_id", userID, "error", err)
			return entities.Team{}, err
		}
	}
	if err = tx.Commit(ctx); err != nil {
		r.logger.Error("failed to commit transaction", "error", err)
		return entities.Team{}, err
	}
	r.logger.Info("team created", "team_id", team.ID, "name", team.Name)
	return r.GetTeam(ctx, team.ID)
}

func (r *PostgresRepository) GetTeam(ctx context.Context, teamID string) (entities.Team, error) {
	teams, err := queryTeams(ctx, r.pool, `WHERE t.id=$1`, teamID)
	if err != nil {
		return entities.Team{}, err
	}
	if len(teams) == 0 {
		return entities.Team{}, entities.ErrTeamNotFound
	}
	return teams[0], nil
}

func (r *PostgresRepository) AddMember(ctx context.Context, teamID, userID string) (entities.Team, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		r.logger.Error("failed to begin transaction", "error", err)
		return entities.Team{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err = claimMember(ctx, tx, teamID, userID); err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return entities.Team{}, entities.ErrTeamNotFound
		}
		return entities.Team{}, err
	}
	if err = tx.Commit(ctx); err != nil {
		r.logger.Error("failed to commit transaction", "error", err)
		return entities.Team{}, err
	}
	r.logger.Info("team member added", "team_id", teamID, "user_id", userID)
	return r.GetTeam(ctx, teamID)
}

// claimMember inserts userID into teamID unless the user already belongs to
// another active team. The user's lock is held until tx ends, so concurrent
// claims for the same user are serialized.
func claimMember(ctx context.Context, tx pgx.Tx, teamID, userID string) error {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1, hashtext($2))`, memberLockSpace, userID); err != nil {
		return err
	}
	var other string
	err := tx.QueryRow(ctx, `SELECT t.name FROM team_members m JOIN teams t ON t.id = m.team_id
		WHERE m.user_id=$1 AND t.is_active AND t.id<>$2 LIMIT 1`, userID, teamID).Scan(&other)
	switch {
	case err == nil:
		return fmt.Errorf("%w: user %s is in team %s", entities.ErrUserInAnotherTeam, userID, other)
	case !isNoRows(err):
		return err
	}
	_, err = tx.Exec(ctx, `INSERT INTO team_members (team_id, user_id) VALUES ($1,$2) ON CONFLICT DO NOTHING`, teamID, userID)
	return err
}

func (r *PostgresRepository) RemoveMember(ctx context.Context, teamID, userID string) (entities.Team, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM team_members WHERE team_id=$1 AND user_id=$2`, teamID, userID)
	if err != nil {
		return entities.Team{}, err
	}
	team, err := r.GetTeam(ctx, teamID)
	if err != nil {
		return entities.Team{}, err
	}
	if tag.RowsAffected() == 0 {
		return entities.Team{}, entities.ErrUserNotFound
	}
	r.logger.Info("team member removed", "team_id", teamID, "user_id", userID)
	return team, nil
}

func (r *PostgresRepository) SetTeamActive(ctx context.Context, teamID string, isActive bool) (entities.Team, error) {
	var id string
	err := r.pool.QueryRow(ctx, `UPDATE teams SET is_active=$2, updated_at=now() WHERE id=$1 RETURNING id`, teamID, isActive).Scan(&id)
	if isNoRows(err) {
		return entities.Team{}, entities.ErrTeamNotFound
	}
	if err != nil {
		return entities.Team{}, err
	}
	return r.GetTeam(ctx, teamID)
}

func (r *PostgresRepository) ListActiveTeamsByMember(ctx context.Context, userID string) ([]entities.Team, error) {
	return queryTeams(ctx, r.pool,
		`WHERE t.is_active AND t.id IN (SELECT team_id FROM team_members WHERE user_id=$1)`, userID)
}

func queryTeams(ctx context.Context, q querier, where string, args ...any) ([]entities.Team, error) {
	rows, err := q.Query(ctx, teamSelect+where+` GROUP BY t.id ORDER BY t.name, t.id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []entities.Team
	for rows.Next() {
		var t entities.Team
		if err = rows.Scan(&t.ID, &t.Name, &t.LeadUserID, &t.IsActive, &t.MemberIDs); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return teams, nil
}
