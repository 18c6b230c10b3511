package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/Janescience/work-logs-sub002/internal/entities"
)

const userColumns = `id, username, display_name, email, classification, roles`

func (r *PostgresRepository) CreateUser(ctx context.Context, user entities.User, tokenHash string) (entities.User, error) {
	r.logger.Debug("creating user", "username", user.Username)
	roles := make([]string, 0, len(user.Roles))
	for _, role := range user.Roles {
		roles = append(roles, string(role))
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO users (id, username, display_name, email, classification, roles, token_hash)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		user.ID, user.Username, user.DisplayName, user.Email, string(user.Classification), roles, tokenHash,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return entities.User{}, entities.ErrUserExists
		}
		r.logger.Error("failed to insert user", "username", user.Username, "error", err)
		return entities.User{}, err
	}
	r.logger.Info("user created", "user_id", user.ID)
	return r.GetUser(ctx, user.ID)
}

func (r *PostgresRepository) GetUser(ctx context.Context, userID string) (entities.User, error) {
	return r.getUserWhere(ctx, `id=$1`, userID)
}

func (r *PostgresRepository) GetUserByTokenHash(ctx context.Context, tokenHash string) (entities.User, error) {
	return r.getUserWhere(ctx, `token_hash=$1`, tokenHash)
}

func (r *PostgresRepository) getUserWhere(ctx context.Context, cond string, arg any) (entities.User, error) {
	users, err := queryUsers(ctx, r.pool, `WHERE `+cond, arg)
	if err != nil {
		return entities.User{}, err
	}
	if len(users) == 0 {
		return entities.User{}, entities.ErrUserNotFound
	}
	return users[0], nil
}

func queryUsers(ctx context.Context, q querier, where string, args ...any) ([]entities.User, error) {
	rows, err := q.Query(ctx, `SELECT `+userColumns+` FROM users `+where+` ORDER BY username`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []entities.User
	for rows.Next() {
		var u entities.User
		var classification string
		var roles []string
		if err = rows.Scan(&u.ID, &u.Username, &u.DisplayName, &u.Email, &classification, &roles); err != nil {
			return nil, err
		}
		u.Classification = entities.Classification(classification)
		for _, role := range roles {
			u.Roles = append(u.Roles, entities.Role(role))
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
