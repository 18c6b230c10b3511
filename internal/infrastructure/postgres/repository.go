package postgres

import (
	"errors"
	"sync"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Janescience/work-logs-sub002/internal/repository"
	"github.com/Janescience/work-logs-sub002/pkg/logger"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type PostgresRepository struct {
	pool   *pgxpool.Pool
	logger logger.Logger

	mu    sync.Mutex
	locks map[int64]*pgxpool.Conn
}

func NewPostgresRepository(pool *pgxpool.Pool, log logger.Logger) repository.Repository {
	return &PostgresRepository{pool: pool, logger: log, locks: make(map[int64]*pgxpool.Conn)}
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
