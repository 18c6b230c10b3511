package repository

import (
	"context"

	"github.com/Janescience/work-logs-sub002/internal/entities"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user entities.User, tokenHash string) (entities.User, error)
	GetUser(ctx context.Context, userID string) (entities.User, error)
	GetUserByTokenHash(ctx context.Context, tokenHash string) (entities.User, error)
}
