package user

import (
	"context"

	"github.com/Janescience/work-logs-sub002/internal/entities"
)

type UserUseCase interface {
	CreateUser(ctx context.Context, input CreateUserInput) (CreateUserResult, error)
	Authenticate(ctx context.Context, token string) (entities.User, error)
	GetUser(ctx context.Context, userID string) (entities.User, error)
}

type CreateUserInput struct {
	Username       string
	DisplayName    string
	Email          string
	Classification entities.Classification
	Roles          []entities.Role
}

// CreateUserResult carries the API token in clear text. It is not stored and
// cannot be recovered later.
type CreateUserResult struct {
	User  entities.User
	Token string
}
