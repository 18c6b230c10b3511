package user

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Janescience/work-logs-sub002/internal/entities"
	"github.com/Janescience/work-logs-sub002/internal/repository"
	"github.com/Janescience/work-logs-sub002/pkg/logger"
)

type useCase struct {
	userRepo repository.UserRepository
	logger   logger.Logger
}

func New(userRepo repository.UserRepository, log logger.Logger) UserUseCase {
	return &useCase{
		userRepo: userRepo,
		logger:   log,
	}
}

func (u *useCase) CreateUser(ctx context.Context, input CreateUserInput) (CreateUserResult, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return CreateUserResult{}, fmt.Errorf("%w: username required", entities.ErrInvalidInput)
	}
	if !input.Classification.Valid() {
		return CreateUserResult{}, fmt.Errorf("%w: classification %q", entities.ErrInvalidInput, input.Classification)
	}
	if len(input.Roles) == 0 {
		input.Roles = []entities.Role{entities.RoleDeveloper}
	}
	for _, r := range input.Roles {
		if !r.Valid() {
			return CreateUserResult{}, fmt.Errorf("%w: role %q", entities.ErrInvalidInput, r)
		}
	}

	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		displayName = username
	}
	token := NewToken()
	created, err := u.userRepo.CreateUser(ctx, entities.User{
		ID:             uuid.NewString(),
		Username:       username,
		DisplayName:    displayName,
		Email:          strings.TrimSpace(input.Email),
		Classification: input.Classification,
		Roles:          input.Roles,
	}, HashToken(token))
	if err != nil {
		return CreateUserResult{}, err
	}
	u.logger.Info("user created", "user_id", created.ID, "username", created.Username)
	return CreateUserResult{User: created, Token: token}, nil
}

func (u *useCase) Authenticate(ctx context.Context, token string) (entities.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.User{}, entities.ErrUnauthorized
	}
	user, err := u.userRepo.GetUserByTokenHash(ctx, HashToken(token))
	if errors.Is(err, entities.ErrUserNotFound) {
		return entities.User{}, entities.ErrUnauthorized
	}
	if err != nil {
		return entities.User{}, err
	}
	return user, nil
}

func (u *useCase) GetUser(ctx context.Context, userID string) (entities.User, error) {
	if userID == "" {
		return entities.User{}, fmt.Errorf("%w: user id required", entities.ErrInvalidInput)
	}
	return u.userRepo.GetUser(ctx, userID)
}

func NewToken() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}

// HashToken returns the value stored in place of an API token.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
