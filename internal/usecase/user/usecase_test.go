package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Janescience/work-logs-sub002/internal/entities"
	"github.com/Janescience/work-logs-sub002/pkg/logger"
)

type mockUserRepo struct {
	createUser         func(ctx context.Context, user entities.User, tokenHash string) (entities.User, error)
	getUser            func(ctx context.Context, userID string) (entities.User, error)
	getUserByTokenHash func(ctx context.Context, tokenHash string) (entities.User, error)
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user entities.User, tokenHash string) (entities.User, error) {
	if m.createUser != nil {
		return m.createUser(ctx, user, tokenHash)
	}
	return user, nil
}

func (m *mockUserRepo) GetUser(ctx context.Context, userID string) (entities.User, error) {
	if m.getUser != nil {
		return m.getUser(ctx, userID)
	}
	return entities.User{}, entities.ErrUserNotFound
}

func (m *mockUserRepo) GetUserByTokenHash(ctx context.Context, tokenHash string) (entities.User, error) {
	if m.getUserByTokenHash != nil {
		return m.getUserByTokenHash(ctx, tokenHash)
	}
	return entities.User{}, entities.ErrUserNotFound
}

func TestUseCase_CreateUser(t *testing.T) {
	var storedHash string
	repo := &mockUserRepo{createUser: func(ctx context.Context, user entities.User, tokenHash string) (entities.User, error) {
		storedHash = tokenHash
		return user, nil
	}}
	uc := New(repo, logger.Nop())

	result, err := uc.CreateUser(context.Background(), CreateUserInput{
		Username:       " nok ",
		Email:          "nok@example.com",
		Classification: entities.ClassificationCore,
		Roles:          []entities.Role{entities.RoleITLead},
	})
	require.NoError(t, err)
	assert.Equal(t, "nok", result.User.Username)
	assert.Equal(t, "nok", result.User.DisplayName)
	assert.NotEmpty(t, result.User.ID)
	assert.Len(t, result.Token, 64)
	assert.Equal(t, HashToken(result.Token), storedHash)
	assert.NotEqual(t, result.Token, storedHash)
}

func TestUseCase_CreateUser_Validation(t *testing.T) {
	uc := New(&mockUserRepo{}, logger.Nop())

	_, err := uc.CreateUser(context.Background(), CreateUserInput{Classification: entities.ClassificationCore})
	assert.ErrorIs(t, err, entities.ErrInvalidInput)

	_, err = uc.CreateUser(context.Background(), CreateUserInput{Username: "a", Classification: "Contractor"})
	assert.ErrorIs(t, err, entities.ErrInvalidInput)

	_, err = uc.CreateUser(context.Background(), CreateUserInput{Username: "a", Classification: entities.ClassificationNonCore, Roles: []entities.Role{"CEO"}})
	assert.ErrorIs(t, err, entities.ErrInvalidInput)

	result, err := uc.CreateUser(context.Background(), CreateUserInput{Username: "a", Classification: entities.ClassificationNonCore})
	require.NoError(t, err)
	assert.Equal(t, []entities.Role{entities.RoleDeveloper}, result.User.Roles)
}

func TestUseCase_Authenticate(t *testing.T) {
	token := NewToken()
	repo := &mockUserRepo{getUserByTokenHash: func(ctx context.Context, tokenHash string) (entities.User, error) {
		if tokenHash == HashToken(token) {
			return entities.User{ID: "u1"}, nil
		}
		return entities.User{}, entities.ErrUserNotFound
	}}
	uc := New(repo, logger.Nop())

	user, err := uc.Authenticate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	_, err = uc.Authenticate(context.Background(), "wrong")
	assert.ErrorIs(t, err, entities.ErrUnauthorized)

	_, err = uc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, entities.ErrUnauthorized)
}

func TestUseCase_Authenticate_StoreError(t *testing.T) {
	storeErr := errors.New("db down")
	repo := &mockUserRepo{getUserByTokenHash: func(ctx context.Context, tokenHash string) (entities.User, error) {
		return entities.User{}, storeErr
	}}
	uc := New(repo, logger.Nop())

	_, err := uc.Authenticate(context.Background(), "token")
	assert.ErrorIs(t, err, storeErr)
}
