package team

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Janescience/work-logs-sub002/internal/entities"
	"github.com/Janescience/work-logs-sub002/pkg/logger"
)

type mockTeamRepo struct {
	createTeam              func(ctx context.Context, team entities.Team) (entities.Team, error)
	getTeam                 func(ctx context.Context, teamID string) (entities.Team, error)
	addMember               func(ctx context.Context, teamID, userID string) (entities.Team, error)
	removeMember            func(ctx context.Context, teamID, userID string) (entities.Team, error)
	setTeamActive           func(ctx context.Context, teamID string, isActive bool) (entities.Team, error)
	listActiveTeamsByMember func(ctx context.Context, userID string) ([]entities.Team, error)
}

func (m *mockTeamRepo) CreateTeam(ctx context.Context, team entities.Team) (entities.Team, error) {
	if m.createTeam != nil {
		return m.createTeam(ctx, team)
	}
	return team, nil
}

func (m *mockTeamRepo) GetTeam(ctx context.Context, teamID string) (entities.Team, error) {
	if m.getTeam != nil {
		return m.getTeam(ctx, teamID)
	}
	return entities.Team{}, entities.ErrTeamNotFound
}

func (m *mockTeamRepo) AddMember(ctx context.Context, teamID, userID string) (entities.Team, error) {
	if m.addMember != nil {
		return m.addMember(ctx, teamID, userID)
	}
	return entities.Team{}, nil
}

func (m *mockTeamRepo) RemoveMember(ctx context.Context, teamID, userID string) (entities.Team, error) {
	if m.removeMember != nil {
		return m.removeMember(ctx, teamID, userID)
	}
	return entities.Team{}, nil
}

func (m *mockTeamRepo) SetTeamActive(ctx context.Context, teamID string, isActive bool) (entities.Team, error) {
	if m.setTeamActive != nil {
		return m.setTeamActive(ctx, teamID, isActive)
	}
	return entities.Team{}, nil
}

func (m *mockTeamRepo) ListActiveTeamsByMember(ctx context.Context, userID string) ([]entities.Team, error) {
	if m.listActiveTeamsByMember != nil {
		return m.listActiveTeamsByMember(ctx, userID)
	}
	return nil, nil
}

type mockUserRepo struct {
	users map[string]entities.User
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user entities.User, tokenHash string) (entities.User, error) {
	return user, nil
}

func (m *mockUserRepo) GetUser(ctx context.Context, userID string) (entities.User, error) {
	u, ok := m.users[userID]
	if !ok {
		return entities.User{}, entities.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetUserByTokenHash(ctx context.Context, tokenHash string) (entities.User, error) {
	return entities.User{}, entities.ErrUserNotFound
}

var (
	admin     = entities.User{ID: "admin", Roles: []entities.Role{entities.RoleAdmin}}
	lead      = entities.User{ID: "lead", Roles: []entities.Role{entities.RoleTeamLead}}
	otherLead = entities.User{ID: "lead2", Roles: []entities.Role{entities.RoleTeamLead}}
	dev       = entities.User{ID: "dev", Roles: []entities.Role{entities.RoleDeveloper}}
)

func users() *mockUserRepo {
	return &mockUserRepo{users: map[string]entities.User{
		admin.ID: admin, lead.ID: lead, otherLead.ID: otherLead, dev.ID: dev,
	}}
}

func backendTeam() entities.Team {
	return entities.Team{ID: "t1", Name: "backend", LeadUserID: lead.ID, MemberIDs: []string{lead.ID}, IsActive: true}
}

func TestUseCase_CreateTeam(t *testing.T) {
	var created entities.Team
	teamRepo := &mockTeamRepo{createTeam: func(ctx context.Context, team entities.Team) (entities.Team, error) {
		created = team
		return team, nil
	}}
	uc := New(teamRepo, users(), logger.Nop())

	result, err := uc.CreateTeam(context.Background(), admin, entities.Team{Name: "backend", LeadUserID: lead.ID, MemberIDs: []string{dev.ID}})
	require.NoError(t, err)
	assert.Equal(t, "backend", result.Name)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)

	_, err = uc.CreateTeam(context.Background(), admin, entities.Team{Name: ""})
	assert.ErrorIs(t, err, entities.ErrInvalidInput)

	_, err = uc.CreateTeam(context.Background(), admin, entities.Team{Name: "x", LeadUserID: dev.ID})
	assert.ErrorIs(t, err, entities.ErrInvalidInput)

	_, err = uc.CreateTeam(context.Background(), lead, entities.Team{Name: "x", LeadUserID: lead.ID})
	assert.ErrorIs(t, err, entities.ErrForbidden)
}

func TestUseCase_CreateTeam_MemberAlreadyTeamed(t *testing.T) {
	teamRepo := &mockTeamRepo{listActiveTeamsByMember: func(ctx context.Context, userID string) ([]entities.Team, error) {
		return []entities.Team{{ID: "t9", Name: "mobile", IsActive: true}}, nil
	}}
	uc := New(teamRepo, users(), logger.Nop())

	_, err := uc.CreateTeam(context.Background(), admin, entities.Team{Name: "backend", LeadUserID: lead.ID, MemberIDs: []string{dev.ID}})
	assert.ErrorIs(t, err, entities.ErrUserInAnotherTeam)
}

func TestUseCase_AddMember(t *testing.T) {
	t.Run("team lead adds member", func(t *testing.T) {
		teamRepo := &mockTeamRepo{
			getTeam: func(ctx context.Context, teamID string) (entities.Team, error) { return backendTeam(), nil },
			addMember: func(ctx context.Context, teamID, userID string) (entities.Team, error) {
				team := backendTeam()
				team.MemberIDs = append(team.MemberIDs, userID)
				return team, nil
			},
		}
		uc := New(teamRepo, users(), logger.Nop())

		result, err := uc.AddMember(context.Background(), lead, "t1", dev.ID)
		require.NoError(t, err)
		assert.Contains(t, result.MemberIDs, dev.ID)
	})

	t.Run("other lead forbidden", func(t *testing.T) {
		teamRepo := &mockTeamRepo{getTeam: func(ctx context.Context, teamID string) (entities.Team, error) { return backendTeam(), nil }}
		uc := New(teamRepo, users(), logger.Nop())

		_, err := uc.AddMember(context.Background(), otherLead, "t1", dev.ID)
		assert.ErrorIs(t, err, entities.ErrForbidden)
	})

	t.Run("developer forbidden", func(t *testing.T) {
		teamRepo := &mockTeamRepo{getTeam: func(ctx context.Context, teamID string) (entities.Team, error) { return backendTeam(), nil }}
		uc := New(teamRepo, users(), logger.Nop())

		_, err := uc.AddMember(context.Background(), dev, "t1", dev.ID)
		assert.ErrorIs(t, err, entities.ErrForbidden)
	})

	t.Run("member of another active team", func(t *testing.T) {
		teamRepo := &mockTeamRepo{
			getTeam: func(ctx context.Context, teamID string) (entities.Team, error) { return backendTeam(), nil },
			listActiveTeamsByMember: func(ctx context.Context, userID string) ([]entities.Team, error) {
				return []entities.Team{{ID: "t2", Name: "frontend", IsActive: true}}, nil
			},
		}
		uc := New(teamRepo, users(), logger.Nop())

		_, err := uc.AddMember(context.Background(), admin, "t1", dev.ID)
		assert.ErrorIs(t, err, entities.ErrUserInAnotherTeam)
	})

	t.Run("unknown user", func(t *testing.T) {
		teamRepo := &mockTeamRepo{getTeam: func(ctx context.Context, teamID string) (entities.Team, error) { return backendTeam(), nil }}
		uc := New(teamRepo, users(), logger.Nop())

		_, err := uc.AddMember(context.Background(), admin, "t1", "ghost")
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
	})

	t.Run("inactive team", func(t *testing.T) {
		teamRepo := &mockTeamRepo{getTeam: func(ctx context.Context, teamID string) (entities.Team, error) {
			team := backendTeam()
			team.IsActive = false
			return team, nil
		}}
		uc := New(teamRepo, users(), logger.Nop())

		_, err := uc.AddMember(context.Background(), admin, "t1", dev.ID)
		assert.ErrorIs(t, err, entities.ErrTeamInactive)
	})

	t.Run("already a member is a no-op", func(t *testing.T) {
		teamRepo := &mockTeamRepo{
			getTeam: func(ctx context.Context, teamID string) (entities.Team, error) { return backendTeam(), nil },
			addMember: func(ctx context.Context, teamID, userID string) (entities.Team, error) {
				t.Fatal("AddMember must not be called")
				return entities.Team{}, nil
			},
		}
		uc := New(teamRepo, users(), logger.Nop())

		result, err := uc.AddMember(context.Background(), lead, "t1", lead.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{lead.ID}, result.MemberIDs)
	})
}

func TestUseCase_RemoveMember(t *testing.T) {
	teamRepo := &mockTeamRepo{
		getTeam: func(ctx context.Context, teamID string) (entities.Team, error) {
			team := backendTeam()
			team.MemberIDs = append(team.MemberIDs, dev.ID)
			return team, nil
		},
		removeMember: func(ctx context.Context, teamID, userID string) (entities.Team, error) {
			return backendTeam(), nil
		},
	}
	uc := New(teamRepo, users(), logger.Nop())

	result, err := uc.RemoveMember(context.Background(), lead, "t1", dev.ID)
	require.NoError(t, err)
	assert.NotContains(t, result.MemberIDs, dev.ID)

	_, err = uc.RemoveMember(context.Background(), lead, "t1", "stranger")
	assert.ErrorIs(t, err, entities.ErrUserNotFound)
}

func TestUseCase_DeactivateTeam(t *testing.T) {
	var deactivated bool
	teamRepo := &mockTeamRepo{
		getTeam: func(ctx context.Context, teamID string) (entities.Team, error) { return backendTeam(), nil },
		setTeamActive: func(ctx context.Context, teamID string, isActive bool) (entities.Team, error) {
			deactivated = !isActive
			team := backendTeam()
			team.IsActive = isActive
			return team, nil
		},
	}
	uc := New(teamRepo, users(), logger.Nop())

	result, err := uc.DeactivateTeam(context.Background(), admin, "t1")
	require.NoError(t, err)
	assert.True(t, deactivated)
	assert.False(t, result.IsActive)
}

func TestUseCase_GetTeam(t *testing.T) {
	uc := New(&mockTeamRepo{}, users(), logger.Nop())

	_, err := uc.GetTeam(context.Background(), "")
	assert.ErrorIs(t, err, entities.ErrInvalidInput)

	_, err = uc.GetTeam(context.Background(), "missing")
	assert.ErrorIs(t, err, entities.ErrTeamNotFound)
}
