package team

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Janescience/work-logs-sub002/internal/entities"
	"github.com/Janescience/work-logs-sub002/internal/repository"
	"github.com/Janescience/work-logs-sub002/pkg/logger"
)

type useCase struct {
	teamRepo repository.TeamRepository
	userRepo repository.UserRepository
	logger   logger.Logger
}

func New(teamRepo repository.TeamRepository, userRepo repository.UserRepository, log logger.Logger) TeamUseCase {
	return &useCase{
		teamRepo: teamRepo,
		userRepo: userRepo,
		logger:   log,
	}
}

func (u *useCase) CreateTeam(ctx context.Context, actor entities.User, team entities.Team) (entities.Team, error) {
	if !actor.HasRole(entities.RoleAdmin) {
		return entities.Team{}, entities.ErrForbidden
	}
	if team.Name == "" || team.LeadUserID == "" {
		return entities.Team{}, fmt.Errorf("%w: team name and lead required", entities.ErrInvalidInput)
	}
	lead, err := u.userRepo.GetUser(ctx, team.LeadUserID)
	if err != nil {
		return entities.Team{}, err
	}
	if !lead.HasRole(entities.RoleTeamLead) {
		return entities.Team{}, fmt.Errorf("%w: user %s is not a team lead", entities.ErrInvalidInput, lead.ID)
	}
	for _, id := range team.MemberIDs {
		if err := u.ensureAvailable(ctx, "", id); err != nil {
			return entities.Team{}, err
		}
	}

	team.ID = uuid.NewString()
	team.IsActive = true
	u.logger.Info("creating team", "name", team.Name, "lead", team.LeadUserID, "members", len(team.MemberIDs))
	return u.teamRepo.CreateTeam(ctx, team)
}

func (u *useCase) GetTeam(ctx context.Context, teamID string) (entities.Team, error) {
	if teamID == "" {
		return entities.Team{}, fmt.Errorf("%w: team id required", entities.ErrInvalidInput)
	}
	return u.teamRepo.GetTeam(ctx, teamID)
}

func (u *useCase) AddMember(ctx context.Context, actor entities.User, teamID, userID string) (entities.Team, error) {
	if userID == "" {
		return entities.Team{}, fmt.Errorf("%w: user id required", entities.ErrInvalidInput)
	}
	team, err := u.managedTeam(ctx, actor, teamID)
	if err != nil {
		return entities.Team{}, err
	}
	if !team.IsActive {
		return entities.Team{}, entities.ErrTeamInactive
	}
	if team.HasMember(userID) {
		return team, nil
	}
	if _, err := u.userRepo.GetUser(ctx, userID); err != nil {
		return entities.Team{}, err
	}
	if err := u.ensureAvailable(ctx, team.ID, userID); err != nil {
		return entities.Team{}, err
	}

	u.logger.Info("adding team member", "team_id", team.ID, "user_id", userID, "by", actor.ID)
	return u.teamRepo.AddMember(ctx, team.ID, userID)
}

func (u *useCase) RemoveMember(ctx context.Context, actor entities.User, teamID, userID string) (entities.Team, error) {
	if userID == "" {
		return entities.Team{}, fmt.Errorf("%w: user id required", entities.ErrInvalidInput)
	}
	team, err := u.managedTeam(ctx, actor, teamID)
	if err != nil {
		return entities.Team{}, err
	}
	if !team.HasMember(userID) {
		return entities.Team{}, entities.ErrUserNotFound
	}

	u.logger.Info("removing team member", "team_id", team.ID, "user_id", userID, "by", actor.ID)
	return u.teamRepo.RemoveMember(ctx, team.ID, userID)
}

func (u *useCase) DeactivateTeam(ctx context.Context, actor entities.User, teamID string) (entities.Team, error) {
	team, err := u.managedTeam(ctx, actor, teamID)
	if err != nil {
		return entities.Team{}, err
	}
	if !team.IsActive {
		return team, nil
	}

	u.logger.Info("deactivating team", "team_id", team.ID, "by", actor.ID)
	return u.teamRepo.SetTeamActive(ctx, team.ID, false)
}

// managedTeam loads the team and checks that actor is its lead or an admin.
func (u *useCase) managedTeam(ctx context.Context, actor entities.User, teamID string) (entities.Team, error) {
	if teamID == "" {
		return entities.Team{}, fmt.Errorf("%w: team id required", entities.ErrInvalidInput)
	}
	team, err := u.teamRepo.GetTeam(ctx, teamID)
	if err != nil {
		return entities.Team{}, err
	}
	if actor.HasRole(entities.RoleAdmin) {
		return team, nil
	}
	if actor.HasRole(entities.RoleTeamLead) && team.LeadUserID == actor.ID {
		return team, nil
	}
	u.logger.Debug("team change rejected", "team_id", teamID, "actor", actor.ID)
	return entities.Team{}, entities.ErrForbidden
}

// A user may belong to at most one active team.
func (u *useCase) ensureAvailable(ctx context.Context, teamID, userID string) error {
	teams, err := u.teamRepo.ListActiveTeamsByMember(ctx, userID)
	if err != nil {
		return err
	}
	for _, t := range teams {
		if t.ID != teamID {
			return fmt.Errorf("%w: user %s is in team %s", entities.ErrUserInAnotherTeam, userID, t.Name)
		}
	}
	return nil
}
