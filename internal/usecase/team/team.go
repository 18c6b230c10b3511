package team

import (
	"context"

	"github.com/Janescience/work-logs-sub002/internal/entities"
)

type TeamUseCase interface {
	CreateTeam(ctx context.Context, actor entities.User, team entities.Team) (entities.Team, error)
	GetTeam(ctx context.Context, teamID string) (entities.Team, error)
	AddMember(ctx context.Context, actor entities.User, teamID, userID string) (entities.Team, error)
	RemoveMember(ctx context.Context, actor entities.User, teamID, userID string) (entities.Team, error)
	DeactivateTeam(ctx context.Context, actor entities.User, teamID string) (entities.Team, error)
}
