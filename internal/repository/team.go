package repository

import (
	"context"

	"github.com/Janescience/work-logs-sub002/internal/entities"
)

type TeamRepository interface {
	CreateTeam(ctx context.Context, team entities.Team) (entities.Team, error)
	GetTeam(ctx context.Context, teamID string) (entities.Team, error)
	AddMember(ctx context.Context, teamID, userID string) (entities.Team, error)
	RemoveMember(ctx context.Context, teamID, userID string) (entities.Team, error)
	SetTeamActive(ctx context.Context, teamID string, isActive bool) (entities.Team, error)
	ListActiveTeamsByMember(ctx context.Context, userID string) ([]entities.Team, error)
}
