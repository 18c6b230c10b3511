package repository

import (
	"context"

	"github.com/Janescience/work-logs-sub002/internal/entities"
)

type IssueRepository interface {
	CreateIssue(ctx context.Context, issue entities.Issue) (entities.Issue, error)
	GetIssue(ctx context.Context, issueID string) (entities.Issue, error)
	ListIssuesByOwner(ctx context.Context, ownerUserID string) ([]entities.Issue, error)
}

type ProjectRepository interface {
	ListProjects(ctx context.Context) ([]entities.Project, error)
	UpsertProject(ctx context.Context, project entities.Project) (entities.Project, error)
}

type TimeLogRepository interface {
	CreateTimeLog(ctx context.Context, log entities.TimeLog) (entities.TimeLog, error)
	GetTimeLog(ctx context.Context, logID string) (entities.TimeLog, error)
	ListTimeLogsByIssue(ctx context.Context, issueID string) ([]entities.TimeLog, error)
	DeleteTimeLog(ctx context.Context, logID string) error
}
