package worklog

import (
	"context"
	"time"

	"github.com/Janescience/work-logs-sub002/internal/entities"
)

type WorklogUseCase interface {
	CreateIssue(ctx context.Context, actor entities.User, input CreateIssueInput) (entities.Issue, error)
	GetIssue(ctx context.Context, issueID string) (entities.Issue, error)
	ListIssuesByOwner(ctx context.Context, ownerUserID string) ([]entities.Issue, error)
	ListProjects(ctx context.Context) ([]entities.Project, error)
	UpsertProject(ctx context.Context, actor entities.User, project entities.Project) (entities.Project, error)
	LogTime(ctx context.Context, actor entities.User, input LogTimeInput) (entities.TimeLog, error)
	ListLogs(ctx context.Context, issueID string) ([]entities.TimeLog, error)
	DeleteLog(ctx context.Context, actor entities.User, logID string) error
}

type CreateIssueInput struct {
	Key         string
	Summary     string
	ProjectName string
	ServiceName string
	OwnerUserID string
	Status      entities.IssueStatus
	DueDate     *time.Time
}

type LogTimeInput struct {
	IssueID     string
	LogDate     time.Time
	HoursSpent  float64
	Description string
}
