package worklog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Janescience/work-logs-sub002/internal/entities"
	"github.com/Janescience/work-logs-sub002/internal/repository"
	"github.com/Janescience/work-logs-sub002/pkg/logger"
)

const maxHoursPerLog = 24

type useCase struct {
	issueRepo   repository.IssueRepository
	projectRepo repository.ProjectRepository
	logRepo     repository.TimeLogRepository
	userRepo    repository.UserRepository
	now         func() time.Time
	logger      logger.Logger
}

func New(
	issueRepo repository.IssueRepository,
	projectRepo repository.ProjectRepository,
	logRepo repository.TimeLogRepository,
	userRepo repository.UserRepository,
	log logger.Logger,
) WorklogUseCase {
	return &useCase{
		issueRepo:   issueRepo,
		projectRepo: projectRepo,
		logRepo:     logRepo,
		userRepo:    userRepo,
		now:         time.Now,
		logger:      log,
	}
}

func (u *useCase) CreateIssue(ctx context.Context, actor entities.User, input CreateIssueInput) (entities.Issue, error) {
	key := strings.TrimSpace(input.Key)
	project := strings.TrimSpace(input.ProjectName)
	if key == "" || project == "" {
		return entities.Issue{}, fmt.Errorf("%w: key and projectName required", entities.ErrInvalidInput)
	}
	status := input.Status
	if status == "" {
		status = entities.IssueOpen
	}
	if !status.Valid() {
		return entities.Issue{}, fmt.Errorf("%w: status %q", entities.ErrInvalidInput, status)
	}

	owner := actor.ID
	if input.OwnerUserID != "" && input.OwnerUserID != actor.ID {
		if !actor.HasRole(entities.RoleAdmin, entities.RoleTeamLead) {
			return entities.Issue{}, entities.ErrForbidden
		}
		if _, err := u.userRepo.GetUser(ctx, input.OwnerUserID); err != nil {
			return entities.Issue{}, err
		}
		owner = input.OwnerUserID
	}

	issue := entities.Issue{
		ID:          uuid.NewString(),
		Key:         key,
		Summary:     strings.TrimSpace(input.Summary),
		ProjectName: project,
		ServiceName: strings.TrimSpace(input.ServiceName),
		OwnerUserID: owner,
		Status:      status,
		DueDate:     input.DueDate,
		CreatedAt:   u.now(),
	}
	u.logger.Info("creating issue", "key", issue.Key, "project", issue.ProjectName, "owner", owner)
	return u.issueRepo.CreateIssue(ctx, issue)
}

func (u *useCase) GetIssue(ctx context.Context, issueID string) (entities.Issue, error) {
	if issueID == "" {
		return entities.Issue{}, fmt.Errorf("%w: issue id required", entities.ErrInvalidInput)
	}
	return u.issueRepo.GetIssue(ctx, issueID)
}

func (u *useCase) ListIssuesByOwner(ctx context.Context, ownerUserID string) ([]entities.Issue, error) {
	if ownerUserID == "" {
		return nil, fmt.Errorf("%w: owner required", entities.ErrInvalidInput)
	}
	return u.issueRepo.ListIssuesByOwner(ctx, ownerUserID)
}

func (u *useCase) ListProjects(ctx context.Context) ([]entities.Project, error) {
	return u.projectRepo.ListProjects(ctx)
}

func (u *useCase) UpsertProject(ctx context.Context, actor entities.User, project entities.Project) (entities.Project, error) {
	if !actor.HasRole(entities.RoleAdmin) {
		return entities.Project{}, entities.ErrForbidden
	}
	project.Name = strings.TrimSpace(project.Name)
	project.Type = strings.TrimSpace(project.Type)
	if project.Name == "" || project.Type == "" {
		return entities.Project{}, fmt.Errorf("%w: name and type required", entities.ErrInvalidInput)
	}
	u.logger.Info("upserting project", "name", project.Name, "type", project.Type)
	return u.projectRepo.UpsertProject(ctx, project)
}

func (u *useCase) LogTime(ctx context.Context, actor entities.User, input LogTimeInput) (entities.TimeLog, error) {
	if input.LogDate.IsZero() {
		return entities.TimeLog{}, fmt.Errorf("%w: logDate required", entities.ErrInvalidInput)
	}
	if input.HoursSpent < 0 || input.HoursSpent > maxHoursPerLog {
		return entities.TimeLog{}, fmt.Errorf("%w: hoursSpent must be between 0 and %d", entities.ErrInvalidInput, maxHoursPerLog)
	}
	issue, err := u.GetIssue(ctx, input.IssueID)
	if err != nil {
		return entities.TimeLog{}, err
	}
	if err := canWrite(actor, issue); err != nil {
		return entities.TimeLog{}, err
	}

	log := entities.TimeLog{
		ID:          uuid.NewString(),
		IssueID:     issue.ID,
		LogDate:     input.LogDate,
		HoursSpent:  input.HoursSpent,
		Description: strings.TrimSpace(input.Description),
		CreatedAt:   u.now(),
	}
	u.logger.Debug("logging time", "issue_id", issue.ID, "hours", log.HoursSpent, "by", actor.ID)
	return u.logRepo.CreateTimeLog(ctx, log)
}

func (u *useCase) ListLogs(ctx context.Context, issueID string) ([]entities.TimeLog, error) {
	if _, err := u.GetIssue(ctx, issueID); err != nil {
		return nil, err
	}
	return u.logRepo.ListTimeLogsByIssue(ctx, issueID)
}

func (u *useCase) DeleteLog(ctx context.Context, actor entities.User, logID string) error {
	if logID == "" {
		return fmt.Errorf("%w: log id required", entities.ErrInvalidInput)
	}
	log, err := u.logRepo.GetTimeLog(ctx, logID)
	if err != nil {
		return err
	}
	issue, err := u.issueRepo.GetIssue(ctx, log.IssueID)
	if err != nil {
		return err
	}
	if err := canWrite(actor, issue); err != nil {
		return err
	}
	u.logger.Info("deleting time log", "log_id", logID, "issue_id", issue.ID, "by", actor.ID)
	return u.logRepo.DeleteTimeLog(ctx, logID)
}

func canWrite(actor entities.User, issue entities.Issue) error {
	if issue.OwnerUserID == actor.ID || actor.HasRole(entities.RoleAdmin) {
		return nil
	}
	return entities.ErrForbidden
}
