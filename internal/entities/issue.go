package entities

import "time"

type IssueStatus string

const (
	IssueOpen       IssueStatus = "OPEN"
	IssueInProgress IssueStatus = "IN PROGRESS"
	IssueDeployed   IssueStatus = "DEPLOYED"
	IssueDone       IssueStatus = "DONE"
)

func (s IssueStatus) Valid() bool {
	switch s {
	case IssueOpen, IssueInProgress, IssueDeployed, IssueDone:
		return true
	}
	return false
}

// Issue references its project by name, not by id. A project rename does not
// rewrite historical issues.
type Issue struct {
	ID                string
	Key               string
	Summary           string
	ProjectName       string
	ServiceName       string
	OwnerUserID       string
	Status            IssueStatus
	DueDate           *time.Time
	DeploySITDate     *time.Time
	DeployUATDate     *time.Time
	DeployPreProdDate *time.Time
	DeployProdDate    *time.Time
	CreatedAt         time.Time
}

type TimeLog struct {
	ID          string
	IssueID     string
	LogDate     time.Time
	HoursSpent  float64
	Description string
	CreatedAt   time.Time
}

type Project struct {
	Name string
	Type string
}
