package repository

type Repository interface {
	SummaryRepository
	SnapshotRepository
	TeamRepository
	UserRepository
	IssueRepository
	ProjectRepository
	TimeLogRepository
}
