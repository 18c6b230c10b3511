package entities

import "errors"

var (
	ErrInvalidPeriod     = errors.New("invalid period")
	ErrForbidden         = errors.New("forbidden")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrAggregationFailed = errors.New("aggregation failed")
	ErrInvalidInput      = errors.New("invalid input")

	ErrTeamNotFound      = errors.New("team not found")
	ErrTeamInactive      = errors.New("team inactive")
	ErrUserNotFound      = errors.New("user not found")
	ErrUserExists        = errors.New("user exists")
	ErrUserInAnotherTeam = errors.New("user belongs to another active team")
	ErrIssueNotFound     = errors.New("issue not found")
	ErrIssueExists       = errors.New("issue exists")
	ErrLogNotFound       = errors.New("time log not found")
	ErrSnapshotNotFound  = errors.New("snapshot not found")
)
