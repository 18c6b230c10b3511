package entities

import "time"

// OtherProjectType labels issues whose project name has no catalog entry.
const OtherProjectType = "Other"

type ProjectHours struct {
	Name         string
	TotalHours   float64
	CoreHours    float64
	NonCoreHours float64
}

type ProjectTypeGroup struct {
	Type     string
	Projects []ProjectHours
}

type SummaryUser struct {
	ID             string
	Username       string
	Email          string
	Classification Classification
	DisplayName    string
	TeamName       string
}

type IndividualSummary struct {
	User       SummaryUser
	TotalHours float64
}

type MonthlySummary struct {
	ProjectSummary    []ProjectTypeGroup
	IndividualSummary []IndividualSummary
}

type MonthlyTrend struct {
	Month        int
	CoreHours    float64
	NonCoreHours float64
}

type SummarySnapshot struct {
	Year       int
	Month      int
	Summary    MonthlySummary
	ComputedAt time.Time
}
