// Package report turns raw time logs into the monthly project/type summary,
// the monthly individual summary and the yearly Core/Non-Core trend. Every
// join and grouping step is a pure function over in-memory rows.
package report

import (
	"sort"
	"time"

	"github.com/Janescience/work-logs-sub002/internal/entities"
)

// Source is everything the pipeline reads for one period, loaded in a single
// consistent read from the store.
type Source struct {
	Logs     []entities.TimeLog
	Issues   []entities.Issue
	Users    []entities.User
	Teams    []entities.Team
	Projects []entities.Project
}

// Row is a time log joined with its issue, owner, project type and team.
type Row struct {
	Log         entities.TimeLog
	Issue       entities.Issue
	Owner       entities.User
	ProjectType string
	TeamName    string
}

// Diagnostics counts entries in the window that could not be attributed to an
// existing issue or owner and were therefore left out of every aggregate.
type Diagnostics struct {
	Entries             int
	MissingIssueEntries int
	MissingOwnerEntries int
	UnattributedHours   float64
}

func (d Diagnostics) Unattributed() int {
	return d.MissingIssueEntries + d.MissingOwnerEntries
}

func SelectWindow(logs []entities.TimeLog, w Window) []entities.TimeLog {
	out := make([]entities.TimeLog, 0, len(logs))
	for _, l := range logs {
		if w.Contains(l.LogDate) {
			out = append(out, l)
		}
	}
	return out
}

// JoinIssues inner-joins logs to issues. Logs whose issue is gone are returned
// separately.
func JoinIssues(logs []entities.TimeLog, issues []entities.Issue) ([]Row, []entities.TimeLog) {
	byID := make(map[string]entities.Issue, len(issues))
	for _, i := range issues {
		byID[i.ID] = i
	}
	rows := make([]Row, 0, len(logs))
	var missing []entities.TimeLog
	for _, l := range logs {
		issue, ok := byID[l.IssueID]
		if !ok {
			missing = append(missing, l)
			continue
		}
		rows = append(rows, Row{Log: l, Issue: issue})
	}
	return rows, missing
}

// JoinOwners inner-joins rows to the issue owner.
func JoinOwners(rows []Row, users []entities.User) ([]Row, []entities.TimeLog) {
	byID := make(map[string]entities.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	out := make([]Row, 0, len(rows))
	var missing []entities.TimeLog
	for _, r := range rows {
		owner, ok := byID[r.Issue.OwnerUserID]
		if !ok {
			missing = append(missing, r.Log)
			continue
		}
		r.Owner = owner
		out = append(out, r)
	}
	return out, missing
}

// ResolveProjectTypes left-joins rows to the project catalog by exact name.
func ResolveProjectTypes(rows []Row, projects []entities.Project) []Row {
	types := make(map[string]string, len(projects))
	for _, p := range projects {
		types[p.Name] = p.Type
	}
	out := make([]Row, len(rows))
	for i, r := range rows {
		t, ok := types[r.Issue.ProjectName]
		if !ok || t == "" {
			t = entities.OtherProjectType
		}
		r.ProjectType = t
		out[i] = r
	}
	return out
}

// AttachTeams left-joins rows to the active team containing the owner. A user
// listed in several active teams gets the team with the lowest name, so hours
// are never counted twice.
func AttachTeams(rows []Row, teams []entities.Team) []Row {
	active := make([]entities.Team, 0, len(teams))
	for _, t := range teams {
		if t.IsActive {
			active = append(active, t)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		if active[i].Name != active[j].Name {
			return active[i].Name < active[j].Name
		}
		return active[i].ID < active[j].ID
	})
	teamOf := make(map[string]string)
	for _, t := range active {
		for _, id := range t.MemberIDs {
			if _, seen := teamOf[id]; !seen {
				teamOf[id] = t.Name
			}
		}
	}
	out := make([]Row, len(rows))
	for i, r := range rows {
		r.TeamName = teamOf[r.Owner.ID]
		out[i] = r
	}
	return out
}

func splitHours(r Row) (core, nonCore float64) {
	if r.Owner.Classification == entities.ClassificationCore {
		return r.Log.HoursSpent, 0
	}
	return 0, r.Log.HoursSpent
}

// SummarizeProjects groups hours by (project, type) and regroups the projects
// under their type. Types and the projects inside each type are sorted by name.
func SummarizeProjects(rows []Row) []entities.ProjectTypeGroup {
	type key struct{ name, typ string }
	sums := make(map[key]*entities.ProjectHours)
	for _, r := range rows {
		k := key{name: r.Issue.ProjectName, typ: r.ProjectType}
		p, ok := sums[k]
		if !ok {
			p = &entities.ProjectHours{Name: k.name}
			sums[k] = p
		}
		core, nonCore := splitHours(r)
		p.TotalHours += r.Log.HoursSpent
		p.CoreHours += core
		p.NonCoreHours += nonCore
	}

	byType := make(map[string][]entities.ProjectHours)
	for k, p := range sums {
		byType[k.typ] = append(byType[k.typ], *p)
	}
	groups := make([]entities.ProjectTypeGroup, 0, len(byType))
	for t, projects := range byType {
		sort.Slice(projects, func(i, j int) bool { return projects[i].Name < projects[j].Name })
		groups = append(groups, entities.ProjectTypeGroup{Type: t, Projects: projects})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Type < groups[j].Type })
	return groups
}

// SummarizeIndividuals sums hours per (user, team) and sorts by username.
func SummarizeIndividuals(rows []Row) []entities.IndividualSummary {
	type key struct{ userID, team string }
	sums := make(map[key]*entities.IndividualSummary)
	for _, r := range rows {
		k := key{userID: r.Owner.ID, team: r.TeamName}
		s, ok := sums[k]
		if !ok {
			s = &entities.IndividualSummary{User: entities.SummaryUser{
				ID:             r.Owner.ID,
				Username:       r.Owner.Username,
				Email:          r.Owner.Email,
				Classification: r.Owner.Classification,
				DisplayName:    r.Owner.DisplayName,
				TeamName:       r.TeamName,
			}}
			sums[k] = s
		}
		s.TotalHours += r.Log.HoursSpent
	}
	out := make([]entities.IndividualSummary, 0, len(sums))
	for _, s := range sums {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].User, out[j].User
		if a.Username != b.Username {
			return a.Username < b.Username
		}
		if a.TeamName != b.TeamName {
			return a.TeamName < b.TeamName
		}
		return a.ID < b.ID
	})
	return out
}

// TrendByMonth pivots hours into Core/Non-Core columns per calendar month of the
// log date in time.Local. The result always has twelve entries, January first;
// months without activity are zero.
func TrendByMonth(rows []Row) []entities.MonthlyTrend {
	trend := make([]entities.MonthlyTrend, 12)
	for i := range trend {
		trend[i].Month = i + 1
	}
	for _, r := range rows {
		m := r.Log.LogDate.In(time.Local).Month()
		core, nonCore := splitHours(r)
		trend[m-1].CoreHours += core
		trend[m-1].NonCoreHours += nonCore
	}
	return trend
}

// attribute runs the window selection and both inner joins shared by the
// monthly and yearly reports.
func attribute(src Source, w Window) ([]Row, Diagnostics) {
	logs := SelectWindow(src.Logs, w)
	rows, noIssue := JoinIssues(logs, src.Issues)
	rows, noOwner := JoinOwners(rows, src.Users)

	diag := Diagnostics{
		Entries:             len(logs),
		MissingIssueEntries: len(noIssue),
		MissingOwnerEntries: len(noOwner),
	}
	for _, l := range noIssue {
		diag.UnattributedHours += l.HoursSpent
	}
	for _, l := range noOwner {
		diag.UnattributedHours += l.HoursSpent
	}
	return rows, diag
}

func Monthly(src Source, w Window) (entities.MonthlySummary, Diagnostics) {
	rows, diag := attribute(src, w)
	rows = ResolveProjectTypes(rows, src.Projects)
	rows = AttachTeams(rows, src.Teams)
	return entities.MonthlySummary{
		ProjectSummary:    SummarizeProjects(rows),
		IndividualSummary: SummarizeIndividuals(rows),
	}, diag
}

func Yearly(src Source, w Window) ([]entities.MonthlyTrend, Diagnostics) {
	rows, diag := attribute(src, w)
	return TrendByMonth(rows), diag
}
