package postgres

import "github.com/Janescience/work-logs-sub002/internal/entities"

// snapshotPayload is the stored shape of summary_snapshots.payload. Keys are
// part of the on-disk format and must not change with the entity types.
type snapshotPayload struct {
	ProjectSummary    []snapshotProjectGroup `json:"projectSummary"`
	IndividualSummary []snapshotIndividual   `json:"individualSummary"`
}

type snapshotProjectGroup struct {
	Type     string                 `json:"type"`
	Projects []snapshotProjectHours `json:"projects"`
}

type snapshotProjectHours struct {
	Name         string  `json:"name"`
	TotalHours   float64 `json:"totalHours"`
	CoreHours    float64 `json:"coreHours"`
	NonCoreHours float64 `json:"nonCoreHours"`
}

type snapshotIndividual struct {
	UserID         string  `json:"userId"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	Classification string  `json:"classification"`
	DisplayName    string  `json:"displayName"`
	TeamName       string  `json:"teamName"`
	TotalHours     float64 `json:"totalHours"`
}

func toSnapshotPayload(s entities.MonthlySummary) snapshotPayload {
	p := snapshotPayload{
		ProjectSummary:    make([]snapshotProjectGroup, 0, len(s.ProjectSummary)),
		IndividualSummary: make([]snapshotIndividual, 0, len(s.IndividualSummary)),
	}
	for _, g := range s.ProjectSummary {
		group := snapshotProjectGroup{Type: g.Type, Projects: make([]snapshotProjectHours, 0, len(g.Projects))}
		for _, ph := range g.Projects {
			group.Projects = append(group.Projects, snapshotProjectHours{
				Name:         ph.Name,
				TotalHours:   ph.TotalHours,
				CoreHours:    ph.CoreHours,
				NonCoreHours: ph.NonCoreHours,
			})
		}
		p.ProjectSummary = append(p.ProjectSummary, group)
	}
	for _, i := range s.IndividualSummary {
		p.IndividualSummary = append(p.IndividualSummary, snapshotIndividual{
			UserID:         i.User.ID,
			Username:       i.User.Username,
			Email:          i.User.Email,
			Classification: string(i.User.Classification),
			DisplayName:    i.User.DisplayName,
			TeamName:       i.User.TeamName,
			TotalHours:     i.TotalHours,
		})
	}
	return p
}

func (p snapshotPayload) summary() entities.MonthlySummary {
	var s entities.MonthlySummary
	for _, g := range p.ProjectSummary {
		group := entities.ProjectTypeGroup{Type: g.Type}
		for _, ph := range g.Projects {
			group.Projects = append(group.Projects, entities.ProjectHours{
				Name:         ph.Name,
				TotalHours:   ph.TotalHours,
				CoreHours:    ph.CoreHours,
				NonCoreHours: ph.NonCoreHours,
			})
		}
		s.ProjectSummary = append(s.ProjectSummary, group)
	}
	for _, i := range p.IndividualSummary {
		s.IndividualSummary = append(s.IndividualSummary, entities.IndividualSummary{
			User: entities.SummaryUser{
				ID:             i.UserID,
				Username:       i.Username,
				Email:          i.Email,
				Classification: entities.Classification(i.Classification),
				DisplayName:    i.DisplayName,
				TeamName:       i.TeamName,
			},
			TotalHours: i.TotalHours,
		})
	}
	return s
}
