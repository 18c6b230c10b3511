package cli

import (
	"encoding/json"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Janescience/work-logs-sub002/internal/entities"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

func render(w io.Writer, format string, v any) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(v)
}

type projectOutput struct {
	Name         string  `json:"name" yaml:"name"`
	TotalHours   float64 `json:"totalHours" yaml:"totalHours"`
	CoreHours    float64 `json:"coreHours" yaml:"coreHours"`
	NonCoreHours float64 `json:"nonCoreHours" yaml:"nonCoreHours"`
}

type projectGroupOutput struct {
	Type     string          `json:"type" yaml:"type"`
	Projects []projectOutput `json:"projects" yaml:"projects"`
}

type individualOutput struct {
	Username       string  `json:"username" yaml:"username"`
	DisplayName    string  `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	Classification string  `json:"classification" yaml:"classification"`
	TeamName       string  `json:"teamName,omitempty" yaml:"teamName,omitempty"`
	TotalHours     float64 `json:"totalHours" yaml:"totalHours"`
}

type monthlyOutput struct {
	Year       int                  `json:"year" yaml:"year"`
	Month      int                  `json:"month" yaml:"month"`
	ComputedAt *time.Time           `json:"computedAt,omitempty" yaml:"computedAt,omitempty"`
	Projects   []projectGroupOutput `json:"projectSummary" yaml:"projectSummary"`
	People     []individualOutput   `json:"individualSummary" yaml:"individualSummary"`
}

type trendOutput struct {
	Month        int     `json:"month" yaml:"month"`
	CoreHours    float64 `json:"coreHours" yaml:"coreHours"`
	NonCoreHours float64 `json:"nonCoreHours" yaml:"nonCoreHours"`
}

type userOutput struct {
	ID             string   `json:"id" yaml:"id"`
	Username       string   `json:"username" yaml:"username"`
	Classification string   `json:"classification" yaml:"classification"`
	Roles          []string `json:"roles" yaml:"roles"`
	Token          string   `json:"token" yaml:"token"`
}

func toMonthlyOutput(year, month int, s entities.MonthlySummary) monthlyOutput {
	out := monthlyOutput{
		Year:     year,
		Month:    month,
		Projects: make([]projectGroupOutput, 0, len(s.ProjectSummary)),
		People:   make([]individualOutput, 0, len(s.IndividualSummary)),
	}
	for _, g := range s.ProjectSummary {
		group := projectGroupOutput{Type: g.Type, Projects: make([]projectOutput, 0, len(g.Projects))}
		for _, p := range g.Projects {
			group.Projects = append(group.Projects, projectOutput{
				Name:         p.Name,
				TotalHours:   p.TotalHours,
				CoreHours:    p.CoreHours,
				NonCoreHours: p.NonCoreHours,
			})
		}
		out.Projects = append(out.Projects, group)
	}
	for _, i := range s.IndividualSummary {
		out.People = append(out.People, individualOutput{
			Username:       i.User.Username,
			DisplayName:    i.User.DisplayName,
			Classification: string(i.User.Classification),
			TeamName:       i.User.TeamName,
			TotalHours:     i.TotalHours,
		})
	}
	return out
}
