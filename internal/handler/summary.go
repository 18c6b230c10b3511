package handler

import (
	"net/http"
	"time"

	"github.com/Janescience/work-logs-sub002/internal/entities"
	"github.com/Janescience/work-logs-sub002/internal/report"
)

type projectHoursSchema struct {
	Name         string  `json:"name"`
	TotalHours   float64 `json:"totalHours"`
	NonCoreHours float64 `json:"nonCoreHours"`
	CoreHours    float64 `json:"coreHours"`
}

type projectGroupSchema struct {
	ID       string               `json:"_id"`
	Projects []projectHoursSchema `json:"projects"`
}

type summaryUserSchema struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	Classification string `json:"classification"`
	DisplayName    string `json:"displayName"`
	TeamName       string `json:"teamName,omitempty"`
}

type individualSchema struct {
	User       summaryUserSchema `json:"user"`
	TotalHours float64           `json:"totalHours"`
}

type monthlySummaryResponse struct {
	ProjectSummary    []projectGroupSchema `json:"projectSummary"`
	IndividualSummary []individualSchema   `json:"individualSummary"`
}

type monthlyTrendSchema struct {
	Month        int     `json:"month"`
	CoreHours    float64 `json:"coreHours"`
	NonCoreHours float64 `json:"nonCoreHours"`
}

type snapshotResponse struct {
	Year       int                    `json:"year"`
	Month      int                    `json:"month"`
	ComputedAt time.Time              `json:"computedAt"`
	Summary    monthlySummaryResponse `json:"summary"`
}

func toMonthlySummaryResponse(s entities.MonthlySummary) monthlySummaryResponse {
	groups := make([]projectGroupSchema, 0, len(s.ProjectSummary))
	for _, g := range s.ProjectSummary {
		projects := make([]projectHoursSchema, 0, len(g.Projects))
		for _, p := range g.Projects {
			projects = append(projects, projectHoursSchema{
				Name:         p.Name,
				TotalHours:   p.TotalHours,
				NonCoreHours: p.NonCoreHours,
				CoreHours:    p.CoreHours,
			})
		}
		groups = append(groups, projectGroupSchema{ID: g.Type, Projects: projects})
	}
	individuals := make([]individualSchema, 0, len(s.IndividualSummary))
	for _, i := range s.IndividualSummary {
		individuals = append(individuals, individualSchema{
			User: summaryUserSchema{
				ID:             i.User.ID,
				Username:       i.User.Username,
				Email:          i.User.Email,
				Classification: string(i.User.Classification),
				DisplayName:    i.User.DisplayName,
				TeamName:       i.User.TeamName,
			},
			TotalHours: i.TotalHours,
		})
	}
	return monthlySummaryResponse{ProjectSummary: groups, IndividualSummary: individuals}
}

func (h *Handler) handleMonthlySummary(w http.ResponseWriter, r *http.Request) {
	year, month, err := report.ParseMonthPeriod(r.URL.Query().Get("year"), r.URL.Query().Get("month"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	result, err := h.summaryUC.MonthlySummary(r.Context(), year, month)
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMonthlySummaryResponse(result))
}

func (h *Handler) handleYearlySummary(w http.ResponseWriter, r *http.Request) {
	year, err := report.ParseYear(r.URL.Query().Get("year"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	trend, err := h.summaryUC.YearlyTrend(r.Context(), year)
	if err != nil {
		h.handleError(w, err)
		return
	}
	out := make([]monthlyTrendSchema, 0, len(trend))
	for _, m := range trend {
		out = append(out, monthlyTrendSchema{Month: m.Month, CoreHours: m.CoreHours, NonCoreHours: m.NonCoreHours})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	year, month, err := report.ParseMonthPeriod(r.URL.Query().Get("year"), r.URL.Query().Get("month"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	snap, err := h.summaryUC.GetSnapshot(r.Context(), year, month)
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshotResponse{
		Year:       snap.Year,
		Month:      snap.Month,
		ComputedAt: snap.ComputedAt,
		Summary:    toMonthlySummaryResponse(snap.Summary),
	})
}
