package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Janescience/work-logs-sub002/internal/entities"
	"github.com/Janescience/work-logs-sub002/internal/usecase/worklog"
)

const dateLayout = "2006-01-02"

type issueSchema struct {
	ID                string     `json:"id"`
	Key               string     `json:"key"`
	Summary           string     `json:"summary"`
	ProjectName       string     `json:"projectName"`
	ServiceName       string     `json:"serviceName"`
	OwnerUserID       string     `json:"ownerUserId"`
	Status            string     `json:"status"`
	DueDate           *time.Time `json:"dueDate,omitempty"`
	DeploySITDate     *time.Time `json:"deploySitDate,omitempty"`
	DeployUATDate     *time.Time `json:"deployUatDate,omitempty"`
	DeployPreProdDate *time.Time `json:"deployPreprodDate,omitempty"`
	DeployProdDate    *time.Time `json:"deployProdDate,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

type issueResponse struct {
	Issue issueSchema `json:"issue"`
}

type issuesResponse struct {
	Issues []issueSchema `json:"issues"`
}

type createIssueRequest struct {
	Key         string `json:"key"`
	Summary     string `json:"summary"`
	ProjectName string `json:"projectName"`
	ServiceName string `json:"serviceName"`
	OwnerUserID string `json:"ownerUserId"`
	Status      string `json:"status"`
	DueDate     string `json:"dueDate"`
}

type timeLogSchema struct {
	ID          string    `json:"id"`
	IssueID     string    `json:"issueId"`
	LogDate     time.Time `json:"logDate"`
	HoursSpent  float64   `json:"hoursSpent"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type timeLogResponse struct {
	Log timeLogSchema `json:"log"`
}

type timeLogsResponse struct {
	Logs []timeLogSchema `json:"logs"`
}

type logTimeRequest struct {
	LogDate     string  `json:"logDate"`
	HoursSpent  float64 `json:"hoursSpent"`
	Description string  `json:"description"`
}

type projectSchema struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type projectsResponse struct {
	Projects []projectSchema `json:"projects"`
}

func toIssueSchema(i entities.Issue) issueSchema {
	return issueSchema{
		ID:                i.ID,
		Key:               i.Key,
		Summary:           i.Summary,
		ProjectName:       i.ProjectName,
		ServiceName:       i.ServiceName,
		OwnerUserID:       i.OwnerUserID,
		Status:            string(i.Status),
		DueDate:           i.DueDate,
		DeploySITDate:     i.DeploySITDate,
		DeployUATDate:     i.DeployUATDate,
		DeployPreProdDate: i.DeployPreProdDate,
		DeployProdDate:    i.DeployProdDate,
		CreatedAt:         i.CreatedAt,
	}
}

func toTimeLogSchema(l entities.TimeLog) timeLogSchema {
	return timeLogSchema{
		ID:          l.ID,
		IssueID:     l.IssueID,
		LogDate:     l.LogDate,
		HoursSpent:  l.HoursSpent,
		Description: l.Description,
		CreatedAt:   l.CreatedAt,
	}
}

// parseDate accepts a calendar date, read in time.Local, or a full RFC 3339
// timestamp.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.ParseInLocation(dateLayout, value, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD or RFC 3339", entities.ErrInvalidInput, value)
	}
	return t, nil
}

func (h *Handler) handleCreateIssue(w http.ResponseWriter, r *http.Request) {
	var req createIssueRequest
	if !h.decode(w, r, &req) {
		return
	}
	input := worklog.CreateIssueInput{
		Key:         req.Key,
		Summary:     req.Summary,
		ProjectName: req.ProjectName,
		ServiceName: req.ServiceName,
		OwnerUserID: req.OwnerUserID,
		Status:      entities.IssueStatus(req.Status),
	}
	if req.DueDate != "" {
		due, err := parseDate(req.DueDate)
		if err != nil {
			h.handleError(w, err)
			return
		}
		input.DueDate = &due
	}
	issue, err := h.worklogUC.CreateIssue(r.Context(), currentUser(r), input)
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, issueResponse{Issue: toIssueSchema(issue)})
}

func (h *Handler) handleGetIssue(w http.ResponseWriter, r *http.Request) {
	issue, err := h.worklogUC.GetIssue(r.Context(), chi.URLParam(r, "issueID"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, issueResponse{Issue: toIssueSchema(issue)})
}

func (h *Handler) handleListIssues(w http.ResponseWriter, r *http.Request) {
	owner := r.URL.Query().Get("owner")
	if owner == "" {
		owner = currentUser(r).ID
	}
	issues, err := h.worklogUC.ListIssuesByOwner(r.Context(), owner)
	if err != nil {
		h.handleError(w, err)
		return
	}
	out := make([]issueSchema, 0, len(issues))
	for _, i := range issues {
		out = append(out, toIssueSchema(i))
	}
	writeJSON(w, http.StatusOK, issuesResponse{Issues: out})
}

func (h *Handler) handleLogTime(w http.ResponseWriter, r *http.Request) {
	var req logTimeRequest
	if !h.decode(w, r, &req) {
		return
	}
	logDate, err := parseDate(req.LogDate)
	if err != nil {
		h.handleError(w, err)
		return
	}
	log, err := h.worklogUC.LogTime(r.Context(), currentUser(r), worklog.LogTimeInput{
		IssueID:     chi.URLParam(r, "issueID"),
		LogDate:     logDate,
		HoursSpent:  req.HoursSpent,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, timeLogResponse{Log: toTimeLogSchema(log)})
}

func (h *Handler) handleListLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.worklogUC.ListLogs(r.Context(), chi.URLParam(r, "issueID"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	out := make([]timeLogSchema, 0, len(logs))
	for _, l := range logs {
		out = append(out, toTimeLogSchema(l))
	}
	writeJSON(w, http.StatusOK, timeLogsResponse{Logs: out})
}

func (h *Handler) handleDeleteLog(w http.ResponseWriter, r *http.Request) {
	if err := h.worklogUC.DeleteLog(r.Context(), currentUser(r), chi.URLParam(r, "logID")); err != nil {
		h.handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.worklogUC.ListProjects(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}
	out := make([]projectSchema, 0, len(projects))
	for _, p := range projects {
		out = append(out, projectSchema{Name: p.Name, Type: p.Type})
	}
	writeJSON(w, http.StatusOK, projectsResponse{Projects: out})
}

func (h *Handler) handleUpsertProject(w http.ResponseWriter, r *http.Request) {
	var req projectSchema
	if !h.decode(w, r, &req) {
		return
	}
	project, err := h.worklogUC.UpsertProject(r.Context(), currentUser(r), entities.Project{Name: req.Name, Type: req.Type})
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projectSchema{Name: project.Name, Type: project.Type})
}
