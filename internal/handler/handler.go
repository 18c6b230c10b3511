package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Janescience/work-logs-sub002/internal/entities"
	"github.com/Janescience/work-logs-sub002/internal/usecase/summary"
	"github.com/Janescience/work-logs-sub002/internal/usecase/team"
	"github.com/Janescience/work-logs-sub002/internal/usecase/user"
	"github.com/Janescience/work-logs-sub002/internal/usecase/worklog"
	"github.com/Janescience/work-logs-sub002/pkg/logger"
)

type Handler struct {
	summaryUC summary.SummaryUseCase
	teamUC    team.TeamUseCase
	worklogUC worklog.WorklogUseCase
	userUC    user.UserUseCase
	ready     func(ctx context.Context) error
	logger    logger.Logger
}

func New(summaryUC summary.SummaryUseCase, teamUC team.TeamUseCase, worklogUC worklog.WorklogUseCase, userUC user.UserUseCase, log logger.Logger) *Handler {
	return &Handler{
		summaryUC: summaryUC,
		teamUC:    teamUC,
		worklogUC: worklogUC,
		userUC:    userUC,
		logger:    log,
	}
}

// WithReadiness makes /healthz report 503 while check fails.
func (h *Handler) WithReadiness(check func(ctx context.Context) error) *Handler {
	h.ready = check
	return h
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.requestLogger)

	r.Get("/healthz", h.handleHealth)
	r.Group(func(r chi.Router) {
		r.Use(h.Authenticate)

		r.Get("/users/me", h.handleCurrentUser)
		r.Get("/projects", h.handleListProjects)

		r.Post("/issues", h.handleCreateIssue)
		r.Get("/issues", h.handleListIssues)
		r.Get("/issues/{issueID}", h.handleGetIssue)
		r.Post("/issues/{issueID}/logs", h.handleLogTime)
		r.Get("/issues/{issueID}/logs", h.handleListLogs)
		r.Delete("/logs/{logID}", h.handleDeleteLog)

		r.Post("/teams", h.handleCreateTeam)
		r.Get("/teams/{teamID}", h.handleGetTeam)
		r.Post("/teams/{teamID}/members", h.handleAddMember)
		r.Delete("/teams/{teamID}/members/{userID}", h.handleRemoveMember)
		r.Post("/teams/{teamID}/deactivate", h.handleDeactivateTeam)

		r.Group(func(r chi.Router) {
			r.Use(h.RequireRole(entities.RoleAdmin))
			r.Post("/users", h.handleCreateUser)
			r.Put("/projects", h.handleUpsertProject)
		})
		r.Group(func(r chi.Router) {
			r.Use(h.RequireRole(entities.RoleITLead))
			r.Get("/summary/monthly", h.handleMonthlySummary)
			r.Get("/summary/yearly", h.handleYearlySummary)
			r.Get("/summary/snapshots", h.handleSnapshot)
		})
	})
	return r
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.ready != nil {
		if err := h.ready(r.Context()); err != nil {
			h.logger.Error("readiness check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.Debug("failed to decode request body", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid body")
		return false
	}
	return true
}
