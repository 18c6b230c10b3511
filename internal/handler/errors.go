package handler

import (
	"errors"
	"net/http"

	"github.com/Janescience/work-logs-sub002/internal/entities"
)

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, errorBody{Error: errorDetails{Code: code, Message: message}})
}

type errorBody struct {
	Error errorDetails `json:"error"`
}

type errorDetails struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entities.ErrInvalidPeriod):
		h.logger.Debug("invalid period", "error", err)
		writeError(w, http.StatusBadRequest, "INVALID_PERIOD", err.Error())
	case errors.Is(err, entities.ErrInvalidInput):
		h.logger.Debug("invalid input", "error", err)
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
	case errors.Is(err, entities.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
	case errors.Is(err, entities.ErrForbidden):
		h.logger.Debug("forbidden", "error", err)
		writeError(w, http.StatusForbidden, "FORBIDDEN", "forbidden")
	case errors.Is(err, entities.ErrTeamNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "team not found")
	case errors.Is(err, entities.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "user not found")
	case errors.Is(err, entities.ErrIssueNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "issue not found")
	case errors.Is(err, entities.ErrLogNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "time log not found")
	case errors.Is(err, entities.ErrSnapshotNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "snapshot not found")
	case errors.Is(err, entities.ErrUserExists):
		writeError(w, http.StatusConflict, "USER_EXISTS", "user already exists")
	case errors.Is(err, entities.ErrIssueExists):
		writeError(w, http.StatusConflict, "ISSUE_EXISTS", "issue already exists")
	case errors.Is(err, entities.ErrUserInAnotherTeam):
		writeError(w, http.StatusConflict, "USER_IN_ANOTHER_TEAM", "user belongs to another active team")
	case errors.Is(err, entities.ErrTeamInactive):
		writeError(w, http.StatusConflict, "TEAM_INACTIVE", "team is inactive")
	default:
		h.logger.Error("handler error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
	}
}
