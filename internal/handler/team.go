package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Janescience/work-logs-sub002/internal/entities"
)

type teamSchema struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	LeadUserID string   `json:"leadUserId"`
	MemberIDs  []string `json:"memberIds"`
	IsActive   bool     `json:"isActive"`
}

type teamResponse struct {
	Team teamSchema `json:"team"`
}

type createTeamRequest struct {
	Name       string   `json:"name"`
	LeadUserID string   `json:"leadUserId"`
	MemberIDs  []string `json:"memberIds"`
}

type addMemberRequest struct {
	UserID string `json:"userId"`
}

func toTeamSchema(t entities.Team) teamSchema {
	members := make([]string, 0, len(t.MemberIDs))
	members = append(members, t.MemberIDs...)
	return teamSchema{
		ID:         t.ID,
		Name:       t.Name,
		LeadUserID: t.LeadUserID,
		MemberIDs:  members,
		IsActive:   t.IsActive,
	}
}

func (h *Handler) handleCreateTeam(w http.ResponseWriter, r *http.Request) {
	var req createTeamRequest
	if !h.decode(w, r, &req) {
		return
	}
	result, err := h.teamUC.CreateTeam(r.Context(), currentUser(r), entities.Team{
		Name:       req.Name,
		LeadUserID: req.LeadUserID,
		MemberIDs:  req.MemberIDs,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, teamResponse{Team: toTeamSchema(result)})
}

func (h *Handler) handleGetTeam(w http.ResponseWriter, r *http.Request) {
	result, err := h.teamUC.GetTeam(r.Context(), chi.URLParam(r, "teamID"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, teamResponse{Team: toTeamSchema(result)})
}

func (h *Handler) handleAddMember(w http.ResponseWriter, r *http.Request) {
	var req addMemberRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "userId required")
		return
	}
	result, err := h.teamUC.AddMember(r.Context(), currentUser(r), chi.URLParam(r, "teamID"), req.UserID)
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, teamResponse{Team: toTeamSchema(result)})
}

func (h *Handler) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	result, err := h.teamUC.RemoveMember(r.Context(), currentUser(r), chi.URLParam(r, "teamID"), chi.URLParam(r, "userID"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, teamResponse{Team: toTeamSchema(result)})
}

func (h *Handler) handleDeactivateTeam(w http.ResponseWriter, r *http.Request) {
	result, err := h.teamUC.DeactivateTeam(r.Context(), currentUser(r), chi.URLParam(r, "teamID"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, teamResponse{Team: toTeamSchema(result)})
}
