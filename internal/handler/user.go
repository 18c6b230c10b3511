package handler

import (
	"net/http"

	"github.com/Janescience/work-logs-sub002/internal/entities"
	"github.com/Janescience/work-logs-sub002/internal/usecase/user"
)

type userSchema struct {
	ID             string   `json:"id"`
	Username       string   `json:"username"`
	DisplayName    string   `json:"displayName"`
	Email          string   `json:"email"`
	Classification string   `json:"classification"`
	Roles          []string `json:"roles"`
}

type userResponse struct {
	User userSchema `json:"user"`
}

type createUserRequest struct {
	Username       string   `json:"username"`
	DisplayName    string   `json:"displayName"`
	Email          string   `json:"email"`
	Classification string   `json:"classification"`
	Roles          []string `json:"roles"`
}

type createUserResponse struct {
	User  userSchema `json:"user"`
	Token string     `json:"token"`
}

func toUserSchema(u entities.User) userSchema {
	roles := make([]string, 0, len(u.Roles))
	for _, role := range u.Roles {
		roles = append(roles, string(role))
	}
	return userSchema{
		ID:             u.ID,
		Username:       u.Username,
		DisplayName:    u.DisplayName,
		Email:          u.Email,
		Classification: string(u.Classification),
		Roles:          roles,
	}
}

func (h *Handler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if !h.decode(w, r, &req) {
		return
	}
	roles := make([]entities.Role, 0, len(req.Roles))
	for _, role := range req.Roles {
		roles = append(roles, entities.Role(role))
	}
	result, err := h.userUC.CreateUser(r.Context(), user.CreateUserInput{
		Username:       req.Username,
		DisplayName:    req.DisplayName,
		Email:          req.Email,
		Classification: entities.Classification(req.Classification),
		Roles:          roles,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, createUserResponse{User: toUserSchema(result.User), Token: result.Token})
}

func (h *Handler) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, userResponse{User: toUserSchema(currentUser(r))})
}
