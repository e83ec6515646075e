package handler

import (
	"net/http"

	"visionx-go/internal/domain/authz"
	userdomain "visionx-go/internal/domain/user"
	"visionx-go/internal/transport/httpserver/middleware"
)

type adminCreateUserRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=150"`
	Email     string `json:"email" validate:"omitempty,email"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      string `json:"role" validate:"required,oneof=ADMIN MANAGER COACH VOLUNTEER PLAYER SPECTATOR"`
}

func (h *Handlers) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())
	if !authz.CanListUsers(p) {
		writeError(w, http.StatusForbidden, "forbidden", "admin role required")
		return
	}

	accounts, err := h.Users.List(r.Context(), p)
	if err != nil {
		h.serviceError(w, "users.list", err, "user_id", p.ID)
		return
	}

	items := make([]userResponse, 0, len(accounts))
	for i := range accounts {
		items = append(items, toUserResponse(&accounts[i]))
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) AdminCreateUser(w http.ResponseWriter, r *http.Request) {
	var req adminCreateUserRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	p := middleware.PrincipalFromContext(r.Context())
	account, err := h.Users.AdminCreate(r.Context(), p, userdomain.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		Role:      authz.Role(req.Role),
	})
	if err != nil {
		h.serviceError(w, "users.create", err, "user_id", p.ID, "username", req.Username)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(account))
}
