package handler

import (
	"net/http"

	"visionx-go/internal/domain/authz"
	userdomain "visionx-go/internal/domain/user"
	"visionx-go/internal/transport/httpserver/middleware"
)

type registerRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=150"`
	Email     string `json:"email" validate:"omitempty,email"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      string `json:"role" validate:"omitempty,oneof=ADMIN MANAGER COACH VOLUNTEER PLAYER SPECTATOR"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type userResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

type tokenResponse struct {
	Access  string       `json:"access"`
	Refresh string       `json:"refresh"`
	User    userResponse `json:"user"`
}

func toUserResponse(account *userdomain.User) userResponse {
	return userResponse{
		ID:        account.ID,
		Username:  account.Username,
		Email:     account.Email,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Role:      string(account.Role),
	}
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	account, err := h.Users.Register(r.Context(), userdomain.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		Role:      authz.Role(req.Role),
	})
	if err != nil {
		h.serviceError(w, "auth.register", err, "username", req.Username)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(account))
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	account, tokens, err := h.Users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.serviceError(w, "auth.login", err, "username", req.Username)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{
		Access:  tokens.Access,
		Refresh: tokens.Refresh,
		User:    toUserResponse(account),
	})
}

func (h *Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	access, err := h.Users.Refresh(r.Context(), req.Refresh)
	if err != nil {
		h.serviceError(w, "auth.refresh", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"access": access})
}

func (h *Handlers) AuthMe(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())

	account, err := h.Users.GetByID(r.Context(), p.ID)
	if err != nil {
		h.serviceError(w, "auth.me", err, "user_id", p.ID)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(account))
}
