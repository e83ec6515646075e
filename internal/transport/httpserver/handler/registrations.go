package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	tournamentdomain "visionx-go/internal/domain/tournament"
	"visionx-go/internal/transport/httpserver/middleware"
)

type registerPlayerRequest struct {
	TeamID       string `json:"team_id" validate:"required,uuid4"`
	TournamentID string `json:"tournament_id" validate:"required,uuid4"`
	Username     string `json:"username"`
}

type registrationResponse struct {
	ID           string    `json:"id"`
	PlayerID     string    `json:"player_id"`
	TeamID       string    `json:"team_id"`
	TournamentID string    `json:"tournament_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func toRegistrationResponse(registration *tournamentdomain.PlayerRegistration) registrationResponse {
	return registrationResponse{
		ID:           registration.ID,
		PlayerID:     registration.PlayerID,
		TeamID:       registration.TeamID,
		TournamentID: registration.TournamentID,
		CreatedAt:    registration.CreatedAt,
	}
}

func toRegistrationResponses(registrations []tournamentdomain.PlayerRegistration) []registrationResponse {
	items := make([]registrationResponse, 0, len(registrations))
	for i := range registrations {
		items = append(items, toRegistrationResponse(&registrations[i]))
	}
	return items
}

func (h *Handlers) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	registrations, err := h.Tournaments.ListRegistrations(r.Context())
	if err != nil {
		h.serviceError(w, "registrations.list", err)
		return
	}

	writeJSON(w, http.StatusOK, toRegistrationResponses(registrations))
}

func (h *Handlers) GetRegistration(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	registration, err := h.Tournaments.GetRegistration(r.Context(), id)
	if err != nil {
		h.serviceError(w, "registrations.get", err, "registration_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toRegistrationResponse(registration))
}

func (h *Handlers) RegisterPlayer(w http.ResponseWriter, r *http.Request) {
	var req registerPlayerRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	p := middleware.PrincipalFromContext(r.Context())
	registration, err := h.Tournaments.Register(r.Context(), p, tournamentdomain.RegisterInput{
		TeamID:       req.TeamID,
		TournamentID: req.TournamentID,
		Username:     req.Username,
	})
	if err != nil {
		h.serviceError(w, "registrations.create", err, "user_id", p.ID, "team_id", req.TeamID)
		return
	}

	writeJSON(w, http.StatusCreated, toRegistrationResponse(registration))
}

func (h *Handlers) DeleteRegistration(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Tournaments.DeleteRegistration(r.Context(), id); err != nil {
		h.serviceError(w, "registrations.delete", err, "registration_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MyRegistrations lists the caller's own tournament registrations.
func (h *Handlers) MyRegistrations(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())

	registrations, err := h.Tournaments.MyRegistrations(r.Context(), p)
	if err != nil {
		h.serviceError(w, "registrations.mine", err, "user_id", p.ID)
		return
	}

	writeJSON(w, http.StatusOK, toRegistrationResponses(registrations))
}
