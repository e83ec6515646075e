package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	tournamentdomain "visionx-go/internal/domain/tournament"
	"visionx-go/internal/transport/httpserver/middleware"
)

type teamRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type teamResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CaptainID *string   `json:"captain_id"`
	CreatedAt time.Time `json:"created_at"`
}

func toTeamResponse(team *tournamentdomain.Team) teamResponse {
	return teamResponse{
		ID:        team.ID,
		Name:      team.Name,
		CaptainID: team.CaptainID,
		CreatedAt: team.CreatedAt,
	}
}

func toTeamResponses(teams []tournamentdomain.Team) []teamResponse {
	items := make([]teamResponse, 0, len(teams))
	for i := range teams {
		items = append(items, toTeamResponse(&teams[i]))
	}
	return items
}

func (h *Handlers) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.Tournaments.ListTeams(r.Context())
	if err != nil {
		h.serviceError(w, "teams.list", err)
		return
	}

	writeJSON(w, http.StatusOK, toTeamResponses(teams))
}

func (h *Handlers) GetTeam(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	team, err := h.Tournaments.GetTeam(r.Context(), id)
	if err != nil {
		h.serviceError(w, "teams.get", err, "team_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toTeamResponse(team))
}

func (h *Handlers) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req teamRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	p := middleware.PrincipalFromContext(r.Context())
	team, err := h.Tournaments.CreateTeam(r.Context(), p, req.Name)
	if err != nil {
		h.serviceError(w, "teams.create", err, "user_id", p.ID)
		return
	}

	writeJSON(w, http.StatusCreated, toTeamResponse(team))
}

func (h *Handlers) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	var req teamRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	p := middleware.PrincipalFromContext(r.Context())
	id := chi.URLParam(r, "id")
	team, err := h.Tournaments.UpdateTeam(r.Context(), p, id, req.Name)
	if err != nil {
		h.serviceError(w, "teams.update", err, "user_id", p.ID, "team_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toTeamResponse(team))
}

func (h *Handlers) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.Tournaments.DeleteTeam(r.Context(), p, id); err != nil {
		h.serviceError(w, "teams.delete", err, "user_id", p.ID, "team_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// TeamRoster lists a team's registrations. Captains only.
func (h *Handlers) TeamRoster(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())
	id := chi.URLParam(r, "id")

	roster, err := h.Tournaments.TeamRoster(r.Context(), p, id)
	if err != nil {
		h.serviceError(w, "teams.roster", err, "user_id", p.ID, "team_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toRegistrationResponses(roster))
}
