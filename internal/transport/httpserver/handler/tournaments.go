package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	tournamentdomain "visionx-go/internal/domain/tournament"
	"visionx-go/internal/transport/httpserver/middleware"
)

type tournamentRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	Rules       string `json:"rules"`
	StartDate   string `json:"start_date" validate:"required"`
	EndDate     string `json:"end_date" validate:"required"`
	Location    string `json:"location" validate:"required,max=255"`
}

type tournamentResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Rules       string `json:"rules"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Location    string `json:"location"`
}

func toTournamentResponse(tournament *tournamentdomain.Tournament) tournamentResponse {
	return tournamentResponse{
		ID:          tournament.ID,
		Title:       tournament.Title,
		Description: tournament.Description,
		Rules:       tournament.Rules,
		StartDate:   formatDate(tournament.StartDate),
		EndDate:     formatDate(tournament.EndDate),
		Location:    tournament.Location,
	}
}

func (h *Handlers) ListTournaments(w http.ResponseWriter, r *http.Request) {
	tournaments, err := h.Tournaments.ListTournaments(r.Context())
	if err != nil {
		h.serviceError(w, "tournaments.list", err)
		return
	}

	items := make([]tournamentResponse, 0, len(tournaments))
	for i := range tournaments {
		items = append(items, toTournamentResponse(&tournaments[i]))
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) GetTournament(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	tournament, err := h.Tournaments.GetTournament(r.Context(), id)
	if err != nil {
		h.serviceError(w, "tournaments.get", err, "tournament_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toTournamentResponse(tournament))
}

func (h *Handlers) tournamentInput(w http.ResponseWriter, r *http.Request) (tournamentdomain.TournamentInput, bool) {
	var req tournamentRequest
	if !h.decodeValid(w, r, &req) {
		return tournamentdomain.TournamentInput{}, false
	}

	start, err := parseDateRequired(req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "start_date must be YYYY-MM-DD")
		return tournamentdomain.TournamentInput{}, false
	}
	end, err := parseDateRequired(req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "end_date must be YYYY-MM-DD")
		return tournamentdomain.TournamentInput{}, false
	}

	return tournamentdomain.TournamentInput{
		Title:       req.Title,
		Description: req.Description,
		Rules:       req.Rules,
		StartDate:   start,
		EndDate:     end,
		Location:    req.Location,
	}, true
}

func (h *Handlers) CreateTournament(w http.ResponseWriter, r *http.Request) {
	input, ok := h.tournamentInput(w, r)
	if !ok {
		return
	}

	p := middleware.PrincipalFromContext(r.Context())
	tournament, err := h.Tournaments.CreateTournament(r.Context(), p, input)
	if err != nil {
		h.serviceError(w, "tournaments.create", err, "user_id", p.ID)
		return
	}

	writeJSON(w, http.StatusCreated, toTournamentResponse(tournament))
}

func (h *Handlers) UpdateTournament(w http.ResponseWriter, r *http.Request) {
	input, ok := h.tournamentInput(w, r)
	if !ok {
		return
	}

	p := middleware.PrincipalFromContext(r.Context())
	id := chi.URLParam(r, "id")
	tournament, err := h.Tournaments.UpdateTournament(r.Context(), p, id, input)
	if err != nil {
		h.serviceError(w, "tournaments.update", err, "user_id", p.ID, "tournament_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toTournamentResponse(tournament))
}

func (h *Handlers) DeleteTournament(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.Tournaments.DeleteTournament(r.Context(), p, id); err != nil {
		h.serviceError(w, "tournaments.delete", err, "user_id", p.ID, "tournament_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) TournamentTeams(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	teams, err := h.Tournaments.TournamentTeams(r.Context(), id)
	if err != nil {
		h.serviceError(w, "tournaments.teams", err, "tournament_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toTeamResponses(teams))
}

func (h *Handlers) TournamentMatches(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	matches, err := h.Tournaments.TournamentMatches(r.Context(), id)
	if err != nil {
		h.serviceError(w, "tournaments.matches", err, "tournament_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toMatchResponses(matches))
}

func (h *Handlers) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())
	id := chi.URLParam(r, "id")

	created, err := h.Tournaments.GenerateSchedule(r.Context(), p, id)
	if err != nil {
		h.serviceError(w, "tournaments.generate_schedule", err, "user_id", p.ID, "tournament_id", id)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int{"matches_created": created})
}
