package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	tournamentdomain "visionx-go/internal/domain/tournament"
	"visionx-go/internal/transport/httpserver/middleware"
)

type createMatchRequest struct {
	TournamentID string  `json:"tournament_id" validate:"required,uuid4"`
	TeamAID      string  `json:"team_a_id" validate:"required,uuid4"`
	TeamBID      string  `json:"team_b_id" validate:"required,uuid4"`
	StartTime    string  `json:"start_time" validate:"required"`
	FieldNumber  int     `json:"field_number" validate:"min=1"`
	TeamAScore   *int    `json:"team_a_score" validate:"omitempty,min=0"`
	TeamBScore   *int    `json:"team_b_score" validate:"omitempty,min=0"`
	Status       *string `json:"status" validate:"omitempty,oneof=SCHEDULED LIVE FINAL"`
	IsFinal      *bool   `json:"is_final"`
}

type updateMatchRequest struct {
	StartTime   *string `json:"start_time"`
	FieldNumber *int    `json:"field_number" validate:"omitempty,min=1"`
	TeamAScore  *int    `json:"team_a_score" validate:"omitempty,min=0"`
	TeamBScore  *int    `json:"team_b_score" validate:"omitempty,min=0"`
	Status      *string `json:"status" validate:"omitempty,oneof=SCHEDULED LIVE FINAL"`
	IsFinal     *bool   `json:"is_final"`
}

type matchResponse struct {
	ID           string    `json:"id"`
	TournamentID string    `json:"tournament_id"`
	TeamAID      string    `json:"team_a_id"`
	TeamBID      string    `json:"team_b_id"`
	StartTime    time.Time `json:"start_time"`
	FieldNumber  int       `json:"field_number"`
	TeamAScore   *int      `json:"team_a_score"`
	TeamBScore   *int      `json:"team_b_score"`
	Status       string    `json:"status"`
	IsFinal      bool      `json:"is_final"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toMatchResponse(match *tournamentdomain.Match) matchResponse {
	return matchResponse{
		ID:           match.ID,
		TournamentID: match.TournamentID,
		TeamAID:      match.TeamAID,
		TeamBID:      match.TeamBID,
		StartTime:    match.StartTime,
		FieldNumber:  match.FieldNumber,
		TeamAScore:   match.TeamAScore,
		TeamBScore:   match.TeamBScore,
		Status:       match.Status,
		IsFinal:      match.IsFinal,
		CreatedAt:    match.CreatedAt,
		UpdatedAt:    match.UpdatedAt,
	}
}

func toMatchResponses(matches []tournamentdomain.Match) []matchResponse {
	items := make([]matchResponse, 0, len(matches))
	for i := range matches {
		items = append(items, toMatchResponse(&matches[i]))
	}
	return items
}

func (h *Handlers) ListMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := h.Tournaments.ListMatches(r.Context())
	if err != nil {
		h.serviceError(w, "matches.list", err)
		return
	}

	writeJSON(w, http.StatusOK, toMatchResponses(matches))
}

func (h *Handlers) GetMatch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	match, err := h.Tournaments.GetMatch(r.Context(), id)
	if err != nil {
		h.serviceError(w, "matches.get", err, "match_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toMatchResponse(match))
}

func (h *Handlers) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var req createMatchRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	start, err := parseTimeRequired(req.StartTime)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "start_time must be RFC 3339")
		return
	}

	p := middleware.PrincipalFromContext(r.Context())
	match, err := h.Tournaments.CreateMatch(r.Context(), p, tournamentdomain.MatchInput{
		TournamentID: req.TournamentID,
		TeamAID:      req.TeamAID,
		TeamBID:      req.TeamBID,
		StartTime:    start,
		FieldNumber:  req.FieldNumber,
		TeamAScore:   req.TeamAScore,
		TeamBScore:   req.TeamBScore,
		Status:       req.Status,
		IsFinal:      req.IsFinal,
	})
	if err != nil {
		h.serviceError(w, "matches.create", err, "user_id", p.ID)
		return
	}

	writeJSON(w, http.StatusCreated, toMatchResponse(match))
}

func (h *Handlers) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	var req updateMatchRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	start, err := parseTimeParam(req.StartTime)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "start_time must be RFC 3339")
		return
	}

	p := middleware.PrincipalFromContext(r.Context())
	id := chi.URLParam(r, "id")
	match, err := h.Tournaments.UpdateMatch(r.Context(), p, tournamentdomain.UpdateMatchInput{
		ID:          id,
		StartTime:   start,
		FieldNumber: req.FieldNumber,
		TeamAScore:  req.TeamAScore,
		TeamBScore:  req.TeamBScore,
		Status:      req.Status,
		IsFinal:     req.IsFinal,
	})
	if err != nil {
		h.serviceError(w, "matches.update", err, "user_id", p.ID, "match_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toMatchResponse(match))
}

func (h *Handlers) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.Tournaments.DeleteMatch(r.Context(), p, id); err != nil {
		h.serviceError(w, "matches.delete", err, "user_id", p.ID, "match_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- Spirit scores ---

type spiritScoreRequest struct {
	MatchID          string  `json:"match_id" validate:"required,uuid4"`
	TargetTeamID     string  `json:"target_team_id" validate:"required,uuid4"`
	RulesKnowledge   *int    `json:"rules_knowledge" validate:"omitempty,min=0,max=4"`
	FoulsContact     *int    `json:"fouls_contact" validate:"omitempty,min=0,max=4"`
	FairMindedness   *int    `json:"fair_mindedness" validate:"omitempty,min=0,max=4"`
	PositiveAttitude *int    `json:"positive_attitude" validate:"omitempty,min=0,max=4"`
	Communication    *int    `json:"communication" validate:"omitempty,min=0,max=4"`
	Comments         *string `json:"comments"`
}

type spiritScoreResponse struct {
	ID               string    `json:"id"`
	MatchID          string    `json:"match_id"`
	SubmittingUserID string    `json:"submitting_user_id"`
	TargetTeamID     string    `json:"target_team_id"`
	RulesKnowledge   int       `json:"rules_knowledge"`
	FoulsContact     int       `json:"fouls_contact"`
	FairMindedness   int       `json:"fair_mindedness"`
	PositiveAttitude int       `json:"positive_attitude"`
	Communication    int       `json:"communication"`
	Comments         *string   `json:"comments"`
	SubmittedAt      time.Time `json:"submitted_at"`
}

func toSpiritScoreResponse(score *tournamentdomain.SpiritScore) spiritScoreResponse {
	return spiritScoreResponse{
		ID:               score.ID,
		MatchID:          score.MatchID,
		SubmittingUserID: score.SubmittingUserID,
		TargetTeamID:     score.TargetTeamID,
		RulesKnowledge:   score.RulesKnowledge,
		FoulsContact:     score.FoulsContact,
		FairMindedness:   score.FairMindedness,
		PositiveAttitude: score.PositiveAttitude,
		Communication:    score.Communication,
		Comments:         score.Comments,
		SubmittedAt:      score.SubmittedAt,
	}
}

func (h *Handlers) ListSpiritScores(w http.ResponseWriter, r *http.Request) {
	scores, err := h.Tournaments.ListSpiritScores(r.Context())
	if err != nil {
		h.serviceError(w, "spirit_scores.list", err)
		return
	}

	items := make([]spiritScoreResponse, 0, len(scores))
	for i := range scores {
		items = append(items, toSpiritScoreResponse(&scores[i]))
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) GetSpiritScore(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	score, err := h.Tournaments.GetSpiritScore(r.Context(), id)
	if err != nil {
		h.serviceError(w, "spirit_scores.get", err, "spirit_score_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toSpiritScoreResponse(score))
}

func (h *Handlers) CreateSpiritScore(w http.ResponseWriter, r *http.Request) {
	var req spiritScoreRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	p := middleware.PrincipalFromContext(r.Context())
	score, err := h.Tournaments.CreateSpiritScore(r.Context(), p, tournamentdomain.SpiritScoreInput{
		MatchID:          req.MatchID,
		TargetTeamID:     req.TargetTeamID,
		RulesKnowledge:   req.RulesKnowledge,
		FoulsContact:     req.FoulsContact,
		FairMindedness:   req.FairMindedness,
		PositiveAttitude: req.PositiveAttitude,
		Communication:    req.Communication,
		Comments:         req.Comments,
	})
	if err != nil {
		h.serviceError(w, "spirit_scores.create", err, "user_id", p.ID, "match_id", req.MatchID)
		return
	}

	writeJSON(w, http.StatusCreated, toSpiritScoreResponse(score))
}

type updateSpiritScoreRequest struct {
	TargetTeamID     *string `json:"target_team_id" validate:"omitempty,uuid4"`
	RulesKnowledge   *int    `json:"rules_knowledge" validate:"omitempty,min=0,max=4"`
	FoulsContact     *int    `json:"fouls_contact" validate:"omitempty,min=0,max=4"`
	FairMindedness   *int    `json:"fair_mindedness" validate:"omitempty,min=0,max=4"`
	PositiveAttitude *int    `json:"positive_attitude" validate:"omitempty,min=0,max=4"`
	Communication    *int    `json:"communication" validate:"omitempty,min=0,max=4"`
	Comments         *string `json:"comments"`
}

func (h *Handlers) UpdateSpiritScore(w http.ResponseWriter, r *http.Request) {
	var req updateSpiritScoreRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	p := middleware.PrincipalFromContext(r.Context())
	id := chi.URLParam(r, "id")
	score, err := h.Tournaments.UpdateSpiritScore(r.Context(), p, tournamentdomain.UpdateSpiritScoreInput{
		ID:               id,
		TargetTeamID:     req.TargetTeamID,
		RulesKnowledge:   req.RulesKnowledge,
		FoulsContact:     req.FoulsContact,
		FairMindedness:   req.FairMindedness,
		PositiveAttitude: req.PositiveAttitude,
		Communication:    req.Communication,
		Comments:         req.Comments,
	})
	if err != nil {
		h.serviceError(w, "spirit_scores.update", err, "user_id", p.ID, "spirit_score_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toSpiritScoreResponse(score))
}

func (h *Handlers) DeleteSpiritScore(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Tournaments.DeleteSpiritScore(r.Context(), id); err != nil {
		h.serviceError(w, "spirit_scores.delete", err, "spirit_score_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
