package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	coachingdomain "visionx-go/internal/domain/coaching"
	"visionx-go/internal/transport/httpserver/middleware"
)

type createSessionRequest struct {
	Date            string  `json:"date" validate:"required"`
	Time            string  `json:"time" validate:"required,len=5"`
	Location        string  `json:"location" validate:"required,max=200"`
	Status          string  `json:"status" validate:"omitempty,oneof=SCHEDULED LIVE COMPLETED"`
	AssignedCoachID *string `json:"assigned_coach_id" validate:"omitempty,uuid4"`
}

type updateSessionRequest struct {
	Date            *string `json:"date"`
	Time            *string `json:"time" validate:"omitempty,len=5"`
	Location        *string `json:"location" validate:"omitempty,max=200"`
	Status          *string `json:"status" validate:"omitempty,oneof=SCHEDULED LIVE COMPLETED"`
	AssignedCoachID *string `json:"assigned_coach_id" validate:"omitempty,uuid4"`
}

type sessionResponse struct {
	ID              string    `json:"id"`
	Status          string    `json:"status"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	Location        string    `json:"location"`
	CreatedByID     string    `json:"created_by_id"`
	AssignedCoachID *string   `json:"assigned_coach_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toSessionResponse(session *coachingdomain.Session) sessionResponse {
	return sessionResponse{
		ID:              session.ID,
		Status:          session.Status,
		Date:            formatDate(session.Date),
		Time:            session.Time,
		Location:        session.Location,
		CreatedByID:     session.CreatedByID,
		AssignedCoachID: session.AssignedCoachID,
		CreatedAt:       session.CreatedAt,
		UpdatedAt:       session.UpdatedAt,
	}
}

func toSessionResponses(sessions []coachingdomain.Session) []sessionResponse {
	items := make([]sessionResponse, 0, len(sessions))
	for i := range sessions {
		items = append(items, toSessionResponse(&sessions[i]))
	}
	return items
}

func (h *Handlers) ListSessions(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())

	sessions, err := h.Coaching.ListSessions(r.Context(), p)
	if err != nil {
		h.serviceError(w, "sessions.list", err, "user_id", p.ID)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponses(sessions))
}

func (h *Handlers) GetSession(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())
	id := chi.URLParam(r, "id")

	session, err := h.Coaching.GetSession(r.Context(), p, id)
	if err != nil {
		h.serviceError(w, "sessions.get", err, "user_id", p.ID, "session_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

func (h *Handlers) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	date, err := parseDateRequired(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "date must be YYYY-MM-DD")
		return
	}

	p := middleware.PrincipalFromContext(r.Context())
	session, err := h.Coaching.CreateSession(r.Context(), p, coachingdomain.CreateSessionInput{
		Date:            date,
		Time:            req.Time,
		Location:        req.Location,
		Status:          req.Status,
		AssignedCoachID: req.AssignedCoachID,
	})
	if err != nil {
		h.serviceError(w, "sessions.create", err, "user_id", p.ID)
		return
	}

	writeJSON(w, http.StatusCreated, toSessionResponse(session))
}

func (h *Handlers) UpdateSession(w http.ResponseWriter, r *http.Request) {
	var req updateSessionRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	date, err := parseDateParam(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "date must be YYYY-MM-DD")
		return
	}

	p := middleware.PrincipalFromContext(r.Context())
	id := chi.URLParam(r, "id")
	session, err := h.Coaching.UpdateSession(r.Context(), p, coachingdomain.UpdateSessionInput{
		ID:              id,
		Date:            date,
		Time:            req.Time,
		Location:        req.Location,
		Status:          req.Status,
		AssignedCoachID: req.AssignedCoachID,
	})
	if err != nil {
		h.serviceError(w, "sessions.update", err, "user_id", p.ID, "session_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

func (h *Handlers) DeleteSession(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.Coaching.DeleteSession(r.Context(), p, id); err != nil {
		h.serviceError(w, "sessions.delete", err, "user_id", p.ID, "session_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListUpcomingSessions(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())

	sessions, err := h.Coaching.ListUpcomingSessions(r.Context(), p)
	if err != nil {
		h.serviceError(w, "sessions.upcoming", err, "user_id", p.ID)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponses(sessions))
}
