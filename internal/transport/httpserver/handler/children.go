package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	coachingdomain "visionx-go/internal/domain/coaching"
	"visionx-go/internal/transport/httpserver/middleware"
)

type createChildRequest struct {
	UserID          *string `json:"user_id" validate:"omitempty,uuid4"`
	DateOfBirth     *string `json:"date_of_birth"`
	Gender          *string `json:"gender"`
	AssignedCoachID *string `json:"assigned_coach_id" validate:"omitempty,uuid4"`
}

type updateChildRequest struct {
	DateOfBirth     *string `json:"date_of_birth"`
	Gender          *string `json:"gender"`
	AssignedCoachID *string `json:"assigned_coach_id" validate:"omitempty,uuid4"`
}

type childResponse struct {
	ID              string    `json:"id"`
	UserID          *string   `json:"user_id"`
	DateOfBirth     *string   `json:"date_of_birth"`
	Gender          *string   `json:"gender"`
	AssignedCoachID *string   `json:"assigned_coach_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toChildResponse(child *coachingdomain.ChildProfile) childResponse {
	resp := childResponse{
		ID:              child.ID,
		UserID:          child.UserID,
		Gender:          child.Gender,
		AssignedCoachID: child.AssignedCoachID,
		CreatedAt:       child.CreatedAt,
		UpdatedAt:       child.UpdatedAt,
	}
	if child.DateOfBirth != nil {
		dob := formatDate(*child.DateOfBirth)
		resp.DateOfBirth = &dob
	}
	return resp
}

func toChildResponses(children []coachingdomain.ChildProfile) []childResponse {
	items := make([]childResponse, 0, len(children))
	for i := range children {
		items = append(items, toChildResponse(&children[i]))
	}
	return items
}

func (h *Handlers) ListChildren(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())

	children, err := h.Coaching.ListChildren(r.Context(), p)
	if err != nil {
		h.serviceError(w, "children.list", err, "user_id", p.ID)
		return
	}

	writeJSON(w, http.StatusOK, toChildResponses(children))
}

func (h *Handlers) GetChild(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())
	id := chi.URLParam(r, "id")

	child, err := h.Coaching.GetChild(r.Context(), p, id)
	if err != nil {
		h.serviceError(w, "children.get", err, "user_id", p.ID, "child_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toChildResponse(child))
}

func (h *Handlers) CreateChild(w http.ResponseWriter, r *http.Request) {
	var req createChildRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	dob, err := parseDateParam(req.DateOfBirth)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "date_of_birth must be YYYY-MM-DD")
		return
	}

	p := middleware.PrincipalFromContext(r.Context())
	child, err := h.Coaching.CreateChild(r.Context(), p, coachingdomain.CreateChildInput{
		UserID:          req.UserID,
		DateOfBirth:     dob,
		Gender:          req.Gender,
		AssignedCoachID: req.AssignedCoachID,
	})
	if err != nil {
		h.serviceError(w, "children.create", err, "user_id", p.ID)
		return
	}

	writeJSON(w, http.StatusCreated, toChildResponse(child))
}

func (h *Handlers) UpdateChild(w http.ResponseWriter, r *http.Request) {
	var req updateChildRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	dob, err := parseDateParam(req.DateOfBirth)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "date_of_birth must be YYYY-MM-DD")
		return
	}

	p := middleware.PrincipalFromContext(r.Context())
	id := chi.URLParam(r, "id")
	child, err := h.Coaching.UpdateChild(r.Context(), p, coachingdomain.UpdateChildInput{
		ID:              id,
		DateOfBirth:     dob,
		Gender:          req.Gender,
		AssignedCoachID: req.AssignedCoachID,
	})
	if err != nil {
		h.serviceError(w, "children.update", err, "user_id", p.ID, "child_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toChildResponse(child))
}

func (h *Handlers) DeleteChild(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.Coaching.DeleteChild(r.Context(), p, id); err != nil {
		h.serviceError(w, "children.delete", err, "user_id", p.ID, "child_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ChildUnifiedHistory(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())
	id := chi.URLParam(r, "id")

	history, err := h.Coaching.UnifiedHistory(r.Context(), p, id)
	if err != nil {
		h.serviceError(w, "children.unified_history", err, "user_id", p.ID, "child_id", id)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"child":       toChildResponse(&history.Child),
		"sessions":    toSessionResponses(history.Sessions),
		"home_visits": toHomeVisitResponses(history.HomeVisits),
		"assessments": toAssessmentResponses(history.Assessments),
	})
}
