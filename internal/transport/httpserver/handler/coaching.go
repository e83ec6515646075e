package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	coachingdomain "visionx-go/internal/domain/coaching"
	"visionx-go/internal/transport/httpserver/middleware"
)

// --- Home visits ---

type createHomeVisitRequest struct {
	ChildID string  `json:"child_id" validate:"required,uuid4"`
	Date    string  `json:"date" validate:"required"`
	Notes   *string `json:"notes"`
}

type updateHomeVisitRequest struct {
	Date  *string `json:"date"`
	Notes *string `json:"notes"`
}

type homeVisitResponse struct {
	ID        string    `json:"id"`
	ChildID   string    `json:"child_id"`
	CoachID   string    `json:"coach_id"`
	Date      string    `json:"date"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toHomeVisitResponse(visit *coachingdomain.HomeVisit) homeVisitResponse {
	return homeVisitResponse{
		ID:        visit.ID,
		ChildID:   visit.ChildID,
		CoachID:   visit.CoachID,
		Date:      formatDate(visit.Date),
		Notes:     visit.Notes,
		CreatedAt: visit.CreatedAt,
		UpdatedAt: visit.UpdatedAt,
	}
}

func toHomeVisitResponses(visits []coachingdomain.HomeVisit) []homeVisitResponse {
	items := make([]homeVisitResponse, 0, len(visits))
	for i := range visits {
		items = append(items, toHomeVisitResponse(&visits[i]))
	}
	return items
}

func (h *Handlers) ListHomeVisits(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())

	visits, err := h.Coaching.ListHomeVisits(r.Context(), p)
	if err != nil {
		h.serviceError(w, "home_visits.list", err, "user_id", p.ID)
		return
	}

	writeJSON(w, http.StatusOK, toHomeVisitResponses(visits))
}

func (h *Handlers) GetHomeVisit(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())
	id := chi.URLParam(r, "id")

	visit, err := h.Coaching.GetHomeVisit(r.Context(), p, id)
	if err != nil {
		h.serviceError(w, "home_visits.get", err, "user_id", p.ID, "visit_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toHomeVisitResponse(visit))
}

func (h *Handlers) CreateHomeVisit(w http.ResponseWriter, r *http.Request) {
	var req createHomeVisitRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	date, err := parseDateRequired(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "date must be YYYY-MM-DD")
		return
	}

	p := middleware.PrincipalFromContext(r.Context())
	visit, err := h.Coaching.CreateHomeVisit(r.Context(), p, coachingdomain.CreateHomeVisitInput{
		ChildID: req.ChildID,
		Date:    date,
		Notes:   req.Notes,
	})
	if err != nil {
		h.serviceError(w, "home_visits.create", err, "user_id", p.ID)
		return
	}

	writeJSON(w, http.StatusCreated, toHomeVisitResponse(visit))
}

func (h *Handlers) UpdateHomeVisit(w http.ResponseWriter, r *http.Request) {
	var req updateHomeVisitRequest
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
	visit, err := h.Coaching.UpdateHomeVisit(r.Context(), p, coachingdomain.UpdateHomeVisitInput{
		ID:    id,
		Date:  date,
		Notes: req.Notes,
	})
	if err != nil {
		h.serviceError(w, "home_visits.update", err, "user_id", p.ID, "visit_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toHomeVisitResponse(visit))
}

func (h *Handlers) DeleteHomeVisit(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.Coaching.DeleteHomeVisit(r.Context(), p, id); err != nil {
		h.serviceError(w, "home_visits.delete", err, "user_id", p.ID, "visit_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- LSAS assessments ---

type createAssessmentRequest struct {
	ChildID string  `json:"child_id" validate:"required,uuid4"`
	Date    string  `json:"date" validate:"required"`
	Score   int     `json:"score" validate:"min=0"`
	Remarks *string `json:"remarks"`
}

type updateAssessmentRequest struct {
	Date    *string `json:"date"`
	Score   *int    `json:"score" validate:"omitempty,min=0"`
	Remarks *string `json:"remarks"`
}

type assessmentResponse struct {
	ID        string    `json:"id"`
	ChildID   string    `json:"child_id"`
	Date      string    `json:"date"`
	Score     int       `json:"score"`
	Remarks   *string   `json:"remarks"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toAssessmentResponse(assessment *coachingdomain.LSASAssessment) assessmentResponse {
	return assessmentResponse{
		ID:        assessment.ID,
		ChildID:   assessment.ChildID,
		Date:      formatDate(assessment.Date),
		Score:     assessment.Score,
		Remarks:   assessment.Remarks,
		CreatedAt: assessment.CreatedAt,
		UpdatedAt: assessment.UpdatedAt,
	}
}

func toAssessmentResponses(assessments []coachingdomain.LSASAssessment) []assessmentResponse {
	items := make([]assessmentResponse, 0, len(assessments))
	for i := range assessments {
		items = append(items, toAssessmentResponse(&assessments[i]))
	}
	return items
}

func (h *Handlers) ListAssessments(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())

	assessments, err := h.Coaching.ListAssessments(r.Context(), p)
	if err != nil {
		h.serviceError(w, "assessments.list", err, "user_id", p.ID)
		return
	}

	writeJSON(w, http.StatusOK, toAssessmentResponses(assessments))
}

func (h *Handlers) GetAssessment(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())
	id := chi.URLParam(r, "id")

	assessment, err := h.Coaching.GetAssessment(r.Context(), p, id)
	if err != nil {
		h.serviceError(w, "assessments.get", err, "user_id", p.ID, "assessment_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toAssessmentResponse(assessment))
}

func (h *Handlers) CreateAssessment(w http.ResponseWriter, r *http.Request) {
	var req createAssessmentRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	date, err := parseDateRequired(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "date must be YYYY-MM-DD")
		return
	}

	p := middleware.PrincipalFromContext(r.Context())
	assessment, err := h.Coaching.CreateAssessment(r.Context(), p, coachingdomain.CreateAssessmentInput{
		ChildID: req.ChildID,
		Date:    date,
		Score:   req.Score,
		Remarks: req.Remarks,
	})
	if err != nil {
		h.serviceError(w, "assessments.create", err, "user_id", p.ID)
		return
	}

	writeJSON(w, http.StatusCreated, toAssessmentResponse(assessment))
}

func (h *Handlers) UpdateAssessment(w http.ResponseWriter, r *http.Request) {
	var req updateAssessmentRequest
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
	assessment, err := h.Coaching.UpdateAssessment(r.Context(), p, coachingdomain.UpdateAssessmentInput{
		ID:      id,
		Date:    date,
		Score:   req.Score,
		Remarks: req.Remarks,
	})
	if err != nil {
		h.serviceError(w, "assessments.update", err, "user_id", p.ID, "assessment_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toAssessmentResponse(assessment))
}

func (h *Handlers) DeleteAssessment(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.Coaching.DeleteAssessment(r.Context(), p, id); err != nil {
		h.serviceError(w, "assessments.delete", err, "user_id", p.ID, "assessment_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) AssessmentsByChild(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())
	childID := chi.URLParam(r, "id")

	assessments, err := h.Coaching.AssessmentsByChild(r.Context(), p, childID)
	if err != nil {
		h.serviceError(w, "assessments.by_child", err, "user_id", p.ID, "child_id", childID)
		return
	}

	writeJSON(w, http.StatusOK, toAssessmentResponses(assessments))
}

// --- Coach activities ---

type createActivityRequest struct {
	ActivityType  string  `json:"activity_type" validate:"required"`
	DurationHours float64 `json:"duration_hours" validate:"min=0"`
	Date          string  `json:"date" validate:"required"`
}

type updateActivityRequest struct {
	ActivityType  *string  `json:"activity_type"`
	DurationHours *float64 `json:"duration_hours" validate:"omitempty,min=0"`
	Date          *string  `json:"date"`
}

type activityResponse struct {
	ID            string    `json:"id"`
	CoachID       string    `json:"coach_id"`
	ActivityType  string    `json:"activity_type"`
	DurationHours float64   `json:"duration_hours"`
	Date          string    `json:"date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toActivityResponse(activity *coachingdomain.CoachActivity) activityResponse {
	return activityResponse{
		ID:            activity.ID,
		CoachID:       activity.CoachID,
		ActivityType:  activity.ActivityType,
		DurationHours: activity.DurationHours,
		Date:          formatDate(activity.Date),
		CreatedAt:     activity.CreatedAt,
		UpdatedAt:     activity.UpdatedAt,
	}
}

func (h *Handlers) ListActivities(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())

	activities, err := h.Coaching.ListActivities(r.Context(), p)
	if err != nil {
		h.serviceError(w, "activities.list", err, "user_id", p.ID)
		return
	}

	items := make([]activityResponse, 0, len(activities))
	for i := range activities {
		items = append(items, toActivityResponse(&activities[i]))
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) GetActivity(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())
	id := chi.URLParam(r, "id")

	activity, err := h.Coaching.GetActivity(r.Context(), p, id)
	if err != nil {
		h.serviceError(w, "activities.get", err, "user_id", p.ID, "activity_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toActivityResponse(activity))
}

func (h *Handlers) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req createActivityRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	date, err := parseDateRequired(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "date must be YYYY-MM-DD")
		return
	}

	p := middleware.PrincipalFromContext(r.Context())
	activity, err := h.Coaching.CreateActivity(r.Context(), p, coachingdomain.CreateActivityInput{
		ActivityType:  req.ActivityType,
		DurationHours: req.DurationHours,
		Date:          date,
	})
	if err != nil {
		h.serviceError(w, "activities.create", err, "user_id", p.ID)
		return
	}

	writeJSON(w, http.StatusCreated, toActivityResponse(activity))
}

func (h *Handlers) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	var req updateActivityRequest
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
	activity, err := h.Coaching.UpdateActivity(r.Context(), p, coachingdomain.UpdateActivityInput{
		ID:            id,
		ActivityType:  req.ActivityType,
		DurationHours: req.DurationHours,
		Date:          date,
	})
	if err != nil {
		h.serviceError(w, "activities.update", err, "user_id", p.ID, "activity_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toActivityResponse(activity))
}

func (h *Handlers) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.Coaching.DeleteActivity(r.Context(), p, id); err != nil {
		h.serviceError(w, "activities.delete", err, "user_id", p.ID, "activity_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- My coaching profile ---

type coachSummaryResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (h *Handlers) MyCoachingProfile(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())

	profile, err := h.Coaching.MyCoachingProfile(r.Context(), p)
	if err != nil {
		h.serviceError(w, "profile.me", err, "user_id", p.ID)
		return
	}

	var coach *coachSummaryResponse
	if profile.Coach != nil {
		coach = &coachSummaryResponse{
			ID:        profile.Coach.ID,
			Username:  profile.Coach.Username,
			FirstName: profile.Coach.FirstName,
			LastName:  profile.Coach.LastName,
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"coach":      coach,
		"sessions":   toSessionResponses(profile.Sessions),
		"attendance": toAttendanceResponses(profile.Attendance),
	})
}
