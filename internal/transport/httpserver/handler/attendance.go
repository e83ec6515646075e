package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	coachingdomain "visionx-go/internal/domain/coaching"
	"visionx-go/internal/transport/httpserver/middleware"
)

type markAttendanceRequest struct {
	Status string `json:"status" validate:"required,oneof=Present Absent"`
}

type sessionAttendanceMark struct {
	ChildID string `json:"child_id" validate:"required,uuid4"`
	Status  string `json:"status" validate:"omitempty,oneof=Present Absent"`
}

type markSessionAttendanceRequest struct {
	Marks []sessionAttendanceMark `json:"marks" validate:"required,min=1,dive"`
}

type attendanceResponse struct {
	ID        string    `json:"id"`
	ChildID   string    `json:"child_id"`
	SessionID string    `json:"session_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type attendanceMarkResultResponse struct {
	ChildID string `json:"child_id"`
	Status  string `json:"status"`
	Created bool   `json:"created"`
}

func toAttendanceResponse(record *coachingdomain.Attendance) attendanceResponse {
	return attendanceResponse{
		ID:        record.ID,
		ChildID:   record.ChildID,
		SessionID: record.SessionID,
		Status:    record.Status,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

func toAttendanceResponses(records []coachingdomain.Attendance) []attendanceResponse {
	items := make([]attendanceResponse, 0, len(records))
	for i := range records {
		items = append(items, toAttendanceResponse(&records[i]))
	}
	return items
}

func (h *Handlers) ListAttendance(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())

	records, err := h.Coaching.ListAttendance(r.Context(), p)
	if err != nil {
		h.serviceError(w, "attendance.list", err, "user_id", p.ID)
		return
	}

	writeJSON(w, http.StatusOK, toAttendanceResponses(records))
}

func (h *Handlers) GetAttendance(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())
	id := chi.URLParam(r, "id")

	record, err := h.Coaching.GetAttendance(r.Context(), p, id)
	if err != nil {
		h.serviceError(w, "attendance.get", err, "user_id", p.ID, "attendance_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toAttendanceResponse(record))
}

func (h *Handlers) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var req markAttendanceRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	p := middleware.PrincipalFromContext(r.Context())
	id := chi.URLParam(r, "id")
	record, err := h.Coaching.MarkAttendance(r.Context(), p, id, req.Status)
	if err != nil {
		h.serviceError(w, "attendance.mark", err, "user_id", p.ID, "attendance_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toAttendanceResponse(record))
}

func (h *Handlers) DeleteAttendance(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.Coaching.DeleteAttendance(r.Context(), p, id); err != nil {
		h.serviceError(w, "attendance.delete", err, "user_id", p.ID, "attendance_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MarkSessionAttendance records attendance for a whole session in one shot.
func (h *Handlers) MarkSessionAttendance(w http.ResponseWriter, r *http.Request) {
	var req markSessionAttendanceRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	marks := make([]coachingdomain.AttendanceMark, 0, len(req.Marks))
	for _, mark := range req.Marks {
		marks = append(marks, coachingdomain.AttendanceMark{
			ChildID: mark.ChildID,
			Status:  mark.Status,
		})
	}

	p := middleware.PrincipalFromContext(r.Context())
	sessionID := chi.URLParam(r, "id")
	results, err := h.Coaching.MarkSessionAttendance(r.Context(), p, sessionID, marks)
	if err != nil {
		h.serviceError(w, "attendance.mark_session", err, "user_id", p.ID, "session_id", sessionID)
		return
	}

	items := make([]attendanceMarkResultResponse, 0, len(results))
	for _, result := range results {
		items = append(items, attendanceMarkResultResponse{
			ChildID: result.ChildID,
			Status:  result.Status,
			Created: result.Created,
		})
	}
	writeJSON(w, http.StatusOK, items)
}
