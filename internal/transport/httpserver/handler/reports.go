package handler

import (
	"net/http"

	reportsdomain "visionx-go/internal/domain/reports"
	"visionx-go/internal/transport/httpserver/middleware"
)

type dashboardResponse struct {
	UpcomingSessions  []sessionResponse `json:"upcoming_sessions"`
	PastSessions      []sessionResponse `json:"past_sessions"`
	SessionsThisMonth int64             `json:"sessions_this_month"`
}

func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())

	dashboard, err := h.Reports.Dashboard(r.Context(), p)
	if err != nil {
		h.serviceError(w, "reports.dashboard", err, "user_id", p.ID)
		return
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		UpcomingSessions:  toSessionResponses(dashboard.UpcomingSessions),
		PastSessions:      toSessionResponses(dashboard.PastSessions),
		SessionsThisMonth: dashboard.SessionsThisMonth,
	})
}

type participationResponse struct {
	TotalChildren          int64   `json:"total_children"`
	TotalAttendanceRecords int64   `json:"total_attendance_records"`
	PresentCount           int64   `json:"present_count"`
	AbsentCount            int64   `json:"absent_count"`
	ParticipationRate      float64 `json:"participation_rate"`
}

func (h *Handlers) ParticipationReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.Reports.Participation(r.Context())
	if err != nil {
		h.serviceError(w, "reports.participation", err)
		return
	}

	writeJSON(w, http.StatusOK, participationResponse{
		TotalChildren:          report.TotalChildren,
		TotalAttendanceRecords: report.TotalAttendanceRecords,
		PresentCount:           report.PresentCount,
		AbsentCount:            report.AbsentCount,
		ParticipationRate:      report.ParticipationRate,
	})
}

type genderDistributionResponse struct {
	Distribution map[string]int64 `json:"distribution"`
	Total        int64            `json:"total"`
}

func (h *Handlers) GenderDistribution(w http.ResponseWriter, r *http.Request) {
	report, err := h.Reports.GenderDistribution(r.Context())
	if err != nil {
		h.serviceError(w, "reports.gender", err)
		return
	}

	writeJSON(w, http.StatusOK, genderDistributionResponse{
		Distribution: report.Distribution,
		Total:        report.Total,
	})
}

type coachWorkloadResponse struct {
	CoachID         string  `json:"coach_id"`
	CoachName       string  `json:"coach_name"`
	SessionsCount   int64   `json:"sessions_count"`
	HomeVisitsCount int64   `json:"home_visits_count"`
	ActivitiesCount int64   `json:"activities_count"`
	TotalHours      float64 `json:"total_hours"`
}

func (h *Handlers) CoachWorkload(w http.ResponseWriter, r *http.Request) {
	workloads, err := h.Reports.CoachWorkload(r.Context())
	if err != nil {
		h.serviceError(w, "reports.workload", err)
		return
	}

	items := make([]coachWorkloadResponse, 0, len(workloads))
	for _, workload := range workloads {
		items = append(items, toCoachWorkloadResponse(workload))
	}
	writeJSON(w, http.StatusOK, items)
}

func toCoachWorkloadResponse(workload reportsdomain.CoachWorkload) coachWorkloadResponse {
	return coachWorkloadResponse{
		CoachID:         workload.CoachID,
		CoachName:       workload.CoachName,
		SessionsCount:   workload.SessionsCount,
		HomeVisitsCount: workload.HomeVisitsCount,
		ActivitiesCount: workload.ActivitiesCount,
		TotalHours:      workload.TotalHours,
	}
}
