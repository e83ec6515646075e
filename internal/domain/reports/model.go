package reports

import "visionx-go/internal/domain/coaching"

type Dashboard struct {
	UpcomingSessions  []coaching.Session
	PastSessions      []coaching.Session
	SessionsThisMonth int64
}

type ParticipationReport struct {
	TotalChildren          int64
	TotalAttendanceRecords int64
	PresentCount           int64
	AbsentCount            int64
	ParticipationRate      float64
}

type GenderDistribution struct {
	Distribution map[string]int64
	Total        int64
}

type GenderCount struct {
	Gender *string
	Count  int64
}

type CoachRef struct {
	ID       string
	Username string
}

type CoachWorkload struct {
	CoachID         string
	CoachName       string
	SessionsCount   int64
	HomeVisitsCount int64
	ActivitiesCount int64
	TotalHours      float64
}
