package reports

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"visionx-go/internal/domain/authz"
	"visionx-go/internal/domain/coaching"
)

type fakeReportsRepo struct {
	sessions   []coaching.Session
	genders    []*string
	attendance []string
	coaches    []CoachRef
	visits     map[string]int64
	activities map[string]int64
	hours      map[string]float64
}

func newFakeReportsRepo() *fakeReportsRepo {
	return &fakeReportsRepo{
		visits:     make(map[string]int64),
		activities: make(map[string]int64),
		hours:      make(map[string]float64),
	}
}

func (r *fakeReportsRepo) ListUpcomingAssigned(ctx context.Context, coachID string, limit int) ([]coaching.Session, error) {
	result := make([]coaching.Session, 0)
	for _, session := range r.sessions {
		if session.AssignedCoachID == nil || *session.AssignedCoachID != coachID {
			continue
		}
		if session.Status != coaching.SessionScheduled && session.Status != coaching.SessionLive {
			continue
		}
		result = append(result, session)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *fakeReportsRepo) ListRecentCompleted(ctx context.Context, coachID string, limit int) ([]coaching.Session, error) {
	result := make([]coaching.Session, 0)
	for _, session := range r.sessions {
		if session.AssignedCoachID == nil || *session.AssignedCoachID != coachID {
			continue
		}
		if session.Status != coaching.SessionCompleted {
			continue
		}
		result = append(result, session)
	}
	sort.Slice(result, func(i, j int) bool { return result[j].Date.Before(result[i].Date) })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *fakeReportsRepo) CountCompletedBetween(ctx context.Context, coachID string, from, to time.Time) (int64, error) {
	var count int64
	for _, session := range r.sessions {
		if session.AssignedCoachID == nil || *session.AssignedCoachID != coachID {
			continue
		}
		if session.Status != coaching.SessionCompleted {
			continue
		}
		if session.Date.Before(from) || !session.Date.Before(to) {
			continue
		}
		count++
	}
	return count, nil
}

func (r *fakeReportsRepo) CountChildren(ctx context.Context) (int64, error) {
	return int64(len(r.genders)), nil
}

func (r *fakeReportsRepo) CountAttendance(ctx context.Context) (AttendanceCounts, error) {
	counts := AttendanceCounts{}
	for _, status := range r.attendance {
		counts.Total++
		switch status {
		case coaching.AttendancePresent:
			counts.Present++
		case coaching.AttendanceAbsent:
			counts.Absent++
		}
	}
	return counts, nil
}

func (r *fakeReportsRepo) GenderCounts(ctx context.Context) ([]GenderCount, error) {
	grouped := make(map[string]*GenderCount)
	result := make([]GenderCount, 0)
	for _, gender := range r.genders {
		key := ""
		if gender != nil {
			key = *gender
		}
		if row, ok := grouped[key]; ok {
			row.Count++
			continue
		}
		grouped[key] = &GenderCount{Gender: gender, Count: 1}
	}
	for _, row := range grouped {
		result = append(result, *row)
	}
	return result, nil
}

func (r *fakeReportsRepo) ListCoaches(ctx context.Context) ([]CoachRef, error) {
	return r.coaches, nil
}

func (r *fakeReportsRepo) CountSessionsCreatedBy(ctx context.Context, coachID string) (int64, error) {
	var count int64
	for _, session := range r.sessions {
		if session.CreatedByID == coachID {
			count++
		}
	}
	return count, nil
}

func (r *fakeReportsRepo) CountHomeVisitsBy(ctx context.Context, coachID string) (int64, error) {
	return r.visits[coachID], nil
}

func (r *fakeReportsRepo) CountActivitiesBy(ctx context.Context, coachID string) (int64, error) {
	return r.activities[coachID], nil
}

func (r *fakeReportsRepo) SumActivityHoursBy(ctx context.Context, coachID string) (float64, error) {
	return r.hours[coachID], nil
}

func strPtr(value string) *string { return &value }

func TestDashboard(t *testing.T) {
	repo := newFakeReportsRepo()
	now := time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)
	coachID := "coach-1"

	// 12 upcoming sessions; only the soonest 10 should surface
	for i := 0; i < 12; i++ {
		repo.sessions = append(repo.sessions, coaching.Session{
			ID:              fmt.Sprintf("up-%d", i),
			AssignedCoachID: &coachID,
			Status:          coaching.SessionScheduled,
			Date:            now.AddDate(0, 0, i+1),
		})
	}
	repo.sessions = append(repo.sessions,
		coaching.Session{ID: "done-july", AssignedCoachID: &coachID, Status: coaching.SessionCompleted,
			Date: time.Date(2025, time.July, 2, 0, 0, 0, 0, time.UTC)},
		coaching.Session{ID: "done-june", AssignedCoachID: &coachID, Status: coaching.SessionCompleted,
			Date: time.Date(2025, time.June, 28, 0, 0, 0, 0, time.UTC)},
		coaching.Session{ID: "other-coach", AssignedCoachID: strPtr("coach-2"), Status: coaching.SessionScheduled,
			Date: now.AddDate(0, 0, 1)},
	)

	svc := NewService(repo)
	svc.now = func() time.Time { return now }

	p := authz.Principal{ID: coachID, Username: "coach", Role: authz.RoleCoach}
	dashboard, err := svc.Dashboard(context.Background(), p)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(dashboard.UpcomingSessions) != 10 {
		t.Fatalf("expected 10 upcoming sessions, got %d", len(dashboard.UpcomingSessions))
	}
	if dashboard.UpcomingSessions[0].ID != "up-0" {
		t.Fatalf("expected soonest session first, got %q", dashboard.UpcomingSessions[0].ID)
	}
	if len(dashboard.PastSessions) != 2 {
		t.Fatalf("expected 2 past sessions, got %d", len(dashboard.PastSessions))
	}
	if dashboard.SessionsThisMonth != 1 {
		t.Fatalf("expected 1 session completed this month, got %d", dashboard.SessionsThisMonth)
	}
}

func TestParticipationRate(t *testing.T) {
	repo := newFakeReportsRepo()
	svc := NewService(repo)

	report, err := svc.Participation(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if report.ParticipationRate != 0 {
		t.Fatalf("expected zero rate with no records, got %v", report.ParticipationRate)
	}

	repo.genders = []*string{strPtr("M"), strPtr("F")}
	repo.attendance = []string{
		coaching.AttendancePresent,
		coaching.AttendancePresent,
		coaching.AttendancePresent,
		coaching.AttendanceAbsent,
	}

	report, err = svc.Participation(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if report.TotalChildren != 2 {
		t.Fatalf("expected 2 children, got %d", report.TotalChildren)
	}
	if report.TotalAttendanceRecords != 4 || report.PresentCount != 3 || report.AbsentCount != 1 {
		t.Fatalf("unexpected counts: %+v", report)
	}
	if report.ParticipationRate != 75.00 {
		t.Fatalf("expected rate 75.00, got %v", report.ParticipationRate)
	}
}

func TestGenderDistribution(t *testing.T) {
	repo := newFakeReportsRepo()
	repo.genders = []*string{strPtr("M"), strPtr("F"), nil, strPtr("M")}

	svc := NewService(repo)
	distribution, err := svc.GenderDistribution(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if distribution.Total != 4 {
		t.Fatalf("expected total 4, got %d", distribution.Total)
	}
	want := map[string]int64{"M": 2, "F": 1, "Unknown": 1}
	for key, count := range want {
		if distribution.Distribution[key] != count {
			t.Fatalf("expected %s=%d, got %d", key, count, distribution.Distribution[key])
		}
	}
}

func TestCoachWorkload(t *testing.T) {
	repo := newFakeReportsRepo()
	repo.coaches = []CoachRef{
		{ID: "coach-1", Username: "anna"},
		{ID: "coach-2", Username: "boris"},
	}
	repo.sessions = []coaching.Session{
		{ID: "s-1", CreatedByID: "coach-1"},
		{ID: "s-2", CreatedByID: "coach-1"},
	}
	repo.visits["coach-1"] = 3
	repo.activities["coach-1"] = 2
	repo.hours["coach-1"] = 4.5

	svc := NewService(repo)
	workload, err := svc.CoachWorkload(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(workload) != 2 {
		t.Fatalf("expected 2 coaches, got %d", len(workload))
	}
	first := workload[0]
	if first.CoachName != "anna" || first.SessionsCount != 2 || first.HomeVisitsCount != 3 ||
		first.ActivitiesCount != 2 || first.TotalHours != 4.5 {
		t.Fatalf("unexpected workload for anna: %+v", first)
	}
	second := workload[1]
	if second.CoachName != "boris" || second.SessionsCount != 0 || second.TotalHours != 0 {
		t.Fatalf("unexpected workload for boris: %+v", second)
	}
}
