package reports

import (
	"context"
	"math"
	"time"

	"visionx-go/internal/domain/authz"
)

const dashboardSessionLimit = 10

const unknownGenderKey = "Unknown"

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Dashboard summarizes the calling coach's sessions: the next ten sessions
// still to run (SCHEDULED or LIVE, soonest first), the last ten COMPLETED
// ones, and how many assigned sessions completed this calendar month.
func (s *Service) Dashboard(ctx context.Context, p authz.Principal) (*Dashboard, error) {
	upcoming, err := s.repo.ListUpcomingAssigned(ctx, p.ID, dashboardSessionLimit)
	if err != nil {
		return nil, err
	}
	past, err := s.repo.ListRecentCompleted(ctx, p.ID, dashboardSessionLimit)
	if err != nil {
		return nil, err
	}

	now := s.now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	thisMonth, err := s.repo.CountCompletedBetween(ctx, p.ID, startOfMonth, startOfMonth.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		UpcomingSessions:  upcoming,
		PastSessions:      past,
		SessionsThisMonth: thisMonth,
	}, nil
}

// Participation reports global present/absent counts and the present ratio
// as a percentage rounded to two decimals; zero records means a zero rate.
func (s *Service) Participation(ctx context.Context) (*ParticipationReport, error) {
	children, err := s.repo.CountChildren(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.repo.CountAttendance(ctx)
	if err != nil {
		return nil, err
	}

	rate := 0.0
	if counts.Total > 0 {
		rate = round2(float64(counts.Present) / float64(counts.Total) * 100)
	}

	return &ParticipationReport{
		TotalChildren:          children,
		TotalAttendanceRecords: counts.Total,
		PresentCount:           counts.Present,
		AbsentCount:            counts.Absent,
		ParticipationRate:      rate,
	}, nil
}

// GenderDistribution buckets children by gender, with missing values under
// a literal "Unknown" key.
func (s *Service) GenderDistribution(ctx context.Context) (*GenderDistribution, error) {
	rows, err := s.repo.GenderCounts(ctx)
	if err != nil {
		return nil, err
	}

	distribution := make(map[string]int64, len(rows))
	var total int64
	for _, row := range rows {
		key := unknownGenderKey
		if row.Gender != nil && *row.Gender != "" {
			key = *row.Gender
		}
		distribution[key] += row.Count
		total += row.Count
	}

	return &GenderDistribution{Distribution: distribution, Total: total}, nil
}

// CoachWorkload tallies, per COACH-role account, the sessions they created,
// home visits conducted, activities logged and total activity hours.
func (s *Service) CoachWorkload(ctx context.Context) ([]CoachWorkload, error) {
	coaches, err := s.repo.ListCoaches(ctx)
	if err != nil {
		return nil, err
	}

	workload := make([]CoachWorkload, 0, len(coaches))
	for _, coach := range coaches {
		sessions, err := s.repo.CountSessionsCreatedBy(ctx, coach.ID)
		if err != nil {
			return nil, err
		}
		visits, err := s.repo.CountHomeVisitsBy(ctx, coach.ID)
		if err != nil {
			return nil, err
		}
		activities, err := s.repo.CountActivitiesBy(ctx, coach.ID)
		if err != nil {
			return nil, err
		}
		hours, err := s.repo.SumActivityHoursBy(ctx, coach.ID)
		if err != nil {
			return nil, err
		}

		workload = append(workload, CoachWorkload{
			CoachID:         coach.ID,
			CoachName:       coach.Username,
			SessionsCount:   sessions,
			HomeVisitsCount: visits,
			ActivitiesCount: activities,
			TotalHours:      hours,
		})
	}
	return workload, nil
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
