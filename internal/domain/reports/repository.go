package reports

import (
	"context"
	"time"

	"visionx-go/internal/domain/coaching"
)

type AttendanceCounts struct {
	Total   int64
	Present int64
	Absent  int64
}

type Repository interface {
	ListUpcomingAssigned(ctx context.Context, coachID string, limit int) ([]coaching.Session, error)
	ListRecentCompleted(ctx context.Context, coachID string, limit int) ([]coaching.Session, error)
	CountCompletedBetween(ctx context.Context, coachID string, from, to time.Time) (int64, error)

	CountChildren(ctx context.Context) (int64, error)
	CountAttendance(ctx context.Context) (AttendanceCounts, error)
	GenderCounts(ctx context.Context) ([]GenderCount, error)

	ListCoaches(ctx context.Context) ([]CoachRef, error)
	CountSessionsCreatedBy(ctx context.Context, coachID string) (int64, error)
	CountHomeVisitsBy(ctx context.Context, coachID string) (int64, error)
	CountActivitiesBy(ctx context.Context, coachID string) (int64, error)
	SumActivityHoursBy(ctx context.Context, coachID string) (float64, error)
}
