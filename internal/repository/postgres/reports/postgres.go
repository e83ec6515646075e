package reports

import (
	"context"
	"time"

	"gorm.io/gorm"

	"visionx-go/internal/domain/authz"
	coachingdomain "visionx-go/internal/domain/coaching"
	reportsdomain "visionx-go/internal/domain/reports"
	userdomain "visionx-go/internal/domain/user"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListUpcomingAssigned(ctx context.Context, coachID string, limit int) ([]coachingdomain.Session, error) {
	var sessions []coachingdomain.Session
	err := r.db.WithContext(ctx).
		Where("assigned_coach_id = ? AND status IN ?", coachID,
			[]string{coachingdomain.SessionScheduled, coachingdomain.SessionLive}).
		Order("date asc, time asc").
		Limit(limit).
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *PostgresRepository) ListRecentCompleted(ctx context.Context, coachID string, limit int) ([]coachingdomain.Session, error) {
	var sessions []coachingdomain.Session
	err := r.db.WithContext(ctx).
		Where("assigned_coach_id = ? AND status = ?", coachID, coachingdomain.SessionCompleted).
		Order("date desc, time desc").
		Limit(limit).
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *PostgresRepository) CountCompletedBetween(ctx context.Context, coachID string, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&coachingdomain.Session{}).
		Where("assigned_coach_id = ? AND status = ? AND date >= ? AND date < ?",
			coachID, coachingdomain.SessionCompleted, from, to).
		Count(&count).Error
	return count, err
}

func (r *PostgresRepository) CountChildren(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&coachingdomain.ChildProfile{}).Count(&count).Error
	return count, err
}

func (r *PostgresRepository) CountAttendance(ctx context.Context) (reportsdomain.AttendanceCounts, error) {
	var counts reportsdomain.AttendanceCounts
	rows := []struct {
		Status string
		Count  int64
	}{}
	err := r.db.WithContext(ctx).
		Model(&coachingdomain.Attendance{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return counts, err
	}
	for _, row := range rows {
		counts.Total += row.Count
		switch row.Status {
		case coachingdomain.AttendancePresent:
			counts.Present = row.Count
		case coachingdomain.AttendanceAbsent:
			counts.Absent = row.Count
		}
	}
	return counts, nil
}

func (r *PostgresRepository) GenderCounts(ctx context.Context) ([]reportsdomain.GenderCount, error) {
	var rows []reportsdomain.GenderCount
	err := r.db.WithContext(ctx).
		Model(&coachingdomain.ChildProfile{}).
		Select("gender, count(*) as count").
		Group("gender").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *PostgresRepository) ListCoaches(ctx context.Context) ([]reportsdomain.CoachRef, error) {
	var coaches []reportsdomain.CoachRef
	err := r.db.WithContext(ctx).
		Model(&userdomain.User{}).
		Select("id, username").
		Where("role = ?", authz.RoleCoach).
		Order("username asc").
		Scan(&coaches).Error
	if err != nil {
		return nil, err
	}
	return coaches, nil
}

func (r *PostgresRepository) CountSessionsCreatedBy(ctx context.Context, coachID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&coachingdomain.Session{}).
		Where("created_by_id = ?", coachID).
		Count(&count).Error
	return count, err
}

func (r *PostgresRepository) CountHomeVisitsBy(ctx context.Context, coachID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&coachingdomain.HomeVisit{}).
		Where("coach_id = ?", coachID).
		Count(&count).Error
	return count, err
}

func (r *PostgresRepository) CountActivitiesBy(ctx context.Context, coachID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&coachingdomain.CoachActivity{}).
		Where("coach_id = ?", coachID).
		Count(&count).Error
	return count, err
}

func (r *PostgresRepository) SumActivityHoursBy(ctx context.Context, coachID string) (float64, error) {
	var total *float64
	err := r.db.WithContext(ctx).
		Model(&coachingdomain.CoachActivity{}).
		Select("sum(duration_hours)").
		Where("coach_id = ?", coachID).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
