package coaching

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"visionx-go/internal/domain/authz"
	coachingdomain "visionx-go/internal/domain/coaching"
	userdomain "visionx-go/internal/domain/user"
)

const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(coachingdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) IsCoach(ctx context.Context, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&userdomain.User{}).
		Where("id = ? AND role = ?", userID, authz.RoleCoach).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) GetUserSummary(ctx context.Context, userID string) (*coachingdomain.UserSummary, error) {
	var account userdomain.User
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userdomain.ErrUserNotFound
		}
		return nil, err
	}
	return &coachingdomain.UserSummary{
		ID:        account.ID,
		Username:  account.Username,
		FirstName: account.FirstName,
		LastName:  account.LastName,
	}, nil
}

// --- Child profiles ---

// childScope applies role scoping before anything else touches the query.
func childScope(db *gorm.DB, scope authz.Scope, callerID string) *gorm.DB {
	if scope == authz.ScopeOwn {
		return db.Where("assigned_coach_id = ?", callerID)
	}
	return db
}

func (r *PostgresRepository) ListChildren(ctx context.Context, scope authz.Scope, callerID string) ([]coachingdomain.ChildProfile, error) {
	var children []coachingdomain.ChildProfile
	query := childScope(r.db.WithContext(ctx), scope, callerID)
	if err := query.Order("created_at desc").Find(&children).Error; err != nil {
		return nil, err
	}
	return children, nil
}

func (r *PostgresRepository) GetChild(ctx context.Context, scope authz.Scope, callerID, id string) (*coachingdomain.ChildProfile, error) {
	var child coachingdomain.ChildProfile
	query := childScope(r.db.WithContext(ctx), scope, callerID)
	if err := query.Where("id = ?", id).First(&child).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, coachingdomain.ErrChildNotFound
		}
		return nil, err
	}
	return &child, nil
}

func (r *PostgresRepository) GetChildByUser(ctx context.Context, userID string) (*coachingdomain.ChildProfile, error) {
	var child coachingdomain.ChildProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&child).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, coachingdomain.ErrChildNotFound
		}
		return nil, err
	}
	return &child, nil
}

func (r *PostgresRepository) CreateChild(ctx context.Context, child *coachingdomain.ChildProfile) error {
	return r.db.WithContext(ctx).Create(child).Error
}

func (r *PostgresRepository) SaveChild(ctx context.Context, child *coachingdomain.ChildProfile) error {
	return r.db.WithContext(ctx).Save(child).Error
}

func (r *PostgresRepository) DeleteChild(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&coachingdomain.ChildProfile{}, "id = ?", id).Error
}

// --- Sessions ---

func sessionScope(db *gorm.DB, scope authz.Scope, callerID string) *gorm.DB {
	if scope == authz.ScopeOwn {
		return db.Where("assigned_coach_id = ?", callerID)
	}
	return db
}

func (r *PostgresRepository) ListSessions(ctx context.Context, scope authz.Scope, callerID string) ([]coachingdomain.Session, error) {
	var sessions []coachingdomain.Session
	query := sessionScope(r.db.WithContext(ctx), scope, callerID)
	if err := query.Order("date desc, time desc").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *PostgresRepository) GetSession(ctx context.Context, scope authz.Scope, callerID, id string) (*coachingdomain.Session, error) {
	var session coachingdomain.Session
	query := sessionScope(r.db.WithContext(ctx), scope, callerID)
	if err := query.Where("id = ?", id).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, coachingdomain.ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *PostgresRepository) GetSessionByID(ctx context.Context, id string) (*coachingdomain.Session, error) {
	var session coachingdomain.Session
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, coachingdomain.ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *PostgresRepository) CreateSession(ctx context.Context, session *coachingdomain.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *PostgresRepository) SaveSession(ctx context.Context, session *coachingdomain.Session) error {
	return r.db.WithContext(ctx).Save(session).Error
}

func (r *PostgresRepository) DeleteSession(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&coachingdomain.Session{}, "id = ?", id).Error
}

func (r *PostgresRepository) ListSessionsCreatedBetween(ctx context.Context, creatorID string, from, to time.Time) ([]coachingdomain.Session, error) {
	var sessions []coachingdomain.Session
	err := r.db.WithContext(ctx).
		Where("created_by_id = ? AND date >= ? AND date <= ?", creatorID, from, to).
		Order("date asc, time asc").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *PostgresRepository) ListSessionsAttendedByChild(ctx context.Context, childID string) ([]coachingdomain.Session, error) {
	var sessions []coachingdomain.Session
	err := r.db.WithContext(ctx).
		Distinct("sessions.*").
		Table("sessions").
		Joins("join attendances on attendances.session_id = sessions.id").
		Where("attendances.child_id = ?", childID).
		Order("sessions.date desc, sessions.time desc").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// --- Attendance ---

// attendanceScope joins through sessions because attendance ownership is the
// session's assigned coach.
func attendanceScope(db *gorm.DB, scope authz.Scope, callerID string) *gorm.DB {
	query := db.Table("attendances").
		Joins("join sessions on sessions.id = attendances.session_id")
	if scope == authz.ScopeOwn {
		query = query.Where("sessions.assigned_coach_id = ?", callerID)
	}
	return query
}

func (r *PostgresRepository) ListAttendance(ctx context.Context, scope authz.Scope, callerID string) ([]coachingdomain.Attendance, error) {
	var records []coachingdomain.Attendance
	query := attendanceScope(r.db.WithContext(ctx), scope, callerID)
	err := query.
		Select("attendances.*").
		Order("sessions.date desc, sessions.time desc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PostgresRepository) GetAttendance(ctx context.Context, scope authz.Scope, callerID, id string) (*coachingdomain.Attendance, error) {
	var record coachingdomain.Attendance
	query := attendanceScope(r.db.WithContext(ctx), scope, callerID)
	err := query.
		Select("attendances.*").
		Where("attendances.id = ?", id).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, coachingdomain.ErrAttendanceNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *PostgresRepository) GetAttendanceByChildSession(ctx context.Context, childID, sessionID string) (*coachingdomain.Attendance, error) {
	var record coachingdomain.Attendance
	err := r.db.WithContext(ctx).
		Where("child_id = ? AND session_id = ?", childID, sessionID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, coachingdomain.ErrAttendanceNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *PostgresRepository) ListAttendanceByChild(ctx context.Context, childID string) ([]coachingdomain.Attendance, error) {
	var records []coachingdomain.Attendance
	err := r.db.WithContext(ctx).
		Where("child_id = ?", childID).
		Order("created_at desc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PostgresRepository) CreateAttendance(ctx context.Context, attendance *coachingdomain.Attendance) error {
	err := r.db.WithContext(ctx).Create(attendance).Error
	if isUniqueViolation(err) {
		return coachingdomain.ErrDuplicateAttendance
	}
	return err
}

func (r *PostgresRepository) SaveAttendance(ctx context.Context, attendance *coachingdomain.Attendance) error {
	return r.db.WithContext(ctx).Save(attendance).Error
}

func (r *PostgresRepository) DeleteAttendance(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&coachingdomain.Attendance{}, "id = ?", id).Error
}

// --- Home visits ---

func homeVisitScope(db *gorm.DB, scope authz.Scope, callerID string) *gorm.DB {
	if scope == authz.ScopeOwn {
		return db.Where("coach_id = ?", callerID)
	}
	return db
}

func (r *PostgresRepository) ListHomeVisits(ctx context.Context, scope authz.Scope, callerID string) ([]coachingdomain.HomeVisit, error) {
	var visits []coachingdomain.HomeVisit
	query := homeVisitScope(r.db.WithContext(ctx), scope, callerID)
	if err := query.Order("date desc").Find(&visits).Error; err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *PostgresRepository) GetHomeVisit(ctx context.Context, scope authz.Scope, callerID, id string) (*coachingdomain.HomeVisit, error) {
	var visit coachingdomain.HomeVisit
	query := homeVisitScope(r.db.WithContext(ctx), scope, callerID)
	if err := query.Where("id = ?", id).First(&visit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, coachingdomain.ErrHomeVisitNotFound
		}
		return nil, err
	}
	return &visit, nil
}

func (r *PostgresRepository) ListHomeVisitsByChild(ctx context.Context, childID string) ([]coachingdomain.HomeVisit, error) {
	var visits []coachingdomain.HomeVisit
	err := r.db.WithContext(ctx).
		Where("child_id = ?", childID).
		Order("date desc").
		Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *PostgresRepository) CreateHomeVisit(ctx context.Context, visit *coachingdomain.HomeVisit) error {
	return r.db.WithContext(ctx).Create(visit).Error
}

func (r *PostgresRepository) SaveHomeVisit(ctx context.Context, visit *coachingdomain.HomeVisit) error {
	return r.db.WithContext(ctx).Save(visit).Error
}

func (r *PostgresRepository) DeleteHomeVisit(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&coachingdomain.HomeVisit{}, "id = ?", id).Error
}

// --- LSAS assessments ---

// assessmentScope joins through child profiles because assessment ownership
// is the child's assigned coach.
func assessmentScope(db *gorm.DB, scope authz.Scope, callerID string) *gorm.DB {
	query := db.Table("lsas_assessments").
		Joins("join child_profiles on child_profiles.id = lsas_assessments.child_id")
	if scope == authz.ScopeOwn {
		query = query.Where("child_profiles.assigned_coach_id = ?", callerID)
	}
	return query
}

func (r *PostgresRepository) ListAssessments(ctx context.Context, scope authz.Scope, callerID string) ([]coachingdomain.LSASAssessment, error) {
	var assessments []coachingdomain.LSASAssessment
	query := assessmentScope(r.db.WithContext(ctx), scope, callerID)
	err := query.
		Select("lsas_assessments.*").
		Order("lsas_assessments.date desc").
		Find(&assessments).Error
	if err != nil {
		return nil, err
	}
	return assessments, nil
}

func (r *PostgresRepository) GetAssessment(ctx context.Context, scope authz.Scope, callerID, id string) (*coachingdomain.LSASAssessment, error) {
	var assessment coachingdomain.LSASAssessment
	query := assessmentScope(r.db.WithContext(ctx), scope, callerID)
	err := query.
		Select("lsas_assessments.*").
		Where("lsas_assessments.id = ?", id).
		First(&assessment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, coachingdomain.ErrAssessmentNotFound
		}
		return nil, err
	}
	return &assessment, nil
}

func (r *PostgresRepository) ListAssessmentsByChild(ctx context.Context, childID string) ([]coachingdomain.LSASAssessment, error) {
	var assessments []coachingdomain.LSASAssessment
	err := r.db.WithContext(ctx).
		Where("child_id = ?", childID).
		Order("date desc").
		Find(&assessments).Error
	if err != nil {
		return nil, err
	}
	return assessments, nil
}

func (r *PostgresRepository) CreateAssessment(ctx context.Context, assessment *coachingdomain.LSASAssessment) error {
	return r.db.WithContext(ctx).Create(assessment).Error
}

func (r *PostgresRepository) SaveAssessment(ctx context.Context, assessment *coachingdomain.LSASAssessment) error {
	return r.db.WithContext(ctx).Save(assessment).Error
}

func (r *PostgresRepository) DeleteAssessment(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&coachingdomain.LSASAssessment{}, "id = ?", id).Error
}

// --- Coach activities ---

func activityScope(db *gorm.DB, scope authz.Scope, callerID string) *gorm.DB {
	if scope == authz.ScopeOwn {
		return db.Where("coach_id = ?", callerID)
	}
	return db
}

func (r *PostgresRepository) ListActivities(ctx context.Context, scope authz.Scope, callerID string) ([]coachingdomain.CoachActivity, error) {
	var activities []coachingdomain.CoachActivity
	query := activityScope(r.db.WithContext(ctx), scope, callerID)
	if err := query.Order("date desc").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *PostgresRepository) GetActivity(ctx context.Context, scope authz.Scope, callerID, id string) (*coachingdomain.CoachActivity, error) {
	var activity coachingdomain.CoachActivity
	query := activityScope(r.db.WithContext(ctx), scope, callerID)
	if err := query.Where("id = ?", id).First(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, coachingdomain.ErrActivityNotFound
		}
		return nil, err
	}
	return &activity, nil
}

func (r *PostgresRepository) CreateActivity(ctx context.Context, activity *coachingdomain.CoachActivity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *PostgresRepository) SaveActivity(ctx context.Context, activity *coachingdomain.CoachActivity) error {
	return r.db.WithContext(ctx).Save(activity).Error
}

func (r *PostgresRepository) DeleteActivity(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&coachingdomain.CoachActivity{}, "id = ?", id).Error
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
