package coaching

import (
	"context"
	"time"

	"visionx-go/internal/domain/authz"
)

// Repository persists the coaching entities. Every listing and lookup takes
// the caller's visibility scope plus the caller id and must apply that filter
// before any other predicate; ScopeNone never reaches the repository (the
// service short-circuits it).
type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error

	IsCoach(ctx context.Context, userID string) (bool, error)
	GetUserSummary(ctx context.Context, userID string) (*UserSummary, error)

	ListChildren(ctx context.Context, scope authz.Scope, callerID string) ([]ChildProfile, error)
	GetChild(ctx context.Context, scope authz.Scope, callerID, id string) (*ChildProfile, error)
	GetChildByUser(ctx context.Context, userID string) (*ChildProfile, error)
	CreateChild(ctx context.Context, child *ChildProfile) error
	SaveChild(ctx context.Context, child *ChildProfile) error
	DeleteChild(ctx context.Context, id string) error

	ListSessions(ctx context.Context, scope authz.Scope, callerID string) ([]Session, error)
	GetSession(ctx context.Context, scope authz.Scope, callerID, id string) (*Session, error)
	GetSessionByID(ctx context.Context, id string) (*Session, error)
	CreateSession(ctx context.Context, session *Session) error
	SaveSession(ctx context.Context, session *Session) error
	DeleteSession(ctx context.Context, id string) error
	ListSessionsCreatedBetween(ctx context.Context, creatorID string, from, to time.Time) ([]Session, error)
	ListSessionsAttendedByChild(ctx context.Context, childID string) ([]Session, error)

	ListAttendance(ctx context.Context, scope authz.Scope, callerID string) ([]Attendance, error)
	GetAttendance(ctx context.Context, scope authz.Scope, callerID, id string) (*Attendance, error)
	GetAttendanceByChildSession(ctx context.Context, childID, sessionID string) (*Attendance, error)
	ListAttendanceByChild(ctx context.Context, childID string) ([]Attendance, error)
	CreateAttendance(ctx context.Context, attendance *Attendance) error
	SaveAttendance(ctx context.Context, attendance *Attendance) error
	DeleteAttendance(ctx context.Context, id string) error

	ListHomeVisits(ctx context.Context, scope authz.Scope, callerID string) ([]HomeVisit, error)
	GetHomeVisit(ctx context.Context, scope authz.Scope, callerID, id string) (*HomeVisit, error)
	ListHomeVisitsByChild(ctx context.Context, childID string) ([]HomeVisit, error)
	CreateHomeVisit(ctx context.Context, visit *HomeVisit) error
	SaveHomeVisit(ctx context.Context, visit *HomeVisit) error
	DeleteHomeVisit(ctx context.Context, id string) error

	ListAssessments(ctx context.Context, scope authz.Scope, callerID string) ([]LSASAssessment, error)
	GetAssessment(ctx context.Context, scope authz.Scope, callerID, id string) (*LSASAssessment, error)
	ListAssessmentsByChild(ctx context.Context, childID string) ([]LSASAssessment, error)
	CreateAssessment(ctx context.Context, assessment *LSASAssessment) error
	SaveAssessment(ctx context.Context, assessment *LSASAssessment) error
	DeleteAssessment(ctx context.Context, id string) error

	ListActivities(ctx context.Context, scope authz.Scope, callerID string) ([]CoachActivity, error)
	GetActivity(ctx context.Context, scope authz.Scope, callerID, id string) (*CoachActivity, error)
	CreateActivity(ctx context.Context, activity *CoachActivity) error
	SaveActivity(ctx context.Context, activity *CoachActivity) error
	DeleteActivity(ctx context.Context, id string) error
}
