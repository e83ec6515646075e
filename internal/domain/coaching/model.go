package coaching

import (
	"time"

	"visionx-go/internal/domain/user"
)

const (
	SessionScheduled = "SCHEDULED"
	SessionLive      = "LIVE"
	SessionCompleted = "COMPLETED"
)

const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
)

const (
	ActivityTravel         = "Travel"
	ActivityCommunityVisit = "Community Visit"
	ActivityPlanning       = "Session Planning"
	ActivityTraining       = "Training"
	ActivityAdministrative = "Administrative"
	ActivityOther          = "Other"
)

func ValidActivityType(value string) bool {
	switch value {
	case ActivityTravel, ActivityCommunityVisit, ActivityPlanning,
		ActivityTraining, ActivityAdministrative, ActivityOther:
		return true
	}
	return false
}

type ChildProfile struct {
	ID                   string     `gorm:"type:uuid;primaryKey"`
	UserID               *string    `gorm:"type:uuid;index"`
	DateOfBirth          *time.Time `gorm:"type:date"`
	Gender               *string    `gorm:"size:10"`
	ParticipationHistory string     `gorm:"type:jsonb;default:'{}'"`
	AssignedCoachID      *string    `gorm:"type:uuid;index"`
	CreatedAt            time.Time  `gorm:"autoCreateTime"`
	UpdatedAt            time.Time  `gorm:"autoUpdateTime"`

	User          *user.User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	AssignedCoach *user.User `gorm:"foreignKey:AssignedCoachID;references:ID;constraint:OnDelete:SET NULL"`
}

type Session struct {
	ID              string    `gorm:"type:uuid;primaryKey"`
	Status          string    `gorm:"size:10;not null;default:SCHEDULED"`
	Date            time.Time `gorm:"type:date;not null;index"`
	Time            string    `gorm:"size:5;not null"`
	Location        string    `gorm:"size:200;not null"`
	CreatedByID     string    `gorm:"type:uuid;not null;index"`
	AssignedCoachID *string   `gorm:"type:uuid;index"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`

	CreatedBy     *user.User `gorm:"foreignKey:CreatedByID;references:ID;constraint:OnDelete:CASCADE"`
	AssignedCoach *user.User `gorm:"foreignKey:AssignedCoachID;references:ID;constraint:OnDelete:SET NULL"`
}

type Attendance struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	ChildID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_child_session"`
	SessionID string    `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_child_session"`
	Status    string    `gorm:"size:10;not null;default:Absent"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Child   *ChildProfile `gorm:"foreignKey:ChildID;references:ID;constraint:OnDelete:CASCADE"`
	Session *Session      `gorm:"foreignKey:SessionID;references:ID;constraint:OnDelete:CASCADE"`
}

type HomeVisit struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	ChildID   string    `gorm:"type:uuid;not null;index"`
	CoachID   string    `gorm:"type:uuid;not null;index"`
	Date      time.Time `gorm:"type:date;not null"`
	Notes     *string
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Child *ChildProfile `gorm:"foreignKey:ChildID;references:ID;constraint:OnDelete:CASCADE"`
	Coach *user.User    `gorm:"foreignKey:CoachID;references:ID;constraint:OnDelete:CASCADE"`
}

type LSASAssessment struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	ChildID   string    `gorm:"type:uuid;not null;index"`
	Date      time.Time `gorm:"type:date;not null"`
	Score     int       `gorm:"not null"`
	Remarks   *string
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Child *ChildProfile `gorm:"foreignKey:ChildID;references:ID;constraint:OnDelete:CASCADE"`
}

type CoachActivity struct {
	ID            string    `gorm:"type:uuid;primaryKey"`
	CoachID       string    `gorm:"type:uuid;not null;index"`
	ActivityType  string    `gorm:"size:50;not null;default:Other"`
	DurationHours float64   `gorm:"type:numeric(5,2);not null;default:0"`
	Date          time.Time `gorm:"type:date;not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`

	Coach *user.User `gorm:"foreignKey:CoachID;references:ID;constraint:OnDelete:CASCADE"`
}

// UserSummary is the slice of account data the coaching views expose (a
// child's coach, for example) without dragging the whole user record along.
type UserSummary struct {
	ID        string
	Username  string
	FirstName string
	LastName  string
}

type UnifiedHistory struct {
	Child       ChildProfile
	Sessions    []Session
	HomeVisits  []HomeVisit
	Assessments []LSASAssessment
}

type CoachingProfile struct {
	Coach      *UserSummary
	Sessions   []Session
	Attendance []Attendance
}

type AttendanceMark struct {
	ChildID string
	Status  string
}

type AttendanceMarkResult struct {
	ChildID string
	Status  string
	Created bool
}
