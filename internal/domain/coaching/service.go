package coaching

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"visionx-go/internal/domain/authz"
	"visionx-go/internal/domain/validation"
)

const upcomingWindowDays = 30

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// --- Child profiles ---

type CreateChildInput struct {
	UserID          *string
	DateOfBirth     *time.Time
	Gender          *string
	AssignedCoachID *string
}

type UpdateChildInput struct {
	ID              string
	DateOfBirth     *time.Time
	Gender          *string
	AssignedCoachID *string
}

func (s *Service) ListChildren(ctx context.Context, p authz.Principal) ([]ChildProfile, error) {
	scope := authz.ChildScope(p)
	if scope == authz.ScopeNone {
		return []ChildProfile{}, nil
	}
	return s.repo.ListChildren(ctx, scope, p.ID)
}

func (s *Service) GetChild(ctx context.Context, p authz.Principal, id string) (*ChildProfile, error) {
	scope := authz.ChildScope(p)
	if scope == authz.ScopeNone {
		return nil, ErrChildNotFound
	}
	return s.repo.GetChild(ctx, scope, p.ID, id)
}

func (s *Service) CreateChild(ctx context.Context, p authz.Principal, input CreateChildInput) (*ChildProfile, error) {
	if input.Gender != nil {
		if err := validateGender(*input.Gender); err != nil {
			return nil, err
		}
	}
	if err := s.ensureCoachRole(ctx, input.AssignedCoachID); err != nil {
		return nil, err
	}

	child := ChildProfile{
		ID:                   uuid.NewString(),
		UserID:               input.UserID,
		DateOfBirth:          input.DateOfBirth,
		Gender:               input.Gender,
		ParticipationHistory: "{}",
		AssignedCoachID:      input.AssignedCoachID,
	}
	if err := s.repo.CreateChild(ctx, &child); err != nil {
		return nil, err
	}
	return &child, nil
}

func (s *Service) UpdateChild(ctx context.Context, p authz.Principal, input UpdateChildInput) (*ChildProfile, error) {
	child, err := s.GetChild(ctx, p, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Gender != nil {
		if err := validateGender(*input.Gender); err != nil {
			return nil, err
		}
		child.Gender = input.Gender
	}
	if input.DateOfBirth != nil {
		child.DateOfBirth = input.DateOfBirth
	}
	if input.AssignedCoachID != nil {
		if err := s.ensureCoachRole(ctx, input.AssignedCoachID); err != nil {
			return nil, err
		}
		child.AssignedCoachID = input.AssignedCoachID
	}

	if err := s.repo.SaveChild(ctx, child); err != nil {
		return nil, err
	}
	return child, nil
}

func (s *Service) DeleteChild(ctx context.Context, p authz.Principal, id string) error {
	if _, err := s.GetChild(ctx, p, id); err != nil {
		return err
	}
	return s.repo.DeleteChild(ctx, id)
}

// UnifiedHistory gathers everything recorded about one child: the sessions
// the child has an attendance row in, home visits and assessments, each
// newest first.
func (s *Service) UnifiedHistory(ctx context.Context, p authz.Principal, childID string) (*UnifiedHistory, error) {
	child, err := s.GetChild(ctx, p, childID)
	if err != nil {
		return nil, err
	}

	sessions, err := s.repo.ListSessionsAttendedByChild(ctx, child.ID)
	if err != nil {
		return nil, err
	}
	visits, err := s.repo.ListHomeVisitsByChild(ctx, child.ID)
	if err != nil {
		return nil, err
	}
	assessments, err := s.repo.ListAssessmentsByChild(ctx, child.ID)
	if err != nil {
		return nil, err
	}

	return &UnifiedHistory{
		Child:       *child,
		Sessions:    sessions,
		HomeVisits:  visits,
		Assessments: assessments,
	}, nil
}

// MyCoachingProfile lets a player (or any account linked to a child profile)
// see their own coach, sessions and attendance.
func (s *Service) MyCoachingProfile(ctx context.Context, p authz.Principal) (*CoachingProfile, error) {
	child, err := s.repo.GetChildByUser(ctx, p.ID)
	if err != nil {
		if errors.Is(err, ErrChildNotFound) {
			return nil, ErrNotRegistered
		}
		return nil, err
	}

	profile := CoachingProfile{}
	if child.AssignedCoachID != nil {
		coach, err := s.repo.GetUserSummary(ctx, *child.AssignedCoachID)
		if err != nil {
			return nil, err
		}
		profile.Coach = coach
	}

	if profile.Sessions, err = s.repo.ListSessionsAttendedByChild(ctx, child.ID); err != nil {
		return nil, err
	}
	if profile.Attendance, err = s.repo.ListAttendanceByChild(ctx, child.ID); err != nil {
		return nil, err
	}
	return &profile, nil
}

// --- Sessions ---

type CreateSessionInput struct {
	Date            time.Time
	Time            string
	Location        string
	Status          string
	AssignedCoachID *string
}

type UpdateSessionInput struct {
	ID              string
	Date            *time.Time
	Time            *string
	Location        *string
	Status          *string
	AssignedCoachID *string
}

func (s *Service) ListSessions(ctx context.Context, p authz.Principal) ([]Session, error) {
	scope := authz.SessionScope(p)
	if scope == authz.ScopeNone {
		return []Session{}, nil
	}
	return s.repo.ListSessions(ctx, scope, p.ID)
}

func (s *Service) GetSession(ctx context.Context, p authz.Principal, id string) (*Session, error) {
	scope := authz.SessionScope(p)
	if scope == authz.ScopeNone {
		return nil, ErrSessionNotFound
	}
	return s.repo.GetSession(ctx, scope, p.ID, id)
}

// CreateSession records the caller as creator. Any authenticated caller may
// create a session.
func (s *Service) CreateSession(ctx context.Context, p authz.Principal, input CreateSessionInput) (*Session, error) {
	if strings.TrimSpace(input.Location) == "" {
		return nil, validation.Errorf("location is required")
	}
	status := input.Status
	if status == "" {
		status = SessionScheduled
	}
	if err := validateSessionStatus(status); err != nil {
		return nil, err
	}
	if err := s.ensureCoachRole(ctx, input.AssignedCoachID); err != nil {
		return nil, err
	}

	session := Session{
		ID:              uuid.NewString(),
		Status:          status,
		Date:            input.Date,
		Time:            input.Time,
		Location:        input.Location,
		CreatedByID:     p.ID,
		AssignedCoachID: input.AssignedCoachID,
	}
	if err := s.repo.CreateSession(ctx, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// UpdateSession never touches CreatedByID; the creator is fixed at creation.
func (s *Service) UpdateSession(ctx context.Context, p authz.Principal, input UpdateSessionInput) (*Session, error) {
	session, err := s.GetSession(ctx, p, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		if err := validateSessionStatus(*input.Status); err != nil {
			return nil, err
		}
		session.Status = *input.Status
	}
	if input.Date != nil {
		session.Date = *input.Date
	}
	if input.Time != nil {
		session.Time = *input.Time
	}
	if input.Location != nil {
		if strings.TrimSpace(*input.Location) == "" {
			return nil, validation.Errorf("location is required")
		}
		session.Location = *input.Location
	}
	if input.AssignedCoachID != nil {
		if err := s.ensureCoachRole(ctx, input.AssignedCoachID); err != nil {
			return nil, err
		}
		session.AssignedCoachID = input.AssignedCoachID
	}

	if err := s.repo.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Service) DeleteSession(ctx context.Context, p authz.Principal, id string) error {
	if _, err := s.GetSession(ctx, p, id); err != nil {
		return err
	}
	return s.repo.DeleteSession(ctx, id)
}

// ListUpcomingSessions returns the caller's own created sessions over the
// next 30 days, soonest first.
func (s *Service) ListUpcomingSessions(ctx context.Context, p authz.Principal) ([]Session, error) {
	today := s.now().Truncate(24 * time.Hour)
	return s.repo.ListSessionsCreatedBetween(ctx, p.ID, today, today.AddDate(0, 0, upcomingWindowDays))
}

// --- Attendance ---

func (s *Service) ListAttendance(ctx context.Context, p authz.Principal) ([]Attendance, error) {
	scope := authz.AttendanceScope(p)
	if scope == authz.ScopeNone {
		return []Attendance{}, nil
	}
	return s.repo.ListAttendance(ctx, scope, p.ID)
}

func (s *Service) GetAttendance(ctx context.Context, p authz.Principal, id string) (*Attendance, error) {
	scope := authz.AttendanceScope(p)
	if scope == authz.ScopeNone {
		return nil, ErrAttendanceNotFound
	}
	return s.repo.GetAttendance(ctx, scope, p.ID, id)
}

// MarkAttendance sets the status of one existing attendance record.
func (s *Service) MarkAttendance(ctx context.Context, p authz.Principal, id, status string) (*Attendance, error) {
	if err := validateAttendanceStatus(status); err != nil {
		return nil, err
	}
	attendance, err := s.GetAttendance(ctx, p, id)
	if err != nil {
		return nil, err
	}
	attendance.Status = status
	if err := s.repo.SaveAttendance(ctx, attendance); err != nil {
		return nil, err
	}
	return attendance, nil
}

func (s *Service) DeleteAttendance(ctx context.Context, p authz.Principal, id string) error {
	if _, err := s.GetAttendance(ctx, p, id); err != nil {
		return err
	}
	return s.repo.DeleteAttendance(ctx, id)
}

// MarkSessionAttendance upserts attendance for a batch of children in one
// session, all inside a single transaction so a failure mid-batch leaves no
// partial state. Each (child, session) pair keeps at most one row: existing
// rows get their status updated. The unique constraint on the table is the
// real guard; the lookup only decides between insert and update.
func (s *Service) MarkSessionAttendance(ctx context.Context, p authz.Principal, sessionID string, marks []AttendanceMark) ([]AttendanceMarkResult, error) {
	if sessionID == "" {
		return nil, validation.Errorf("session_id is required")
	}
	if _, err := s.repo.GetSessionByID(ctx, sessionID); err != nil {
		return nil, err
	}

	results := make([]AttendanceMarkResult, 0, len(marks))
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		for _, mark := range marks {
			if mark.ChildID == "" {
				continue
			}
			status := mark.Status
			if status == "" {
				status = AttendanceAbsent
			}
			if err := validateAttendanceStatus(status); err != nil {
				return err
			}

			created, err := upsertAttendance(ctx, tx, mark.ChildID, sessionID, status)
			if err != nil {
				return err
			}
			results = append(results, AttendanceMarkResult{
				ChildID: mark.ChildID,
				Status:  status,
				Created: created,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func upsertAttendance(ctx context.Context, repo Repository, childID, sessionID, status string) (bool, error) {
	existing, err := repo.GetAttendanceByChildSession(ctx, childID, sessionID)
	if err == nil {
		existing.Status = status
		return false, repo.SaveAttendance(ctx, existing)
	}
	if !errors.Is(err, ErrAttendanceNotFound) {
		return false, err
	}

	attendance := Attendance{
		ID:        uuid.NewString(),
		ChildID:   childID,
		SessionID: sessionID,
		Status:    status,
	}
	createErr := repo.CreateAttendance(ctx, &attendance)
	if createErr == nil {
		return true, nil
	}
	if !errors.Is(createErr, ErrDuplicateAttendance) {
		return false, createErr
	}

	// Lost a race against a concurrent insert of the same pair; fall back to
	// updating the winner's row.
	existing, err = repo.GetAttendanceByChildSession(ctx, childID, sessionID)
	if err != nil {
		return false, err
	}
	existing.Status = status
	return false, repo.SaveAttendance(ctx, existing)
}

// --- Home visits ---

type CreateHomeVisitInput struct {
	ChildID string
	Date    time.Time
	Notes   *string
}

type UpdateHomeVisitInput struct {
	ID    string
	Date  *time.Time
	Notes *string
}

func (s *Service) ListHomeVisits(ctx context.Context, p authz.Principal) ([]HomeVisit, error) {
	scope := authz.HomeVisitScope(p)
	if scope == authz.ScopeNone {
		return []HomeVisit{}, nil
	}
	return s.repo.ListHomeVisits(ctx, scope, p.ID)
}

func (s *Service) GetHomeVisit(ctx context.Context, p authz.Principal, id string) (*HomeVisit, error) {
	scope := authz.HomeVisitScope(p)
	if scope == authz.ScopeNone {
		return nil, ErrHomeVisitNotFound
	}
	return s.repo.GetHomeVisit(ctx, scope, p.ID, id)
}

// CreateHomeVisit records the caller as the visiting coach, whoever they are.
func (s *Service) CreateHomeVisit(ctx context.Context, p authz.Principal, input CreateHomeVisitInput) (*HomeVisit, error) {
	if input.ChildID == "" {
		return nil, validation.Errorf("child_id is required")
	}

	visit := HomeVisit{
		ID:      uuid.NewString(),
		ChildID: input.ChildID,
		CoachID: p.ID,
		Date:    input.Date,
		Notes:   input.Notes,
	}
	if err := s.repo.CreateHomeVisit(ctx, &visit); err != nil {
		return nil, err
	}
	return &visit, nil
}

func (s *Service) UpdateHomeVisit(ctx context.Context, p authz.Principal, input UpdateHomeVisitInput) (*HomeVisit, error) {
	visit, err := s.GetHomeVisit(ctx, p, input.ID)
	if err != nil {
		return nil, err
	}
	if input.Date != nil {
		visit.Date = *input.Date
	}
	if input.Notes != nil {
		visit.Notes = input.Notes
	}
	if err := s.repo.SaveHomeVisit(ctx, visit); err != nil {
		return nil, err
	}
	return visit, nil
}

func (s *Service) DeleteHomeVisit(ctx context.Context, p authz.Principal, id string) error {
	if _, err := s.GetHomeVisit(ctx, p, id); err != nil {
		return err
	}
	return s.repo.DeleteHomeVisit(ctx, id)
}

// --- LSAS assessments ---

type CreateAssessmentInput struct {
	ChildID string
	Date    time.Time
	Score   int
	Remarks *string
}

type UpdateAssessmentInput struct {
	ID      string
	Date    *time.Time
	Score   *int
	Remarks *string
}

func (s *Service) ListAssessments(ctx context.Context, p authz.Principal) ([]LSASAssessment, error) {
	scope := authz.AssessmentScope(p)
	if scope == authz.ScopeNone {
		return []LSASAssessment{}, nil
	}
	return s.repo.ListAssessments(ctx, scope, p.ID)
}

func (s *Service) GetAssessment(ctx context.Context, p authz.Principal, id string) (*LSASAssessment, error) {
	scope := authz.AssessmentScope(p)
	if scope == authz.ScopeNone {
		return nil, ErrAssessmentNotFound
	}
	return s.repo.GetAssessment(ctx, scope, p.ID, id)
}

func (s *Service) CreateAssessment(ctx context.Context, p authz.Principal, input CreateAssessmentInput) (*LSASAssessment, error) {
	if input.ChildID == "" {
		return nil, validation.Errorf("child_id is required")
	}

	assessment := LSASAssessment{
		ID:      uuid.NewString(),
		ChildID: input.ChildID,
		Date:    input.Date,
		Score:   input.Score,
		Remarks: input.Remarks,
	}
	if err := s.repo.CreateAssessment(ctx, &assessment); err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (s *Service) UpdateAssessment(ctx context.Context, p authz.Principal, input UpdateAssessmentInput) (*LSASAssessment, error) {
	assessment, err := s.GetAssessment(ctx, p, input.ID)
	if err != nil {
		return nil, err
	}
	if input.Date != nil {
		assessment.Date = *input.Date
	}
	if input.Score != nil {
		assessment.Score = *input.Score
	}
	if input.Remarks != nil {
		assessment.Remarks = input.Remarks
	}
	if err := s.repo.SaveAssessment(ctx, assessment); err != nil {
		return nil, err
	}
	return assessment, nil
}

func (s *Service) DeleteAssessment(ctx context.Context, p authz.Principal, id string) error {
	if _, err := s.GetAssessment(ctx, p, id); err != nil {
		return err
	}
	return s.repo.DeleteAssessment(ctx, id)
}

// AssessmentsByChild lists one child's assessments, newest first. The child
// lookup itself is scoped, so a coach cannot read assessments of a child
// assigned to someone else.
func (s *Service) AssessmentsByChild(ctx context.Context, p authz.Principal, childID string) ([]LSASAssessment, error) {
	if childID == "" {
		return nil, validation.Errorf("child_id is required")
	}
	child, err := s.GetChild(ctx, p, childID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListAssessmentsByChild(ctx, child.ID)
}

// --- Coach activities ---

type CreateActivityInput struct {
	ActivityType  string
	DurationHours float64
	Date          time.Time
}

type UpdateActivityInput struct {
	ID            string
	ActivityType  *string
	DurationHours *float64
	Date          *time.Time
}

func (s *Service) ListActivities(ctx context.Context, p authz.Principal) ([]CoachActivity, error) {
	scope := authz.ActivityScope(p)
	if scope == authz.ScopeNone {
		return []CoachActivity{}, nil
	}
	return s.repo.ListActivities(ctx, scope, p.ID)
}

func (s *Service) GetActivity(ctx context.Context, p authz.Principal, id string) (*CoachActivity, error) {
	scope := authz.ActivityScope(p)
	if scope == authz.ScopeNone {
		return nil, ErrActivityNotFound
	}
	return s.repo.GetActivity(ctx, scope, p.ID, id)
}

// CreateActivity records the caller as the activity's coach, unconditionally.
func (s *Service) CreateActivity(ctx context.Context, p authz.Principal, input CreateActivityInput) (*CoachActivity, error) {
	activityType := input.ActivityType
	if activityType == "" {
		activityType = ActivityOther
	}
	if !ValidActivityType(activityType) {
		return nil, validation.Errorf("invalid activity type %q", activityType)
	}
	if input.DurationHours < 0 {
		return nil, validation.Errorf("duration_hours must be non-negative")
	}

	activity := CoachActivity{
		ID:            uuid.NewString(),
		CoachID:       p.ID,
		ActivityType:  activityType,
		DurationHours: input.DurationHours,
		Date:          input.Date,
	}
	if err := s.repo.CreateActivity(ctx, &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

func (s *Service) UpdateActivity(ctx context.Context, p authz.Principal, input UpdateActivityInput) (*CoachActivity, error) {
	activity, err := s.GetActivity(ctx, p, input.ID)
	if err != nil {
		return nil, err
	}
	if input.ActivityType != nil {
		if !ValidActivityType(*input.ActivityType) {
			return nil, validation.Errorf("invalid activity type %q", *input.ActivityType)
		}
		activity.ActivityType = *input.ActivityType
	}
	if input.DurationHours != nil {
		if *input.DurationHours < 0 {
			return nil, validation.Errorf("duration_hours must be non-negative")
		}
		activity.DurationHours = *input.DurationHours
	}
	if input.Date != nil {
		activity.Date = *input.Date
	}
	if err := s.repo.SaveActivity(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *Service) DeleteActivity(ctx context.Context, p authz.Principal, id string) error {
	if _, err := s.GetActivity(ctx, p, id); err != nil {
		return err
	}
	return s.repo.DeleteActivity(ctx, id)
}

// --- helpers ---

func (s *Service) ensureCoachRole(ctx context.Context, coachID *string) error {
	if coachID == nil || *coachID == "" {
		return nil
	}
	isCoach, err := s.repo.IsCoach(ctx, *coachID)
	if err != nil {
		return err
	}
	if !isCoach {
		return ErrNotACoach
	}
	return nil
}

func validateGender(value string) error {
	switch value {
	case "M", "F", "Other":
		return nil
	}
	return validation.Errorf("gender must be one of M, F, Other")
}

func validateSessionStatus(value string) error {
	switch value {
	case SessionScheduled, SessionLive, SessionCompleted:
		return nil
	}
	return validation.Errorf("status must be one of SCHEDULED, LIVE, COMPLETED")
}

func validateAttendanceStatus(value string) error {
	switch value {
	case AttendancePresent, AttendanceAbsent:
		return nil
	}
	return validation.Errorf(`status must be either "Present" or "Absent"`)
}
