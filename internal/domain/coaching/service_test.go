package coaching

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"visionx-go/internal/domain/authz"
	userdomain "visionx-go/internal/domain/user"
	"visionx-go/internal/domain/validation"
)

type fakeCoachingRepo struct {
	roles       map[string]authz.Role
	users       map[string]*UserSummary
	children    map[string]*ChildProfile
	sessions    map[string]*Session
	attendance  map[string]*Attendance
	visits      map[string]*HomeVisit
	assessments map[string]*LSASAssessment
	activities  map[string]*CoachActivity

	// when set, the next CreateAttendance fails as if a concurrent insert
	// won the unique-constraint race, leaving the winner's row behind
	raceAttendance *Attendance
}

func newFakeCoachingRepo() *fakeCoachingRepo {
	return &fakeCoachingRepo{
		roles:       make(map[string]authz.Role),
		users:       make(map[string]*UserSummary),
		children:    make(map[string]*ChildProfile),
		sessions:    make(map[string]*Session),
		attendance:  make(map[string]*Attendance),
		visits:      make(map[string]*HomeVisit),
		assessments: make(map[string]*LSASAssessment),
		activities:  make(map[string]*CoachActivity),
	}
}

func (r *fakeCoachingRepo) addUser(id string, role authz.Role) {
	r.roles[id] = role
	r.users[id] = &UserSummary{ID: id, Username: "user-" + id}
}

func (r *fakeCoachingRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeCoachingRepo) IsCoach(ctx context.Context, userID string) (bool, error) {
	return r.roles[userID] == authz.RoleCoach, nil
}

func (r *fakeCoachingRepo) GetUserSummary(ctx context.Context, userID string) (*UserSummary, error) {
	summary, ok := r.users[userID]
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}
	return summary, nil
}

func matchOwn(scope authz.Scope, callerID string, ownerID *string) bool {
	if scope != authz.ScopeOwn {
		return true
	}
	return ownerID != nil && *ownerID == callerID
}

func (r *fakeCoachingRepo) ListChildren(ctx context.Context, scope authz.Scope, callerID string) ([]ChildProfile, error) {
	result := make([]ChildProfile, 0)
	for _, child := range r.children {
		if matchOwn(scope, callerID, child.AssignedCoachID) {
			result = append(result, *child)
		}
	}
	return result, nil
}

func (r *fakeCoachingRepo) GetChild(ctx context.Context, scope authz.Scope, callerID, id string) (*ChildProfile, error) {
	child, ok := r.children[id]
	if !ok || !matchOwn(scope, callerID, child.AssignedCoachID) {
		return nil, ErrChildNotFound
	}
	return child, nil
}

func (r *fakeCoachingRepo) GetChildByUser(ctx context.Context, userID string) (*ChildProfile, error) {
	for _, child := range r.children {
		if child.UserID != nil && *child.UserID == userID {
			return child, nil
		}
	}
	return nil, ErrChildNotFound
}

func (r *fakeCoachingRepo) CreateChild(ctx context.Context, child *ChildProfile) error {
	r.children[child.ID] = child
	return nil
}

func (r *fakeCoachingRepo) SaveChild(ctx context.Context, child *ChildProfile) error {
	r.children[child.ID] = child
	return nil
}

func (r *fakeCoachingRepo) DeleteChild(ctx context.Context, id string) error {
	delete(r.children, id)
	return nil
}

func (r *fakeCoachingRepo) ListSessions(ctx context.Context, scope authz.Scope, callerID string) ([]Session, error) {
	result := make([]Session, 0)
	for _, session := range r.sessions {
		if matchOwn(scope, callerID, session.AssignedCoachID) {
			result = append(result, *session)
		}
	}
	return result, nil
}

func (r *fakeCoachingRepo) GetSession(ctx context.Context, scope authz.Scope, callerID, id string) (*Session, error) {
	session, ok := r.sessions[id]
	if !ok || !matchOwn(scope, callerID, session.AssignedCoachID) {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (r *fakeCoachingRepo) GetSessionByID(ctx context.Context, id string) (*Session, error) {
	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (r *fakeCoachingRepo) CreateSession(ctx context.Context, session *Session) error {
	r.sessions[session.ID] = session
	return nil
}

func (r *fakeCoachingRepo) SaveSession(ctx context.Context, session *Session) error {
	r.sessions[session.ID] = session
	return nil
}

func (r *fakeCoachingRepo) DeleteSession(ctx context.Context, id string) error {
	delete(r.sessions, id)
	return nil
}

func (r *fakeCoachingRepo) ListSessionsCreatedBetween(ctx context.Context, creatorID string, from, to time.Time) ([]Session, error) {
	result := make([]Session, 0)
	for _, session := range r.sessions {
		if session.CreatedByID != creatorID {
			continue
		}
		if session.Date.Before(from) || session.Date.After(to) {
			continue
		}
		result = append(result, *session)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (r *fakeCoachingRepo) ListSessionsAttendedByChild(ctx context.Context, childID string) ([]Session, error) {
	result := make([]Session, 0)
	for _, record := range r.attendance {
		if record.ChildID != childID {
			continue
		}
		if session, ok := r.sessions[record.SessionID]; ok {
			result = append(result, *session)
		}
	}
	return result, nil
}

func (r *fakeCoachingRepo) attendanceVisible(scope authz.Scope, callerID string, record *Attendance) bool {
	session, ok := r.sessions[record.SessionID]
	if !ok {
		return false
	}
	return matchOwn(scope, callerID, session.AssignedCoachID)
}

func (r *fakeCoachingRepo) ListAttendance(ctx context.Context, scope authz.Scope, callerID string) ([]Attendance, error) {
	result := make([]Attendance, 0)
	for _, record := range r.attendance {
		if r.attendanceVisible(scope, callerID, record) {
			result = append(result, *record)
		}
	}
	return result, nil
}

func (r *fakeCoachingRepo) GetAttendance(ctx context.Context, scope authz.Scope, callerID, id string) (*Attendance, error) {
	record, ok := r.attendance[id]
	if !ok || !r.attendanceVisible(scope, callerID, record) {
		return nil, ErrAttendanceNotFound
	}
	return record, nil
}

func (r *fakeCoachingRepo) GetAttendanceByChildSession(ctx context.Context, childID, sessionID string) (*Attendance, error) {
	for _, record := range r.attendance {
		if record.ChildID == childID && record.SessionID == sessionID {
			return record, nil
		}
	}
	return nil, ErrAttendanceNotFound
}

func (r *fakeCoachingRepo) ListAttendanceByChild(ctx context.Context, childID string) ([]Attendance, error) {
	result := make([]Attendance, 0)
	for _, record := range r.attendance {
		if record.ChildID == childID {
			result = append(result, *record)
		}
	}
	return result, nil
}

func (r *fakeCoachingRepo) CreateAttendance(ctx context.Context, attendance *Attendance) error {
	if r.raceAttendance != nil {
		r.attendance[r.raceAttendance.ID] = r.raceAttendance
		r.raceAttendance = nil
		return ErrDuplicateAttendance
	}
	for _, record := range r.attendance {
		if record.ChildID == attendance.ChildID && record.SessionID == attendance.SessionID {
			return ErrDuplicateAttendance
		}
	}
	r.attendance[attendance.ID] = attendance
	return nil
}

func (r *fakeCoachingRepo) SaveAttendance(ctx context.Context, attendance *Attendance) error {
	r.attendance[attendance.ID] = attendance
	return nil
}

func (r *fakeCoachingRepo) DeleteAttendance(ctx context.Context, id string) error {
	delete(r.attendance, id)
	return nil
}

func (r *fakeCoachingRepo) visitVisible(scope authz.Scope, callerID string, visit *HomeVisit) bool {
	return scope != authz.ScopeOwn || visit.CoachID == callerID
}

func (r *fakeCoachingRepo) ListHomeVisits(ctx context.Context, scope authz.Scope, callerID string) ([]HomeVisit, error) {
	result := make([]HomeVisit, 0)
	for _, visit := range r.visits {
		if r.visitVisible(scope, callerID, visit) {
			result = append(result, *visit)
		}
	}
	return result, nil
}

func (r *fakeCoachingRepo) GetHomeVisit(ctx context.Context, scope authz.Scope, callerID, id string) (*HomeVisit, error) {
	visit, ok := r.visits[id]
	if !ok || !r.visitVisible(scope, callerID, visit) {
		return nil, ErrHomeVisitNotFound
	}
	return visit, nil
}

func (r *fakeCoachingRepo) ListHomeVisitsByChild(ctx context.Context, childID string) ([]HomeVisit, error) {
	result := make([]HomeVisit, 0)
	for _, visit := range r.visits {
		if visit.ChildID == childID {
			result = append(result, *visit)
		}
	}
	return result, nil
}

func (r *fakeCoachingRepo) CreateHomeVisit(ctx context.Context, visit *HomeVisit) error {
	r.visits[visit.ID] = visit
	return nil
}

func (r *fakeCoachingRepo) SaveHomeVisit(ctx context.Context, visit *HomeVisit) error {
	r.visits[visit.ID] = visit
	return nil
}

func (r *fakeCoachingRepo) DeleteHomeVisit(ctx context.Context, id string) error {
	delete(r.visits, id)
	return nil
}

func (r *fakeCoachingRepo) assessmentVisible(scope authz.Scope, callerID string, assessment *LSASAssessment) bool {
	child, ok := r.children[assessment.ChildID]
	if !ok {
		return false
	}
	return matchOwn(scope, callerID, child.AssignedCoachID)
}

func (r *fakeCoachingRepo) ListAssessments(ctx context.Context, scope authz.Scope, callerID string) ([]LSASAssessment, error) {
	result := make([]LSASAssessment, 0)
	for _, assessment := range r.assessments {
		if r.assessmentVisible(scope, callerID, assessment) {
			result = append(result, *assessment)
		}
	}
	return result, nil
}

func (r *fakeCoachingRepo) GetAssessment(ctx context.Context, scope authz.Scope, callerID, id string) (*LSASAssessment, error) {
	assessment, ok := r.assessments[id]
	if !ok || !r.assessmentVisible(scope, callerID, assessment) {
		return nil, ErrAssessmentNotFound
	}
	return assessment, nil
}

func (r *fakeCoachingRepo) ListAssessmentsByChild(ctx context.Context, childID string) ([]LSASAssessment, error) {
	result := make([]LSASAssessment, 0)
	for _, assessment := range r.assessments {
		if assessment.ChildID == childID {
			result = append(result, *assessment)
		}
	}
	return result, nil
}

func (r *fakeCoachingRepo) CreateAssessment(ctx context.Context, assessment *LSASAssessment) error {
	r.assessments[assessment.ID] = assessment
	return nil
}

func (r *fakeCoachingRepo) SaveAssessment(ctx context.Context, assessment *LSASAssessment) error {
	r.assessments[assessment.ID] = assessment
	return nil
}

func (r *fakeCoachingRepo) DeleteAssessment(ctx context.Context, id string) error {
	delete(r.assessments, id)
	return nil
}

func (r *fakeCoachingRepo) activityVisible(scope authz.Scope, callerID string, activity *CoachActivity) bool {
	return scope != authz.ScopeOwn || activity.CoachID == callerID
}

func (r *fakeCoachingRepo) ListActivities(ctx context.Context, scope authz.Scope, callerID string) ([]CoachActivity, error) {
	result := make([]CoachActivity, 0)
	for _, activity := range r.activities {
		if r.activityVisible(scope, callerID, activity) {
			result = append(result, *activity)
		}
	}
	return result, nil
}

func (r *fakeCoachingRepo) GetActivity(ctx context.Context, scope authz.Scope, callerID, id string) (*CoachActivity, error) {
	activity, ok := r.activities[id]
	if !ok || !r.activityVisible(scope, callerID, activity) {
		return nil, ErrActivityNotFound
	}
	return activity, nil
}

func (r *fakeCoachingRepo) CreateActivity(ctx context.Context, activity *CoachActivity) error {
	r.activities[activity.ID] = activity
	return nil
}

func (r *fakeCoachingRepo) SaveActivity(ctx context.Context, activity *CoachActivity) error {
	r.activities[activity.ID] = activity
	return nil
}

func (r *fakeCoachingRepo) DeleteActivity(ctx context.Context, id string) error {
	delete(r.activities, id)
	return nil
}

func strPtr(value string) *string { return &value }

func admin() authz.Principal {
	return authz.Principal{ID: "admin-1", Username: "admin", Role: authz.RoleAdmin}
}

func coach(id string) authz.Principal {
	return authz.Principal{ID: id, Username: "coach", Role: authz.RoleCoach}
}

func spectator() authz.Principal {
	return authz.Principal{ID: "spec-1", Username: "spec", Role: authz.RoleSpectator}
}

func TestListSessionsScoping(t *testing.T) {
	repo := newFakeCoachingRepo()
	repo.sessions["s-1"] = &Session{ID: "s-1", AssignedCoachID: strPtr("coach-1"), Location: "Field A"}
	repo.sessions["s-2"] = &Session{ID: "s-2", AssignedCoachID: strPtr("coach-2"), Location: "Field B"}
	repo.sessions["s-3"] = &Session{ID: "s-3", Location: "Field C"}

	svc := NewService(repo)

	all, err := svc.ListSessions(context.Background(), admin())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected admin to see 3 sessions, got %d", len(all))
	}

	own, err := svc.ListSessions(context.Background(), coach("coach-1"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(own) != 1 || own[0].ID != "s-1" {
		t.Fatalf("expected coach-1 to see only s-1, got %v", own)
	}

	none, err := svc.ListSessions(context.Background(), spectator())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected spectator to see no sessions, got %d", len(none))
	}
}

func TestGetSessionHiddenFromOtherCoach(t *testing.T) {
	repo := newFakeCoachingRepo()
	repo.sessions["s-1"] = &Session{ID: "s-1", AssignedCoachID: strPtr("coach-1")}

	svc := NewService(repo)
	_, err := svc.GetSession(context.Background(), coach("coach-2"), "s-1")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestCreateSessionDefaultsStatus(t *testing.T) {
	repo := newFakeCoachingRepo()
	svc := NewService(repo)

	session, err := svc.CreateSession(context.Background(), admin(), CreateSessionInput{
		Date:     time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		Time:     "09:00",
		Location: "Main Field",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if session.Status != SessionScheduled {
		t.Fatalf("expected default status SCHEDULED, got %q", session.Status)
	}
	if session.CreatedByID != "admin-1" {
		t.Fatalf("expected creator admin-1, got %q", session.CreatedByID)
	}
}

func TestCreateSessionRequiresLocation(t *testing.T) {
	repo := newFakeCoachingRepo()
	svc := NewService(repo)

	_, err := svc.CreateSession(context.Background(), admin(), CreateSessionInput{Time: "09:00"})
	if _, ok := validation.AsError(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateChildRejectsInvalidGender(t *testing.T) {
	repo := newFakeCoachingRepo()
	svc := NewService(repo)

	_, err := svc.CreateChild(context.Background(), admin(), CreateChildInput{Gender: strPtr("X")})
	if _, ok := validation.AsError(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateChildAssignedCoachMustBeCoach(t *testing.T) {
	repo := newFakeCoachingRepo()
	repo.addUser("vol-1", authz.RoleVolunteer)
	svc := NewService(repo)

	_, err := svc.CreateChild(context.Background(), admin(), CreateChildInput{AssignedCoachID: strPtr("vol-1")})
	if !errors.Is(err, ErrNotACoach) {
		t.Fatalf("expected ErrNotACoach, got %v", err)
	}

	repo.addUser("coach-1", authz.RoleCoach)
	child, err := svc.CreateChild(context.Background(), admin(), CreateChildInput{AssignedCoachID: strPtr("coach-1")})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if child.AssignedCoachID == nil || *child.AssignedCoachID != "coach-1" {
		t.Fatalf("expected assigned coach coach-1, got %v", child.AssignedCoachID)
	}
}

func TestMarkSessionAttendanceUpserts(t *testing.T) {
	repo := newFakeCoachingRepo()
	repo.sessions["s-1"] = &Session{ID: "s-1"}
	repo.attendance["a-1"] = &Attendance{ID: "a-1", ChildID: "c-1", SessionID: "s-1", Status: AttendanceAbsent}

	svc := NewService(repo)
	results, err := svc.MarkSessionAttendance(context.Background(), admin(), "s-1", []AttendanceMark{
		{ChildID: "c-1", Status: AttendancePresent},
		{ChildID: "c-2"},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Created {
		t.Fatalf("expected c-1 to be an update, not a create")
	}
	if results[0].Status != AttendancePresent {
		t.Fatalf("expected c-1 Present, got %q", results[0].Status)
	}
	if !results[1].Created {
		t.Fatalf("expected c-2 to be created")
	}
	if results[1].Status != AttendanceAbsent {
		t.Fatalf("expected c-2 to default to Absent, got %q", results[1].Status)
	}
	if repo.attendance["a-1"].Status != AttendancePresent {
		t.Fatalf("expected stored record updated to Present, got %q", repo.attendance["a-1"].Status)
	}
	if len(repo.attendance) != 2 {
		t.Fatalf("expected exactly 2 attendance rows, got %d", len(repo.attendance))
	}
}

func TestMarkSessionAttendanceUnknownSession(t *testing.T) {
	repo := newFakeCoachingRepo()
	svc := NewService(repo)

	_, err := svc.MarkSessionAttendance(context.Background(), admin(), "missing", nil)
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestMarkSessionAttendanceSurvivesInsertRace(t *testing.T) {
	repo := newFakeCoachingRepo()
	repo.sessions["s-1"] = &Session{ID: "s-1"}
	repo.raceAttendance = &Attendance{ID: "winner", ChildID: "c-1", SessionID: "s-1", Status: AttendanceAbsent}

	svc := NewService(repo)
	results, err := svc.MarkSessionAttendance(context.Background(), admin(), "s-1", []AttendanceMark{
		{ChildID: "c-1", Status: AttendancePresent},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if results[0].Created {
		t.Fatalf("expected race loser to report update, not create")
	}
	if repo.attendance["winner"].Status != AttendancePresent {
		t.Fatalf("expected winner's row updated to Present, got %q", repo.attendance["winner"].Status)
	}
	if len(repo.attendance) != 1 {
		t.Fatalf("expected a single attendance row, got %d", len(repo.attendance))
	}
}

func TestMarkAttendanceInvalidStatus(t *testing.T) {
	repo := newFakeCoachingRepo()
	repo.sessions["s-1"] = &Session{ID: "s-1"}
	repo.attendance["a-1"] = &Attendance{ID: "a-1", ChildID: "c-1", SessionID: "s-1", Status: AttendanceAbsent}

	svc := NewService(repo)
	_, err := svc.MarkAttendance(context.Background(), admin(), "a-1", "Late")
	if _, ok := validation.AsError(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListUpcomingSessionsWindow(t *testing.T) {
	repo := newFakeCoachingRepo()
	now := time.Date(2025, time.June, 1, 15, 30, 0, 0, time.UTC)
	today := now.Truncate(24 * time.Hour)

	repo.sessions["in"] = &Session{ID: "in", CreatedByID: "admin-1", Date: today.AddDate(0, 0, 10)}
	repo.sessions["edge"] = &Session{ID: "edge", CreatedByID: "admin-1", Date: today.AddDate(0, 0, 30)}
	repo.sessions["past"] = &Session{ID: "past", CreatedByID: "admin-1", Date: today.AddDate(0, 0, -1)}
	repo.sessions["far"] = &Session{ID: "far", CreatedByID: "admin-1", Date: today.AddDate(0, 0, 31)}
	repo.sessions["other"] = &Session{ID: "other", CreatedByID: "someone-else", Date: today.AddDate(0, 0, 5)}

	svc := NewService(repo)
	svc.now = func() time.Time { return now }

	sessions, err := svc.ListUpcomingSessions(context.Background(), admin())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 upcoming sessions, got %d", len(sessions))
	}
	if sessions[0].ID != "in" || sessions[1].ID != "edge" {
		t.Fatalf("expected [in edge], got [%s %s]", sessions[0].ID, sessions[1].ID)
	}
}

func TestMyCoachingProfile(t *testing.T) {
	repo := newFakeCoachingRepo()
	repo.addUser("coach-1", authz.RoleCoach)
	repo.children["c-1"] = &ChildProfile{ID: "c-1", UserID: strPtr("player-1"), AssignedCoachID: strPtr("coach-1")}
	repo.sessions["s-1"] = &Session{ID: "s-1"}
	repo.attendance["a-1"] = &Attendance{ID: "a-1", ChildID: "c-1", SessionID: "s-1", Status: AttendancePresent}

	svc := NewService(repo)
	player := authz.Principal{ID: "player-1", Username: "player", Role: authz.RolePlayer}

	profile, err := svc.MyCoachingProfile(context.Background(), player)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if profile.Coach == nil || profile.Coach.ID != "coach-1" {
		t.Fatalf("expected coach-1 in profile, got %v", profile.Coach)
	}
	if len(profile.Sessions) != 1 || len(profile.Attendance) != 1 {
		t.Fatalf("expected 1 session and 1 attendance record, got %d and %d",
			len(profile.Sessions), len(profile.Attendance))
	}
}

func TestMyCoachingProfileNotRegistered(t *testing.T) {
	repo := newFakeCoachingRepo()
	svc := NewService(repo)

	_, err := svc.MyCoachingProfile(context.Background(), spectator())
	if !errors.Is(err, ErrNotRegistered) {
		t.Fatalf("expected ErrNotRegistered, got %v", err)
	}
}

func TestUnifiedHistoryScopedToOwnChildren(t *testing.T) {
	repo := newFakeCoachingRepo()
	repo.children["c-1"] = &ChildProfile{ID: "c-1", AssignedCoachID: strPtr("coach-1")}
	repo.visits["v-1"] = &HomeVisit{ID: "v-1", ChildID: "c-1", CoachID: "coach-1"}
	repo.assessments["as-1"] = &LSASAssessment{ID: "as-1", ChildID: "c-1", Score: 3}

	svc := NewService(repo)

	history, err := svc.UnifiedHistory(context.Background(), coach("coach-1"), "c-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(history.HomeVisits) != 1 || len(history.Assessments) != 1 {
		t.Fatalf("expected 1 visit and 1 assessment, got %d and %d",
			len(history.HomeVisits), len(history.Assessments))
	}

	_, err = svc.UnifiedHistory(context.Background(), coach("coach-2"), "c-1")
	if !errors.Is(err, ErrChildNotFound) {
		t.Fatalf("expected ErrChildNotFound for other coach, got %v", err)
	}
}

func TestCreateActivityDefaultsAndValidation(t *testing.T) {
	repo := newFakeCoachingRepo()
	svc := NewService(repo)
	caller := coach("coach-1")

	activity, err := svc.CreateActivity(context.Background(), caller, CreateActivityInput{
		DurationHours: 1.5,
		Date:          time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if activity.ActivityType != ActivityOther {
		t.Fatalf("expected default type Other, got %q", activity.ActivityType)
	}
	if activity.CoachID != "coach-1" {
		t.Fatalf("expected coach-1 as owner, got %q", activity.CoachID)
	}

	_, err = svc.CreateActivity(context.Background(), caller, CreateActivityInput{ActivityType: "Nap"})
	if _, ok := validation.AsError(err); !ok {
		t.Fatalf("expected validation error for unknown type, got %v", err)
	}

	_, err = svc.CreateActivity(context.Background(), caller, CreateActivityInput{DurationHours: -1})
	if _, ok := validation.AsError(err); !ok {
		t.Fatalf("expected validation error for negative duration, got %v", err)
	}
}
