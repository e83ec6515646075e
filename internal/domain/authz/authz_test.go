package authz

import "testing"

func principal(role Role) Principal {
	return Principal{ID: "user-1", Username: "user1", Role: role}
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole(" coach ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if role != RoleCoach {
		t.Fatalf("expected COACH, got %q", role)
	}

	if _, err := ParseRole("referee"); err == nil {
		t.Fatalf("expected error for unknown role")
	}
	if _, err := ParseRole(""); err == nil {
		t.Fatalf("expected error for empty role")
	}
}

func TestChildSessionAttendanceAssessmentScopes(t *testing.T) {
	scopes := []struct {
		name string
		fn   func(Principal) Scope
	}{
		{"child", ChildScope},
		{"session", SessionScope},
		{"attendance", AttendanceScope},
		{"assessment", AssessmentScope},
	}

	for _, scope := range scopes {
		if got := scope.fn(principal(RoleAdmin)); got != ScopeAll {
			t.Errorf("%s: admin expected ScopeAll, got %v", scope.name, got)
		}
		if got := scope.fn(principal(RoleCoach)); got != ScopeOwn {
			t.Errorf("%s: coach expected ScopeOwn, got %v", scope.name, got)
		}
		for _, role := range []Role{RoleManager, RoleVolunteer, RolePlayer, RoleSpectator} {
			if got := scope.fn(principal(role)); got != ScopeNone {
				t.Errorf("%s: %s expected ScopeNone, got %v", scope.name, role, got)
			}
		}
		if got := scope.fn(Principal{}); got != ScopeNone {
			t.Errorf("%s: anonymous expected ScopeNone, got %v", scope.name, got)
		}
	}
}

func TestHomeVisitScopeHasNoRoleBranch(t *testing.T) {
	if got := HomeVisitScope(principal(RoleAdmin)); got != ScopeAll {
		t.Fatalf("admin expected ScopeAll, got %v", got)
	}
	for _, role := range []Role{RoleCoach, RoleManager, RoleVolunteer, RolePlayer, RoleSpectator} {
		if got := HomeVisitScope(principal(role)); got != ScopeOwn {
			t.Errorf("%s expected ScopeOwn, got %v", role, got)
		}
	}
	if got := HomeVisitScope(Principal{}); got != ScopeNone {
		t.Fatalf("anonymous expected ScopeNone, got %v", got)
	}
}

func TestActivityScopeIsOwnForEveryone(t *testing.T) {
	for _, role := range allRoles {
		if got := ActivityScope(principal(role)); got != ScopeOwn {
			t.Errorf("%s expected ScopeOwn, got %v", role, got)
		}
	}
	if got := ActivityScope(Principal{}); got != ScopeNone {
		t.Fatalf("anonymous expected ScopeNone, got %v", got)
	}
}

func TestCanManageMatches(t *testing.T) {
	if !CanManageMatches(principal(RoleAdmin)) {
		t.Fatalf("admin should manage matches")
	}
	if !CanManageMatches(principal(RoleVolunteer)) {
		t.Fatalf("volunteer should manage matches")
	}
	for _, role := range []Role{RoleManager, RoleCoach, RolePlayer, RoleSpectator} {
		if CanManageMatches(principal(role)) {
			t.Errorf("%s should not manage matches", role)
		}
	}
	if CanManageMatches(Principal{}) {
		t.Fatalf("anonymous should not manage matches")
	}
}

func TestAdminOnlyCapabilities(t *testing.T) {
	if !CanGenerateSchedule(principal(RoleAdmin)) {
		t.Fatalf("admin should generate schedules")
	}
	if CanGenerateSchedule(principal(RoleVolunteer)) {
		t.Fatalf("volunteer should not generate schedules")
	}
	if !CanAdministerUsers(principal(RoleAdmin)) {
		t.Fatalf("admin should administer users")
	}
	if CanAdministerUsers(principal(RoleManager)) {
		t.Fatalf("manager should not administer users")
	}
	if CanGenerateSchedule(Principal{}) || CanAdministerUsers(Principal{}) {
		t.Fatalf("anonymous should hold no admin capabilities")
	}
}
