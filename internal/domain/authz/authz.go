// Package authz is the single place where role-based visibility and mutation
// rules live. Every service consults these predicates instead of branching on
// roles itself, and repositories apply the returned scope before any other
// query predicate.
package authz

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleManager   Role = "MANAGER"
	RoleCoach     Role = "COACH"
	RoleVolunteer Role = "VOLUNTEER"
	RolePlayer    Role = "PLAYER"
	RoleSpectator Role = "SPECTATOR"
)

var allRoles = []Role{RoleAdmin, RoleManager, RoleCoach, RoleVolunteer, RolePlayer, RoleSpectator}

func Roles() []Role {
	return allRoles
}

func ParseRole(value string) (Role, error) {
	role := Role(strings.ToUpper(strings.TrimSpace(value)))
	for _, known := range allRoles {
		if role == known {
			return role, nil
		}
	}
	return "", fmt.Errorf("unknown role %q", value)
}

// Principal is the authenticated caller of a request. The zero value is an
// anonymous caller.
type Principal struct {
	ID       string
	Username string
	Role     Role
}

func (p Principal) Authenticated() bool {
	return p.ID != ""
}

// Scope describes which rows of a collection a caller may read.
type Scope int

const (
	// ScopeNone hides the whole collection.
	ScopeNone Scope = iota
	// ScopeOwn limits rows to those owned by (or assigned to) the caller.
	ScopeOwn
	// ScopeAll exposes every row.
	ScopeAll
)

// ChildScope: admins see every child, coaches see children assigned to them,
// nobody else sees any.
func ChildScope(p Principal) Scope {
	return adminAllCoachOwn(p)
}

// SessionScope mirrors ChildScope: ownership means assigned_coach == caller.
func SessionScope(p Principal) Scope {
	return adminAllCoachOwn(p)
}

// AttendanceScope: ownership is indirect, through the session's assigned
// coach.
func AttendanceScope(p Principal) Scope {
	return adminAllCoachOwn(p)
}

// AssessmentScope: ownership is indirect, through the child's assigned coach.
func AssessmentScope(p Principal) Scope {
	return adminAllCoachOwn(p)
}

// HomeVisitScope: admins see all visits; every other role sees the visits
// they conducted. There is deliberately no coach-only branch here.
func HomeVisitScope(p Principal) Scope {
	if !p.Authenticated() {
		return ScopeNone
	}
	if p.Role == RoleAdmin {
		return ScopeAll
	}
	return ScopeOwn
}

// ActivityScope: every authenticated caller sees only the activities they
// logged, admins included.
func ActivityScope(p Principal) Scope {
	if !p.Authenticated() {
		return ScopeNone
	}
	return ScopeOwn
}

func adminAllCoachOwn(p Principal) Scope {
	if !p.Authenticated() {
		return ScopeNone
	}
	switch p.Role {
	case RoleAdmin:
		return ScopeAll
	case RoleCoach:
		return ScopeOwn
	default:
		return ScopeNone
	}
}

// CanManageMatches gates match creation, updates and deletion. Reads stay
// open to everyone, including anonymous callers.
func CanManageMatches(p Principal) bool {
	if !p.Authenticated() {
		return false
	}
	return p.Role == RoleAdmin || p.Role == RoleVolunteer
}

// CanGenerateSchedule gates tournament schedule regeneration.
func CanGenerateSchedule(p Principal) bool {
	return p.Authenticated() && p.Role == RoleAdmin
}

// CanAdministerUsers gates user creation with arbitrary roles and the full
// user listing.
func CanAdministerUsers(p Principal) bool {
	return p.Authenticated() && p.Role == RoleAdmin
}

// CanListUsers reports whether the caller may list accounts. Non-admins get
// an empty listing rather than an error.
func CanListUsers(p Principal) bool {
	return CanAdministerUsers(p)
}
