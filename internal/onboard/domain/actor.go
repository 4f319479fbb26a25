package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleHR, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// ParseRole normalises and validates a role string.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", Validation("unknown role %q", s)
	}
	return r, nil
}

// Actor is an authenticated person acting within one company. It is distinct
// from the EmployeeProfile HR record until an invitation links the two.
type Actor struct {
	ID          string
	CompanyID   string
	Email       string
	FirstName   string
	LastName    string
	Role        Role
	IsActive    bool
	LastLoginAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Grants are the actor's active role assignments, loaded alongside the
	// actor when a request is authenticated.
	Grants []RoleAssignment
}

func (a Actor) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

type ScopeType string

const (
	ScopeCompany    ScopeType = "company"
	ScopeDepartment ScopeType = "department"
	ScopeTeam       ScopeType = "team"
)

func (s ScopeType) Valid() bool {
	switch s {
	case ScopeCompany, ScopeDepartment, ScopeTeam:
		return true
	}
	return false
}

// RoleAssignment grants an actor an additional role, optionally limited to a
// department or team and optionally expiring.
type RoleAssignment struct {
	ID         string
	CompanyID  string
	ActorID    string
	Role       Role
	ScopeType  ScopeType
	ScopeValue string
	ExpiresAt  *time.Time
	GrantedBy  string
	RevokedAt  *time.Time
	CreatedAt  time.Time
}

// ActiveAt reports whether the grant is neither revoked nor expired at t.
func (g RoleAssignment) ActiveAt(t time.Time) bool {
	if g.RevokedAt != nil {
		return false
	}
	return g.ExpiresAt == nil || t.Before(*g.ExpiresAt)
}

// Covers reports whether the grant's scope includes a record in the given
// department and team.
func (g RoleAssignment) Covers(department, team string) bool {
	switch g.ScopeType {
	case ScopeCompany:
		return true
	case ScopeDepartment:
		return department != "" && strings.EqualFold(g.ScopeValue, department)
	case ScopeTeam:
		return team != "" && strings.EqualFold(g.ScopeValue, team)
	}
	return false
}
