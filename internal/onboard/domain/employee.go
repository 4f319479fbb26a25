package domain

import (
	"net/mail"
	"strings"
	"time"
)

type OnboardingStatus string

const (
	StatusNotStarted OnboardingStatus = "not_started"
	StatusInvited    OnboardingStatus = "invited"
	StatusInProgress OnboardingStatus = "in_progress"
	StatusCompleted  OnboardingStatus = "completed"
)

func (s OnboardingStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInvited, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// employeeTransitions lists the legal status moves. Self-transitions are
// handled separately in Transition.
var employeeTransitions = map[OnboardingStatus][]OnboardingStatus{
	StatusNotStarted: {StatusInvited, StatusInProgress},
	StatusInvited:    {StatusInProgress},
	StatusInProgress: {StatusCompleted},
	StatusCompleted:  nil,
}

// CanTransitionTo reports whether moving from s to next is a legal, state
// changing move.
func (s OnboardingStatus) CanTransitionTo(next OnboardingStatus) bool {
	for _, allowed := range employeeTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full_time"
	EmploymentPartTime   EmploymentType = "part_time"
	EmploymentContractor EmploymentType = "contractor"
	EmploymentIntern     EmploymentType = "intern"
)

func (t EmploymentType) Valid() bool {
	switch t {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContractor, EmploymentIntern:
		return true
	}
	return false
}

// EmployeeProfile is the HR record for a hire.
type EmployeeProfile struct {
	ID             string
	CompanyID      string
	UserID         string // linked Actor, empty until an invitation is accepted
	EmployeeNumber string
	FirstName      string
	LastName       string
	PersonalEmail  string
	WorkEmail      string
	Department     string
	Team           string
	Position       string
	EmploymentType EmploymentType
	StartDate      *time.Time
	ManagerID      string
	CreatedBy      string

	Status                OnboardingStatus
	InvitationSentAt      *time.Time
	FirstLoginAt          *time.Time
	OnboardingCompletedAt *time.Time

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e EmployeeProfile) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// ContactEmail is where invitations go unless the caller overrides it.
func (e EmployeeProfile) ContactEmail() string {
	if e.WorkEmail != "" {
		return e.WorkEmail
	}
	return e.PersonalEmail
}

// Transition moves the employee to next, stamping the timestamp that goes with
// the new state. It reports whether anything changed.
//
// Re-entering in_progress or completed is a no-op so the completion cascade
// can safely write twice. Re-entering invited refreshes InvitationSentAt.
func (e *EmployeeProfile) Transition(next OnboardingStatus, now time.Time) (bool, error) {
	if !next.Valid() {
		return false, Validation("unknown onboarding status %q", next)
	}

	if e.Status == next {
		if next == StatusInvited {
			e.InvitationSentAt = &now
			e.UpdatedAt = now
			return true, nil
		}
		return false, nil
	}

	if !e.Status.CanTransitionTo(next) {
		return false, InvalidTransition("employee onboarding cannot move from %s to %s", e.Status, next)
	}

	e.Status = next
	e.UpdatedAt = now
	switch next {
	case StatusInvited:
		e.InvitationSentAt = &now
	case StatusCompleted:
		e.OnboardingCompletedAt = &now
	}
	return true, nil
}

// BeginOnboarding moves a not_started or invited employee to in_progress and
// leaves later states untouched. Used by every activity-driven cascade.
func (e *EmployeeProfile) BeginOnboarding(now time.Time) bool {
	if e.Status != StatusNotStarted && e.Status != StatusInvited {
		return false
	}
	changed, _ := e.Transition(StatusInProgress, now)
	return changed
}

// RecordFirstLogin stamps FirstLoginAt once and begins onboarding.
func (e *EmployeeProfile) RecordFirstLogin(userID string, now time.Time) {
	e.UserID = userID
	if e.FirstLoginAt == nil {
		e.FirstLoginAt = &now
	}
	e.BeginOnboarding(now)
	e.UpdatedAt = now
}

// Validate checks the fields a caller supplies when creating an employee.
func (e EmployeeProfile) Validate() error {
	if strings.TrimSpace(e.FirstName) == "" || strings.TrimSpace(e.LastName) == "" {
		return Validation("first and last name are required")
	}
	if e.PersonalEmail == "" && e.WorkEmail == "" {
		return Validation("a personal or work email is required")
	}
	for _, addr := range []string{e.PersonalEmail, e.WorkEmail} {
		if addr == "" {
			continue
		}
		if err := ValidateEmail(addr); err != nil {
			return err
		}
	}
	if e.PersonalEmail != "" && strings.EqualFold(e.PersonalEmail, e.WorkEmail) {
		return Validation("personal and work email must differ")
	}
	if e.EmploymentType != "" && !e.EmploymentType.Valid() {
		return Validation("unknown employment type %q", e.EmploymentType)
	}
	return nil
}

// ValidateEmail accepts a bare address only, no display names.
func ValidateEmail(addr string) error {
	parsed, err := mail.ParseAddress(addr)
	if err != nil || parsed.Address != addr {
		return Validation("invalid email address %q", addr)
	}
	return nil
}
