package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement it and expose one sub-repository per table. Repositories never
// filter by tenant on their own unless the method says so; callers check
// company ownership through the policy package.
type Store interface {
	Companies() Companies
	Actors() Actors
	Employees() Employees
	Tasks() Tasks
	Assignments() Assignments
	Invitations() Invitations
	RoleAssignments() RoleAssignments

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn inside a transaction, committing when fn returns nil and
	// rolling back otherwise. Inside fn only the tx repositories may be used.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transactional store. Nested transactions are not supported.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Companies interface {
	CreateCompany(ctx context.Context, c domain.Company) error
	GetCompanyByID(ctx context.Context, id string) (domain.Company, error)
	GetCompanyByDomain(ctx context.Context, domainName string) (domain.Company, error)

	// GetCompanyForUpdate reads the company and holds its row lock until the
	// surrounding transaction ends. Outside a transaction it is a plain read.
	GetCompanyForUpdate(ctx context.Context, id string) (domain.Company, error)
}

type Actors interface {
	CreateActor(ctx context.Context, a domain.Actor) error
	GetActorByID(ctx context.Context, id string) (domain.Actor, error)

	// GetActorByEmail matches case-insensitively. Emails are unique across
	// all companies.
	GetActorByEmail(ctx context.Context, email string) (domain.Actor, error)

	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}

// EmployeeFilter narrows ListEmployees. CompanyID is required.
type EmployeeFilter struct {
	CompanyID       string
	ManagerID       string
	Status          domain.OnboardingStatus
	IncludeInactive bool
}

type Employees interface {
	CreateEmployee(ctx context.Context, e domain.EmployeeProfile) error
	GetEmployeeByID(ctx context.Context, id string) (domain.EmployeeProfile, error)

	// GetEmployeeForUpdate reads the employee and holds its row lock until the
	// surrounding transaction ends. Every write to an employee's onboarding
	// state goes through it first.
	GetEmployeeForUpdate(ctx context.Context, id string) (domain.EmployeeProfile, error)

	// GetEmployeeByUserID returns the employee record linked to an actor.
	GetEmployeeByUserID(ctx context.Context, userID string) (domain.EmployeeProfile, error)

	// ListEmployees orders newest first.
	ListEmployees(ctx context.Context, f EmployeeFilter) ([]domain.EmployeeProfile, error)

	// UpdateEmployee writes every mutable column of e and bumps updated_at.
	UpdateEmployee(ctx context.Context, e domain.EmployeeProfile) error

	// SetEmployeeActive touches only is_active and updated_at.
	SetEmployeeActive(ctx context.Context, id string, active bool, at time.Time) error

	CountActiveEmployees(ctx context.Context, companyID string) (int, error)
}

type Tasks interface {
	CreateTask(ctx context.Context, t domain.OnboardingTask) error
	GetTaskByID(ctx context.Context, id string) (domain.OnboardingTask, error)

	// ListActiveTasks orders by order_sequence, then title.
	ListActiveTasks(ctx context.Context, companyID string) ([]domain.OnboardingTask, error)

	UpdateTask(ctx context.Context, t domain.OnboardingTask) error
}

type Assignments interface {
	// CreateAssignment returns ErrAlreadyExists when the (employee, task)
	// pair is already assigned.
	CreateAssignment(ctx context.Context, a domain.TaskAssignment) error
	GetAssignmentByID(ctx context.Context, id string) (domain.TaskAssignment, error)

	// ListAssignmentsByEmployee orders by assigned_at, then id.
	ListAssignmentsByEmployee(ctx context.Context, employeeID string) ([]domain.TaskAssignment, error)

	// ListAssignmentsByCompany orders by employee, then assigned_at and id.
	ListAssignmentsByCompany(ctx context.Context, companyID string) ([]domain.TaskAssignment, error)

	// UpdateAssignmentState writes status, started_at, completed_at, notes and
	// completion_data.
	UpdateAssignmentState(ctx context.Context, a domain.TaskAssignment) error
}

type Invitations interface {
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// GetInvitationByTokenHash returns the invitation regardless of state so
	// the caller can tell expired and used apart from unknown.
	GetInvitationByTokenHash(ctx context.Context, hash string) (domain.Invitation, error)

	// ExpireOpenInvitations sets expires_at to at on every unused, unexpired
	// invitation for the employee. It returns how many were superseded.
	ExpireOpenInvitations(ctx context.Context, employeeID string, at time.Time) (int64, error)

	MarkInvitationUsed(ctx context.Context, id string, at time.Time) error

	// DeleteInvitationsExpiredBefore is housekeeping.
	DeleteInvitationsExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type RoleAssignments interface {
	CreateRoleAssignment(ctx context.Context, g domain.RoleAssignment) error
	GetRoleAssignmentByID(ctx context.Context, id string) (domain.RoleAssignment, error)

	// ListRoleAssignments returns every grant in the company, optionally
	// limited to one actor, newest first.
	ListRoleAssignments(ctx context.Context, companyID, actorID string) ([]domain.RoleAssignment, error)

	// ListActiveRoleAssignments returns the actor's grants that are neither
	// revoked nor expired at now.
	ListActiveRoleAssignments(ctx context.Context, actorID string, now time.Time) ([]domain.RoleAssignment, error)

	RevokeRoleAssignment(ctx context.Context, id string, at time.Time) error

	// DeleteStaleRoleAssignments removes revoked or expired grants.
	DeleteStaleRoleAssignments(ctx context.Context, now time.Time) (int64, error)
}
