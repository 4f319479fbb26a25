// Package service implements the onboarding operations. Every exported
// method authorizes through the policy package before touching the store,
// and every multi-row write runs inside one store transaction.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/policy"
	"github.com/aussiebroadwan/onboard/internal/onboard/store"
	"github.com/aussiebroadwan/onboard/pkg/idx"
	"github.com/aussiebroadwan/onboard/pkg/slogx"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("github.com/aussiebroadwan/onboard/internal/onboard/service")

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant. Tests advance it by assignment.
type FixedClock struct{ T time.Time }

func (c *FixedClock) Now() time.Time { return c.T }

// Base carries what every service needs. A nil Clock means wall time and a nil
// NewID means ULIDs.
type Base struct {
	Store store.Store
	Clock Clock
	NewID func() string
}

func (b Base) now() time.Time {
	if b.Clock == nil {
		return time.Now().UTC()
	}
	return b.Clock.Now().UTC()
}

func (b Base) id() string {
	if b.NewID == nil {
		return idx.String()
	}
	return b.NewID()
}

// authorize runs the policy check and logs denials.
func (b Base) authorize(ctx context.Context, actor domain.Actor, op policy.Operation, target policy.Target) (policy.Decision, error) {
	d := policy.AuthorizeAt(actor, op, target, b.now())
	if !d.Allowed {
		slogx.FromContext(ctx).Warn("operation denied",
			slog.String("op", string(op)),
			slog.String("actor_id", actor.ID),
			slog.String("reason", string(d.Reason)),
		)
		return d, d.Err()
	}
	return d, nil
}

// employeeTarget builds the policy target for an operation on e. OwnerID is
// the linked user for owner rules and the manager for direct-manager rules.
func employeeTarget(op policy.Operation, e domain.EmployeeProfile) policy.Target {
	t := policy.Target{CompanyID: e.CompanyID, Department: e.Department, Team: e.Team}
	switch rule, _ := policy.RuleFor(op); rule {
	case policy.RuleOwner:
		t.OwnerID = e.UserID
	case policy.RuleHROrDirectManager:
		t.OwnerID = e.ManagerID
	}
	return t
}

func companyTarget(companyID string) policy.Target {
	return policy.Target{CompanyID: companyID}
}

// translate turns store sentinels into domain errors naming what was missing
// or duplicated. Domain errors pass through unchanged.
func translate(err error, what string) error {
	var de *domain.Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &de):
		return err
	case errors.Is(err, store.ErrNotFound):
		return domain.WrapError(domain.KindNotFound, err, "%s not found", what)
	case errors.Is(err, store.ErrAlreadyExists):
		return domain.WrapError(domain.KindConflict, err, "%s already exists", what)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}

// loadEmployee reads an employee through repo, which may be the store or a tx.
func loadEmployee(ctx context.Context, repo store.Employees, id string) (domain.EmployeeProfile, error) {
	if id == "" {
		return domain.EmployeeProfile{}, domain.Validation("employeeId is required")
	}
	e, err := repo.GetEmployeeByID(ctx, id)
	return e, translate(err, "employee")
}

// lockEmployee reads the employee inside tx and holds its row lock until the
// transaction ends. Every write to an employee's onboarding state starts here.
func lockEmployee(ctx context.Context, tx store.Tx, id string) (domain.EmployeeProfile, error) {
	if id == "" {
		return domain.EmployeeProfile{}, domain.Validation("employeeId is required")
	}
	e, err := tx.Employees().GetEmployeeForUpdate(ctx, id)
	return e, translate(err, "employee")
}

func loadAssignment(ctx context.Context, repo store.Assignments, id string) (domain.TaskAssignment, error) {
	if id == "" {
		return domain.TaskAssignment{}, domain.Validation("assignmentId is required")
	}
	a, err := repo.GetAssignmentByID(ctx, id)
	return a, translate(err, "assignment")
}

func loadTask(ctx context.Context, repo store.Tasks, id string) (domain.OnboardingTask, error) {
	if id == "" {
		return domain.OnboardingTask{}, domain.Validation("taskId is required")
	}
	t, err := repo.GetTaskByID(ctx, id)
	return t, translate(err, "task")
}
