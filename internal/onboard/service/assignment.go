package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/policy"
	"github.com/aussiebroadwan/onboard/internal/onboard/store"
	"github.com/aussiebroadwan/onboard/pkg/slogx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type AssignmentService struct {
	Base
}

type AssignTasksInput struct {
	EmployeeID string
	// TaskIDs defaults to every active task of the company.
	TaskIDs  []string
	DueDate  *time.Time
	Priority domain.Priority
}

// AssignTasks creates pending assignments for the employee in one
// transaction. Any already assigned task fails the whole call.
func (s *AssignmentService) AssignTasks(ctx context.Context, actor domain.Actor, in AssignTasksInput) ([]domain.TaskAssignment, error) {
	log := slogx.FromContext(ctx)

	// 1. Load the employee and authorize against it.
	emp, err := loadEmployee(ctx, s.Store.Employees(), in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorize(ctx, actor, policy.OpAssignTasksToEmployee, employeeTarget(policy.OpAssignTasksToEmployee, emp)); err != nil {
		return nil, err
	}

	// 2. Validate input.
	if in.Priority != "" && !in.Priority.Valid() {
		return nil, domain.Validation("unknown priority %q", in.Priority)
	}
	if err := assignable(emp); err != nil {
		return nil, err
	}
	if dup := firstDuplicate(in.TaskIDs); dup != "" {
		return nil, domain.Validation("task %s listed twice", dup)
	}

	// 3. Resolve tasks and write everything atomically.
	now := s.now()
	var created []domain.TaskAssignment
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		emp, err := lockEmployee(ctx, tx, emp.ID)
		if err != nil {
			return err
		}
		if err := assignable(emp); err != nil {
			return err
		}
		tasks, err := resolveTasks(ctx, tx.Tasks(), emp.CompanyID, in.TaskIDs)
		if err != nil {
			return err
		}
		created, err = s.assign(ctx, tx, emp, tasks, actor.ID, in.Priority, in.DueDate, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info("tasks assigned",
		slog.String("employee_id", emp.ID),
		slog.Int("count", len(created)),
	)
	return created, nil
}

// assign writes one pending assignment per task inside tx.
func (s *AssignmentService) assign(
	ctx context.Context,
	tx store.Tx,
	emp domain.EmployeeProfile,
	tasks []domain.OnboardingTask,
	assignedBy string,
	priority domain.Priority,
	due *time.Time,
	now time.Time,
) ([]domain.TaskAssignment, error) {
	out := make([]domain.TaskAssignment, 0, len(tasks))
	for _, t := range tasks {
		a := domain.NewAssignment(s.id(), emp, t, assignedBy, priority, due, now)
		if err := tx.Assignments().CreateAssignment(ctx, a); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return nil, domain.WrapError(domain.KindDuplicateAssignment, err,
					"task %q is already assigned to this employee", t.Title)
			}
			return nil, translate(err, "assignment")
		}
		out = append(out, a)
	}
	return out, nil
}

func assignable(emp domain.EmployeeProfile) error {
	if err := active(emp); err != nil {
		return err
	}
	if emp.Status == domain.StatusCompleted {
		return domain.InvalidTransition("employee has already completed onboarding")
	}
	return nil
}

func active(emp domain.EmployeeProfile) error {
	if !emp.IsActive {
		return domain.InvalidTransition("employee is inactive")
	}
	return nil
}

// resolveTasks returns the named tasks, or every active task when ids is
// empty. Tasks from another company read as missing.
func resolveTasks(ctx context.Context, repo store.Tasks, companyID string, ids []string) ([]domain.OnboardingTask, error) {
	if len(ids) == 0 {
		tasks, err := repo.ListActiveTasks(ctx, companyID)
		return tasks, translate(err, "tasks")
	}

	tasks := make([]domain.OnboardingTask, 0, len(ids))
	for _, id := range ids {
		t, err := loadTask(ctx, repo, id)
		if err != nil {
			return nil, err
		}
		if t.CompanyID != companyID || !t.IsActive {
			return nil, domain.NotFound("task not found")
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func firstDuplicate(ids []string) string {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return id
		}
		seen[id] = struct{}{}
	}
	return ""
}

// ownedAssignment loads an assignment with its employee and authorizes op.
// Assignments of inactive employees are frozen.
func (s *AssignmentService) ownedAssignment(ctx context.Context, actor domain.Actor, op policy.Operation, id string) (domain.TaskAssignment, domain.EmployeeProfile, error) {
	a, err := loadAssignment(ctx, s.Store.Assignments(), id)
	if err != nil {
		return a, domain.EmployeeProfile{}, err
	}
	emp, err := loadEmployee(ctx, s.Store.Employees(), a.EmployeeID)
	if err != nil {
		return a, emp, err
	}
	if _, err := s.authorize(ctx, actor, op, employeeTarget(op, emp)); err != nil {
		return a, emp, err
	}
	return a, emp, active(emp)
}

// Start moves a pending assignment to in_progress and begins the employee's
// onboarding if it has not started yet.
func (s *AssignmentService) Start(ctx context.Context, actor domain.Actor, assignmentID string) (domain.TaskAssignment, error) {
	_, owner, err := s.ownedAssignment(ctx, actor, policy.OpStartTask, assignmentID)
	if err != nil {
		return domain.TaskAssignment{}, err
	}

	now := s.now()
	var out domain.TaskAssignment
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		emp, err := lockEmployee(ctx, tx, owner.ID)
		if err != nil {
			return err
		}
		if err := active(emp); err != nil {
			return err
		}

		a, err := loadAssignment(ctx, tx.Assignments(), assignmentID)
		if err != nil {
			return err
		}
		if err := a.Start(now); err != nil {
			return err
		}
		if err := tx.Assignments().UpdateAssignmentState(ctx, a); err != nil {
			return translate(err, "assignment")
		}

		if emp.BeginOnboarding(now) {
			if err := tx.Employees().UpdateEmployee(ctx, emp); err != nil {
				return translate(err, "employee")
			}
		}
		out = a
		return nil
	})
	if err != nil {
		return domain.TaskAssignment{}, err
	}

	slogx.FromContext(ctx).Info("task started",
		slog.String("assignment_id", out.ID),
		slog.String("employee_id", out.EmployeeID),
	)
	return out, nil
}

type CompleteTaskInput struct {
	AssignmentID   string
	Notes          string
	CompletionData json.RawMessage
}

// Complete closes the assignment and runs the completion cascade in the same
// transaction: the employee is moved to in_progress if needed, and to
// completed once every required assignment is completed. Completing twice
// returns the stored assignment unchanged.
func (s *AssignmentService) Complete(ctx context.Context, actor domain.Actor, in CompleteTaskInput) (domain.TaskAssignment, error) {
	log := slogx.FromContext(ctx)

	_, owner, err := s.ownedAssignment(ctx, actor, policy.OpCompleteTask, in.AssignmentID)
	if err != nil {
		return domain.TaskAssignment{}, err
	}

	ctx, span := tracer.Start(ctx, "onboard.completeTask", trace.WithAttributes(
		attribute.String("onboard.assignment_id", in.AssignmentID),
	))
	defer span.End()

	now := s.now()
	var (
		out       domain.TaskAssignment
		finished  bool
		employee  domain.EmployeeProfile
		completed bool
	)
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. Lock the employee so concurrent completions see each other.
		emp, err := lockEmployee(ctx, tx, owner.ID)
		if err != nil {
			return err
		}
		if err := active(emp); err != nil {
			return err
		}

		// 2. Close the assignment.
		a, err := loadAssignment(ctx, tx.Assignments(), in.AssignmentID)
		if err != nil {
			return err
		}
		changed, err := a.Complete(now, in.Notes, in.CompletionData)
		if err != nil {
			return err
		}
		out = a
		if !changed {
			return nil
		}
		completed = true
		if err := tx.Assignments().UpdateAssignmentState(ctx, a); err != nil {
			return translate(err, "assignment")
		}

		// 3. Cascade to the employee.
		employee, finished, err = cascadeCompletion(ctx, tx, emp, now)
		return err
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return domain.TaskAssignment{}, err
	}

	span.SetAttributes(
		attribute.Bool("onboard.changed", completed),
		attribute.Bool("onboard.employee_completed", finished),
	)
	if !completed {
		log.Debug("task already completed", slog.String("assignment_id", out.ID))
		return out, nil
	}

	log.Info("task completed",
		slog.String("assignment_id", out.ID),
		slog.String("employee_id", out.EmployeeID),
	)
	if finished {
		log.Info("employee onboarding completed",
			slog.String("employee_id", employee.ID),
			slog.Time("completed_at", now),
		)
	}
	return out, nil
}

// cascadeCompletion re-reads the employee's assignments inside tx and applies
// the completion gate. emp must have been read with lockEmployee in the same
// tx. It reports whether the employee moved to completed on this call.
func cascadeCompletion(ctx context.Context, tx store.Tx, emp domain.EmployeeProfile, now time.Time) (domain.EmployeeProfile, bool, error) {
	ctx, span := tracer.Start(ctx, "onboard.completionCascade")
	defer span.End()

	dirty := emp.BeginOnboarding(now)

	all, err := tx.Assignments().ListAssignmentsByEmployee(ctx, emp.ID)
	if err != nil {
		return emp, false, translate(err, "assignments")
	}

	finished := false
	if domain.RequirementsMet(all) {
		changed, err := emp.Transition(domain.StatusCompleted, now)
		if err != nil {
			return emp, false, err
		}
		finished = changed
		dirty = dirty || changed
	}

	if dirty {
		if err := tx.Employees().UpdateEmployee(ctx, emp); err != nil {
			return emp, false, translate(err, "employee")
		}
	}
	span.SetAttributes(attribute.Int("onboard.assignments", len(all)))
	return emp, finished, nil
}

type SkipTaskInput struct {
	AssignmentID string
	Notes        string
}

// Skip closes an optional assignment without completing it.
func (s *AssignmentService) Skip(ctx context.Context, actor domain.Actor, in SkipTaskInput) (domain.TaskAssignment, error) {
	_, owner, err := s.ownedAssignment(ctx, actor, policy.OpSkipTask, in.AssignmentID)
	if err != nil {
		return domain.TaskAssignment{}, err
	}

	var out domain.TaskAssignment
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := lockEmployee(ctx, tx, owner.ID); err != nil {
			return err
		}
		a, err := loadAssignment(ctx, tx.Assignments(), in.AssignmentID)
		if err != nil {
			return err
		}
		if err := a.Skip(in.Notes); err != nil {
			return err
		}
		out = a
		return translate(tx.Assignments().UpdateAssignmentState(ctx, a), "assignment")
	})
	if err != nil {
		return domain.TaskAssignment{}, err
	}

	slogx.FromContext(ctx).Info("task skipped",
		slog.String("assignment_id", out.ID),
		slog.String("skipped_by", actor.ID),
	)
	return out, nil
}
