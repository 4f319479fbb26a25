package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/stretchr/testify/require"
)

func TestCompletionCascade(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	f.addTask(t, "Sign contract", true)
	f.addTask(t, "Read handbook", true)
	f.addTask(t, "Team lunch", false)

	emp, list := f.hire(t, "cascade@acme.test", f.manager.ID)
	emp = f.link(t, emp, f.employee)
	require.Len(t, list, 3)

	byTitle := map[string]domain.TaskAssignment{}
	for _, a := range list {
		byTitle[a.TaskTitle] = a
	}

	// Starting any task begins onboarding.
	f.clock.T = t0.Add(time.Hour)
	started, err := f.assignments.Start(ctx, f.employee, byTitle["Sign contract"].ID)
	require.NoError(t, err)
	require.Equal(t, domain.AssignmentInProgress, started.Status)
	require.Equal(t, domain.StatusInProgress, f.reload(t, emp.ID).Status)

	_, err = f.assignments.Start(ctx, f.employee, byTitle["Sign contract"].ID)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	// One required task left, still in progress.
	_, err = f.assignments.Complete(ctx, f.employee, CompleteTaskInput{
		AssignmentID:   byTitle["Sign contract"].ID,
		Notes:          "signed",
		CompletionData: json.RawMessage(`{"signature":"GH"}`),
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusInProgress, f.reload(t, emp.ID).Status)

	// The last required task completes the employee; the optional one is irrelevant.
	f.clock.T = t0.Add(2 * time.Hour)
	_, err = f.assignments.Complete(ctx, f.employee, CompleteTaskInput{AssignmentID: byTitle["Read handbook"].ID})
	require.NoError(t, err)

	done := f.reload(t, emp.ID)
	require.Equal(t, domain.StatusCompleted, done.Status)
	require.NotNil(t, done.OnboardingCompletedAt)
	require.True(t, done.OnboardingCompletedAt.Equal(f.clock.T))

	// Completing again is a no-op and the first payload wins.
	again, err := f.assignments.Complete(ctx, f.employee, CompleteTaskInput{
		AssignmentID: byTitle["Sign contract"].ID, Notes: "changed",
	})
	require.NoError(t, err)
	require.Equal(t, domain.AssignmentCompleted, again.Status)
	require.Equal(t, "signed", again.Notes)
	require.JSONEq(t, `{"signature":"GH"}`, string(again.CompletionData))
	require.Equal(t, domain.StatusCompleted, f.reload(t, emp.ID).Status)

	// Completing the optional task afterwards keeps the employee completed.
	_, err = f.assignments.Complete(ctx, f.employee, CompleteTaskInput{AssignmentID: byTitle["Team lunch"].ID})
	require.NoError(t, err)
	stillDone := f.reload(t, emp.ID)
	require.Equal(t, domain.StatusCompleted, stillDone.Status)
	require.True(t, stillDone.OnboardingCompletedAt.Equal(t0.Add(2*time.Hour)))
}

func TestCompleteWithNoRequiredTasks(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	f.addTask(t, "Optional intro", false)
	emp, list := f.hire(t, "optional@acme.test", "")
	f.link(t, emp, f.employee)

	_, err := f.assignments.Complete(ctx, f.employee, CompleteTaskInput{AssignmentID: list[0].ID})
	require.NoError(t, err)
	require.Equal(t, domain.StatusCompleted, f.reload(t, emp.ID).Status)
}

func TestCompleteRejectsBadPayload(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	f.addTask(t, "Form", true)
	emp, list := f.hire(t, "payload@acme.test", "")
	f.link(t, emp, f.employee)

	_, err := f.assignments.Complete(ctx, f.employee, CompleteTaskInput{
		AssignmentID: list[0].ID, CompletionData: json.RawMessage(`[1,2]`),
	})
	require.ErrorIs(t, err, domain.ErrValidation)

	// Nothing was written.
	a, err := f.store.Assignments().GetAssignmentByID(ctx, list[0].ID)
	require.NoError(t, err)
	require.Equal(t, domain.AssignmentPending, a.Status)
	require.Equal(t, domain.StatusNotStarted, f.reload(t, emp.ID).Status)
}

func TestOnlyOwnerMayWorkTasks(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	f.addTask(t, "Sign contract", true)
	emp, list := f.hire(t, "owner@acme.test", f.manager.ID)
	f.link(t, emp, f.employee)

	for _, actor := range []domain.Actor{f.admin, f.hr, f.manager} {
		_, err := f.assignments.Start(ctx, actor, list[0].ID)
		require.ErrorIs(t, err, domain.ErrForbidden)
		_, err = f.assignments.Complete(ctx, actor, CompleteTaskInput{AssignmentID: list[0].ID})
		require.ErrorIs(t, err, domain.ErrForbidden)
	}

	_, err := f.assignments.Complete(ctx, f.outsider, CompleteTaskInput{AssignmentID: list[0].ID})
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.assignments.Start(ctx, f.employee, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAssignTasks(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	first := f.addTask(t, "Sign contract", true)
	second := f.addTask(t, "Laptop setup", true)

	no := false
	emp, _, err := f.employees.Create(ctx, f.hr, CreateEmployeeInput{
		FirstName: "Assign", LastName: "Me", WorkEmail: "assign@acme.test", AssignDefaultTasks: &no,
	})
	require.NoError(t, err)

	due := t0.Add(48 * time.Hour)
	created, err := f.assignments.AssignTasks(ctx, f.hr, AssignTasksInput{
		EmployeeID: emp.ID, TaskIDs: []string{first.ID}, DueDate: &due, Priority: domain.PriorityHigh,
	})
	require.NoError(t, err)
	require.Len(t, created, 1)
	require.Equal(t, domain.PriorityHigh, created[0].Priority)

	t.Run("duplicate fails the whole call", func(t *testing.T) {
		_, err := f.assignments.AssignTasks(ctx, f.hr, AssignTasksInput{
			EmployeeID: emp.ID, TaskIDs: []string{second.ID, first.ID},
		})
		require.ErrorIs(t, err, domain.ErrDuplicateAssignment)
		require.ErrorIs(t, err, domain.ErrConflict)

		list, err := f.store.Assignments().ListAssignmentsByEmployee(ctx, emp.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, first.ID, list[0].TaskID)
		require.Equal(t, domain.AssignmentPending, list[0].Status)
	})

	t.Run("repeated id in input", func(t *testing.T) {
		_, err := f.assignments.AssignTasks(ctx, f.hr, AssignTasksInput{
			EmployeeID: emp.ID, TaskIDs: []string{second.ID, second.ID},
		})
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := f.assignments.AssignTasks(ctx, f.hr, AssignTasksInput{EmployeeID: emp.ID, TaskIDs: []string{"nope"}})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("inactive task", func(t *testing.T) {
		gone := f.addTask(t, "Retired", true)
		_, err := f.tasks.Delete(ctx, f.hr, gone.ID)
		require.NoError(t, err)
		_, err = f.assignments.AssignTasks(ctx, f.hr, AssignTasksInput{EmployeeID: emp.ID, TaskIDs: []string{gone.ID}})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("employee role is forbidden", func(t *testing.T) {
		_, err := f.assignments.AssignTasks(ctx, f.employee, AssignTasksInput{EmployeeID: emp.ID, TaskIDs: []string{second.ID}})
		require.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("bad priority", func(t *testing.T) {
		_, err := f.assignments.AssignTasks(ctx, f.hr, AssignTasksInput{EmployeeID: emp.ID, Priority: "asap"})
		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestAssignToCompletedEmployee(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	f.addTask(t, "Only task", true)
	emp, list := f.hire(t, "finished@acme.test", "")
	f.link(t, emp, f.employee)
	_, err := f.assignments.Complete(ctx, f.employee, CompleteTaskInput{AssignmentID: list[0].ID})
	require.NoError(t, err)

	later := f.addTask(t, "Late addition", true)
	_, err = f.assignments.AssignTasks(ctx, f.hr, AssignTasksInput{EmployeeID: emp.ID, TaskIDs: []string{later.ID}})
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestSkipTask(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	f.addTask(t, "Required", true)
	f.addTask(t, "Optional", false)
	_, list := f.hire(t, "skip@acme.test", "")

	for _, a := range list {
		_, err := f.assignments.Skip(ctx, f.hr, SkipTaskInput{AssignmentID: a.ID, Notes: "not needed"})
		if a.Required {
			require.ErrorIs(t, err, domain.ErrInvalidTransition)
			continue
		}
		require.NoError(t, err)

		got, err := f.store.Assignments().GetAssignmentByID(ctx, a.ID)
		require.NoError(t, err)
		require.Equal(t, domain.AssignmentSkipped, got.Status)
		require.Equal(t, "not needed", got.Notes)
	}

	_, err := f.assignments.Skip(ctx, f.employee, SkipTaskInput{AssignmentID: list[0].ID})
	require.ErrorIs(t, err, domain.ErrForbidden)
}
