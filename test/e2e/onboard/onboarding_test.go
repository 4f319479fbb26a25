//go:build e2e

package onboard_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/onboard/pkg/onboardsdk"
)

func TestHealthEndpoints(t *testing.T) {
	s := startService(t)

	live, err := s.anonymous().Liveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := s.anonymous().Readiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Checks.Database)
	require.Equal(t, "ok", ready.Checks.Keys)
}

func TestOnboardingLifecycle(t *testing.T) {
	s := startService(t)
	ctx := t.Context()

	tenant := s.provision(t, "acme.test")
	admin := s.as(t, tenant.Admin.ID)

	task, err := admin.CreateTask(ctx, onboardsdk.CreateTaskRequest{Title: "Sign contract", TaskType: "document"})
	require.NoError(t, err)

	hire, err := admin.CreateEmployee(ctx, onboardsdk.CreateEmployeeRequest{
		FirstName:  "Grace",
		LastName:   "Hopper",
		WorkEmail:  "grace@acme.test",
		Department: "Engineering",
	})
	require.NoError(t, err)
	require.Len(t, hire.Assignments, 1)

	// A second invitation supersedes the first.
	first, err := admin.SendInvitation(ctx, onboardsdk.SendInvitationRequest{EmployeeID: hire.Employee.ID})
	require.NoError(t, err)
	second, err := admin.SendInvitation(ctx, onboardsdk.SendInvitationRequest{EmployeeID: hire.Employee.ID})
	require.NoError(t, err)

	_, err = s.anonymous().ValidateInvitation(ctx, first.Token)
	requireCode(t, err, onboardsdk.CodeExpired)

	acc, err := s.anonymous().AcceptInvitation(ctx, onboardsdk.AcceptInvitationRequest{Token: second.Token})
	require.NoError(t, err)
	require.Equal(t, "in_progress", acc.Employee.OnboardingStatus)

	grace := s.as(t, acc.Actor.ID)
	done, err := grace.CompleteTask(ctx, onboardsdk.CompleteTaskRequest{
		AssignmentID: hire.Assignments[0].ID,
		Notes:        "signed",
	})
	require.NoError(t, err)
	require.Equal(t, task.ID, done.TaskID)

	// Completing again is a no-op.
	again, err := grace.CompleteTask(ctx, onboardsdk.CompleteTaskRequest{AssignmentID: hire.Assignments[0].ID})
	require.NoError(t, err)
	require.Equal(t, "signed", again.Notes)

	report, err := grace.GetMyProgress(ctx)
	require.NoError(t, err)
	require.Equal(t, "completed", report.Employee.OnboardingStatus)
	require.InDelta(t, 100.0, report.Progress.ProgressPercentage, 0.001)

	// Assigning to a completed employee is refused.
	_, err = admin.AssignTasksToEmployee(ctx, onboardsdk.AssignTasksRequest{EmployeeID: hire.Employee.ID})
	requireCode(t, err, onboardsdk.CodeInvalidTransition)
}

func TestScopedManagerAccess(t *testing.T) {
	s := startService(t)
	ctx := t.Context()

	tenant := s.provision(t, "acme.test")
	admin := s.as(t, tenant.Admin.ID)

	// Two hires, then a grant that lets the first hire's account see
	// Engineering as HR once they have accepted their invitation.
	eng, err := admin.CreateEmployee(ctx, onboardsdk.CreateEmployeeRequest{
		FirstName: "Grace", LastName: "Hopper", WorkEmail: "grace@acme.test", Department: "Engineering",
	})
	require.NoError(t, err)
	sales, err := admin.CreateEmployee(ctx, onboardsdk.CreateEmployeeRequest{
		FirstName: "Don", LastName: "Draper", WorkEmail: "don@acme.test", Department: "Sales",
	})
	require.NoError(t, err)

	inv, err := admin.SendInvitation(ctx, onboardsdk.SendInvitationRequest{EmployeeID: eng.Employee.ID})
	require.NoError(t, err)
	acc, err := s.anonymous().AcceptInvitation(ctx, onboardsdk.AcceptInvitationRequest{Token: inv.Token})
	require.NoError(t, err)

	grace := s.as(t, acc.Actor.ID)
	_, err = grace.GetEmployeeProgress(ctx, sales.Employee.ID)
	requireCode(t, err, onboardsdk.CodeForbidden)

	grant, err := admin.GrantRole(ctx, onboardsdk.GrantRoleRequest{
		ActorID: acc.Actor.ID, Role: "hr", ScopeType: "department", ScopeValue: "Engineering",
	})
	require.NoError(t, err)

	_, err = grace.GetEmployeeProgress(ctx, eng.Employee.ID)
	require.NoError(t, err)
	_, err = grace.GetEmployeeProgress(ctx, sales.Employee.ID)
	requireCode(t, err, onboardsdk.CodeForbidden)

	_, err = admin.RevokeRole(ctx, grant.ID)
	require.NoError(t, err)
	grants, err := admin.ListRoleGrants(ctx, acc.Actor.ID)
	require.NoError(t, err)
	require.Len(t, grants, 1)
	require.NotNil(t, grants[0].RevokedAt)
}

func TestAuthRequired(t *testing.T) {
	s := startService(t)

	_, err := s.anonymous().GetAllTasks(t.Context())
	requireCode(t, err, onboardsdk.CodeUnauthorized)

	_, err = s.anonymous().Provision(t.Context(), "wrong", onboardsdk.ProvisionRequest{})
	requireCode(t, err, onboardsdk.CodeUnauthorized)
}
