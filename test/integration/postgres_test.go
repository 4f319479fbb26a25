//go:build integration

package integration_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/notify"
	"github.com/aussiebroadwan/onboard/internal/onboard/service"
	"github.com/aussiebroadwan/onboard/internal/onboard/store"
	"github.com/aussiebroadwan/onboard/internal/onboard/store/drivers/postgres"
)

// startPostgres runs a throwaway postgres and returns a migrated store.
func startPostgres(t *testing.T) *postgres.Store {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "onboard",
				"POSTGRES_PASSWORD": "onboard",
				"POSTGRES_DB":       "onboard",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	url := fmt.Sprintf("postgres://onboard:onboard@%s:%s/onboard?sslmode=disable", host, port.Port())
	st, err := postgres.NewStore(ctx, postgres.Config{URL: url, MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	// A second run is a no-op.
	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestPostgresOnboarding(t *testing.T) {
	st := startPostgres(t)
	ctx := context.Background()

	base := service.Base{Store: st}
	assignments := &service.AssignmentService{Base: base}
	employees := &service.EmployeeService{Base: base, Assignments: assignments}
	tasks := &service.TaskService{Base: base}
	mail := &notify.MemorySender{}
	invitations := &service.InvitationService{Base: base, Sender: mail, ReturnToken: true}
	identity := &service.IdentityService{Base: base}
	progress := &service.ProgressService{Base: base}

	p, err := (&service.ProvisionService{Base: base}).Provision(ctx, service.ProvisionInput{
		Company: service.ProvisionCompanyInput{Name: "Acme", Domain: "acme.test", EmployeeLimit: 5},
		Admin:   service.ProvisionAdminInput{Email: "admin@acme.test"},
	})
	require.NoError(t, err)
	admin, err := identity.ResolveActor(ctx, p.Admin.ID)
	require.NoError(t, err)

	_, err = tasks.Create(ctx, admin, service.CreateTaskInput{Title: "Sign contract", Type: domain.TaskDocument})
	require.NoError(t, err)
	optional := false
	_, err = tasks.Create(ctx, admin, service.CreateTaskInput{Title: "Team lunch", Type: domain.TaskMeeting, Required: &optional})
	require.NoError(t, err)

	emp, list, err := employees.Create(ctx, admin, service.CreateEmployeeInput{
		FirstName: "Grace", LastName: "Hopper", WorkEmail: "grace@acme.test",
	})
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Assigning the same tasks again trips the unique pair constraint.
	_, err = assignments.AssignTasks(ctx, admin, service.AssignTasksInput{EmployeeID: emp.ID})
	require.ErrorIs(t, err, domain.ErrDuplicateAssignment)

	issued, err := invitations.Send(ctx, admin, service.SendInvitationInput{EmployeeID: emp.ID})
	require.NoError(t, err)
	acc, err := invitations.Accept(ctx, service.AcceptInvitationInput{Token: issued.Token})
	require.NoError(t, err)
	require.Equal(t, domain.StatusInProgress, acc.Employee.Status)

	grace, err := identity.ResolveActor(ctx, acc.Actor.ID)
	require.NoError(t, err)

	for _, a := range list {
		if !a.Required {
			continue
		}
		_, err := assignments.Complete(ctx, grace, service.CompleteTaskInput{
			AssignmentID:   a.ID,
			CompletionData: []byte(`{"signed":true}`),
		})
		require.NoError(t, err)
	}

	report, err := progress.Mine(ctx, grace)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCompleted, report.Employee.Status)
	require.NotNil(t, report.Employee.OnboardingCompletedAt)
	require.Equal(t, 1, report.Progress.CompletedRequired)

	stored, err := st.Employees().ListEmployees(ctx, store.EmployeeFilter{CompanyID: admin.CompanyID})
	require.NoError(t, err)
	require.Len(t, stored, 1)
}

// TestPostgresConcurrentCompletion completes every required task of an
// employee at once. The employee row lock makes the last writer see the
// others, so the employee always ends completed.
func TestPostgresConcurrentCompletion(t *testing.T) {
	st := startPostgres(t)
	ctx := context.Background()

	base := service.Base{Store: st}
	assignments := &service.AssignmentService{Base: base}
	employees := &service.EmployeeService{Base: base, Assignments: assignments}
	tasks := &service.TaskService{Base: base}

	p, err := (&service.ProvisionService{Base: base}).Provision(ctx, service.ProvisionInput{
		Company: service.ProvisionCompanyInput{Name: "Acme", Domain: "acme.test"},
		Admin:   service.ProvisionAdminInput{Email: "admin@acme.test"},
	})
	require.NoError(t, err)
	admin := p.Admin

	for i := range 4 {
		_, err := tasks.Create(ctx, admin, service.CreateTaskInput{Title: fmt.Sprintf("Step %d", i), Type: domain.TaskDocument})
		require.NoError(t, err)
	}

	for i := range 5 {
		emp, list, err := employees.Create(ctx, admin, service.CreateEmployeeInput{
			FirstName: "New", LastName: "Hire", WorkEmail: fmt.Sprintf("hire%d@acme.test", i),
		})
		require.NoError(t, err)
		require.Len(t, list, 4)

		now := time.Now().UTC()
		owner := domain.Actor{
			ID: fmt.Sprintf("owner-%d", i), CompanyID: admin.CompanyID, Email: emp.WorkEmail,
			Role: domain.RoleEmployee, IsActive: true, CreatedAt: now, UpdatedAt: now,
		}
		require.NoError(t, st.Actors().CreateActor(ctx, owner))
		emp.UserID = owner.ID
		require.NoError(t, st.Employees().UpdateEmployee(ctx, emp))

		var wg sync.WaitGroup
		errs := make([]error, len(list))
		for n, a := range list {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, errs[n] = assignments.Complete(ctx, owner, service.CompleteTaskInput{AssignmentID: a.ID})
			}()
		}
		wg.Wait()
		for _, err := range errs {
			require.NoError(t, err)
		}

		got, err := st.Employees().GetEmployeeByID(ctx, emp.ID)
		require.NoError(t, err)
		require.Equal(t, domain.StatusCompleted, got.Status, "employee %d", i)
		require.NotNil(t, got.OnboardingCompletedAt)
	}
}

// TestPostgresConcurrentCreateLimit creates hires in parallel against a
// small employee limit. The company row lock keeps the count exact.
func TestPostgresConcurrentCreateLimit(t *testing.T) {
	st := startPostgres(t)
	ctx := context.Background()

	base := service.Base{Store: st}
	employees := &service.EmployeeService{Base: base, Assignments: &service.AssignmentService{Base: base}}

	p, err := (&service.ProvisionService{Base: base}).Provision(ctx, service.ProvisionInput{
		Company: service.ProvisionCompanyInput{Name: "Tiny", Domain: "tiny.test", EmployeeLimit: 2},
		Admin:   service.ProvisionAdminInput{Email: "admin@tiny.test"},
	})
	require.NoError(t, err)

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, errs[i] = employees.Create(ctx, p.Admin, service.CreateEmployeeInput{
				FirstName: "New", LastName: "Hire", WorkEmail: fmt.Sprintf("h%d@tiny.test", i),
			})
		}()
	}
	wg.Wait()

	created := 0
	for _, err := range errs {
		if err == nil {
			created++
			continue
		}
		require.ErrorIs(t, err, domain.ErrConflict)
	}
	require.Equal(t, 2, created)

	n, err := st.Employees().CountActiveEmployees(ctx, p.Company.ID)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestPostgresHousekeeping(t *testing.T) {
	st := startPostgres(t)
	ctx := context.Background()

	hk := service.NewHousekeepingService(st, nil, time.Hour, time.Hour)
	hk.Cleanup(ctx)
	require.NoError(t, st.Ping(ctx))
}
