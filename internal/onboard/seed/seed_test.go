package seed

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/service"
	"github.com/aussiebroadwan/onboard/internal/onboard/store"
	"github.com/aussiebroadwan/onboard/internal/onboard/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

const catalogYAML = `
version: "1"
tasks:
  - title: Sign contract
    type: document
  - title: Security training
    type: training
    order: 5
  - title: Team lunch
    type: meeting
    required: false
employees:
  - first_name: Grace
    last_name: Hopper
    work_email: grace@acme.test
    department: Engineering
    start_date: "2026-04-01"
`

func TestLoad(t *testing.T) {
	t.Parallel()

	c, err := Load(strings.NewReader(catalogYAML))
	require.NoError(t, err)
	require.Len(t, c.Tasks, 3)
	require.Nil(t, c.Tasks[0].Required)
	require.False(t, *c.Tasks[2].Required)
	require.Equal(t, 5, *c.Tasks[1].Order)
	require.Len(t, c.Employees, 1)
}

func TestLoadRejects(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"unknown key":     "tasks:\n  - title: A\n    type: form\n    colour: red\n",
		"bad type":        "tasks:\n  - title: A\n    type: quiz\n",
		"duplicate title": "tasks:\n  - title: A\n    type: form\n  - title: a\n    type: form\n",
		"missing title":   "tasks:\n  - type: form\n",
		"version":         "version: \"2\"\n",
		"start date":      "employees:\n  - first_name: A\n    last_name: B\n    start_date: 01/04/2026\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(doc))
			require.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogYAML), 0o600))
	c, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, c.Tasks, 3)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestApplyIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	base := service.Base{Store: st, Clock: &service.FixedClock{T: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)}}
	p, err := (&service.ProvisionService{Base: base}).Provision(ctx, service.ProvisionInput{
		Company: service.ProvisionCompanyInput{Name: "Acme", Domain: "acme.test"},
		Admin:   service.ProvisionAdminInput{Email: "admin@acme.test"},
	})
	require.NoError(t, err)

	assignments := &service.AssignmentService{Base: base}
	s := &Seeder{
		Tasks:     &service.TaskService{Base: base},
		Employees: &service.EmployeeService{Base: base, Assignments: assignments},
	}

	c, err := Load(strings.NewReader(catalogYAML))
	require.NoError(t, err)

	res, err := s.Apply(ctx, p.Admin, c)
	require.NoError(t, err)
	require.Equal(t, Result{TasksCreated: 3, EmployeesCreated: 1}, res)

	res, err = s.Apply(ctx, p.Admin, c)
	require.NoError(t, err)
	require.Equal(t, Result{TasksSkipped: 3, EmployeesSkipped: 1}, res)

	tasks, err := s.Tasks.List(ctx, p.Admin)
	require.NoError(t, err)
	require.Equal(t, "Sign contract", tasks[0].Title)
	require.Equal(t, "Security training", tasks[1].Title)
	require.Equal(t, "Team lunch", tasks[2].Title)
	require.Equal(t, 6, tasks[2].OrderSequence)

	emps, err := st.Employees().ListEmployees(ctx, store.EmployeeFilter{CompanyID: p.Company.ID})
	require.NoError(t, err)
	require.Len(t, emps, 1)
	require.Equal(t, "Engineering", emps[0].Department)
	require.NotNil(t, emps[0].StartDate)
	require.Equal(t, domain.StatusNotStarted, emps[0].Status)
}
