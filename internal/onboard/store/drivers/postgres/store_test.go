package postgres

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/store"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC)

func newMockStore(t *testing.T) (*Store, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewStoreWithPool(mock, "postgres://onboard@localhost/onboard"), mock
}

func TestTranslatePgError(t *testing.T) {
	t.Parallel()

	require.Nil(t, translatePgError(nil))
	require.ErrorIs(t, translatePgError(pgx.ErrNoRows), store.ErrNotFound)
	require.ErrorIs(t, translatePgError(&pgconn.PgError{Code: uniqueViolationCode}), store.ErrAlreadyExists)
	require.ErrorIs(t, translatePgError(&pgconn.PgError{Code: foreignKeyViolationCode}), store.ErrNotFound)

	check := &pgconn.PgError{Code: checkViolationCode, ConstraintName: "task_assignments_completed_check"}
	err := translatePgError(check)
	require.ErrorAs(t, err, new(*pgconn.PgError))
	require.Contains(t, err.Error(), "task_assignments_completed_check")

	other := errors.New("other")
	require.Equal(t, other, translatePgError(other))
}

func TestListEmployeesQuery(t *testing.T) {
	t.Parallel()

	query, args := listEmployeesQuery(store.EmployeeFilter{CompanyID: "co"})
	require.Contains(t, query, "WHERE company_id = $1 AND is_active ORDER BY")
	require.Equal(t, []any{"co"}, args)

	query, args = listEmployeesQuery(store.EmployeeFilter{
		CompanyID: "co", ManagerID: "m1", Status: domain.StatusInvited, IncludeInactive: true,
	})
	require.Contains(t, query, "company_id = $1 AND manager_id = $2 AND onboarding_status = $3 ORDER BY")
	require.Equal(t, []any{"co", "m1", "invited"}, args)
	require.True(t, strings.HasSuffix(query, "ORDER BY created_at DESC, id DESC"))
}

func employeeRow() *pgxmock.Rows {
	cols := []string{
		"id", "company_id", "user_id", "employee_number", "first_name", "last_name",
		"personal_email", "work_email", "department", "team", "position", "employment_type", "start_date",
		"manager_id", "created_by", "onboarding_status", "invitation_sent_at", "first_login_at",
		"onboarding_completed_at", "is_active", "created_at", "updated_at",
	}
	return pgxmock.NewRows(cols).AddRow(
		"emp1", "co", "u1", nil, "Grace", "Hopper",
		nil, "grace@acme.test", "Engineering", "core", "Engineer", "full_time", nil,
		"m1", "hr1", "in_progress",
		now, now.Add(time.Hour),
		nil, true, now, now,
	)
}

func TestEmployeesRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("get by id scans nullable columns", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(sqlEmployeeByID)).WithArgs("emp1").WillReturnRows(employeeRow())

		e, err := s.Employees().GetEmployeeByID(ctx, "emp1")
		require.NoError(t, err)
		require.Equal(t, "u1", e.UserID)
		require.Equal(t, "", e.EmployeeNumber)
		require.Equal(t, "grace@acme.test", e.WorkEmail)
		require.Equal(t, domain.StatusInProgress, e.Status)
		require.Nil(t, e.OnboardingCompletedAt)
		require.True(t, e.FirstLoginAt.Equal(now.Add(time.Hour)))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing employee", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(sqlEmployeeByUserID)).WithArgs("nobody").WillReturnError(pgx.ErrNoRows)

		_, err := s.Employees().GetEmployeeByUserID(ctx, "nobody")
		require.ErrorIs(t, err, store.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("update with no rows is not found", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta(sqlUpdateEmployee)).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), "ghost").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := s.Employees().UpdateEmployee(ctx, domain.EmployeeProfile{ID: "ghost", Status: domain.StatusNotStarted})
		require.ErrorIs(t, err, store.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lock for update", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(sqlEmployeeForUpdate)).WithArgs("emp1").WillReturnRows(employeeRow())

		e, err := s.Employees().GetEmployeeForUpdate(ctx, "emp1")
		require.NoError(t, err)
		require.Equal(t, "emp1", e.ID)
		require.True(t, strings.HasSuffix(sqlEmployeeForUpdate, "FOR UPDATE"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("set active", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta(sqlSetEmployeeActive)).WithArgs(false, now, "emp1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(regexp.QuoteMeta(sqlSetEmployeeActive)).WithArgs(false, now, "ghost").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		require.NoError(t, s.Employees().SetEmployeeActive(ctx, "emp1", false, now))
		require.ErrorIs(t, s.Employees().SetEmployeeActive(ctx, "ghost", false, now), store.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("count active", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(sqlCountActiveEmployees)).WithArgs("co").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

		n, err := s.Employees().CountActiveEmployees(ctx, "co")
		require.NoError(t, err)
		require.Equal(t, 3, n)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAssignmentsRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	emp := domain.EmployeeProfile{ID: "emp1", CompanyID: "co"}
	task := domain.OnboardingTask{ID: "t1", CompanyID: "co", Title: "Laptop", Type: domain.TaskTraining, Required: true}
	a := domain.NewAssignment("as1", emp, task, "hr1", domain.PriorityHigh, nil, now)

	t.Run("duplicate pair maps to already exists", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta(sqlInsertAssignment)).
			WithArgs("as1", "co", "emp1", "t1", "Laptop", "training", true,
				"pending", "high", nil, now, nil, nil, "", nil, "hr1").
			WillReturnError(&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "task_assignments_employee_task_key"})

		err := s.Assignments().CreateAssignment(ctx, a)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("completion data round trips as raw json", func(t *testing.T) {
		s, mock := newMockStore(t)
		done := a
		_, err := done.Complete(now, "ok", []byte(`{"score":9}`))
		require.NoError(t, err)

		mock.ExpectExec(regexp.QuoteMeta(sqlUpdateAssignmentState)).
			WithArgs("completed", nil, now, "ok", `{"score":9}`, "as1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		require.NoError(t, s.Assignments().UpdateAssignmentState(ctx, done))

		cols := []string{"id", "company_id", "employee_id", "task_id", "task_title", "task_type", "required",
			"status", "priority", "due_date", "assigned_at", "started_at", "completed_at", "notes", "completion_data", "assigned_by"}
		mock.ExpectQuery(regexp.QuoteMeta(sqlAssignmentsByEmployee)).WithArgs("emp1").
			WillReturnRows(pgxmock.NewRows(cols).AddRow(
				"as1", "co", "emp1", "t1", "Laptop", "training", true,
				"completed", "high", nil, now, nil, now,
				"ok", []byte(`{"score":9}`), "hr1",
			))

		list, err := s.Assignments().ListAssignmentsByEmployee(ctx, "emp1")
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, domain.AssignmentCompleted, list[0].Status)
		require.JSONEq(t, `{"score":9}`, string(list[0].CompletionData))
		require.True(t, list[0].CompletedAt.Equal(now))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestInvitationsRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta(sqlExpireOpenInvitations)).WithArgs(now, "emp1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))
	n, err := s.Invitations().ExpireOpenInvitations(ctx, "emp1", now)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	mock.ExpectExec(regexp.QuoteMeta(sqlMarkInvitationUsed)).WithArgs(now, "inv1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	require.ErrorIs(t, s.Invitations().MarkInvitationUsed(ctx, "inv1", now), store.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(sqlRevokeRoleAssignment)).WithArgs(now, "g1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		err := s.WithTx(ctx, func(tx store.Tx) error {
			return tx.RoleAssignments().RevokeRoleAssignment(ctx, "g1", now)
		})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on error", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("boom")
		err := s.WithTx(ctx, func(tx store.Tx) error {
			require.ErrorIs(t, tx.WithTx(ctx, nil), pgx.ErrTxClosed)
			return boom
		})
		require.ErrorIs(t, err, boom)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMigrateURL(t *testing.T) {
	t.Parallel()

	require.Equal(t, "pgx5://u:p@db:5432/onboard?sslmode=disable", migrateURL("postgres://u:p@db:5432/onboard?sslmode=disable"))
	require.Equal(t, "pgx5://db/onboard", migrateURL("postgresql://db/onboard"))
	require.Equal(t, "pgx5://db/onboard", migrateURL("pgx5://db/onboard"))
}
