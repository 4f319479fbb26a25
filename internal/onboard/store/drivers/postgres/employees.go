package postgres

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/store"
)

const (
	employeeColumns = `id, company_id, user_id, employee_number, first_name, last_name, ` +
		`personal_email, work_email, department, team, position, employment_type, start_date, ` +
		`manager_id, created_by, onboarding_status, invitation_sent_at, first_login_at, ` +
		`onboarding_completed_at, is_active, created_at, updated_at`

	sqlInsertEmployee = `INSERT INTO employee_profiles (` + employeeColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`

	sqlEmployeeByID      = `SELECT ` + employeeColumns + ` FROM employee_profiles WHERE id = $1`
	sqlEmployeeForUpdate = sqlEmployeeByID + ` FOR UPDATE`
	sqlEmployeeByUserID  = `SELECT ` + employeeColumns + ` FROM employee_profiles WHERE user_id = $1`

	sqlUpdateEmployee = `UPDATE employee_profiles
   SET user_id = $1, employee_number = $2, first_name = $3, last_name = $4,
       personal_email = $5, work_email = $6, department = $7, team = $8, position = $9,
       employment_type = $10, start_date = $11, manager_id = $12, onboarding_status = $13,
       invitation_sent_at = $14, first_login_at = $15, onboarding_completed_at = $16,
       is_active = $17, updated_at = $18
 WHERE id = $19`

	sqlSetEmployeeActive = `UPDATE employee_profiles SET is_active = $1, updated_at = $2 WHERE id = $3`

	sqlCountActiveEmployees = `SELECT COUNT(*) FROM employee_profiles WHERE company_id = $1 AND is_active`
)

type employeesRepo struct {
	q Queryer
}

func (r *employeesRepo) CreateEmployee(ctx context.Context, e domain.EmployeeProfile) error {
	_, err := r.q.Exec(ctx, sqlInsertEmployee,
		e.ID, e.CompanyID, nullableString(e.UserID), nullableString(e.EmployeeNumber),
		e.FirstName, e.LastName, nullableString(e.PersonalEmail), nullableString(e.WorkEmail),
		e.Department, e.Team, e.Position, string(employmentType(e.EmploymentType)), nullableTime(e.StartDate),
		nullableString(e.ManagerID), nullableString(e.CreatedBy), string(e.Status),
		nullableTime(e.InvitationSentAt), nullableTime(e.FirstLoginAt), nullableTime(e.OnboardingCompletedAt),
		e.IsActive, e.CreatedAt.UTC(), e.UpdatedAt.UTC())
	return translatePgError(err)
}

func (r *employeesRepo) GetEmployeeByID(ctx context.Context, id string) (domain.EmployeeProfile, error) {
	return scanEmployee(r.q.QueryRow(ctx, sqlEmployeeByID, id))
}

func (r *employeesRepo) GetEmployeeForUpdate(ctx context.Context, id string) (domain.EmployeeProfile, error) {
	return scanEmployee(r.q.QueryRow(ctx, sqlEmployeeForUpdate, id))
}

func (r *employeesRepo) GetEmployeeByUserID(ctx context.Context, userID string) (domain.EmployeeProfile, error) {
	return scanEmployee(r.q.QueryRow(ctx, sqlEmployeeByUserID, userID))
}

// listEmployeesQuery builds the filtered select with positional placeholders.
func listEmployeesQuery(f store.EmployeeFilter) (string, []any) {
	args := []any{f.CompanyID}
	conds := []string{"company_id = $1"}

	if f.ManagerID != "" {
		args = append(args, f.ManagerID)
		conds = append(conds, "manager_id = $"+strconv.Itoa(len(args)))
	}
	if f.Status != "" {
		args = append(args, string(f.Status))
		conds = append(conds, "onboarding_status = $"+strconv.Itoa(len(args)))
	}
	if !f.IncludeInactive {
		conds = append(conds, "is_active")
	}

	query := `SELECT ` + employeeColumns + ` FROM employee_profiles WHERE ` +
		strings.Join(conds, " AND ") + ` ORDER BY created_at DESC, id DESC`
	return query, args
}

func (r *employeesRepo) ListEmployees(ctx context.Context, f store.EmployeeFilter) ([]domain.EmployeeProfile, error) {
	query, args := listEmployeesQuery(f)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, translatePgError(err)
	}
	defer rows.Close()

	var out []domain.EmployeeProfile
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, translatePgError(rows.Err())
}

func (r *employeesRepo) UpdateEmployee(ctx context.Context, e domain.EmployeeProfile) error {
	return execOne(ctx, r.q, sqlUpdateEmployee,
		nullableString(e.UserID), nullableString(e.EmployeeNumber), e.FirstName, e.LastName,
		nullableString(e.PersonalEmail), nullableString(e.WorkEmail), e.Department, e.Team, e.Position,
		string(employmentType(e.EmploymentType)), nullableTime(e.StartDate), nullableString(e.ManagerID), string(e.Status),
		nullableTime(e.InvitationSentAt), nullableTime(e.FirstLoginAt), nullableTime(e.OnboardingCompletedAt),
		e.IsActive, e.UpdatedAt.UTC(),
		e.ID)
}

func (r *employeesRepo) SetEmployeeActive(ctx context.Context, id string, active bool, at time.Time) error {
	return execOne(ctx, r.q, sqlSetEmployeeActive, active, at.UTC(), id)
}

func (r *employeesRepo) CountActiveEmployees(ctx context.Context, companyID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, sqlCountActiveEmployees, companyID).Scan(&n); err != nil {
		return 0, translatePgError(err)
	}
	return n, nil
}

func employmentType(t domain.EmploymentType) domain.EmploymentType {
	if t == "" {
		return domain.EmploymentFullTime
	}
	return t
}

func scanEmployee(row interface{ Scan(...any) error }) (domain.EmployeeProfile, error) {
	var (
		e                                          domain.EmployeeProfile
		userID, number, personal, work             sql.NullString
		managerID, createdBy                       sql.NullString
		empType, status                            string
		startDate, invitedAt, firstLogin, complete sql.NullTime
	)
	if err := row.Scan(
		&e.ID, &e.CompanyID, &userID, &number, &e.FirstName, &e.LastName,
		&personal, &work, &e.Department, &e.Team, &e.Position, &empType, &startDate,
		&managerID, &createdBy, &status, &invitedAt, &firstLogin,
		&complete, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return domain.EmployeeProfile{}, translatePgError(err)
	}
	e.UserID = userID.String
	e.EmployeeNumber = number.String
	e.PersonalEmail = personal.String
	e.WorkEmail = work.String
	e.ManagerID = managerID.String
	e.CreatedBy = createdBy.String
	e.EmploymentType = domain.EmploymentType(empType)
	e.Status = domain.OnboardingStatus(status)
	e.StartDate = timePtr(startDate)
	e.InvitationSentAt = timePtr(invitedAt)
	e.FirstLoginAt = timePtr(firstLogin)
	e.OnboardingCompletedAt = timePtr(complete)
	e.CreatedAt = e.CreatedAt.UTC()
	e.UpdatedAt = e.UpdatedAt.UTC()
	return e, nil
}
