package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/store"
)

type employeesRepo struct {
	db DBTX
}

const employeeColumns = `id, company_id, user_id, employee_number, first_name, last_name,
	personal_email, work_email, department, team, position, employment_type, start_date,
	manager_id, created_by, onboarding_status, invitation_sent_at, first_login_at,
	onboarding_completed_at, is_active, created_at, updated_at`

func (r *employeesRepo) CreateEmployee(ctx context.Context, e domain.EmployeeProfile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO employee_profiles (`+employeeColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.CompanyID, mapStringNull(e.UserID), mapStringNull(e.EmployeeNumber),
		e.FirstName, e.LastName, mapStringNull(e.PersonalEmail), mapStringNull(e.WorkEmail),
		e.Department, e.Team, e.Position, string(employmentType(e.EmploymentType)), nullTS(e.StartDate),
		mapStringNull(e.ManagerID), mapStringNull(e.CreatedBy), string(e.Status),
		nullTS(e.InvitationSentAt), nullTS(e.FirstLoginAt), nullTS(e.OnboardingCompletedAt),
		e.IsActive, ts(e.CreatedAt), ts(e.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *employeesRepo) GetEmployeeByID(ctx context.Context, id string) (domain.EmployeeProfile, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+employeeColumns+` FROM employee_profiles WHERE id = ?`, id)
	if err != nil {
		return domain.EmployeeProfile{}, err
	}
	return firstEmployee(rows)
}

// GetEmployeeForUpdate is a plain read: transactions begin IMMEDIATE, so the
// database write lock is already held.
func (r *employeesRepo) GetEmployeeForUpdate(ctx context.Context, id string) (domain.EmployeeProfile, error) {
	return r.GetEmployeeByID(ctx, id)
}

func (r *employeesRepo) GetEmployeeByUserID(ctx context.Context, userID string) (domain.EmployeeProfile, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+employeeColumns+` FROM employee_profiles WHERE user_id = ?`, userID)
	if err != nil {
		return domain.EmployeeProfile{}, err
	}
	return firstEmployee(rows)
}

func (r *employeesRepo) ListEmployees(ctx context.Context, f store.EmployeeFilter) ([]domain.EmployeeProfile, error) {
	conds := []string{"company_id = ?"}
	args := []any{f.CompanyID}
	if f.ManagerID != "" {
		conds = append(conds, "manager_id = ?")
		args = append(args, f.ManagerID)
	}
	if f.Status != "" {
		conds = append(conds, "onboarding_status = ?")
		args = append(args, string(f.Status))
	}
	if !f.IncludeInactive {
		conds = append(conds, "is_active = 1")
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+employeeColumns+`
		  FROM employee_profiles
		 WHERE `+strings.Join(conds, " AND ")+`
		 ORDER BY created_at DESC, id DESC`, args...)
	if err != nil {
		return nil, err
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
	return out, rows.Err()
}

func (r *employeesRepo) UpdateEmployee(ctx context.Context, e domain.EmployeeProfile) error {
	return execOne(ctx, r.db, `
		UPDATE employee_profiles
		   SET user_id = ?, employee_number = ?, first_name = ?, last_name = ?,
		       personal_email = ?, work_email = ?, department = ?, team = ?, position = ?,
		       employment_type = ?, start_date = ?, manager_id = ?, onboarding_status = ?,
		       invitation_sent_at = ?, first_login_at = ?, onboarding_completed_at = ?,
		       is_active = ?, updated_at = ?
		 WHERE id = ?`,
		mapStringNull(e.UserID), mapStringNull(e.EmployeeNumber), e.FirstName, e.LastName,
		mapStringNull(e.PersonalEmail), mapStringNull(e.WorkEmail), e.Department, e.Team, e.Position,
		string(employmentType(e.EmploymentType)), nullTS(e.StartDate), mapStringNull(e.ManagerID), string(e.Status),
		nullTS(e.InvitationSentAt), nullTS(e.FirstLoginAt), nullTS(e.OnboardingCompletedAt),
		e.IsActive, ts(e.UpdatedAt),
		e.ID,
	)
}

func (r *employeesRepo) SetEmployeeActive(ctx context.Context, id string, active bool, at time.Time) error {
	return execOne(ctx, r.db, `UPDATE employee_profiles SET is_active = ?, updated_at = ? WHERE id = ?`, active, ts(at), id)
}

func (r *employeesRepo) CountActiveEmployees(ctx context.Context, companyID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM employee_profiles WHERE company_id = ? AND is_active = 1`, companyID,
	).Scan(&n)
	return n, err
}

func employmentType(t domain.EmploymentType) domain.EmploymentType {
	if t == "" {
		return domain.EmploymentFullTime
	}
	return t
}

type scanner interface {
	Scan(dest ...any) error
}

func firstEmployee(rows *sql.Rows) (domain.EmployeeProfile, error) {
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domain.EmployeeProfile{}, err
		}
		return domain.EmployeeProfile{}, store.ErrNotFound
	}
	return scanEmployee(rows)
}

func scanEmployee(row scanner) (domain.EmployeeProfile, error) {
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
		return domain.EmployeeProfile{}, mapNotFound(err)
	}
	e.UserID = mapNullString(userID)
	e.EmployeeNumber = mapNullString(number)
	e.PersonalEmail = mapNullString(personal)
	e.WorkEmail = mapNullString(work)
	e.ManagerID = mapNullString(managerID)
	e.CreatedBy = mapNullString(createdBy)
	e.EmploymentType = domain.EmploymentType(empType)
	e.Status = domain.OnboardingStatus(status)
	e.StartDate = mapNullTimePtr(startDate)
	e.InvitationSentAt = mapNullTimePtr(invitedAt)
	e.FirstLoginAt = mapNullTimePtr(firstLogin)
	e.OnboardingCompletedAt = mapNullTimePtr(complete)
	e.CreatedAt = e.CreatedAt.UTC()
	e.UpdatedAt = e.UpdatedAt.UTC()
	return e, nil
}
