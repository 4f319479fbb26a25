package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
)

const (
	assignmentColumns = `id, company_id, employee_id, task_id, task_title, task_type, required, ` +
		`status, priority, due_date, assigned_at, started_at, completed_at, notes, completion_data, assigned_by`

	sqlInsertAssignment = `INSERT INTO task_assignments (` + assignmentColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	sqlAssignmentByID        = `SELECT ` + assignmentColumns + ` FROM task_assignments WHERE id = $1`
	sqlAssignmentsByEmployee = `SELECT ` + assignmentColumns + ` FROM task_assignments WHERE employee_id = $1 ORDER BY assigned_at, id`
	sqlAssignmentsByCompany  = `SELECT ` + assignmentColumns + ` FROM task_assignments WHERE company_id = $1 ORDER BY employee_id, assigned_at, id`
	sqlUpdateAssignmentState = `UPDATE task_assignments
   SET status = $1, started_at = $2, completed_at = $3, notes = $4, completion_data = $5
 WHERE id = $6`
)

type assignmentsRepo struct {
	q Queryer
}

func (r *assignmentsRepo) CreateAssignment(ctx context.Context, a domain.TaskAssignment) error {
	_, err := r.q.Exec(ctx, sqlInsertAssignment,
		a.ID, a.CompanyID, a.EmployeeID, a.TaskID, a.TaskTitle, string(a.TaskType), a.Required,
		string(a.Status), string(a.Priority), nullableTime(a.DueDate), a.AssignedAt.UTC(),
		nullableTime(a.StartedAt), nullableTime(a.CompletedAt), a.Notes, jsonArg(a.CompletionData),
		nullableString(a.AssignedBy))
	return translatePgError(err)
}

func (r *assignmentsRepo) GetAssignmentByID(ctx context.Context, id string) (domain.TaskAssignment, error) {
	return scanAssignment(r.q.QueryRow(ctx, sqlAssignmentByID, id))
}

func (r *assignmentsRepo) ListAssignmentsByEmployee(ctx context.Context, employeeID string) ([]domain.TaskAssignment, error) {
	return r.list(ctx, sqlAssignmentsByEmployee, employeeID)
}

func (r *assignmentsRepo) ListAssignmentsByCompany(ctx context.Context, companyID string) ([]domain.TaskAssignment, error) {
	return r.list(ctx, sqlAssignmentsByCompany, companyID)
}

func (r *assignmentsRepo) list(ctx context.Context, query string, args ...any) ([]domain.TaskAssignment, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, translatePgError(err)
	}
	defer rows.Close()

	var out []domain.TaskAssignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, translatePgError(rows.Err())
}

func (r *assignmentsRepo) UpdateAssignmentState(ctx context.Context, a domain.TaskAssignment) error {
	return execOne(ctx, r.q, sqlUpdateAssignmentState,
		string(a.Status), nullableTime(a.StartedAt), nullableTime(a.CompletedAt), a.Notes,
		jsonArg(a.CompletionData), a.ID)
}

// jsonArg passes raw JSON as a string so pgx encodes it verbatim into jsonb.
func jsonArg(data json.RawMessage) any {
	if len(data) == 0 {
		return nil
	}
	return string(data)
}

func scanAssignment(row interface{ Scan(...any) error }) (domain.TaskAssignment, error) {
	var (
		a                          domain.TaskAssignment
		taskType, status, priority string
		due, started, completed    sql.NullTime
		data                       []byte
		assignedBy                 sql.NullString
	)
	if err := row.Scan(&a.ID, &a.CompanyID, &a.EmployeeID, &a.TaskID, &a.TaskTitle, &taskType, &a.Required,
		&status, &priority, &due, &a.AssignedAt, &started, &completed, &a.Notes, &data, &assignedBy); err != nil {
		return domain.TaskAssignment{}, translatePgError(err)
	}
	a.TaskType = domain.TaskType(taskType)
	a.Status = domain.AssignmentStatus(status)
	a.Priority = domain.Priority(priority)
	a.DueDate = timePtr(due)
	a.StartedAt = timePtr(started)
	a.CompletedAt = timePtr(completed)
	a.AssignedAt = a.AssignedAt.UTC()
	if len(data) > 0 {
		a.CompletionData = json.RawMessage(data)
	}
	a.AssignedBy = assignedBy.String
	return a, nil
}
