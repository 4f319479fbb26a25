package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/store"
)

type assignmentsRepo struct {
	db DBTX
}

const assignmentColumns = `id, company_id, employee_id, task_id, task_title, task_type, required,
	status, priority, due_date, assigned_at, started_at, completed_at, notes, completion_data, assigned_by`

func (r *assignmentsRepo) CreateAssignment(ctx context.Context, a domain.TaskAssignment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO task_assignments (`+assignmentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.CompanyID, a.EmployeeID, a.TaskID, a.TaskTitle, string(a.TaskType), a.Required,
		string(a.Status), string(a.Priority), nullTS(a.DueDate), ts(a.AssignedAt),
		nullTS(a.StartedAt), nullTS(a.CompletedAt), a.Notes, jsonNull(a.CompletionData),
		mapStringNull(a.AssignedBy),
	)
	return mapConstraint(err)
}

func (r *assignmentsRepo) GetAssignmentByID(ctx context.Context, id string) (domain.TaskAssignment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+assignmentColumns+` FROM task_assignments WHERE id = ?`, id)
	if err != nil {
		return domain.TaskAssignment{}, err
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domain.TaskAssignment{}, err
		}
		return domain.TaskAssignment{}, store.ErrNotFound
	}
	return scanAssignment(rows)
}

func (r *assignmentsRepo) ListAssignmentsByEmployee(ctx context.Context, employeeID string) ([]domain.TaskAssignment, error) {
	return r.list(ctx, `
		SELECT `+assignmentColumns+`
		  FROM task_assignments
		 WHERE employee_id = ?
		 ORDER BY assigned_at, id`, employeeID)
}

func (r *assignmentsRepo) ListAssignmentsByCompany(ctx context.Context, companyID string) ([]domain.TaskAssignment, error) {
	return r.list(ctx, `
		SELECT `+assignmentColumns+`
		  FROM task_assignments
		 WHERE company_id = ?
		 ORDER BY employee_id, assigned_at, id`, companyID)
}

func (r *assignmentsRepo) list(ctx context.Context, query string, args ...any) ([]domain.TaskAssignment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
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
	return out, rows.Err()
}

func (r *assignmentsRepo) UpdateAssignmentState(ctx context.Context, a domain.TaskAssignment) error {
	return execOne(ctx, r.db, `
		UPDATE task_assignments
		   SET status = ?, started_at = ?, completed_at = ?, notes = ?, completion_data = ?
		 WHERE id = ?`,
		string(a.Status), nullTS(a.StartedAt), nullTS(a.CompletedAt), a.Notes,
		jsonNull(a.CompletionData), a.ID,
	)
}

func jsonNull(data json.RawMessage) sql.NullString {
	if len(data) == 0 {
		return sql.NullString{}
	}
	return sql.NullString{String: string(data), Valid: true}
}

func scanAssignment(row scanner) (domain.TaskAssignment, error) {
	var (
		a                          domain.TaskAssignment
		taskType, status, priority string
		due, started, completed    sql.NullTime
		data, assignedBy           sql.NullString
	)
	if err := row.Scan(&a.ID, &a.CompanyID, &a.EmployeeID, &a.TaskID, &a.TaskTitle, &taskType, &a.Required,
		&status, &priority, &due, &a.AssignedAt, &started, &completed, &a.Notes, &data, &assignedBy); err != nil {
		return domain.TaskAssignment{}, mapNotFound(err)
	}
	a.TaskType = domain.TaskType(taskType)
	a.Status = domain.AssignmentStatus(status)
	a.Priority = domain.Priority(priority)
	a.DueDate = mapNullTimePtr(due)
	a.StartedAt = mapNullTimePtr(started)
	a.CompletedAt = mapNullTimePtr(completed)
	a.AssignedAt = a.AssignedAt.UTC()
	if data.Valid {
		a.CompletionData = json.RawMessage(data.String)
	}
	a.AssignedBy = mapNullString(assignedBy)
	return a, nil
}
