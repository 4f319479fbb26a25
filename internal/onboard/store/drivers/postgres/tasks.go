package postgres

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
)

const (
	taskColumns = `id, company_id, title, description, task_type, required, order_sequence, ` +
		`is_active, created_by, created_at, updated_at`

	sqlInsertTask      = `INSERT INTO onboarding_tasks (` + taskColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	sqlTaskByID        = `SELECT ` + taskColumns + ` FROM onboarding_tasks WHERE id = $1`
	sqlListActiveTasks = `SELECT ` + taskColumns + ` FROM onboarding_tasks WHERE company_id = $1 AND is_active ORDER BY order_sequence, title, id`
	sqlUpdateTask      = `UPDATE onboarding_tasks
   SET title = $1, description = $2, task_type = $3, required = $4, order_sequence = $5,
       is_active = $6, updated_at = $7
 WHERE id = $8`
)

type tasksRepo struct {
	q Queryer
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.OnboardingTask) error {
	_, err := r.q.Exec(ctx, sqlInsertTask,
		t.ID, t.CompanyID, t.Title, t.Description, string(t.Type), t.Required, t.OrderSequence,
		t.IsActive, nullableString(t.CreatedBy), t.CreatedAt.UTC(), t.UpdatedAt.UTC())
	return translatePgError(err)
}

func (r *tasksRepo) GetTaskByID(ctx context.Context, id string) (domain.OnboardingTask, error) {
	return scanTask(r.q.QueryRow(ctx, sqlTaskByID, id))
}

func (r *tasksRepo) ListActiveTasks(ctx context.Context, companyID string) ([]domain.OnboardingTask, error) {
	rows, err := r.q.Query(ctx, sqlListActiveTasks, companyID)
	if err != nil {
		return nil, translatePgError(err)
	}
	defer rows.Close()

	var out []domain.OnboardingTask
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, translatePgError(rows.Err())
}

func (r *tasksRepo) UpdateTask(ctx context.Context, t domain.OnboardingTask) error {
	return execOne(ctx, r.q, sqlUpdateTask,
		t.Title, t.Description, string(t.Type), t.Required, t.OrderSequence,
		t.IsActive, t.UpdatedAt.UTC(), t.ID)
}

func scanTask(row interface{ Scan(...any) error }) (domain.OnboardingTask, error) {
	var (
		t         domain.OnboardingTask
		taskType  string
		createdBy sql.NullString
	)
	if err := row.Scan(&t.ID, &t.CompanyID, &t.Title, &t.Description, &taskType, &t.Required,
		&t.OrderSequence, &t.IsActive, &createdBy, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return domain.OnboardingTask{}, translatePgError(err)
	}
	t.Type = domain.TaskType(taskType)
	t.CreatedBy = createdBy.String
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return t, nil
}
