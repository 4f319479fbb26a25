package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
)

type tasksRepo struct {
	db DBTX
}

const taskColumns = `id, company_id, title, description, task_type, required, order_sequence,
	is_active, created_by, created_at, updated_at`

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.OnboardingTask) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO onboarding_tasks (`+taskColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.CompanyID, t.Title, t.Description, string(t.Type), t.Required, t.OrderSequence,
		t.IsActive, mapStringNull(t.CreatedBy), ts(t.CreatedAt), ts(t.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *tasksRepo) GetTaskByID(ctx context.Context, id string) (domain.OnboardingTask, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+taskColumns+` FROM onboarding_tasks WHERE id = ?`, id)
	if err != nil {
		return domain.OnboardingTask{}, err
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domain.OnboardingTask{}, err
		}
		return domain.OnboardingTask{}, mapNotFound(sql.ErrNoRows)
	}
	return scanTask(rows)
}

func (r *tasksRepo) ListActiveTasks(ctx context.Context, companyID string) ([]domain.OnboardingTask, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+taskColumns+`
		  FROM onboarding_tasks
		 WHERE company_id = ? AND is_active = 1
		 ORDER BY order_sequence, title, id`, companyID)
	if err != nil {
		return nil, err
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
	return out, rows.Err()
}

func (r *tasksRepo) UpdateTask(ctx context.Context, t domain.OnboardingTask) error {
	return execOne(ctx, r.db, `
		UPDATE onboarding_tasks
		   SET title = ?, description = ?, task_type = ?, required = ?, order_sequence = ?,
		       is_active = ?, updated_at = ?
		 WHERE id = ?`,
		t.Title, t.Description, string(t.Type), t.Required, t.OrderSequence,
		t.IsActive, ts(t.UpdatedAt), t.ID,
	)
}

func scanTask(row scanner) (domain.OnboardingTask, error) {
	var (
		t         domain.OnboardingTask
		taskType  string
		createdBy sql.NullString
	)
	if err := row.Scan(&t.ID, &t.CompanyID, &t.Title, &t.Description, &taskType, &t.Required,
		&t.OrderSequence, &t.IsActive, &createdBy, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return domain.OnboardingTask{}, mapNotFound(err)
	}
	t.Type = domain.TaskType(taskType)
	t.CreatedBy = mapNullString(createdBy)
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return t, nil
}
