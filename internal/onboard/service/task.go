package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/policy"
	"github.com/aussiebroadwan/onboard/internal/onboard/store"
	"github.com/aussiebroadwan/onboard/pkg/slogx"
)

type TaskService struct {
	Base
}

// List returns the company's active tasks in display order.
func (s *TaskService) List(ctx context.Context, actor domain.Actor) ([]domain.OnboardingTask, error) {
	if _, err := s.authorize(ctx, actor, policy.OpGetAllTasks, companyTarget(actor.CompanyID)); err != nil {
		return nil, err
	}
	tasks, err := s.Store.Tasks().ListActiveTasks(ctx, actor.CompanyID)
	return tasks, translate(err, "tasks")
}

type CreateTaskInput struct {
	Title       string
	Description string
	Type        domain.TaskType
	// Required defaults to true.
	Required *bool
	// OrderSequence defaults to one past the current last task.
	OrderSequence *int
}

func (s *TaskService) Create(ctx context.Context, actor domain.Actor, in CreateTaskInput) (domain.OnboardingTask, error) {
	if _, err := s.authorize(ctx, actor, policy.OpCreateTask, companyTarget(actor.CompanyID)); err != nil {
		return domain.OnboardingTask{}, err
	}

	now := s.now()
	t := domain.OnboardingTask{
		ID:          s.id(),
		CompanyID:   actor.CompanyID,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Type:        in.Type,
		Required:    in.Required == nil || *in.Required,
		IsActive:    true,
		CreatedBy:   actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.OrderSequence != nil {
		t.OrderSequence = *in.OrderSequence
	}
	if err := t.Validate(); err != nil {
		return domain.OnboardingTask{}, err
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if in.OrderSequence == nil {
			next, err := nextOrder(ctx, tx.Tasks(), actor.CompanyID)
			if err != nil {
				return err
			}
			t.OrderSequence = next
		}
		return translate(tx.Tasks().CreateTask(ctx, t), "task")
	})
	if err != nil {
		return domain.OnboardingTask{}, err
	}

	slogx.FromContext(ctx).Info("task created",
		slog.String("task_id", t.ID),
		slog.String("type", string(t.Type)),
		slog.Bool("required", t.Required),
	)
	return t, nil
}

func nextOrder(ctx context.Context, repo store.Tasks, companyID string) (int, error) {
	tasks, err := repo.ListActiveTasks(ctx, companyID)
	if err != nil {
		return 0, translate(err, "tasks")
	}
	next := 0
	for _, t := range tasks {
		if t.OrderSequence >= next {
			next = t.OrderSequence + 1
		}
	}
	return next, nil
}

type UpdateTaskInput struct {
	TaskID        string
	Title         string
	Description   string
	Type          domain.TaskType
	Required      bool
	OrderSequence *int
	IsActive      bool
}

// Update rewrites a task template. Existing assignments keep the title and
// required flag they were created with.
func (s *TaskService) Update(ctx context.Context, actor domain.Actor, in UpdateTaskInput) (domain.OnboardingTask, error) {
	t, err := s.ownedTask(ctx, actor, policy.OpUpdateTask, in.TaskID)
	if err != nil {
		return t, err
	}

	t.Title = strings.TrimSpace(in.Title)
	t.Description = strings.TrimSpace(in.Description)
	t.Type = in.Type
	t.Required = in.Required
	t.IsActive = in.IsActive
	if in.OrderSequence != nil {
		t.OrderSequence = *in.OrderSequence
	}
	if err := t.Validate(); err != nil {
		return domain.OnboardingTask{}, err
	}
	t.UpdatedAt = s.now()

	if err := s.Store.Tasks().UpdateTask(ctx, t); err != nil {
		return domain.OnboardingTask{}, translate(err, "task")
	}
	slogx.FromContext(ctx).Info("task updated", slog.String("task_id", t.ID))
	return t, nil
}

// Delete deactivates the task. Deleting an inactive task is a no-op.
func (s *TaskService) Delete(ctx context.Context, actor domain.Actor, taskID string) (domain.OnboardingTask, error) {
	t, err := s.ownedTask(ctx, actor, policy.OpDeleteTask, taskID)
	if err != nil {
		return t, err
	}
	if !t.IsActive {
		return t, nil
	}

	t.IsActive = false
	t.UpdatedAt = s.now()
	if err := s.Store.Tasks().UpdateTask(ctx, t); err != nil {
		return domain.OnboardingTask{}, translate(err, "task")
	}
	slogx.FromContext(ctx).Info("task deleted",
		slog.String("task_id", t.ID),
		slog.String("deleted_by", actor.ID),
	)
	return t, nil
}

func (s *TaskService) ownedTask(ctx context.Context, actor domain.Actor, op policy.Operation, id string) (domain.OnboardingTask, error) {
	t, err := loadTask(ctx, s.Store.Tasks(), id)
	if err != nil {
		return t, err
	}
	if _, err := s.authorize(ctx, actor, op, companyTarget(t.CompanyID)); err != nil {
		return domain.OnboardingTask{}, err
	}
	return t, nil
}
