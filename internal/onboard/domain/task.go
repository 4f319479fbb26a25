package domain

import (
	"strings"
	"time"
)

type TaskType string

const (
	TaskForm           TaskType = "form"
	TaskDocument       TaskType = "document"
	TaskAcknowledgment TaskType = "acknowledgment"
	TaskTraining       TaskType = "training"
	TaskMeeting        TaskType = "meeting"
)

func (t TaskType) Valid() bool {
	switch t {
	case TaskForm, TaskDocument, TaskAcknowledgment, TaskTraining, TaskMeeting:
		return true
	}
	return false
}

// OnboardingTask is a reusable template scoped to a company. Deleting a task
// only clears IsActive.
type OnboardingTask struct {
	ID            string
	CompanyID     string
	Title         string
	Description   string
	Type          TaskType
	Required      bool
	OrderSequence int
	IsActive      bool
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (t OnboardingTask) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return Validation("title is required")
	}
	if len(t.Title) > 255 {
		return Validation("title must be at most 255 characters")
	}
	if !t.Type.Valid() {
		return Validation("unknown task type %q", t.Type)
	}
	if t.OrderSequence < 0 {
		return Validation("order sequence must not be negative")
	}
	return nil
}
