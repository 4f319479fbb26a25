package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

type AssignmentStatus string

const (
	AssignmentPending    AssignmentStatus = "pending"
	AssignmentInProgress AssignmentStatus = "in_progress"
	AssignmentCompleted  AssignmentStatus = "completed"
	AssignmentSkipped    AssignmentStatus = "skipped"

	// AssignmentOverdue is never stored. See TaskAssignment.EffectiveStatus.
	AssignmentOverdue AssignmentStatus = "overdue"
)

func (s AssignmentStatus) Valid() bool {
	switch s {
	case AssignmentPending, AssignmentInProgress, AssignmentCompleted, AssignmentSkipped:
		return true
	}
	return false
}

// Closed reports whether no further transitions are possible.
func (s AssignmentStatus) Closed() bool {
	return s == AssignmentCompleted || s == AssignmentSkipped
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// TaskAssignment binds one employee to one task. TaskTitle and Required are
// copied from the task when the assignment is created so later template edits
// never rewrite history.
type TaskAssignment struct {
	ID             string
	CompanyID      string
	EmployeeID     string
	TaskID         string
	TaskTitle      string
	TaskType       TaskType
	Required       bool
	Status         AssignmentStatus
	Priority       Priority
	DueDate        *time.Time
	AssignedAt     time.Time
	StartedAt      *time.Time
	CompletedAt    *time.Time
	Notes          string
	CompletionData json.RawMessage
	AssignedBy     string
}

// NewAssignment builds a pending assignment of task to employee.
func NewAssignment(id string, employee EmployeeProfile, task OnboardingTask, assignedBy string, priority Priority, due *time.Time, now time.Time) TaskAssignment {
	if priority == "" {
		priority = PriorityMedium
	}
	return TaskAssignment{
		ID:         id,
		CompanyID:  employee.CompanyID,
		EmployeeID: employee.ID,
		TaskID:     task.ID,
		TaskTitle:  task.Title,
		TaskType:   task.Type,
		Required:   task.Required,
		Status:     AssignmentPending,
		Priority:   priority,
		DueDate:    due,
		AssignedAt: now,
		AssignedBy: assignedBy,
	}
}

// EffectiveStatus returns overdue for an open assignment past its due date.
func (a TaskAssignment) EffectiveStatus(now time.Time) AssignmentStatus {
	if !a.Status.Closed() && a.DueDate != nil && a.DueDate.Before(now) {
		return AssignmentOverdue
	}
	return a.Status
}

// Start moves a pending assignment to in_progress.
func (a *TaskAssignment) Start(now time.Time) error {
	if a.Status != AssignmentPending {
		return InvalidTransition("assignment cannot be started from %s", a.Status)
	}
	a.Status = AssignmentInProgress
	a.StartedAt = &now
	return nil
}

// Complete closes a pending or in_progress assignment. Completing an already
// completed assignment is a no-op and reports false, the first payload wins.
func (a *TaskAssignment) Complete(now time.Time, notes string, data json.RawMessage) (bool, error) {
	switch a.Status {
	case AssignmentCompleted:
		return false, nil
	case AssignmentPending, AssignmentInProgress:
	default:
		return false, InvalidTransition("assignment cannot be completed from %s", a.Status)
	}

	// A JSON null is the same as no data.
	if t := bytes.TrimSpace(data); bytes.Equal(t, []byte("null")) {
		data = nil
	}
	if len(data) > 0 {
		var obj map[string]any
		if err := json.Unmarshal(data, &obj); err != nil {
			return false, Validation("completion data must be a JSON object")
		}
	}

	a.Status = AssignmentCompleted
	a.CompletedAt = &now
	a.Notes = notes
	a.CompletionData = data
	return true, nil
}

// Skip closes an optional assignment without completing it. Required
// assignments can never be skipped.
func (a *TaskAssignment) Skip(notes string) error {
	if a.Required {
		return InvalidTransition("required assignments cannot be skipped")
	}
	if a.Status != AssignmentPending && a.Status != AssignmentInProgress {
		return InvalidTransition("assignment cannot be skipped from %s", a.Status)
	}
	a.Status = AssignmentSkipped
	if notes != "" {
		a.Notes = notes
	}
	return nil
}
