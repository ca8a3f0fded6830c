package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents where a task sits in its workflow.
type TaskStatus string

// Possible task status values
const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// TaskPriority represents the urgency assigned to a task.
type TaskPriority string

// Possible task priority values
const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Common validation errors for Task. The input-derived sentinels wrap
// ErrValidation so the API layer maps them to a client error; the ID
// sentinels stay bare because an empty ID is a programming error, not
// bad input.
var (
	ErrEmptyTaskID          = errors.New("task ID cannot be empty")
	ErrEmptyTaskUserID      = errors.New("task user ID cannot be empty")
	ErrEmptyTaskTitle       = fmt.Errorf("%w: task title cannot be empty", ErrValidation)
	ErrEmptyTaskDescription = fmt.Errorf("%w: task description cannot be empty", ErrValidation)
	ErrInvalidTaskStatus    = fmt.Errorf("%w: invalid task status", ErrValidation)
	ErrInvalidTaskPriority  = fmt.Errorf("%w: invalid task priority", ErrValidation)
)

// Task represents a unit of work owned by exactly one user. The owning
// user is fixed at creation and never reassigned.
type Task struct {
	ID          uuid.UUID    `json:"id"`
	UserID      uuid.UUID    `json:"user_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// NewTask creates a new Task owned by the given user. It generates a new
// UUID for the task ID and sets the creation/update timestamps.
//
// The status is always pending regardless of caller input; priority
// defaults to low when empty. Returns an error if validation fails.
func NewTask(userID uuid.UUID, title, description string, priority TaskPriority) (*Task, error) {
	if priority == "" {
		priority = TaskPriorityLow
	}

	task := &Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Status:      TaskStatusPending,
		Priority:    priority,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}

	if t.UserID == uuid.Nil {
		return ErrEmptyTaskUserID
	}

	if t.Title == "" {
		return ErrEmptyTaskTitle
	}

	if t.Description == "" {
		return ErrEmptyTaskDescription
	}

	if !IsValidTaskStatus(t.Status) {
		return ErrInvalidTaskStatus
	}

	if !IsValidTaskPriority(t.Priority) {
		return ErrInvalidTaskPriority
	}

	return nil
}

// UpdateTitle replaces the task's title and refreshes the UpdatedAt
// timestamp. Returns an error if the new title is empty.
func (t *Task) UpdateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTaskTitle
	}

	t.Title = title
	t.UpdatedAt = time.Now().UTC()
	return nil
}

// UpdateDescription replaces the task's description and refreshes the
// UpdatedAt timestamp. Returns an error if the new description is empty.
func (t *Task) UpdateDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return ErrEmptyTaskDescription
	}

	t.Description = description
	t.UpdatedAt = time.Now().UTC()
	return nil
}

// UpdateStatus moves the task to a new workflow state and refreshes the
// UpdatedAt timestamp. Returns an error if the new status is invalid.
func (t *Task) UpdateStatus(status TaskStatus) error {
	if !IsValidTaskStatus(status) {
		return ErrInvalidTaskStatus
	}

	t.Status = status
	t.UpdatedAt = time.Now().UTC()
	return nil
}

// UpdatePriority changes the task's priority and refreshes the UpdatedAt
// timestamp. Returns an error if the new priority is invalid.
func (t *Task) UpdatePriority(priority TaskPriority) error {
	if !IsValidTaskPriority(priority) {
		return ErrInvalidTaskPriority
	}

	t.Priority = priority
	t.UpdatedAt = time.Now().UTC()
	return nil
}

// IsValidTaskStatus checks if the given status is a valid TaskStatus.
func IsValidTaskStatus(status TaskStatus) bool {
	switch status {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusDone:
		return true
	default:
		return false
	}
}

// IsValidTaskPriority checks if the given priority is a valid TaskPriority.
func IsValidTaskPriority(priority TaskPriority) bool {
	switch priority {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	default:
		return false
	}
}
