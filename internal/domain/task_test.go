package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewTask(t *testing.T) {
	t.Parallel() // Enable parallel execution
	userID := uuid.New()
	title := "Buy milk"
	description := "2% from the corner store"

	task, err := NewTask(userID, title, description, TaskPriorityHigh)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if task.UserID != userID {
		t.Errorf("Expected user ID %s, got %s", userID, task.UserID)
	}

	if task.Title != title {
		t.Errorf("Expected title %s, got %s", title, task.Title)
	}

	if task.Status != TaskStatusPending {
		t.Errorf("Expected status %s, got %s", TaskStatusPending, task.Status)
	}

	if task.Priority != TaskPriorityHigh {
		t.Errorf("Expected priority %s, got %s", TaskPriorityHigh, task.Priority)
	}

	if task.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	if task.UpdatedAt.IsZero() {
		t.Error("Expected non-zero UpdatedAt time")
	}
}

func TestNewTaskDefaultsPriority(t *testing.T) {
	t.Parallel()
	task, err := NewTask(uuid.New(), "Title", "Description", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.Priority != TaskPriorityLow {
		t.Errorf("Expected default priority %s, got %s", TaskPriorityLow, task.Priority)
	}
}

func TestNewTaskValidation(t *testing.T) {
	t.Parallel()
	userID := uuid.New()

	_, err := NewTask(uuid.Nil, "Title", "Description", TaskPriorityLow)
	if !errors.Is(err, ErrEmptyTaskUserID) {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskUserID, err)
	}

	_, err = NewTask(userID, "", "Description", TaskPriorityLow)
	if !errors.Is(err, ErrEmptyTaskTitle) {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskTitle, err)
	}

	_, err = NewTask(userID, "Title", "", TaskPriorityLow)
	if !errors.Is(err, ErrEmptyTaskDescription) {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskDescription, err)
	}

	_, err = NewTask(userID, "Title", "Description", "urgent")
	if !errors.Is(err, ErrInvalidTaskPriority) {
		t.Errorf("Expected error %v, got %v", ErrInvalidTaskPriority, err)
	}
}

func TestTaskInputErrorsWrapValidation(t *testing.T) {
	t.Parallel()
	inputErrs := []error{
		ErrEmptyTaskTitle,
		ErrEmptyTaskDescription,
		ErrInvalidTaskStatus,
		ErrInvalidTaskPriority,
	}
	for _, err := range inputErrs {
		if !errors.Is(err, ErrValidation) {
			t.Errorf("Expected %v to wrap ErrValidation", err)
		}
	}

	// Empty IDs are internal invariants, not client input errors
	if errors.Is(ErrEmptyTaskID, ErrValidation) {
		t.Error("Expected ErrEmptyTaskID to stay outside ErrValidation")
	}
}

func TestTaskValidate(t *testing.T) {
	t.Parallel()
	validTask := Task{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Title:       "Test task",
		Description: "Test description",
		Status:      TaskStatusPending,
		Priority:    TaskPriorityMedium,
	}

	if err := validTask.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalidTask := validTask
	invalidTask.ID = uuid.Nil
	if err := invalidTask.Validate(); !errors.Is(err, ErrEmptyTaskID) {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskID, err)
	}

	invalidTask = validTask
	invalidTask.Status = "archived"
	if err := invalidTask.Validate(); !errors.Is(err, ErrInvalidTaskStatus) {
		t.Errorf("Expected error %v, got %v", ErrInvalidTaskStatus, err)
	}

	invalidTask = validTask
	invalidTask.Priority = "urgent"
	if err := invalidTask.Validate(); !errors.Is(err, ErrInvalidTaskPriority) {
		t.Errorf("Expected error %v, got %v", ErrInvalidTaskPriority, err)
	}
}

func TestTaskUpdateStatus(t *testing.T) {
	t.Parallel()
	task, err := NewTask(uuid.New(), "Title", "Description", TaskPriorityLow)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	originalUpdatedAt := task.UpdatedAt

	if err := task.UpdateStatus(TaskStatusDone); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	if task.Status != TaskStatusDone {
		t.Errorf("Expected status %s, got %s", TaskStatusDone, task.Status)
	}

	if task.UpdatedAt.Before(originalUpdatedAt) {
		t.Error("Expected UpdatedAt to be refreshed")
	}

	// Invalid status leaves the task unchanged
	if err := task.UpdateStatus("archived"); !errors.Is(err, ErrInvalidTaskStatus) {
		t.Errorf("Expected error %v, got %v", ErrInvalidTaskStatus, err)
	}

	if task.Status != TaskStatusDone {
		t.Errorf("Expected status to remain %s, got %s", TaskStatusDone, task.Status)
	}
}

func TestTaskUpdatePriority(t *testing.T) {
	t.Parallel()
	task, err := NewTask(uuid.New(), "Title", "Description", TaskPriorityLow)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := task.UpdatePriority(TaskPriorityHigh); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	if task.Priority != TaskPriorityHigh {
		t.Errorf("Expected priority %s, got %s", TaskPriorityHigh, task.Priority)
	}

	if err := task.UpdatePriority("urgent"); !errors.Is(err, ErrInvalidTaskPriority) {
		t.Errorf("Expected error %v, got %v", ErrInvalidTaskPriority, err)
	}
}

func TestTaskUpdateTitleAndDescription(t *testing.T) {
	t.Parallel()
	task, err := NewTask(uuid.New(), "Title", "Description", TaskPriorityLow)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := task.UpdateTitle("New title"); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if task.Title != "New title" {
		t.Errorf("Expected title %q, got %q", "New title", task.Title)
	}

	if err := task.UpdateTitle("  "); !errors.Is(err, ErrEmptyTaskTitle) {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskTitle, err)
	}

	if err := task.UpdateDescription("New description"); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if task.Description != "New description" {
		t.Errorf("Expected description %q, got %q", "New description", task.Description)
	}

	if err := task.UpdateDescription(""); !errors.Is(err, ErrEmptyTaskDescription) {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskDescription, err)
	}
}
