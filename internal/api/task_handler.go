package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/redact"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// TaskHandler handles task-related HTTP requests. Every operation is scoped
// to the authenticated owner: a task ID belonging to another user behaves
// exactly like a missing one.
type TaskHandler struct {
	taskStore store.TaskStore
	validator *validator.Validate
	logger    *slog.Logger
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskStore store.TaskStore, log *slog.Logger) *TaskHandler {
	if log == nil {
		log = slog.Default()
	}
	return &TaskHandler{
		taskStore: taskStore,
		validator: validator.New(),
		logger:    log.With(slog.String("component", "task_handler")),
	}
}

// CreateTask handles POST /api/tasks requests. New tasks always start
// pending regardless of what the client sends; priority defaults to low.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	// Extract identity from context (set by auth middleware)
	identity, ok := getIdentityFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	// Parse request body
	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Validate request
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	// Build domain task; the constructor forces the pending status
	task, err := domain.NewTask(
		identity.UserID,
		req.Title,
		req.Description,
		domain.TaskPriority(req.Priority),
	)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	// Store task
	if err := h.taskStore.Create(r.Context(), task); err != nil {
		log.Error("failed to create task",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", identity.UserID.String()))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewTaskResponse(task))
}

// ListTasks handles GET /api/tasks requests. Only the caller's own tasks are
// returned, highest priority first and newest first within a priority.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	identity, ok := getIdentityFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	tasks, err := h.taskStore.ListByOwner(r.Context(), identity.UserID)
	if err != nil {
		log.Error("failed to list tasks",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", identity.UserID.String()))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskListResponse(tasks))
}

// UpdateTask handles PUT /api/tasks/{id} requests. Absent fields keep their
// current values; ownership is checked before anything is written.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	identity, taskID, ok := handleIdentityAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	// Parse request body
	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Validate request
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	// Fetch the task scoped to its owner
	task, err := h.taskStore.GetForOwner(r.Context(), taskID, identity.UserID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	// Apply the requested changes through the domain mutators
	if req.Title != nil {
		if err := task.UpdateTitle(*req.Title); err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
	}
	if req.Description != nil {
		if err := task.UpdateDescription(*req.Description); err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
	}
	if req.Status != nil {
		if err := task.UpdateStatus(domain.TaskStatus(*req.Status)); err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
	}
	if req.Priority != nil {
		if err := task.UpdatePriority(domain.TaskPriority(*req.Priority)); err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
	}

	// Persist, still scoped to the owner
	if err := h.taskStore.Update(r.Context(), task); err != nil {
		if MapErrorToStatusCode(err) == http.StatusInternalServerError {
			log.Error("failed to update task",
				slog.String("error", redact.Error(err)),
				slog.String("task_id", taskID.String()),
				slog.String("user_id", identity.UserID.String()))
		}
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskResponse(task))
}

// DeleteTask handles DELETE /api/tasks/{id} requests.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	identity, taskID, ok := handleIdentityAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	if err := h.taskStore.Delete(r.Context(), taskID, identity.UserID); err != nil {
		if MapErrorToStatusCode(err) == http.StatusInternalServerError {
			log.Error("failed to delete task",
				slog.String("error", redact.Error(err)),
				slog.String("task_id", taskID.String()),
				slog.String("user_id", identity.UserID.String()))
		}
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResponse{
		Message: "Task deleted successfully",
	})
}
