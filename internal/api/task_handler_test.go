package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authenticatedRequest(method, target string, body []byte, identity shared.Identity) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewBuffer(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if identity.UserID != uuid.Nil {
		req = req.WithContext(shared.WithIdentity(req.Context(), identity))
	}
	return req
}

func withPathID(req *http.Request, id string) *http.Request {
	// Use chi router to get URL parameters
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func newOwnedTask(t *testing.T, ownerID uuid.UUID, title string, priority domain.TaskPriority) *domain.Task {
	t.Helper()
	task, err := domain.NewTask(ownerID, title, "some description", priority)
	require.NoError(t, err)
	return task
}

func TestCreateTask(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	identity := shared.Identity{UserID: ownerID, Email: "ana@example.com", Name: "Ana"}

	tests := []struct {
		name         string
		payload      map[string]interface{}
		identity     shared.Identity
		wantStatus   int
		wantPriority string
	}{
		{
			name: "valid task with explicit priority",
			payload: map[string]interface{}{
				"title":       "Write report",
				"description": "Quarterly numbers",
				"priority":    "high",
			},
			identity:     identity,
			wantStatus:   http.StatusCreated,
			wantPriority: "high",
		},
		{
			name: "priority defaults to low",
			payload: map[string]interface{}{
				"title":       "Water plants",
				"description": "Kitchen and balcony",
			},
			identity:     identity,
			wantStatus:   http.StatusCreated,
			wantPriority: "low",
		},
		{
			name: "invalid priority",
			payload: map[string]interface{}{
				"title":       "Write report",
				"description": "Quarterly numbers",
				"priority":    "urgent",
			},
			identity:   identity,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing title",
			payload: map[string]interface{}{
				"description": "Quarterly numbers",
			},
			identity:   identity,
			wantStatus: http.StatusBadRequest,
		},
		{
			// Passes the required tag but trims to nothing
			name: "whitespace-only title",
			payload: map[string]interface{}{
				"title":       "   ",
				"description": "Quarterly numbers",
			},
			identity:   identity,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing description",
			payload: map[string]interface{}{
				"title": "Write report",
			},
			identity:   identity,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unauthenticated",
			payload: map[string]interface{}{
				"title":       "Write report",
				"description": "Quarterly numbers",
			},
			identity:   shared.Identity{},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taskStore := mocks.NewMockTaskStore()
			handler := NewTaskHandler(taskStore, nil)

			payloadBytes, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			req := authenticatedRequest("POST", "/api/tasks", payloadBytes, tt.identity)
			recorder := httptest.NewRecorder()

			handler.CreateTask(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusCreated {
				var resp TaskResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.NotEqual(t, uuid.Nil, resp.ID)
				// New tasks always start pending
				assert.Equal(t, "pending", resp.Status)
				assert.Equal(t, tt.wantPriority, resp.Priority)
			}
		})
	}
}

func TestCreateTaskIgnoresClientStatus(t *testing.T) {
	t.Parallel()

	taskStore := mocks.NewMockTaskStore()
	handler := NewTaskHandler(taskStore, nil)
	identity := shared.Identity{UserID: uuid.New()}

	// A status field in the payload is silently ignored
	payload := []byte(`{"title":"Sneaky","description":"pre-done","status":"done"}`)
	req := authenticatedRequest("POST", "/api/tasks", payload, identity)
	recorder := httptest.NewRecorder()

	handler.CreateTask(recorder, req)

	require.Equal(t, http.StatusCreated, recorder.Code)
	var resp TaskResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "pending", resp.Status)
}

func TestCreateTaskWhitespaceTitleMessage(t *testing.T) {
	t.Parallel()

	taskStore := mocks.NewMockTaskStore()
	handler := NewTaskHandler(taskStore, nil)
	identity := shared.Identity{UserID: uuid.New()}

	payload := []byte(`{"title":"   ","description":"still valid"}`)
	req := authenticatedRequest("POST", "/api/tasks", payload, identity)
	recorder := httptest.NewRecorder()

	handler.CreateTask(recorder, req)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Task title cannot be empty")
}

func TestListTasks(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	otherID := uuid.New()
	identity := shared.Identity{UserID: ownerID}

	taskStore := mocks.NewMockTaskStore()

	low := newOwnedTask(t, ownerID, "low priority", domain.TaskPriorityLow)
	low.CreatedAt = time.Now().UTC().Add(-3 * time.Hour)
	high := newOwnedTask(t, ownerID, "high priority", domain.TaskPriorityHigh)
	high.CreatedAt = time.Now().UTC().Add(-2 * time.Hour)
	highNewer := newOwnedTask(t, ownerID, "high priority newer", domain.TaskPriorityHigh)
	highNewer.CreatedAt = time.Now().UTC().Add(-1 * time.Hour)
	foreign := newOwnedTask(t, otherID, "someone else's", domain.TaskPriorityHigh)

	for _, task := range []*domain.Task{low, high, highNewer, foreign} {
		taskStore.Tasks[task.ID] = task
	}

	handler := NewTaskHandler(taskStore, nil)
	req := authenticatedRequest("GET", "/api/tasks", nil, identity)
	recorder := httptest.NewRecorder()

	handler.ListTasks(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp []TaskResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	require.Len(t, resp, 3)

	// Highest priority first, newest first within a priority
	assert.Equal(t, "high priority newer", resp[0].Title)
	assert.Equal(t, "high priority", resp[1].Title)
	assert.Equal(t, "low priority", resp[2].Title)
}

func TestListTasksEmpty(t *testing.T) {
	t.Parallel()

	taskStore := mocks.NewMockTaskStore()
	handler := NewTaskHandler(taskStore, nil)
	req := authenticatedRequest("GET", "/api/tasks", nil, shared.Identity{UserID: uuid.New()})
	recorder := httptest.NewRecorder()

	handler.ListTasks(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	// Empty list, not null
	assert.JSONEq(t, "[]", recorder.Body.String())
}

func TestUpdateTask(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	otherID := uuid.New()
	identity := shared.Identity{UserID: ownerID}

	strPtr := func(s string) *string { return &s }

	tests := []struct {
		name       string
		taskOwner  uuid.UUID
		pathID     func(taskID uuid.UUID) string
		payload    UpdateTaskRequest
		wantStatus int
		check      func(t *testing.T, resp TaskResponse)
	}{
		{
			name:      "update status",
			taskOwner: ownerID,
			payload:   UpdateTaskRequest{Status: strPtr("in_progress")},
			pathID:    func(id uuid.UUID) string { return id.String() },

			wantStatus: http.StatusOK,
			check: func(t *testing.T, resp TaskResponse) {
				assert.Equal(t, "in_progress", resp.Status)
			},
		},
		{
			name:       "partial update keeps other fields",
			taskOwner:  ownerID,
			payload:    UpdateTaskRequest{Title: strPtr("New title")},
			pathID:     func(id uuid.UUID) string { return id.String() },
			wantStatus: http.StatusOK,
			check: func(t *testing.T, resp TaskResponse) {
				assert.Equal(t, "New title", resp.Title)
				assert.Equal(t, "some description", resp.Description)
				assert.Equal(t, "pending", resp.Status)
			},
		},
		{
			name:       "whitespace-only title",
			taskOwner:  ownerID,
			payload:    UpdateTaskRequest{Title: strPtr("   ")},
			pathID:     func(id uuid.UUID) string { return id.String() },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid status value",
			taskOwner:  ownerID,
			payload:    UpdateTaskRequest{Status: strPtr("archived")},
			pathID:     func(id uuid.UUID) string { return id.String() },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "task owned by another user",
			taskOwner:  otherID,
			payload:    UpdateTaskRequest{Status: strPtr("done")},
			pathID:     func(id uuid.UUID) string { return id.String() },
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "nonexistent task",
			taskOwner:  ownerID,
			payload:    UpdateTaskRequest{Status: strPtr("done")},
			pathID:     func(uuid.UUID) string { return uuid.New().String() },
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "malformed task id",
			taskOwner:  ownerID,
			payload:    UpdateTaskRequest{Status: strPtr("done")},
			pathID:     func(uuid.UUID) string { return "not-a-uuid" },
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taskStore := mocks.NewMockTaskStore()
			task := newOwnedTask(t, tt.taskOwner, "Original title", domain.TaskPriorityMedium)
			taskStore.Tasks[task.ID] = task

			handler := NewTaskHandler(taskStore, nil)

			payloadBytes, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			req := authenticatedRequest("PUT", "/api/tasks/"+task.ID.String(), payloadBytes, identity)
			req = withPathID(req, tt.pathID(task.ID))
			recorder := httptest.NewRecorder()

			handler.UpdateTask(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.check != nil && recorder.Code == http.StatusOK {
				var resp TaskResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				tt.check(t, resp)
			}
		})
	}
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	otherID := uuid.New()
	identity := shared.Identity{UserID: ownerID}

	tests := []struct {
		name       string
		taskOwner  uuid.UUID
		pathID     func(taskID uuid.UUID) string
		wantStatus int
	}{
		{
			name:       "delete own task",
			taskOwner:  ownerID,
			pathID:     func(id uuid.UUID) string { return id.String() },
			wantStatus: http.StatusOK,
		},
		{
			name:       "task owned by another user",
			taskOwner:  otherID,
			pathID:     func(id uuid.UUID) string { return id.String() },
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "nonexistent task",
			taskOwner:  ownerID,
			pathID:     func(uuid.UUID) string { return uuid.New().String() },
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "malformed task id",
			taskOwner:  ownerID,
			pathID:     func(uuid.UUID) string { return "not-a-uuid" },
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taskStore := mocks.NewMockTaskStore()
			task := newOwnedTask(t, tt.taskOwner, "Doomed task", domain.TaskPriorityLow)
			taskStore.Tasks[task.ID] = task

			handler := NewTaskHandler(taskStore, nil)

			req := authenticatedRequest("DELETE", "/api/tasks/"+task.ID.String(), nil, identity)
			req = withPathID(req, tt.pathID(task.ID))
			recorder := httptest.NewRecorder()

			handler.DeleteTask(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, recorder.Body.String(), "Task deleted successfully")
				// The task is gone from the store
				_, exists := taskStore.Tasks[task.ID]
				assert.False(t, exists)
			} else if tt.name == "task owned by another user" {
				// A foreign task is untouched
				_, exists := taskStore.Tasks[task.ID]
				assert.True(t, exists)
			}
		})
	}
}
