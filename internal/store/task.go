package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/taskboard-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
// Every read and write is scoped to an owning user; no method exposes
// another user's tasks.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// ListByOwner retrieves all tasks owned by the given user, ordered by
	// priority (high first) and then by creation time (newest first).
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error)

	// GetForOwner retrieves the task with the given ID if and only if it is
	// owned by ownerID. Returns ErrTaskNotFound otherwise, whether the task
	// does not exist or belongs to a different user; the two cases are
	// indistinguishable to the caller.
	GetForOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Task, error)

	// Update persists changes to an existing task. The task's owner is never
	// changed; the WHERE clause is scoped to both ID and owner.
	// Returns ErrTaskNotFound if no owned task matches.
	Update(ctx context.Context, task *domain.Task) error

	// Delete permanently removes the task with the given ID if it is owned
	// by ownerID. Returns ErrTaskNotFound if no owned task matches.
	Delete(ctx context.Context, id, ownerID uuid.UUID) error

	// WithTx returns a new TaskStore instance that uses the provided transaction.
	// The transaction should be created and managed by the caller.
	WithTx(tx *sql.Tx) TaskStore
}
