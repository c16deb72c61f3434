package ports

import (
	"context"

	"github.com/taskhive/taskhive/internal/core/domain"
)

// CreateTaskInput carries the data for a new task. Status defaults to todo
// and priority to medium when left empty.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
}

// UpdateTaskInput is a field-level patch: only non-nil fields overwrite the
// stored value, everything else is left untouched.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority
}

// ListTasksInput carries the caller identity plus the optional filters.
// An empty UserID with the admin role is an explicit admin-wide listing.
type ListTasksInput struct {
	UserID   string
	Role     string
	Status   string
	Priority string
	Search   string
}

// TaskStats is the dashboard breakdown. Total always equals the sum of the
// three status buckets for a fixed snapshot.
type TaskStats struct {
	Total      int64 `json:"total"`
	Todo       int64 `json:"todo"`
	InProgress int64 `json:"inProgress"`
	Done       int64 `json:"done"`
}

// TaskService defines task use cases. Get, Update and Remove share one
// authorization gate: missing id is NotFound, foreign row for a non-admin
// is Forbidden.
type TaskService interface {
	Create(ctx context.Context, in CreateTaskInput, ownerID string) (*domain.Task, error)
	List(ctx context.Context, in ListTasksInput) ([]*domain.Task, error)
	Get(ctx context.Context, id, userID, role string) (*domain.Task, error)
	Update(ctx context.Context, id string, patch UpdateTaskInput, userID, role string) (*domain.Task, error)
	Remove(ctx context.Context, id, userID, role string) error
	Stats(ctx context.Context, userID, role string) (*TaskStats, error)
}
