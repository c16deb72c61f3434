package ports

import (
	"context"

	"github.com/taskhive/taskhive/internal/core/domain"
)

// ListTasksFilter carries the effective query filter for listing tasks.
// OwnerID is set by the service layer per the authorization policy: empty
// means unrestricted (admin or an explicit admin-wide listing).
type ListTasksFilter struct {
	OwnerID  string
	Status   string // optional: equality on status
	Priority string // optional: equality on priority
	// Search switches the query to a case-sensitive substring match on the
	// title. The ownership/status/priority constraints still apply, but the
	// search and non-search paths are separate query branches.
	Search string
}

// TaskRepository defines persistence operations for tasks. List results are
// ordered by created_at descending with id as a stable tiebreak.
type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) error
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, filter ListTasksFilter) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
	// Count returns the number of tasks in scope. ownerID "" counts all
	// owners, status "" counts all statuses.
	Count(ctx context.Context, ownerID string, status domain.TaskStatus) (int64, error)
}
