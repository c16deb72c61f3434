package ports

import (
	"context"
	"time"

	"github.com/taskhive/taskhive/internal/core/domain"
)

// ActivityInput is the DTO handed to the dispatcher after a task mutation.
type ActivityInput struct {
	TaskID    string
	Action    domain.ActivityAction
	ActorID   string
	Detail    string
	Timestamp time.Time
}

// ActivityPublisher enqueues activity entries for asynchronous recording.
// Implemented by the queue dispatcher; publishing never blocks the request
// beyond channel buffering.
type ActivityPublisher interface {
	Publish(in ActivityInput)
}

// ActivityRepository persists the task audit trail.
type ActivityRepository interface {
	Insert(ctx context.Context, a *domain.Activity) error
	// FindByTask returns a task's entries, newest first.
	FindByTask(ctx context.Context, taskID string) ([]*domain.Activity, error)
}

// ActivityService processes queued activity entries and serves the trail.
type ActivityService interface {
	Record(ctx context.Context, in ActivityInput) error
	ListForTask(ctx context.Context, taskID string) ([]*domain.Activity, error)
}
