package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/taskhive/taskhive/internal/core/domain"
	"github.com/taskhive/taskhive/internal/core/ports"
)

// allOwnersScope is the stats cache key for admin-wide statistics.
const allOwnersScope = "all"

// StatsCache abstracts the short-TTL statistics cache (Redis). Get returns
// (nil, nil) on a miss. Cache failures degrade to recomputation, they never
// fail the request.
type StatsCache interface {
	Get(ctx context.Context, scope string) (*ports.TaskStats, error)
	Set(ctx context.Context, scope string, stats *ports.TaskStats) error
	Invalidate(ctx context.Context, scopes ...string) error
}

// TaskService implements the task authorization policy and CRUD use cases.
type TaskService struct {
	repo     ports.TaskRepository
	cache    StatsCache
	activity ports.ActivityPublisher
	log      zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, cache StatsCache, activity ports.ActivityPublisher, log zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, cache: cache, activity: activity, log: log}
}

// Create stores a new task owned by ownerID. Status defaults to todo and
// priority to medium.
func (s *TaskService) Create(ctx context.Context, in ports.CreateTaskInput, ownerID string) (*domain.Task, error) {
	status := in.Status
	if status == "" {
		status = domain.StatusTodo
	}
	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	now := time.Now().UTC()
	task := &domain.Task{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
		Priority:    priority,
		UserID:      ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		s.log.Error().Err(err).Msg("failed to create task")
		return nil, err
	}

	s.publish(task.ID, domain.ActivityCreated, ownerID, "")
	s.invalidateStats(ctx, task.UserID)

	s.log.Info().Str("task_id", task.ID).Str("user_id", ownerID).Msg("task created")
	return task, nil
}

// List returns tasks visible to the caller. A non-admin with a user id is
// restricted to rows it owns; an admin, or a call made without a requesting
// id (the admin-wide listing), is unrestricted.
func (s *TaskService) List(ctx context.Context, in ports.ListTasksInput) ([]*domain.Task, error) {
	filter := ports.ListTasksFilter{
		Status:   in.Status,
		Priority: in.Priority,
		Search:   in.Search,
	}
	if in.Role != domain.RoleAdmin && in.UserID != "" {
		filter.OwnerID = in.UserID
	}
	return s.repo.List(ctx, filter)
}

// Get is the shared authorization gate: a missing id is ErrTaskNotFound, a
// foreign row for a non-admin is ErrForbidden.
func (s *TaskService) Get(ctx context.Context, id, userID, role string) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !task.AccessibleBy(userID, role) {
		return nil, domain.ErrForbidden
	}
	return task, nil
}

// Update authorizes via Get, then merges only the fields present in the
// patch onto the stored record and persists. Concurrent updates race at the
// storage layer; last write wins.
func (s *TaskService) Update(ctx context.Context, id string, patch ports.UpdateTaskInput, userID, role string) (*domain.Task, error) {
	task, err := s.Get(ctx, id, userID, role)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		// No transition graph: any of the three statuses is accepted.
		task.Status = *patch.Status
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}

	s.publish(task.ID, domain.ActivityUpdated, userID, string(task.Status))
	s.invalidateStats(ctx, task.UserID)
	return task, nil
}

// Remove authorizes via Get, then deletes.
func (s *TaskService) Remove(ctx context.Context, id, userID, role string) error {
	task, err := s.Get(ctx, id, userID, role)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, task.ID); err != nil {
		return err
	}

	s.publish(task.ID, domain.ActivityDeleted, userID, "")
	s.invalidateStats(ctx, task.UserID)
	return nil
}

// Stats returns the status breakdown under the caller's ownership scope.
// The four counts are independent read-only queries and run concurrently.
func (s *TaskService) Stats(ctx context.Context, userID, role string) (*ports.TaskStats, error) {
	scope := userID
	ownerID := userID
	if role == domain.RoleAdmin {
		scope = allOwnersScope
		ownerID = ""
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, scope)
		if err != nil {
			s.log.Warn().Err(err).Msg("stats cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	var stats ports.TaskStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.Total, err = s.repo.Count(gctx, ownerID, "")
		return err
	})
	g.Go(func() (err error) {
		stats.Todo, err = s.repo.Count(gctx, ownerID, domain.StatusTodo)
		return err
	})
	g.Go(func() (err error) {
		stats.InProgress, err = s.repo.Count(gctx, ownerID, domain.StatusInProgress)
		return err
	})
	g.Go(func() (err error) {
		stats.Done, err = s.repo.Count(gctx, ownerID, domain.StatusDone)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, scope, &stats); err != nil {
			s.log.Warn().Err(err).Msg("stats cache write failed")
		}
	}
	return &stats, nil
}

func (s *TaskService) publish(taskID string, action domain.ActivityAction, actorID, detail string) {
	if s.activity == nil {
		return
	}
	s.activity.Publish(ports.ActivityInput{
		TaskID:    taskID,
		Action:    action,
		ActorID:   actorID,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	})
}

func (s *TaskService) invalidateStats(ctx context.Context, ownerID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, ownerID, allOwnersScope); err != nil {
		s.log.Warn().Err(err).Msg("stats cache invalidation failed")
	}
}
