package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskhive/taskhive/internal/core/domain"
	"github.com/taskhive/taskhive/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService backed by the given repository.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Record persists one audit entry. Called from dispatcher workers, so a
// failure is reported to the worker, never to the originating request.
func (s *activityService) Record(ctx context.Context, in ports.ActivityInput) error {
	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	entry := &domain.Activity{
		TaskID:    in.TaskID,
		Action:    in.Action,
		ActorID:   in.ActorID,
		Detail:    in.Detail,
		Timestamp: ts,
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}

	s.log.Debug().
		Str("task_id", in.TaskID).
		Str("action", string(in.Action)).
		Msg("activity recorded")
	return nil
}

func (s *activityService) ListForTask(ctx context.Context, taskID string) ([]*domain.Activity, error) {
	return s.repo.FindByTask(ctx, taskID)
}
