package services

import (
	"context"

	"github.com/cyberme/apiserver/types"
	"github.com/google/uuid"
)

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	Create(ctx context.Context, title string, priority *string) (types.TaskItem, error)
	Toggle(ctx context.Context, id uuid.UUID) error
	CountPending(ctx context.Context) (int64, error)
	Recent(ctx context.Context, limit int) ([]types.TaskItem, error)
}

// TaskService encapsulates task use-cases.
type TaskService struct {
	repo TaskRepository
}

func NewTaskService(repo TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) Create(ctx context.Context, title string, priority *string) (types.TaskItem, error) {
	return s.repo.Create(ctx, title, priority)
}

// Toggle flips the done state of a task. Applying it twice restores the
// original state.
func (s *TaskService) Toggle(ctx context.Context, id uuid.UUID) error {
	return s.repo.Toggle(ctx, id)
}

func (s *TaskService) CountPending(ctx context.Context) (int64, error) {
	return s.repo.CountPending(ctx)
}

func (s *TaskService) Recent(ctx context.Context, limit int) ([]types.TaskItem, error) {
	if limit < 1 {
		limit = 1
	}
	return s.repo.Recent(ctx, limit)
}
