package service

import (
	"context"

	"agenda/internal/core/domain"
)

func (s *TaskService) ListSubtasks(ctx context.Context, taskID int64) ([]domain.Subtask, error) {
	return s.subtaskRepository.ListSubtasks(ctx, taskID)
}

// CreateSubtask does not check that taskID refers to an existing task.
func (s *TaskService) CreateSubtask(ctx context.Context, taskID int64, title string) (int64, error) {
	if title == "" {
		return 0, domain.ErrSubtaskTitleRequired
	}
	return s.subtaskRepository.CreateSubtask(ctx, taskID, title)
}

func (s *TaskService) ToggleSubtask(ctx context.Context, id int64, completed bool) error {
	return s.subtaskRepository.SetSubtaskCompleted(ctx, id, completed)
}

func (s *TaskService) DeleteSubtask(ctx context.Context, id int64) error {
	return s.subtaskRepository.DeleteSubtask(ctx, id)
}
