package ports

import (
	"context"
	"time"

	"agenda/internal/core/domain"
)

type TaskRepository interface {
	CreateTask(ctx context.Context, task domain.Task) (int64, error)
	GetTask(ctx context.Context, id int64) (domain.Task, error)
	UpdateTask(ctx context.Context, id int64, patch domain.TaskPatch) error
	ShareTask(ctx context.Context, id int64, sharedWith string) error
	ReorderTasks(ctx context.Context, positions []domain.TaskPosition) error
	ListTasks(ctx context.Context, query domain.TaskQuery) ([]domain.Task, error)
	ListOpenTasksDueOn(ctx context.Context, day time.Time) ([]domain.Task, error)
	ListOpenTasksDueBefore(ctx context.Context, day time.Time) ([]domain.Task, error)
	ListOpenTasksDueBetween(ctx context.Context, after, until time.Time) ([]domain.Task, error)
	CountTasks(ctx context.Context) (int64, error)
}

type SubtaskRepository interface {
	ListSubtasks(ctx context.Context, taskID int64) ([]domain.Subtask, error)
	CreateSubtask(ctx context.Context, taskID int64, title string) (int64, error)
	SetSubtaskCompleted(ctx context.Context, id int64, completed bool) error
	DeleteSubtask(ctx context.Context, id int64) error
}

type TaskService interface {
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (int64, error)
	GetTask(ctx context.Context, id int64) (domain.Task, error)
	UpdateTask(ctx context.Context, id int64, input domain.UpdateTaskInput) error
	ShareTask(ctx context.Context, id int64, sharedWith string) error
	ReorderTasks(ctx context.Context, positions []domain.TaskPosition) error
	ListAllTasks(ctx context.Context, query domain.TaskQuery) ([]domain.Task, error)
	GetDashboard(ctx context.Context, reference time.Time) (domain.Dashboard, error)
	CountTasks(ctx context.Context) (int64, error)

	ListSubtasks(ctx context.Context, taskID int64) ([]domain.Subtask, error)
	CreateSubtask(ctx context.Context, taskID int64, title string) (int64, error)
	ToggleSubtask(ctx context.Context, id int64, completed bool) error
	DeleteSubtask(ctx context.Context, id int64) error
}
