package service

import (
	"context"
	"time"

	"agenda/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) CreateTask(ctx context.Context, task domain.Task) (int64, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(int64), args.Error(1)
}

func (m *taskRepositoryMock) GetTask(ctx context.Context, id int64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) UpdateTask(ctx context.Context, id int64, patch domain.TaskPatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *taskRepositoryMock) ShareTask(ctx context.Context, id int64, sharedWith string) error {
	return m.Called(ctx, id, sharedWith).Error(0)
}

func (m *taskRepositoryMock) ReorderTasks(ctx context.Context, positions []domain.TaskPosition) error {
	return m.Called(ctx, positions).Error(0)
}

func (m *taskRepositoryMock) ListTasks(ctx context.Context, query domain.TaskQuery) ([]domain.Task, error) {
	args := m.Called(ctx, query)
	return tasksArg(args, 0), args.Error(1)
}

func (m *taskRepositoryMock) ListOpenTasksDueOn(ctx context.Context, day time.Time) ([]domain.Task, error) {
	args := m.Called(ctx, day)
	return tasksArg(args, 0), args.Error(1)
}

func (m *taskRepositoryMock) ListOpenTasksDueBefore(ctx context.Context, day time.Time) ([]domain.Task, error) {
	args := m.Called(ctx, day)
	return tasksArg(args, 0), args.Error(1)
}

func (m *taskRepositoryMock) ListOpenTasksDueBetween(ctx context.Context, after, until time.Time) ([]domain.Task, error) {
	args := m.Called(ctx, after, until)
	return tasksArg(args, 0), args.Error(1)
}

func (m *taskRepositoryMock) CountTasks(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type subtaskRepositoryMock struct {
	mock.Mock
}

func (m *subtaskRepositoryMock) ListSubtasks(ctx context.Context, taskID int64) ([]domain.Subtask, error) {
	args := m.Called(ctx, taskID)

	var subtasks []domain.Subtask
	if value := args.Get(0); value != nil {
		subtasks = value.([]domain.Subtask)
	}
	return subtasks, args.Error(1)
}

func (m *subtaskRepositoryMock) CreateSubtask(ctx context.Context, taskID int64, title string) (int64, error) {
	args := m.Called(ctx, taskID, title)
	return args.Get(0).(int64), args.Error(1)
}

func (m *subtaskRepositoryMock) SetSubtaskCompleted(ctx context.Context, id int64, completed bool) error {
	return m.Called(ctx, id, completed).Error(0)
}

func (m *subtaskRepositoryMock) DeleteSubtask(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func tasksArg(args mock.Arguments, index int) []domain.Task {
	var tasks []domain.Task
	if value := args.Get(index); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks
}
