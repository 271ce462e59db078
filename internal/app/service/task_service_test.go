package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"agenda/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService() (*TaskService, *taskRepositoryMock, *subtaskRepositoryMock) {
	tasks := new(taskRepositoryMock)
	subtasks := new(subtaskRepositoryMock)
	return NewTaskService(tasks, subtasks), tasks, subtasks
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestTaskService_CreateTask_DefaultsAndNormalizes(t *testing.T) {
	svc, tasks, _ := newTestService()
	due := time.Date(2024, 6, 10, 18, 45, 0, 0, time.UTC)

	tasks.On("CreateTask", mock.Anything, mock.MatchedBy(func(task domain.Task) bool {
		return task.Title == "Buy milk" &&
			task.Priority == domain.PriorityLow &&
			task.DueDate != nil && task.DueDate.Equal(date(2024, 6, 10)) &&
			task.Description == nil
	})).Return(int64(7), nil).Once()

	id, err := svc.CreateTask(context.Background(), domain.CreateTaskInput{Title: "Buy milk", DueDate: &due})
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	tasks.AssertExpectations(t)
}

func TestTaskService_CreateTask_Validation(t *testing.T) {
	due := date(2024, 6, 10)
	zero := time.Time{}
	badPriority := domain.Priority(5)

	tests := []struct {
		name  string
		input domain.CreateTaskInput
		want  error
	}{
		{name: "missing title", input: domain.CreateTaskInput{DueDate: &due}, want: domain.ErrTitleRequired},
		{name: "missing due date", input: domain.CreateTaskInput{Title: "x"}, want: domain.ErrDueDateRequired},
		{name: "zero due date", input: domain.CreateTaskInput{Title: "x", DueDate: &zero}, want: domain.ErrDueDateRequired},
		{name: "bad priority", input: domain.CreateTaskInput{Title: "x", DueDate: &due, Priority: &badPriority}, want: domain.ErrInvalidPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, tasks, _ := newTestService()

			_, err := svc.CreateTask(context.Background(), tt.input)
			require.ErrorIs(t, err, tt.want)
			tasks.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
		})
	}
}

func TestTaskService_CreateTask_PropagatesStoreError(t *testing.T) {
	svc, tasks, _ := newTestService()
	due := date(2024, 6, 10)
	storeErr := domain.NewStoreError("create task", errors.New("database is locked"))

	tasks.On("CreateTask", mock.Anything, mock.Anything).Return(int64(0), storeErr).Once()

	_, err := svc.CreateTask(context.Background(), domain.CreateTaskInput{Title: "x", DueDate: &due})
	require.ErrorIs(t, err, storeErr)
}

func TestTaskService_UpdateTask_ResolvesPatch(t *testing.T) {
	svc, tasks, _ := newTestService()

	tasks.On("UpdateTask", mock.Anything, int64(3), mock.MatchedBy(func(patch domain.TaskPatch) bool {
		return patch.Title == nil &&
			patch.Completed != nil && !*patch.Completed &&
			patch.Status != nil && *patch.Status == 0
	})).Return(nil).Once()

	err := svc.UpdateTask(context.Background(), 3, domain.UpdateTaskInput{
		Title:     domain.Some(""),
		Completed: domain.Some(false),
		Status:    domain.Some(0),
	})
	require.NoError(t, err)
	tasks.AssertExpectations(t)
}

func TestTaskService_UpdateTask_NormalizesDueDate(t *testing.T) {
	svc, tasks, _ := newTestService()

	tasks.On("UpdateTask", mock.Anything, int64(3), mock.MatchedBy(func(patch domain.TaskPatch) bool {
		return patch.DueDate != nil && patch.DueDate.Equal(date(2024, 6, 12))
	})).Return(nil).Once()

	err := svc.UpdateTask(context.Background(), 3, domain.UpdateTaskInput{
		DueDate: domain.Some(time.Date(2024, 6, 12, 23, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)
	tasks.AssertExpectations(t)
}

func TestTaskService_UpdateTask_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.UpdateTaskInput
		want  error
	}{
		{name: "nothing applies", input: domain.UpdateTaskInput{Title: domain.Some("")}, want: domain.ErrNoUpdateFields},
		{name: "empty body", input: domain.UpdateTaskInput{}, want: domain.ErrNoUpdateFields},
		{name: "status too high", input: domain.UpdateTaskInput{Status: domain.Some(101)}, want: domain.ErrInvalidStatus},
		{name: "status negative", input: domain.UpdateTaskInput{Status: domain.Some(-1)}, want: domain.ErrInvalidStatus},
		{name: "bad priority", input: domain.UpdateTaskInput{Priority: domain.Some(domain.Priority(3))}, want: domain.ErrInvalidPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, tasks, _ := newTestService()

			err := svc.UpdateTask(context.Background(), 1, tt.input)
			require.ErrorIs(t, err, tt.want)
			tasks.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestTaskService_ShareTask(t *testing.T) {
	svc, tasks, _ := newTestService()

	require.ErrorIs(t, svc.ShareTask(context.Background(), 1, ""), domain.ErrSharedWithRequired)

	tasks.On("ShareTask", mock.Anything, int64(1), "alice@example.com").Return(nil).Once()
	require.NoError(t, svc.ShareTask(context.Background(), 1, "alice@example.com"))
	tasks.AssertExpectations(t)
}

func TestTaskService_ReorderTasks(t *testing.T) {
	svc, tasks, _ := newTestService()
	ctx := context.Background()

	require.ErrorIs(t, svc.ReorderTasks(ctx, nil), domain.ErrInvalidReorderPayload)
	require.NoError(t, svc.ReorderTasks(ctx, []domain.TaskPosition{}))
	tasks.AssertNotCalled(t, "ReorderTasks", mock.Anything, mock.Anything)

	positions := []domain.TaskPosition{{ID: 1, Position: 1}, {ID: 2, Position: 0}}
	tasks.On("ReorderTasks", mock.Anything, positions).Return(nil).Once()
	require.NoError(t, svc.ReorderTasks(ctx, positions))
	tasks.AssertExpectations(t)
}

func TestTaskService_ListAllTasks_NormalizesFilter(t *testing.T) {
	svc, tasks, _ := newTestService()

	tasks.On("ListTasks", mock.Anything, domain.TaskQuery{Search: "proj", Filter: domain.TaskFilterAll}).
		Return([]domain.Task{{ID: 1, Title: "Project"}}, nil).Once()

	got, err := svc.ListAllTasks(context.Background(), domain.TaskQuery{Search: "proj", Filter: "bogus"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	tasks.AssertExpectations(t)
}

func TestTaskService_GetDashboard_UsesReferenceDate(t *testing.T) {
	svc, tasks, _ := newTestService()
	today := date(2024, 6, 10)
	horizon := date(2024, 6, 17)

	tasks.On("ListOpenTasksDueOn", mock.Anything, today).Return([]domain.Task{{ID: 1}}, nil).Once()
	tasks.On("ListOpenTasksDueBefore", mock.Anything, today).Return([]domain.Task{{ID: 2}}, nil).Once()
	tasks.On("ListOpenTasksDueBetween", mock.Anything, today, horizon).Return([]domain.Task{{ID: 3}}, nil).Once()

	got, err := svc.GetDashboard(context.Background(), time.Date(2024, 6, 10, 21, 15, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Today[0].ID)
	assert.Equal(t, int64(2), got.Overdue[0].ID)
	assert.Equal(t, int64(3), got.Upcoming[0].ID)
	tasks.AssertExpectations(t)
}

func TestTaskService_GetDashboard_DefaultsToClock(t *testing.T) {
	svc, tasks, _ := newTestService()
	svc.WithClock(func() time.Time { return time.Date(2024, 12, 30, 9, 0, 0, 0, time.UTC) })
	today := date(2024, 12, 30)

	tasks.On("ListOpenTasksDueOn", mock.Anything, today).Return([]domain.Task{}, nil).Once()
	tasks.On("ListOpenTasksDueBefore", mock.Anything, today).Return([]domain.Task{}, nil).Once()
	tasks.On("ListOpenTasksDueBetween", mock.Anything, today, date(2025, 1, 6)).Return([]domain.Task{}, nil).Once()

	_, err := svc.GetDashboard(context.Background(), time.Time{})
	require.NoError(t, err)
	tasks.AssertExpectations(t)
}

func TestTaskService_GetDashboard_StopsOnError(t *testing.T) {
	svc, tasks, _ := newTestService()
	boom := errors.New("boom")

	tasks.On("ListOpenTasksDueOn", mock.Anything, mock.Anything).Return(nil, boom).Once()

	_, err := svc.GetDashboard(context.Background(), date(2024, 6, 10))
	require.ErrorIs(t, err, boom)
	tasks.AssertNotCalled(t, "ListOpenTasksDueBefore", mock.Anything, mock.Anything)
}

func TestTaskService_GetTaskAndCount(t *testing.T) {
	svc, tasks, _ := newTestService()

	tasks.On("GetTask", mock.Anything, int64(9)).Return(domain.Task{}, domain.ErrTaskNotFound).Once()
	tasks.On("CountTasks", mock.Anything).Return(int64(4), nil).Once()

	_, err := svc.GetTask(context.Background(), 9)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)

	count, err := svc.CountTasks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
	tasks.AssertExpectations(t)
}

func TestTaskService_DefaultClockIsUTC(t *testing.T) {
	svc, _, _ := newTestService()

	now := svc.now()
	assert.Equal(t, time.UTC, now.Location())
}

func TestTaskService_GetDashboard_UsesUTCDayOfClock(t *testing.T) {
	svc, tasks, _ := newTestService()
	svc.WithClock(func() time.Time { return time.Date(2024, 6, 9, 23, 30, 0, 0, time.UTC) })
	today := date(2024, 6, 9)

	tasks.On("ListOpenTasksDueOn", mock.Anything, today).Return([]domain.Task{}, nil).Once()
	tasks.On("ListOpenTasksDueBefore", mock.Anything, today).Return([]domain.Task{}, nil).Once()
	tasks.On("ListOpenTasksDueBetween", mock.Anything, today, date(2024, 6, 16)).Return([]domain.Task{}, nil).Once()

	_, err := svc.GetDashboard(context.Background(), time.Time{})
	require.NoError(t, err)
	tasks.AssertExpectations(t)
}
