package service

import (
	"context"
	"time"

	"agenda/internal/core/domain"
	"agenda/internal/core/ports"
)

type TaskService struct {
	taskRepository    ports.TaskRepository
	subtaskRepository ports.SubtaskRepository
	now               func() time.Time
}

func NewTaskService(taskRepository ports.TaskRepository, subtaskRepository ports.SubtaskRepository) *TaskService {
	return &TaskService{
		taskRepository:    taskRepository,
		subtaskRepository: subtaskRepository,
		now:               utcNow,
	}
}

// utcNow keeps the default dashboard day on the UTC calendar, whatever the
// host zone is.
func utcNow() time.Time {
	return time.Now().UTC()
}

// WithClock replaces the time source used when no dashboard reference date
// is given.
func (s *TaskService) WithClock(now func() time.Time) *TaskService {
	s.now = now
	return s
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (int64, error) {
	if input.Title == "" {
		return 0, domain.ErrTitleRequired
	}
	if input.DueDate == nil || input.DueDate.IsZero() {
		return 0, domain.ErrDueDateRequired
	}

	priority := domain.PriorityLow
	if input.Priority != nil {
		priority = *input.Priority
	}
	if !priority.Valid() {
		return 0, domain.ErrInvalidPriority
	}

	dueDate := domain.CalendarDate(*input.DueDate)
	return s.taskRepository.CreateTask(ctx, domain.Task{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     &dueDate,
		Priority:    priority,
	})
}

func (s *TaskService) GetTask(ctx context.Context, id int64) (domain.Task, error) {
	return s.taskRepository.GetTask(ctx, id)
}

func (s *TaskService) UpdateTask(ctx context.Context, id int64, input domain.UpdateTaskInput) error {
	patch := input.Patch()
	if patch.IsEmpty() {
		return domain.ErrNoUpdateFields
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return domain.ErrInvalidPriority
	}
	if patch.Status != nil && (*patch.Status < domain.MinStatus || *patch.Status > domain.MaxStatus) {
		return domain.ErrInvalidStatus
	}
	if patch.DueDate != nil {
		dueDate := domain.CalendarDate(*patch.DueDate)
		patch.DueDate = &dueDate
	}

	return s.taskRepository.UpdateTask(ctx, id, patch)
}

func (s *TaskService) ShareTask(ctx context.Context, id int64, sharedWith string) error {
	if sharedWith == "" {
		return domain.ErrSharedWithRequired
	}
	return s.taskRepository.ShareTask(ctx, id, sharedWith)
}

func (s *TaskService) ReorderTasks(ctx context.Context, positions []domain.TaskPosition) error {
	if positions == nil {
		return domain.ErrInvalidReorderPayload
	}
	if len(positions) == 0 {
		return nil
	}
	return s.taskRepository.ReorderTasks(ctx, positions)
}

func (s *TaskService) ListAllTasks(ctx context.Context, query domain.TaskQuery) ([]domain.Task, error) {
	query.Filter = domain.ParseTaskFilter(string(query.Filter))
	return s.taskRepository.ListTasks(ctx, query)
}

// GetDashboard buckets incomplete tasks around the calendar date of
// reference. A zero reference means now.
func (s *TaskService) GetDashboard(ctx context.Context, reference time.Time) (domain.Dashboard, error) {
	if reference.IsZero() {
		reference = s.now()
	}
	today := domain.CalendarDate(reference)
	horizon := today.AddDate(0, 0, domain.UpcomingWindowDays)

	todays, err := s.taskRepository.ListOpenTasksDueOn(ctx, today)
	if err != nil {
		return domain.Dashboard{}, err
	}

	overdue, err := s.taskRepository.ListOpenTasksDueBefore(ctx, today)
	if err != nil {
		return domain.Dashboard{}, err
	}

	upcoming, err := s.taskRepository.ListOpenTasksDueBetween(ctx, today, horizon)
	if err != nil {
		return domain.Dashboard{}, err
	}

	return domain.Dashboard{
		Today:    todays,
		Overdue:  overdue,
		Upcoming: upcoming,
	}, nil
}

func (s *TaskService) CountTasks(ctx context.Context) (int64, error) {
	return s.taskRepository.CountTasks(ctx)
}

var _ ports.TaskService = (*TaskService)(nil)
