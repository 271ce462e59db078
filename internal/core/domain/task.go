package domain

import "time"

type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

const (
	MinStatus = 0
	MaxStatus = 100
)

type Task struct {
	ID          int64
	Title       string
	Description *string
	DueDate     *time.Time
	Completed   bool
	Status      int
	Priority    Priority
	Position    int
	SharedWith  *string
}

type CreateTaskInput struct {
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    *Priority
}

// UpdateTaskInput carries the fields a caller sent. Presence is explicit;
// Patch decides which of the present values are applied.
type UpdateTaskInput struct {
	Title       Optional[string]
	Description Optional[string]
	DueDate     Optional[time.Time]
	Completed   Optional[bool]
	Status      Optional[int]
	Priority    Optional[Priority]
}

// TaskPatch is the resolved set of column changes for a task. A nil field is
// left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Completed   *bool
	Status      *int
	Priority    *Priority
}

// Patch resolves the input into a TaskPatch. Text and date fields are only
// applied when present and non-empty, so an empty title never overwrites a
// stored one. Boolean and numeric fields are applied whenever present,
// including false and 0.
func (in UpdateTaskInput) Patch() TaskPatch {
	var patch TaskPatch

	if value, ok := in.Title.Get(); ok && value != "" {
		patch.Title = &value
	}
	if value, ok := in.Description.Get(); ok && value != "" {
		patch.Description = &value
	}
	if value, ok := in.DueDate.Get(); ok && !value.IsZero() {
		patch.DueDate = &value
	}
	if value, ok := in.Completed.Get(); ok {
		patch.Completed = &value
	}
	if value, ok := in.Status.Get(); ok {
		patch.Status = &value
	}
	if value, ok := in.Priority.Get(); ok {
		patch.Priority = &value
	}

	return patch
}

func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil &&
		p.Description == nil &&
		p.DueDate == nil &&
		p.Completed == nil &&
		p.Status == nil &&
		p.Priority == nil
}

type TaskPosition struct {
	ID       int64
	Position int
}

type TaskFilter string

const (
	TaskFilterAll       TaskFilter = "all"
	TaskFilterCompleted TaskFilter = "completed"
	TaskFilterPending   TaskFilter = "pending"
)

// ParseTaskFilter maps unknown values to TaskFilterAll.
func ParseTaskFilter(value string) TaskFilter {
	switch TaskFilter(value) {
	case TaskFilterCompleted:
		return TaskFilterCompleted
	case TaskFilterPending:
		return TaskFilterPending
	default:
		return TaskFilterAll
	}
}

type TaskQuery struct {
	Search string
	Filter TaskFilter
}

type Dashboard struct {
	Today    []Task
	Overdue  []Task
	Upcoming []Task
}
