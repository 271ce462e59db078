package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"agenda/internal/core/domain"
	"agenda/internal/core/ports"
)

const taskColumns = `id, title, description, status, dueDate, completed, sharedWith, position, priority`

const insertTaskQuery = `
INSERT INTO tasks (title, description, dueDate, position, priority)
VALUES (?, ?, ?, (SELECT COUNT(*) FROM tasks), ?);
`

const (
	getTaskQuery   = `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?;`
	countTaskQuery = `SELECT COUNT(*) FROM tasks;`
	shareTaskQuery = `UPDATE tasks SET sharedWith = ? WHERE id = ?;`
	positionQuery  = `UPDATE tasks SET position = ? WHERE id = ?;`

	dueOnQuery      = `SELECT ` + taskColumns + ` FROM tasks WHERE dueDate = ? AND completed = 0 ORDER BY position ASC, id ASC;`
	dueBeforeQuery  = `SELECT ` + taskColumns + ` FROM tasks WHERE dueDate < ? AND completed = 0 ORDER BY dueDate ASC, position ASC, id ASC;`
	dueBetweenQuery = `SELECT ` + taskColumns + ` FROM tasks WHERE dueDate > ? AND dueDate <= ? AND completed = 0 ORDER BY dueDate ASC, position ASC, id ASC;`
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          int64          `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Status      sql.NullInt64  `db:"status"`
	DueDate     sql.NullString `db:"dueDate"`
	Completed   sql.NullBool   `db:"completed"`
	SharedWith  sql.NullString `db:"sharedWith"`
	Position    sql.NullInt64  `db:"position"`
	Priority    sql.NullInt64  `db:"priority"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// CreateTask appends the task after the current number of tasks. The
// position is a count, not max+1, so it can repeat an existing position after
// a reorder.
func (r *TaskRepository) CreateTask(ctx context.Context, task domain.Task) (id int64, err error) {
	ctx, span := tracer.Start(ctx, "TaskRepository.CreateTask",
		trace.WithAttributes(attribute.String("task.title", task.Title)),
	)
	defer func() { endSpan(span, err) }()

	var dueDate sql.NullString
	if task.DueDate != nil {
		dueDate = sql.NullString{String: domain.FormatDate(*task.DueDate), Valid: true}
	}

	result, err := r.db.ExecContext(ctx, insertTaskQuery,
		task.Title,
		nullableString(task.Description),
		dueDate,
		int(task.Priority),
	)
	if err != nil {
		return 0, domain.NewStoreError("create task", err)
	}

	id, err = result.LastInsertId()
	if err != nil {
		return 0, domain.NewStoreError("create task", err)
	}

	span.SetAttributes(attribute.Int64("task.id", id))
	return id, nil
}

func (r *TaskRepository) GetTask(ctx context.Context, id int64) (task domain.Task, err error) {
	ctx, span := tracer.Start(ctx, "TaskRepository.GetTask",
		trace.WithAttributes(attribute.Int64("task.id", id)),
	)
	defer func() { endSpan(span, err) }()

	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			span.SetAttributes(attribute.Bool("task.found", false))
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, domain.NewStoreError("get task", err)
	}

	span.SetAttributes(attribute.Bool("task.found", true))
	return mapTaskRowToDomainTask(row), nil
}

// UpdateTask writes the non-nil fields of patch in a fixed column order. An
// unknown id matches no rows and is not an error.
func (r *TaskRepository) UpdateTask(ctx context.Context, id int64, patch domain.TaskPatch) (err error) {
	ctx, span := tracer.Start(ctx, "TaskRepository.UpdateTask",
		trace.WithAttributes(attribute.Int64("task.id", id)),
	)
	defer func() { endSpan(span, err) }()

	query, args := buildTaskUpdate(id, patch)
	if query == "" {
		return nil
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return domain.NewStoreError("update task", err)
	}
	recordRowsAffected(span, result)
	return nil
}

func (r *TaskRepository) ShareTask(ctx context.Context, id int64, sharedWith string) (err error) {
	ctx, span := tracer.Start(ctx, "TaskRepository.ShareTask",
		trace.WithAttributes(attribute.Int64("task.id", id)),
	)
	defer func() { endSpan(span, err) }()

	result, err := r.db.ExecContext(ctx, shareTaskQuery, sharedWith, id)
	if err != nil {
		return domain.NewStoreError("share task", err)
	}
	recordRowsAffected(span, result)
	return nil
}

// ReorderTasks applies every position in one transaction: either all rows
// are updated or none are.
func (r *TaskRepository) ReorderTasks(ctx context.Context, positions []domain.TaskPosition) (err error) {
	ctx, span := tracer.Start(ctx, "TaskRepository.ReorderTasks",
		trace.WithAttributes(attribute.Int("task.count", len(positions))),
	)
	defer func() { endSpan(span, err) }()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.NewStoreError("reorder tasks", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PreparexContext(ctx, positionQuery)
	if err != nil {
		return domain.NewStoreError("reorder tasks", err)
	}
	defer stmt.Close()

	for _, position := range positions {
		if _, err = stmt.ExecContext(ctx, position.Position, position.ID); err != nil {
			return domain.NewStoreError("reorder tasks", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return domain.NewStoreError("reorder tasks", err)
	}
	return nil
}

func (r *TaskRepository) ListTasks(ctx context.Context, query domain.TaskQuery) (tasks []domain.Task, err error) {
	ctx, span := tracer.Start(ctx, "TaskRepository.ListTasks",
		trace.WithAttributes(
			attribute.String("task.search", query.Search),
			attribute.String("task.filter", string(query.Filter)),
		),
	)
	defer func() { endSpan(span, err) }()

	var sb strings.Builder
	sb.WriteString(`SELECT ` + taskColumns + ` FROM tasks WHERE title LIKE ? ESCAPE '\'`)
	switch query.Filter {
	case domain.TaskFilterCompleted:
		sb.WriteString(` AND completed = 1`)
	case domain.TaskFilterPending:
		sb.WriteString(` AND completed = 0`)
	}
	sb.WriteString(` ORDER BY position ASC, id ASC;`)

	tasks, err = r.selectTasks(ctx, sb.String(), "%"+escapeLike(query.Search)+"%")
	if err != nil {
		return nil, domain.NewStoreError("list tasks", err)
	}

	span.SetAttributes(attribute.Int("task.count", len(tasks)))
	return tasks, nil
}

func (r *TaskRepository) ListOpenTasksDueOn(ctx context.Context, day time.Time) (tasks []domain.Task, err error) {
	ctx, span := tracer.Start(ctx, "TaskRepository.ListOpenTasksDueOn")
	defer func() { endSpan(span, err) }()

	tasks, err = r.selectTasks(ctx, dueOnQuery, domain.FormatDate(day))
	if err != nil {
		return nil, domain.NewStoreError("list tasks due today", err)
	}
	return tasks, nil
}

func (r *TaskRepository) ListOpenTasksDueBefore(ctx context.Context, day time.Time) (tasks []domain.Task, err error) {
	ctx, span := tracer.Start(ctx, "TaskRepository.ListOpenTasksDueBefore")
	defer func() { endSpan(span, err) }()

	tasks, err = r.selectTasks(ctx, dueBeforeQuery, domain.FormatDate(day))
	if err != nil {
		return nil, domain.NewStoreError("list overdue tasks", err)
	}
	return tasks, nil
}

// ListOpenTasksDueBetween returns incomplete tasks due strictly after after
// and on or before until, earliest first.
func (r *TaskRepository) ListOpenTasksDueBetween(ctx context.Context, after, until time.Time) (tasks []domain.Task, err error) {
	ctx, span := tracer.Start(ctx, "TaskRepository.ListOpenTasksDueBetween")
	defer func() { endSpan(span, err) }()

	tasks, err = r.selectTasks(ctx, dueBetweenQuery, domain.FormatDate(after), domain.FormatDate(until))
	if err != nil {
		return nil, domain.NewStoreError("list upcoming tasks", err)
	}
	return tasks, nil
}

func (r *TaskRepository) CountTasks(ctx context.Context) (count int64, err error) {
	ctx, span := tracer.Start(ctx, "TaskRepository.CountTasks")
	defer func() { endSpan(span, err) }()

	if err := r.db.GetContext(ctx, &count, countTaskQuery); err != nil {
		return 0, domain.NewStoreError("count tasks", err)
	}
	return count, nil
}

func (r *TaskRepository) selectTasks(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks, nil
}

func buildTaskUpdate(id int64, patch domain.TaskPatch) (string, []any) {
	var (
		sets []string
		args []any
	)

	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.DueDate != nil {
		sets = append(sets, "dueDate = ?")
		args = append(args, domain.FormatDate(*patch.DueDate))
	}
	if patch.Completed != nil {
		completed := 0
		if *patch.Completed {
			completed = 1
		}
		sets = append(sets, "completed = ?")
		args = append(args, completed)
	}
	if patch.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *patch.Status)
	}
	if patch.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, int(*patch.Priority))
	}

	if len(sets) == 0 {
		return "", nil
	}

	args = append(args, id)
	return "UPDATE tasks SET " + strings.Join(sets, ", ") + " WHERE id = ?;", args
}

func escapeLike(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(value)
}

func nullableString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		Title:     row.Title,
		Completed: row.Completed.Valid && row.Completed.Bool,
		Status:    int(row.Status.Int64),
		Priority:  domain.Priority(row.Priority.Int64),
		Position:  int(row.Position.Int64),
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.DueDate.Valid {
		if value, ok := parseStoredDate(row.DueDate.String); ok {
			task.DueDate = &value
		}
	}

	if row.SharedWith.Valid {
		value := row.SharedWith.String
		task.SharedWith = &value
	}

	return task
}

// parseStoredDate accepts plain dates and timestamps whose first ten
// characters form a date.
func parseStoredDate(value string) (time.Time, bool) {
	if len(value) > len(domain.DateLayout) {
		value = value[:len(domain.DateLayout)]
	}
	parsed, err := domain.ParseDate(value)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
