package db

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"agenda/internal/core/domain"
	"agenda/internal/core/ports"
)

const (
	listSubtasksQuery  = `SELECT id, title, completed, taskId FROM sub_tasks WHERE taskId = ? ORDER BY id ASC;`
	insertSubtaskQuery = `INSERT INTO sub_tasks (title, taskId) VALUES (?, ?);`
	toggleSubtaskQuery = `UPDATE sub_tasks SET completed = ? WHERE id = ?;`
	deleteSubtaskQuery = `DELETE FROM sub_tasks WHERE id = ?;`
)

type SubtaskRepository struct {
	db *sqlx.DB
}

type subtaskRow struct {
	ID        int64         `db:"id"`
	Title     string        `db:"title"`
	Completed sql.NullBool  `db:"completed"`
	TaskID    sql.NullInt64 `db:"taskId"`
}

var _ ports.SubtaskRepository = (*SubtaskRepository)(nil)

func NewSubtaskRepository(db *sqlx.DB) *SubtaskRepository {
	return &SubtaskRepository{db: db}
}

func (r *SubtaskRepository) ListSubtasks(ctx context.Context, taskID int64) (subtasks []domain.Subtask, err error) {
	ctx, span := tracer.Start(ctx, "SubtaskRepository.ListSubtasks",
		trace.WithAttributes(attribute.Int64("task.id", taskID)),
	)
	defer func() { endSpan(span, err) }()

	var rows []subtaskRow
	if err := r.db.SelectContext(ctx, &rows, listSubtasksQuery, taskID); err != nil {
		return nil, domain.NewStoreError("list subtasks", err)
	}

	subtasks = make([]domain.Subtask, 0, len(rows))
	for _, row := range rows {
		subtasks = append(subtasks, domain.Subtask{
			ID:        row.ID,
			Title:     row.Title,
			Completed: row.Completed.Valid && row.Completed.Bool,
			TaskID:    row.TaskID.Int64,
		})
	}

	span.SetAttributes(attribute.Int("subtask.count", len(subtasks)))
	return subtasks, nil
}

// CreateSubtask inserts without checking that the parent task exists.
func (r *SubtaskRepository) CreateSubtask(ctx context.Context, taskID int64, title string) (id int64, err error) {
	ctx, span := tracer.Start(ctx, "SubtaskRepository.CreateSubtask",
		trace.WithAttributes(attribute.Int64("task.id", taskID)),
	)
	defer func() { endSpan(span, err) }()

	result, err := r.db.ExecContext(ctx, insertSubtaskQuery, title, taskID)
	if err != nil {
		return 0, domain.NewStoreError("create subtask", err)
	}

	id, err = result.LastInsertId()
	if err != nil {
		return 0, domain.NewStoreError("create subtask", err)
	}

	span.SetAttributes(attribute.Int64("subtask.id", id))
	return id, nil
}

func (r *SubtaskRepository) SetSubtaskCompleted(ctx context.Context, id int64, completed bool) (err error) {
	ctx, span := tracer.Start(ctx, "SubtaskRepository.SetSubtaskCompleted",
		trace.WithAttributes(attribute.Int64("subtask.id", id)),
	)
	defer func() { endSpan(span, err) }()

	value := 0
	if completed {
		value = 1
	}

	result, err := r.db.ExecContext(ctx, toggleSubtaskQuery, value, id)
	if err != nil {
		return domain.NewStoreError("toggle subtask", err)
	}
	recordRowsAffected(span, result)
	return nil
}

// DeleteSubtask is idempotent: deleting a missing id succeeds.
func (r *SubtaskRepository) DeleteSubtask(ctx context.Context, id int64) (err error) {
	ctx, span := tracer.Start(ctx, "SubtaskRepository.DeleteSubtask",
		trace.WithAttributes(attribute.Int64("subtask.id", id)),
	)
	defer func() { endSpan(span, err) }()

	result, err := r.db.ExecContext(ctx, deleteSubtaskQuery, id)
	if err != nil {
		return domain.NewStoreError("delete subtask", err)
	}
	recordRowsAffected(span, result)
	return nil
}
