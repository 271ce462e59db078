package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"agenda/internal/core/domain"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, EnsureSchema(context.Background(), db))
	return db
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := domain.ParseDate(value)
	require.NoError(t, err)
	return parsed
}

func seedTask(t *testing.T, repo *TaskRepository, title, dueDate string) int64 {
	t.Helper()

	due := mustDate(t, dueDate)
	id, err := repo.CreateTask(context.Background(), domain.Task{Title: title, DueDate: &due})
	require.NoError(t, err)
	return id
}

func taskIDs(tasks []domain.Task) []int64 {
	ids := make([]int64, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	return ids
}
