package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	httpadapter "agenda/internal/adapter/http"
	"agenda/internal/adapter/http/handlers"
	"agenda/internal/adapter/http/middleware"
	"agenda/internal/core/domain"
	"agenda/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (int64, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(int64), args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, id int64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, id int64, input domain.UpdateTaskInput) error {
	return m.Called(ctx, id, input).Error(0)
}

func (m *taskServiceMock) ShareTask(ctx context.Context, id int64, sharedWith string) error {
	return m.Called(ctx, id, sharedWith).Error(0)
}

func (m *taskServiceMock) ReorderTasks(ctx context.Context, positions []domain.TaskPosition) error {
	return m.Called(ctx, positions).Error(0)
}

func (m *taskServiceMock) ListAllTasks(ctx context.Context, query domain.TaskQuery) ([]domain.Task, error) {
	args := m.Called(ctx, query)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) GetDashboard(ctx context.Context, reference time.Time) (domain.Dashboard, error) {
	args := m.Called(ctx, reference)
	return args.Get(0).(domain.Dashboard), args.Error(1)
}

func (m *taskServiceMock) CountTasks(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *taskServiceMock) ListSubtasks(ctx context.Context, taskID int64) ([]domain.Subtask, error) {
	args := m.Called(ctx, taskID)

	var subtasks []domain.Subtask
	if value := args.Get(0); value != nil {
		subtasks = value.([]domain.Subtask)
	}
	return subtasks, args.Error(1)
}

func (m *taskServiceMock) CreateSubtask(ctx context.Context, taskID int64, title string) (int64, error) {
	args := m.Called(ctx, taskID, title)
	return args.Get(0).(int64), args.Error(1)
}

func (m *taskServiceMock) ToggleSubtask(ctx context.Context, id int64, completed bool) error {
	return m.Called(ctx, id, completed).Error(0)
}

func (m *taskServiceMock) DeleteSubtask(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func newRouter(serviceMock *taskServiceMock) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	httpadapter.RegisterRoutes(
		router,
		handlers.NewHealthHandler(nil, serviceMock),
		handlers.NewTaskHandler(serviceMock),
		handlers.NewSubtaskHandler(serviceMock),
	)
	return router
}

func doRequest(router *gin.Engine, method, path, body, lang string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if lang != "" {
		req.Header.Set("Accept-Language", lang)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apierrors.Err {
	t.Helper()

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return got.ErrDetails
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var got struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return got.Message
}
