package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"agenda/internal/adapter/http/middleware"
	"agenda/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const (
	StatusOk        = "ok"
	StatusDown      = "down"
	healthDBTimeout = 2 * time.Second
	defaultAppName  = "agenda"
	systemTimeFmt   = "2006-01-02 15:04:05"
)

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthServices struct {
	Sqlite string `json:"sqlite"`
}

type HealthAdvanced struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Language          string         `json:"language"`
	RequestID         string         `json:"request_id"`
	TaskCount         *int64         `json:"task_count"`
	Status            HealthServices `json:"status"`
}

type HealthHandler struct {
	db          *sqlx.DB
	taskService ports.TaskService
}

func NewHealthHandler(db *sqlx.DB, taskService ports.TaskService) *HealthHandler {
	return &HealthHandler{db: db, taskService: taskService}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	statusCode := http.StatusOK
	message := StatusOk

	if !h.checkConnectionToDatabase(c.Request.Context()) {
		statusCode = http.StatusInternalServerError
		message = StatusDown
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           getAppName(),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format(systemTimeFmt),
		Message:           message,
	})
}

// CheckHealthReport always answers 200; the store state is in the body.
func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	ctx := c.Request.Context()

	databaseStatus := StatusDown
	var taskCount *int64
	if h.checkConnectionToDatabase(ctx) {
		databaseStatus = StatusOk
		taskCount = h.countTasks(ctx)
	}

	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:           getAppName(),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format(systemTimeFmt),
		Language:          middleware.GetLang(c),
		RequestID:         middleware.GetRequestID(c),
		TaskCount:         taskCount,
		Status: HealthServices{
			Sqlite: databaseStatus,
		},
	})
}

func (h *HealthHandler) checkConnectionToDatabase(ctx context.Context) bool {
	if h.db == nil {
		return false
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, healthDBTimeout)
	defer cancel()
	return h.db.PingContext(timeoutCtx) == nil
}

func (h *HealthHandler) countTasks(ctx context.Context) *int64 {
	if h.taskService == nil {
		return nil
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, healthDBTimeout)
	defer cancel()

	count, err := h.taskService.CountTasks(timeoutCtx)
	if err != nil {
		zap.L().Warn("failed to count tasks for health report", zap.Error(err))
		return nil
	}
	return &count
}

func getAppName() string {
	if name := os.Getenv("APP_NAME"); name != "" {
		return name
	}
	return defaultAppName
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}
