package handlers

import (
	"net/http"
	"strconv"

	"agenda/internal/adapter/http/dto"
	"agenda/internal/adapter/http/mapper"
	"agenda/internal/adapter/http/validation"
	"agenda/internal/core/domain"
	"agenda/internal/core/ports"
	"agenda/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildCreateTaskInput(req)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailCreateTask, "failed to create task")
		return
	}

	id, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailCreateTask, "failed to create task")
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: id})
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, ok := parseID(c, apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailGetTask, "failed to get task", zap.Int64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, ok := parseID(c, apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildUpdateTaskInput(body)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailUpdateTask, "failed to update task")
		return
	}

	if err := h.taskService.UpdateTask(c.Request.Context(), taskID, input); err != nil {
		respondServiceError(c, err, apierrors.MsgFailUpdateTask, "failed to update task", zap.Int64("task_id", taskID))
		return
	}

	respondMessage(c, msgTaskUpdated)
}

func (h *TaskHandler) ShareTask(c *gin.Context) {
	taskID, ok := parseID(c, apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	var req dto.ShareTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	if err := h.taskService.ShareTask(c.Request.Context(), taskID, req.SharedWith); err != nil {
		respondServiceError(c, err, apierrors.MsgFailShareTask, "failed to share task", zap.Int64("task_id", taskID))
		return
	}

	respondMessage(c, msgTaskShared)
}

func (h *TaskHandler) ReorderTasks(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidReorderPayload)
		return
	}

	positions, err := validation.BuildReorderInput(body)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailReorderTasks, "failed to reorder tasks")
		return
	}

	if err := h.taskService.ReorderTasks(c.Request.Context(), positions); err != nil {
		respondServiceError(c, err, apierrors.MsgFailReorderTasks, "failed to reorder tasks", zap.Int("count", len(positions)))
		return
	}

	respondMessage(c, msgTasksReordered)
}

func (h *TaskHandler) ListAllTasks(c *gin.Context) {
	query := domain.TaskQuery{
		Search: c.Query("search"),
		Filter: domain.ParseTaskFilter(c.Query("filter")),
	}

	tasks, err := h.taskService.ListAllTasks(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailListTask, "failed to list tasks",
			zap.String("search", query.Search),
			zap.String("filter", string(query.Filter)),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

// GetDashboard buckets open tasks around ?date=YYYY-MM-DD, or around the
// server's current day when the parameter is absent.
func (h *TaskHandler) GetDashboard(c *gin.Context) {
	reference, err := validation.ParseDateParam(c.Query("date"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidDueDate)
		return
	}

	dashboard, err := h.taskService.GetDashboard(c.Request.Context(), reference)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailDashboard, "failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, mapper.ToDashboardResponse(dashboard))
}

func parseID(c *gin.Context, invalidKey string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		abortWithError(c, http.StatusBadRequest, invalidKey)
		return 0, false
	}
	return id, true
}
