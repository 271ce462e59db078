package handlers

import (
	"errors"
	"io"
	"net/http"

	"agenda/internal/adapter/http/dto"
	"agenda/internal/adapter/http/mapper"
	"agenda/internal/core/ports"
	"agenda/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SubtaskHandler struct {
	taskService ports.TaskService
}

func NewSubtaskHandler(taskService ports.TaskService) *SubtaskHandler {
	return &SubtaskHandler{taskService: taskService}
}

func (h *SubtaskHandler) ListSubtasks(c *gin.Context) {
	taskID, ok := parseID(c, apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	subtasks, err := h.taskService.ListSubtasks(c.Request.Context(), taskID)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailListSubtasks, "failed to list subtasks", zap.Int64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToSubtaskItems(subtasks))
}

func (h *SubtaskHandler) CreateSubtask(c *gin.Context) {
	taskID, ok := parseID(c, apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	var req dto.CreateSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	id, err := h.taskService.CreateSubtask(c.Request.Context(), taskID, req.Title)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailCreateSubtask, "failed to create subtask", zap.Int64("task_id", taskID))
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: id})
}

// ToggleSubtask sets completion to the body's "completed" value. A missing
// value or an empty body reads as false.
func (h *SubtaskHandler) ToggleSubtask(c *gin.Context) {
	subtaskID, ok := parseID(c, apierrors.MsgInvalidSubtaskID)
	if !ok {
		return
	}

	var req dto.ToggleSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	if err := h.taskService.ToggleSubtask(c.Request.Context(), subtaskID, req.Completed); err != nil {
		respondServiceError(c, err, apierrors.MsgFailUpdateSubtask, "failed to update subtask", zap.Int64("subtask_id", subtaskID))
		return
	}

	respondMessage(c, msgSubtaskUpdated)
}

func (h *SubtaskHandler) DeleteSubtask(c *gin.Context) {
	subtaskID, ok := parseID(c, apierrors.MsgInvalidSubtaskID)
	if !ok {
		return
	}

	if err := h.taskService.DeleteSubtask(c.Request.Context(), subtaskID); err != nil {
		respondServiceError(c, err, apierrors.MsgFailDeleteSubtask, "failed to delete subtask", zap.Int64("subtask_id", subtaskID))
		return
	}

	respondMessage(c, msgSubtaskDeleted)
}
