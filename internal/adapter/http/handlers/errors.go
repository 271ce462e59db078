package handlers

import (
	"errors"
	"net/http"

	"agenda/internal/adapter/http/dto"
	"agenda/internal/adapter/http/middleware"
	"agenda/internal/core/domain"
	"agenda/pkg/apierrors"
	"agenda/pkg/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgTaskUpdated    = "taskUpdated"
	msgTaskShared     = "taskShared"
	msgTasksReordered = "tasksReordered"
	msgSubtaskUpdated = "subtaskUpdated"
	msgSubtaskDeleted = "subtaskDeleted"
)

var validationMessages = map[domain.ValidationError]string{
	domain.ErrTitleRequired:         apierrors.MsgTitleRequired,
	domain.ErrDueDateRequired:       apierrors.MsgDueDateRequired,
	domain.ErrInvalidDueDate:        apierrors.MsgInvalidDueDate,
	domain.ErrInvalidPriority:       apierrors.MsgInvalidPriority,
	domain.ErrInvalidStatus:         apierrors.MsgInvalidStatus,
	domain.ErrNoUpdateFields:        apierrors.MsgNoUpdateFields,
	domain.ErrSharedWithRequired:    apierrors.MsgEmailRequired,
	domain.ErrInvalidReorderPayload: apierrors.MsgInvalidReorderPayload,
	domain.ErrSubtaskTitleRequired:  apierrors.MsgSubtaskTitleRequired,
	domain.ErrInvalidPayload:        apierrors.MsgInvalidTaskPayload,
}

func abortWithError(c *gin.Context, code int, msgKey string) {
	c.AbortWithStatusJSON(code, apierrors.CreateError(code, msgKey, middleware.GetLang(c)))
}

// respondServiceError maps validation failures to 400 and a missing task to
// 404. Anything else is logged as logMsg and answered with a 500 carrying
// failKey.
func respondServiceError(c *gin.Context, err error, failKey, logMsg string, fields ...zap.Field) {
	var validationErr domain.ValidationError
	if errors.As(err, &validationErr) {
		msgKey, ok := validationMessages[validationErr]
		if !ok {
			msgKey = apierrors.MsgInvalidTaskPayload
		}
		abortWithError(c, http.StatusBadRequest, msgKey)
		return
	}

	if errors.Is(err, domain.ErrTaskNotFound) {
		abortWithError(c, http.StatusNotFound, apierrors.MsgTaskNotFound)
		return
	}

	fields = append(fields, zap.String("request_id", middleware.GetRequestID(c)), zap.Error(err))
	zap.L().Error(logMsg, fields...)
	_ = c.Error(err)
	abortWithError(c, http.StatusInternalServerError, failKey)
}

func respondMessage(c *gin.Context, msgKey string) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: translator.Translate(msgKey, middleware.GetLang(c))})
}
