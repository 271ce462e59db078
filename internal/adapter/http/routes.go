package http

import (
	"agenda/internal/adapter/http/handlers"
	"agenda/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	taskHandler *handlers.TaskHandler,
	subtaskHandler *handlers.SubtaskHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		api.POST("/tasks", taskHandler.CreateTask)
		api.GET("/tasks", taskHandler.GetDashboard)
		api.GET("/tasks/all", taskHandler.ListAllTasks)
		api.POST("/tasks/reorder", taskHandler.ReorderTasks)
		api.GET("/tasks/:id", taskHandler.GetTask)
		api.PUT("/tasks/:id", taskHandler.UpdateTask)
		api.POST("/tasks/:id/share", taskHandler.ShareTask)

		// Subtask routes reuse :id as the parent task id so they share the
		// /tasks/:id tree node.
		api.GET("/tasks/:id/subtasks", subtaskHandler.ListSubtasks)
		api.POST("/tasks/:id/subtasks", subtaskHandler.CreateSubtask)
		api.PUT("/subtasks/:id", subtaskHandler.ToggleSubtask)
		api.DELETE("/subtasks/:id", subtaskHandler.DeleteSubtask)
	}
}
