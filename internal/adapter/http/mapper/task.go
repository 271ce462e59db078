package mapper

import (
	"agenda/internal/adapter/http/dto"
	"agenda/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Title:     task.Title,
		Completed: task.Completed,
		Status:    task.Status,
		Priority:  int(task.Priority),
		Position:  task.Position,
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.DueDate != nil {
		value := domain.FormatDate(*task.DueDate)
		item.DueDate = &value
	}

	if task.SharedWith != nil {
		value := *task.SharedWith
		item.SharedWith = &value
	}

	return item
}

func ToDashboardResponse(dashboard domain.Dashboard) dto.DashboardResponse {
	return dto.DashboardResponse{
		TodaysTasks:   ToTaskItems(dashboard.Today),
		OverdueTasks:  ToTaskItems(dashboard.Overdue),
		UpcomingTasks: ToTaskItems(dashboard.Upcoming),
	}
}

func ToSubtaskItems(subtasks []domain.Subtask) []dto.SubtaskItem {
	items := make([]dto.SubtaskItem, 0, len(subtasks))
	for _, subtask := range subtasks {
		items = append(items, dto.SubtaskItem{
			ID:        subtask.ID,
			Title:     subtask.Title,
			Completed: subtask.Completed,
			TaskID:    subtask.TaskID,
		})
	}
	return items
}
