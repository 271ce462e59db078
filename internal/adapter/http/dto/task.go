package dto

type TaskItem struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
	Completed   bool    `json:"completed"`
	Status      int     `json:"status"`
	Priority    int     `json:"priority"`
	Position    int     `json:"position"`
	SharedWith  *string `json:"sharedWith"`
}

type DashboardResponse struct {
	TodaysTasks   []TaskItem `json:"todaysTasks"`
	OverdueTasks  []TaskItem `json:"overdueTasks"`
	UpcomingTasks []TaskItem `json:"upcomingTasks"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     string  `json:"dueDate"`
	Priority    *int    `json:"priority"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
	Completed   *bool   `json:"completed"`
	Status      *int    `json:"status"`
	Priority    *int    `json:"priority"`
}

type ShareTaskRequest struct {
	SharedWith string `json:"sharedWith"`
}

type ReorderTaskItem struct {
	ID       *int64 `json:"id"`
	Position *int   `json:"position"`
}

type ReorderTasksRequest struct {
	Tasks []ReorderTaskItem `json:"tasks"`
}

type CreatedResponse struct {
	ID int64 `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
