package dto

type SubtaskItem struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	TaskID    int64  `json:"taskId"`
}

type CreateSubtaskRequest struct {
	Title string `json:"title"`
}

type ToggleSubtaskRequest struct {
	Completed bool `json:"completed"`
}
