package domain

type Subtask struct {
	ID        int64
	Title     string
	Completed bool
	TaskID    int64
}
