package api

import "github.com/tasktrack-io/tasktrack/internal/domain"

// CreateTaskResponse is the body returned after a successful create.
type CreateTaskResponse struct {
	ID int64 `json:"id"`
}

// TaskResponse represents one task with its attribute bag.
type TaskResponse struct {
	ID   int64          `json:"id"`
	Data map[string]any `json:"data"`
}

// StatsResponse carries the reconciled task count.
type StatsResponse struct {
	TaskCount int64 `json:"taskCount"`
}

func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{ID: task.ID, Data: task.Data}
}
