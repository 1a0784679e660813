package request_models

import "time"

type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required,min=1,max=200"`
	Description string     `json:"description" binding:"max=1000"`
	AssigneeID  string     `json:"assignee_id" binding:"omitempty,uuid4"`
	DueDate     *time.Time `json:"due_date"`
	Tags        []string   `json:"tags" binding:"max=10,dive,max=32"`
}

type AssignTaskRequest struct {
	// Empty assignee unassigns the task.
	AssigneeID string `json:"assignee_id" binding:"omitempty,uuid4"`
}
