package domain

import "time"

// TaskPriority defines the urgency levels of a task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

// IsValid reports whether p is a known task priority.
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// TaskStatus defines the workflow states of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
)

// IsValid reports whether s is a known task status.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// Task is a unit of work attached to an event, optionally assigned to a
// team member. Tasks are tenant-scoped transitively through their event.
type Task struct {
	TaskID       string       `json:"taskID"`
	Title        string       `json:"title"`
	EventID      string       `json:"eventID"`
	EventName    string       `json:"eventName,omitempty"` // joined for display
	AssigneeID   *string      `json:"assigneeID,omitempty"`
	AssigneeName string       `json:"assigneeName,omitempty"` // joined for display
	Priority     TaskPriority `json:"priority"`
	Status       TaskStatus   `json:"status"`
	DueDate      *time.Time   `json:"dueDate,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}
