package dto

// TaskForm carries the task dialog fields. AssigneeID "unassigned" or empty
// clears the assignment.
type TaskForm struct {
	Title      string `form:"title" json:"title" binding:"required"`
	EventID    string `form:"eventId" json:"eventId" binding:"required"`
	AssigneeID string `form:"assigneeId" json:"assigneeId"`
	Priority   string `form:"priority" json:"priority"`
	Status     string `form:"status" json:"status"`
	DueDate    string `form:"dueDate" json:"dueDate"`
}
