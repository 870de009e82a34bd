package models

import "time"

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "Pending"
	TaskInProgress TaskStatus = "In Progress"
	TaskDone       TaskStatus = "Done"
)

// IsValid reports whether s is one of the known task statuses.
func (s TaskStatus) IsValid() bool {
	return s == TaskPending || s == TaskInProgress || s == TaskDone
}

// Task is a unit of work assigned to a whole department.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	AssignedTo  Department `json:"assigned_to_department"`
	DueDate     time.Time  `json:"due_date"`
	Status      TaskStatus `json:"status"`

	// CreatedBy is the account UUID of the task author.
	CreatedBy string    `json:"created_by_user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table backing the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// TaskFilter narrows a task listing. Zero-valued fields are ignored.
type TaskFilter struct {
	Department Department
	Status     TaskStatus
	CreatedBy  string
}
