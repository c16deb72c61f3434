package domain

import (
	"errors"
	"time"
)

// TaskStatus is the workflow state of a task. There is no enforced
// transition graph: any caller allowed to update a task may set any status,
// including moving a done task back to todo.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

// TaskPriority ranks a task's urgency.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

var ErrTaskNotFound = errors.New("Task not found")
var ErrForbidden = errors.New("Access denied")

// Task is the core aggregate. Every task has exactly one owner.
type Task struct {
	ID          string       `json:"id" bson:"_id,omitempty"`
	Title       string       `json:"title" bson:"title"`
	Description string       `json:"description" bson:"description"`
	Status      TaskStatus   `json:"status" bson:"status"`
	Priority    TaskPriority `json:"priority" bson:"priority"`
	UserID      string       `json:"userId" bson:"user_id"`
	CreatedAt   time.Time    `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time    `json:"updatedAt" bson:"updated_at"`
}

// AccessibleBy is the single authorization predicate for task reads and
// writes: admin bypasses ownership, everyone else must own the row.
func (t *Task) AccessibleBy(userID, role string) bool {
	if role == RoleAdmin {
		return true
	}
	return t.UserID == userID
}
