package domain

import "time"

// ActivityAction identifies what happened to a task.
type ActivityAction string

const (
	ActivityCreated ActivityAction = "created"
	ActivityUpdated ActivityAction = "updated"
	ActivityDeleted ActivityAction = "deleted"
)

// Activity is one entry in a task's audit trail. Entries are written
// asynchronously; per-task ordering is preserved by the dispatcher.
type Activity struct {
	TaskID    string         `json:"taskId" bson:"task_id"`
	Action    ActivityAction `json:"action" bson:"action"`
	ActorID   string         `json:"actorId" bson:"actor_id"`
	Detail    string         `json:"detail,omitempty" bson:"detail,omitempty"`
	Timestamp time.Time      `json:"timestamp" bson:"timestamp"`
}
