package types

import (
	"time"

	"github.com/google/uuid"
)

// TaskItem represents a single entry on the task list.
type TaskItem struct {
	// ID is the unique identifier of the task, assigned at creation.
	ID uuid.UUID `json:"id" db:"id"`

	// Title is the human-readable name of the task.
	Title string `json:"title" db:"title"`

	// IsDone reports whether the task has been completed. New tasks
	// always start pending.
	IsDone bool `json:"is_done" db:"is_done"`

	// Priority is a free-form label such as "low" or "high". Nil when
	// the task was created without one.
	Priority *string `json:"priority" db:"priority"`

	// CreatedAt orders tasks on the dashboard, most recent first.
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
