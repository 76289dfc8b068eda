package domain

import "time"

// Todo is a single todo-list entry.
type Todo struct {
	// ID is the storage-assigned identifier.
	ID int64

	// Text is the task description.
	Text string

	// Done marks the task as completed.
	Done bool

	// CreatedAt is when the task was added.
	CreatedAt time.Time
}
