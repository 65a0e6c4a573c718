package models

import "time"

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

type Task struct {
	ID          string
	Title       string
	Description string
	Status      string
	// CompletedAt is set on every transition into StatusCompleted
	// and is kept when the task goes back to pending.
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func IsValidTaskStatus(status string) bool {
	return status == StatusPending || status == StatusCompleted
}
