package models

import "time"

// Task statuses form a closed set; anything else is rejected at the edge.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Task represents a to-do item owned by exactly one user.
type Task struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	UserID      int       `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ValidStatus reports whether s is one of the known task statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusCompleted
}
