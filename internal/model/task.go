package model

import (
	"strings"
	"time"
)

// Priority is the three-valued task priority.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank orders priorities for sorting: high > medium > low. Unknown values rank 0.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// IsValid reports whether p is one of the enum values.
func (p Priority) IsValid() bool {
	return p.Rank() > 0
}

// ParsePriority lower-cases and trims s. ok is false for values outside the enum.
func ParsePriority(s string) (Priority, bool) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	return p, p.IsValid()
}

// Status is the task lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusOverdue   Status = "overdue"
	StatusCancelled Status = "cancelled"

	// StatusAll is a list filter sentinel, never stored.
	StatusAll Status = "all"
)

// Task is a single user task.
type Task struct {
	ID          int64
	OwnerID     int64
	Description string
	DueAt       *time.Time // UTC
	Status      Status
	Priority    Priority
	Category    *string // lower-cased, never blank
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NormalizeCategory trims and lower-cases s. Blank input yields nil.
func NormalizeCategory(s string) *string {
	c := strings.ToLower(strings.TrimSpace(s))
	if c == "" {
		return nil
	}
	return &c
}
