// Package models defines the persisted record types for tasks and
// study sessions.
package models

import (
	"strings"
	"time"
)

// Priority classifies a task as High, Medium, or Low.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

var priorityRank = map[Priority]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
}

// Rank returns the sort position of the priority. Unrecognized
// priorities sort after all known ones.
func (p Priority) Rank() int {
	r, ok := priorityRank[p]
	if !ok {
		return len(priorityRank)
	}

	return r
}

// Valid reports whether the priority is one of High, Medium, or Low.
func (p Priority) Valid() bool {
	_, ok := priorityRank[p]
	return ok
}

// ParsePriority converts user input to a Priority, accepting any
// casing. Anything unrecognized falls back to Medium.
func ParsePriority(s string) Priority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "h", "1":
		return PriorityHigh
	case "low", "l", "3":
		return PriorityLow
	default:
		return PriorityMedium
	}
}

// Task is a to-do item that can be completed once and then deleted.
// CompletedAt is set if and only if Completed is true.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    Priority   `json:"priority"`
	DueDate     string     `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Session is a record of time spent studying a subject. Sessions are
// immutable once logged, and the actual duration always equals the
// planned duration since no in-progress tracking exists.
type Session struct {
	Subject         string    `json:"subject"`
	PlannedDuration int       `json:"planned_duration"`
	ActualDuration  int       `json:"actual_duration"`
	StartTime       time.Time `json:"start_time"`
	// Date is the calendar date of StartTime in YYYY-MM-DD form,
	// kept as its own field for fast grouping.
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}
